package catalogue

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore keeps wigs in insertion order, honoring the Store contract.
type memStore struct {
	wigs []Wig
}

func (s *memStore) List(ctx context.Context) ([]Wig, error) {
	out := make([]Wig, len(s.wigs))
	copy(out, s.wigs)
	return out, nil
}

func (s *memStore) Get(ctx context.Context, id string) (Wig, error) {
	for _, w := range s.wigs {
		if w.ID.Hex() == id {
			return w, nil
		}
	}
	return Wig{}, ErrNotFound
}

func (s *memStore) Create(ctx context.Context, w Wig) (Wig, error) {
	w.ID = primitive.NewObjectID()
	s.wigs = append(s.wigs, w)
	return w, nil
}

func (s *memStore) Update(ctx context.Context, id string, upd WigUpdate) (Wig, error) {
	for i, w := range s.wigs {
		if w.ID.Hex() != id {
			continue
		}
		if upd.Name != nil {
			w.Name = *upd.Name
		}
		if upd.Description != nil {
			w.Description = *upd.Description
		}
		if upd.Price != nil {
			w.Price = *upd.Price
		}
		if upd.ImageURL != nil {
			w.ImageURL = *upd.ImageURL
		}
		if upd.Category != nil {
			w.Category = *upd.Category
		}
		if upd.InStock != nil {
			w.InStock = *upd.InStock
		}
		s.wigs[i] = w
		return w, nil
	}
	return Wig{}, ErrNotFound
}

func (s *memStore) Delete(ctx context.Context, id string) error {
	for i, w := range s.wigs {
		if w.ID.Hex() == id {
			s.wigs = append(s.wigs[:i], s.wigs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func newTestRouter(t *testing.T, store Store, uploadDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	NewHandler(store, uploadDir, log).Register(r)
	return r
}

func multipartForm(t *testing.T, fields map[string]string, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func doRequest(r *gin.Engine, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, &memStore{}, t.TempDir())

	rec := doRequest(r, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "catalogue", resp["service"])
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	r := newTestRouter(t, &memStore{}, t.TempDir())

	body, ct := multipartForm(t, map[string]string{
		"name":        "Classic Bob",
		"description": "Shoulder length",
		"price":       "49.99",
		"category":    "short",
		"inStock":     "true",
	}, "", nil)

	rec := doRequest(r, http.MethodPost, "/api/wigs", body, ct)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created Wig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.False(t, created.ID.IsZero())
	assert.False(t, created.CreatedAt.IsZero())

	rec = doRequest(r, http.MethodGet, "/api/wigs/"+created.ID.Hex(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got Wig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Classic Bob", got.Name)
	assert.Equal(t, 49.99, got.Price)
	assert.Equal(t, "short", got.Category)
	assert.True(t, got.InStock)
}

func TestCreateValidation(t *testing.T) {
	r := newTestRouter(t, &memStore{}, t.TempDir())

	t.Run("missing name", func(t *testing.T) {
		body, ct := multipartForm(t, map[string]string{"price": "10"}, "", nil)
		rec := doRequest(r, http.MethodPost, "/api/wigs", body, ct)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing price", func(t *testing.T) {
		body, ct := multipartForm(t, map[string]string{"name": "Pixie"}, "", nil)
		rec := doRequest(r, http.MethodPost, "/api/wigs", body, ct)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed price falls back to zero", func(t *testing.T) {
		body, ct := multipartForm(t, map[string]string{"name": "Pixie", "price": "not-a-number"}, "", nil)
		rec := doRequest(r, http.MethodPost, "/api/wigs", body, ct)
		require.Equal(t, http.StatusCreated, rec.Code)

		var created Wig
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Zero(t, created.Price)
	})
}

func TestCreateWithImage(t *testing.T) {
	uploadDir := t.TempDir()
	r := newTestRouter(t, &memStore{}, uploadDir)

	body, ct := multipartForm(t, map[string]string{
		"name":  "Wavy Long",
		"price": "89.50",
	}, "wavy.jpg", []byte("fake-jpeg-bytes"))

	rec := doRequest(r, http.MethodPost, "/api/wigs", body, ct)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created Wig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.True(t, strings.HasPrefix(created.ImageURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(created.ImageURL, ".jpg"))

	stored := filepath.Join(uploadDir, strings.TrimPrefix(created.ImageURL, "/uploads/"))
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-jpeg-bytes"), content)
}

func TestUpdate(t *testing.T) {
	store := &memStore{}
	r := newTestRouter(t, store, t.TempDir())

	created, err := store.Create(context.Background(), Wig{Name: "Pixie", Price: 30, Category: "short", InStock: true})
	require.NoError(t, err)

	t.Run("only supplied fields change", func(t *testing.T) {
		body, ct := multipartForm(t, map[string]string{"price": "35.5"}, "", nil)
		rec := doRequest(r, http.MethodPut, "/api/wigs/"+created.ID.Hex(), body, ct)
		require.Equal(t, http.StatusOK, rec.Code)

		var updated Wig
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, 35.5, updated.Price)
		assert.Equal(t, "Pixie", updated.Name)
		assert.Equal(t, "short", updated.Category)
		assert.True(t, updated.InStock)
	})

	t.Run("new image replaces imageUrl", func(t *testing.T) {
		body, ct := multipartForm(t, nil, "new.png", []byte("png"))
		rec := doRequest(r, http.MethodPut, "/api/wigs/"+created.ID.Hex(), body, ct)
		require.Equal(t, http.StatusOK, rec.Code)

		var updated Wig
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.True(t, strings.HasPrefix(updated.ImageURL, "/uploads/"))
	})

	t.Run("unknown id", func(t *testing.T) {
		body, ct := multipartForm(t, map[string]string{"name": "x"}, "", nil)
		rec := doRequest(r, http.MethodPut, "/api/wigs/"+primitive.NewObjectID().Hex(), body, ct)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDelete(t *testing.T) {
	store := &memStore{}
	r := newTestRouter(t, store, t.TempDir())

	created, err := store.Create(context.Background(), Wig{Name: "Curly", Price: 60})
	require.NoError(t, err)

	rec := doRequest(r, http.MethodDelete, "/api/wigs/"+created.ID.Hex(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wig deleted successfully")

	rec = doRequest(r, http.MethodGet, "/api/wigs/"+created.ID.Hex(), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(r, http.MethodDelete, "/api/wigs/"+created.ID.Hex(), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestList(t *testing.T) {
	store := &memStore{}
	r := newTestRouter(t, store, t.TempDir())

	_, err := store.Create(context.Background(), Wig{Name: "A", Price: 1})
	require.NoError(t, err)
	_, err = store.Create(context.Background(), Wig{Name: "B", Price: 2})
	require.NoError(t, err)

	rec := doRequest(r, http.MethodGet, "/api/wigs", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var wigs []Wig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wigs))
	require.Len(t, wigs, 2)
	assert.Equal(t, "A", wigs[0].Name)
	assert.Equal(t, "B", wigs[1].Name)
}
