package catalogue

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler exposes the catalogue HTTP endpoints.
type Handler struct {
	store     Store
	uploadDir string
	log       *slog.Logger
}

func NewHandler(store Store, uploadDir string, log *slog.Logger) *Handler {
	return &Handler{store: store, uploadDir: uploadDir, log: log}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", h.health)
	r.GET("/api/wigs", h.list)
	r.GET("/api/wigs/:id", h.get)
	r.POST("/api/wigs", h.create)
	r.PUT("/api/wigs/:id", h.update)
	r.DELETE("/api/wigs/:id", h.delete)
	r.Static("/uploads", h.uploadDir)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "catalogue"})
}

func (h *Handler) list(c *gin.Context) {
	wigs, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, wigs)
}

func (h *Handler) get(c *gin.Context) {
	wig, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wig not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, wig)
}

func (h *Handler) create(c *gin.Context) {
	name := c.PostForm("name")
	priceText, hasPrice := c.GetPostForm("price")
	if name == "" || !hasPrice {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	// malformed price text falls back to 0 rather than being rejected
	price, _ := strconv.ParseFloat(priceText, 64)

	wig := Wig{
		Name:        name,
		Description: c.PostForm("description"),
		Price:       price,
		Category:    c.PostForm("category"),
		InStock:     c.DefaultPostForm("inStock", "true") == "true",
		CreatedAt:   time.Now().UTC(),
	}

	if file, err := c.FormFile("image"); err == nil {
		imageURL, err := h.saveImage(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		wig.ImageURL = imageURL
	}

	created, err := h.store.Create(c.Request.Context(), wig)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) update(c *gin.Context) {
	var upd WigUpdate
	if v, ok := c.GetPostForm("name"); ok {
		upd.Name = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		upd.Description = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		price, _ := strconv.ParseFloat(v, 64)
		upd.Price = &price
	}
	if v, ok := c.GetPostForm("category"); ok {
		upd.Category = &v
	}
	if v, ok := c.GetPostForm("inStock"); ok {
		inStock := v == "true"
		upd.InStock = &inStock
	}

	if file, err := c.FormFile("image"); err == nil {
		imageURL, err := h.saveImage(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		upd.ImageURL = &imageURL
	}

	wig, err := h.store.Update(c.Request.Context(), c.Param("id"), upd)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wig not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, wig)
}

func (h *Handler) delete(c *gin.Context) {
	err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wig not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Wig deleted successfully"})
}

// saveImage persists an uploaded file under a fresh uuid filename and
// returns the path it will be served from.
func (h *Handler) saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	filename := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
		return "", err
	}
	h.log.Debug("image stored", "filename", filename)
	return "/uploads/" + filename, nil
}
