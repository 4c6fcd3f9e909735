package checkout

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CartClient clears a session's cart after checkout. Delivery is
// at-most-once: a single attempt with a bounded wait, no retries.
type CartClient struct {
	baseURL string
	http    *http.Client
}

func NewCartClient(baseURL string) *CartClient {
	return &CartClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *CartClient) ClearCart(ctx context.Context, sessionID string) error {
	endpoint := c.baseURL + "/api/cart/" + url.PathEscape(sessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("cart service returned %d", resp.StatusCode)
	}
	return nil
}
