package checkout

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CartClearer is the outbound dependency on the cart service.
type CartClearer interface {
	ClearCart(ctx context.Context, sessionID string) error
}

// Handler exposes the checkout HTTP endpoints.
type Handler struct {
	store Store
	cart  CartClearer
	log   *slog.Logger
}

func NewHandler(store Store, cart CartClearer, log *slog.Logger) *Handler {
	return &Handler{store: store, cart: cart, log: log}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", h.health)
	r.POST("/api/checkout", h.create)
	r.GET("/api/orders", h.list)
	r.GET("/api/orders/:orderNumber", h.get)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "checkout"})
}

type checkoutRequest struct {
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	CustomerPhone string      `json:"customerPhone"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	SessionID     string      `json:"sessionId"`
}

func (h *Handler) create(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if req.CustomerName == "" || req.CustomerEmail == "" || req.CustomerPhone == "" || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	order := Order{
		OrderNumber:   GenerateOrderNumber(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Items:         req.Items,
		// trusted from the client, not recomputed from items
		TotalAmount: req.TotalAmount,
		Status:      StatusCompleted,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := h.store.Create(c.Request.Context(), order)
	if errors.Is(err, ErrDuplicateOrderNumber) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.SessionID != "" {
		h.clearCart(req.SessionID)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order completed successfully",
		"order":   created,
	})
}

// clearCart makes one best-effort attempt against the cart service. The
// order has already been persisted; a failure here is logged and
// swallowed, never surfaced to the caller.
func (h *Handler) clearCart(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.cart.ClearCart(ctx, sessionID); err != nil {
		h.log.Warn("clearing cart failed", "sessionId", sessionID, "err", err)
		return
	}
	h.log.Info("cart cleared after checkout", "sessionId", sessionID)
}

func (h *Handler) get(c *gin.Context) {
	order, err := h.store.GetByNumber(c.Request.Context(), c.Param("orderNumber"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) list(c *gin.Context) {
	orders, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}
