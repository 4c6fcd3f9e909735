package cart

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the cart HTTP endpoints.
type Handler struct {
	store Store
	log   *slog.Logger
}

func NewHandler(store Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", h.health)
	r.GET("/api/cart/:sessionId", h.get)
	r.POST("/api/cart/:sessionId", h.add)
	r.PUT("/api/cart/:sessionId/:itemId", h.setQuantity)
	r.DELETE("/api/cart/:sessionId/:itemId", h.remove)
	r.DELETE("/api/cart/:sessionId", h.clear)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "cart"})
}

func (h *Handler) get(c *gin.Context) {
	items, err := h.store.ItemsBySession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

func (h *Handler) add(c *gin.Context) {
	var in AddInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	item, err := h.store.Add(c.Request.Context(), c.Param("sessionId"), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) setQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	// no lower bound on quantity; zero and negative pass through
	item, err := h.store.SetQuantity(c.Request.Context(), c.Param("sessionId"), c.Param("itemId"), req.Quantity)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) remove(c *gin.Context) {
	err := h.store.Remove(c.Request.Context(), c.Param("sessionId"), c.Param("itemId"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func (h *Handler) clear(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context(), c.Param("sessionId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.log.Debug("cart cleared", "sessionId", c.Param("sessionId"))
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
