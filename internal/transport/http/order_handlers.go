package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resto-app/backend/internal/domain"
	"github.com/resto-app/backend/internal/usecase"
)

func (h *Handler) placeOrder(c *gin.Context) {
	var req domain.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidOrder) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// Успешное оформление очищает корзину сессии (если сессия передана).
	if sessionID := c.GetHeader(sessionHeader); sessionID != "" {
		h.cartStore.Clear(c.Request.Context(), sessionID)
	}

	c.JSON(http.StatusCreated, order)
}
