package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/resto-app/backend/internal/cart"
	"github.com/resto-app/backend/internal/domain"
	"github.com/resto-app/backend/internal/usecase"
)

// sessionHeader — идентификатор сессии корзины; выдаётся сервером,
// если клиент пришёл без него, и всегда возвращается в ответе.
const sessionHeader = "X-Cart-Session"

type cartResponse struct {
	Session string             `json:"session"`
	Lines   []domain.CartLine  `json:"lines"`
	Summary domain.CartSummary `json:"summary"`
}

type addCartLineRequest struct {
	ItemID       string   `json:"item_id" binding:"required"`
	SizeID       string   `json:"size_id"`
	ToppingIDs   []string `json:"topping_ids"`
	Quantity     int      `json:"quantity"`
	Instructions string   `json:"special_instructions"`
}

type updateCartLineRequest struct {
	Quantity int `json:"quantity"`
}

// loadCart — восстанавливает движок корзины по сессии из заголовка.
func (h *Handler) loadCart(c *gin.Context) (*cart.Engine, string) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	c.Header(sessionHeader, sessionID)

	engine := cart.NewEngine(h.cartRetention)
	engine.Restore(h.cartStore.Load(c.Request.Context(), sessionID))
	return engine, sessionID
}

func (h *Handler) respondCart(c *gin.Context, engine *cart.Engine, sessionID string) {
	c.JSON(http.StatusOK, cartResponse{
		Session: sessionID,
		Lines:   engine.Lines(),
		Summary: engine.Summarize(h.pricing.TaxRate, h.pricing.DeliveryFee, 0),
	})
}

func (h *Handler) getCart(c *gin.Context) {
	engine, sessionID := h.loadCart(c)
	h.respondCart(c, engine, sessionID)
}

func (h *Handler) addCartLine(c *gin.Context) {
	var req addCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	// Цена строки считается по текущему каталогу (через кэш чтения).
	item, err := h.catalog.GetItem(c.Request.Context(), req.ItemID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	engine, sessionID := h.loadCart(c)
	engine.AddLine(*item, req.SizeID, req.ToppingIDs, req.Quantity, req.Instructions)
	h.cartStore.Save(c.Request.Context(), sessionID, engine.Snapshot())
	h.respondCart(c, engine, sessionID)
}

func (h *Handler) updateCartLine(c *gin.Context) {
	var req updateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	engine, sessionID := h.loadCart(c)
	// quantity < 1 и неизвестный cart_id — no-op: состояние не меняется.
	if engine.UpdateQuantity(c.Param("cartId"), req.Quantity) {
		h.cartStore.Save(c.Request.Context(), sessionID, engine.Snapshot())
	}
	h.respondCart(c, engine, sessionID)
}

func (h *Handler) removeCartLine(c *gin.Context) {
	engine, sessionID := h.loadCart(c)
	if engine.RemoveLine(c.Param("cartId")) {
		h.cartStore.Save(c.Request.Context(), sessionID, engine.Snapshot())
	}
	h.respondCart(c, engine, sessionID)
}

func (h *Handler) clearCart(c *gin.Context) {
	engine, sessionID := h.loadCart(c)
	engine.Clear()
	h.cartStore.Clear(c.Request.Context(), sessionID)
	h.respondCart(c, engine, sessionID)
}
