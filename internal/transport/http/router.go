package rest

import (
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/resto-app/backend/internal/cart"
	"github.com/resto-app/backend/internal/ports"
	"github.com/resto-app/backend/internal/usecase"
	"github.com/resto-app/backend/pkg/httpx"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// PricingConfig — ставки для сводки корзины (итоги заказа считает usecase).
type PricingConfig struct {
	TaxRate     float64
	DeliveryFee float64
}

type Handler struct {
	catalog   *usecase.CatalogService
	orders    *usecase.OrderService
	cartStore *cart.Store
	log       ports.Logger

	pricing       PricingConfig
	cartRetention time.Duration
}

func NewHandler(
	catalog *usecase.CatalogService,
	orders *usecase.OrderService,
	cartStore *cart.Store,
	log ports.Logger,
	pricing PricingConfig,
	cartRetention time.Duration,
) *Handler {
	return &Handler{
		catalog:       catalog,
		orders:        orders,
		cartStore:     cartStore,
		log:           log,
		pricing:       pricing,
		cartRetention: cartRetention,
	}
}

func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/menu", h.listMenu)
	r.GET("/menu/:id", h.getMenuItem)
	r.POST("/menu", h.createMenuItem)
	r.PUT("/menu/:id", h.updateMenuItem)
	r.DELETE("/menu/:id", h.deleteMenuItem)

	r.GET("/cart", h.getCart)
	r.POST("/cart/items", h.addCartLine)
	r.PATCH("/cart/items/:cartId", h.updateCartLine)
	r.DELETE("/cart/items/:cartId", h.removeCartLine)
	r.DELETE("/cart", h.clearCart)

	r.POST("/orders", h.placeOrder)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}
