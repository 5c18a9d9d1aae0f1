package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/resto-app/backend/config"
	cachemem "github.com/resto-app/backend/internal/cache/memory"
	"github.com/resto-app/backend/internal/cache/readthrough"
	cacheredis "github.com/resto-app/backend/internal/cache/redis"
	"github.com/resto-app/backend/internal/cart"
	"github.com/resto-app/backend/internal/kafka"
	"github.com/resto-app/backend/internal/ports"
	"github.com/resto-app/backend/internal/repo/postgres"
	rest "github.com/resto-app/backend/internal/transport/http"
	"github.com/resto-app/backend/internal/usecase"
	"github.com/resto-app/backend/pkg/logger"
	"github.com/resto-app/backend/pkg/metrics"
	"github.com/resto-app/backend/pkg/telemetry"
	"github.com/resto-app/backend/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger // логгер
	HTTPServer      *http.Server // HTTP-сервер
	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// newKVCache — выбирает бэкенд KV-кэша: Redis (общий между репликами)
// или встроенный LRU (локальный запуск без Redis).
func newKVCache(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.KVCache, Cleanup, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Cache.Backend)) {
	case "", "redis":
		client, err := cacheredis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, func() {}, err
		}
		cleanup := func() {
			if cErr := client.Close(); cErr != nil {
				log.Warnf(ctx, "redis close error: %v", cErr)
			}
		}
		return cacheredis.NewKVCache(client), cleanup, nil
	case "memory":
		return cachemem.NewKVCache(cfg.Cache.MemoryCapacity), func() {}, nil
	default:
		log.Warnf(ctx, "unknown CACHE_BACKEND=%q, fallback to memory", cfg.Cache.Backend)
		return cachemem.NewKVCache(cfg.Cache.MemoryCapacity), func() {}, nil
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// KV-кэш (Redis или встроенный LRU).
	kvCache, cleanupCache, err := newKVCache(ctx, cfg, logg)
	if err != nil {
		pool.Close()
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка зависимостей доменного слоя.
	menuRepo := postgres.NewMenuRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	menuValidator := validate.NewMenuValidator()
	readSource := readthrough.NewSource(kvCache, logg)
	catalogService := usecase.NewCatalogService(menuRepo, readSource, logg, menuValidator,
		cfg.Cache.ListTTL, cfg.Cache.ItemTTL)

	// Продюсер событий order.created (опционален: без Kafka заказы
	// оформляются, события просто не публикуются).
	var publisher ports.EventPublisher
	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(&kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, logg)
		publisher = producer
	}

	orderService := usecase.NewOrderService(menuRepo, orderRepo, publisher, logg,
		cfg.Pricing.TaxRate, cfg.Pricing.DeliveryFee)

	cartStore := cart.NewStore(kvCache, logg, cfg.Cart.Retention)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(catalogService, orderService, cartStore, logg,
		rest.PricingConfig{TaxRate: cfg.Pricing.TaxRate, DeliveryFee: cfg.Pricing.DeliveryFee},
		cfg.Cart.Retention)
	router := rest.NewRouter(httpHandler, "./web", otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if producer != nil {
			if pErr := producer.Close(); pErr != nil {
				logg.Warnf(ctx, "kafka producer close error: %v", pErr)
			}
		}
		cleanupCache()
		pool.Close()
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки и останавливает его.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "background error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
