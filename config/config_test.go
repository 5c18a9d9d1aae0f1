package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/resto-app/backend/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("RESTO_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr: want :8080, got %q", c.HTTP.Addr)
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP.GracefulTimeout: want 5s, got %v", c.HTTP.GracefulTimeout)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "resto-backend" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Postgres
	if c.Postgres.DSN == "" {
		t.Fatalf("Postgres.DSN should have default, got empty")
	}
	if c.Postgres.MaxConns != 10 {
		t.Fatalf("Postgres.MaxConns: want 10, got %d", c.Postgres.MaxConns)
	}

	// Redis
	if c.Redis.Addr != "redis:6379" || c.Redis.DB != 0 {
		t.Fatalf("Redis defaults wrong: %+v", c.Redis)
	}

	// Kafka
	if !c.Kafka.Enabled {
		t.Fatalf("Kafka.Enabled: want true by default")
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) {
		t.Fatalf("Kafka.Brokers: want [kafka:9092], got %v", c.Kafka.Brokers)
	}
	if c.Kafka.Topic != "orders" || c.Kafka.WriteTimeout != 10*time.Second {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}

	// Cache
	if c.Cache.Backend != "redis" || c.Cache.MemoryCapacity != 1000 {
		t.Fatalf("Cache defaults wrong: %+v", c.Cache)
	}
	if c.Cache.ListTTL != 30*time.Minute || c.Cache.ItemTTL != 30*time.Minute {
		t.Fatalf("Cache TTL defaults wrong: %+v", c.Cache)
	}

	// Cart
	if c.Cart.Retention != 24*time.Hour {
		t.Fatalf("Cart.Retention: want 24h, got %v", c.Cart.Retention)
	}

	// Pricing
	if c.Pricing.TaxRate != 0.08 || c.Pricing.DeliveryFee != 3.99 {
		t.Fatalf("Pricing defaults wrong: %+v", c.Pricing)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "RESTO_TEST_OVR"

	// HTTP
	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "2s")
	t.Setenv(p+"_HTTP_WRITE_TIMEOUT", "3s")
	t.Setenv(p+"_HTTP_READ_HEADER_TIMEOUT", "1s")
	t.Setenv(p+"_HTTP_IDLE_TIMEOUT", "15s")
	t.Setenv(p+"_HTTP_GRACEFUL_TIMEOUT", "7s")

	// Tracing
	t.Setenv(p+"_TRACING_ENABLED", "true")
	t.Setenv(p+"_TRACING_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_ENDPOINT", "collector:4318")
	t.Setenv(p+"_TRACING_SAMPLE_RATIO", "0.25")

	// Postgres
	t.Setenv(p+"_POSTGRES_DSN", "postgres://u:p@h:5432/db?sslmode=disable")
	t.Setenv(p+"_POSTGRES_MAX_CONNS", "42")

	// Redis
	t.Setenv(p+"_REDIS_ADDR", "localhost:6380")
	t.Setenv(p+"_REDIS_DB", "3")

	// Kafka
	t.Setenv(p+"_KAFKA_ENABLED", "false")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_KAFKA_TOPIC", "orders-test")
	t.Setenv(p+"_KAFKA_WRITE_TIMEOUT", "250ms")

	// Cache
	t.Setenv(p+"_CACHE_BACKEND", "memory")
	t.Setenv(p+"_CACHE_MEMORY_CAPACITY", "777")
	t.Setenv(p+"_CACHE_LIST_TTL", "5m")
	t.Setenv(p+"_CACHE_ITEM_TTL", "45m")

	// Cart / Pricing
	t.Setenv(p+"_CART_RETENTION", "48h")
	t.Setenv(p+"_PRICING_TAX_RATE", "0.1")
	t.Setenv(p+"_PRICING_DELIVERY_FEE", "5.5")

	// Logger
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// Проверки
	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 2*time.Second || c.HTTP.WriteTimeout != 3*time.Second ||
		c.HTTP.ReadHeaderTimeout != 1*time.Second || c.HTTP.IdleTimeout != 15*time.Second ||
		c.HTTP.GracefulTimeout != 7*time.Second {
		t.Fatalf("HTTP timeouts override wrong: %+v", c.HTTP)
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" || c.Tracing.Endpoint != "collector:4318" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Postgres.DSN != "postgres://u:p@h:5432/db?sslmode=disable" || c.Postgres.MaxConns != 42 {
		t.Fatalf("Postgres overrides wrong: %+v", c.Postgres)
	}
	if c.Redis.Addr != "localhost:6380" || c.Redis.DB != 3 {
		t.Fatalf("Redis overrides wrong: %+v", c.Redis)
	}
	if c.Kafka.Enabled {
		t.Fatalf("Kafka.Enabled override wrong: %+v", c.Kafka)
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) ||
		c.Kafka.Topic != "orders-test" || c.Kafka.WriteTimeout != 250*time.Millisecond {
		t.Fatalf("Kafka overrides wrong: %+v", c.Kafka)
	}
	if c.Cache.Backend != "memory" || c.Cache.MemoryCapacity != 777 ||
		c.Cache.ListTTL != 5*time.Minute || c.Cache.ItemTTL != 45*time.Minute {
		t.Fatalf("Cache overrides wrong: %+v", c.Cache)
	}
	if c.Cart.Retention != 48*time.Hour {
		t.Fatalf("Cart override wrong: %+v", c.Cart)
	}
	if c.Pricing.TaxRate != 0.1 || c.Pricing.DeliveryFee != 5.5 {
		t.Fatalf("Pricing overrides wrong: %+v", c.Pricing)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "RESTO_TEST_BAD"
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}
