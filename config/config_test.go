package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/wb_tariffs/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("TARIFFS_TEST_DEFAULTS")
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

	// Postgres
	if c.Postgres.DSN == "" {
		t.Fatalf("Postgres.DSN should have default, got empty")
	}
	if c.Postgres.MaxConns != 10 {
		t.Fatalf("Postgres.MaxConns: want 10, got %d", c.Postgres.MaxConns)
	}
	if !c.Postgres.Migrate {
		t.Fatalf("Postgres.Migrate: want true, got false")
	}

	// WB API
	if c.WB.BaseURL != "https://common-api.wildberries.ru/api/v1" {
		t.Fatalf("WB.BaseURL wrong: %q", c.WB.BaseURL)
	}
	if c.WB.Token != "" || c.WB.Timeout != 30*time.Second {
		t.Fatalf("WB defaults wrong: %+v", c.WB)
	}

	// Sheets
	if !c.Sheets.Enabled || c.Sheets.Tab != "stocks_coefs" {
		t.Fatalf("Sheets defaults wrong: %+v", c.Sheets)
	}

	// Scheduler
	if !c.Scheduler.Enabled || !c.Scheduler.RunOnStart {
		t.Fatalf("Scheduler defaults wrong: %+v", c.Scheduler)
	}
	if c.Scheduler.SyncSpec != "0 6 * * *" || c.Scheduler.SheetsSpec != "0 7 * * *" {
		t.Fatalf("Scheduler specs wrong: %+v", c.Scheduler)
	}

	// Kafka
	if c.Kafka.Enabled {
		t.Fatalf("Kafka.Enabled: want false, got true")
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) {
		t.Fatalf("Kafka.Brokers: want [kafka:9092], got %v", c.Kafka.Brokers)
	}
	if c.Kafka.Topic != "tariff-sync-events" {
		t.Fatalf("Kafka.Topic wrong: %q", c.Kafka.Topic)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "tariffs-app" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// TestLoadWithPrefix_Overrides — переменные окружения перекрывают значения по умолчанию.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	t.Setenv("TARIFFS_TEST_OVR_HTTP_ADDR", ":9090")
	t.Setenv("TARIFFS_TEST_OVR_WB_TOKEN", "token-123")
	t.Setenv("TARIFFS_TEST_OVR_SCHEDULER_SYNC_CRON", "*/5 * * * *")
	t.Setenv("TARIFFS_TEST_OVR_SHEETS_ENABLED", "false")

	c, err := cfg.LoadWithPrefix("TARIFFS_TEST_OVR")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9090" {
		t.Fatalf("HTTP.Addr: want :9090, got %q", c.HTTP.Addr)
	}
	if c.WB.Token != "token-123" {
		t.Fatalf("WB.Token: want token-123, got %q", c.WB.Token)
	}
	if c.Scheduler.SyncSpec != "*/5 * * * *" {
		t.Fatalf("Scheduler.SyncSpec: want */5 * * * *, got %q", c.Scheduler.SyncSpec)
	}
	if c.Sheets.Enabled {
		t.Fatalf("Sheets.Enabled: want false, got true")
	}
}
