package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/wb_tariffs/config"
	"github.com/Gunvolt24/wb_tariffs/internal/kafka"
	"github.com/Gunvolt24/wb_tariffs/internal/ports"
	"github.com/Gunvolt24/wb_tariffs/internal/repo/postgres"
	"github.com/Gunvolt24/wb_tariffs/internal/scheduler"
	"github.com/Gunvolt24/wb_tariffs/internal/sheets"
	rest "github.com/Gunvolt24/wb_tariffs/internal/transport/http"
	"github.com/Gunvolt24/wb_tariffs/internal/usecase"
	"github.com/Gunvolt24/wb_tariffs/internal/wbapi"
	"github.com/Gunvolt24/wb_tariffs/pkg/logger"
	"github.com/Gunvolt24/wb_tariffs/pkg/metrics"
	"github.com/Gunvolt24/wb_tariffs/pkg/telemetry"
	"github.com/Gunvolt24/wb_tariffs/pkg/validate"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, планировщик).
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	Scheduler       *scheduler.Scheduler // nil — планировщик выключен конфигурацией
	Sync            ports.TariffSyncService
	runOnStart      bool
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

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Миграции схемы (goose) — до открытия пула.
	if cfg.Postgres.Migrate {
		if mErr := postgres.Migrate(cfg.Postgres.DSN); mErr != nil {
			if cErr := cleanupLogger(); cErr != nil {
				logg.Warnf(ctx, "cleanup logger: %v", cErr)
			}
			return nil, func() {}, mErr
		}
		logg.Infof(ctx, "migrations applied")
	}

	// Пул подключений Postgres.
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
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
	repo := postgres.NewTariffRepository(pool)
	snapshotValidator := validate.NewSnapshotValidator()
	wbClient := wbapi.NewClient(wbapi.Config{
		BaseURL: cfg.WB.BaseURL,
		Token:   cfg.WB.Token,
		Timeout: cfg.WB.Timeout,
	}, logg)

	// Публикация исходов в Kafka — опциональна.
	var events ports.OutcomePublisher
	var publisher *kafka.Publisher
	if cfg.Kafka.Enabled {
		publisher = kafka.NewPublisher(&kafka.PublisherConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logg)
		events = publisher
		logg.Infof(ctx, "kafka outcome events enabled topic=%s", cfg.Kafka.Topic)
	}

	// Выгрузка в Google Sheets — опциональна; без файла учётных данных не стартуем.
	var sheetsSvc ports.SheetsUpdateService
	if cfg.Sheets.Enabled {
		if cfg.Sheets.CredentialsFile == "" {
			cleanupPartial(ctx, logg, cleanupLogger, pool, publisher, shutdownTrace)
			return nil, func() {}, errors.New("sheets enabled but TARIFFS_SHEETS_CREDENTIALS_FILE is empty")
		}
		gc, gErr := sheets.NewGoogleClient(ctx, cfg.Sheets.CredentialsFile)
		if gErr != nil {
			cleanupPartial(ctx, logg, cleanupLogger, pool, publisher, shutdownTrace)
			return nil, func() {}, gErr
		}
		sheetsSvc = usecase.NewSheetsService(repo, repo, repo, gc, events, cfg.Sheets.Tab, logg)
	} else {
		logg.Infof(ctx, "sheets rendering disabled by config")
	}

	syncSvc := usecase.NewSyncService(wbClient, repo, repo, snapshotValidator, sheetsSvc, events, logg)

	// Планировщик — опционален.
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(scheduler.Config{
			SyncSpec:   cfg.Scheduler.SyncSpec,
			SheetsSpec: cfg.Scheduler.SheetsSpec,
		}, syncSvc, sheetsSvc, logg)
		if err != nil {
			cleanupPartial(ctx, logg, cleanupLogger, pool, publisher, shutdownTrace)
			return nil, func() {}, err
		}
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(syncSvc, sheetsSvc, repo, logg)
	router := rest.NewRouter(httpHandler, logg, otelServiceName)

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
		Scheduler:       sched,
		Sync:            syncSvc,
		runOnStart:      cfg.Scheduler.Enabled && cfg.Scheduler.RunOnStart,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if publisher != nil {
			if perr := publisher.Close(); perr != nil {
				logg.Warnf(ctx, "kafka publisher close error: %v", perr)
			}
		}

		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// cleanupPartial — освобождает уже собранные ресурсы при ошибке на середине сборки.
func cleanupPartial(
	ctx context.Context,
	logg ports.Logger,
	cleanupLogger func() error,
	pool interface{ Close() },
	publisher *kafka.Publisher,
	shutdownTrace func(context.Context) error,
) {
	if terr := shutdownTrace(context.Background()); terr != nil {
		logg.Warnf(ctx, "shutdown tracing: %v", terr)
	}
	if publisher != nil {
		if perr := publisher.Close(); perr != nil {
			logg.Warnf(ctx, "kafka publisher close error: %v", perr)
		}
	}
	pool.Close()
	if cErr := cleanupLogger(); cErr != nil {
		logg.Warnf(ctx, "cleanup logger: %v", cErr)
	}
}

// Run — запускает планировщик и HTTP-сервер; ждёт отмены контекста
// или фоновой ошибки и корректно останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Стартовая синхронизация (не блокирует подъём HTTP).
	if a.runOnStart {
		go func() {
			a.Logger.Infof(ctx, "initial sync starting")
			if _, err := a.Sync.SyncTariffs(ctx, ""); err != nil {
				a.Logger.Warnf(ctx, "initial sync failed: %v", err)
			}
		}()
	}

	// Запуск планировщика.
	if a.Scheduler != nil {
		a.Logger.Infof(ctx, "scheduler starting")
		a.Scheduler.Start()
	}

	// Запуск HTTP-сервера.
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

	// Остановка планировщика (дожидаемся активных задач).
	if a.Scheduler != nil {
		a.Scheduler.Stop()
		a.Logger.Infof(ctx, "scheduler stopped")
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
