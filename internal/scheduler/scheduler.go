// Пакет scheduler — cron-запуск синхронизации и выгрузки по расписанию.
// Ядро остаётся простым: планировщик лишь дергает идемпотентные
// входные точки и не пытается сериализовать пересекающиеся запуски.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/Gunvolt24/wb_tariffs/internal/ports"
)

// Config — два расписания в стандартном 5-польном cron-формате.
type Config struct {
	SyncSpec   string // синхронизация тарифов из WB API
	SheetsSpec string // плановая перерисовка таблиц
}

// Scheduler — обёртка над cron с двумя задачами.
type Scheduler struct {
	cron *cron.Cron
	log  ports.Logger
}

// New — регистрирует обе задачи; невалидное расписание — ошибка сборки.
func New(cfg Config, syncer ports.TariffSyncService, sheets ports.SheetsUpdateService, log ports.Logger) (*Scheduler, error) {
	c := cron.New()

	if _, err := c.AddFunc(cfg.SyncSpec, func() {
		ctx := context.Background()
		log.Infof(ctx, "scheduler: tariff sync tick")
		if _, err := syncer.SyncTariffs(ctx, ""); err != nil {
			log.Errorf(ctx, "scheduler: tariff sync failed: %v", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("sync schedule %q: %w", cfg.SyncSpec, err)
	}

	if sheets != nil {
		if _, err := c.AddFunc(cfg.SheetsSpec, func() {
			ctx := context.Background()
			log.Infof(ctx, "scheduler: sheets refresh tick")
			if err := sheets.UpdateAllSheets(ctx); err != nil {
				log.Errorf(ctx, "scheduler: sheets refresh failed: %v", err)
			}
		}); err != nil {
			return nil, fmt.Errorf("sheets schedule %q: %w", cfg.SheetsSpec, err)
		}
	}

	return &Scheduler{cron: c, log: log}, nil
}

// Start — запускает cron в его собственной горутине.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop — останавливает планировщик и ждёт завершения активных задач.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
