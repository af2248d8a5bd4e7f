package ports

import (
	"context"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
)

// TariffSyncService — прикладной порт «запустить одну синхронизацию».
// Используется транспортом и планировщиком.
type TariffSyncService interface {
	SyncTariffs(ctx context.Context, effectiveDate string) (domain.SyncReport, error)
}

// SheetsUpdateService — прикладной порт «перерисовать все активные таблицы».
type SheetsUpdateService interface {
	UpdateAllSheets(ctx context.Context) error
}
