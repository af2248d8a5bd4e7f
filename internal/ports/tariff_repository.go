package ports

import (
	"context"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
)

// TariffRepository — граница хранилища тарифов.
// Get-or-create по натуральным ключам обязан быть устойчивым к гонкам:
// уникальность обеспечивает БД (ON CONFLICT), а не проверка на клиенте.
type TariffRepository interface {
	// EnsureTariffPeriod — возвращает id периода по паре (dtNextBox, dtTillMax),
	// создавая запись при отсутствии.
	EnsureTariffPeriod(ctx context.Context, dtNextBox, dtTillMax string) (int64, error)

	// EnsureWarehouse — возвращает id склада по паре (warehouseName, geoName),
	// создавая запись при отсутствии.
	EnsureWarehouse(ctx context.Context, warehouseName, geoName string) (int64, error)

	// UpsertBoxTariff — вставка либо полная перезапись девяти показателей
	// по тройке (период, склад, effective-дата).
	UpsertBoxTariff(ctx context.Context, tariff *domain.BoxTariff) error

	// EffectiveDates — все различные effective-даты (YYYY-MM-DD), новые первыми.
	EffectiveDates(ctx context.Context) ([]string, error)

	// TariffsByDate — тарифы на дату вместе с идентичностью склада,
	// по возрастанию коэффициента доставки.
	TariffsByDate(ctx context.Context, date string) ([]domain.TariffRecord, error)
}

// SheetConfigRepository — настройки целевых Google-таблиц.
type SheetConfigRepository interface {
	ActiveSheetConfigs(ctx context.Context) ([]domain.SheetConfig, error)
	AddSheetConfig(ctx context.Context, sheetID, sheetName, description string) (int64, error)
	DeactivateSheetConfig(ctx context.Context, sheetID string) error

	// TouchSheetConfig — обновляет отметку last_updated после успешной выгрузки.
	TouchSheetConfig(ctx context.Context, id int64) error
}

// SyncLogRepository — журнал результатов синхронизаций.
type SyncLogRepository interface {
	InsertSyncLog(ctx context.Context, entry *domain.SyncLog) error
	LastSyncLogs(ctx context.Context, limit, offset int) ([]domain.SyncLog, error)
}
