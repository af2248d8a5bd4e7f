//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
	pgrepo "github.com/Gunvolt24/wb_tariffs/internal/repo/postgres"
	"github.com/Gunvolt24/wb_tariffs/internal/testutil"
)

func startRepo(t *testing.T) (*pgrepo.TariffRepository, *pgxpool.Pool, context.Context) {
	t.Helper()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	// короткий контекст — на сами БД-операции
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pgrepo.NewTariffRepository(pool), pool, ctx
}

// 1) Get-or-create периода и склада: повторный вызов возвращает тот же id.
func TestRepo_EnsureIsIdempotent_TC(t *testing.T) {
	t.Parallel()

	repo, _, ctx := startRepo(t)

	periodID, err := repo.EnsureTariffPeriod(ctx, "2025-09-01", "2025-12-31")
	require.NoError(t, err)
	require.Positive(t, periodID)

	periodID2, err := repo.EnsureTariffPeriod(ctx, "2025-09-01", "2025-12-31")
	require.NoError(t, err)
	require.Equal(t, periodID, periodID2)

	// другая пара дат — другой период
	otherID, err := repo.EnsureTariffPeriod(ctx, "2025-10-01", "2025-12-31")
	require.NoError(t, err)
	require.NotEqual(t, periodID, otherID)

	name := "wh-" + testutil.UniqSuffix()
	whID, err := repo.EnsureWarehouse(ctx, name, "Центральный ФО")
	require.NoError(t, err)

	whID2, err := repo.EnsureWarehouse(ctx, name, "Центральный ФО")
	require.NoError(t, err)
	require.Equal(t, whID, whID2)

	// тот же склад в другом регионе — отдельная запись
	whOther, err := repo.EnsureWarehouse(ctx, name, "Южный ФО")
	require.NoError(t, err)
	require.NotEqual(t, whID, whOther)
}

// 2) Повторный upsert той же тройки перезаписывает показатели, не плодя строк.
func TestRepo_UpsertBoxTariff_Overwrites_TC(t *testing.T) {
	t.Parallel()

	repo, pool, ctx := startRepo(t)

	periodID, err := repo.EnsureTariffPeriod(ctx, "2025-09-01", "2025-12-31")
	require.NoError(t, err)
	whID, err := repo.EnsureWarehouse(ctx, "wh-"+testutil.UniqSuffix(), "Центральный ФО")
	require.NoError(t, err)

	tariff := &domain.BoxTariff{
		TariffPeriodID: periodID,
		WarehouseID:    whID,
		EffectiveDate:  "2025-08-18",
		Rates: domain.BoxRates{
			DeliveryBase: 48, DeliveryLiter: 11.2, DeliveryCoef: 160,
			StorageBase: 0.14, StorageCoef: 115,
		},
	}
	require.NoError(t, repo.UpsertBoxTariff(ctx, tariff))

	tariff.Rates.DeliveryCoef = 175
	tariff.Rates.StorageBase = 0.2
	require.NoError(t, repo.UpsertBoxTariff(ctx, tariff))

	var count int
	require.NoError(t, pool.QueryRow(ctx, `
		SELECT count(*) FROM box_tariffs
		WHERE tariff_period_id = $1 AND warehouse_id = $2
	`, periodID, whID).Scan(&count))
	require.Equal(t, 1, count)

	records, err := repo.TariffsByDate(ctx, "2025-08-18")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 175.0, records[0].Rates.DeliveryCoef)
	require.Equal(t, 0.2, records[0].Rates.StorageBase)
}

// 3) Даты — новые первыми; тарифы на дату — по возрастанию коэффициента доставки.
func TestRepo_DatesAndOrdering_TC(t *testing.T) {
	t.Parallel()

	repo, _, ctx := startRepo(t)

	periodID, err := repo.EnsureTariffPeriod(ctx, "2025-09-01", "2025-12-31")
	require.NoError(t, err)

	type row struct {
		name string
		coef float64
		date string
	}
	rows := []row{
		{"wh-b-" + testutil.UniqSuffix(), 1.6, "2025-08-19"},
		{"wh-a-" + testutil.UniqSuffix(), 1.2, "2025-08-19"},
		{"wh-c-" + testutil.UniqSuffix(), 1.4, "2025-08-18"},
	}
	for _, r := range rows {
		whID, err := repo.EnsureWarehouse(ctx, r.name, "Центральный ФО")
		require.NoError(t, err)
		require.NoError(t, repo.UpsertBoxTariff(ctx, &domain.BoxTariff{
			TariffPeriodID: periodID,
			WarehouseID:    whID,
			EffectiveDate:  r.date,
			Rates:          domain.BoxRates{DeliveryCoef: r.coef},
		}))
	}

	dates, err := repo.EffectiveDates(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"2025-08-19", "2025-08-18"}, dates)

	records, err := repo.TariffsByDate(ctx, "2025-08-19")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, rows[1].name, records[0].WarehouseName) // coef 1.2 раньше 1.6
	require.Equal(t, rows[0].name, records[1].WarehouseName)
	require.Equal(t, "2025-08-19", records[0].EffectiveDate)
}

// 4) Настройки таблиц: add → active, deactivate → исчезает из выборки, touch ставит last_updated.
func TestRepo_SheetConfigs_TC(t *testing.T) {
	t.Parallel()

	repo, _, ctx := startRepo(t)

	sheetID := "sheet-" + testutil.UniqSuffix()
	id, err := repo.AddSheetConfig(ctx, sheetID, "основная", "тестовая таблица")
	require.NoError(t, err)
	require.Positive(t, id)

	configs, err := repo.ActiveSheetConfigs(ctx)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	require.Equal(t, sheetID, configs[0].SheetID)
	require.Nil(t, configs[0].LastUpdated)

	require.NoError(t, repo.TouchSheetConfig(ctx, id))
	configs, err = repo.ActiveSheetConfigs(ctx)
	require.NoError(t, err)
	require.NotNil(t, configs[0].LastUpdated)

	require.NoError(t, repo.DeactivateSheetConfig(ctx, sheetID))
	configs, err = repo.ActiveSheetConfigs(ctx)
	require.NoError(t, err)
	require.Empty(t, configs)
}

// 5) Журнал: вставка с метаданными и постраничное чтение (новые первыми).
func TestRepo_SyncLogs_TC(t *testing.T) {
	t.Parallel()

	repo, _, ctx := startRepo(t)

	require.NoError(t, repo.InsertSyncLog(ctx, &domain.SyncLog{
		SyncType:         domain.SyncTypeAPISync,
		Status:           domain.StatusSuccess,
		RecordsProcessed: 37,
		Metadata:         map[string]any{"effective_date": "2025-08-18"},
	}))
	require.NoError(t, repo.InsertSyncLog(ctx, &domain.SyncLog{
		SyncType:     domain.SyncTypeSheetsUpdate,
		Status:       domain.StatusError,
		ErrorMessage: "permission denied",
	}))

	entries, err := repo.LastSyncLogs(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// новые первыми
	require.Equal(t, domain.SyncTypeSheetsUpdate, entries[0].SyncType)
	require.Equal(t, domain.StatusError, entries[0].Status)
	require.Equal(t, "permission denied", entries[0].ErrorMessage)

	require.Equal(t, domain.SyncTypeAPISync, entries[1].SyncType)
	require.Equal(t, 37, entries[1].RecordsProcessed)
	require.Equal(t, "2025-08-18", entries[1].Metadata["effective_date"])
	require.NotNil(t, entries[1].CompletedAt)

	// постранично
	page, err := repo.LastSyncLogs(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, domain.SyncTypeAPISync, page[0].SyncType)
}
