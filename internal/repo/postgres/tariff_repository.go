package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
	"github.com/Gunvolt24/wb_tariffs/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверки, что TariffRepository закрывает все порты хранилища.
var (
	_ ports.TariffRepository      = (*TariffRepository)(nil)
	_ ports.SheetConfigRepository = (*TariffRepository)(nil)
	_ ports.SyncLogRepository     = (*TariffRepository)(nil)
)

const dateLayout = "2006-01-02"

// TariffRepository — реализация хранилища тарифов на Postgres (pgxpool).
type TariffRepository struct {
	pool *pgxpool.Pool
}

// NewTariffRepository - конструктор TariffRepository.
func NewTariffRepository(pool *pgxpool.Pool) *TariffRepository { return &TariffRepository{pool: pool} }

// EnsureTariffPeriod — get-or-create периода по натуральному ключу (dt_next_box, dt_till_max).
// Гонку двух конкурентных запусков разрешает БД: INSERT ... ON CONFLICT DO NOTHING,
// затем выборка выжившей записи.
func (r *TariffRepository) EnsureTariffPeriod(ctx context.Context, dtNextBox, dtTillMax string) (int64, error) {
	next, err := parseDate(dtNextBox)
	if err != nil {
		return 0, fmt.Errorf("dt_next_box: %w", err)
	}
	till, err := parseDate(dtTillMax)
	if err != nil {
		return 0, fmt.Errorf("dt_till_max: %w", err)
	}

	var id int64
	err = r.pool.QueryRow(ctx, `
		INSERT INTO tariff_periods (dt_next_box, dt_till_max)
		VALUES ($1, $2)
		ON CONFLICT (dt_next_box, dt_till_max) DO NOTHING
		RETURNING id
	`, next, till).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("insert tariff period: %w", err)
	}

	// Конфликт: запись уже есть, читаем её id.
	if err := r.pool.QueryRow(ctx, `
		SELECT id FROM tariff_periods WHERE dt_next_box = $1 AND dt_till_max = $2
	`, next, till).Scan(&id); err != nil {
		return 0, fmt.Errorf("select tariff period: %w", err)
	}
	return id, nil
}

// EnsureWarehouse — get-or-create склада по натуральному ключу (warehouse_name, geo_name).
func (r *TariffRepository) EnsureWarehouse(ctx context.Context, warehouseName, geoName string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO warehouses (warehouse_name, geo_name)
		VALUES ($1, $2)
		ON CONFLICT (warehouse_name, geo_name) DO NOTHING
		RETURNING id
	`, warehouseName, geoName).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("insert warehouse: %w", err)
	}

	if err := r.pool.QueryRow(ctx, `
		SELECT id FROM warehouses WHERE warehouse_name = $1 AND geo_name = $2
	`, warehouseName, geoName).Scan(&id); err != nil {
		return 0, fmt.Errorf("select warehouse: %w", err)
	}
	return id, nil
}

// UpsertBoxTariff — вставка либо полная перезапись девяти показателей
// по тройке (tariff_period_id, warehouse_id, effective_date).
func (r *TariffRepository) UpsertBoxTariff(ctx context.Context, tariff *domain.BoxTariff) error {
	if tariff == nil {
		return errors.New("tariff is nil")
	}
	eff, err := parseDate(tariff.EffectiveDate)
	if err != nil {
		return fmt.Errorf("effective_date: %w", err)
	}

	rates := tariff.Rates
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO box_tariffs (
			tariff_period_id, warehouse_id, effective_date,
			box_delivery_base, box_delivery_liter, box_delivery_coef_expr,
			box_delivery_marketplace_base, box_delivery_marketplace_liter, box_delivery_marketplace_coef_expr,
			box_storage_base, box_storage_liter, box_storage_coef_expr
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (tariff_period_id, warehouse_id, effective_date) DO UPDATE SET
			box_delivery_base = EXCLUDED.box_delivery_base,
			box_delivery_liter = EXCLUDED.box_delivery_liter,
			box_delivery_coef_expr = EXCLUDED.box_delivery_coef_expr,
			box_delivery_marketplace_base = EXCLUDED.box_delivery_marketplace_base,
			box_delivery_marketplace_liter = EXCLUDED.box_delivery_marketplace_liter,
			box_delivery_marketplace_coef_expr = EXCLUDED.box_delivery_marketplace_coef_expr,
			box_storage_base = EXCLUDED.box_storage_base,
			box_storage_liter = EXCLUDED.box_storage_liter,
			box_storage_coef_expr = EXCLUDED.box_storage_coef_expr
	`,
		tariff.TariffPeriodID, tariff.WarehouseID, eff,
		rates.DeliveryBase, rates.DeliveryLiter, rates.DeliveryCoef,
		rates.DeliveryMarketplaceBase, rates.DeliveryMarketplaceLiter, rates.DeliveryMarketplaceCoef,
		rates.StorageBase, rates.StorageLiter, rates.StorageCoef,
	); err != nil {
		return fmt.Errorf("upsert box tariff: %w", err)
	}
	return nil
}

// EffectiveDates — различные effective-даты, новые первыми.
func (r *TariffRepository) EffectiveDates(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT effective_date
		FROM box_tariffs
		ORDER BY effective_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("select effective dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan effective date: %w", err)
		}
		dates = append(dates, d.Format(dateLayout))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("effective dates rows: %w", err)
	}
	return dates, nil
}

// TariffsByDate — тарифы на дату вместе со складом,
// по возрастанию коэффициента доставки (порядок — контракт выгрузки).
func (r *TariffRepository) TariffsByDate(ctx context.Context, date string) ([]domain.TariffRecord, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT
			b.id, b.tariff_period_id, b.warehouse_id, b.effective_date,
			b.box_delivery_base, b.box_delivery_liter, COALESCE(b.box_delivery_coef_expr, 0),
			b.box_delivery_marketplace_base, b.box_delivery_marketplace_liter, COALESCE(b.box_delivery_marketplace_coef_expr, 0),
			b.box_storage_base, b.box_storage_liter, COALESCE(b.box_storage_coef_expr, 0),
			w.warehouse_name, w.geo_name
		FROM box_tariffs b
		JOIN warehouses w ON w.id = b.warehouse_id
		WHERE b.effective_date = $1
		ORDER BY COALESCE(b.box_delivery_coef_expr, 0) ASC, b.id ASC
	`, day)
	if err != nil {
		return nil, fmt.Errorf("select tariffs by date: %w", err)
	}
	defer rows.Close()

	var records []domain.TariffRecord
	for rows.Next() {
		var rec domain.TariffRecord
		var eff time.Time
		if err := rows.Scan(
			&rec.ID, &rec.TariffPeriodID, &rec.WarehouseID, &eff,
			&rec.Rates.DeliveryBase, &rec.Rates.DeliveryLiter, &rec.Rates.DeliveryCoef,
			&rec.Rates.DeliveryMarketplaceBase, &rec.Rates.DeliveryMarketplaceLiter, &rec.Rates.DeliveryMarketplaceCoef,
			&rec.Rates.StorageBase, &rec.Rates.StorageLiter, &rec.Rates.StorageCoef,
			&rec.WarehouseName, &rec.GeoName,
		); err != nil {
			return nil, fmt.Errorf("scan tariff record: %w", err)
		}
		rec.EffectiveDate = eff.Format(dateLayout)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tariffs rows: %w", err)
	}
	return records, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
