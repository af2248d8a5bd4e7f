package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
)

// ActiveSheetConfigs — все активные настройки таблиц.
func (r *TariffRepository) ActiveSheetConfigs(ctx context.Context) ([]domain.SheetConfig, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, sheet_id, sheet_name, COALESCE(description, ''), is_active, last_updated, created_at, updated_at
		FROM google_sheets_config
		WHERE is_active = TRUE
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select sheet configs: %w", err)
	}
	defer rows.Close()

	var configs []domain.SheetConfig
	for rows.Next() {
		var cfg domain.SheetConfig
		var lastUpdated sql.NullTime
		if err := rows.Scan(
			&cfg.ID, &cfg.SheetID, &cfg.SheetName, &cfg.Description,
			&cfg.IsActive, &lastUpdated, &cfg.CreatedAt, &cfg.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sheet config: %w", err)
		}
		if lastUpdated.Valid {
			t := lastUpdated.Time
			cfg.LastUpdated = &t
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sheet configs rows: %w", err)
	}
	return configs, nil
}

// AddSheetConfig — регистрация новой целевой таблицы (сразу активной).
func (r *TariffRepository) AddSheetConfig(ctx context.Context, sheetID, sheetName, description string) (int64, error) {
	var id int64
	if err := r.pool.QueryRow(ctx, `
		INSERT INTO google_sheets_config (sheet_id, sheet_name, description, is_active)
		VALUES ($1, $2, NULLIF($3, ''), TRUE)
		RETURNING id
	`, sheetID, sheetName, description).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert sheet config: %w", err)
	}
	return id, nil
}

// DeactivateSheetConfig — выключает таблицу из выгрузки (запись не удаляется).
func (r *TariffRepository) DeactivateSheetConfig(ctx context.Context, sheetID string) error {
	if _, err := r.pool.Exec(ctx, `
		UPDATE google_sheets_config SET is_active = FALSE WHERE sheet_id = $1
	`, sheetID); err != nil {
		return fmt.Errorf("deactivate sheet config: %w", err)
	}
	return nil
}

// TouchSheetConfig — отметка времени последней успешной выгрузки.
func (r *TariffRepository) TouchSheetConfig(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `
		UPDATE google_sheets_config SET last_updated = now() WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("touch sheet config: %w", err)
	}
	return nil
}
