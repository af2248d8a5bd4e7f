package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
)

// InsertSyncLog — добавляет запись журнала. Запуск считается завершённым
// в момент записи, поэтому completed_at проставляется здесь же.
func (r *TariffRepository) InsertSyncLog(ctx context.Context, entry *domain.SyncLog) error {
	if entry == nil {
		return errors.New("sync log entry is nil")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO sync_logs (sheet_config_id, sync_type, status, records_processed, error_message, metadata, completed_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, now())
	`,
		entry.SheetConfigID, entry.SyncType, entry.Status,
		entry.RecordsProcessed, entry.ErrorMessage, entry.Metadata,
	); err != nil {
		return fmt.Errorf("insert sync log: %w", err)
	}
	return nil
}

// LastSyncLogs — последние записи журнала (постранично, новые первыми).
func (r *TariffRepository) LastSyncLogs(ctx context.Context, limit, offset int) ([]domain.SyncLog, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, sheet_config_id, sync_type, status, records_processed,
			COALESCE(error_message, ''), metadata, started_at, completed_at
		FROM sync_logs
		ORDER BY started_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select sync logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.SyncLog
	for rows.Next() {
		var entry domain.SyncLog
		var sheetConfigID sql.NullInt64
		var completedAt sql.NullTime
		if err := rows.Scan(
			&entry.ID, &sheetConfigID, &entry.SyncType, &entry.Status,
			&entry.RecordsProcessed, &entry.ErrorMessage, &entry.Metadata,
			&entry.StartedAt, &completedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sync log: %w", err)
		}
		if sheetConfigID.Valid {
			id := sheetConfigID.Int64
			entry.SheetConfigID = &id
		}
		if completedAt.Valid {
			t := completedAt.Time
			entry.CompletedAt = &t
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sync logs rows: %w", err)
	}
	return entries, nil
}
