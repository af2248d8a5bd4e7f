package domain

import "time"

// Виды синхронизаций в журнале результатов.
const (
	SyncTypeAPISync      = "wb_api_sync"
	SyncTypeSheetsUpdate = "sheets_update"
)

// Статусы записей журнала.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SyncLog — запись журнала: один результат одной попытки синхронизации
// (забор данных из WB API или выгрузка в Google-таблицу).
type SyncLog struct {
	ID               int64
	SheetConfigID    *int64 // только для sheets_update
	SyncType         string
	Status           string
	RecordsProcessed int
	ErrorMessage     string
	Metadata         map[string]any
	StartedAt        time.Time
	CompletedAt      *time.Time
}

// ItemFailure — ошибка обработки одного склада внутри синхронизации.
// Такие ошибки не прерывают обработку остальных складов.
type ItemFailure struct {
	Warehouse string `json:"warehouse"`
	Reason    string `json:"reason"`
}

// SyncReport — агрегированный итог одной синхронизации тарифов.
type SyncReport struct {
	EffectiveDate  string        `json:"effective_date"`
	WarehousesSeen int           `json:"warehouses_seen"`
	RowsWritten    int           `json:"rows_written"`
	Failures       []ItemFailure `json:"failures,omitempty"`
}
