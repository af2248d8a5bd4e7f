package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/wb_tariffs/internal/ports"
	"github.com/Gunvolt24/wb_tariffs/internal/wbapi"
	"github.com/Gunvolt24/wb_tariffs/pkg/httpx"
)

// Handler — операционные ручки: ручной запуск синхронизации и выгрузки,
// чтение журнала. Пользовательского API здесь нет.
type Handler struct {
	sync   ports.TariffSyncService
	sheets ports.SheetsUpdateService // nil — выгрузка выключена конфигурацией
	logs   ports.SyncLogRepository
	log    ports.Logger
}

func NewHandler(sync ports.TariffSyncService, sheets ports.SheetsUpdateService, logs ports.SyncLogRepository, log ports.Logger) *Handler {
	return &Handler{sync: sync, sheets: sheets, logs: logs, log: log}
}

// runSync — POST /api/v1/sync?date=YYYY-MM-DD (дата опциональна).
func (h *Handler) runSync(c *gin.Context) {
	date := c.Query("date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
	}

	report, err := h.sync.SyncTariffs(c.Request.Context(), date)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "manual sync failed date=%s err=%v", date, err)
		status := http.StatusInternalServerError
		// Проблемы источника отдаём как 502: хранилище и сервис живы.
		var statusErr *wbapi.StatusError
		if errors.Is(err, wbapi.ErrTimeout) || errors.As(err, &statusErr) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// runSheetsRender — POST /api/v1/sheets/render.
func (h *Handler) runSheetsRender(c *gin.Context) {
	if h.sheets == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "sheets export is disabled"})
		return
	}

	if err := h.sheets.UpdateAllSheets(c.Request.Context()); err != nil {
		h.log.Errorf(c.Request.Context(), "manual sheets render failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listSyncLogs — GET /api/v1/logs?limit=&offset=.
func (h *Handler) listSyncLogs(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	entries, err := h.logs.LastSyncLogs(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "list sync logs failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	type logItem struct {
		ID               int64          `json:"id"`
		SheetConfigID    *int64         `json:"sheet_config_id,omitempty"`
		SyncType         string         `json:"sync_type"`
		Status           string         `json:"status"`
		RecordsProcessed int            `json:"records_processed"`
		ErrorMessage     string         `json:"error_message,omitempty"`
		Metadata         map[string]any `json:"metadata,omitempty"`
		StartedAt        time.Time      `json:"started_at"`
		CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	}

	items := make([]logItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, logItem{
			ID:               e.ID,
			SheetConfigID:    e.SheetConfigID,
			SyncType:         e.SyncType,
			Status:           e.Status,
			RecordsProcessed: e.RecordsProcessed,
			ErrorMessage:     e.ErrorMessage,
			Metadata:         e.Metadata,
			StartedAt:        e.StartedAt,
			CompletedAt:      e.CompletedAt,
		})
	}

	c.JSON(http.StatusOK, items)
}
