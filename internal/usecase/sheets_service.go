package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
	"github.com/Gunvolt24/wb_tariffs/internal/ports"
	"github.com/Gunvolt24/wb_tariffs/pkg/metrics"
)

// Проверка, что SheetsService удовлетворяет прикладному порту.
var _ ports.SheetsUpdateService = (*SheetsService)(nil)

// Заголовки таблицы: склад, регион и девять тарифных показателей.
var sheetHeaders = []string{
	"Склад",
	"Регион",
	"Базовая стоимость доставки",
	"Стоимость за литр доставки",
	"Коэффициент доставки",
	"Базовая стоимость доставки (маркетплейс)",
	"Стоимость за литр доставки (маркетплейс)",
	"Коэффициент доставки (маркетплейс)",
	"Базовая стоимость хранения",
	"Стоимость за литр хранения",
	"Коэффициент хранения",
}

// SheetsService — выгрузка тарифов в Google-таблицы с разбиением по датам.
// Раскладка — чистая функция от (упорядоченные даты, строки на дату):
// координаты строк считаются курсором, повторная выгрузка детерминирована.
type SheetsService struct {
	tariffs ports.TariffRepository
	configs ports.SheetConfigRepository
	logs    ports.SyncLogRepository
	writer  ports.SheetWriter
	events  ports.OutcomePublisher // nil — события не публикуются
	tab     string                 // имя листа внутри документа
	log     ports.Logger
}

// NewSheetsService — DI-конструктор. events может быть nil.
func NewSheetsService(
	tariffs ports.TariffRepository,
	configs ports.SheetConfigRepository,
	logs ports.SyncLogRepository,
	writer ports.SheetWriter,
	events ports.OutcomePublisher,
	tab string,
	log ports.Logger,
) *SheetsService {
	if tab == "" {
		tab = "stocks_coefs"
	}
	return &SheetsService{
		tariffs: tariffs,
		configs: configs,
		logs:    logs,
		writer:  writer,
		events:  events,
		tab:     tab,
		log:     log,
	}
}

// UpdateAllSheets — перерисовывает все активные таблицы.
// Провал одной таблицы логируется отдельным исходом и не мешает остальным;
// наружу возвращается первая ошибка.
func (s *SheetsService) UpdateAllSheets(ctx context.Context) error {
	configs, err := s.configs.ActiveSheetConfigs(ctx)
	if err != nil {
		return fmt.Errorf("load sheet configs: %w", err)
	}
	if len(configs) == 0 {
		s.log.Warnf(ctx, "sheets: no active sheet configs")
		return nil
	}

	dates, err := s.tariffs.EffectiveDates(ctx)
	if err != nil {
		return fmt.Errorf("load effective dates: %w", err)
	}

	var firstErr error
	for i := range configs {
		cfg := &configs[i]
		if err := s.renderSheet(ctx, cfg, dates); err != nil {
			s.log.Errorf(ctx, "sheets: render %q failed: %v", cfg.SheetName, err)
			s.finish(ctx, cfg, 0, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("render %q: %w", cfg.SheetName, err)
			}
		}
	}
	return firstErr
}

// renderSheet — одна таблица: очистка листа, затем на каждую дату
// (новые первыми) заголовок секции и 11-колоночный блок тарифов
// по возрастанию коэффициента доставки. Любая ошибка записи
// прерывает выгрузку этой таблицы целиком; ретраев нет.
func (s *SheetsService) renderSheet(ctx context.Context, cfg *domain.SheetConfig, dates []string) error {
	start := time.Now()
	s.log.Infof(ctx, "sheets: rendering %q (spreadsheet=%s)", cfg.SheetName, cfg.SheetID)

	if err := s.writer.Clear(ctx, cfg.SheetID, s.tab); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	currentRow := 1
	totalRecords := 0

	for _, date := range dates {
		records, err := s.tariffs.TariffsByDate(ctx, date)
		if err != nil {
			return fmt.Errorf("tariffs for %s: %w", date, err)
		}
		if len(records) == 0 {
			continue
		}

		header := [][]string{{"Тарифы на " + date}}
		if err := s.writer.WriteRange(ctx, cfg.SheetID, s.tab, cellA(currentRow), header); err != nil {
			return fmt.Errorf("write date header: %w", err)
		}
		currentRow += 2

		table := buildTable(records)
		if err := s.writer.WriteRange(ctx, cfg.SheetID, s.tab, cellA(currentRow), table); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
		currentRow += len(table) + 2
		totalRecords += len(records)
	}

	if err := s.configs.TouchSheetConfig(ctx, cfg.ID); err != nil {
		s.log.Warnf(ctx, "sheets: touch config id=%d failed: %v", cfg.ID, err)
	}
	s.finish(ctx, cfg, totalRecords, nil)

	s.log.Infof(ctx, "sheets: %q updated records=%d dates=%d took=%s",
		cfg.SheetName, totalRecords, len(dates), time.Since(start))
	return nil
}

// buildTable — заголовок + строка на тариф; числа как простой десятичный
// текст, нулевые коэффициенты выводятся как "0".
func buildTable(records []domain.TariffRecord) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, sheetHeaders)
	for i := range records {
		rec := &records[i]
		rows = append(rows, []string{
			rec.WarehouseName,
			rec.GeoName,
			formatRate(rec.Rates.DeliveryBase),
			formatRate(rec.Rates.DeliveryLiter),
			formatRate(rec.Rates.DeliveryCoef),
			formatRate(rec.Rates.DeliveryMarketplaceBase),
			formatRate(rec.Rates.DeliveryMarketplaceLiter),
			formatRate(rec.Rates.DeliveryMarketplaceCoef),
			formatRate(rec.Rates.StorageBase),
			formatRate(rec.Rates.StorageLiter),
			formatRate(rec.Rates.StorageCoef),
		})
	}
	return rows
}

func formatRate(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func cellA(row int) string { return "A" + strconv.Itoa(row) }

// finish — исход выгрузки одной таблицы: запись журнала, метрики, событие.
func (s *SheetsService) finish(ctx context.Context, cfg *domain.SheetConfig, records int, runErr error) {
	configID := cfg.ID
	entry := &domain.SyncLog{
		SheetConfigID:    &configID,
		SyncType:         domain.SyncTypeSheetsUpdate,
		Status:           domain.StatusSuccess,
		RecordsProcessed: records,
		Metadata: map[string]any{
			"records_processed": records,
			"sheet_id":          cfg.SheetID,
		},
	}
	if runErr != nil {
		entry.Status = domain.StatusError
		entry.ErrorMessage = runErr.Error()
	}

	if err := s.logs.InsertSyncLog(ctx, entry); err != nil {
		s.log.Warnf(ctx, "sheets: log outcome failed: %v", err)
	}

	metrics.SheetRenders.WithLabelValues(entry.Status).Inc()
	metrics.SheetRowsWritten.Add(float64(records))

	if s.events != nil {
		if err := s.events.Publish(ctx, entry); err != nil {
			s.log.Warnf(ctx, "sheets: publish outcome failed: %v", err)
		}
	}
}
