package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
	"github.com/Gunvolt24/wb_tariffs/internal/ports"
	"github.com/Gunvolt24/wb_tariffs/pkg/metrics"
)

// Проверка, что SyncService удовлетворяет прикладному порту.
var _ ports.TariffSyncService = (*SyncService)(nil)

const dateLayout = "2006-01-02"

// SyncService — одна синхронизация тарифов: забор среза из WB API,
// сверка в хранилище и запуск выгрузки в таблицы (если что-то записали).
type SyncService struct {
	source    ports.TariffSource
	repo      ports.TariffRepository
	logs      ports.SyncLogRepository
	validator ports.SnapshotValidator
	sheets    ports.SheetsUpdateService // nil — выгрузка выключена конфигурацией
	events    ports.OutcomePublisher    // nil — события не публикуются
	log       ports.Logger
}

// NewSyncService — DI-конструктор. sheets и events могут быть nil.
func NewSyncService(
	source ports.TariffSource,
	repo ports.TariffRepository,
	logs ports.SyncLogRepository,
	validator ports.SnapshotValidator,
	sheets ports.SheetsUpdateService,
	events ports.OutcomePublisher,
	log ports.Logger,
) *SyncService {
	return &SyncService{
		source:    source,
		repo:      repo,
		logs:      logs,
		validator: validator,
		sheets:    sheets,
		events:    events,
		log:       log,
	}
}

// SyncTariffs — полный прогон одной синхронизации.
// Шаги:
//  1. забор среза на дату (пустая дата — сегодня, UTC);
//  2. валидация среза;
//  3. get-or-create периода; ошибка здесь фатальна для всего прогона;
//  4. цикл по складам с изоляцией ошибок: один плохой склад
//     не прерывает остальные;
//  5. ровно одна запись журнала на попытку;
//  6. выгрузка в таблицы — только если записали хотя бы одну строку;
//     её провал не откатывает уже записанные тарифы.
func (s *SyncService) SyncTariffs(ctx context.Context, effectiveDate string) (domain.SyncReport, error) {
	if effectiveDate == "" {
		effectiveDate = time.Now().UTC().Format(dateLayout)
	}
	start := time.Now()
	report := domain.SyncReport{EffectiveDate: effectiveDate}

	s.log.Infof(ctx, "sync: started date=%s", effectiveDate)

	snapshot, err := s.source.GetBoxTariffs(ctx, effectiveDate)
	if err != nil {
		s.log.Errorf(ctx, "sync: fetch failed date=%s err=%v", effectiveDate, err)
		s.finish(ctx, &report, err)
		return report, fmt.Errorf("fetch tariffs: %w", err)
	}

	if err := s.validator.Validate(ctx, snapshot); err != nil {
		s.log.Errorf(ctx, "sync: snapshot rejected date=%s err=%v", effectiveDate, err)
		s.finish(ctx, &report, err)
		return report, fmt.Errorf("validate snapshot: %w", err)
	}

	if len(snapshot.WarehouseList) == 0 {
		s.log.Warnf(ctx, "sync: empty warehouse list date=%s", effectiveDate)
		s.finish(ctx, &report, nil)
		return report, nil
	}

	periodID, err := s.repo.EnsureTariffPeriod(ctx, snapshot.DtNextBox, snapshot.DtTillMax)
	if err != nil {
		s.log.Errorf(ctx, "sync: ensure period failed err=%v", err)
		s.finish(ctx, &report, err)
		return report, fmt.Errorf("ensure tariff period: %w", err)
	}

	for i := range snapshot.WarehouseList {
		wh := &snapshot.WarehouseList[i]
		report.WarehousesSeen++

		if err := s.syncWarehouse(ctx, periodID, effectiveDate, wh); err != nil {
			s.log.Errorf(ctx, "sync: warehouse %q failed: %v", wh.WarehouseName, err)
			report.Failures = append(report.Failures, domain.ItemFailure{
				Warehouse: wh.WarehouseName,
				Reason:    err.Error(),
			})
			metrics.WarehouseFailures.Inc()
			continue
		}
		report.RowsWritten++
	}

	s.finish(ctx, &report, nil)
	s.log.Infof(ctx, "sync: done date=%s warehouses=%d rows=%d failures=%d took=%s",
		effectiveDate, report.WarehousesSeen, report.RowsWritten, len(report.Failures), time.Since(start))

	if report.RowsWritten > 0 && s.sheets != nil {
		// Провал выгрузки — отдельный исход, синхронизация уже зафиксирована.
		if err := s.sheets.UpdateAllSheets(ctx); err != nil {
			s.log.Errorf(ctx, "sync: sheets update failed: %v", err)
		}
	}

	return report, nil
}

// syncWarehouse — обработка одного склада: get-or-create склада,
// разбор девяти строковых показателей, upsert строки тарифа.
func (s *SyncService) syncWarehouse(ctx context.Context, periodID int64, effectiveDate string, wh *domain.WarehouseBoxRates) error {
	if wh.WarehouseName == "" {
		return fmt.Errorf("warehouse name is empty")
	}

	warehouseID, err := s.repo.EnsureWarehouse(ctx, wh.WarehouseName, wh.GeoName)
	if err != nil {
		return fmt.Errorf("ensure warehouse: %w", err)
	}

	rates, err := wh.ParseRates()
	if err != nil {
		return fmt.Errorf("parse rates: %w", err)
	}

	tariff := &domain.BoxTariff{
		TariffPeriodID: periodID,
		WarehouseID:    warehouseID,
		EffectiveDate:  effectiveDate,
		Rates:          rates,
	}
	if err := s.repo.UpsertBoxTariff(ctx, tariff); err != nil {
		return fmt.Errorf("upsert tariff: %w", err)
	}
	return nil
}

// finish — единственная запись журнала на попытку + метрики + событие.
// Ошибки самого журнала/брокера только логируются: они не должны
// превращать успешную синхронизацию в ошибочную.
func (s *SyncService) finish(ctx context.Context, report *domain.SyncReport, runErr error) {
	entry := &domain.SyncLog{
		SyncType:         domain.SyncTypeAPISync,
		Status:           domain.StatusSuccess,
		RecordsProcessed: report.RowsWritten,
		Metadata: map[string]any{
			"warehouses_processed": report.WarehousesSeen,
			"tariffs_processed":    report.RowsWritten,
			"effective_date":       report.EffectiveDate,
		},
	}
	if len(report.Failures) > 0 {
		entry.Metadata["failed_warehouses"] = len(report.Failures)
	}
	if runErr != nil {
		entry.Status = domain.StatusError
		entry.ErrorMessage = runErr.Error()
	}

	if err := s.logs.InsertSyncLog(ctx, entry); err != nil {
		s.log.Warnf(ctx, "sync: log outcome failed: %v", err)
	}

	metrics.SyncRuns.WithLabelValues(entry.Status).Inc()
	metrics.TariffRowsWritten.Add(float64(report.RowsWritten))

	if s.events != nil {
		if err := s.events.Publish(ctx, entry); err != nil {
			s.log.Warnf(ctx, "sync: publish outcome failed: %v", err)
		}
	}
}
