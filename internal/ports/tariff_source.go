package ports

import (
	"context"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
)

// TariffSource — источник тарифных срезов (WB API).
// Пустая date означает «сегодня» (календарная дата UTC).
type TariffSource interface {
	GetBoxTariffs(ctx context.Context, date string) (*domain.TariffsSnapshot, error)
}
