package ports

import (
	"context"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
)

// SnapshotValidator — проверка тарифного среза перед записью в хранилище.
type SnapshotValidator interface {
	Validate(ctx context.Context, snapshot *domain.TariffsSnapshot) error
}
