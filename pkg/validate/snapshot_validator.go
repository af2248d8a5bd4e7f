package validate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
	"github.com/Gunvolt24/wb_tariffs/internal/ports"
)

// Проверка, что SnapshotValidator удовлетворяет порту валидатора.
var _ ports.SnapshotValidator = (*SnapshotValidator)(nil)

// ErrInvalidSnapshot — срез нельзя записывать в хранилище.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// SnapshotValidator — проверяет обязательные поля тарифного среза.
// Проблемы отдельных складов здесь не проверяются: их изолирует
// цикл синхронизации, а не валидатор.
type SnapshotValidator struct{}

func NewSnapshotValidator() *SnapshotValidator { return &SnapshotValidator{} }

func (v *SnapshotValidator) Validate(_ context.Context, snapshot *domain.TariffsSnapshot) error {
	if snapshot == nil {
		return fmt.Errorf("%w: snapshot is nil", ErrInvalidSnapshot)
	}
	if err := checkDate("dtNextBox", snapshot.DtNextBox); err != nil {
		return err
	}
	if err := checkDate("dtTillMax", snapshot.DtTillMax); err != nil {
		return err
	}
	return nil
}

func checkDate(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidSnapshot, field)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s is not a date: %q", ErrInvalidSnapshot, field, value)
	}
	return nil
}
