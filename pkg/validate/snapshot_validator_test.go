package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
	"github.com/Gunvolt24/wb_tariffs/pkg/validate"
)

func TestSnapshotValidator(t *testing.T) {
	v := validate.NewSnapshotValidator()
	ctx := context.Background()

	cases := []struct {
		name     string
		snapshot *domain.TariffsSnapshot
		wantErr  bool
	}{
		{
			name: "valid",
			snapshot: &domain.TariffsSnapshot{
				DtNextBox: "2025-09-01",
				DtTillMax: "2025-12-31",
			},
		},
		{
			name: "valid with empty warehouse list",
			snapshot: &domain.TariffsSnapshot{
				DtNextBox: "2025-09-01",
				DtTillMax: "2025-12-31",
			},
		},
		{name: "nil snapshot", snapshot: nil, wantErr: true},
		{
			name:     "empty dtNextBox",
			snapshot: &domain.TariffsSnapshot{DtTillMax: "2025-12-31"},
			wantErr:  true,
		},
		{
			name: "dtTillMax not a date",
			snapshot: &domain.TariffsSnapshot{
				DtNextBox: "2025-09-01",
				DtTillMax: "31.12.2025",
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, tc.snapshot)
			if tc.wantErr {
				if !errors.Is(err, validate.ErrInvalidSnapshot) {
					t.Fatalf("expected ErrInvalidSnapshot, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
