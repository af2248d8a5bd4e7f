package domain_test

import (
	"strings"
	"testing"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
)

func TestParseRate(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{"empty means zero", "", 0, false},
		{"dash means zero", "-", 0, false},
		{"comma separator", "12,50", 12.5, false},
		{"dot separator", "7.25", 7.25, false},
		{"integer", "160", 160, false},
		{"surrounding spaces", " 1,5 ", 1.5, false},
		{"not a number", "abc", 0, true},
		{"two commas", "1,2,3", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.ParseRate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseRate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseRates_AllFields(t *testing.T) {
	w := domain.WarehouseBoxRates{
		WarehouseName:                  "Коледино",
		BoxDeliveryBase:                "48",
		BoxDeliveryLiter:               "11,2",
		BoxDeliveryCoefExpr:            "160",
		BoxDeliveryMarketplaceBase:     "-",
		BoxDeliveryMarketplaceLiter:    "",
		BoxDeliveryMarketplaceCoefExpr: "125",
		BoxStorageBase:                 "0,14",
		BoxStorageLiter:                "0,07",
		BoxStorageCoefExpr:             "115",
	}

	r, err := w.ParseRates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.DeliveryBase != 48 || r.DeliveryLiter != 11.2 || r.DeliveryCoef != 160 {
		t.Fatalf("unexpected delivery rates: %+v", r)
	}
	if r.DeliveryMarketplaceBase != 0 || r.DeliveryMarketplaceLiter != 0 || r.DeliveryMarketplaceCoef != 125 {
		t.Fatalf("unexpected marketplace rates: %+v", r)
	}
	if r.StorageBase != 0.14 || r.StorageLiter != 0.07 || r.StorageCoef != 115 {
		t.Fatalf("unexpected storage rates: %+v", r)
	}
}

func TestParseRates_BadFieldNamesField(t *testing.T) {
	w := domain.WarehouseBoxRates{
		BoxDeliveryBase:     "48",
		BoxDeliveryLiter:    "oops",
		BoxDeliveryCoefExpr: "160",
	}

	if _, err := w.ParseRates(); err == nil {
		t.Fatal("expected error for bad boxDeliveryLiter")
	} else if got := err.Error(); !strings.Contains(got, "boxDeliveryLiter") {
		t.Fatalf("error must name the bad field, got %q", got)
	}
}
