//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeSnapshot — валидный тарифный срез с n складами;
// имена складов уникальны между запусками.
func MakeSnapshot(n int) *domain.TariffsSnapshot {
	s := &domain.TariffsSnapshot{
		DtNextBox: "2025-09-01",
		DtTillMax: "2025-12-31",
	}
	for i := 0; i < n; i++ {
		s.WarehouseList = append(s.WarehouseList, MakeWarehouse(fmt.Sprintf("wh-%d-%s", i, UniqSuffix())))
	}
	return s
}

// MakeWarehouse — склад со всеми девятью показателями в "сыром" виде WB:
// встречаются и запятая-разделитель, и прочерк.
func MakeWarehouse(name string) domain.WarehouseBoxRates {
	return domain.WarehouseBoxRates{
		WarehouseName:                  name,
		GeoName:                        "Центральный ФО",
		BoxDeliveryAndStorageExpr:      "160",
		BoxDeliveryBase:                "48",
		BoxDeliveryLiter:               "11,2",
		BoxDeliveryCoefExpr:            "160",
		BoxDeliveryMarketplaceBase:     "40",
		BoxDeliveryMarketplaceLiter:    "9,6",
		BoxDeliveryMarketplaceCoefExpr: "125",
		BoxStorageBase:                 "0,14",
		BoxStorageLiter:                "-",
		BoxStorageCoefExpr:             "115",
	}
}
