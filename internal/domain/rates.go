package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRate — разбор числового поля тарифа из ответа WB.
// Пустая строка и "-" означают отсутствие значения и дают 0;
// запятая-разделитель нормализуется в точку.
func ParseRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("parse rate %q: %w", s, err)
	}
	return v, nil
}

// ParseRates — разбирает все девять показателей склада.
// Первая же невалидная строка делает весь склад ошибочным;
// изоляция такой ошибки — на вызывающей стороне.
func (w *WarehouseBoxRates) ParseRates() (BoxRates, error) {
	var r BoxRates

	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"boxDeliveryBase", w.BoxDeliveryBase, &r.DeliveryBase},
		{"boxDeliveryLiter", w.BoxDeliveryLiter, &r.DeliveryLiter},
		{"boxDeliveryCoefExpr", w.BoxDeliveryCoefExpr, &r.DeliveryCoef},
		{"boxDeliveryMarketplaceBase", w.BoxDeliveryMarketplaceBase, &r.DeliveryMarketplaceBase},
		{"boxDeliveryMarketplaceLiter", w.BoxDeliveryMarketplaceLiter, &r.DeliveryMarketplaceLiter},
		{"boxDeliveryMarketplaceCoefExpr", w.BoxDeliveryMarketplaceCoefExpr, &r.DeliveryMarketplaceCoef},
		{"boxStorageBase", w.BoxStorageBase, &r.StorageBase},
		{"boxStorageLiter", w.BoxStorageLiter, &r.StorageLiter},
		{"boxStorageCoefExpr", w.BoxStorageCoefExpr, &r.StorageCoef},
	}

	for _, f := range fields {
		v, err := ParseRate(f.raw)
		if err != nil {
			return BoxRates{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = v
	}
	return r, nil
}
