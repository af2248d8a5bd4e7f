package domain

import "time"

// TariffsSnapshot — сырой результат одного запроса /tariffs/box:
// границы действия тарифного периода + список ставок по складам.
// WarehouseList может быть null/пустым — это валидный ответ WB.
type TariffsSnapshot struct {
	DtNextBox     string              `json:"dtNextBox"`
	DtTillMax     string              `json:"dtTillMax"`
	WarehouseList []WarehouseBoxRates `json:"warehouseList"`
}

// WarehouseBoxRates — тарифы короба для одного склада из ответа WB.
// Все числовые поля приходят строками: возможны "-" (нет значения)
// и запятая как десятичный разделитель.
type WarehouseBoxRates struct {
	WarehouseName                  string `json:"warehouseName"`
	GeoName                        string `json:"geoName"`
	BoxDeliveryAndStorageExpr      string `json:"boxDeliveryAndStorageExpr"`
	BoxDeliveryBase                string `json:"boxDeliveryBase"`
	BoxDeliveryLiter               string `json:"boxDeliveryLiter"`
	BoxDeliveryCoefExpr            string `json:"boxDeliveryCoefExpr"`
	BoxDeliveryMarketplaceBase     string `json:"boxDeliveryMarketplaceBase"`
	BoxDeliveryMarketplaceLiter    string `json:"boxDeliveryMarketplaceLiter"`
	BoxDeliveryMarketplaceCoefExpr string `json:"boxDeliveryMarketplaceCoefExpr"`
	BoxStorageBase                 string `json:"boxStorageBase"`
	BoxStorageLiter                string `json:"boxStorageLiter"`
	BoxStorageCoefExpr             string `json:"boxStorageCoefExpr"`
}

// BoxRates — девять разобранных тарифных показателей одного склада.
type BoxRates struct {
	DeliveryBase             float64
	DeliveryLiter            float64
	DeliveryCoef             float64
	DeliveryMarketplaceBase  float64
	DeliveryMarketplaceLiter float64
	DeliveryMarketplaceCoef  float64
	StorageBase              float64
	StorageLiter             float64
	StorageCoef              float64
}

// BoxTariff — строка тарифа в хранилище: девять показателей одного склада
// в одном тарифном периоде на одну effective-дату.
// Уникальность по тройке (TariffPeriodID, WarehouseID, EffectiveDate).
type BoxTariff struct {
	ID             int64
	TariffPeriodID int64
	WarehouseID    int64
	EffectiveDate  string // YYYY-MM-DD
	Rates          BoxRates
}

// TariffRecord — строка тарифа, склеенная с идентичностью склада (для выгрузки).
type TariffRecord struct {
	BoxTariff
	WarehouseName string
	GeoName       string
}

// SheetConfig — настройка одной целевой Google-таблицы.
type SheetConfig struct {
	ID          int64
	SheetID     string // идентификатор spreadsheet в Google
	SheetName   string // человекочитаемое имя (для логов)
	Description string
	IsActive    bool
	LastUpdated *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
