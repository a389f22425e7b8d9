package models

import "github.com/shopspring/decimal"

type Item struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	VendorID      uint            `gorm:"index;not null" json:"vendor_id"`
	Name          string          `gorm:"not null" json:"name"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	StockQuantity int             `gorm:"not null;check:stock_quantity >= 0" json:"stock_quantity"`
	ImageURL      string          `json:"image_url"`
}
