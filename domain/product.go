package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id                  TEXT PRIMARY KEY,
//     name                TEXT NOT NULL,
//     price               NUMERIC NOT NULL,
//     stock               INTEGER NOT NULL DEFAULT 0,
//     popularity          INTEGER NOT NULL DEFAULT 0,
//     category            TEXT,
//     photo_uri           TEXT,
//     low_stock_threshold INTEGER NOT NULL DEFAULT 2,
//     created_at          TIMESTAMPTZ DEFAULT NOW(),
//     updated_at          TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID                string    `gorm:"primaryKey;column:id" json:"id"`
	Name              string    `gorm:"column:name;type:text;not null" json:"name"`
	Price             float64   `gorm:"column:price;type:numeric" json:"price"`
	Stock             int       `gorm:"column:stock;default:0" json:"stock"`
	Popularity        int       `gorm:"column:popularity;default:0" json:"popularity"`
	Category          string    `gorm:"column:category;type:text" json:"category,omitempty"`
	PhotoURI          string    `gorm:"column:photo_uri;type:text" json:"photo_uri,omitempty"`
	LowStockThreshold int       `gorm:"column:low_stock_threshold;default:2" json:"low_stock_threshold"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// EffectiveLowStockThreshold falls back to 2 when no per-product override is set.
func (p Product) EffectiveLowStockThreshold() int {
	if p.LowStockThreshold <= 0 {
		return 2
	}
	return p.LowStockThreshold
}
