package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Sale is an immutable record of one confirmed transaction. Items holds one
// product id per unit sold, so a basket of 2x tea + 1x bread is four entries
// long only if tea also appears twice.
type Sale struct {
	ID        string                      `gorm:"primaryKey;column:id" json:"id"`
	Timestamp int64                       `gorm:"column:timestamp;not null" json:"timestamp"` // epoch ms
	Amount    float64                     `gorm:"column:amount;type:numeric" json:"amount"`
	Items     datatypes.JSONSlice[string] `gorm:"column:items;type:jsonb" json:"items"`
	CreatedAt time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Sale) TableName() string {
	return "sales"
}

// SaleItemRequest is one line of a confirmed basket before expansion.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
