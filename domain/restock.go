package domain

import "time"

type Restock struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	ProductID   string    `gorm:"column:product_id;not null;index" json:"product_id"`
	Quantity    int       `gorm:"column:quantity;not null" json:"quantity"`
	CostPerUnit float64   `gorm:"column:cost_per_unit;type:numeric" json:"cost_per_unit,omitempty"`
	Supplier    string    `gorm:"column:supplier;type:text" json:"supplier,omitempty"`
	Timestamp   int64     `gorm:"column:timestamp;not null" json:"timestamp"` // epoch ms
	ExpiryDate  *int64    `gorm:"column:expiry_date" json:"expiry_date,omitempty"`
	BatchID     string    `gorm:"column:batch_id;type:text" json:"batch_id,omitempty"`
	Consumed    int       `gorm:"column:consumed;default:0" json:"consumed"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Restock) TableName() string {
	return "restocks"
}

// Remaining units of this batch still on the shelf.
func (r Restock) Remaining() int {
	rem := r.Quantity - r.Consumed
	if rem < 0 {
		return 0
	}
	return rem
}
