package models

import "time"

// Order is an immutable journal entry. IDs are assigned sequentially starting
// at 1 inside the checkout transaction; rows are never updated or deleted.
type Order struct {
	ID                  int64           `gorm:"column:id;primaryKey;autoIncrement:false"`
	SubtotalCents       int64           `gorm:"column:subtotal_cents;not null"`
	DiscountCode        *string         `gorm:"column:discount_code"`
	DiscountAmountCents int64           `gorm:"column:discount_amount_cents;not null"`
	TotalCents          int64           `gorm:"column:total_cents;not null"`
	Items               []OrderLineItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time       `gorm:"column:created_at;autoCreateTime"`
}
