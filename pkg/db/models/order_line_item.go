package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderLineItem snapshots a cart line at checkout time. Product fields are
// copied so later catalog changes cannot rewrite history.
type OrderLineItem struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	OrderID           int64     `gorm:"column:order_id;not null;index"`
	ProductID         string    `gorm:"column:product_id;not null"`
	ProductName       string    `gorm:"column:product_name;not null"`
	UnitPriceCents    int64     `gorm:"column:unit_price_cents;not null"`
	Quantity          int       `gorm:"column:quantity;not null"`
	LineSubtotalCents int64     `gorm:"column:line_subtotal_cents;not null"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
}
