package models

import "time"

// DiscountCode records an issued code and its redemption state. The used flag
// is monotonic: it flips false to true exactly once and never reverts. Rows
// are never deleted.
type DiscountCode struct {
	Code       string    `gorm:"column:code;primaryKey"`
	Percentage int       `gorm:"column:percentage;not null"`
	Used       bool      `gorm:"column:used;not null;default:false"`
	OrderID    *int64    `gorm:"column:order_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}
