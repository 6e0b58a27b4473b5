package models

import "time"

// Item is the single inventory record managed by the service.
//
// Timestamps are stamped by the items service, not by GORM auto-time hooks,
// so that created_at and updated_at are exactly equal on a fresh row.
type Item struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;not null"`
	SKU       string    `gorm:"column:sku;not null"`
	Qty       int       `gorm:"column:qty;not null;default:0"`
	Price     float64   `gorm:"column:price;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

// TableName pins the table name regardless of GORM's pluralization rules.
func (Item) TableName() string {
	return "items"
}
