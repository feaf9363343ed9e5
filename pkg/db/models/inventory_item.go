package models

import (
	"time"

	"github.com/angelmondragon/inventory-backend/pkg/enums"
)

// InventoryItem is the persisted record for a tracked stock item. The id is
// assigned by the store and never accepted from clients; timestamps are owned
// by the repository layer so created_at == updated_at on insert.
type InventoryItem struct {
	ID           int             `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string          `gorm:"column:name;size:63;not null"`
	Condition    enums.Condition `gorm:"column:condition;type:text;not null;default:NEW"`
	Quantity     int             `gorm:"column:quantity;not null"`
	RestockLevel int             `gorm:"column:restock_level;not null"`
	CreatedAt    time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;not null"`
}

// TableName pins the table name regardless of GORM pluralization settings.
func (InventoryItem) TableName() string {
	return "inventory_items"
}
