package inventory

import (
	"github.com/angelmondragon/inventory-backend/pkg/db/models"
	"github.com/angelmondragon/inventory-backend/pkg/enums"
)

// ItemDTO is the wire representation of an inventory item. Timestamps are
// store-internal and intentionally not surfaced.
type ItemDTO struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Condition    string `json:"condition"`
	Quantity     int    `json:"quantity"`
	RestockLevel int    `json:"restock_level"`
}

// WriteInput is the validated payload for create and full-replace update.
type WriteInput struct {
	Name         string
	Condition    enums.Condition
	Quantity     int
	RestockLevel int
}

func toItemDTO(item *models.InventoryItem) *ItemDTO {
	return &ItemDTO{
		ID:           item.ID,
		Name:         item.Name,
		Condition:    item.Condition.String(),
		Quantity:     item.Quantity,
		RestockLevel: item.RestockLevel,
	}
}

func toItemDTOs(items []models.InventoryItem) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *toItemDTO(&items[i]))
	}
	return dtos
}
