package items

import (
	"time"

	"github.com/packline/inventory-api/pkg/db/models"
)

// ItemDTO is the wire representation of a persisted item.
type ItemDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Qty       int       `json:"qty"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toItemDTO(item models.Item) ItemDTO {
	return ItemDTO{
		ID:        item.ID,
		Name:      item.Name,
		SKU:       item.SKU,
		Qty:       item.Qty,
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func toItemDTOs(items []models.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toItemDTO(item))
	}
	return dtos
}
