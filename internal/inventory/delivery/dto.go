package delivery

import (
	"github.com/shopspring/decimal"

	"github.com/ofarias/inventario-api/internal/models"
)

// CreateItemDTO takes quantity as a pointer so that an explicit 0 passes the
// required-field check while an absent quantity does not.
type CreateItemDTO struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Quantity *decimal.Decimal `json:"quantity"`
}

type ItemDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

func NewItemDTO(item models.InventoryItem) ItemDTO {
	return ItemDTO{
		ID:       item.ID,
		Name:     item.Name,
		Quantity: item.Quantity.InexactFloat64(),
	}
}

type CreatedResponse struct {
	Message string `json:"message"`
	ItemID  string `json:"item_id"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
