package models

import "github.com/shopspring/decimal"

// InventoryItem is keyed by a caller-supplied id. Quantity keeps the exact
// decimal value received on creation; rendering as float happens at the edge.
type InventoryItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
}
