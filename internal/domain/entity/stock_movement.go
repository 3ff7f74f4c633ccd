package entity

import "time"

// MovementType tipo de mutación aplicada sobre un producto.
type MovementType string

const (
	MovementDemandUpdate MovementType = "DEMAND_UPDATE"
	MovementTransfer     MovementType = "TRANSFER"
)

// StockMovement registro de auditoría de una mutación aplicada (solo en memoria).
// Para DEMAND_UPDATE se llenan PreviousDemand/NewDemand; para TRANSFER,
// FromWarehouseID, ToWarehouseID y Quantity.
type StockMovement struct {
	ID              string
	ProductID       string
	Type            MovementType
	FromWarehouseID string
	ToWarehouseID   string
	Quantity        int
	PreviousDemand  int
	NewDemand       int
	CreatedAt       time.Time
}
