package repository

import "github.com/jhoicas/inventory-dashboard/internal/domain/entity"

// StockMovementRepository define el puerto del registro de mutaciones aplicadas (DIP).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByProduct con productID vacío devuelve todos los movimientos, más reciente primero.
	ListByProduct(productID string, limit int) ([]entity.StockMovement, error)
}
