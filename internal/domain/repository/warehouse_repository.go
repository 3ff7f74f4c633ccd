package repository

import "github.com/jhoicas/inventory-dashboard/internal/domain/entity"

// WarehouseRepository define el puerto de lectura de bodegas (DIP).
type WarehouseRepository interface {
	List() ([]entity.Warehouse, error)
	// GetByID devuelve (nil, nil) si la bodega no existe.
	GetByID(id string) (*entity.Warehouse, error)
}
