package memory

import (
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación de solo lectura del puerto WarehouseRepository.
type WarehouseRepo struct {
	catalog *Catalog
}

// NewWarehouseRepository construye el adaptador de bodegas.
func NewWarehouseRepository(catalog *Catalog) *WarehouseRepo {
	return &WarehouseRepo{catalog: catalog}
}

// List devuelve las bodegas en el orden del seed.
func (r *WarehouseRepo) List() ([]entity.Warehouse, error) {
	r.catalog.mu.RLock()
	defer r.catalog.mu.RUnlock()
	out := make([]entity.Warehouse, len(r.catalog.warehouses))
	copy(out, r.catalog.warehouses)
	return out, nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	r.catalog.mu.RLock()
	defer r.catalog.mu.RUnlock()
	i, ok := r.catalog.whIndex[id]
	if !ok {
		return nil, nil
	}
	w := r.catalog.warehouses[i]
	return &w, nil
}
