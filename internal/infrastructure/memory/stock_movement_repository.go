package memory

import (
	"fmt"
	"sync"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo registro append-only de mutaciones aplicadas.
type StockMovementRepo struct {
	mu        sync.RWMutex
	movements []entity.StockMovement
}

// NewStockMovementRepository construye el registro vacío.
func NewStockMovementRepository() *StockMovementRepo {
	return &StockMovementRepo{}
}

// Create agrega un movimiento al final del registro.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement == nil || movement.ID == "" {
		return fmt.Errorf("insert movement: id requerido")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, *movement)
	return nil
}

// ListByProduct lista movimientos del producto (o todos si productID es vacío),
// del más reciente al más antiguo. limit <= 0 no limita.
func (r *StockMovementRepo) ListByProduct(productID string, limit int) ([]entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.StockMovement, 0)
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if productID != "" && m.ProductID != productID {
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
