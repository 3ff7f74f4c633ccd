// Package memory implementa los puertos de repositorio sobre un catálogo en memoria.
// No hay persistencia: el estado vive lo que vive el proceso.
package memory

import (
	"fmt"
	"sync"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// Catalog es el dueño del estado mutable: productos (en orden de inserción,
// indexados por ID) y bodegas. Un único escritor a la vez vía mu.
type Catalog struct {
	mu         sync.RWMutex
	products   []entity.Product
	index      map[string]int
	warehouses []entity.Warehouse
	whIndex    map[string]int
}

// NewCatalog construye el catálogo validando las invariantes del seed:
// IDs únicos, stock/demanda no negativos y bodegas existentes.
func NewCatalog(seed Seed) (*Catalog, error) {
	c := &Catalog{
		products:   make([]entity.Product, 0, len(seed.Products)),
		index:      make(map[string]int, len(seed.Products)),
		warehouses: make([]entity.Warehouse, 0, len(seed.Warehouses)),
		whIndex:    make(map[string]int, len(seed.Warehouses)),
	}
	for _, w := range seed.Warehouses {
		if w.ID == "" {
			return nil, fmt.Errorf("catalog: bodega sin id")
		}
		if _, dup := c.whIndex[w.ID]; dup {
			return nil, fmt.Errorf("catalog: bodega duplicada %q", w.ID)
		}
		c.whIndex[w.ID] = len(c.warehouses)
		c.warehouses = append(c.warehouses, w)
	}
	for _, p := range seed.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: producto sin id")
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("catalog: producto duplicado %q", p.ID)
		}
		if p.Stock < 0 || p.Demand < 0 {
			return nil, fmt.Errorf("catalog: producto %q con stock o demanda negativos", p.ID)
		}
		if _, ok := c.whIndex[p.WarehouseID]; !ok {
			return nil, fmt.Errorf("catalog: producto %q referencia bodega inexistente %q", p.ID, p.WarehouseID)
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Len número de productos del catálogo.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
