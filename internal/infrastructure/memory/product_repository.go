package memory

import (
	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el Catalog.
type ProductRepo struct {
	catalog *Catalog
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(catalog *Catalog) *ProductRepo {
	return &ProductRepo{catalog: catalog}
}

// List devuelve una copia del catálogo en orden de inserción.
func (r *ProductRepo) List() ([]entity.Product, error) {
	r.catalog.mu.RLock()
	defer r.catalog.mu.RUnlock()
	out := make([]entity.Product, len(r.catalog.products))
	copy(out, r.catalog.products)
	return out, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.catalog.mu.RLock()
	defer r.catalog.mu.RUnlock()
	i, ok := r.catalog.index[id]
	if !ok {
		return nil, nil
	}
	p := r.catalog.products[i]
	return &p, nil
}

// Update ejecuta buscar → validar → escribir con el bloqueo exclusivo tomado.
// fn recibe una copia; si retorna error el registro queda intacto.
func (r *ProductRepo) Update(id string, fn func(p *entity.Product) error) (*entity.Product, error) {
	r.catalog.mu.Lock()
	defer r.catalog.mu.Unlock()
	i, ok := r.catalog.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.catalog.products[i]
	if err := fn(&p); err != nil {
		return nil, err
	}
	r.catalog.products[i] = p
	return &p, nil
}
