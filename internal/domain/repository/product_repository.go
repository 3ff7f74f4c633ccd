package repository

import "github.com/jhoicas/inventory-dashboard/internal/domain/entity"

// ProductRepository define el puerto de acceso al catálogo de productos (DIP).
type ProductRepository interface {
	// List devuelve copias de todos los productos en orden de inserción.
	List() ([]entity.Product, error)
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(id string) (*entity.Product, error)
	// Update aplica fn sobre una copia del producto bajo bloqueo exclusivo y la
	// confirma solo si fn retorna nil. Retorna domain.ErrNotFound si no existe.
	Update(id string, fn func(p *entity.Product) error) (*entity.Product, error)
}
