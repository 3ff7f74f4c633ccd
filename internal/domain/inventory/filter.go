package inventory

import (
	"strings"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// ProductFilter criterios de búsqueda del listado de productos.
// Un campo vacío no filtra; Status también acepta el centinela "all".
type ProductFilter struct {
	Search      string // subcadena sin distinción de mayúsculas sobre nombre, SKU o ID
	WarehouseID string // coincidencia exacta
	Status      string // healthy | low | critical | all
}

// IsEmpty indica si el filtro no restringe nada.
func (f ProductFilter) IsEmpty() bool {
	return f.Search == "" && f.WarehouseID == "" && (f.Status == "" || f.Status == StatusAll)
}

// Matches evalúa los tres criterios combinados con AND.
func (f ProductFilter) Matches(p entity.Product) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.SKU), q) &&
			!strings.Contains(strings.ToLower(p.ID), q) {
			return false
		}
	}
	if f.WarehouseID != "" && p.WarehouseID != f.WarehouseID {
		return false
	}
	if f.Status != "" && f.Status != StatusAll && string(Classify(p.Stock, p.Demand)) != f.Status {
		return false
	}
	return true
}

// FilterProducts devuelve los productos que cumplen f en el orden de entrada.
// Valores desconocidos de bodega o estado producen un resultado vacío, no un error.
func FilterProducts(products []entity.Product, f ProductFilter) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
