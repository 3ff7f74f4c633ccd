package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
)

func fixture() []entity.Product {
	return []entity.Product{
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", WarehouseID: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", WarehouseID: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", WarehouseID: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", WarehouseID: "DEL-B", Stock: 24, Demand: 120},
	}
}

func ids(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	tests := []struct {
		name   string
		filter inventory.ProductFilter
		want   []string
	}{
		{"sin filtros devuelve todo en orden", inventory.ProductFilter{}, []string{"P-1001", "P-1002", "P-1003", "P-1004"}},
		{"status all no filtra", inventory.ProductFilter{Status: "all"}, []string{"P-1001", "P-1002", "P-1003", "P-1004"}},
		{"búsqueda por nombre sin mayúsculas", inventory.ProductFilter{Search: "steel"}, []string{"P-1002"}},
		{"búsqueda por SKU", inventory.ProductFilter{Search: "brg-608"}, []string{"P-1004"}},
		{"búsqueda por ID", inventory.ProductFilter{Search: "p-100"}, []string{"P-1001", "P-1002", "P-1003", "P-1004"}},
		{"bodega exacta", inventory.ProductFilter{WarehouseID: "BLR-A"}, []string{"P-1001", "P-1002"}},
		{"bodega no es subcadena", inventory.ProductFilter{WarehouseID: "BLR"}, []string{}},
		{"estado healthy", inventory.ProductFilter{Status: "healthy"}, []string{"P-1001"}},
		{"estado low", inventory.ProductFilter{Status: "low"}, []string{"P-1003"}},
		{"estado critical", inventory.ProductFilter{Status: "critical"}, []string{"P-1002", "P-1004"}},
		{"AND de criterios", inventory.ProductFilter{WarehouseID: "BLR-A", Status: "critical"}, []string{"P-1002"}},
		{"estado desconocido", inventory.ProductFilter{Status: "unknown"}, []string{}},
		{"bodega desconocida", inventory.ProductFilter{WarehouseID: "XXX"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inventory.FilterProducts(fixture(), tt.filter)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterProducts_Idempotent(t *testing.T) {
	f := inventory.ProductFilter{Search: "e", Status: "critical"}
	once := inventory.FilterProducts(fixture(), f)
	twice := inventory.FilterProducts(once, f)
	assert.Equal(t, once, twice)
}

func TestProductFilter_IsEmpty(t *testing.T) {
	assert.True(t, inventory.ProductFilter{}.IsEmpty())
	assert.True(t, inventory.ProductFilter{Status: "all"}.IsEmpty())
	assert.False(t, inventory.ProductFilter{Search: "x"}.IsEmpty())
	assert.False(t, inventory.ProductFilter{Status: "low"}.IsEmpty())
}
