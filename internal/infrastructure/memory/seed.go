package memory

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// Seed contenido inicial del catálogo.
type Seed struct {
	Warehouses []entity.Warehouse `mapstructure:"warehouses"`
	Products   []entity.Product   `mapstructure:"products"`
}

// DefaultSeed catálogo fijo con el que arranca el dashboard.
func DefaultSeed() Seed {
	return Seed{
		Warehouses: []entity.Warehouse{
			{ID: "BLR-A", Name: "Bangalore A", Location: "Bangalore"},
			{ID: "PNQ-C", Name: "Pune C", Location: "Pune"},
			{ID: "DEL-B", Name: "Delhi B", Location: "Delhi"},
		},
		Products: []entity.Product{
			{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", WarehouseID: "BLR-A", Stock: 180, Demand: 120},
			{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", WarehouseID: "BLR-A", Stock: 50, Demand: 80},
			{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", WarehouseID: "PNQ-C", Stock: 80, Demand: 80},
			{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", WarehouseID: "DEL-B", Stock: 24, Demand: 120},
		},
	}
}

// LoadSeed lee un archivo YAML/JSON/TOML con las claves "warehouses" y "products".
// Con path vacío devuelve DefaultSeed.
func LoadSeed(path string) (Seed, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Seed{}, fmt.Errorf("seed: leer %s: %w", path, err)
	}
	var seed Seed
	if err := v.Unmarshal(&seed); err != nil {
		return Seed{}, fmt.Errorf("seed: decodificar %s: %w", path, err)
	}
	if len(seed.Warehouses) == 0 {
		return Seed{}, fmt.Errorf("seed: %s no define bodegas", path)
	}
	return seed, nil
}
