package entity

// Product representa un SKU del catálogo del dashboard.
// El modelo lleva un único contador de stock por producto (no por bodega):
// una transferencia descuenta stock y reasigna WarehouseID.
type Product struct {
	ID          string `mapstructure:"id"`
	Name        string `mapstructure:"name"`
	SKU         string `mapstructure:"sku"`
	WarehouseID string `mapstructure:"warehouse"`
	Stock       int    `mapstructure:"stock"`
	Demand      int    `mapstructure:"demand"`
}
