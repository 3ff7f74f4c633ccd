package entity

// Warehouse representa una bodega. Datos de referencia de solo lectura.
type Warehouse struct {
	ID       string `mapstructure:"id"`
	Name     string `mapstructure:"name"`
	Location string `mapstructure:"location"`
}
