package dto

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID       string `json:"id" graphql:"id"`
	Name     string `json:"name" graphql:"name"`
	Location string `json:"location" graphql:"location"`
}

// WarehouseListResponse lista de bodegas (datos de referencia, sin paginar).
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
}
