package dto

// ProductFilterRequest filtros del listado de productos (todos opcionales).
type ProductFilterRequest struct {
	Search    string `query:"search"`
	Warehouse string `query:"warehouse"`
	Status    string `query:"status"` // healthy | low | critical | all
}

// ProductListRequest filtros + paginación para GET /api/products.
type ProductListRequest struct {
	ProductFilterRequest
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// ProductResponse salida de un producto con su estado derivado.
type ProductResponse struct {
	ID        string `json:"id" graphql:"id"`
	Name      string `json:"name" graphql:"name"`
	SKU       string `json:"sku" graphql:"sku"`
	Warehouse string `json:"warehouse" graphql:"warehouse"`
	Stock     int    `json:"stock" graphql:"stock"`
	Demand    int    `json:"demand" graphql:"demand"`
	Status    string `json:"status" graphql:"status"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items" graphql:"items"`
	Page  PageResponse      `json:"page" graphql:"pageInfo"`
}
