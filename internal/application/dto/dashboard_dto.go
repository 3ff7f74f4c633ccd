package dto

// KPIDataPointDTO un punto diario de la serie de tendencia.
type KPIDataPointDTO struct {
	Date   string `json:"date" graphql:"date"` // YYYY-MM-DD
	Stock  int    `json:"stock" graphql:"stock"`
	Demand int    `json:"demand" graphql:"demand"`
}

// KPIResponseDTO respuesta de GET /api/kpis y de la query GraphQL kpis.
// Los totales cubren el catálogo completo, sin filtros.
type KPIResponseDTO struct {
	Range       string            `json:"range" graphql:"range"`
	TotalStock  int               `json:"total_stock" graphql:"totalStock"`
	TotalDemand int               `json:"total_demand" graphql:"totalDemand"`
	FillRate    float64           `json:"fill_rate" graphql:"fillRate"` // porcentaje, 2 decimales
	TrendData   []KPIDataPointDTO `json:"trend_data" graphql:"trendData"`
}
