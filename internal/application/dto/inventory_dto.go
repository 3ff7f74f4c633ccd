package dto

import "time"

// UpdateDemandRequest body para PUT /api/products/:id/demand.
type UpdateDemandRequest struct {
	Demand *int `json:"demand"`
}

// TransferStockRequest body para POST /api/inventory/transfers.
type TransferStockRequest struct {
	ProductID     string `json:"product_id"`
	FromWarehouse string `json:"from_warehouse"`
	ToWarehouse   string `json:"to_warehouse"`
	Quantity      int    `json:"quantity"`
}

// StockMovementResponse entrada del registro de mutaciones.
type StockMovementResponse struct {
	ID             string    `json:"id" graphql:"id"`
	Type           string    `json:"type" graphql:"type"`
	ProductID      string    `json:"product_id" graphql:"productId"`
	FromWarehouse  string    `json:"from_warehouse,omitempty" graphql:"fromWarehouse"`
	ToWarehouse    string    `json:"to_warehouse,omitempty" graphql:"toWarehouse"`
	Quantity       int       `json:"quantity,omitempty" graphql:"quantity"`
	PreviousDemand int       `json:"previous_demand,omitempty" graphql:"previousDemand"`
	NewDemand      int       `json:"new_demand,omitempty" graphql:"newDemand"`
	CreatedAt      time.Time `json:"created_at" graphql:"createdAt"`
}

// StockMovementListResponse lista de movimientos, más reciente primero.
type StockMovementListResponse struct {
	Total int                     `json:"total"`
	Items []StockMovementResponse `json:"items"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto low o critical.
type ReplenishmentSuggestionDTO struct {
	Priority          int     `json:"priority"`
	ProductID         string  `json:"product_id"`
	SKU               string  `json:"sku"`
	ProductName       string  `json:"product_name"`
	Warehouse         string  `json:"warehouse"`
	Status            string  `json:"status"`
	CurrentStock      int     `json:"current_stock"`
	Demand            int     `json:"demand"`
	Shortage          int     `json:"shortage"`            // demanda - stock
	IdealStock        int     `json:"ideal_stock"`         // ceil(demanda * 1.5)
	SuggestedOrderQty int     `json:"suggested_order_qty"` // ideal - stock
	CoveragePct       float64 `json:"coverage_pct"`        // stock / demanda * 100
}

// ReplenishmentListResponse respuesta de GET /api/inventory/replenishment.
type ReplenishmentListResponse struct {
	Total int                          `json:"total"`
	Items []ReplenishmentSuggestionDTO `json:"items"`
}
