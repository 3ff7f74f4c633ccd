package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	domaininv "github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
)

// idealCoverage stock objetivo como múltiplo de la demanda.
var idealCoverage = decimal.NewFromFloat(1.5)

// ReplenishmentUseCase genera la lista de reposición a partir del catálogo.
// Solo entran los productos low o critical (stock <= demanda).
type ReplenishmentUseCase struct {
	productRepo repository.ProductRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(productRepo repository.ProductRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{productRepo: productRepo}
}

// GenerateReplenishmentList devuelve los productos a reponer con la cantidad sugerida
// y una prioridad (1 = más urgente). warehouseID vacío considera todas las bodegas.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, warehouseID string) ([]dto.ReplenishmentSuggestionDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("reposición: listar productos: %w", err)
	}
	products = domaininv.FilterProducts(products, domaininv.ProductFilter{WarehouseID: warehouseID})

	hundred := decimal.NewFromInt(100)
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(products))
	for _, p := range products {
		status := domaininv.Classify(p.Stock, p.Demand)
		if status == domaininv.StatusHealthy {
			continue
		}
		ideal := int(decimal.NewFromInt(int64(p.Demand)).Mul(idealCoverage).Ceil().IntPart())
		coverage := decimal.Zero
		if p.Demand > 0 {
			coverage = decimal.NewFromInt(int64(p.Stock)).Div(decimal.NewFromInt(int64(p.Demand))).Mul(hundred).Round(2)
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:         p.ID,
			SKU:               p.SKU,
			ProductName:       p.Name,
			Warehouse:         p.WarehouseID,
			Status:            string(status),
			CurrentStock:      p.Stock,
			Demand:            p.Demand,
			Shortage:          shortage(p),
			IdealStock:        ideal,
			SuggestedOrderQty: max(ideal-p.Stock, 0),
			CoveragePct:       coverage.InexactFloat64(),
		})
	}

	// Menor cobertura primero; a igual cobertura, mayor déficit absoluto.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.CoveragePct != b.CoveragePct {
			return a.CoveragePct < b.CoveragePct
		}
		return a.Shortage > b.Shortage
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}

func shortage(p entity.Product) int {
	return max(p.Demand-p.Stock, 0)
}
