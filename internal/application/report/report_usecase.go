// Package report genera el reporte imprimible del inventario (PDF).
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
)

// InventoryReport datos ya resueltos que necesita el generador.
type InventoryReport struct {
	GeneratedAt time.Time
	Filter      dto.ProductFilterRequest
	Products    []dto.ProductResponse // filtrados, en orden de catálogo
	Warehouses  map[string]string     // id → nombre
	TotalStock  int                   // catálogo completo, sin filtros
	TotalDemand int
	FillRate    decimal.Decimal
	StatusCount map[inventory.Status]int // sobre los productos filtrados
}

// InventoryReportGenerator puerto de salida hacia el motor de PDF.
type InventoryReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, r *InventoryReport) ([]byte, error)
}

// ReportUseCase arma el InventoryReport y delega el render.
type ReportUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	generator     InventoryReportGenerator
	now           func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	generator InventoryReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		generator:     generator,
		now:           time.Now,
	}
}

// Build resuelve los datos del reporte sin renderizarlo.
func (uc *ReportUseCase) Build(filter dto.ProductFilterRequest) (*InventoryReport, error) {
	all, err := uc.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("reporte: listar productos: %w", err)
	}
	whs, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, fmt.Errorf("reporte: listar bodegas: %w", err)
	}

	names := make(map[string]string, len(whs))
	for _, w := range whs {
		names[w.ID] = w.Name
	}

	filtered := inventory.FilterProducts(all, usecase.ToProductFilter(filter))
	items := make([]dto.ProductResponse, 0, len(filtered))
	counts := map[inventory.Status]int{}
	for _, p := range filtered {
		items = append(items, usecase.ToProductResponse(p))
		counts[inventory.Classify(p.Stock, p.Demand)]++
	}

	totalStock, totalDemand, fulfilled := inventory.Totals(all)
	return &InventoryReport{
		GeneratedAt: uc.now(),
		Filter:      filter,
		Products:    items,
		Warehouses:  names,
		TotalStock:  totalStock,
		TotalDemand: totalDemand,
		FillRate:    inventory.FillRate(fulfilled, totalDemand),
		StatusCount: counts,
	}, nil
}

// DownloadInventoryPDF genera el PDF y un nombre de archivo con la fecha.
func (uc *ReportUseCase) DownloadInventoryPDF(ctx context.Context, filter dto.ProductFilterRequest) (pdfBytes []byte, filename string, err error) {
	r, err := uc.Build(filter)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateInventoryReport(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	return pdfBytes, fmt.Sprintf("inventario-%s.pdf", r.GeneratedAt.Format("20060102")), nil
}
