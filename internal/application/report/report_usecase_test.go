package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/report"
	"github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/memory"
)

type generatorStub struct {
	got *report.InventoryReport
	err error
}

func (g *generatorStub) GenerateInventoryReport(_ context.Context, r *report.InventoryReport) ([]byte, error) {
	g.got = r
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-stub"), nil
}

func newReportUseCase(t *testing.T, gen report.InventoryReportGenerator) *report.ReportUseCase {
	t.Helper()
	catalog, err := memory.NewCatalog(memory.DefaultSeed())
	require.NoError(t, err)
	return report.NewReportUseCase(
		memory.NewProductRepository(catalog),
		memory.NewWarehouseRepository(catalog),
		gen,
	)
}

func TestBuild_TotalesIgnoranFiltro(t *testing.T) {
	uc := newReportUseCase(t, &generatorStub{})

	r, err := uc.Build(dto.ProductFilterRequest{Status: "critical"})
	require.NoError(t, err)

	require.Len(t, r.Products, 2)
	assert.Equal(t, "P-1002", r.Products[0].ID)
	assert.Equal(t, 2, r.StatusCount[inventory.StatusCritical])
	assert.Zero(t, r.StatusCount[inventory.StatusHealthy])

	// 180+50+80+24 y 120+80+80+120; cubierta = 120+50+80+24 = 274
	assert.Equal(t, 334, r.TotalStock)
	assert.Equal(t, 400, r.TotalDemand)
	assert.Equal(t, "68.50", r.FillRate.StringFixed(2))
	assert.Equal(t, "Bangalore A", r.Warehouses["BLR-A"])
}

func TestDownloadInventoryPDF(t *testing.T) {
	gen := &generatorStub{}
	uc := newReportUseCase(t, gen)

	data, name, err := uc.DownloadInventoryPDF(context.Background(), dto.ProductFilterRequest{})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), data)
	assert.Regexp(t, `^inventario-\d{8}\.pdf$`, name)
	require.NotNil(t, gen.got)
	assert.Len(t, gen.got.Products, 4)
}

func TestDownloadInventoryPDF_ErrorDelGenerador(t *testing.T) {
	boom := errors.New("boom")
	uc := newReportUseCase(t, &generatorStub{err: boom})

	_, _, err := uc.DownloadInventoryPDF(context.Background(), dto.ProductFilterRequest{})
	assert.ErrorIs(t, err, boom)
}
