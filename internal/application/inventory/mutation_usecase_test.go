package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/memory"
)

// recorderSpy cuenta resultados por operación.
type recorderSpy struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *recorderSpy) ObserveMutation(op, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = map[string]int{}
	}
	r.counts[op+"/"+result]++
}

type fixture struct {
	uc       *inventory.MutationUseCase
	products *memory.ProductRepo
	spy      *recorderSpy
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	catalog, err := memory.NewCatalog(memory.Seed{
		Warehouses: []entity.Warehouse{
			{ID: "BLR-A", Name: "Bangalore A", Location: "Bangalore"},
			{ID: "PNQ-C", Name: "Pune C", Location: "Pune"},
		},
		Products: []entity.Product{
			{ID: "P", Name: "Steel Washer", SKU: "WSR-08-500", WarehouseID: "BLR-A", Stock: 50, Demand: 80},
		},
	})
	require.NoError(t, err)
	products := memory.NewProductRepository(catalog)
	spy := &recorderSpy{}
	uc := inventory.NewMutationUseCase(
		products,
		memory.NewWarehouseRepository(catalog),
		memory.NewStockMovementRepository(),
		spy,
		nil,
	)
	return fixture{uc: uc, products: products, spy: spy}
}

func (f fixture) product(t *testing.T) entity.Product {
	t.Helper()
	p, err := f.products.GetByID("P")
	require.NoError(t, err)
	require.NotNil(t, p)
	return *p
}

func TestUpdateDemand_OK(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.UpdateDemand(context.Background(), "P", 10)
	require.NoError(t, err)

	assert.Equal(t, 10, out.Demand)
	assert.Equal(t, "healthy", out.Status)
	assert.Equal(t, 10, f.product(t).Demand)
	assert.Equal(t, 1, f.spy.counts["update_demand/ok"])

	movs, err := f.uc.ListMovements("P", 0)
	require.NoError(t, err)
	require.Equal(t, 1, movs.Total)
	assert.Equal(t, "DEMAND_UPDATE", movs.Items[0].Type)
	assert.Equal(t, 80, movs.Items[0].PreviousDemand)
	assert.Equal(t, 10, movs.Items[0].NewDemand)
	assert.NotEmpty(t, movs.Items[0].ID)
}

func TestUpdateDemand_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.UpdateDemand(context.Background(), "P-404", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, f.spy.counts["update_demand/not_found"])
}

func TestUpdateDemand_Negative(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.UpdateDemand(context.Background(), "P", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 80, f.product(t).Demand)
}

func TestTransferStock_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      dto.TransferStockRequest
		wantErr error
	}{
		{"stock insuficiente", dto.TransferStockRequest{ProductID: "P", FromWarehouse: "BLR-A", ToWarehouse: "PNQ-C", Quantity: 60}, domain.ErrInsufficientStock},
		{"bodega origen equivocada", dto.TransferStockRequest{ProductID: "P", FromWarehouse: "PNQ-C", ToWarehouse: "BLR-A", Quantity: 10}, domain.ErrInvalidState},
		{"producto inexistente", dto.TransferStockRequest{ProductID: "P-404", FromWarehouse: "BLR-A", ToWarehouse: "PNQ-C", Quantity: 1}, domain.ErrNotFound},
		{"cantidad cero", dto.TransferStockRequest{ProductID: "P", FromWarehouse: "BLR-A", ToWarehouse: "PNQ-C", Quantity: 0}, domain.ErrInvalidInput},
		{"misma bodega", dto.TransferStockRequest{ProductID: "P", FromWarehouse: "BLR-A", ToWarehouse: "BLR-A", Quantity: 1}, domain.ErrInvalidInput},
		{"destino inexistente", dto.TransferStockRequest{ProductID: "P", FromWarehouse: "BLR-A", ToWarehouse: "XXX", Quantity: 1}, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			out, err := f.uc.TransferStock(context.Background(), tt.in)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantErr)

			p := f.product(t)
			assert.Equal(t, 50, p.Stock, "un rechazo no modifica el registro")
			assert.Equal(t, "BLR-A", p.WarehouseID)

			movs, err := f.uc.ListMovements("", 0)
			require.NoError(t, err)
			assert.Zero(t, movs.Total)
		})
	}
}

func TestTransferStock_OK(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.TransferStock(context.Background(), dto.TransferStockRequest{
		ProductID: "P", FromWarehouse: "BLR-A", ToWarehouse: "PNQ-C", Quantity: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, 30, out.Stock)
	assert.Equal(t, "PNQ-C", out.Warehouse)
	assert.Equal(t, "critical", out.Status)

	p := f.product(t)
	assert.Equal(t, 30, p.Stock)
	assert.Equal(t, "PNQ-C", p.WarehouseID)
	assert.Equal(t, 1, f.spy.counts["transfer_stock/ok"])

	movs, err := f.uc.ListMovements("P", 10)
	require.NoError(t, err)
	require.Len(t, movs.Items, 1)
	assert.Equal(t, "TRANSFER", movs.Items[0].Type)
	assert.Equal(t, 20, movs.Items[0].Quantity)
}

func TestTransferStock_ExactStock(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.TransferStock(context.Background(), dto.TransferStockRequest{
		ProductID: "P", FromWarehouse: "BLR-A", ToWarehouse: "PNQ-C", Quantity: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Stock)
}

func TestTransferStock_Concurrente(t *testing.T) {
	f := newFixture(t)

	// Transferencias concurrentes de 1 unidad: el stock final refleja exactamente las aplicadas.
	var wg sync.WaitGroup
	var mu sync.Mutex
	applied := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			from, to := "BLR-A", "PNQ-C"
			if i%2 == 1 {
				from, to = to, from
			}
			if _, err := f.uc.TransferStock(context.Background(), dto.TransferStockRequest{
				ProductID: "P", FromWarehouse: from, ToWarehouse: to, Quantity: 1,
			}); err == nil {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	p := f.product(t)
	assert.Equal(t, 50-applied, p.Stock)
	assert.GreaterOrEqual(t, p.Stock, 0)
}
