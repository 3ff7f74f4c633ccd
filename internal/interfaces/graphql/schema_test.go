package graphql_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gql "github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/inventory-dashboard/internal/application/analytics"
	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-dashboard/internal/interfaces/graphql"
)

func newSchema(t *testing.T) gql.Schema {
	t.Helper()
	catalog, err := memory.NewCatalog(memory.DefaultSeed())
	require.NoError(t, err)
	products := memory.NewProductRepository(catalog)
	warehouses := memory.NewWarehouseRepository(catalog)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	schema, err := graphql.NewSchema(graphql.Deps{
		ProductUC:   usecase.NewProductUseCase(products),
		WarehouseUC: usecase.NewWarehouseUseCase(warehouses),
		KPIUC: appanalytics.NewKPIUseCase(products,
			appanalytics.WithClock(func() time.Time { return now }),
			appanalytics.WithSeed(7),
		),
		MutationUC: inventory.NewMutationUseCase(products, warehouses, memory.NewStockMovementRepository(), nil, nil),
	})
	require.NoError(t, err)
	return schema
}

func do(t *testing.T, schema gql.Schema, query string, vars map[string]interface{}) *gql.Result {
	t.Helper()
	return gql.Do(gql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        context.Background(),
	})
}

// toMap normaliza el resultado vía JSON para comparar sin depender de tipos Go.
func toMap(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestProducts_Filtros(t *testing.T) {
	schema := newSchema(t)
	res := do(t, schema, `{ products(status: "critical") { id status warehouse } }`, nil)
	require.Empty(t, res.Errors)

	data := toMap(t, res.Data)
	list := data["products"].([]interface{})
	require.Len(t, list, 2)
	for _, item := range list {
		assert.Equal(t, "critical", item.(map[string]interface{})["status"])
	}
}

func TestProductsPage(t *testing.T) {
	schema := newSchema(t)
	res := do(t, schema, `{ productsPage(page: 9, pageSize: 3) { items { id } pageInfo { currentPage totalPages totalItems hasNextPage hasPreviousPage } } }`, nil)
	require.Empty(t, res.Errors)

	page := toMap(t, res.Data)["productsPage"].(map[string]interface{})
	info := page["pageInfo"].(map[string]interface{})
	assert.EqualValues(t, 2, info["currentPage"])
	assert.EqualValues(t, 2, info["totalPages"])
	assert.EqualValues(t, 4, info["totalItems"])
	assert.Equal(t, false, info["hasNextPage"])
	assert.Equal(t, true, info["hasPreviousPage"])
	assert.Len(t, page["items"], 1)
}

func TestProduct_Inexistente(t *testing.T) {
	schema := newSchema(t)
	res := do(t, schema, `{ product(id: "P-404") { id } }`, nil)
	require.Empty(t, res.Errors)
	assert.Nil(t, toMap(t, res.Data)["product"])
}

func TestKPIs(t *testing.T) {
	schema := newSchema(t)
	res := do(t, schema, `{ kpis(range: "7d") { range totalStock totalDemand fillRate trendData { date } } }`, nil)
	require.Empty(t, res.Errors)

	k := toMap(t, res.Data)["kpis"].(map[string]interface{})
	assert.Equal(t, "7d", k["range"])
	assert.EqualValues(t, 334, k["totalStock"])
	assert.EqualValues(t, 400, k["totalDemand"])
	assert.InDelta(t, 68.5, k["fillRate"], 0.001)
	trend := k["trendData"].([]interface{})
	require.Len(t, trend, 8)
	assert.Equal(t, "2026-03-01", trend[7].(map[string]interface{})["date"])
}

func TestWarehouses(t *testing.T) {
	schema := newSchema(t)
	res := do(t, schema, `{ warehouses { id name location } }`, nil)
	require.Empty(t, res.Errors)
	assert.Len(t, toMap(t, res.Data)["warehouses"], 3)
}

func TestMutations_Codigos(t *testing.T) {
	cases := []struct {
		name string
		vars map[string]interface{}
		code string
	}{
		{"producto inexistente", map[string]interface{}{"id": "P-404", "from": "BLR-A", "to": "PNQ-C", "qty": 1}, "NOT_FOUND"},
		{"bodega origen distinta", map[string]interface{}{"id": "P-1003", "from": "BLR-A", "to": "DEL-B", "qty": 1}, "INVALID_STATE"},
		{"stock insuficiente", map[string]interface{}{"id": "P-1004", "from": "DEL-B", "to": "BLR-A", "qty": 25}, "INSUFFICIENT_STOCK"},
		{"cantidad cero", map[string]interface{}{"id": "P-1004", "from": "DEL-B", "to": "BLR-A", "qty": 0}, "VALIDATION"},
	}
	const mutation = `mutation T($id: ID!, $from: String!, $to: String!, $qty: Int!) {
		transferStock(productId: $id, fromWarehouse: $from, toWarehouse: $to, quantity: $qty) { id stock }
	}`
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schema := newSchema(t)
			res := do(t, schema, mutation, tc.vars)
			require.Len(t, res.Errors, 1)
			assert.Equal(t, tc.code, res.Errors[0].Extensions["code"])
		})
	}
}

func TestTransferStock_Aplica(t *testing.T) {
	schema := newSchema(t)
	res := do(t, schema, `mutation { transferStock(productId: "P-1004", fromWarehouse: "DEL-B", toWarehouse: "BLR-A", quantity: 24) { stock warehouse status } }`, nil)
	require.Empty(t, res.Errors)

	p := toMap(t, res.Data)["transferStock"].(map[string]interface{})
	assert.EqualValues(t, 0, p["stock"])
	assert.Equal(t, "BLR-A", p["warehouse"])
	assert.Equal(t, "critical", p["status"])

	res = do(t, schema, `{ movements(productId: "P-1004") { type fromWarehouse toWarehouse quantity createdAt } }`, nil)
	require.Empty(t, res.Errors)
	moves := toMap(t, res.Data)["movements"].([]interface{})
	require.Len(t, moves, 1)
	m := moves[0].(map[string]interface{})
	assert.Equal(t, "TRANSFER", m["type"])
	assert.EqualValues(t, 24, m["quantity"])
	assert.NotEmpty(t, m["createdAt"])
}

func TestUpdateDemand(t *testing.T) {
	schema := newSchema(t)
	res := do(t, schema, `mutation { updateDemand(productId: "P-1002", demand: 50) { demand status } }`, nil)
	require.Empty(t, res.Errors)
	p := toMap(t, res.Data)["updateDemand"].(map[string]interface{})
	assert.EqualValues(t, 50, p["demand"])
	assert.Equal(t, "low", p["status"])

	res = do(t, schema, `mutation { updateDemand(productId: "P-404", demand: 1) { id } }`, nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "NOT_FOUND", res.Errors[0].Extensions["code"])
}

func TestHandler_PostYGet(t *testing.T) {
	app := fiber.New()
	h := graphql.NewHandler(newSchema(t))
	app.Post("/graphql", h.Serve)
	app.Get("/graphql", h.Serve)

	body := `{"query":"query P($id: ID!) { product(id: $id) { name } }","variables":{"id":"P-1001"}}`
	req := httptest.NewRequest(fiber.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "12mm Hex Bolt")

	req = httptest.NewRequest(fiber.MethodGet, "/graphql?query=%7Bwarehouses%7Bid%7D%7D", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "PNQ-C")

	req = httptest.NewRequest(fiber.MethodPost, "/graphql", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
