package inventory_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
)

// fixedRand devuelve siempre el mismo valor.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestParseRange(t *testing.T) {
	tests := map[string]inventory.Range{
		"7d":   inventory.Range7d,
		"14d":  inventory.Range14d,
		"30d":  inventory.Range30d,
		"7":    inventory.Range7d,
		"14D":  inventory.Range14d,
		"":     inventory.Range30d,
		"90d":  inventory.Range30d,
		"week": inventory.Range30d,
	}
	for token, want := range tests {
		assert.Equal(t, want, inventory.ParseRange(token), "token %q", token)
	}
	assert.Equal(t, "14d", inventory.Range14d.String())
}

func TestComputeKPIs_PerItemFulfilment(t *testing.T) {
	products := []entity.Product{
		{ID: "A", Stock: 180, Demand: 120},
		{ID: "B", Stock: 50, Demand: 80},
	}
	now := time.Date(2026, 10, 16, 15, 4, 5, 0, time.UTC)

	k := inventory.ComputeKPIs(products, inventory.Range7d, now, fixedRand(0.5))

	assert.Equal(t, 230, k.TotalStock)
	assert.Equal(t, 200, k.TotalDemand)
	assert.Equal(t, 170, k.Fulfilled)
	assert.Equal(t, "85", k.FillRate.String())
	assert.Equal(t, "85.00", k.FillRate.StringFixed(2))
}

func TestFillRate(t *testing.T) {
	assert.True(t, inventory.FillRate(0, 0).IsZero(), "sin demanda el fill rate es 0")
	assert.Equal(t, "33.33", inventory.FillRate(1, 3).StringFixed(2))
	assert.Equal(t, "66.67", inventory.FillRate(2, 3).StringFixed(2))
	assert.Equal(t, "100.00", inventory.FillRate(5, 5).StringFixed(2))
}

func TestFillRate_NeverAbove100(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		products := make([]entity.Product, 1+r.Intn(6))
		for j := range products {
			products[j] = entity.Product{Stock: r.Intn(300), Demand: r.Intn(300)}
		}
		_, demand, fulfilled := inventory.Totals(products)
		require.LessOrEqual(t, fulfilled, demand)
		rate := inventory.FillRate(fulfilled, demand)
		f, _ := rate.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 100.0)
	}
}

func TestTrendSeries_Shape(t *testing.T) {
	now := time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC)
	rnd := rand.New(rand.NewSource(7))

	for _, r := range []inventory.Range{inventory.Range7d, inventory.Range14d, inventory.Range30d} {
		points := inventory.TrendSeries(334, 400, r, now, rnd)
		require.Len(t, points, r.Days()+1)

		last := points[len(points)-1].Date
		assert.Equal(t, "2026-03-02", last.Format("2006-01-02"), "la serie termina hoy")
		for i := 1; i < len(points); i++ {
			assert.True(t, points[i].Date.After(points[i-1].Date), "fechas estrictamente crecientes")
			assert.Equal(t, 24*time.Hour, points[i].Date.Sub(points[i-1].Date))
		}
		for _, p := range points {
			assert.GreaterOrEqual(t, p.Stock, 334-25)
			assert.Less(t, p.Stock, 334+25)
			assert.GreaterOrEqual(t, p.Demand, 400-20)
			assert.Less(t, p.Demand, 400+20)
		}
	}
}

func TestTrendSeries_CrossesMonthBoundary(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	points := inventory.TrendSeries(10, 10, inventory.Range7d, now, fixedRand(0.5))

	assert.Equal(t, "2026-02-23", points[0].Date.Format("2006-01-02"))
	assert.Equal(t, 10, points[0].Stock)
	assert.Equal(t, 10, points[0].Demand)
}

func TestTrendSeries_NeverNegative(t *testing.T) {
	points := inventory.TrendSeries(0, 0, inventory.Range7d, time.Now(), fixedRand(0))
	for _, p := range points {
		assert.Equal(t, 0, p.Stock)
		assert.Equal(t, 0, p.Demand)
	}
}
