package inventory

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// Range ventana de días de la serie de tendencia.
type Range int

const (
	Range7d  Range = 7
	Range14d Range = 14
	Range30d Range = 30
)

const (
	stockJitter  = 50.0 // amplitud total: ±25
	demandJitter = 40.0 // amplitud total: ±20
)

// ParseRange convierte "7d" | "14d" | "30d" (o 7, 14, 30) en Range.
// Cualquier otro valor cae en la ventana de 30 días.
func ParseRange(token string) Range {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(token)), "d"))
	if err != nil {
		return Range30d
	}
	switch Range(n) {
	case Range7d, Range14d, Range30d:
		return Range(n)
	default:
		return Range30d
	}
}

// Days número de días hacia atrás que cubre la ventana.
func (r Range) Days() int { return int(r) }

// String devuelve el token canónico, ej: "14d".
func (r Range) String() string { return strconv.Itoa(int(r)) + "d" }

// RandomSource fuente de números uniformes en [0, 1). *rand.Rand la satisface.
type RandomSource interface {
	Float64() float64
}

// TrendPoint un día de la serie simulada.
type TrendPoint struct {
	Date   time.Time
	Stock  int
	Demand int
}

// KPISnapshot indicadores del catálogo completo; se recalcula en cada consulta.
type KPISnapshot struct {
	TotalStock  int
	TotalDemand int
	Fulfilled   int
	FillRate    decimal.Decimal // porcentaje con 2 decimales
	Range       Range
	TrendData   []TrendPoint
}

// Totals suma stock, demanda y demanda cubierta del catálogo.
// La demanda cubierta se acota por producto: Σ min(stock, demanda).
func Totals(products []entity.Product) (totalStock, totalDemand, fulfilled int) {
	for _, p := range products {
		totalStock += p.Stock
		totalDemand += p.Demand
		fulfilled += min(p.Stock, p.Demand)
	}
	return totalStock, totalDemand, fulfilled
}

// FillRate = 100 × cubierta / demanda, redondeado a 2 decimales; 0 si no hay demanda.
func FillRate(fulfilled, totalDemand int) decimal.Decimal {
	if totalDemand <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(fulfilled)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(totalDemand))).
		Round(2)
}

// ComputeKPIs calcula los totales sobre todo el catálogo (sin filtros) y la serie de tendencia.
func ComputeKPIs(products []entity.Product, r Range, now time.Time, rnd RandomSource) KPISnapshot {
	totalStock, totalDemand, fulfilled := Totals(products)
	return KPISnapshot{
		TotalStock:  totalStock,
		TotalDemand: totalDemand,
		Fulfilled:   fulfilled,
		FillRate:    FillRate(fulfilled, totalDemand),
		Range:       r,
		TrendData:   TrendSeries(totalStock, totalDemand, r, now, rnd),
	}
}

// TrendSeries genera Days()+1 puntos diarios que terminan en la fecha de now.
// Es historia simulada para el gráfico: los valores son los totales actuales con ruido acotado.
func TrendSeries(totalStock, totalDemand int, r Range, now time.Time, rnd RandomSource) []TrendPoint {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := r.Days()
	points := make([]TrendPoint, 0, days+1)
	for i := days; i >= 0; i-- {
		points = append(points, TrendPoint{
			Date:   today.AddDate(0, 0, -i),
			Stock:  jitter(totalStock, stockJitter, rnd),
			Demand: jitter(totalDemand, demandJitter, rnd),
		})
	}
	return points
}

func jitter(base int, spread float64, rnd RandomSource) int {
	v := int(math.Floor(float64(base) + (rnd.Float64()-0.5)*spread))
	if v < 0 {
		return 0
	}
	return v
}
