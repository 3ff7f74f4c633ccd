package analytics

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
)

const trendDateLayout = "2006-01-02"

// KPIUseCase calcula los KPIs del dashboard sobre el catálogo completo.
//
// La serie de tendencia es simulada (totales actuales con ruido acotado); no hay
// histórico persistido. Reloj y fuente aleatoria se inyectan para poder testear.
type KPIUseCase struct {
	productRepo repository.ProductRepository
	now         func() time.Time

	mu  sync.Mutex // *rand.Rand no es seguro entre goroutines
	rnd inventory.RandomSource
}

// KPIOption ajusta la construcción del caso de uso.
type KPIOption func(*KPIUseCase)

// WithClock reemplaza el reloj (por defecto time.Now en UTC).
func WithClock(now func() time.Time) KPIOption {
	return func(uc *KPIUseCase) { uc.now = now }
}

// WithRandomSource reemplaza la fuente del ruido de la serie.
func WithRandomSource(rnd inventory.RandomSource) KPIOption {
	return func(uc *KPIUseCase) { uc.rnd = rnd }
}

// WithSeed fija la semilla del ruido; 0 deja la semilla basada en el reloj.
func WithSeed(seed int64) KPIOption {
	return func(uc *KPIUseCase) {
		if seed != 0 {
			uc.rnd = rand.New(rand.NewSource(seed))
		}
	}
}

// NewKPIUseCase construye el caso de uso.
func NewKPIUseCase(productRepo repository.ProductRepository, opts ...KPIOption) *KPIUseCase {
	uc := &KPIUseCase{
		productRepo: productRepo,
		now:         func() time.Time { return time.Now().UTC() },
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// GetKPIs devuelve totales, fill rate y la serie de tendencia para la ventana pedida.
// Un rango no reconocido usa la ventana de 30 días.
func (uc *KPIUseCase) GetKPIs(ctx context.Context, rangeToken string) (*dto.KPIResponseDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("kpis: listar productos: %w", err)
	}

	r := inventory.ParseRange(rangeToken)

	uc.mu.Lock()
	snapshot := inventory.ComputeKPIs(products, r, uc.now(), uc.rnd)
	uc.mu.Unlock()

	trend := make([]dto.KPIDataPointDTO, 0, len(snapshot.TrendData))
	for _, p := range snapshot.TrendData {
		trend = append(trend, dto.KPIDataPointDTO{
			Date:   p.Date.Format(trendDateLayout),
			Stock:  p.Stock,
			Demand: p.Demand,
		})
	}
	return &dto.KPIResponseDTO{
		Range:       r.String(),
		TotalStock:  snapshot.TotalStock,
		TotalDemand: snapshot.TotalDemand,
		FillRate:    snapshot.FillRate.InexactFloat64(),
		TrendData:   trend,
	}, nil
}
