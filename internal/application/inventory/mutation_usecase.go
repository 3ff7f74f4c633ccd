package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventory-dashboard/pkg/logger"
)

const (
	OpUpdateDemand  = "update_demand"
	OpTransferStock = "transfer_stock"
)

// MutationUseCase aplica las dos mutaciones del dashboard sobre un único producto.
// Cada una es atómica: ProductRepository.Update mantiene el bloqueo exclusivo
// durante buscar → validar → escribir, y un error deja el registro intacto.
type MutationUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	movementRepo  repository.StockMovementRepository
	recorder      MutationRecorder
	log           *logger.Logger
	now           func() time.Time
}

// NewMutationUseCase construye el caso de uso. recorder y log pueden ser nil.
func NewMutationUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	movementRepo repository.StockMovementRepository,
	recorder MutationRecorder,
	log *logger.Logger,
) *MutationUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &MutationUseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		movementRepo:  movementRepo,
		recorder:      recorder,
		log:           log,
		now:           time.Now,
	}
}

// UpdateDemand sobrescribe la demanda del producto.
//
// Retorna:
//   - domain.ErrInvalidInput si demand < 0.
//   - domain.ErrNotFound     si el producto no existe.
func (uc *MutationUseCase) UpdateDemand(ctx context.Context, productID string, demand int) (*dto.ProductResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if productID == "" || demand < 0 {
		return nil, uc.reject(OpUpdateDemand, productID, domain.ErrInvalidInput)
	}

	var previous int
	updated, err := uc.productRepo.Update(productID, func(p *entity.Product) error {
		previous = p.Demand
		p.Demand = demand
		return nil
	})
	if err != nil {
		return nil, uc.reject(OpUpdateDemand, productID, err)
	}

	uc.record(&entity.StockMovement{
		ProductID:      productID,
		Type:           entity.MovementDemandUpdate,
		PreviousDemand: previous,
		NewDemand:      demand,
	})
	uc.recorder.ObserveMutation(OpUpdateDemand, "ok")
	uc.log.Info().
		Str("product_id", productID).
		Int("previous_demand", previous).
		Int("demand", demand).
		Msg("demanda actualizada")

	out := usecase.ToProductResponse(*updated)
	return &out, nil
}

// TransferStock descuenta quantity del stock y reasigna el producto a la bodega destino.
// El destino no acumula saldo: el modelo lleva un único contador de stock por producto.
//
// Orden de validación:
//  1. quantity > 0, bodegas distintas y destino existente → domain.ErrInvalidInput
//  2. producto inexistente                                  → domain.ErrNotFound
//  3. producto fuera de la bodega origen                    → domain.ErrInvalidState
//  4. quantity > stock                                      → domain.ErrInsufficientStock
func (uc *MutationUseCase) TransferStock(ctx context.Context, in dto.TransferStockRequest) (*dto.ProductResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := uc.validateTransfer(in); err != nil {
		return nil, uc.reject(OpTransferStock, in.ProductID, err)
	}

	updated, err := uc.productRepo.Update(in.ProductID, func(p *entity.Product) error {
		if p.WarehouseID != in.FromWarehouse {
			return domain.ErrInvalidState
		}
		if in.Quantity > p.Stock {
			return domain.ErrInsufficientStock
		}
		p.Stock -= in.Quantity
		p.WarehouseID = in.ToWarehouse
		return nil
	})
	if err != nil {
		return nil, uc.reject(OpTransferStock, in.ProductID, err)
	}

	uc.record(&entity.StockMovement{
		ProductID:       in.ProductID,
		Type:            entity.MovementTransfer,
		FromWarehouseID: in.FromWarehouse,
		ToWarehouseID:   in.ToWarehouse,
		Quantity:        in.Quantity,
	})
	uc.recorder.ObserveMutation(OpTransferStock, "ok")
	uc.log.Info().
		Str("product_id", in.ProductID).
		Str("from", in.FromWarehouse).
		Str("to", in.ToWarehouse).
		Int("quantity", in.Quantity).
		Int("stock", updated.Stock).
		Msg("stock transferido")

	out := usecase.ToProductResponse(*updated)
	return &out, nil
}

// ListMovements lista el registro de mutaciones (todas si productID es vacío).
func (uc *MutationUseCase) ListMovements(productID string, limit int) (*dto.StockMovementListResponse, error) {
	list, err := uc.movementRepo.ListByProduct(productID, limit)
	if err != nil {
		return nil, fmt.Errorf("movimientos: listar: %w", err)
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.StockMovementResponse{
			ID:             m.ID,
			Type:           string(m.Type),
			ProductID:      m.ProductID,
			FromWarehouse:  m.FromWarehouseID,
			ToWarehouse:    m.ToWarehouseID,
			Quantity:       m.Quantity,
			PreviousDemand: m.PreviousDemand,
			NewDemand:      m.NewDemand,
			CreatedAt:      m.CreatedAt,
		})
	}
	return &dto.StockMovementListResponse{Total: len(items), Items: items}, nil
}

func (uc *MutationUseCase) validateTransfer(in dto.TransferStockRequest) error {
	if in.ProductID == "" || in.FromWarehouse == "" || in.ToWarehouse == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.FromWarehouse == in.ToWarehouse {
		return domain.ErrInvalidInput
	}
	dest, err := uc.warehouseRepo.GetByID(in.ToWarehouse)
	if err != nil {
		return fmt.Errorf("transferencia: obtener bodega destino: %w", err)
	}
	if dest == nil {
		return fmt.Errorf("%w: bodega destino %q no existe", domain.ErrInvalidInput, in.ToWarehouse)
	}
	return nil
}

// record agrega el movimiento al registro. Un fallo aquí no revierte la mutación ya aplicada.
func (uc *MutationUseCase) record(m *entity.StockMovement) {
	m.ID = uuid.New().String()
	m.CreatedAt = uc.now()
	if err := uc.movementRepo.Create(m); err != nil {
		uc.log.Error().Err(err).Str("product_id", m.ProductID).Msg("registrar movimiento")
	}
}

func (uc *MutationUseCase) reject(op, productID string, err error) error {
	uc.recorder.ObserveMutation(op, resultLabel(err))
	uc.log.Warn().Err(err).Str("operation", op).Str("product_id", productID).Msg("mutación rechazada")
	return err
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
