package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
)

// InventoryHandler maneja transferencias y el registro de movimientos.
type InventoryHandler struct {
	uc            *inventory.MutationUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler. replenishment puede ser nil.
func NewInventoryHandler(uc *inventory.MutationUseCase, replenishment *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, replenishment: replenishment}
}

// TransferStock godoc
// @Summary      Transferir stock entre bodegas
// @Description  Descuenta quantity del stock y reasigna el producto a to_warehouse.
//
//	El destino no acumula saldo propio (un único contador por producto).
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferStockRequest  true  "product_id, from_warehouse, to_warehouse, quantity"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) TransferStock(c *fiber.Ctx) error {
	var in dto.TransferStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.TransferStock(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Registro de mutaciones aplicadas
// @Tags         inventory
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Máximo de registros"  default(50)
// @Success      200         {object}  dto.StockMovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	out, err := h.uc.ListMovements(c.Query("product_id"), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Replenishment godoc
// @Summary      Lista de reposición
// @Description  Productos low o critical con cantidad sugerida (stock objetivo = 1.5x demanda),
//
//	ordenados por menor cobertura.
//
// @Tags         inventory
// @Produce      json
// @Param        warehouse  query  string  false  "ID de bodega (vacío = todas)"
// @Success      200        {object}  dto.ReplenishmentListResponse
// @Router       /api/inventory/replenishment [get]
func (h *InventoryHandler) Replenishment(c *fiber.Ctx) error {
	items, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), c.Query("warehouse"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ReplenishmentListResponse{Total: len(items), Items: items})
}
