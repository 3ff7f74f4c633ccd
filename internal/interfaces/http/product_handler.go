package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventory-dashboard/pkg/pagination"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc        *usecase.ProductUseCase
	mutations *inventory.MutationUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, mutations *inventory.MutationUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, mutations: mutations}
}

// List godoc
// @Summary      Listar productos (filtros + paginación)
// @Tags         products
// @Produce      json
// @Param        search     query  string  false  "Subcadena de nombre, SKU o ID (sin mayúsculas)"
// @Param        warehouse  query  string  false  "ID exacto de bodega"
// @Param        status     query  string  false  "healthy | low | critical | all"
// @Param        page       query  int     false  "Página 1-based (se acota al rango válido)"  default(1)
// @Param        page_size  query  int     false  "Tamaño de página"                          default(10)
// @Success      200        {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	pageSize := c.QueryInt("page_size", pagination.DefaultPageSize)
	if pageSize > 100 {
		pageSize = 100
	}
	in := dto.ProductListRequest{
		ProductFilterRequest: filterFromQuery(c),
		Page:                 c.QueryInt("page", 1),
		PageSize:             pageSize,
	}
	out, err := h.uc.ListPage(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// UpdateDemand godoc
// @Summary      Actualizar demanda de un producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del producto"
// @Param        body  body  dto.UpdateDemandRequest  true  "Nueva demanda (>= 0)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/demand [put]
func (h *ProductHandler) UpdateDemand(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateDemandRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Demand == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "demand es requerido"})
	}
	out, err := h.mutations.UpdateDemand(c.UserContext(), id, *in.Demand)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func filterFromQuery(c *fiber.Ctx) dto.ProductFilterRequest {
	return dto.ProductFilterRequest{
		Search:    c.Query("search"),
		Warehouse: c.Query("warehouse"),
		Status:    c.Query("status"),
	}
}
