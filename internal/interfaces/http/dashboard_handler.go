package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventory-dashboard/internal/application/analytics"
)

// DashboardHandler maneja los endpoints de KPIs del dashboard.
type DashboardHandler struct {
	uc *appanalytics.KPIUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.KPIUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetKPIs godoc
// @Summary      KPIs del inventario
// @Description  Totales del catálogo completo (sin filtros), fill rate y serie de tendencia
//
//	simulada de range+1 días. Un rango desconocido usa 30d.
//
// @Tags         dashboard
// @Produce      json
// @Param        range  query  string  false  "7d | 14d | 30d"  default(30d)
// @Success      200    {object}  dto.KPIResponseDTO
// @Router       /api/kpis [get]
func (h *DashboardHandler) GetKPIs(c *fiber.Ctx) error {
	out, err := h.uc.GetKPIs(c.UserContext(), c.Query("range", "30d"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
