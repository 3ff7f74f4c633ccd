package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-dashboard/internal/application/report"
)

// ReportHandler descarga de reportes imprimibles.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryPDF godoc
// @Summary      Reporte PDF del inventario
// @Tags         reports
// @Produce      application/pdf
// @Param        search     query  string  false  "Subcadena de nombre, SKU o ID"
// @Param        warehouse  query  string  false  "ID exacto de bodega"
// @Param        status     query  string  false  "healthy | low | critical | all"
// @Success      200        {file}    binary
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.DownloadInventoryPDF(c.UserContext(), filterFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
