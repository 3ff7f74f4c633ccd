package graphql

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
)

// Request cuerpo estándar de una operación GraphQL.
type Request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Handler ejecuta operaciones GraphQL (POST con JSON, GET con query params).
type Handler struct {
	schema graphql.Schema
}

// NewHandler construye el handler sobre un esquema ya validado.
func NewHandler(schema graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

// Serve godoc
// @Summary      Endpoint GraphQL
// @Description  Query: products, productsPage, product, warehouses, kpis, movements.
//
//	Mutation: updateDemand, transferStock. Los errores de negocio llegan en
//	errors[].extensions.code.
//
// @Tags         graphql
// @Accept       json
// @Produce      json
// @Param        body  body  Request  true  "query, variables, operationName"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /graphql [post]
func (h *Handler) Serve(c *fiber.Ctx) error {
	var req Request
	if c.Method() == fiber.MethodGet {
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if raw := c.Query("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_VARIABLES", Message: "variables no es un objeto JSON"})
			}
		}
	} else if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query es requerido"})
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.UserContext(),
	})
	return c.JSON(result)
}
