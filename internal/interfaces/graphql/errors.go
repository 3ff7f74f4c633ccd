package graphql

import (
	"errors"

	"github.com/jhoicas/inventory-dashboard/internal/domain"
)

// codedError expone el código de dominio en extensions.code de la respuesta.
type codedError struct {
	err  error
	code string
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

// Extensions lo consulta graphql-go al formatear el error.
func (e *codedError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// toGraphQLError traduce un error de dominio; nil se mantiene nil.
func toGraphQLError(err error) error {
	if err == nil {
		return nil
	}
	return &codedError{err: err, code: errorCode(err)}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidState):
		return "INVALID_STATE"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrInvalidInput):
		return "VALIDATION"
	default:
		return "INTERNAL"
	}
}
