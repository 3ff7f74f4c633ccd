package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Las capas de interfaz los traducen a códigos con errors.Is; nunca por texto.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidState      = errors.New("el producto no está en la bodega indicada")
	ErrInsufficientStock = errors.New("stock insuficiente para la transferencia")
)
