// Package pagination recorta listados ya filtrados en páginas 1-based.
package pagination

// DefaultPageSize tamaño de página de la tabla de productos.
const DefaultPageSize = 10

// Page una página de resultados con sus metadatos de navegación.
// StartIndex y EndIndex son índices de visualización 1-based inclusivos (0 y 0 si no hay datos).
type Page[T any] struct {
	Items           []T
	CurrentPage     int
	PageSize        int
	TotalItems      int
	TotalPages      int
	StartIndex      int
	EndIndex        int
	HasNextPage     bool
	HasPreviousPage bool
}

// Paginate devuelve la página solicitada de items. page se acota a
// [1, TotalPages]: pedir la página 0 o una posterior a la última entrega la
// página válida más cercana, nunca un error.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	current := page
	if current > totalPages {
		current = totalPages
	}
	if current < 1 {
		current = 1
	}

	start := (current - 1) * pageSize
	end := min(start+pageSize, total)
	if start > total {
		start = total
	}

	p := Page[T]{
		Items:           items[start:end],
		CurrentPage:     current,
		PageSize:        pageSize,
		TotalItems:      total,
		TotalPages:      totalPages,
		HasNextPage:     current < totalPages,
		HasPreviousPage: current > 1,
	}
	if end > start {
		p.StartIndex = start + 1
		p.EndIndex = end
	}
	return p
}
