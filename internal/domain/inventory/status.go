package inventory

// Status indicador de salud derivado de comparar stock contra demanda.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusLow      Status = "low"
	StatusCritical Status = "critical"

	// StatusAll valor centinela de los filtros: no filtra por estado.
	StatusAll = "all"
)

// Classify es la única regla de estado del sistema:
// stock > demanda → healthy; stock == demanda → low; stock < demanda → critical.
func Classify(stock, demand int) Status {
	switch {
	case stock > demand:
		return StatusHealthy
	case stock == demand:
		return StatusLow
	default:
		return StatusCritical
	}
}
