package inventory

// MutationRecorder recibe el resultado de cada mutación (métricas).
type MutationRecorder interface {
	ObserveMutation(operation, result string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveMutation(string, string) {}
