package history

import "context"

type Repository interface {
	// Append nunca sobreescribe una key existente.
	Append(ctx context.Context, e Entry) error
	List(ctx context.Context, filter ListFilter) ([]Entry, error)
}

// ListFilter: Target y Actor son opcionales (vacío = no filtra).
// Actor compara sin mayúsculas y sin espacios de borde.
type ListFilter struct {
	Target string
	Actor  string
	Limit  int
}
