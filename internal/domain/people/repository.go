package people

import "context"

type Repository interface {
	Get(ctx context.Context, id string) (Person, error)
	List(ctx context.Context) ([]Person, error)
	// Put sobreescribe el registro completo (last-writer-wins).
	Put(ctx context.Context, p Person) error
}

type ListFilter struct {
	PendingOnly bool
}
