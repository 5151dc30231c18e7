package people

import (
	"context"
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("person not found")
)

// Locker es el lock por persona que también usa el ledger.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

type Service struct {
	repo  Repository
	locks Locker
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// WithLocks hace que Upsert tome el mismo lock por persona que Grant/Revoke.
func (s *Service) WithLocks(l Locker) *Service {
	s.locks = l
	return s
}

func (s *Service) GetByID(ctx context.Context, id string) (Person, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Person{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// List ordena como la UI: más aplausos primero, después por nombre.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Person, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Person, 0, len(items))
	for _, p := range items {
		if filter.PendingOnly && !p.PendingFood {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ApplauseCount != out[j].ApplauseCount {
			return out[i].ApplauseCount > out[j].ApplauseCount
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Upsert es para seed/import: escribe el registro completo, contadores incluidos.
// Sin WithLocks solo es seguro con el ledger parado (seed sobre store vacío).
func (s *Service) Upsert(ctx context.Context, p Person) (Person, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Position = strings.TrimSpace(p.Position)
	p.PhotoURL = strings.TrimSpace(p.PhotoURL)

	if p.ID == "" || p.Name == "" {
		return Person{}, ErrInvalidInput
	}
	if err := p.Validate(); err != nil {
		return Person{}, ErrInvalidInput
	}
	if s.locks != nil {
		unlock, err := s.locks.Lock(ctx, p.ID)
		if err != nil {
			return Person{}, err
		}
		defer unlock()
	}
	if err := s.repo.Put(ctx, p); err != nil {
		return Person{}, err
	}
	return p, nil
}
