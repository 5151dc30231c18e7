package history

import (
	"context"
	"errors"
	"strings"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo         Repository
	defaultLimit int
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, defaultLimit: DefaultLimit}
}

// WithDefaultLimit cambia el límite usado cuando el caller no manda uno.
func (s *Service) WithDefaultLimit(n int) *Service {
	if n > 0 {
		s.defaultLimit = clampLimit(n, DefaultLimit)
	}
	return s
}

// Received: aplausos dados/quitados a personID, más nuevos primero.
func (s *Service) Received(ctx context.Context, personID string, limit int) ([]Entry, error) {
	personID = strings.TrimSpace(personID)
	if personID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, ListFilter{
		Target: personID,
		Limit:  clampLimit(limit, s.defaultLimit),
	})
}

// Given: entradas donde actor es quien hizo la acción.
// El actor es un nombre libre (no un id), por eso se busca por nombre.
func (s *Service) Given(ctx context.Context, actor string, limit int) ([]Entry, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, ListFilter{
		Actor: actor,
		Limit: clampLimit(limit, s.defaultLimit),
	})
}

func clampLimit(n, def int) int {
	if n <= 0 {
		return def
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}
