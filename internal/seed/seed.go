// Package seed carga el equipo de ejemplo en un store vacío (demo / dev).
package seed

import (
	"context"
	"fmt"
	"time"

	"applause-ledger/internal/domain/people"
	"applause-ledger/internal/platform/logger"
)

// PeopleService es lo que usa seed de people.Service.
type PeopleService interface {
	List(ctx context.Context, filter people.ListFilter) ([]people.Person, error)
	Upsert(ctx context.Context, p people.Person) (people.Person, error)
}

// SamplePeople devuelve el equipo de ejemplo con lastApplause = now.
func SamplePeople(now time.Time) []people.Person {
	at := func() *time.Time { t := now; return &t }
	return []people.Person{
		{
			ID: "1", Name: "María García", Position: "Diseñadora UX",
			PhotoURL:      "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400",
			ApplauseCount: 8, FoodBrought: 2, LastApplauseAt: at(),
		},
		{
			ID: "2", Name: "Carlos Rodríguez", Position: "Desarrollador Frontend",
			PhotoURL:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
			ApplauseCount: 12, FoodBrought: 1, LastApplauseAt: at(),
		},
		{
			ID: "3", Name: "Ana Martínez", Position: "Product Manager",
			PhotoURL:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400",
			ApplauseCount: 3, LastApplauseAt: at(),
		},
		{
			ID: "4", Name: "Luis Fernández", Position: "Desarrollador Backend",
			PhotoURL:      "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400",
			ApplauseCount: 14, FoodBrought: 3, LastApplauseAt: at(),
		},
		{
			ID: "5", Name: "Sofia López", Position: "QA Engineer",
			PhotoURL:      "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=400",
			ApplauseCount: 5, PendingFood: true, LastApplauseAt: at(),
		},
	}
}

// EnsureSampleData carga SamplePeople solo si no hay ninguna persona.
// Devuelve cuántas insertó (0 si el store ya tenía datos).
func EnsureSampleData(ctx context.Context, svc PeopleService, log logger.Logger, now time.Time) (int, error) {
	if log == nil {
		log = logger.Nop()
	}

	existing, err := svc.List(ctx, people.ListFilter{})
	if err != nil {
		return 0, fmt.Errorf("seed: list people: %w", err)
	}
	if len(existing) > 0 {
		log.Debug("seed skipped: store not empty", map[string]any{"people": len(existing)})
		return 0, nil
	}

	sample := SamplePeople(now)
	for _, p := range sample {
		if _, err := svc.Upsert(ctx, p); err != nil {
			return 0, fmt.Errorf("seed: upsert %s: %w", p.ID, err)
		}
	}
	log.Info("sample data initialized", map[string]any{"people": len(sample)})
	return len(sample), nil
}
