package webhook

import (
	"time"

	"applause-ledger/internal/domain/history"
	"applause-ledger/internal/domain/legacy"
	"applause-ledger/internal/ports/notify"
)

// payload es lo que recibe el escenario de Make: mismas keys que mandaba la
// edge function (person en camelCase, givenBy/removedBy, history con "+1"/"-1").
// celebration va siempre en los eventos applause, también en false.
type payload struct {
	Type        notify.EventType     `json:"type"`
	Person      legacy.Person        `json:"person"`
	GivenBy     string               `json:"givenBy,omitempty"`
	RemovedBy   string               `json:"removedBy,omitempty"`
	Celebration *bool                `json:"celebration,omitempty"`
	History     *legacy.HistoryEntry `json:"history,omitempty"`
	OccurredAt  time.Time            `json:"occurredAt"`
}

func toPayload(e notify.Event) payload {
	p := payload{
		Type: e.Type,
		Person: legacy.Person{
			ID:            e.Person.ID,
			Name:          e.Person.Name,
			Position:      e.Person.Position,
			Photo:         e.Person.PhotoURL,
			ApplauseCount: e.Person.ApplauseCount,
			FoodBrought:   e.Person.FoodBrought,
			PendingFood:   e.Person.PendingFood,
			LastApplause:  e.Person.LastApplauseAt,
		},
		OccurredAt: e.OccurredAt,
	}
	if h := e.History; h != nil {
		p.History = &legacy.HistoryEntry{
			ID:     h.ID,
			Date:   h.Timestamp,
			From:   h.Actor,
			To:     h.Target,
			ToName: h.TargetName,
			Action: history.Action(h.Action).Symbol(),
		}
	}
	switch e.Type {
	case notify.EventApplause:
		celebration := e.Celebration
		p.GivenBy = e.Actor
		p.Celebration = &celebration
	case notify.EventRemoveApplause:
		p.RemovedBy = e.Actor
	}
	return p
}
