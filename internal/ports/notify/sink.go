package notify

import (
	"context"
	"time"
)

type EventType string

const (
	EventApplause       EventType = "applause"
	EventRemoveApplause EventType = "remove_applause"
	EventFoodBrought    EventType = "food_brought"
)

// PersonSnapshot es la persona tal como quedó después del commit.
type PersonSnapshot struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Position       string     `json:"position,omitempty"`
	PhotoURL       string     `json:"photo_url,omitempty"`
	ApplauseCount  int        `json:"applause_count"`
	FoodBrought    int        `json:"food_brought"`
	PendingFood    bool       `json:"pending_food"`
	LastApplauseAt *time.Time `json:"last_applause_at,omitempty"`
}

type HistorySnapshot struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Actor      string    `json:"actor"`
	Target     string    `json:"target"`
	TargetName string    `json:"target_name"`
	Action     string    `json:"action"`
}

// Event es el payload que sale hacia afuera (webhook).
type Event struct {
	Type        EventType        `json:"type"`
	Person      PersonSnapshot   `json:"person"`
	Actor       string           `json:"actor,omitempty"`
	Celebration bool             `json:"celebration,omitempty"`
	History     *HistorySnapshot `json:"history,omitempty"`
	OccurredAt  time.Time        `json:"occurred_at"`
}

// Sink recibe eventos después del commit. Fire-and-forget:
// no devuelve error y no debe bloquear al caller.
type Sink interface {
	Notify(ctx context.Context, e Event)
}

// Nop es el sink cuando no hay destino configurado.
type Nop struct{}

func (Nop) Notify(context.Context, Event) {}
