// Package legacy expone la API con el formato JSON que consume el frontend
// actual (camelCase, envelopes {people}, {person}, {history}).
package legacy

import (
	"time"

	"applause-ledger/internal/domain/history"
	"applause-ledger/internal/domain/people"
)

// Person usa los mismos campos que el registro person:<id> del store.
type Person struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Position      string     `json:"position"`
	Photo         string     `json:"photo"`
	ApplauseCount int        `json:"applauseCount"`
	FoodBrought   int        `json:"foodBrought"`
	PendingFood   bool       `json:"pendingFood"`
	LastApplause  *time.Time `json:"lastApplause"`
}

// HistoryEntry: action es "+1" o "-1".
type HistoryEntry struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	From   string    `json:"from"`
	To     string    `json:"to"`
	ToName string    `json:"toName"`
	Action string    `json:"action" enums:"+1,-1"`
}

type PeopleEnvelope struct {
	People []Person `json:"people"`
}

type PersonEnvelope struct {
	Person Person `json:"person"`
}

type ApplauseEnvelope struct {
	Person      Person `json:"person"`
	Celebration bool   `json:"celebration"`
}

type HistoryEnvelope struct {
	History []HistoryEntry `json:"history"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func FromPerson(p people.Person) Person {
	return Person{
		ID:            p.ID,
		Name:          p.Name,
		Position:      p.Position,
		Photo:         p.PhotoURL,
		ApplauseCount: p.ApplauseCount,
		FoodBrought:   p.FoodBrought,
		PendingFood:   p.PendingFood,
		LastApplause:  p.LastApplauseAt,
	}
}

func FromEntry(e history.Entry) HistoryEntry {
	return HistoryEntry{
		ID:     e.ID,
		Date:   e.Timestamp,
		From:   e.Actor,
		To:     e.Target,
		ToName: e.TargetName,
		Action: e.Action.Symbol(),
	}
}

func fromPeople(items []people.Person) []Person {
	out := make([]Person, 0, len(items))
	for _, p := range items {
		out = append(out, FromPerson(p))
	}
	return out
}

func fromEntries(items []history.Entry) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(items))
	for _, e := range items {
		out = append(out, FromEntry(e))
	}
	return out
}
