// Package kvrepo implementa los repos de people/history y el commit del
// ledger sobre cualquier kv.Store. El layout de keys es el que ya existe en
// producción, así que los datos viejos se leen sin migrar.
package kvrepo

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"applause-ledger/internal/domain/history"
	"applause-ledger/internal/domain/people"
)

const (
	personIndexKey = "personIds"
	personPrefix   = "person:"
	historyPrefix  = "history:"
)

// ErrCorruptRecord: el valor guardado no decodifica o no valida.
var ErrCorruptRecord = errors.New("kvrepo: corrupt record")

func personKey(id string) string  { return personPrefix + id }
func historyKey(id string) string { return historyPrefix + id }

type personRecord struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Position      string     `json:"position"`
	Photo         string     `json:"photo"`
	ApplauseCount int        `json:"applauseCount"`
	FoodBrought   int        `json:"foodBrought"`
	PendingFood   bool       `json:"pendingFood"`
	LastApplause  *time.Time `json:"lastApplause"`
}

func encodePerson(p people.Person) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(personRecord{
		ID:            p.ID,
		Name:          p.Name,
		Position:      p.Position,
		Photo:         p.PhotoURL,
		ApplauseCount: p.ApplauseCount,
		FoodBrought:   p.FoodBrought,
		PendingFood:   p.PendingFood,
		LastApplause:  p.LastApplauseAt,
	})
}

func decodePerson(key string, raw []byte) (people.Person, error) {
	var rec personRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return people.Person{}, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
	}
	p := people.Person{
		ID:             rec.ID,
		Name:           rec.Name,
		Position:       rec.Position,
		PhotoURL:       rec.Photo,
		ApplauseCount:  rec.ApplauseCount,
		FoodBrought:    rec.FoodBrought,
		PendingFood:    rec.PendingFood,
		LastApplauseAt: rec.LastApplause,
	}
	if err := p.Validate(); err != nil {
		return people.Person{}, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
	}
	return p, nil
}

// historyRecord.Action se escribe como "+1"/"-1", igual que los registros viejos.
type historyRecord struct {
	ID     string    `json:"id,omitempty"`
	Date   time.Time `json:"date"`
	From   string    `json:"from"`
	To     string    `json:"to"`
	ToName string    `json:"toName"`
	Action string    `json:"action"`
}

func encodeEntry(e history.Entry) ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(historyRecord{
		ID:     e.ID,
		Date:   e.Timestamp,
		From:   e.Actor,
		To:     e.Target,
		ToName: e.TargetName,
		Action: e.Action.Symbol(),
	})
}

// decodeEntry: los registros viejos no guardan id; sale del sufijo de la key.
func decodeEntry(key string, raw []byte) (history.Entry, error) {
	var rec historyRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return history.Entry{}, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
	}
	action, err := history.ParseAction(rec.Action)
	if err != nil {
		return history.Entry{}, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
	}
	id := rec.ID
	if id == "" {
		id = strings.TrimPrefix(key, historyPrefix)
	}
	e := history.Entry{
		ID:         id,
		Timestamp:  rec.Date,
		Actor:      rec.From,
		Target:     rec.To,
		TargetName: rec.ToName,
		Action:     action,
	}
	if err := e.Validate(); err != nil {
		return history.Entry{}, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
	}
	return e, nil
}
