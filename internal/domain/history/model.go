package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Action string

const (
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

func (a Action) Valid() bool {
	return a == ActionGrant || a == ActionRevoke
}

// Symbol es como se guarda y como lo lee el frontend viejo: "+1" / "-1".
func (a Action) Symbol() string {
	switch a {
	case ActionGrant:
		return "+1"
	case ActionRevoke:
		return "-1"
	default:
		return string(a)
	}
}

// ParseAction acepta el nombre o el símbolo.
func ParseAction(s string) (Action, error) {
	switch strings.TrimSpace(s) {
	case string(ActionGrant), "+1":
		return ActionGrant, nil
	case string(ActionRevoke), "-1":
		return ActionRevoke, nil
	default:
		return "", fmt.Errorf("unknown history action %q", s)
	}
}

func (a *Action) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseAction(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Entry es inmutable una vez escrita.
type Entry struct {
	// ID = "<unix-ms>-<nonce>"; desempata eventos del mismo milisegundo.
	ID         string
	Timestamp  time.Time
	Actor      string
	Target     string
	TargetName string
	Action     Action
}

var errInvalidRecord = errors.New("invalid history record")

func (e Entry) Validate() error {
	switch {
	case strings.TrimSpace(e.ID) == "":
		return errors.Join(errInvalidRecord, errors.New("id required"))
	case e.Timestamp.IsZero():
		return errors.Join(errInvalidRecord, errors.New("timestamp required"))
	case strings.TrimSpace(e.Actor) == "" || strings.TrimSpace(e.Target) == "":
		return errors.Join(errInvalidRecord, errors.New("actor and target required"))
	case !e.Action.Valid():
		return errors.Join(errInvalidRecord, fmt.Errorf("unknown action %q", e.Action))
	}
	return nil
}

// Newer define el orden de lectura: timestamp desc, id desc para empates.
func Newer(a, b Entry) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.After(b.Timestamp)
	}
	return a.ID > b.ID
}
