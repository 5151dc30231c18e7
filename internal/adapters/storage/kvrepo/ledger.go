package kvrepo

import (
	"context"

	"applause-ledger/internal/domain/history"
	"applause-ledger/internal/domain/people"
	"applause-ledger/internal/platform/kv"
)

// Ledger implementa applause.Committer: persona + historial en un solo Commit.
// La persona ya está en personIds (el ledger solo toca personas existentes).
type Ledger struct {
	store kv.Store
}

func NewLedger(store kv.Store) *Ledger {
	return &Ledger{store: store}
}

func (l *Ledger) Commit(ctx context.Context, p people.Person, entry *history.Entry) error {
	value, err := encodePerson(p)
	if err != nil {
		return err
	}
	ops := []kv.Op{{Key: personKey(p.ID), Value: value}}

	if entry != nil {
		hv, err := encodeEntry(*entry)
		if err != nil {
			return err
		}
		ops = append(ops, kv.Op{Key: historyKey(entry.ID), Value: hv, CreateOnly: true})
	}
	return l.store.Commit(ctx, ops)
}
