package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"applause-ledger/internal/domain/people"
	"applause-ledger/internal/platform/kv"
)

// PeopleRepo implementa people.Repository.
type PeopleRepo struct {
	store kv.Store
	// indexMu serializa el read-modify-write de personIds.
	indexMu sync.Mutex
}

func NewPeopleRepo(store kv.Store) *PeopleRepo {
	return &PeopleRepo{store: store}
}

func (r *PeopleRepo) Get(ctx context.Context, id string) (people.Person, error) {
	key := personKey(id)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return people.Person{}, people.ErrNotFound
		}
		return people.Person{}, err
	}
	return decodePerson(key, raw)
}

// List sigue el índice personIds. Ids sin registro se ignoran.
func (r *PeopleRepo) List(ctx context.Context) ([]people.Person, error) {
	ids, err := r.ids(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []people.Person{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = personKey(id)
	}
	values, err := r.store.MGet(ctx, keys)
	if err != nil {
		return nil, err
	}

	out := make([]people.Person, 0, len(values))
	for i, raw := range values {
		if raw == nil {
			continue
		}
		p, err := decodePerson(keys[i], raw)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Put escribe la persona completa y, si es nueva, la agrega a personIds
// en el mismo commit.
func (r *PeopleRepo) Put(ctx context.Context, p people.Person) error {
	value, err := encodePerson(p)
	if err != nil {
		return err
	}

	r.indexMu.Lock()
	defer r.indexMu.Unlock()

	ids, err := r.ids(ctx)
	if err != nil {
		return err
	}

	ops := []kv.Op{{Key: personKey(p.ID), Value: value}}
	if !contains(ids, p.ID) {
		idx, err := json.Marshal(append(ids, p.ID))
		if err != nil {
			return err
		}
		ops = append(ops, kv.Op{Key: personIndexKey, Value: idx})
	}
	return r.store.Commit(ctx, ops)
}

func (r *PeopleRepo) ids(ctx context.Context) ([]string, error) {
	raw, err := r.store.Get(ctx, personIndexKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, personIndexKey, err)
	}
	return ids, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
