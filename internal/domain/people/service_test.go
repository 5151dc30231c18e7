package people

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"applause-ledger/internal/platform/keylock"
)

type testRepo struct {
	byID map[string]Person
	err  error
}

func newTestRepo(items ...Person) *testRepo {
	r := &testRepo{byID: map[string]Person{}}
	for _, p := range items {
		r.byID[p.ID] = p
	}
	return r
}

func (r *testRepo) Get(_ context.Context, id string) (Person, error) {
	if r.err != nil {
		return Person{}, r.err
	}
	p, ok := r.byID[id]
	if !ok {
		return Person{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(_ context.Context) ([]Person, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]Person, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) Put(_ context.Context, p Person) error {
	if r.err != nil {
		return r.err
	}
	r.byID[p.ID] = p
	return nil
}

func TestService_List_SortsByApplauseThenName(t *testing.T) {
	svc := NewService(newTestRepo(
		Person{ID: "1", Name: "María", ApplauseCount: 8},
		Person{ID: "2", Name: "Carlos", ApplauseCount: 12},
		Person{ID: "3", Name: "Ana", ApplauseCount: 8},
	))

	items, err := svc.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"2", "3", "1"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestService_List_PendingOnly(t *testing.T) {
	svc := NewService(newTestRepo(
		Person{ID: "1", Name: "María"},
		Person{ID: "5", Name: "Sofia", PendingFood: true},
	))

	items, err := svc.List(context.Background(), ListFilter{PendingOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "5", items[0].ID)
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(newTestRepo(Person{ID: "1", Name: "María"}))

	_, err := svc.GetByID(context.Background(), "  ")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByID(context.Background(), "9")
	require.ErrorIs(t, err, ErrNotFound)

	p, err := svc.GetByID(context.Background(), " 1 ")
	require.NoError(t, err)
	assert.Equal(t, "María", p.Name)
}

func TestService_Upsert_Validates(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Upsert(context.Background(), Person{ID: "1"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Upsert(context.Background(), Person{ID: "1", Name: "Ana", ApplauseCount: -1})
	require.ErrorIs(t, err, ErrInvalidInput)

	p, err := svc.Upsert(context.Background(), Person{ID: " 3 ", Name: " Ana Martínez "})
	require.NoError(t, err)
	assert.Equal(t, "3", p.ID)
	assert.Equal(t, "Ana Martínez", repo.byID["3"].Name)
}

func TestService_PropagatesRepoErrors(t *testing.T) {
	boom := errors.New("store down")
	repo := newTestRepo()
	repo.err = boom
	svc := NewService(repo)

	_, err := svc.List(context.Background(), ListFilter{})
	require.ErrorIs(t, err, boom)
}

func TestService_Upsert_WaitsForPersonLock(t *testing.T) {
	repo := newTestRepo(Person{ID: "1", Name: "Ana", ApplauseCount: 7})
	locks := keylock.New()
	svc := NewService(repo).WithLocks(locks)

	unlock, err := locks.Lock(context.Background(), "1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = svc.Upsert(ctx, Person{ID: "1", Name: "Ana"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 7, repo.byID["1"].ApplauseCount)

	unlock()
	_, err = svc.Upsert(context.Background(), Person{ID: "1", Name: "Ana", ApplauseCount: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.byID["1"].ApplauseCount)
	assert.Equal(t, 0, locks.Len())
}
