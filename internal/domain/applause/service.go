package applause

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"applause-ledger/internal/domain/history"
	"applause-ledger/internal/domain/people"
	"applause-ledger/internal/platform/keylock"
	"applause-ledger/internal/platform/logger"
	"applause-ledger/internal/ports/notify"
)

// Threshold: al llegar acá el contador vuelve a 0 y la persona debe comida.
const Threshold = 15

const DefaultStoreTimeout = 3 * time.Second

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("person not found")
	// ErrStorage es transitorio: el caller puede reintentar.
	ErrStorage = errors.New("storage error")
)

// PersonReader es lo único que el ledger lee de people.
type PersonReader interface {
	Get(ctx context.Context, id string) (people.Person, error)
}

// Committer escribe la persona y (si entry != nil) su entrada de historial
// en una sola escritura atómica. Nunca una sin la otra.
type Committer interface {
	Commit(ctx context.Context, p people.Person, entry *history.Entry) error
}

type Options struct {
	// StoreTimeout acota cada operación completa contra el store (lock incluido).
	StoreTimeout time.Duration
	Logger       logger.Logger
	// Registerer opcional para métricas; nil = no registra.
	Registerer prometheus.Registerer
	// Locks se comparte con people.Service para que Upsert no pise contadores.
	// nil = locks propios.
	Locks *keylock.Map
}

type Service struct {
	people PersonReader
	commit Committer
	sink   notify.Sink

	locks        *keylock.Map
	log          logger.Logger
	metrics      *ledgerMetrics
	storeTimeout time.Duration

	now      func() time.Time
	newNonce func() string
}

func NewService(reader PersonReader, committer Committer, sink notify.Sink, opts Options) *Service {
	if sink == nil {
		sink = notify.Nop{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	locks := opts.Locks
	if locks == nil {
		locks = keylock.New()
	}
	timeout := opts.StoreTimeout
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}

	return &Service{
		people:       reader,
		commit:       committer,
		sink:         sink,
		locks:        locks,
		log:          log.With(map[string]any{"component": "ledger"}),
		metrics:      newLedgerMetrics(opts.Registerer),
		storeTimeout: timeout,
		now:          time.Now,
		newNonce:     uuid.NewString,
	}
}

// Result es lo que devuelven Grant/Revoke.
// Entry es nil cuando no se escribió historial (revoke sobre 0).
type Result struct {
	Person      people.Person
	Celebration bool
	Entry       *history.Entry
}

// Grant suma un aplauso. Si llega al umbral: contador a 0, +1 comida,
// pendingFood=true y Celebration=true, todo en el mismo commit.
func (s *Service) Grant(ctx context.Context, personID, actor string) (Result, error) {
	personID, actor = strings.TrimSpace(personID), strings.TrimSpace(actor)
	if personID == "" || actor == "" {
		return Result{}, ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	unlock, err := s.locks.Lock(ctx, personID)
	if err != nil {
		return Result{}, s.storageErr("grant", personID, err)
	}
	defer unlock()

	p, err := s.load(ctx, "grant", personID)
	if err != nil {
		return Result{}, err
	}

	now := s.now()
	next, celebration := applyGrant(p, now)
	entry := s.newEntry(now, actor, next, history.ActionGrant)

	if err := s.commit.Commit(ctx, next, &entry); err != nil {
		return Result{}, s.storageErr("grant", personID, err)
	}

	s.metrics.grants.Inc()
	fields := map[string]any{"person_id": personID, "actor": actor, "applause_count": next.ApplauseCount}
	if celebration {
		s.metrics.celebrations.Inc()
		s.log.Info("celebration: treat owed", fields)
	} else {
		s.log.Debug("applause granted", fields)
	}

	s.sink.Notify(context.WithoutCancel(ctx), notify.Event{
		Type:        notify.EventApplause,
		Person:      snapshotPerson(next),
		Actor:       actor,
		Celebration: celebration,
		History:     snapshotEntry(entry),
		OccurredAt:  now,
	})

	return Result{Person: next, Celebration: celebration, Entry: &entry}, nil
}

// Revoke resta un aplauso. Sobre contador 0 es no-op: sin historial ni notificación.
func (s *Service) Revoke(ctx context.Context, personID, actor string) (Result, error) {
	personID, actor = strings.TrimSpace(personID), strings.TrimSpace(actor)
	if personID == "" || actor == "" {
		return Result{}, ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	unlock, err := s.locks.Lock(ctx, personID)
	if err != nil {
		return Result{}, s.storageErr("revoke", personID, err)
	}
	defer unlock()

	p, err := s.load(ctx, "revoke", personID)
	if err != nil {
		return Result{}, err
	}

	if p.ApplauseCount <= 0 {
		s.metrics.revokeNoops.Inc()
		s.log.Debug("revoke ignored: counter already zero", map[string]any{"person_id": personID, "actor": actor})
		return Result{Person: p}, nil
	}

	now := s.now()
	next := applyRevoke(p, now)
	entry := s.newEntry(now, actor, next, history.ActionRevoke)

	if err := s.commit.Commit(ctx, next, &entry); err != nil {
		return Result{}, s.storageErr("revoke", personID, err)
	}

	s.metrics.revokes.Inc()
	s.log.Debug("applause revoked", map[string]any{
		"person_id": personID, "actor": actor, "applause_count": next.ApplauseCount,
	})

	s.sink.Notify(context.WithoutCancel(ctx), notify.Event{
		Type:       notify.EventRemoveApplause,
		Person:     snapshotPerson(next),
		Actor:      actor,
		History:    snapshotEntry(entry),
		OccurredAt: now,
	})

	return Result{Person: next, Entry: &entry}, nil
}

// AcknowledgeTreat marca la comida como traída. Idempotente: si no había
// nada pendiente no escribe, pero igual confirma y notifica.
func (s *Service) AcknowledgeTreat(ctx context.Context, personID string) (people.Person, error) {
	personID = strings.TrimSpace(personID)
	if personID == "" {
		return people.Person{}, ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	unlock, err := s.locks.Lock(ctx, personID)
	if err != nil {
		return people.Person{}, s.storageErr("ack_treat", personID, err)
	}
	defer unlock()

	p, err := s.load(ctx, "ack_treat", personID)
	if err != nil {
		return people.Person{}, err
	}

	if p.PendingFood {
		p.PendingFood = false
		if err := s.commit.Commit(ctx, p, nil); err != nil {
			return people.Person{}, s.storageErr("ack_treat", personID, err)
		}
		s.metrics.treatsAcked.Inc()
		s.log.Info("treat acknowledged", map[string]any{"person_id": personID})
	}

	s.sink.Notify(context.WithoutCancel(ctx), notify.Event{
		Type:       notify.EventFoodBrought,
		Person:     snapshotPerson(p),
		OccurredAt: s.now(),
	})

	return p, nil
}

// applyGrant: >= y no == para que un registro corrupto por encima del
// umbral también haga rollover en vez de crecer sin límite.
func applyGrant(p people.Person, now time.Time) (people.Person, bool) {
	p.ApplauseCount++
	p.LastApplauseAt = &now
	if p.ApplauseCount >= Threshold {
		p.ApplauseCount = 0
		p.FoodBrought++
		p.PendingFood = true
		return p, true
	}
	return p, false
}

func applyRevoke(p people.Person, now time.Time) people.Person {
	p.ApplauseCount--
	p.LastApplauseAt = &now
	return p
}

func (s *Service) load(ctx context.Context, op, personID string) (people.Person, error) {
	p, err := s.people.Get(ctx, personID)
	if err != nil {
		if errors.Is(err, people.ErrNotFound) {
			return people.Person{}, fmt.Errorf("%w: %s", ErrNotFound, personID)
		}
		return people.Person{}, s.storageErr(op, personID, err)
	}
	return p, nil
}

func (s *Service) newEntry(now time.Time, actor string, p people.Person, action history.Action) history.Entry {
	return history.Entry{
		ID:         fmt.Sprintf("%013d-%s", now.UnixMilli(), s.newNonce()),
		Timestamp:  now,
		Actor:      actor,
		Target:     p.ID,
		TargetName: p.Name,
		Action:     action,
	}
}

func (s *Service) storageErr(op, personID string, err error) error {
	s.metrics.storageErrors.WithLabelValues(op).Inc()
	s.log.Warn("ledger storage failure", map[string]any{
		"operation": op,
		"person_id": personID,
		"err":       err,
	})
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

func snapshotPerson(p people.Person) notify.PersonSnapshot {
	return notify.PersonSnapshot{
		ID:             p.ID,
		Name:           p.Name,
		Position:       p.Position,
		PhotoURL:       p.PhotoURL,
		ApplauseCount:  p.ApplauseCount,
		FoodBrought:    p.FoodBrought,
		PendingFood:    p.PendingFood,
		LastApplauseAt: p.LastApplauseAt,
	}
}

func snapshotEntry(e history.Entry) *notify.HistorySnapshot {
	return &notify.HistorySnapshot{
		ID:         e.ID,
		Timestamp:  e.Timestamp,
		Actor:      e.Actor,
		Target:     e.Target,
		TargetName: e.TargetName,
		Action:     string(e.Action),
	}
}
