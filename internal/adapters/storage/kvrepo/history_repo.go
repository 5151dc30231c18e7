package kvrepo

import (
	"context"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"applause-ledger/internal/domain/history"
	"applause-ledger/internal/platform/kv"
	"applause-ledger/internal/platform/logger"
)

// HistoryRepo implementa history.Repository. List es un scan completo del
// prefijo history:, filtrado en memoria. Un registro que no decodifica se
// saltea (log + counter) en vez de tirar abajo el historial de todos.
type HistoryRepo struct {
	store   kv.Store
	log     logger.Logger
	corrupt prometheus.Counter
}

func NewHistoryRepo(store kv.Store) *HistoryRepo {
	return &HistoryRepo{
		store:   store,
		log:     logger.Nop(),
		corrupt: newCorruptCounter(nil),
	}
}

// WithObservability registra el counter en reg (si no es nil) y loguea en log.
func (r *HistoryRepo) WithObservability(log logger.Logger, reg prometheus.Registerer) *HistoryRepo {
	if log != nil {
		r.log = log.With(map[string]any{"component": "history_repo"})
	}
	r.corrupt = newCorruptCounter(reg)
	return r
}

func newCorruptCounter(reg prometheus.Registerer) prometheus.Counter {
	return promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "applause_history_corrupt_records_total",
		Help: "number of history records skipped because they could not be decoded",
	})
}

func (r *HistoryRepo) Append(ctx context.Context, e history.Entry) error {
	value, err := encodeEntry(e)
	if err != nil {
		return err
	}
	return r.store.Commit(ctx, []kv.Op{{Key: historyKey(e.ID), Value: value, CreateOnly: true}})
}

func (r *HistoryRepo) List(ctx context.Context, filter history.ListFilter) ([]history.Entry, error) {
	pairs, err := r.store.ScanPrefix(ctx, historyPrefix)
	if err != nil {
		return nil, err
	}

	actor := strings.TrimSpace(filter.Actor)
	out := make([]history.Entry, 0)
	for _, p := range pairs {
		e, err := decodeEntry(p.Key, p.Value)
		if err != nil {
			r.corrupt.Inc()
			r.log.Warn("skipping corrupt history record", map[string]any{"key": p.Key, "err": err})
			continue
		}
		if filter.Target != "" && e.Target != filter.Target {
			continue
		}
		if actor != "" && !strings.EqualFold(strings.TrimSpace(e.Actor), actor) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool { return history.Newer(out[i], out[j]) })

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
