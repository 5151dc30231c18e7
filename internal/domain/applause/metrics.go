package applause

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type ledgerMetrics struct {
	grants        prometheus.Counter
	revokes       prometheus.Counter
	revokeNoops   prometheus.Counter
	celebrations  prometheus.Counter
	treatsAcked   prometheus.Counter
	storageErrors *prometheus.CounterVec
}

// newLedgerMetrics registra en reg; con reg nil los counters quedan sueltos
// (sirve para tests que no miran métricas).
func newLedgerMetrics(reg prometheus.Registerer) *ledgerMetrics {
	f := promauto.With(reg)
	return &ledgerMetrics{
		grants: f.NewCounter(prometheus.CounterOpts{
			Name: "applause_grants_total",
			Help: "number of applause granted",
		}),
		revokes: f.NewCounter(prometheus.CounterOpts{
			Name: "applause_revokes_total",
			Help: "number of applause revoked",
		}),
		revokeNoops: f.NewCounter(prometheus.CounterOpts{
			Name: "applause_revoke_noops_total",
			Help: "number of revokes ignored because the counter was already zero",
		}),
		celebrations: f.NewCounter(prometheus.CounterOpts{
			Name: "applause_celebrations_total",
			Help: "number of threshold crossings (treat owed)",
		}),
		treatsAcked: f.NewCounter(prometheus.CounterOpts{
			Name: "applause_treats_acknowledged_total",
			Help: "number of treat acknowledgements",
		}),
		storageErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "applause_storage_errors_total",
			Help: "number of ledger operations failed by the store",
		}, []string{"operation"}),
	}
}
