package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "applause-ledger/docs"
	"applause-ledger/internal/adapters/storage/kvrepo"
	"applause-ledger/internal/domain/applause"
	"applause-ledger/internal/domain/history"
	"applause-ledger/internal/domain/legacy"
	"applause-ledger/internal/domain/people"
	"applause-ledger/internal/middleware"
	"applause-ledger/internal/platform/keylock"
	"applause-ledger/internal/platform/kv"
	"applause-ledger/internal/platform/logger"
	"applause-ledger/internal/platform/metrics"
	"applause-ledger/internal/ports/notify"
)

type Options struct {
	// Store es obligatorio: memory, badger o postgres (lo elige cmd/api).
	Store kv.Store

	Logger logger.Logger

	// Registry opcional; si es nil se crea uno nuevo (tests).
	Registry *prometheus.Registry

	// Sink opcional; nil = no notifica.
	Sink notify.Sink

	StoreTimeout time.Duration
	HistoryLimit int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	sink := opts.Sink
	if sink == nil {
		sink = notify.Nop{}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.ActorContext)
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler(reg))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Repos sobre el mismo store
	peopleRepo := kvrepo.NewPeopleRepo(opts.Store)
	historyRepo := kvrepo.NewHistoryRepo(opts.Store).WithObservability(log, reg)
	ledger := kvrepo.NewLedger(opts.Store)

	// Mismo lock por persona para el ledger y para Upsert
	locks := keylock.New()

	// Services por módulo
	peopleSvc := people.NewService(peopleRepo).WithLocks(locks)
	historySvc := history.NewService(historyRepo).WithDefaultLimit(opts.HistoryLimit)
	applauseSvc := applause.NewService(peopleRepo, ledger, sink, applause.Options{
		StoreTimeout: opts.StoreTimeout,
		Logger:       log,
		Registerer:   reg,
		Locks:        locks,
	})

	// Rutas por módulo
	people.RegisterRoutes(r, peopleSvc)
	history.RegisterRoutes(r, historySvc, peopleSvc)
	applause.RegisterRoutes(r, applauseSvc)
	legacy.RegisterRoutes(r, legacy.Services{People: peopleSvc, History: historySvc, Ledger: applauseSvc})

	return r
}
