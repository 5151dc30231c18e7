package webhook

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"applause-ledger/internal/platform/httpclient"
	"applause-ledger/internal/platform/logger"
	"applause-ledger/internal/ports/notify"
)

var (
	ErrNotConfigured = errors.New("webhook url not configured")
	ErrClosed        = errors.New("webhook dispatcher closed")
)

const (
	DefaultTimeout   = 5 * time.Second
	DefaultQueueSize = 64
)

// Config del dispatcher. URL suele venir de MAKE_WEBHOOK_URL.
type Config struct {
	URL       string
	Timeout   time.Duration
	QueueSize int
	Workers   int
}

func (c Config) IsConfigured() bool {
	u := strings.TrimSpace(c.URL)
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

// Dispatcher implementa notify.Sink: encola y un pool de workers hace el POST.
// Notify nunca bloquea; si la cola está llena el evento se descarta.
type Dispatcher struct {
	url     string
	client  *httpclient.Client
	timeout time.Duration
	log     logger.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan notify.Event
	wg     sync.WaitGroup

	sent    prometheus.Counter
	failed  prometheus.Counter
	dropped prometheus.Counter
}

// New arranca los workers. reg puede ser nil (tests).
func New(cfg Config, log logger.Logger, reg prometheus.Registerer) (*Dispatcher, error) {
	if !cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	results := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: "applause_notifications_total",
		Help: "number of outbound notifications by result",
	}, []string{"result"})

	d := &Dispatcher{
		url:     strings.TrimSpace(cfg.URL),
		client:  httpclient.New(cfg.Timeout),
		timeout: cfg.Timeout,
		log:     log.With(map[string]any{"component": "webhook"}),
		queue:   make(chan notify.Event, cfg.QueueSize),
		sent:    results.WithLabelValues("sent"),
		failed:  results.WithLabelValues("failed"),
		dropped: results.WithLabelValues("dropped"),
	}

	for i := 0; i < cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d, nil
}

// Notify encola el evento. El ctx del caller no se usa para el envío:
// el POST tiene su propio timeout y no depende del request.
func (d *Dispatcher) Notify(_ context.Context, e notify.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.dropped.Inc()
		d.log.Warn("notification dropped: dispatcher closed", map[string]any{"type": e.Type, "person_id": e.Person.ID})
		return
	}

	select {
	case d.queue <- e:
	default:
		d.dropped.Inc()
		d.log.Warn("notification dropped: queue full", map[string]any{"type": e.Type, "person_id": e.Person.ID})
	}
}

// Close deja de aceptar eventos, vacía la cola y espera a los workers.
// Si ctx vence antes, devuelve ctx.Err(); los envíos en curso terminan solos por timeout.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrClosed
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.client.HTTP.CloseIdleConnections()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for e := range d.queue {
		d.send(e)
	}
}

func (d *Dispatcher) send(e notify.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	fields := map[string]any{"type": e.Type, "person_id": e.Person.ID}

	if err := d.client.DoJSON(ctx, http.MethodPost, d.url, nil, toPayload(e), nil); err != nil {
		d.failed.Inc()
		fields["err"] = err
		fields["retryable"] = httpclient.IsRetryable(err)
		d.log.Warn("notification failed", fields)
		return
	}

	d.sent.Inc()
	d.log.Debug("notification sent", fields)
}
