package metrics

import (
	"net/http"
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// Registry tracks request-level counters for the /healthz payload.
type Registry struct {
	Requests Counter
	Errors   Counter
	started  time.Time
}

func NewRegistry() *Registry {
	return &Registry{started: time.Now()}
}

// Snapshot is the serializable view of the registry.
type Snapshot struct {
	RequestsTotal uint64  `json:"requests_total"`
	ErrorsTotal   uint64  `json:"errors_total"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		RequestsTotal: r.Requests.Load(),
		ErrorsTotal:   r.Errors.Load(),
		UptimeSeconds: time.Since(r.started).Seconds(),
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Middleware counts every request and every 5xx response.
func (r *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.Requests.Inc()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)

		if rec.status >= http.StatusInternalServerError {
			r.Errors.Inc()
		}
	})
}
