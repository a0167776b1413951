package healthcheck

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/zetamarkets/pyth-history/pkg/logger"
)

const defaultTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck is the health check handler.
type HealthCheck struct {
	pingers map[string]Pinger
	logger  logger.Interface
	timeout time.Duration
}

// New creates a HealthCheck that pings every named dependency on each request.
func New(logger logger.Interface, pingers map[string]Pinger) HealthCheck {
	return HealthCheck{
		pingers: pingers,
		logger:  logger,
		timeout: defaultTimeout,
	}
}

// Handler is used to control the flow of GET /health endpoint
func (hc HealthCheck) Handler(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if IsHealthCheckRequest(r) {
			hc.ServeHTTP(w, r)

			return
		}

		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// ServeHTTP serve http request for health check
func (hc HealthCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), hc.timeout)
	defer cancel()

	for name, pinger := range hc.pingers {
		if err := pinger.Ping(ctx); err != nil {
			hc.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "health_check",
			}, logger.Field{
				Key:   "dependency",
				Value: name,
			})
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, "%s unavailable\n", name)

			return
		}
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// IsHealthCheckRequest is used to check if the request is a health check request
func IsHealthCheckRequest(r *http.Request) bool {
	return r.Method == http.MethodGet && r.URL.Path == "/health"
}
