package aggregates

import (
	"strings"
	"time"

	"github.com/sigc-piloto/sigc-backend/internal/observability"
)

// Hooks receives one ObserveOperation per aggregate write attempt, after the
// transaction has committed or rolled back. Status is "success" or the
// aggregate error code of the failure. IncConflict fires in addition for
// storage integrity violations.
type Hooks interface {
	ObserveOperation(name, status string, dur time.Duration)
	IncConflict(name string)
}

type noopHooks struct{}

func (noopHooks) ObserveOperation(string, string, time.Duration) {}
func (noopHooks) IncConflict(string)                             {}

type observabilityHooks struct {
	metrics *observability.Metrics
}

// NewObservabilityHooks reports aggregate writes as prometheus series keyed by
// operation name. A nil metrics set yields no-op hooks.
func NewObservabilityHooks(metrics *observability.Metrics) Hooks {
	if metrics == nil {
		return noopHooks{}
	}
	return &observabilityHooks{metrics: metrics}
}

func (h *observabilityHooks) ObserveOperation(name, status string, dur time.Duration) {
	if h == nil || h.metrics == nil {
		return
	}
	h.metrics.ObserveAggregateOperation(hookLabel(name), hookLabel(status), dur)
}

func (h *observabilityHooks) IncConflict(name string) {
	if h == nil || h.metrics == nil {
		return
	}
	h.metrics.IncAggregateConflict(hookLabel(name))
}

func hookLabel(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "unknown"
	}
	return v
}
