package event

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sina-mohseni/nftvault/internal/domain/event"
	coreport "github.com/sina-mohseni/nftvault/internal/domain/port/core"
)

// LogEmitter implements the EventSink port by writing each notification to
// the structured log and counting it in prometheus. Emission never affects
// the outcome of the operation that produced the event.
type LogEmitter struct {
	logger  coreport.Logger
	emitted *prometheus.CounterVec
}

// NewLogEmitter creates an emitter registered against the given registry
func NewLogEmitter(logger coreport.Logger, registry prometheus.Registerer) *LogEmitter {
	emitted := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nftvault",
			Subsystem: "custody",
			Name:      "events_total",
			Help:      "Total number of custody notifications emitted.",
		},
		[]string{"event"},
	)
	registry.MustRegister(emitted)

	return &LogEmitter{
		logger:  logger,
		emitted: emitted,
	}
}

// Emit publishes a single notification event
func (e *LogEmitter) Emit(ctx context.Context, ev event.Event) {
	fields := ev.Fields()
	fields["event"] = ev.Name()
	e.logger.Info("Custody event", fields)
	e.emitted.WithLabelValues(ev.Name()).Inc()
}
