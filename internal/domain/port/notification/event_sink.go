package notification

import (
	"context"

	"github.com/sina-mohseni/nftvault/internal/domain/event"
)

// EventSink receives the notification emitted by each successful custody
// operation. Emission happens after the operation's effects are committed;
// sinks must not influence the outcome of the operation.
type EventSink interface {
	// Emit publishes a single notification event
	Emit(ctx context.Context, e event.Event)
}
