package notify

import "context"

// Notifier is a fire-and-forget sink for human-readable status messages.
// Implementations must never propagate their own failures to callers;
// a failed delivery is logged and reported through the boolean return.
type Notifier interface {
	// SendSuccess reports a completed action with optional details
	SendSuccess(ctx context.Context, action, details string) bool

	// SendError reports a failure with optional context
	SendError(ctx context.Context, message, errContext string) bool
}

// NoopNotifier discards all messages. Used when no sink is configured.
type NoopNotifier struct{}

// NewNoopNotifier creates a notifier that silently accepts everything.
func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

// SendSuccess discards the message
func (n *NoopNotifier) SendSuccess(ctx context.Context, action, details string) bool {
	return true
}

// SendError discards the message
func (n *NoopNotifier) SendError(ctx context.Context, message, errContext string) bool {
	return true
}
