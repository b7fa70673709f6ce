package notifier

import "context"

// Sender delivers a text message to the end user identified by tenant. The
// engine reports every change and error event through this capability.
type Sender interface {
	Deliver(ctx context.Context, tenant string, text string) error
}

// SenderFunc adapts a plain function to the Sender interface.
type SenderFunc func(ctx context.Context, tenant string, text string) error

// Deliver calls the underlying function.
func (f SenderFunc) Deliver(ctx context.Context, tenant string, text string) error {
	return f(ctx, tenant, text)
}
