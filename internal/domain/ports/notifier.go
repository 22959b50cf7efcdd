package ports

import "context"

// Notifier publishes the daily digest, or a failure notice, to the chat
// channel. SendDigest is the program's only external write on the happy path.
type Notifier interface {
	SendDigest(ctx context.Context, message string) error
	SendError(ctx context.Context, runErr error) error
}
