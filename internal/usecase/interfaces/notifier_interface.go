package interfaces

import "context"

// INotifier is the sink for user-facing success/failure notifications.
type INotifier interface {
	Success(ctx context.Context, message string, detail string)
	Warning(ctx context.Context, message string, detail string)
	Error(ctx context.Context, message string, detail string)
}
