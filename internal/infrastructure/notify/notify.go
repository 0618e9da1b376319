package notify

import (
	"context"
	"log"
	"time"

	"treatment_planner/internal/usecase/interfaces"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Event is one user-facing notification.
type Event struct {
	Level     Level     `json:"level"`
	PlanCode  string    `json:"plan_code,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Message   string    `json:"message"`
	Detail    string    `json:"detail,omitempty"`
	At        time.Time `json:"at"`
}

type ctxKey int

const (
	planCodeKey ctxKey = iota
	requestIDKey
)

// WithPlanCode tags notifications raised under ctx with the plan they concern.
func WithPlanCode(ctx context.Context, planCode string) context.Context {
	return context.WithValue(ctx, planCodeKey, planCode)
}

// WithRequestID tags notifications raised under ctx with the originating request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// PlanCodeFrom returns the plan code ctx was tagged with.
func PlanCodeFrom(ctx context.Context) string {
	code, _ := ctx.Value(planCodeKey).(string)
	return code
}

func newEvent(ctx context.Context, level Level, message, detail string) Event {
	e := Event{Level: level, Message: message, Detail: detail, At: time.Now().UTC()}
	e.PlanCode = PlanCodeFrom(ctx)
	e.RequestID, _ = ctx.Value(requestIDKey).(string)
	return e
}

// LogNotifier writes notifications to the service log.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) Success(ctx context.Context, message, detail string) {
	logEvent(newEvent(ctx, LevelSuccess, message, detail))
}

func (LogNotifier) Warning(ctx context.Context, message, detail string) {
	logEvent(newEvent(ctx, LevelWarning, message, detail))
}

func (LogNotifier) Error(ctx context.Context, message, detail string) {
	logEvent(newEvent(ctx, LevelError, message, detail))
}

func logEvent(e Event) {
	log.Printf("[plan][notify] level=%s plan_code=%s request_id=%s message=%q detail=%q", e.Level, e.PlanCode, e.RequestID, e.Message, e.Detail)
}

// Fanout forwards every notification to all sinks.
type Fanout []interfaces.INotifier

var _ interfaces.INotifier = Fanout(nil)

func (f Fanout) Success(ctx context.Context, message, detail string) {
	for _, n := range f {
		n.Success(ctx, message, detail)
	}
}

func (f Fanout) Warning(ctx context.Context, message, detail string) {
	for _, n := range f {
		n.Warning(ctx, message, detail)
	}
}

func (f Fanout) Error(ctx context.Context, message, detail string) {
	for _, n := range f {
		n.Error(ctx, message, detail)
	}
}
