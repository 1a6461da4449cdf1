package workflow

import (
	"context"
	"log/slog"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notice is a user-facing message about the outcome of an execution.
type Notice struct {
	Level   Level
	Message string

	Err error
}

type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}

type NotifierFunc func(ctx context.Context, notice Notice)

func (f NotifierFunc) Notify(ctx context.Context, notice Notice) {
	f(ctx, notice)
}

// LogNotifier writes notices to the default slog logger.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, notice Notice) {
	if notice.Level == LevelError {
		slog.ErrorContext(ctx, notice.Message, "error", notice.Err)
		return
	}

	slog.InfoContext(ctx, notice.Message)
}
