// Package notify provides Notifier implementations for hosts that have no
// toast surface of their own.
package notify

import "log/slog"

// Log forwards store notifications to a structured logger.
type Log struct {
	Logger *slog.Logger
}

func (l Log) Notify(message string) {
	l.Logger.Info("notification", "message", message)
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(string) {}
