// Package ui holds the client-side state containers behind the employee
// form and the list/edit table. Each component is a finite state holder
// with pure transition methods, so the behavior is testable without any
// rendering layer.
package ui

import "github.com/sirupsen/logrus"

// Level classifies a transient user-facing notification
type Level int

const (
	Info Level = iota
	Success
	Error
)

// Notifier receives transient user-facing notifications (the toast
// analog). Implementations must not block.
type Notifier interface {
	Notify(level Level, message string)
}

// LogNotifier routes notifications to a logger. The console front-end
// uses it in place of browser toasts.
type LogNotifier struct {
	logger *logrus.Logger
}

// NewLogNotifier creates a logger-backed notifier
func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier
func (n *LogNotifier) Notify(level Level, message string) {
	switch level {
	case Error:
		n.logger.Error(message)
	case Success:
		n.logger.Info(message)
	default:
		n.logger.Info(message)
	}
}
