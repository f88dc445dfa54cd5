// Package notify adapts the Notifier port onto structured logging. The
// display surface (toast, console) is external; this adapter records every
// outcome so operators can trace the save policy's decisions.
package notify

import (
	"log/slog"

	"trailforge/internal/domain/service"
)

type slogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a Notifier backed by the application logger.
func NewSlogNotifier(logger *slog.Logger) service.Notifier {
	return &slogNotifier{logger: logger}
}

// Notify records the outcome at a level matching its severity.
func (n *slogNotifier) Notify(title, description string, severity service.Severity) {
	attrs := []any{
		slog.String("title", title),
		slog.String("description", description),
	}

	if severity == service.SeverityError {
		n.logger.Error("Notification", attrs...)

		return
	}

	n.logger.Info("Notification", attrs...)
}
