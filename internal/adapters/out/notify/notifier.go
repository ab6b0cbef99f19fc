// Package notify provides the user-facing message sink. The current
// implementation writes messages to the application log; swapping in a real
// push channel only touches this package.
package notify

import (
	"context"

	"github.com/labstack/gommon/log"
)

// LogNotifier writes user messages to the application log. Delivery is
// fire-and-forget; it never fails the calling operation.
type LogNotifier struct {
	logger *log.Logger
}

// NewLogNotifier creates a notifier writing to the given logger.
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the message with the target user attached.
func (n *LogNotifier) Notify(_ context.Context, userID string, message string) {
	n.logger.Infoj(log.JSON{"user": userID, "message": message})
}
