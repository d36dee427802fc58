package queue

import (
	"context"
	"log/slog"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/logging"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/usecase"
)

// LogNotifier is the fallback channel when RabbitMQ is not configured:
// the notification is written to the log and considered sent.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: logging.New("notifier")}
}

func (n *LogNotifier) Send(_ context.Context, msg usecase.Notification) error {
	n.log.Info("notification (log only)", "to", msg.To, "body", msg.Body)
	return nil
}

var _ usecase.Notifier = (*LogNotifier)(nil)
