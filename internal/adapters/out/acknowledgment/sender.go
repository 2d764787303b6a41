package acknowledgment

import (
	"context"
	"log/slog"

	"ordertaking/internal/core/domain/model/order"
)

// LogSender delivers acknowledgments to the log. It stands in for a mail
// gateway and reports NotSent only when the context is already done.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger.With("component", "acknowledgment_sender")}
}

func (s *LogSender) SendAcknowledgment(ctx context.Context, acknowledgment order.OrderAcknowledgment) order.SendResult {
	if err := ctx.Err(); err != nil {
		s.logger.WarnContext(ctx, "acknowledgment not sent",
			"email", acknowledgment.EmailAddress.String(),
			"error", err,
		)
		return order.NotSent
	}

	s.logger.InfoContext(ctx, "acknowledgment sent",
		"email", acknowledgment.EmailAddress.String(),
		"letter_bytes", len(acknowledgment.Letter),
	)
	return order.Sent
}
