package email

import "go.uber.org/zap"

// LogSender is used when no mail transport is configured. It writes the
// message to the log so verification links stay reachable in development.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(input SendEmailInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	content := input.Text
	if content == "" {
		content = input.Body
	}

	s.logger.Info("email transport not configured, logging message instead",
		zap.String("to", input.To),
		zap.String("subject", input.Subject),
		zap.String("content", content),
	)

	return nil
}
