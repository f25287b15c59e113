package mail

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/config"
)

// Template identifiers understood by the mail relay.
const (
	TemplateVerification = "user-verification"
)

// Mailer delivers templated emails through an HTTP mail relay. When no relay
// URL is configured the message is logged and dropped, which keeps local
// development working without an outbound mail path.
type Mailer struct {
	http   *resty.Client
	from   string
	relay  string
	logger *zap.Logger
}

// NewMailer builds a mailer from configuration.
func NewMailer(cfg config.MailConfig, logger *zap.Logger) *Mailer {
	return &Mailer{
		http:   resty.New(),
		from:   cfg.EmailFrom,
		relay:  cfg.RelayURL,
		logger: logger,
	}
}

type relayMessage struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Template string `json:"template"`
	Payload  string `json:"payload"`
}

// Send posts the message to the relay.
func (m *Mailer) Send(ctx context.Context, to, template, payload string) error {
	if m.relay == "" {
		m.logger.Info("mail relay not configured; dropping message",
			zap.String("to", to),
			zap.String("template", template))
		return nil
	}

	resp, err := m.http.R().
		SetContext(ctx).
		SetBody(relayMessage{From: m.from, To: to, Template: template, Payload: payload}).
		Post(m.relay)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("mail relay returned status %d", resp.StatusCode())
	}

	m.logger.Debug("mail sent",
		zap.String("to", to),
		zap.String("template", template))
	return nil
}
