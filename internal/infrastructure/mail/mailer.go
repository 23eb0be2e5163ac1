package mail

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"aeobro.backend/pkg/logger"
)

// LogMailer writes outbound mail to the log instead of delivering it.
// Used in development and as the default until an SMTP relay is
// configured; the confirm URL in the log is clickable end to end.
type LogMailer struct {
	BaseURL string
}

// NewLogMailer creates a log-backed mailer
func NewLogMailer(baseURL string) *LogMailer {
	return &LogMailer{BaseURL: baseURL}
}

// SendDomainProof logs the domain proof confirmation link
func (m *LogMailer) SendDomainProof(ctx context.Context, to, domain, token string) error {
	confirmURL := fmt.Sprintf("%s/api/v1/verification/domain/email/confirm?token=%s", m.BaseURL, token)
	logger.Info(ctx, "domain proof email",
		zap.String("to", to),
		zap.String("domain", domain),
		zap.String("confirm_url", confirmURL),
	)
	return nil
}
