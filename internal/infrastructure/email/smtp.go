package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/shared/config"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
	"github.com/orris-inc/complaintdesk/internal/shared/services/markdown"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

func SMTPConfigFrom(cfg *config.EmailConfig) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	}
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPEmailService delivers notification email. Bodies are written in
// markdown and sent as sanitized HTML with a tag-free plain-text part.
type SMTPEmailService struct {
	config   SMTPConfig
	dialer   sender
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewSMTPEmailService(config SMTPConfig, md markdown.MarkdownService, log logger.Interface) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config:   config,
		dialer:   dialer,
		markdown: md,
		logger:   log,
	}
}

func (s *SMTPEmailService) SendNotification(ctx context.Context, to *user.User, subject, markdownBody string) error {
	if to == nil || to.Email() == "" {
		return fmt.Errorf("recipient email is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	htmlBody, err := s.markdown.ToHTMLSanitized(markdownBody)
	if err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}

	if err := s.sendEmail(to.Email(), to.Name(), subject, htmlBody, s.markdown.StripTags(markdownBody)); err != nil {
		s.logger.Warnw("failed to send notification email",
			"user_id", to.ID(),
			"subject", subject,
			"error", err)
		return err
	}

	s.logger.Debugw("notification email sent", "user_id", to.ID(), "subject", subject)
	return nil
}

func (s *SMTPEmailService) sendEmail(to, toName, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	if toName != "" {
		m.SetAddressHeader("To", to, toName)
	} else {
		m.SetHeader("To", to)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
