//go:generate go run go.uber.org/mock/mockgen -source=email_service.go -destination=mocks/mock_email_service.go -package=mocks

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/osa911/portfolio/internal/api/sanitization"
	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/logging"
)

const sendGridMailEndpoint = "/v3/mail/send"

// ErrEmailNotConfigured is returned when no SendGrid API key is set
var ErrEmailNotConfigured = errors.New("SENDGRID_API_KEY not configured")

// ContactMailer delivers contact form submissions
type ContactMailer interface {
	SendContactEmail(ctx context.Context, name, email, message string) bool
}

// EmailSender submits a prepared message to the email provider
type EmailSender interface {
	Send(ctx context.Context, message *mail.SGMailV3) (*rest.Response, error)
}

// SendGridSender talks to the SendGrid v3 mail API
type SendGridSender struct {
	apiKey string
	host   string
	client *rest.Client
}

// NewSendGridSender creates a sender for the given API host. An empty host
// means the public SendGrid API.
func NewSendGridSender(apiKey, host string, timeout time.Duration) *SendGridSender {
	return &SendGridSender{
		apiKey: apiKey,
		host:   host,
		client: &rest.Client{
			HTTPClient: &http.Client{
				Timeout: timeout,
			},
		},
	}
}

// Send posts the message to /v3/mail/send
func (s *SendGridSender) Send(ctx context.Context, message *mail.SGMailV3) (*rest.Response, error) {
	request := sendgrid.GetRequest(s.apiKey, sendGridMailEndpoint, s.host)
	request.Method = rest.Post
	request.Body = mail.GetRequestBody(message)

	response, err := s.client.SendWithContext(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to send sendgrid request: %w", err)
	}
	return response, nil
}

// EmailService formats contact submissions and sends them through SendGrid
type EmailService struct {
	cfg    config.EmailConfig
	sender EmailSender
}

// NewEmailService creates an email service backed by SendGrid
func NewEmailService(cfg config.EmailConfig) *EmailService {
	return NewEmailServiceWithSender(cfg, NewSendGridSender(cfg.SendGridAPIKey, cfg.SendGridAPIHost, cfg.Timeout))
}

// NewEmailServiceWithSender creates an email service with a custom sender
func NewEmailServiceWithSender(cfg config.EmailConfig, sender EmailSender) *EmailService {
	return &EmailService{
		cfg:    cfg,
		sender: sender,
	}
}

// Configured reports whether an API key is available
func (s *EmailService) Configured() bool {
	return s.cfg.SendGridAPIKey != ""
}

// SendContactEmail sends the submission to the site owner. It never returns
// an error: every failure is logged and reported as false. There is no retry.
func (s *EmailService) SendContactEmail(ctx context.Context, name, email, message string) bool {
	logger := logging.GetGlobalLogger()

	if !s.Configured() {
		logger.Error("%v", ErrEmailNotConfigured)
		return false
	}

	msg := BuildContactMail(s.cfg.FromEmail, s.cfg.ToEmail, name, email, message)

	response, err := s.sender.Send(ctx, msg)
	if err != nil {
		logger.Error("Failed to send email: %v", err)
		return false
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		logger.Error("Failed to send email: sendgrid returned status %d: %s", response.StatusCode, response.Body)
		return false
	}

	logger.Info("Email sent successfully. Status code: %d", response.StatusCode)
	return true
}

// BuildContactMail builds the plain-text notification for one submission
func BuildContactMail(from, to, name, email, message string) *mail.SGMailV3 {
	subject := "Portfolio Contact: " + sanitization.SanitizeHeader(name)

	msg := mail.NewV3MailInit(
		mail.NewEmail("", from),
		subject,
		mail.NewEmail("", to),
		mail.NewContent("text/plain", FormatContactBody(name, email, message)),
	)
	msg.SetReplyTo(mail.NewEmail(sanitization.SanitizeHeader(name), sanitization.SanitizeEmail(email)))
	return msg
}

// FormatContactBody renders the plain-text body of the notification
func FormatContactBody(name, email, message string) string {
	return fmt.Sprintf("New contact form submission:\n\nName: %s\nEmail: %s\n\nMessage:\n%s\n", name, email, message)
}
