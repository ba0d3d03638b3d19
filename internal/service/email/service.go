package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"campus-helper/internal/config"
)

var ErrNotConfigured = errors.New("email delivery is not configured")

type Service interface {
	SendContactEmail(ctx context.Context, toEmail, sellerName, buyerName, itemTitle string, conversationID string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

var contactTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #1e3a5f;">
	<h2>{{.Title}}</h2>
	<p>Salut, {{.Name}}!</p>
	<p><strong>{{.Buyer}}</strong> vrea să afle mai multe despre anunțul tău „{{.Item}}”.</p>
	<p><a href="{{.Link}}">Deschide conversația</a></p>
</body>
</html>`))

func NewService(cfg *config.Config) Service {
	var client *resend.Client
	if cfg.ResendAPIKey != "" {
		client = resend.NewClient(cfg.ResendAPIKey)
	}
	return &service{
		client: client,
		config: cfg,
	}
}

func (s *service) sendEmail(ctx context.Context, toEmail, subject string, tmpl *template.Template, data interface{}) error {
	if s.client == nil {
		return ErrNotConfigured
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Campus Helper <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	return err
}

func (s *service) SendContactEmail(ctx context.Context, toEmail, sellerName, buyerName, itemTitle string, conversationID string) error {
	data := struct {
		Title string
		Name  string
		Buyer string
		Item  string
		Link  string
	}{
		Title: "Ai un mesaj nou pe Campus Helper",
		Name:  sellerName,
		Buyer: buyerName,
		Item:  itemTitle,
		Link:  fmt.Sprintf("https://%s/messages?id=%s", s.config.Domain, conversationID),
	}
	return s.sendEmail(ctx, toEmail, "Cineva este interesat de anunțul tău", contactTemplate, data)
}
