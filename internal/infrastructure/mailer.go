package infrastructure

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/tunecraft/auth-service/internal/application/interfaces"
)

// NewNotifier picks the mail provider by name. Unknown providers fall back
// to a logging notifier so local development works without credentials.
func NewNotifier(provider, apiKey, sender string) interfaces.Notifier {
	switch provider {
	case "resend":
		return NewResendNotifier(apiKey, sender)
	case "sendgrid":
		return NewSendgridNotifier(apiKey, sender)
	default:
		log.Printf("Unknown mail provider %q, emails will only be logged", provider)
		return &logNotifier{}
	}
}

type ResendNotifier struct {
	client *resend.Client
	sender string
}

func NewResendNotifier(apiKey, sender string) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		sender: sender,
	}
}

func (n *ResendNotifier) Send(ctx context.Context, to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    n.sender,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return err
	}

	log.Printf("Email sent to %s. ID: %s", to, sent.Id)
	return nil
}

type SendgridNotifier struct {
	client *sendgrid.Client
	sender string
}

func NewSendgridNotifier(apiKey, sender string) *SendgridNotifier {
	return &SendgridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

func (n *SendgridNotifier) Send(ctx context.Context, to, subject, body string) error {
	from := sgmail.NewEmail("TuneCraft", n.sender)
	message := sgmail.NewSingleEmail(from, subject, sgmail.NewEmail("", to), body, body)

	response, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected the message with status %d", response.StatusCode)
	}

	log.Printf("Email sent to %s. Status Code: %d", to, response.StatusCode)
	return nil
}

type logNotifier struct{}

func (n *logNotifier) Send(ctx context.Context, to, subject, body string) error {
	log.Printf("Would send email to %s: %s", to, subject)
	return nil
}
