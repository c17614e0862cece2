package utils

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Mailer sends the account emails. Welcome returns immediately; delivery
// happens in the background and failures are only logged.
type Mailer interface {
	Welcome(ctx context.Context, email, name string)
}

// NoopMailer is used when no SendGrid key is configured.
type NoopMailer struct{}

func (NoopMailer) Welcome(context.Context, string, string) {}

// sendFunc matches (*sendgrid.Client).Send.
type sendFunc func(*mail.SGMailV3) (statusCode int, body string, err error)

type SendGridMailer struct {
	send   sendFunc
	from   *mail.Email
	log    *zap.Logger
	onDone func(error)
}

func NewSendGridMailer(apiKey, sender string, log *zap.Logger) *SendGridMailer {
	client := sendgrid.NewSendClient(apiKey)
	return &SendGridMailer{
		send: func(m *mail.SGMailV3) (int, string, error) {
			resp, err := client.Send(m)
			if err != nil {
				return 0, "", err
			}
			return resp.StatusCode, resp.Body, nil
		},
		from: mail.NewEmail("Educare", sender),
		log:  log,
	}
}

// NewMailer picks SendGrid when an API key is set.
func NewMailer(apiKey, sender string, log *zap.Logger) Mailer {
	if apiKey == "" {
		log.Warn("SENDGRID_API_KEY not set, welcome emails are disabled")
		return NoopMailer{}
	}
	return NewSendGridMailer(apiKey, sender, log)
}

// Send delivers one HTML email synchronously.
func (m *SendGridMailer) Send(to, name, subject, htmlBody string) error {
	msg := mail.NewSingleEmail(m.from, subject, mail.NewEmail(name, to), "", htmlBody)
	status, body, err := m.send(msg)
	if err != nil {
		return err
	}
	if status >= 300 {
		return fmt.Errorf("sendgrid returned %d: %s", status, body)
	}
	return nil
}

func (m *SendGridMailer) Welcome(_ context.Context, email, name string) {
	subject := "Welcome to Educare"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to <strong>Educare</strong>! Your account is ready.</p>
		<p>Pick an avatar, then start with the alphabet, numbers or a quick quiz to earn your first points.</p>
	`, name)

	go func() {
		err := m.Send(email, name, subject, getEmailTemplate("Welcome!", body))
		if err != nil {
			m.log.Error("welcome email failed", zap.String("email", email), zap.Error(err))
		} else {
			m.log.Info("welcome email sent", zap.String("email", email))
		}
		if m.onDone != nil {
			m.onDone(err)
		}
	}()
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #FFF8E7; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 16px; overflow: hidden; }
			.header { background-color: #7C3AED; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #1F2937; line-height: 1.6; }
			.footer { padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>EDUCARE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				Learning is fun!
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}
