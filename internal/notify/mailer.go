// Package notify delivers best-effort enrollment emails over SMTP. Delivery
// runs on a background worker so enrollment requests never wait on a mail
// exchange, and a send failure never surfaces to the student.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"example.com/activities/internal/domain"
)

// ErrNotConfigured reports that SMTP settings are incomplete and the message
// was skipped rather than attempted.
var ErrNotConfigured = errors.New("smtp settings not configured")

// Settings holds the mail submission configuration.
type Settings struct {
	Host      string
	Port      int
	Username  string
	Password  string
	UseTLS    bool
	FromEmail string
	FromName  string
}

// IsConfigured reports whether enough settings are present to attempt a
// send. Host and sender address have no defaults, so a deployment without
// them runs with notifications disabled.
func (s Settings) IsConfigured() bool {
	return s.Host != "" && s.Port > 0 && s.FromEmail != ""
}

// Mailer composes and submits one email per notification. Each send dials a
// fresh connection; enrollment volume is far too low to justify pooling.
type Mailer struct {
	settings Settings
}

// NewMailer constructs a Mailer with the given settings.
func NewMailer(settings Settings) *Mailer {
	return &Mailer{settings: settings}
}

// Send submits the email for one notification. It returns ErrNotConfigured
// without dialing when settings are incomplete; any other error means the
// submission failed.
func (m *Mailer) Send(ctx context.Context, n domain.Notification) error {
	if !m.settings.IsConfigured() {
		return ErrNotConfigured
	}

	msg := mail.NewMsg()
	if m.settings.FromName != "" {
		if err := msg.FromFormat(m.settings.FromName, m.settings.FromEmail); err != nil {
			return fmt.Errorf("set sender: %w", err)
		}
	} else if err := msg.From(m.settings.FromEmail); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(n.StudentEmail); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subjectFor(n))
	msg.SetBodyString(mail.TypeTextPlain, bodyFor(n))

	client, err := m.client()
	if err != nil {
		return fmt.Errorf("build smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func (m *Mailer) client() (*mail.Client, error) {
	opts := []mail.Option{mail.WithPort(m.settings.Port)}
	if m.settings.UseTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	if m.settings.Username != "" && m.settings.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.settings.Username),
			mail.WithPassword(m.settings.Password),
		)
	}
	return mail.NewClient(m.settings.Host, opts...)
}

func subjectFor(n domain.Notification) string {
	if n.Event == domain.EventCancellation {
		return fmt.Sprintf("Activity Registration Cancelled - %s", n.ActivityName)
	}
	return fmt.Sprintf("Successfully Registered for %s", n.ActivityName)
}

func bodyFor(n domain.Notification) string {
	schedule := n.Schedule
	if schedule == "" {
		schedule = "TBD"
	}
	if n.Event == domain.EventCancellation {
		return fmt.Sprintf(`Cancellation Confirmation
---------------------------
Student: %s
Activity: %s
Schedule: %s

Your registration has been cancelled. You can re-register anytime if spots are available.`,
			n.StudentEmail, n.ActivityName, schedule)
	}
	return fmt.Sprintf(`Registration Confirmation
---------------------------
Student: %s
Activity: %s
Schedule: %s
Location: On campus

You are successfully registered. If you need to cancel, use the unregister option on the site.`,
		n.StudentEmail, n.ActivityName, schedule)
}
