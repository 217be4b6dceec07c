package notify

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/activities/internal/domain"
)

func TestSettingsIsConfigured(t *testing.T) {
	cases := []struct {
		name     string
		settings Settings
		want     bool
	}{
		{"complete", Settings{Host: "smtp.mergington.edu", Port: 587, FromEmail: "activities@mergington.edu"}, true},
		{"missing host", Settings{Port: 587, FromEmail: "activities@mergington.edu"}, false},
		{"missing port", Settings{Host: "smtp.mergington.edu", FromEmail: "activities@mergington.edu"}, false},
		{"missing from", Settings{Host: "smtp.mergington.edu", Port: 587}, false},
		{"empty", Settings{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.settings.IsConfigured())
		})
	}
}

func TestSendReturnsErrNotConfigured(t *testing.T) {
	mailer := NewMailer(Settings{})

	err := mailer.Send(context.Background(), domain.Notification{
		Event:        domain.EventConfirmation,
		StudentEmail: "kai@mergington.edu",
		ActivityName: "Chess Club",
	})
	require.ErrorIs(t, err, ErrNotConfigured)
}

// Dialing a port nothing listens on exercises the failure path without a
// mail server.
func TestSendReportsDialFailure(t *testing.T) {
	mailer := NewMailer(Settings{
		Host:      "127.0.0.1",
		Port:      closedPort(t),
		UseTLS:    false,
		FromEmail: "activities@mergington.edu",
		FromName:  "Mergington High School Activities",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := mailer.Send(ctx, domain.Notification{
		Event:        domain.EventConfirmation,
		StudentEmail: "kai@mergington.edu",
		ActivityName: "Chess Club",
		Schedule:     "Fridays, 3:30 PM - 5:00 PM",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotConfigured)
}

func TestSubjectTemplates(t *testing.T) {
	confirmation := domain.Notification{Event: domain.EventConfirmation, ActivityName: "Chess Club"}
	require.Equal(t, "Successfully Registered for Chess Club", subjectFor(confirmation))

	cancellation := domain.Notification{Event: domain.EventCancellation, ActivityName: "Chess Club"}
	require.Equal(t, "Activity Registration Cancelled - Chess Club", subjectFor(cancellation))
}

func TestConfirmationBodyTemplate(t *testing.T) {
	body := bodyFor(domain.Notification{
		Event:        domain.EventConfirmation,
		StudentEmail: "kai@mergington.edu",
		ActivityName: "Chess Club",
		Schedule:     "Fridays, 3:30 PM - 5:00 PM",
	})

	require.True(t, strings.HasPrefix(body, "Registration Confirmation\n"))
	require.Contains(t, body, "Student: kai@mergington.edu")
	require.Contains(t, body, "Activity: Chess Club")
	require.Contains(t, body, "Schedule: Fridays, 3:30 PM - 5:00 PM")
	require.Contains(t, body, "Location: On campus")
}

func TestCancellationBodyTemplate(t *testing.T) {
	body := bodyFor(domain.Notification{
		Event:        domain.EventCancellation,
		StudentEmail: "kai@mergington.edu",
		ActivityName: "Chess Club",
		Schedule:     "Fridays, 3:30 PM - 5:00 PM",
	})

	require.True(t, strings.HasPrefix(body, "Cancellation Confirmation\n"))
	require.Contains(t, body, "Student: kai@mergington.edu")
	require.Contains(t, body, "Your registration has been cancelled.")
	require.NotContains(t, body, "Location:")
}

func TestBodyScheduleFallsBackToTBD(t *testing.T) {
	body := bodyFor(domain.Notification{
		Event:        domain.EventConfirmation,
		StudentEmail: "kai@mergington.edu",
		ActivityName: "Chess Club",
	})
	require.Contains(t, body, "Schedule: TBD")
}

// closedPort returns a loopback port with no listener behind it.
func closedPort(t *testing.T) int {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return port
}
