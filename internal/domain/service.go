// Package domain defines the business logic for the activities service.
package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"example.com/activities/internal/observability"
)

var (
	// ErrActivityNotFound is returned when an activity is absent from the catalog.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyEnrolled is returned when the student is already on the roster.
	ErrAlreadyEnrolled = errors.New("student already signed up")
	// ErrCapacityExceeded is returned when the roster is at max capacity.
	ErrCapacityExceeded = errors.New("activity full")
	// ErrNotEnrolled is returned when the student is not on the roster.
	ErrNotEnrolled = errors.New("student not signed up")
)

// NotificationEvent identifies the enrollment change behind a notification.
type NotificationEvent string

const (
	EventConfirmation NotificationEvent = "confirmation"
	EventCancellation NotificationEvent = "cancellation"
)

// Notification carries everything a notifier needs to compose a message.
type Notification struct {
	ID           string
	Event        NotificationEvent
	StudentEmail string
	ActivityName string
	Schedule     string
}

// Notifier delivers enrollment notifications on a best-effort basis.
// Implementations own their failures: delivery problems are logged and
// swallowed, never surfaced to the enrollment caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NoopNotifier discards notifications.
type NoopNotifier struct{}

// Notify performs no action.
func (NoopNotifier) Notify(context.Context, Notification) {}

// Catalog captures the activity store operations the service needs.
// Mutators return the updated activity snapshot so callers can report the
// new participant count without a second lookup.
type Catalog interface {
	All(ctx context.Context) (map[string]Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (*Activity, error)
}

// Service orchestrates enrollment workflows over the catalog.
type Service struct {
	catalog  Catalog
	notifier Notifier
}

// NewService constructs a Service. A nil notifier disables notifications.
func NewService(catalog Catalog, notifier Notifier) *Service {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &Service{catalog: catalog, notifier: notifier}
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.catalog.All(ctx)
}

// Signup enrolls a student in an activity and returns the updated participant
// count. The confirmation notification is triggered only after the roster
// mutation has committed; it can neither fail nor roll back the signup.
func (s *Service) Signup(ctx context.Context, activityName, email string) (int, error) {
	updated, err := s.catalog.AddParticipant(ctx, activityName, email)
	if err != nil {
		return 0, err
	}

	observability.RecordSignup(updated.Name, len(updated.Participants))
	s.notifier.Notify(ctx, Notification{
		ID:           uuid.NewString(),
		Event:        EventConfirmation,
		StudentEmail: email,
		ActivityName: updated.Name,
		Schedule:     updated.Schedule,
	})
	return len(updated.Participants), nil
}

// Unregister removes a student from an activity and returns the updated
// participant count. The cancellation notification follows the committed
// mutation, same as Signup.
func (s *Service) Unregister(ctx context.Context, activityName, email string) (int, error) {
	updated, err := s.catalog.RemoveParticipant(ctx, activityName, email)
	if err != nil {
		return 0, err
	}

	observability.RecordUnregistration(updated.Name, len(updated.Participants))
	s.notifier.Notify(ctx, Notification{
		ID:           uuid.NewString(),
		Event:        EventCancellation,
		StudentEmail: email,
		ActivityName: updated.Name,
		Schedule:     updated.Schedule,
	})
	return len(updated.Participants), nil
}
