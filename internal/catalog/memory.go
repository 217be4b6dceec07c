// Package catalog holds the in-memory activity store. All state lives in
// process memory and is reseeded from the fixed default roster on restart.
package catalog

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
)

// InMemoryCatalog stores activities in memory behind a mutex. The write lock
// spans every check-then-mutate sequence, which is what preserves the roster
// uniqueness and capacity invariants under concurrent requests.
type InMemoryCatalog struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewInMemoryCatalog constructs a catalog seeded with the default roster.
func NewInMemoryCatalog() *InMemoryCatalog {
	return NewInMemoryCatalogWithSeed(defaultActivities)
}

// NewInMemoryCatalogWithSeed constructs a catalog from the provided
// activities. Tests use this to build small bespoke catalogs.
func NewInMemoryCatalogWithSeed(seed []domain.Activity) *InMemoryCatalog {
	c := &InMemoryCatalog{activities: make(map[string]*domain.Activity, len(seed))}
	for _, activity := range seed {
		copied := activity
		copied.Participants = append([]string(nil), activity.Participants...)
		c.activities[copied.Name] = &copied
	}
	return c
}

// All returns a deep-copied snapshot of every activity keyed by name.
func (c *InMemoryCatalog) All(ctx context.Context) (map[string]domain.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]domain.Activity, len(c.activities))
	for name, activity := range c.activities {
		out[name] = copyActivity(activity)
	}
	return out, nil
}

// Contains reports whether an activity with the given name exists.
func (c *InMemoryCatalog) Contains(ctx context.Context, name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.activities[name]
	return ok
}

// Get returns a copy of the named activity, or ErrActivityNotFound.
func (c *InMemoryCatalog) Get(ctx context.Context, name string) (*domain.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	activity, ok := c.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	copied := copyActivity(activity)
	return &copied, nil
}

// AddParticipant enrolls the email in the named activity and returns the
// updated activity snapshot. Validation order is fixed: existence, then
// membership, then capacity, so error reporting stays deterministic.
func (c *InMemoryCatalog) AddParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	activity, ok := c.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	for _, participant := range activity.Participants {
		if participant == email {
			return nil, domain.ErrAlreadyEnrolled
		}
	}
	if len(activity.Participants) >= activity.MaxParticipants {
		return nil, domain.ErrCapacityExceeded
	}

	activity.Participants = append(activity.Participants, email)
	copied := copyActivity(activity)
	return &copied, nil
}

// RemoveParticipant removes the email from the named activity and returns the
// updated activity snapshot. Existence is checked before membership.
func (c *InMemoryCatalog) RemoveParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	activity, ok := c.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}

	for i, participant := range activity.Participants {
		if participant == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			copied := copyActivity(activity)
			return &copied, nil
		}
	}
	return nil, domain.ErrNotEnrolled
}

// copyActivity returns a value copy with its own participants slice, so the
// caller can never alias the stored roster. Callers must hold at least the
// read lock.
func copyActivity(activity *domain.Activity) domain.Activity {
	copied := *activity
	copied.Participants = append([]string(nil), activity.Participants...)
	return copied
}
