package notify

import (
	"context"
	"errors"
	"log"
	"time"

	"example.com/activities/internal/domain"
)

const defaultQueueSize = 64

// Sender submits the email behind one notification.
type Sender interface {
	Send(ctx context.Context, n domain.Notification) error
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger overrides the logger used for delivery outcomes.
func WithLogger(logger *log.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithQueueSize overrides the pending-notification queue capacity.
func WithQueueSize(size int) Option {
	return func(d *Dispatcher) {
		if size > 0 {
			d.queue = make(chan domain.Notification, size)
		}
	}
}

// Dispatcher queues notifications and delivers them from a worker goroutine,
// so enrollment requests never wait on an SMTP exchange. Every failure mode
// ends in a log line and a counter, never in an error to the caller.
type Dispatcher struct {
	sender           Sender
	queue            chan domain.Notification
	logger           *log.Logger
	shutdownComplete chan struct{}
}

// NewDispatcher constructs a Dispatcher around the given sender.
func NewDispatcher(sender Sender, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sender:           sender,
		queue:            make(chan domain.Notification, defaultQueueSize),
		logger:           log.New(log.Writer(), "[notify] ", log.LstdFlags|log.Lshortfile),
		shutdownComplete: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Notify implements domain.Notifier. It never blocks: when the queue is full
// the notification is dropped, keeping the side channel strictly best effort.
func (d *Dispatcher) Notify(ctx context.Context, n domain.Notification) {
	select {
	case d.queue <- n:
	default:
		droppedCounter.Inc()
		d.logger.Printf("queue full, dropping %s email for %s (id=%s)", n.Event, n.StudentEmail, n.ID)
	}
}

// Start launches the delivery loop. It should be called in a goroutine and
// runs until the context is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	defer close(d.shutdownComplete)

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-d.queue:
			d.deliver(ctx, n)
		}
	}
}

// Wait waits until the dispatcher stops.
func (d *Dispatcher) Wait() {
	<-d.shutdownComplete
}

func (d *Dispatcher) deliver(ctx context.Context, n domain.Notification) {
	start := time.Now()
	err := d.sender.Send(ctx, n)
	switch {
	case err == nil:
		sendDuration.Observe(time.Since(start).Seconds())
		deliveredCounter.Inc()
	case errors.Is(err, ErrNotConfigured):
		skippedCounter.Inc()
		d.logger.Printf("smtp not configured, skipping %s email for %s (id=%s)", n.Event, n.StudentEmail, n.ID)
	default:
		failedCounter.Inc()
		d.logger.Printf("failed to send %s email for %s (id=%s): %v", n.Event, n.StudentEmail, n.ID, err)
	}
}
