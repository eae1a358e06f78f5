// Package notify implements the fire-and-forget notification dispatcher.
// Dispatch never blocks the calling business operation: notifications are
// queued on a buffered channel and delivered by a small worker pool, each
// with at most one delivery attempt. A full queue drops the notification
// with a log line, and delivery failures are logged and forgotten.
package notify

import (
	"log/slog"
	"sync"

	"shiptrack/internal/core/ports"
)

// Sender delivers one notification over a single channel (email, SMS).
type Sender interface {
	Send(destination, message string) error
}

// ChannelDispatcher routes notifications to per-channel senders through a
// buffered queue and worker pool.
type ChannelDispatcher struct {
	queue   chan ports.Notification
	senders map[ports.NotificationChannel]Sender
	logger  *slog.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewChannelDispatcher creates a dispatcher with the given queue capacity.
// Senders are registered per channel; notifications for channels without a
// sender are dropped with a log line.
func NewChannelDispatcher(
	queueSize int,
	senders map[ports.NotificationChannel]Sender,
	logger *slog.Logger,
) *ChannelDispatcher {
	return &ChannelDispatcher{
		queue:   make(chan ports.Notification, queueSize),
		senders: senders,
		logger:  logger.With("component", "notification_dispatcher"),
	}
}

// Start launches the delivery workers. Call Stop to drain and shut down.
func (d *ChannelDispatcher) Start(workers int) {
	for range workers {
		d.wg.Add(1)
		go d.work()
	}
}

// Stop closes the queue and waits for in-flight deliveries to finish.
// Dispatch must not be called after Stop.
func (d *ChannelDispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

// Dispatch enqueues a notification without blocking. When the queue is full
// the notification is dropped; delivery is best-effort by contract.
func (d *ChannelDispatcher) Dispatch(n ports.Notification) {
	select {
	case d.queue <- n:
	default:
		d.logger.Warn("notification queue full, dropping",
			"channel", string(n.Channel),
			"destination", n.Destination,
		)
	}
}

func (d *ChannelDispatcher) work() {
	defer d.wg.Done()

	for n := range d.queue {
		sender, ok := d.senders[n.Channel]
		if !ok {
			d.logger.Warn("no sender for channel, dropping",
				"channel", string(n.Channel),
			)
			continue
		}

		// One attempt, no retry.
		if err := sender.Send(n.Destination, n.Message); err != nil {
			d.logger.Warn("notification delivery failed",
				"channel", string(n.Channel),
				"destination", n.Destination,
				"error", err,
			)
			continue
		}

		d.logger.Info("notification delivered",
			"channel", string(n.Channel),
			"destination", n.Destination,
		)
	}
}
