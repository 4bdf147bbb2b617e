package notify

import (
	"log"
	"sync"
	"time"
)

// Notifier is what the booking flow sees: a handoff that never blocks the
// request and never reports delivery failures back.
type Notifier interface {
	DispatchBooking(d BookingDetails)
}

const (
	dispatchQueueSize = 64
	defaultRetryDelay = 5 * time.Second
)

// Dispatcher queues booking confirmations and delivers them from a single
// background worker. The booking is already committed by the time a job is
// queued; everything here is best-effort.
type Dispatcher struct {
	mailer     Mailer
	jobs       chan BookingDetails
	retryDelay time.Duration
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

// Ensure Dispatcher implements Notifier
var _ Notifier = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher and starts its worker.
func NewDispatcher(mailer Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer:     mailer,
		jobs:       make(chan BookingDetails, dispatchQueueSize),
		retryDelay: defaultRetryDelay,
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

// DispatchBooking queues the confirmation emails for a committed booking.
// If the queue is full the job is dropped and logged rather than delaying
// the caller; the booking itself is the durable record.
func (d *Dispatcher) DispatchBooking(details BookingDetails) {
	select {
	case d.jobs <- details:
	default:
		log.Printf("notify: queue full, dropping notifications for booking %s %s", details.Date, details.Time)
	}
}

// Close stops accepting jobs and waits for in-flight sends to finish.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.jobs)
	})
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for details := range d.jobs {
		// The two emails are independent: one failing must not stop
		// the other.
		d.sendWithRetry("customer confirmation", details.Email, func() error {
			return d.mailer.SendCustomerConfirmation(details)
		})
		d.sendWithRetry("admin notification", "admin", func() error {
			return d.mailer.SendAdminNotification(details)
		})
	}
}

// sendWithRetry attempts a send, retries once after a delay, then drops.
func (d *Dispatcher) sendWithRetry(kind, recipient string, send func() error) {
	err := send()
	if err == nil {
		return
	}
	log.Printf("notify: %s email to %s failed, retrying: %v", kind, recipient, err)

	time.Sleep(d.retryDelay)
	if err := send(); err != nil {
		log.Printf("notify: %s email to %s dropped after retry: %v", kind, recipient, err)
	}
}
