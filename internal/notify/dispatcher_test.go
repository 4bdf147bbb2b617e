package notify

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// stubMailer records sends and can be told to fail or hang.
type stubMailer struct {
	mu            sync.Mutex
	customerSends int
	adminSends    int
	customerErrs  int // fail this many customer sends before succeeding
	adminErrs     int // fail this many admin sends before succeeding
	block         chan struct{}
}

func (m *stubMailer) SendCustomerConfirmation(d BookingDetails) error {
	if m.block != nil {
		<-m.block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customerSends++
	if m.customerErrs > 0 {
		m.customerErrs--
		return errors.New("smtp unavailable")
	}
	return nil
}

func (m *stubMailer) SendAdminNotification(d BookingDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adminSends++
	if m.adminErrs > 0 {
		m.adminErrs--
		return errors.New("smtp unavailable")
	}
	return nil
}

func (m *stubMailer) counts() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.customerSends, m.adminSends
}

func newTestDispatcher(m Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer:     m,
		jobs:       make(chan BookingDetails, dispatchQueueSize),
		retryDelay: time.Millisecond,
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

func details() BookingDetails {
	return BookingDetails{
		Name:        "Jane",
		Email:       "jane@example.com",
		Phone:       "0712345678",
		SessionType: "Portrait Session",
		Date:        "2025-07-01",
		Time:        "09:00",
	}
}

func TestDispatcher_SendsBothEmails(t *testing.T) {
	mailer := &stubMailer{}
	d := newTestDispatcher(mailer)

	d.DispatchBooking(details())
	d.Close()

	customer, admin := mailer.counts()
	assert.Equal(t, 1, customer)
	assert.Equal(t, 1, admin)
}

func TestDispatcher_CustomerFailureDoesNotBlockAdminEmail(t *testing.T) {
	// Customer email fails permanently; admin email must still go out.
	mailer := &stubMailer{customerErrs: 2}
	d := newTestDispatcher(mailer)

	d.DispatchBooking(details())
	d.Close()

	customer, admin := mailer.counts()
	assert.Equal(t, 2, customer, "one attempt plus one retry")
	assert.Equal(t, 1, admin)
}

func TestDispatcher_RetriesOnceThenDrops(t *testing.T) {
	mailer := &stubMailer{customerErrs: 1}
	d := newTestDispatcher(mailer)

	d.DispatchBooking(details())
	d.Close()

	customer, _ := mailer.counts()
	assert.Equal(t, 2, customer, "failed attempt followed by successful retry")
}

func TestDispatcher_DispatchNeverBlocksCaller(t *testing.T) {
	// The mailer hangs forever; queueing must still return immediately.
	block := make(chan struct{})
	defer close(block)
	mailer := &stubMailer{block: block}
	d := newTestDispatcher(mailer)

	start := time.Now()
	for i := 0; i < dispatchQueueSize+10; i++ {
		d.DispatchBooking(details())
	}
	assert.Less(t, time.Since(start), time.Second, "dispatch must not wait on delivery")
}
