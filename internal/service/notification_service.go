package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Notifier delivers a single message to a phone contact. Implemented by the
// Twilio WhatsApp sender; tests plug in fakes.
type Notifier interface {
	Send(ctx context.Context, to, message string) error
}

// Notification is one queued delivery.
type Notification struct {
	To      string
	Message string
}

const (
	notificationQueueSize = 256
	maxDeliveryAttempts   = 3
	retryBackoff          = 30 * time.Second
	deliveryTimeout       = 15 * time.Second
)

// NotificationService delivers booking notifications in the background.
// Enqueue never blocks the caller: delivery is best-effort and a failure can
// neither roll back nor delay an already-committed booking.
type NotificationService struct {
	notifier Notifier
	log      *logrus.Logger
	backoff  time.Duration

	queue    chan Notification
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

func NewNotificationService(notifier Notifier, log *logrus.Logger) *NotificationService {
	svc := &NotificationService{
		notifier: notifier,
		log:      log,
		backoff:  retryBackoff,
		queue:    make(chan Notification, notificationQueueSize),
		stopChan: make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.deliverLoop()

	return svc
}

// Enqueue hands a notification to the background worker. When the queue is
// full the notification is dropped with a log entry rather than blocking the
// request path.
func (s *NotificationService) Enqueue(n Notification) {
	if s.stopped.Load() {
		return
	}
	select {
	case s.queue <- n:
	default:
		s.log.Warnf("Notification queue full, dropping message for %s", n.To)
	}
}

// Stop drains the worker. Safe to call multiple times.
func (s *NotificationService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("NotificationService stopped")
	}
}

func (s *NotificationService) deliverLoop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.stopChan:
			return
		case n := <-s.queue:
			s.deliver(n)
		}
	}
}

func (s *NotificationService) deliver(n Notification) {
	for attempt := 1; attempt <= maxDeliveryAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		err := s.notifier.Send(ctx, n.To, n.Message)
		cancel()

		if err == nil {
			return
		}

		s.log.Warnf("Notification delivery to %s failed (attempt %d/%d): %+v",
			n.To, attempt, maxDeliveryAttempts, err)

		if attempt == maxDeliveryAttempts {
			return
		}

		select {
		case <-s.stopChan:
			return
		case <-time.After(s.backoff):
		}
	}
}
