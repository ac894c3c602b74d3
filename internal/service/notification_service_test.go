package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type fakeNotifier struct {
	mu       sync.Mutex
	sent     []Notification
	failures int
}

func (f *fakeNotifier) Send(ctx context.Context, to, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("provider unavailable")
	}
	f.sent = append(f.sent, Notification{To: to, Message: message})
	return nil
}

func (f *fakeNotifier) delivered() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.sent))
	copy(out, f.sent)
	return out
}

func waitForDeliveries(t *testing.T, notifier *fakeNotifier, want int) []Notification {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := notifier.delivered(); len(got) >= want {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d deliveries, got %d", want, len(notifier.delivered()))
	return nil
}

func newTestNotificationService(notifier Notifier) *NotificationService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	svc := NewNotificationService(notifier, log)
	svc.backoff = time.Millisecond
	return svc
}

func TestNotificationServiceDelivers(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := newTestNotificationService(notifier)
	defer svc.Stop()

	svc.Enqueue(Notification{To: "+59170000001", Message: "Reserva confirmada"})
	svc.Enqueue(Notification{To: "+59170000002", Message: "Nueva cita"})

	sent := waitForDeliveries(t, notifier, 2)
	if sent[0].To != "+59170000001" || sent[1].To != "+59170000002" {
		t.Errorf("unexpected delivery order: %+v", sent)
	}
}

func TestNotificationServiceRetriesFailedDelivery(t *testing.T) {
	notifier := &fakeNotifier{failures: 2}
	svc := newTestNotificationService(notifier)
	defer svc.Stop()

	svc.Enqueue(Notification{To: "+59170000003", Message: "Reserva confirmada"})

	sent := waitForDeliveries(t, notifier, 1)
	if sent[0].Message != "Reserva confirmada" {
		t.Errorf("unexpected message: %q", sent[0].Message)
	}
}

func TestNotificationServiceGivesUpAfterMaxAttempts(t *testing.T) {
	notifier := &fakeNotifier{failures: maxDeliveryAttempts}
	svc := newTestNotificationService(notifier)

	svc.Enqueue(Notification{To: "+59170000004", Message: "Reserva confirmada"})

	time.Sleep(100 * time.Millisecond)
	svc.Stop()

	if got := notifier.delivered(); len(got) != 0 {
		t.Errorf("expected no deliveries after exhausting attempts, got %+v", got)
	}
}

func TestNotificationServiceEnqueueAfterStopIsNoop(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := newTestNotificationService(notifier)
	svc.Stop()

	svc.Enqueue(Notification{To: "+59170000005", Message: "tarde"})

	time.Sleep(20 * time.Millisecond)
	if got := notifier.delivered(); len(got) != 0 {
		t.Errorf("expected no deliveries after Stop, got %+v", got)
	}
}
