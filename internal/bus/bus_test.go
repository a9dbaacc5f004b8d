package bus

import "testing"

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	b := New()
	first := b.Subscribe()
	second := b.Subscribe()

	b.Publish()

	for i, ch := range []<-chan struct{}{first, second} {
		select {
		case <-ch:
		default:
			t.Errorf("subscriber %d missed the notification", i)
		}
	}
}

func TestBus_PublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	b := New()
	b.Publish() // must return immediately
}

func TestBus_CoalescesPendingNotifications(t *testing.T) {
	b := New()
	ch := b.Subscribe()

	b.Publish()
	b.Publish()
	b.Publish()

	<-ch
	select {
	case <-ch:
		t.Error("expected coalesced delivery, got a second pending notification")
	default:
	}
}

func TestBus_LateSubscriberSeesNothing(t *testing.T) {
	b := New()
	b.Publish()

	ch := b.Subscribe()
	select {
	case <-ch:
		t.Error("late subscriber observed an earlier publish")
	default:
	}
}
