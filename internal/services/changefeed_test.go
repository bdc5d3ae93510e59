package services

import (
	"testing"
	"time"
)

func TestChangeFeedDeliversOnlyToMatchingUser(t *testing.T) {
	feed := NewChangeFeed()

	aliceID, aliceEvents, err := feed.Subscribe("alice")
	if err != nil {
		t.Fatalf("subscribe alice: %v", err)
	}
	defer feed.Unsubscribe(aliceID)

	bobID, bobEvents, err := feed.Subscribe("bob")
	if err != nil {
		t.Fatalf("subscribe bob: %v", err)
	}
	defer feed.Unsubscribe(bobID)

	feed.Publish("alice", ChangeEvent{Table: "medicines", Action: ChangeActionCreated, RowID: "m1"})

	select {
	case event := <-aliceEvents:
		if event.Table != "medicines" || event.RowID != "m1" {
			t.Fatalf("unexpected event %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("expected alice to receive the event")
	}

	select {
	case event := <-bobEvents:
		t.Fatalf("bob should not receive alice's event, got %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestChangeFeedDropsEventsForSlowSubscribers(t *testing.T) {
	feed := NewChangeFeed()

	subscriberID, events, err := feed.Subscribe("user-1")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer feed.Unsubscribe(subscriberID)

	// Overflow the buffer without reading; Publish must never block.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			feed.Publish("user-1", ChangeEvent{Table: "medicines", Action: ChangeActionUpdated})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	if len(events) == 0 {
		t.Fatal("expected at least some buffered events")
	}
}

func TestChangeFeedUnsubscribeClosesChannel(t *testing.T) {
	feed := NewChangeFeed()

	subscriberID, events, err := feed.Subscribe("user-1")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	feed.Unsubscribe(subscriberID)

	select {
	case _, open := <-events:
		if open {
			t.Fatal("expected channel to be closed after unsubscribe")
		}
	case <-time.After(time.Second):
		t.Fatal("expected closed channel read to return immediately")
	}

	if feed.SubscriberCount() != 0 {
		t.Fatalf("expected zero subscribers, got %d", feed.SubscriberCount())
	}

	// Publishing after unsubscribe must be a no-op, not a panic.
	feed.Publish("user-1", ChangeEvent{Table: "medicines", Action: ChangeActionDeleted})
}
