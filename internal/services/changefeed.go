package services

import (
	"sync"

	"github.com/akshaan07/pilltime/internal/security"
)

const (
	ChangeActionCreated = "created"
	ChangeActionUpdated = "updated"
	ChangeActionDeleted = "deleted"
	ChangeActionDue     = "due"
)

// ChangeEvent mirrors the hosted change-feed shape the client already
// consumes: it names what changed so subscribers re-fetch and re-derive.
// Derivations are idempotent, so no ordering guarantee is given.
type ChangeEvent struct {
	Table   string `json:"table"`
	Action  string `json:"action"`
	RowID   string `json:"row_id,omitempty"`
	Payload any    `json:"payload,omitempty"`
	userID  string
}

const subscriberIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

type changeSubscriber struct {
	userID string
	events chan ChangeEvent
}

// ChangeFeed is an in-process publish/subscribe hub scoped per user. Slow
// subscribers have events dropped rather than blocking writers.
type ChangeFeed struct {
	mu          sync.RWMutex
	subscribers map[string]*changeSubscriber
}

func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{subscribers: make(map[string]*changeSubscriber)}
}

func (feed *ChangeFeed) Subscribe(userID string) (string, <-chan ChangeEvent, error) {
	subscriberID, err := security.RandomString(16, subscriberIDAlphabet)
	if err != nil {
		return "", nil, err
	}

	subscriber := &changeSubscriber{
		userID: userID,
		events: make(chan ChangeEvent, 16),
	}

	feed.mu.Lock()
	feed.subscribers[subscriberID] = subscriber
	feed.mu.Unlock()

	return subscriberID, subscriber.events, nil
}

func (feed *ChangeFeed) Unsubscribe(subscriberID string) {
	feed.mu.Lock()
	subscriber, ok := feed.subscribers[subscriberID]
	if ok {
		delete(feed.subscribers, subscriberID)
	}
	feed.mu.Unlock()

	if ok {
		close(subscriber.events)
	}
}

func (feed *ChangeFeed) Publish(userID string, event ChangeEvent) {
	event.userID = userID

	feed.mu.RLock()
	defer feed.mu.RUnlock()
	for _, subscriber := range feed.subscribers {
		if subscriber.userID != userID {
			continue
		}
		select {
		case subscriber.events <- event:
		default:
		}
	}
}

func (feed *ChangeFeed) SubscriberCount() int {
	feed.mu.RLock()
	defer feed.mu.RUnlock()
	return len(feed.subscribers)
}
