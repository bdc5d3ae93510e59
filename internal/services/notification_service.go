package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/akshaan07/pilltime/internal/models"
	"gorm.io/gorm"
)

const (
	reminderScanInterval = 5 * time.Minute
	reminderDedupeMaxAge = 48 * time.Hour
)

// ReminderNotifier periodically scans every user's active schedule and pushes
// due-dose events into the change feed. Events are best effort; delivery is
// not guaranteed and a missed scan is simply covered by the next one.
type ReminderNotifier struct {
	db       *gorm.DB
	feed     *ChangeFeed
	location *time.Location
	interval time.Duration

	mu   sync.Mutex
	sent map[string]time.Time
}

func NewReminderNotifier(db *gorm.DB, feed *ChangeFeed, location *time.Location) *ReminderNotifier {
	if location == nil {
		location = time.Local
	}
	return &ReminderNotifier{
		db:       db,
		feed:     feed,
		location: location,
		interval: reminderScanInterval,
		sent:     make(map[string]time.Time),
	}
}

func (notifier *ReminderNotifier) Start(ctx context.Context) {
	ticker := time.NewTicker(notifier.interval)
	go func() {
		defer ticker.Stop()

		notifier.run(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				notifier.run(ctx)
			}
		}
	}()
}

func (notifier *ReminderNotifier) run(ctx context.Context) {
	users := make([]models.User, 0)
	if err := notifier.db.WithContext(ctx).Find(&users).Error; err != nil {
		log.Printf("reminders: fetch users failed: %v", err)
		return
	}

	now := time.Now().In(notifier.location)

	for _, user := range users {
		medicines := make([]models.Medicine, 0)
		if err := notifier.db.WithContext(ctx).
			Where("user_id = ? AND is_active = ?", user.ID, true).
			Find(&medicines).Error; err != nil {
			log.Printf("reminders: fetch medicines failed for user %s: %v", user.ID, err)
			continue
		}
		if len(medicines) == 0 {
			continue
		}

		notifier.publishDueSlots(user.ID, medicines, now)
	}

	notifier.pruneSent(now)
}

func (notifier *ReminderNotifier) publishDueSlots(userID string, medicines []models.Medicine, now time.Time) {
	nowMinutes := MinutesSinceMidnight(now, notifier.location)
	today := DateKey(now, notifier.location)

	for _, medicine := range medicines {
		for _, slot := range medicine.TimeSlots {
			slotMinutes, ok := ParseSlotMinutes(slot)
			if !ok {
				continue
			}
			if slotMinutes < nowMinutes || slotMinutes > nowMinutes+ReminderWindowMinutes {
				continue
			}

			key := fmt.Sprintf("%s:%s:%s:%s", userID, medicine.ID, slot, today)
			if !notifier.shouldSend(key, now) {
				continue
			}

			notifier.feed.Publish(userID, ChangeEvent{
				Table:  "reminders",
				Action: ChangeActionDue,
				RowID:  medicine.ID,
				Payload: Reminder{
					Name:   medicine.Name,
					Time:   FormatSlot12Hour(slot),
					Detail: reminderDetail(medicine),
				},
			})
		}
	}
}

func (notifier *ReminderNotifier) shouldSend(key string, now time.Time) bool {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if _, already := notifier.sent[key]; already {
		return false
	}
	notifier.sent[key] = now
	return true
}

func (notifier *ReminderNotifier) pruneSent(now time.Time) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	for key, sentAt := range notifier.sent {
		if now.Sub(sentAt) > reminderDedupeMaxAge {
			delete(notifier.sent, key)
		}
	}
}
