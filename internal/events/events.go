package events

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event describes one admin action or sync outcome, published for audit
// consumers.
type Event struct {
	Type       string    `json:"type"`
	CampaignID string    `json:"campaign_id,omitempty"`
	Title      string    `json:"title,omitempty"`
	Actor      string    `json:"actor,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Event types emitted by the services.
const (
	TypeCampaignCreated        = "campaign.created"
	TypeCampaignUpdated        = "campaign.updated"
	TypeCampaignDeleted        = "campaign.deleted"
	TypeCampaignStatusUpdated  = "campaign.status_updated"
	TypeCampaignOptionsUpdated = "campaign.options_updated"
	TypeCampaignNotesUpdated   = "campaign.notes_updated"
	TypeCatalogSynced          = "catalog.synced"
)

// Publisher fans events out to subscribers
type Publisher interface {
	Publish(topic string, event Event) error
	Subscribe(topic string, handler func(event Event) error) error
}

// InMemoryBus is an in-process publisher with retry
type InMemoryBus struct {
	mu       sync.Mutex
	handlers map[string][]func(event Event) error
	log      *zap.Logger
}

func NewInMemoryBus(log *zap.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]func(event Event) error),
		log:      log,
	}
}

// job wraps an event with retry info
type job struct {
	event      Event
	retryCount int
	maxRetries int
}

// Publish sends an event to all subscribers. No subscribers is not an error;
// audit wiring is optional.
func (b *InMemoryBus) Publish(topic string, event Event) error {
	b.mu.Lock()
	handlers := b.handlers[topic]
	b.mu.Unlock()

	j := job{event: event, maxRetries: 3}
	for _, handler := range handlers {
		go b.process(handler, j)
	}
	return nil
}

// process handles retries and errors
func (b *InMemoryBus) process(handler func(event Event) error, j job) {
	for j.retryCount <= j.maxRetries {
		err := handler(j.event)
		if err == nil {
			return // ACK
		}

		j.retryCount++
		b.log.Warn("event handler failed",
			zap.String("type", j.event.Type),
			zap.Int("attempt", j.retryCount),
			zap.Int("max", j.maxRetries),
			zap.Error(err))

		if j.retryCount > j.maxRetries {
			b.log.Error("event permanently failed",
				zap.String("type", j.event.Type),
				zap.Int("attempts", j.maxRetries))
			return // No requeue
		}

		// Exponential backoff before retry
		time.Sleep(time.Duration(j.retryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (b *InMemoryBus) Subscribe(topic string, handler func(event Event) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[topic] = append(b.handlers[topic], handler)
	return nil
}

var _ Publisher = (*InMemoryBus)(nil)
