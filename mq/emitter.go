package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"roamly/rdx"
)

const channel = "entity-events"

// Event describes a change to a stored entity. Events are published to a
// Redis channel and consumed by the background worker.
type Event struct {
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Method     string    `json:"method"` // created / updated / deleted
	At         time.Time `json:"at"`
}

// Emitter publishes entity events. A nil cache makes Emit a no-op.
type Emitter struct {
	Cache *rdx.Cache
}

func NewEmitter(cache *rdx.Cache) *Emitter {
	return &Emitter{Cache: cache}
}

// Emit publishes an event. Failures are logged, never surfaced: event
// delivery must not fail the request that triggered it.
func (e *Emitter) Emit(ctx context.Context, entityType, entityID, method string) {
	if e == nil || e.Cache == nil {
		return
	}

	data, err := json.Marshal(Event{
		EntityType: entityType,
		EntityID:   entityID,
		Method:     method,
		At:         time.Now(),
	})
	if err != nil {
		log.Printf("mq: marshal event: %v", err)
		return
	}

	if err := e.Cache.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("mq: publish event: %v", err)
	}
}

// StartWorker consumes entity events until ctx is cancelled. For now the
// worker records the event stream; notification fan-out hangs off here.
func (e *Emitter) StartWorker(ctx context.Context) {
	if e == nil || e.Cache == nil {
		return
	}

	sub := e.Cache.Conn.Subscribe(ctx, channel)
	defer sub.Close()
	ch := sub.Channel()

	log.Println("mq: worker listening for entity events")
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("mq: parse event: %v", err)
				continue
			}
			log.Printf("mq: %s %s %s", ev.EntityType, ev.EntityID, ev.Method)
		}
	}
}
