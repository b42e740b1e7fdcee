// Package rules forwards portal events to a redis pub/sub channel so that
// external rule engines can react on them
package rules

import (
	"context"
	"encoding/json"
	"time"

	"github.com/eisenwinter/apicportal/events"
	"github.com/eisenwinter/apicportal/events/event"
	"github.com/eisenwinter/apicportal/modules"
	"go.uber.org/zap"
)

// Channel is the pub/sub channel events are published to
const Channel = "apicportal:rules"

// Publisher publishes messages to a pub/sub channel
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
}

// ModuleChecker answers whether an optional module is enabled
type ModuleChecker interface {
	Exists(name string) bool
}

// Envelope is the published message
type Envelope struct {
	Event      events.EventName `json:"event"`
	OccurredAt time.Time        `json:"occurred_at"`
	Payload    events.Event     `json:"payload"`
}

var forwarded = []events.EventName{
	event.ApplicationCreatedEvent,
	event.ApplicationUpdatedEvent,
	event.ApplicationDeletedEvent,
	event.CredentialSavedEvent,
	event.CredentialDeletedEvent,
	event.SubscriptionSavedEvent,
	event.SubscriptionDeletedEvent,
	event.UserPasswordChangedEvent,
	event.CustomModulesDeletedEvent,
}

// BootstrapListeners returns a publishing listener for every portal event
func BootstrapListeners(publisher Publisher, modules ModuleChecker, log *zap.Logger) []events.EventListener {
	log = log.Named("rules")
	res := make([]events.EventListener, 0, len(forwarded))
	for _, name := range forwarded {
		res = append(res, &publishingListener{
			name:      name,
			publisher: publisher,
			modules:   modules,
			log:       log,
			now:       time.Now,
		})
	}
	return res
}

type publishingListener struct {
	name      events.EventName
	publisher Publisher
	modules   ModuleChecker
	log       *zap.Logger
	now       func() time.Time
}

func (l *publishingListener) ForEvent() events.EventName {
	return l.name
}

func (l *publishingListener) Handle(ctx context.Context, ev events.Event) error {
	if !l.modules.Exists(modules.Rules) {
		return nil
	}
	msg, err := json.Marshal(&Envelope{
		Event:      ev.Name(),
		OccurredAt: l.now().UTC(),
		Payload:    ev,
	})
	if err != nil {
		return err
	}
	if err := l.publisher.Publish(ctx, Channel, msg); err != nil {
		l.log.Warn("Could not publish event", zap.String("event", string(ev.Name())), zap.Error(err))
	}
	return nil
}
