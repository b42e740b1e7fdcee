// Package events fans portal events out to the registered listeners
package events

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// EventName identifies an event, listeners register for a name
type EventName string

// Event is anything the portal announces after a state change
type Event interface {
	Name() EventName
}

// EventListener handles a single event name
type EventListener interface {
	ForEvent() EventName
	Handle(ctx context.Context, ev Event) error
}

// Dispatcher calls the listeners of an event synchronously in registration order,
// a failing or panicking listener never fails the caller
type Dispatcher struct {
	log      *zap.Logger
	registry map[EventName][]EventListener
}

func NewDispatcher(log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		log:      log,
		registry: make(map[EventName][]EventListener),
	}
}

// Register adds listeners, registering must finish before the first dispatch
func (d *Dispatcher) Register(listener ...EventListener) {
	for _, v := range listener {
		name := v.ForEvent()
		d.log.Debug("registering event listener", zap.String("event", string(name)), zap.String("event_listener", fmt.Sprintf("%T", v)))
		d.registry[name] = append(d.registry[name], v)
	}
}

// Listeners returns how many listeners are registered for the event
func (d *Dispatcher) Listeners(name EventName) int {
	return len(d.registry[name])
}

func (d *Dispatcher) handle(ctx context.Context, el EventListener, ev Event) {
	fields := []zap.Field{
		zap.String("event", string(ev.Name())),
		zap.String("event_listener", fmt.Sprintf("%T", el)),
	}
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("event listener panicked", append(fields, zap.Any("recovered", r))...)
		}
	}()
	if err := el.Handle(ctx, ev); err != nil {
		d.log.Error("event listener failed", append(fields, zap.Error(err))...)
	}
}

// Dispatch hands the event to every listener registered for its name
func (d *Dispatcher) Dispatch(ctx context.Context, event Event) {
	listeners := d.registry[event.Name()]
	if len(listeners) == 0 {
		d.log.Debug("no event listener for event", zap.String("event", string(event.Name())))
		return
	}
	for _, v := range listeners {
		d.handle(ctx, v, event)
	}
}
