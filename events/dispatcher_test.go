package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type namedEvent EventName

func (n namedEvent) Name() EventName {
	return EventName(n)
}

type recordingListener struct {
	event EventName
	calls *[]string
	id    string
	err   error
	panic bool
}

func (l *recordingListener) ForEvent() EventName {
	return l.event
}

func (l *recordingListener) Handle(ctx context.Context, ev Event) error {
	*l.calls = append(*l.calls, l.id)
	if l.panic {
		panic("listener exploded")
	}
	return l.err
}

func TestDispatchInRegistrationOrder(t *testing.T) {
	calls := make([]string, 0)
	d := NewDispatcher(zaptest.NewLogger(t))
	d.Register(
		&recordingListener{event: "saved", calls: &calls, id: "first"},
		&recordingListener{event: "deleted", calls: &calls, id: "other"},
		&recordingListener{event: "saved", calls: &calls, id: "second"},
	)

	d.Dispatch(context.Background(), namedEvent("saved"))
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, 2, d.Listeners("saved"))
	assert.Equal(t, 1, d.Listeners("deleted"))
}

func TestDispatchSurvivesFailingListeners(t *testing.T) {
	calls := make([]string, 0)
	d := NewDispatcher(zaptest.NewLogger(t))
	d.Register(
		&recordingListener{event: "saved", calls: &calls, id: "panics", panic: true},
		&recordingListener{event: "saved", calls: &calls, id: "errors", err: errors.New("boom")},
		&recordingListener{event: "saved", calls: &calls, id: "works"},
	)

	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), namedEvent("saved"))
	})
	assert.Equal(t, []string{"panics", "errors", "works"}, calls)
}

func TestDispatchWithoutListeners(t *testing.T) {
	d := NewDispatcher(zaptest.NewLogger(t))
	assert.Equal(t, 0, d.Listeners("unknown"))
	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), namedEvent("unknown"))
	})
}
