package rules

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/eisenwinter/apicportal/events"
	"github.com/eisenwinter/apicportal/events/event"
	"github.com/eisenwinter/apicportal/modules"
	"github.com/eisenwinter/apicportal/rules/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"
)

func TestBootstrapCoversEveryEvent(t *testing.T) {
	listeners := BootstrapListeners(mocks.NewPublisher(t), mocks.NewModuleChecker(t), zaptest.NewLogger(t))
	assert.Len(t, listeners, len(forwarded))
	seen := make(map[events.EventName]bool)
	for _, l := range listeners {
		seen[l.ForEvent()] = true
	}
	assert.True(t, seen[event.ApplicationDeletedEvent])
	assert.True(t, seen[event.CustomModulesDeletedEvent])
}

func TestPublishesWhenRulesEnabled(t *testing.T) {
	assert := assert.New(t)
	publisher := mocks.NewPublisher(t)
	checker := mocks.NewModuleChecker(t)
	ctx := context.Background()
	checker.On("Exists", modules.Rules).Return(true)

	var published []byte
	publisher.On("Publish", ctx, Channel, mock.Anything).Run(func(args mock.Arguments) {
		published = args.Get(2).([]byte)
	}).Return(nil).Once()

	l := &publishingListener{
		name:      event.UserPasswordChangedEvent,
		publisher: publisher,
		modules:   checker,
		log:       zaptest.NewLogger(t),
		now:       func() time.Time { return time.Date(2022, 3, 1, 10, 0, 0, 0, time.UTC) },
	}
	assert.NoError(l.Handle(ctx, &event.UserPasswordChanged{UserID: 3, ViaReset: true}))

	var msg map[string]interface{}
	assert.NoError(json.Unmarshal(published, &msg))
	assert.Equal("user_password_changed", msg["event"])
	assert.Equal("2022-03-01T10:00:00Z", msg["occurred_at"])
	assert.Equal(map[string]interface{}{"UserID": float64(3), "ViaReset": true}, msg["payload"])
}

func TestSkipsWhenRulesDisabled(t *testing.T) {
	publisher := mocks.NewPublisher(t)
	checker := mocks.NewModuleChecker(t)
	checker.On("Exists", modules.Rules).Return(false)
	listeners := BootstrapListeners(publisher, checker, zaptest.NewLogger(t))
	assert.NoError(t, listeners[0].Handle(context.Background(), &event.ApplicationCreated{}))
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublishFailureDoesNotFailCaller(t *testing.T) {
	publisher := mocks.NewPublisher(t)
	checker := mocks.NewModuleChecker(t)
	ctx := context.Background()
	checker.On("Exists", modules.Rules).Return(true)
	publisher.On("Publish", ctx, Channel, mock.Anything).Return(errors.New("connection refused"))
	listeners := BootstrapListeners(publisher, checker, zaptest.NewLogger(t))
	assert.NoError(t, listeners[0].Handle(ctx, &event.ApplicationCreated{ApplicationID: "a"}))
}
