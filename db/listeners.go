package db

import (
	"context"
	"strconv"
	"strings"

	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/events"
	"github.com/eisenwinter/apicportal/events/event"
	"go.uber.org/zap"
)

// Auditor is a way to write audit log events into a persistent store
type Auditor interface {
	addToAuditLog(event string, payload tables.MapStructure) error
}

// BootstrapListeners registers all the event listeners from this package
func BootstrapListeners(store Auditor, log *zap.Logger) []events.EventListener {
	return []events.EventListener{
		&applicationCreatedListener{
			log:   log,
			store: store,
		},
		&applicationUpdatedListener{
			log:   log,
			store: store,
		},
		&applicationDeletedListener{
			log:   log,
			store: store,
		},
		&credentialSavedListener{
			log:   log,
			store: store,
		},
		&credentialDeletedListener{
			log:   log,
			store: store,
		},
		&subscriptionSavedListener{
			log:   log,
			store: store,
		},
		&subscriptionDeletedListener{
			log:   log,
			store: store,
		},
		&userPasswordChangedListener{
			log:   log,
			store: store,
		},
		&customModulesDeletedListener{
			log:   log,
			store: store,
		},
	}
}

func toString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

type applicationCreatedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*applicationCreatedListener) ForEvent() events.EventName {
	return event.ApplicationCreatedEvent
}

func (l *applicationCreatedListener) Handle(_ context.Context, ev events.Event) error {
	e := ev.(*event.ApplicationCreated)
	err := l.store.addToAuditLog(string(l.ForEvent()), map[string]interface{}{
		"id":             e.ID.String(),
		"application_id": e.ApplicationID,
		"url":            e.URL,
		"title":          e.Title,
		"trigger":        e.Trigger,
	})
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}

type applicationUpdatedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*applicationUpdatedListener) ForEvent() events.EventName {
	return event.ApplicationUpdatedEvent
}

func (l *applicationUpdatedListener) Handle(_ context.Context, ev events.Event) error {
	e := ev.(*event.ApplicationUpdated)
	err := l.store.addToAuditLog(string(l.ForEvent()), map[string]interface{}{
		"id":             e.ID.String(),
		"application_id": e.ApplicationID,
		"url":            e.URL,
		"title":          e.Title,
		"trigger":        e.Trigger,
	})
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}

type applicationDeletedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*applicationDeletedListener) ForEvent() events.EventName {
	return event.ApplicationDeletedEvent
}

func (l *applicationDeletedListener) Handle(_ context.Context, ev events.Event) error {
	e := ev.(*event.ApplicationDeleted)
	err := l.store.addToAuditLog(string(l.ForEvent()), map[string]interface{}{
		"id":             e.ID.String(),
		"application_id": e.ApplicationID,
		"url":            e.URL,
		"trigger":        e.Trigger,
	})
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}

type credentialSavedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*credentialSavedListener) ForEvent() events.EventName {
	return event.CredentialSavedEvent
}

func (l *credentialSavedListener) Handle(_ context.Context, ev events.Event) error {
	e := ev.(*event.CredentialSaved)
	err := l.store.addToAuditLog(string(l.ForEvent()), map[string]interface{}{
		"application_url": e.ApplicationURL,
		"credential_id":   e.CredentialID,
		"client_id":       e.ClientID,
	})
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}

type credentialDeletedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*credentialDeletedListener) ForEvent() events.EventName {
	return event.CredentialDeletedEvent
}

func (l *credentialDeletedListener) Handle(_ context.Context, ev events.Event) error {
	e := ev.(*event.CredentialDeleted)
	err := l.store.addToAuditLog(string(l.ForEvent()), map[string]interface{}{
		"application_url": e.ApplicationURL,
		"credential_id":   e.CredentialID,
	})
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}

type subscriptionSavedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*subscriptionSavedListener) ForEvent() events.EventName {
	return event.SubscriptionSavedEvent
}

func (l *subscriptionSavedListener) Handle(_ context.Context, ev events.Event) error {
	e := ev.(*event.SubscriptionSaved)
	err := l.store.addToAuditLog(string(l.ForEvent()), map[string]interface{}{
		"application_url": e.ApplicationURL,
		"subscription_id": e.SubscriptionID,
		"product_url":     e.ProductURL,
		"plan":            e.Plan,
	})
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}

type subscriptionDeletedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*subscriptionDeletedListener) ForEvent() events.EventName {
	return event.SubscriptionDeletedEvent
}

func (l *subscriptionDeletedListener) Handle(_ context.Context, ev events.Event) error {
	e := ev.(*event.SubscriptionDeleted)
	err := l.store.addToAuditLog(string(l.ForEvent()), map[string]interface{}{
		"application_url": e.ApplicationURL,
		"subscription_id": e.SubscriptionID,
	})
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}

type userPasswordChangedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*userPasswordChangedListener) ForEvent() events.EventName {
	return event.UserPasswordChangedEvent
}

func (l *userPasswordChangedListener) Handle(_ context.Context, ev events.Event) error {
	e := ev.(*event.UserPasswordChanged)
	err := l.store.addToAuditLog(string(l.ForEvent()), map[string]interface{}{
		"user_id":   strconv.Itoa(e.UserID),
		"via_reset": toString(e.ViaReset),
	})
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}

type customModulesDeletedListener struct {
	store Auditor
	log   *zap.Logger
}

func (*customModulesDeletedListener) ForEvent() events.EventName {
	return event.CustomModulesDeletedEvent
}

func (l *customModulesDeletedListener) Handle(_ context.Context, ev events.Event) error {
	e := ev.(*event.CustomModulesDeleted)
	err := l.store.addToAuditLog(string(l.ForEvent()), map[string]interface{}{
		"user_id": strconv.Itoa(e.UserID),
		"modules": strings.Join(e.Modules, ","),
	})
	if err != nil {
		l.log.Warn("Could not persist event to audit log", zap.Error(err))
	}
	return nil
}
