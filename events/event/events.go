package event

import (
	"github.com/eisenwinter/apicportal/events"
	"github.com/google/uuid"
)

const (
	ApplicationCreatedEvent events.EventName = "application_created"
	ApplicationUpdatedEvent events.EventName = "application_updated"
	ApplicationDeletedEvent events.EventName = "application_deleted"

	CredentialSavedEvent   events.EventName = "application_credential_saved"
	CredentialDeletedEvent events.EventName = "application_credential_deleted"

	SubscriptionSavedEvent   events.EventName = "application_subscription_saved"
	SubscriptionDeletedEvent events.EventName = "application_subscription_deleted"

	UserPasswordChangedEvent events.EventName = "user_password_changed"

	CustomModulesDeletedEvent events.EventName = "custom_modules_deleted"
)

// ApplicationCreated is fired after a new application was persisted
type ApplicationCreated struct {
	ID            uuid.UUID
	ApplicationID string
	URL           string
	Title         string
	// Trigger is the sync event that caused the write (create, webhook, content_refresh ...)
	Trigger string
}

func (*ApplicationCreated) Name() events.EventName {
	return ApplicationCreatedEvent
}

type ApplicationUpdated struct {
	ID            uuid.UUID
	ApplicationID string
	URL           string
	Title         string
	Trigger       string
}

func (*ApplicationUpdated) Name() events.EventName {
	return ApplicationUpdatedEvent
}

type ApplicationDeleted struct {
	ID            uuid.UUID
	ApplicationID string
	URL           string
	Trigger       string
}

func (*ApplicationDeleted) Name() events.EventName {
	return ApplicationDeletedEvent
}

type CredentialSaved struct {
	ApplicationURL string
	CredentialID   string
	ClientID       string
}

func (*CredentialSaved) Name() events.EventName {
	return CredentialSavedEvent
}

type CredentialDeleted struct {
	ApplicationURL string
	CredentialID   string
}

func (*CredentialDeleted) Name() events.EventName {
	return CredentialDeletedEvent
}

type SubscriptionSaved struct {
	ApplicationURL string
	SubscriptionID string
	ProductURL     string
	Plan           string
}

func (*SubscriptionSaved) Name() events.EventName {
	return SubscriptionSavedEvent
}

type SubscriptionDeleted struct {
	ApplicationURL string
	SubscriptionID string
}

func (*SubscriptionDeleted) Name() events.EventName {
	return SubscriptionDeletedEvent
}

type UserPasswordChanged struct {
	UserID int
	// ViaReset is set when a password reset token was used
	ViaReset bool
}

func (*UserPasswordChanged) Name() events.EventName {
	return UserPasswordChangedEvent
}

type CustomModulesDeleted struct {
	UserID  int
	Modules []string
}

func (*CustomModulesDeleted) Name() events.EventName {
	return CustomModulesDeletedEvent
}
