package application

import (
	"context"
	"errors"

	"github.com/eisenwinter/apicportal/db"
	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/events/event"
	"github.com/eisenwinter/apicportal/sanitize"
	"go.uber.org/zap"
)

func (s *Service) recordForURL(ctx context.Context, appURL string, op string) (*tables.ApplicationTable, error) {
	record, err := s.store.ApplicationByURL(ctx, appURL)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.log.Info(op+": could not find application", sanitize.UserInputString("app_url", appURL))
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// DeleteCredential removes the credential with the id from the application
func (s *Service) DeleteCredential(ctx context.Context, appURL string, credID string) (bool, error) {
	record, err := s.recordForURL(ctx, appURL, "delete credential")
	if err != nil || record == nil {
		return false, err
	}
	creds := make(tables.JSONList[tables.CredentialColumn], 0, len(record.Credentials))
	for _, c := range record.Credentials {
		if c.ID != credID {
			creds = append(creds, c)
		}
	}
	record.Credentials = creds
	if err := s.store.UpdateApplication(ctx, record); err != nil {
		return false, err
	}
	s.dispatcher.Dispatch(ctx, &event.CredentialDeleted{
		ApplicationURL: appURL,
		CredentialID:   credID,
	})
	s.log.Info("deleted credential", sanitize.UserInputString("app_url", appURL))
	return true, nil
}

// CreateOrUpdateCredential replaces the credential with the same id or appends it
func (s *Service) CreateOrUpdateCredential(ctx context.Context, appURL string, cred *CredentialInput) (bool, error) {
	if cred == nil {
		return false, nil
	}
	record, err := s.recordForURL(ctx, appURL, "save credential")
	if err != nil || record == nil {
		return false, err
	}
	creds := make(tables.JSONList[tables.CredentialColumn], 0, len(record.Credentials)+1)
	for _, c := range record.Credentials {
		if c.ID != cred.ID {
			creds = append(creds, c)
		}
	}
	column := credentialFromInput(cred, s.relative)
	creds = append(creds, column)
	record.Credentials = creds
	if err := s.store.UpdateApplication(ctx, record); err != nil {
		return false, err
	}
	s.dispatcher.Dispatch(ctx, &event.CredentialSaved{
		ApplicationURL: appURL,
		CredentialID:   column.ID,
		ClientID:       column.ClientID,
	})
	s.log.Info("saved credential", sanitize.UserInputString("app_url", appURL), sanitize.UserInputString("credential_id", column.ID))
	return true, nil
}

// CreateOrUpdateSubscription replaces the subscription with the same id or appends it
func (s *Service) CreateOrUpdateSubscription(ctx context.Context, appURL string, sub *SubscriptionInput) (bool, error) {
	if sub == nil {
		return false, nil
	}
	record, err := s.recordForURL(ctx, appURL, "save subscription")
	if err != nil || record == nil {
		return false, err
	}
	subs := make(tables.JSONList[tables.SubscriptionColumn], 0, len(record.Subscriptions)+1)
	for _, v := range record.Subscriptions {
		if v.ID != sub.ID {
			subs = append(subs, v)
		}
	}
	state := sub.State
	if state == "" {
		state = StateEnabled
	}
	subs = append(subs, tables.SubscriptionColumn{
		ID:         sub.ID,
		ProductURL: s.relative(sub.ProductURL),
		Plan:       sub.Plan,
		State:      state,
	})
	record.Subscriptions = subs
	if err := s.store.UpdateApplication(ctx, record); err != nil {
		return false, err
	}
	s.dispatcher.Dispatch(ctx, &event.SubscriptionSaved{
		ApplicationURL: appURL,
		SubscriptionID: sub.ID,
		ProductURL:     sub.ProductURL,
		Plan:           sub.Plan,
	})
	s.log.Info("saved subscription", sanitize.UserInputString("app_url", appURL), sanitize.UserInputString("subscription_id", sub.ID))
	return true, nil
}

// DeleteSubscription removes the subscription with the id from the application
func (s *Service) DeleteSubscription(ctx context.Context, appURL string, subID string) (bool, error) {
	record, err := s.recordForURL(ctx, appURL, "delete subscription")
	if err != nil || record == nil {
		return false, err
	}
	subs := make(tables.JSONList[tables.SubscriptionColumn], 0, len(record.Subscriptions))
	for _, v := range record.Subscriptions {
		if v.ID != subID {
			subs = append(subs, v)
		}
	}
	record.Subscriptions = subs
	if err := s.store.UpdateApplication(ctx, record); err != nil {
		return false, err
	}
	s.dispatcher.Dispatch(ctx, &event.SubscriptionDeleted{
		ApplicationURL: appURL,
		SubscriptionID: subID,
	})
	s.log.Info("deleted subscription", sanitize.UserInputString("app_url", appURL), zap.Int("remaining", len(subs)))
	return true, nil
}
