package applications

import (
	"context"

	"github.com/eisenwinter/apicportal/application"
	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/google/uuid"
)

// ApplicationService is the application synchronizer
type ApplicationService interface {
	CreateOrUpdate(ctx context.Context, payload application.Payload, ev string, custom tables.MapStructure) (bool, error)
	FetchFromAPIC(ctx context.Context, appURL string) (application.Payload, error)
	DeleteByID(ctx context.Context, applicationID string, ev string) (bool, error)
	DeleteByURL(ctx context.Context, url string, ev string) (bool, error)
	DeleteNode(ctx context.Context, id uuid.UUID, ev string) (bool, error)
	CreateOrUpdateCredential(ctx context.Context, appURL string, cred *application.CredentialInput) (bool, error)
	DeleteCredential(ctx context.Context, appURL string, credID string) (bool, error)
	CreateOrUpdateSubscription(ctx context.Context, appURL string, sub *application.SubscriptionInput) (bool, error)
	DeleteSubscription(ctx context.Context, appURL string, subID string) (bool, error)
	ListApplications(ctx context.Context) ([]uuid.UUID, error)
	ApplicationAsJSON(ctx context.Context, url string) (string, error)
	ByID(ctx context.Context, id uuid.UUID) (*tables.ApplicationTable, error)
	Subscriptions(ctx context.Context, record *tables.ApplicationTable) ([]*application.SubscriptionView, error)
	ImageForApp(record *tables.ApplicationTable, name string) string
	PlaceholderImage(name string) string
	SetImage(ctx context.Context, appURL string, image *string) (bool, error)
	InvalidateCaches(ctx context.Context)
}
