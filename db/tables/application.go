package tables

import (
	"time"

	"github.com/google/uuid"
)

// CredentialColumn is a single application credential, it has no secret on purpose
type CredentialColumn struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	URL      string `json:"url,omitempty"`
}

// SubscriptionColumn references a product plan an application is subscribed to
type SubscriptionColumn struct {
	ID         string `json:"id"`
	ProductURL string `json:"product_url"`
	Plan       string `json:"plan"`
	State      string `json:"state"`
}

// ApplicationTable represents the applications table
type ApplicationTable struct {
	ID                uuid.UUID                    `db:"id"                 fiql:"id,db:id"`
	ApplicationID     string                       `db:"application_id"     fiql:"application_id,db:application_id"`
	Title             string                       `db:"title"              fiql:"title,db:title"`
	Hostname          string                       `db:"apic_hostname"`
	ProviderID        string                       `db:"apic_provider_id"`
	CatalogID         string                       `db:"apic_catalog_id"`
	Name              string                       `db:"application_name"   fiql:"name,db:application_name"`
	Summary           string                       `db:"apic_summary"`
	ConsumerOrgURL    string                       `db:"consumer_org_url"   fiql:"consumer_org_url,db:consumer_org_url"`
	Enabled           bool                         `db:"enabled"`
	RedirectEndpoints JSONList[string]             `db:"redirect_endpoints"`
	URL               string                       `db:"apic_url"           fiql:"url,db:apic_url"`
	State             string                       `db:"apic_state"         fiql:"state,db:apic_state"`
	LifecycleState    string                       `db:"lifecycle_state"    fiql:"lifecycle_state,db:lifecycle_state"`
	LifecyclePending  *string                      `db:"lifecycle_pending"`
	ClientType        string                       `db:"client_type"`
	Credentials       JSONList[CredentialColumn]   `db:"credentials"`
	Subscriptions     JSONList[SubscriptionColumn] `db:"subscriptions"`
	Data              MapStructure                 `db:"application_data"`
	CustomFields      MapStructure                 `db:"custom_fields"`
	Image             *string                      `db:"image"`
	CreatedAt         time.Time                    `db:"created_at"         fiql:"created_at,db:created_at"`
	UpdatedAt         *time.Time                   `db:"updated_at"         fiql:"updated_at,db:updated_at"`
}

// ChangedTime is the last time the row was written
func (a *ApplicationTable) ChangedTime() time.Time {
	if a.UpdatedAt != nil {
		return *a.UpdatedAt
	}
	return a.CreatedAt
}
