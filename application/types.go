package application

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/eisenwinter/apicportal/db/tables"
)

// application states
const (
	StateEnabled  = "enabled"
	StateDisabled = "disabled"
)

// lifecycle states
const (
	LifecycleDevelopment = "DEVELOPMENT"
	LifecycleProduction  = "PRODUCTION"
)

// EventInternal marks writes that must not notify anyone
const EventInternal = "internal"

// EventCreate marks writes caused by a create action
const EventCreate = "create"

// ClientTypeConfidential is the only client type the backend knows
const ClientTypeConfidential = "confidential"

// DefaultTitle is used for payloads carrying neither title nor name
const DefaultTitle = "No name"

const maxTitleLength = 255

const secretKey = "client_secret"

// Payload is a decoded application document as sent by the backend
type Payload map[string]interface{}

// Has reports whether key is present with a non null value
func (p Payload) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// String returns the value of key as string, empty if it is missing
func (p Payload) String(key string) string {
	return stringValue(p[key])
}

// List returns the value of key if it is a list
func (p Payload) List(key string) []interface{} {
	if l, ok := p[key].([]interface{}); ok {
		return l
	}
	return nil
}

// StringList returns the value of key as list of strings
func (p Payload) StringList(key string) []string {
	switch l := p[key].(type) {
	case []string:
		return l
	case []interface{}:
		res := make([]string, 0, len(l))
		for _, v := range l {
			if v == nil {
				continue
			}
			res = append(res, stringValue(v))
		}
		return res
	}
	return []string{}
}

// Timestamp returns the remote change timestamp in unix seconds
func (p Payload) Timestamp() (int64, bool) {
	switch v := p["timestamp"].(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		if f, err := v.Float64(); err == nil {
			return int64(f), true
		}
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}

func stringValue(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}

// CredentialInput is an inbound credential, its secret is never persisted
type CredentialInput struct {
	ID           string `json:"id"            validate:"required"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret,omitempty"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	URL          string `json:"url"`
}

// SubscriptionInput is an inbound subscription reference
type SubscriptionInput struct {
	ID         string `json:"id"          validate:"required"`
	ProductURL string `json:"product_url" validate:"required"`
	Plan       string `json:"plan"        validate:"required"`
	State      string `json:"state"`
}

// SupersededBy points to the plan replacing a subscribed plan
type SupersededBy struct {
	ProductRef     string `json:"product_ref"`
	Plan           string `json:"plan"`
	PlanTitle      string `json:"plan_title"`
	ProductTitle   string `json:"product_title"`
	ProductVersion string `json:"product_version"`
}

// SubscriptionView is a subscription resolved against its product
type SubscriptionView struct {
	ProductTitle   string        `json:"product_title"`
	ProductVersion string        `json:"product_version"`
	ProductID      string        `json:"product_id"`
	ProductImage   string        `json:"product_image"`
	PlanName       string        `json:"plan_name"`
	PlanTitle      string        `json:"plan_title"`
	State          string        `json:"state"`
	SubscriptionID string        `json:"subscription_id"`
	Cost           string        `json:"cost"`
	SupersededBy   *SupersededBy `json:"superseded_by_product"`
}

// Export is the outbound json representation of an application
type Export struct {
	ID                string                      `json:"id"`
	ApplicationID     string                      `json:"application_id"`
	Title             string                      `json:"title"`
	Name              string                      `json:"application_name"`
	Summary           string                      `json:"apic_summary"`
	Hostname          string                      `json:"apic_hostname"`
	ProviderID        string                      `json:"apic_provider_id"`
	CatalogID         string                      `json:"apic_catalog_id"`
	URL               string                      `json:"apic_url"`
	State             string                      `json:"apic_state"`
	ConsumerOrgURL    string                      `json:"application_consumer_org_url"`
	Enabled           bool                        `json:"application_enabled"`
	RedirectEndpoints []string                    `json:"application_redirect_endpoints"`
	LifecycleState    string                      `json:"application_lifecycle_state"`
	LifecyclePending  *string                     `json:"application_lifecycle_pending"`
	ClientType        string                      `json:"application_client_type"`
	Credentials       []tables.CredentialColumn   `json:"application_credentials"`
	Subscriptions     []tables.SubscriptionColumn `json:"application_subscriptions"`
	Data              map[string]interface{}      `json:"application_data"`
	CustomFields      map[string]interface{}      `json:"custom_fields"`
	Image             *string                     `json:"application_image"`
	Created           int64                       `json:"created"`
	Changed           int64                       `json:"changed"`
}

func exportFromTable(t *tables.ApplicationTable) *Export {
	return &Export{
		ID:                t.ID.String(),
		ApplicationID:     t.ApplicationID,
		Title:             t.Title,
		Name:              t.Name,
		Summary:           t.Summary,
		Hostname:          t.Hostname,
		ProviderID:        t.ProviderID,
		CatalogID:         t.CatalogID,
		URL:               t.URL,
		State:             t.State,
		ConsumerOrgURL:    t.ConsumerOrgURL,
		Enabled:           t.Enabled,
		RedirectEndpoints: []string(t.RedirectEndpoints),
		LifecycleState:    t.LifecycleState,
		LifecyclePending:  t.LifecyclePending,
		ClientType:        t.ClientType,
		Credentials:       []tables.CredentialColumn(t.Credentials),
		Subscriptions:     []tables.SubscriptionColumn(t.Subscriptions),
		Data:              t.Data,
		CustomFields:      t.CustomFields,
		Image:             t.Image,
		Created:           t.CreatedAt.Unix(),
		Changed:           t.ChangedTime().Unix(),
	}
}

// IBMFields lists the fields owned by the synchronization, everything else is a custom field
func IBMFields() []string {
	return []string{
		"apic_hostname",
		"apic_provider_id",
		"apic_catalog_id",
		"apic_summary",
		"apic_url",
		"apic_state",
		"application_image",
		"application_id",
		"application_consumer_org_url",
		"application_enabled",
		"application_redirect_endpoints",
		"application_data",
		"application_credentials",
		"application_subscriptions",
		"application_client_type",
		"application_name",
		"application_lifecycle_state",
		"application_lifecycle_pending",
	}
}

// CustomFields returns the custom fields of a submitted form, dropping every owned field
// and every client_secret
func CustomFields(values map[string]interface{}) tables.MapStructure {
	owned := make(map[string]struct{})
	for _, f := range IBMFields() {
		owned[f] = struct{}{}
	}
	for _, f := range []string{"title", "id", "status", "created", secretKey} {
		owned[f] = struct{}{}
	}
	res := make(tables.MapStructure)
	for k, v := range values {
		if _, ok := owned[k]; ok {
			continue
		}
		res[k] = StripSecrets(v)
	}
	return res
}
