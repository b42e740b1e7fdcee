package manage

import (
	"net/http"
	"time"

	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/google/uuid"
)

// PaginationResponse is a page of a list query
type PaginationResponse struct {
	Total   int         `json:"total"`
	Entries interface{} `json:"entries"`
}

func (p *PaginationResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type ApplicationDTO struct {
	ID             uuid.UUID  `json:"id"`
	ApplicationID  string     `json:"application_id"`
	Title          string     `json:"title"`
	Name           string     `json:"name"`
	URL            string     `json:"url"`
	ConsumerOrgURL string     `json:"consumer_org_url"`
	State          string     `json:"state"`
	LifecycleState string     `json:"lifecycle_state"`
	Enabled        bool       `json:"enabled"`
	Credentials    int        `json:"credentials"`
	Subscriptions  int        `json:"subscriptions"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func (a *ApplicationDTO) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func applicationDTOfromDB(t *tables.ApplicationTable) *ApplicationDTO {
	return &ApplicationDTO{
		ID:             t.ID,
		ApplicationID:  t.ApplicationID,
		Title:          t.Title,
		Name:           t.Name,
		URL:            t.URL,
		ConsumerOrgURL: t.ConsumerOrgURL,
		State:          t.State,
		LifecycleState: t.LifecycleState,
		Enabled:        t.Enabled,
		Credentials:    len(t.Credentials),
		Subscriptions:  len(t.Subscriptions),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

type UserDTO struct {
	ID             int        `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	ConsumerOrgURL *string    `json:"consumer_org_url"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func (u *UserDTO) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func userDTOfromDB(t *tables.UserTable) *UserDTO {
	return &UserDTO{
		ID:             t.ID,
		Username:       t.Username,
		Email:          t.Email,
		ConsumerOrgURL: t.ConsumerOrgURL,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
