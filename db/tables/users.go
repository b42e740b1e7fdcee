package tables

import (
	"time"
)

// UserTable represents the users table
type UserTable struct {
	ID             int        `db:"id"               fiql:"id,db:id"`
	Username       string     `db:"username"         fiql:"username,db:username"`
	Email          string     `db:"email"            fiql:"email,db:email"`
	Password       string     `db:"password"                                                 json:"-"`
	ConsumerOrgURL *string    `db:"consumer_org_url" fiql:"consumer_org_url,db:consumer_org_url"`
	CreatedAt      time.Time  `db:"created_at"       fiql:"created_at,db:created_at"`
	UpdatedAt      *time.Time `db:"updated_at"       fiql:"updated_at,db:updated_at"`
}
