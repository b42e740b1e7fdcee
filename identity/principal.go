// Package identity carries the acting portal user through a request
package identity

import (
	"context"
)

// AdminUserID is the id of the site administrator
const AdminUserID = 1

// PermissionEditAnyApplication allows to see and edit every application
const PermissionEditAnyApplication = "edit any application content"

// Principal is the acting user of a request
type Principal struct {
	UserID         int
	Username       string
	ConsumerOrgURL string
	Permissions    []string
}

// Anonymous is the principal of unauthenticated requests
var Anonymous = &Principal{}

// IsAnonymous reports whether no user is signed in
func (p *Principal) IsAnonymous() bool {
	return p == nil || p.UserID == 0
}

// IsAdmin reports whether the principal is the site administrator
func (p *Principal) IsAdmin() bool {
	return p != nil && p.UserID == AdminUserID
}

// HasConsumerOrg reports whether the principal acts for a consumer organization
func (p *Principal) HasConsumerOrg() bool {
	return p != nil && p.ConsumerOrgURL != ""
}

// HasPermission reports whether the principal was granted the permission
func (p *Principal) HasPermission(permission string) bool {
	if p == nil {
		return false
	}
	for _, v := range p.Permissions {
		if v == permission {
			return true
		}
	}
	return false
}

type contextKey struct {
	name string
}

var principalContextKey = &contextKey{"Principal"}

// WithPrincipal stores the principal in the context
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// FromContext returns the principal of the context, Anonymous if there is none
func FromContext(ctx context.Context) *Principal {
	if p, ok := ctx.Value(principalContextKey).(*Principal); ok && p != nil {
		return p
	}
	return Anonymous
}
