package meta

import "github.com/eisenwinter/apicportal/user"

// PolicyStatuser evaluates passwords against the configured policy
type PolicyStatuser interface {
	PolicyStatus(password string) []user.PolicyRow
}

// ModuleLister lists the enabled optional modules
type ModuleLister interface {
	Enabled() []string
}
