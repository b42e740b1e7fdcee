package management

import (
	"context"

	"github.com/eisenwinter/apicportal/manage"
	"github.com/eisenwinter/apicportal/user"
)

// Lister enables querrying paginated
// lists from the underlying datasource
type Lister interface {
	List(
		ctx context.Context,
		page int,
		pageSize int,
		q string,
		sort string,
	) (*manage.PaginationResponse, error)
}

// ApplicationService enables listing synchronized applications
type ApplicationService interface {
	Lister
}

// UserService enables listing portal users
type UserService interface {
	Lister
	ByID(ctx context.Context, userID int) (*manage.UserDTO, error)
}

// ModuleRemover stages and deletes custom module directories
type ModuleRemover interface {
	Installed() ([]string, error)
	Stage(ctx context.Context, userID int, modules []string) error
	Staged(ctx context.Context, userID int) ([]string, error)
	Confirm(ctx context.Context, userID int) (bool, error)
}

// ResetLinkIssuer issues one time change password links
type ResetLinkIssuer interface {
	Issue(ctx context.Context, username string, notify bool) (*user.ResetLink, error)
}
