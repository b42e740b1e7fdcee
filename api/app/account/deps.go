package account

import (
	"context"

	"github.com/eisenwinter/apicportal/user"
)

// PasswordForms builds and submits the change password form
type PasswordForms interface {
	Form(ctx context.Context, userID int, resetToken string) (*user.Form, error)
	Submit(ctx context.Context, req *user.ChangeRequest) (bool, error)
}
