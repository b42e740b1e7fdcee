package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/events/event"
	"github.com/eisenwinter/apicportal/identity"
	"github.com/eisenwinter/apicportal/metrics"
	"github.com/eisenwinter/apicportal/modules"
	"go.uber.org/zap"
)

var (
	ErrPasswordRequired  = errors.New("a new password is required")
	ErrPasswordMismatch  = errors.New("the specified passwords do not match")
	ErrCurrentPassword   = errors.New("the current password is missing or incorrect")
	ErrNoPasswordBackend = errors.New("no password backend configured")
)

// FormMode tells which variant of the change password form applies
type FormMode string

const (
	// FormModeNone means there is nothing to render, the caller is anonymous without a reset token
	FormModeNone FormMode = "none"
	// FormModeReset is the one time login variant reached through a reset token
	FormModeReset FormMode = "reset"
	// FormModeSelfService asks a signed in user for the current and the new password
	FormModeSelfService FormMode = "self_service"
)

// ModuleChecker answers whether an optional module is enabled
type ModuleChecker interface {
	Exists(name string) bool
}

// PasswordChanger changes passwords of users managed by the api management backend
type PasswordChanger interface {
	ChangePassword(ctx context.Context, username string, oldPassword string, newPassword string) (bool, error)
}

// Form describes the change password form for the caller
type Form struct {
	Mode           FormMode    `json:"mode"`
	UserID         int         `json:"-"`
	RequireCurrent bool        `json:"require_current"`
	ShowPolicy     bool        `json:"show_policy"`
	Policy         []PolicyRow `json:"policy,omitempty"`
}

// ChangeRequest is a submitted change password form
type ChangeRequest struct {
	UserID     int
	Current    string
	New        string
	Confirm    string
	ResetToken string
}

// PasswordService implements the change password form
type PasswordService struct {
	log        *zap.Logger
	accounts   *Service
	remote     PasswordChanger
	modules    ModuleChecker
	policy     *config.PasswordPolicyConfiguration
	dispatcher Dispatcher
}

func NewPasswordService(log *zap.Logger,
	accounts *Service,
	remote PasswordChanger,
	modules ModuleChecker,
	policy *config.PasswordPolicyConfiguration,
	dispatcher Dispatcher) *PasswordService {
	if policy == nil {
		policy = &config.PasswordPolicyConfiguration{}
	}
	return &PasswordService{
		log:        log.Named("password_service"),
		accounts:   accounts,
		remote:     remote,
		modules:    modules,
		policy:     policy,
		dispatcher: dispatcher,
	}
}

func (p *PasswordService) showPolicy() bool {
	return p.modules.Exists(modules.PasswordPolicy) && p.policy.ShowPolicyStatus
}

// PolicyStatus evaluates the password against the configured policy
func (p *PasswordService) PolicyStatus(password string) []PolicyRow {
	return PolicyStatus(p.policy, password)
}

// Form returns the form variant for the user, a non empty reset token takes
// precedence, user id 0 is an anonymous caller
func (p *PasswordService) Form(ctx context.Context, userID int, resetToken string) (*Form, error) {
	form := &Form{Mode: FormModeNone}
	switch {
	case resetToken != "":
		id, err := p.accounts.UserForResetToken(ctx, resetToken)
		if err != nil {
			return nil, err
		}
		form.Mode = FormModeReset
		form.UserID = id
	case userID > 0:
		form.Mode = FormModeSelfService
		form.UserID = userID
		form.RequireCurrent = true
	default:
		return form, nil
	}
	if p.showPolicy() {
		form.ShowPolicy = true
		form.Policy = p.PolicyStatus("")
	}
	return form, nil
}

// Validate checks the request, the password policy applies to everyone as long as
// its status is shown on the form while the base checks only apply to the site
// administrator whose password is kept locally
func (p *PasswordService) Validate(ctx context.Context, req *ChangeRequest) error {
	if p.showPolicy() {
		if failed := Failed(p.PolicyStatus(req.New)); len(failed) > 0 {
			return fmt.Errorf("%w: %s", ErrPasswordGuidelines, strings.Join(failed, " "))
		}
	}
	if req.UserID != identity.AdminUserID {
		p.log.Info("change password form validation for non-admin user")
		return nil
	}
	p.log.Info("change password form validation for admin user")
	if req.New == "" {
		return ErrPasswordRequired
	}
	if req.New != req.Confirm {
		return ErrPasswordMismatch
	}
	if req.ResetToken != "" {
		return nil
	}
	ok, err := p.accounts.CheckPassword(ctx, req.UserID, req.Current)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCurrentPassword
	}
	return nil
}

// Submit validates and applies the request, the returned bool is false if the
// backend rejected the change
func (p *PasswordService) Submit(ctx context.Context, req *ChangeRequest) (bool, error) {
	viaReset := req.ResetToken != ""
	if viaReset {
		id, err := p.accounts.UserForResetToken(ctx, req.ResetToken)
		if err != nil {
			return false, err
		}
		req.UserID = id
	}
	if req.UserID == 0 {
		return false, ErrEntityDoesNotExist
	}
	if err := p.Validate(ctx, req); err != nil {
		return false, err
	}

	ok, err := p.apply(ctx, req)
	if err != nil {
		metrics.RecordPasswordChange(false)
		return false, err
	}
	metrics.RecordPasswordChange(ok)
	if !ok {
		return false, nil
	}
	if viaReset {
		p.accounts.ConsumeResetToken(ctx, req.ResetToken)
	}
	p.dispatcher.Dispatch(ctx, &event.UserPasswordChanged{
		UserID:   req.UserID,
		ViaReset: viaReset,
	})
	return true, nil
}

func (p *PasswordService) apply(ctx context.Context, req *ChangeRequest) (bool, error) {
	if req.UserID == identity.AdminUserID {
		p.log.Info("change password form submit for admin user")
		if err := p.accounts.setPassword(ctx, req.UserID, req.New); err != nil {
			return false, err
		}
		return true, nil
	}
	u, err := p.accounts.ByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, ErrEntityDoesNotExist) {
			p.log.Warn("password change for unknown user", zap.Int("user_id", req.UserID))
			return false, nil
		}
		return false, err
	}
	if p.remote == nil {
		return false, ErrNoPasswordBackend
	}
	p.log.Info("change password form submit for non-admin user", zap.Int("user_id", req.UserID))
	return p.remote.ChangePassword(ctx, u.Username, req.Current, req.New)
}
