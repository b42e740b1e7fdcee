package user

import (
	"context"
	"testing"
	"time"

	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/db"
	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/events/event"
	"github.com/eisenwinter/apicportal/modules"
	"github.com/eisenwinter/apicportal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"
)

type passwordFixture struct {
	service    *PasswordService
	accounts   *Service
	store      *mocks.UserStorer
	remote     *mocks.PasswordChanger
	modules    *mocks.ModuleChecker
	dispatcher *mocks.Dispatcher
}

func newPasswordFixture(t *testing.T, policy *config.PasswordPolicyConfiguration) *passwordFixture {
	accounts, store, dispatcher, _ := newTestService(t)
	remote := mocks.NewPasswordChanger(t)
	moduleChecker := mocks.NewModuleChecker(t)
	return &passwordFixture{
		service:    NewPasswordService(zaptest.NewLogger(t), accounts, remote, moduleChecker, policy, dispatcher),
		accounts:   accounts,
		store:      store,
		remote:     remote,
		modules:    moduleChecker,
		dispatcher: dispatcher,
	}
}

func (f *passwordFixture) resetToken(t *testing.T, ctx context.Context, userID int) string {
	f.store.On("UserByUsername", ctx, "reset-user").Return(&tables.UserTable{ID: userID, Username: "reset-user"}, nil).Once()
	token, err := f.accounts.CreateResetToken(ctx, "reset-user")
	if err != nil {
		t.Fatalf("reset token: %v", err)
	}
	return token
}

func strictPolicy() *config.PasswordPolicyConfiguration {
	return &config.PasswordPolicyConfiguration{MinLength: 8, RequireDigit: true, ShowPolicyStatus: true}
}

func TestFormAnonymousWithoutToken(t *testing.T) {
	f := newPasswordFixture(t, nil)
	form, err := f.service.Form(context.Background(), 0, "")
	assert.NoError(t, err)
	assert.Equal(t, FormModeNone, form.Mode)
}

func TestFormSelfServiceShowsPolicy(t *testing.T) {
	assert := assert.New(t)
	f := newPasswordFixture(t, strictPolicy())
	f.modules.On("Exists", modules.PasswordPolicy).Return(true)

	form, err := f.service.Form(context.Background(), 4, "")
	assert.NoError(err)
	assert.Equal(FormModeSelfService, form.Mode)
	assert.Equal(4, form.UserID)
	assert.True(form.RequireCurrent)
	assert.True(form.ShowPolicy)
	assert.Len(form.Policy, 2)
}

func TestFormPolicyHiddenWithoutModule(t *testing.T) {
	f := newPasswordFixture(t, strictPolicy())
	f.modules.On("Exists", modules.PasswordPolicy).Return(false)

	form, err := f.service.Form(context.Background(), 4, "")
	assert.NoError(t, err)
	assert.False(t, form.ShowPolicy)
	assert.Empty(t, form.Policy)
}

func TestFormResetToken(t *testing.T) {
	assert := assert.New(t)
	f := newPasswordFixture(t, nil)
	ctx := context.Background()
	token := f.resetToken(t, ctx, 1)
	f.modules.On("Exists", modules.PasswordPolicy).Return(false)

	form, err := f.service.Form(ctx, 4, token)
	assert.NoError(err)
	assert.Equal(FormModeReset, form.Mode)
	assert.Equal(1, form.UserID)
	assert.False(form.RequireCurrent)

	_, err = f.service.Form(ctx, 4, "unknown")
	assert.ErrorIs(err, ErrInvalidResetToken)
}

func TestValidatePolicyAppliesToEveryone(t *testing.T) {
	f := newPasswordFixture(t, strictPolicy())
	ctx := context.Background()
	f.modules.On("Exists", modules.PasswordPolicy).Return(true)

	err := f.service.Validate(ctx, &ChangeRequest{UserID: 4, New: "short"})
	assert.ErrorIs(t, err, ErrPasswordGuidelines)
	assert.Contains(t, err.Error(), "at least 8 characters")
}

func TestValidatePolicyOnlyWhenShown(t *testing.T) {
	f := newPasswordFixture(t, &config.PasswordPolicyConfiguration{MinLength: 20})
	f.modules.On("Exists", modules.PasswordPolicy).Return(true)
	assert.NoError(t, f.service.Validate(context.Background(), &ChangeRequest{UserID: 4, New: "short"}))
}

func TestValidateNonAdminSkipsBaseChecks(t *testing.T) {
	f := newPasswordFixture(t, nil)
	f.modules.On("Exists", modules.PasswordPolicy).Return(false)
	assert.NoError(t, f.service.Validate(context.Background(), &ChangeRequest{UserID: 4, New: "a", Confirm: "b"}))
}

func TestValidateAdmin(t *testing.T) {
	assert := assert.New(t)
	f := newPasswordFixture(t, nil)
	ctx := context.Background()
	f.modules.On("Exists", modules.PasswordPolicy).Return(false)
	f.store.On("UserByID", ctx, 1).Return(&tables.UserTable{ID: 1, Password: hashed(t, "admin")}, nil)

	assert.ErrorIs(f.service.Validate(ctx, &ChangeRequest{UserID: 1}), ErrPasswordRequired)
	assert.ErrorIs(f.service.Validate(ctx, &ChangeRequest{UserID: 1, New: "a", Confirm: "b"}), ErrPasswordMismatch)
	assert.ErrorIs(f.service.Validate(ctx, &ChangeRequest{UserID: 1, Current: "wrong", New: "a", Confirm: "a"}), ErrCurrentPassword)
	assert.NoError(f.service.Validate(ctx, &ChangeRequest{UserID: 1, Current: "admin", New: "a", Confirm: "a"}))
	// the reset variant does not ask for the current password
	assert.NoError(f.service.Validate(ctx, &ChangeRequest{UserID: 1, New: "a", Confirm: "a", ResetToken: "t"}))
}

func TestSubmitAdminStoresLocalPassword(t *testing.T) {
	assert := assert.New(t)
	f := newPasswordFixture(t, nil)
	ctx := context.Background()
	f.modules.On("Exists", modules.PasswordPolicy).Return(false)
	f.store.On("UserByID", ctx, 1).Return(&tables.UserTable{ID: 1, Password: hashed(t, "admin")}, nil)
	f.store.On("SetPassword", ctx, 1, mock.AnythingOfType("string")).Return(nil).Once()
	f.dispatcher.On("Dispatch", ctx, &event.UserPasswordChanged{UserID: 1}).Return().Once()

	ok, err := f.service.Submit(ctx, &ChangeRequest{UserID: 1, Current: "admin", New: "n3w", Confirm: "n3w"})
	assert.NoError(err)
	assert.True(ok)
	f.remote.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitNonAdminDelegatesToBackend(t *testing.T) {
	assert := assert.New(t)
	f := newPasswordFixture(t, nil)
	ctx := context.Background()
	f.modules.On("Exists", modules.PasswordPolicy).Return(false)
	f.store.On("UserByID", ctx, 4).Return(&tables.UserTable{ID: 4, Username: "andrea"}, nil)
	f.remote.On("ChangePassword", ctx, "andrea", "old", "new").Return(true, nil).Once()
	f.dispatcher.On("Dispatch", ctx, &event.UserPasswordChanged{UserID: 4}).Return().Once()

	ok, err := f.service.Submit(ctx, &ChangeRequest{UserID: 4, Current: "old", New: "new", Confirm: "new"})
	assert.NoError(err)
	assert.True(ok)
	f.store.AssertNotCalled(t, "SetPassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitRejectedByBackend(t *testing.T) {
	f := newPasswordFixture(t, nil)
	ctx := context.Background()
	f.modules.On("Exists", modules.PasswordPolicy).Return(false)
	f.store.On("UserByID", ctx, 4).Return(&tables.UserTable{ID: 4, Username: "andrea"}, nil)
	f.remote.On("ChangePassword", ctx, "andrea", "wrong", "new").Return(false, nil)

	ok, err := f.service.Submit(ctx, &ChangeRequest{UserID: 4, Current: "wrong", New: "new"})
	assert.NoError(t, err)
	assert.False(t, ok)
	f.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestSubmitUnknownUser(t *testing.T) {
	f := newPasswordFixture(t, nil)
	ctx := context.Background()
	f.modules.On("Exists", modules.PasswordPolicy).Return(false)
	f.store.On("UserByID", ctx, 12).Return(nil, db.ErrNotFound)

	ok, err := f.service.Submit(ctx, &ChangeRequest{UserID: 12, New: "x"})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSubmitAnonymousWithoutToken(t *testing.T) {
	f := newPasswordFixture(t, nil)
	_, err := f.service.Submit(context.Background(), &ChangeRequest{New: "x"})
	assert.ErrorIs(t, err, ErrEntityDoesNotExist)
}

func TestSubmitWithResetTokenConsumesIt(t *testing.T) {
	assert := assert.New(t)
	f := newPasswordFixture(t, nil)
	ctx := context.Background()
	token := f.resetToken(t, ctx, 1)
	f.modules.On("Exists", modules.PasswordPolicy).Return(false)
	f.store.On("SetPassword", ctx, 1, mock.AnythingOfType("string")).Return(nil).Once()
	f.dispatcher.On("Dispatch", ctx, &event.UserPasswordChanged{UserID: 1, ViaReset: true}).Return().Once()

	// the user id of the token wins over the submitted one
	ok, err := f.service.Submit(ctx, &ChangeRequest{UserID: 99, New: "n3w", Confirm: "n3w", ResetToken: token})
	assert.NoError(err)
	assert.True(ok)

	_, err = f.accounts.UserForResetToken(ctx, token)
	assert.ErrorIs(err, ErrInvalidResetToken)

	_, err = f.service.Submit(ctx, &ChangeRequest{New: "n3w", Confirm: "n3w", ResetToken: token})
	assert.ErrorIs(err, ErrInvalidResetToken)
}

func TestSubmitPolicyViolation(t *testing.T) {
	f := newPasswordFixture(t, &config.PasswordPolicyConfiguration{MinLength: 20, ShowPolicyStatus: true})
	ctx := context.Background()
	f.modules.On("Exists", modules.PasswordPolicy).Return(true)

	ok, err := f.service.Submit(ctx, &ChangeRequest{UserID: 4, New: "short"})
	assert.ErrorIs(t, err, ErrPasswordGuidelines)
	assert.False(t, ok)
}

func TestResetTokenExpiryDefaults(t *testing.T) {
	s := New(mocks.NewUserStorer(t), zaptest.NewLogger(t), nil, nil, mocks.NewDispatcher(t))
	assert.Equal(t, 24*time.Hour, s.tokenTTL)
}
