package user

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"
)

func TestResetLinkFormat(t *testing.T) {
	r := NewResetLinks(zaptest.NewLogger(t), nil, nil, "https://portal.example.com/")
	assert.Equal(t,
		"https://portal.example.com/account/change-password?pass-reset-token=a%2Bb",
		r.Link("a+b"))
}

func TestIssueWithoutNotify(t *testing.T) {
	ctx := context.Background()
	accounts := mocks.NewResetAccounts(t)
	mailer := mocks.NewResetMailer(t)
	accounts.On("ByUsername", ctx, "alice").Return(&tables.UserTable{ID: 4, Username: "alice", Email: "alice@example.com"}, nil)
	accounts.On("CreateResetToken", ctx, "alice").Return("tok", nil)
	accounts.On("ResetTokenExpiry").Return(time.Hour)

	r := NewResetLinks(zaptest.NewLogger(t), accounts, mailer, "https://portal.example.com")
	link, err := r.Issue(ctx, "alice", false)
	assert.NoError(t, err)
	assert.False(t, link.Mailed)
	assert.True(t, strings.HasSuffix(link.Link, "pass-reset-token=tok"))
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), link.Expiry, time.Minute)
	mailer.AssertNotCalled(t, "SendPasswordResetMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIssueMailsLink(t *testing.T) {
	ctx := context.Background()
	accounts := mocks.NewResetAccounts(t)
	mailer := mocks.NewResetMailer(t)
	accounts.On("ByUsername", ctx, "alice").Return(&tables.UserTable{ID: 4, Username: "alice", Email: "alice@example.com"}, nil)
	accounts.On("CreateResetToken", ctx, "alice").Return("tok", nil)
	accounts.On("ResetTokenExpiry").Return(24 * time.Hour)
	mailer.On("Enabled").Return(true)
	mailer.On("SendPasswordResetMail", "alice@example.com", "alice",
		"https://portal.example.com/account/change-password?pass-reset-token=tok", 24*time.Hour).Return(nil).Once()

	r := NewResetLinks(zaptest.NewLogger(t), accounts, mailer, "https://portal.example.com")
	link, err := r.Issue(ctx, "alice", true)
	assert.NoError(t, err)
	assert.True(t, link.Mailed)
}

func TestIssueSkipsMailWhenDisabled(t *testing.T) {
	ctx := context.Background()
	accounts := mocks.NewResetAccounts(t)
	mailer := mocks.NewResetMailer(t)
	accounts.On("ByUsername", ctx, "alice").Return(&tables.UserTable{ID: 4, Username: "alice", Email: "alice@example.com"}, nil)
	accounts.On("CreateResetToken", ctx, "alice").Return("tok", nil)
	accounts.On("ResetTokenExpiry").Return(time.Hour)
	mailer.On("Enabled").Return(false)

	r := NewResetLinks(zaptest.NewLogger(t), accounts, mailer, "https://portal.example.com")
	link, err := r.Issue(ctx, "alice", true)
	assert.NoError(t, err)
	assert.False(t, link.Mailed)
}

func TestIssueWithoutEmailAddress(t *testing.T) {
	ctx := context.Background()
	accounts := mocks.NewResetAccounts(t)
	mailer := mocks.NewResetMailer(t)
	accounts.On("ByUsername", ctx, "bob").Return(&tables.UserTable{ID: 5, Username: "bob"}, nil)
	accounts.On("CreateResetToken", ctx, "bob").Return("tok", nil)
	accounts.On("ResetTokenExpiry").Return(time.Hour)
	mailer.On("Enabled").Return(true)

	r := NewResetLinks(zaptest.NewLogger(t), accounts, mailer, "https://portal.example.com")
	link, err := r.Issue(ctx, "bob", true)
	assert.NoError(t, err)
	assert.False(t, link.Mailed)
}

func TestIssueMailFailure(t *testing.T) {
	ctx := context.Background()
	accounts := mocks.NewResetAccounts(t)
	mailer := mocks.NewResetMailer(t)
	accounts.On("ByUsername", ctx, "alice").Return(&tables.UserTable{ID: 4, Username: "alice", Email: "alice@example.com"}, nil)
	accounts.On("CreateResetToken", ctx, "alice").Return("tok", nil)
	accounts.On("ResetTokenExpiry").Return(time.Hour)
	mailer.On("Enabled").Return(true)
	mailer.On("SendPasswordResetMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	r := NewResetLinks(zaptest.NewLogger(t), accounts, mailer, "https://portal.example.com")
	link, err := r.Issue(ctx, "alice", true)
	assert.Error(t, err)
	assert.NotNil(t, link)
	assert.False(t, link.Mailed)
}

func TestIssueUnknownUser(t *testing.T) {
	ctx := context.Background()
	accounts := mocks.NewResetAccounts(t)
	accounts.On("ByUsername", ctx, "ghost").Return(nil, ErrEntityDoesNotExist)

	r := NewResetLinks(zaptest.NewLogger(t), accounts, nil, "https://portal.example.com")
	_, err := r.Issue(ctx, "ghost", true)
	assert.ErrorIs(t, err, ErrEntityDoesNotExist)
}
