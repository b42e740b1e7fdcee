package user

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/sanitize"
	"go.uber.org/zap"
)

const changePasswordPath = "/account/change-password"

// ResetMailer delivers password reset links
type ResetMailer interface {
	Enabled() bool
	SendPasswordResetMail(email string, username string, link string, expiry time.Duration) error
}

// ResetAccounts issues reset tokens for local accounts
type ResetAccounts interface {
	ByUsername(ctx context.Context, username string) (*tables.UserTable, error)
	CreateResetToken(ctx context.Context, username string) (string, error)
	ResetTokenExpiry() time.Duration
}

// ResetLink is an issued one time change password link
type ResetLink struct {
	Link   string    `json:"link"`
	Mailed bool      `json:"mailed"`
	Expiry time.Time `json:"expires_at"`
}

// ResetLinks builds one time change password links and optionally mails them
type ResetLinks struct {
	log      *zap.Logger
	accounts ResetAccounts
	mailer   ResetMailer
	site     string
}

func NewResetLinks(log *zap.Logger, accounts ResetAccounts, mailer ResetMailer, site string) *ResetLinks {
	return &ResetLinks{
		log:      log.Named("reset_links"),
		accounts: accounts,
		mailer:   mailer,
		site:     strings.TrimSuffix(site, "/"),
	}
}

// Link returns the change password url carrying the token
func (r *ResetLinks) Link(token string) string {
	return r.site + changePasswordPath + "?pass-reset-token=" + url.QueryEscape(token)
}

// Issue creates a reset token for the user, with notify the link is mailed
// to the address of the account when mail delivery is enabled
func (r *ResetLinks) Issue(ctx context.Context, username string, notify bool) (*ResetLink, error) {
	u, err := r.accounts.ByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	token, err := r.accounts.CreateResetToken(ctx, u.Username)
	if err != nil {
		return nil, err
	}
	expiry := r.accounts.ResetTokenExpiry()
	res := &ResetLink{
		Link:   r.Link(token),
		Expiry: time.Now().UTC().Add(expiry),
	}
	if !notify || r.mailer == nil || !r.mailer.Enabled() {
		return res, nil
	}
	if u.Email == "" {
		r.log.Warn("user has no email address, reset link not mailed", zap.Int("user_id", u.ID))
		return res, nil
	}
	if err := r.mailer.SendPasswordResetMail(u.Email, u.Username, res.Link, expiry); err != nil {
		r.log.Error("unable to mail reset link", sanitize.UserInputString("username", username), zap.Error(err))
		return res, err
	}
	res.Mailed = true
	return res, nil
}
