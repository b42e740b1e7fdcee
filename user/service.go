// Package user manages local portal accounts and password changes
package user

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/db"
	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/events"
	"github.com/eisenwinter/apicportal/events/event"
	"github.com/eisenwinter/apicportal/generator"
	"github.com/eisenwinter/apicportal/kv"
	"github.com/eisenwinter/apicportal/sanitize"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEntityDoesNotExist  = errors.New("entity does not exist")
	ErrEntityAlreadyExists = errors.New("entity already exists in system")
	ErrInvalidResetToken   = errors.New("password reset token is invalid or has expired")
	ErrPasswordGuidelines  = errors.New("password doesnt match password guidelines")
	ErrMissingUsername     = errors.New("username must not be empty")
)

// ResetTokenCollection is the key value collection holding password reset tokens
const ResetTokenCollection = "user"

const (
	resetTokenPrefix        = "pass-reset:"
	defaultResetTokenExpiry = 24 * time.Hour
)

// UserStorer persists local accounts
type UserStorer interface {
	UserByID(ctx context.Context, id int) (*tables.UserTable, error)
	UserByUsername(ctx context.Context, username string) (*tables.UserTable, error)
	InsertUser(ctx context.Context, username string, email string, passwordHash string, consumerOrgURL *string) (int, error)
	SetPassword(ctx context.Context, userID int, passwordHash string) error
}

// Dispatcher dispatches events
type Dispatcher interface {
	Dispatch(ctx context.Context, event events.Event)
}

func New(store UserStorer,
	logger *zap.Logger,
	cfg *config.KeyValueConfiguration,
	tokens kv.ExpirableStore,
	dispatcher Dispatcher) *Service {
	ttl := defaultResetTokenExpiry
	if cfg != nil && cfg.ResetTokenExpiry > 0 {
		ttl = cfg.ResetTokenExpiry
	}
	return &Service{
		store:      store,
		log:        logger.Named("user_service"),
		tokens:     tokens,
		tokenTTL:   ttl,
		generator:  generator.New(),
		dispatcher: dispatcher,
		cost:       bcrypt.DefaultCost,
	}
}

// Service handles local accounts and password reset tokens
type Service struct {
	store      UserStorer
	log        *zap.Logger
	tokens     kv.ExpirableStore
	tokenTTL   time.Duration
	generator  *generator.RandomTokenGenerator
	dispatcher Dispatcher
	cost       int
}

// ByID returns the user with the given id
func (s *Service) ByID(ctx context.Context, id int) (*tables.UserTable, error) {
	u, err := s.store.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrEntityDoesNotExist
		}
		s.log.Error("Unable to get user by id", zap.Int("user_id", id), zap.Error(err))
		return nil, err
	}
	return u, nil
}

// ByUsername returns the user with the given username
func (s *Service) ByUsername(ctx context.Context, username string) (*tables.UserTable, error) {
	u, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrEntityDoesNotExist
		}
		s.log.Error("Unable to get user by username", sanitize.UserInputString("username", username), zap.Error(err))
		return nil, err
	}
	return u, nil
}

// ResetTokenExpiry is the lifetime of issued reset tokens
func (s *Service) ResetTokenExpiry() time.Duration {
	return s.tokenTTL
}

func (s *Service) hash(password string) (string, error) {
	pw, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// CreateUser creates a local account, the consumer organization is optional
func (s *Service) CreateUser(ctx context.Context,
	username string,
	email string,
	password string,
	consumerOrgURL *string) (int, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, ErrMissingUsername
	}
	if password == "" {
		return 0, ErrPasswordGuidelines
	}
	pw, err := s.hash(password)
	if err != nil {
		return 0, err
	}
	id, err := s.store.InsertUser(ctx, username, email, pw, consumerOrgURL)
	if err != nil {
		if errors.Is(err, db.ErrAlreadyExists) {
			return 0, ErrEntityAlreadyExists
		}
		return 0, err
	}
	s.log.Info("user created", sanitize.UserInputString("username", username), zap.Int("user_id", id))
	return id, nil
}

// SetPassword stores a new local password for the user
func (s *Service) SetPassword(ctx context.Context, userID int, password string) error {
	if err := s.setPassword(ctx, userID, password); err != nil {
		return err
	}
	s.dispatcher.Dispatch(ctx, &event.UserPasswordChanged{UserID: userID})
	return nil
}

func (s *Service) setPassword(ctx context.Context, userID int, password string) error {
	if password == "" {
		return ErrPasswordGuidelines
	}
	pw, err := s.hash(password)
	if err != nil {
		return err
	}
	if err := s.store.SetPassword(ctx, userID, pw); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrEntityDoesNotExist
		}
		return err
	}
	return nil
}

// CheckPassword reports whether password matches the stored hash of the user
func (s *Service) CheckPassword(ctx context.Context, userID int, password string) (bool, error) {
	u, err := s.ByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil, nil
}

// CreateResetToken issues a one time password reset token for the user
func (s *Service) CreateResetToken(ctx context.Context, username string) (string, error) {
	u, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", ErrEntityDoesNotExist
		}
		return "", err
	}
	token := string(s.generator.CreateSecureToken())
	if err := s.tokens.SetWithExpire(ctx, resetTokenPrefix+token, []byte(strconv.Itoa(u.ID)), s.tokenTTL); err != nil {
		s.log.Error("could not store password reset token", zap.Int("user_id", u.ID), zap.Error(err))
		return "", err
	}
	s.log.Info("password reset token issued", zap.Int("user_id", u.ID), zap.Duration("expiry", s.tokenTTL))
	return token, nil
}

// UserForResetToken returns the user id the token was issued for
func (s *Service) UserForResetToken(ctx context.Context, token string) (int, error) {
	if token == "" {
		return 0, ErrInvalidResetToken
	}
	data, err := s.tokens.Get(ctx, resetTokenPrefix+token)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return 0, ErrInvalidResetToken
		}
		return 0, err
	}
	id, err := strconv.Atoi(string(data))
	if err != nil || id <= 0 {
		s.log.Warn("password reset token with corrupt payload", zap.Error(err))
		return 0, ErrInvalidResetToken
	}
	return id, nil
}

// ConsumeResetToken invalidates the token
func (s *Service) ConsumeResetToken(ctx context.Context, token string) {
	if err := s.tokens.Delete(ctx, resetTokenPrefix+token); err != nil && !errors.Is(err, kv.ErrNotFound) {
		s.log.Warn("could not remove password reset token", zap.Error(err))
	}
}
