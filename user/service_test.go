package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/db"
	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/events/event"
	"github.com/eisenwinter/apicportal/kv"
	"github.com/eisenwinter/apicportal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *mocks.UserStorer, *mocks.Dispatcher, *kv.MemoryStore) {
	dataStore := mocks.NewUserStorer(t)
	dispatcher := mocks.NewDispatcher(t)
	tokens := kv.NewMemoryStore()
	service := New(dataStore, zaptest.NewLogger(t), &config.KeyValueConfiguration{ResetTokenExpiry: time.Minute}, tokens, dispatcher)
	service.cost = bcrypt.MinCost
	return service, dataStore, dispatcher, tokens
}

func hashed(t *testing.T, password string) string {
	pw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(pw)
}

func TestCreateUser(t *testing.T) {
	assert := assert.New(t)
	service, dataStore, _, _ := newTestService(t)
	ctx := context.Background()
	org := "/consumer-orgs/1/2/3"
	dataStore.On("InsertUser", ctx, "andrea", "andrea@example.com", mock.MatchedBy(func(h string) bool {
		return bcrypt.CompareHashAndPassword([]byte(h), []byte("s3cret")) == nil
	}), &org).Return(7, nil)

	id, err := service.CreateUser(ctx, " andrea ", "andrea@example.com", "s3cret", &org)
	assert.NoError(err)
	assert.Equal(7, id)
}

func TestCreateUserValidation(t *testing.T) {
	service, _, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := service.CreateUser(ctx, " ", "", "pw", nil)
	assert.ErrorIs(t, err, ErrMissingUsername)
	_, err = service.CreateUser(ctx, "andrea", "", "", nil)
	assert.ErrorIs(t, err, ErrPasswordGuidelines)
}

func TestCreateUserAlreadyExists(t *testing.T) {
	service, dataStore, _, _ := newTestService(t)
	ctx := context.Background()
	dataStore.On("InsertUser", ctx, "andrea", "", mock.Anything, (*string)(nil)).Return(0, db.ErrAlreadyExists)
	_, err := service.CreateUser(ctx, "andrea", "", "pw", nil)
	assert.ErrorIs(t, err, ErrEntityAlreadyExists)
}

func TestSetPasswordDispatches(t *testing.T) {
	service, dataStore, dispatcher, _ := newTestService(t)
	ctx := context.Background()
	dataStore.On("SetPassword", ctx, 1, mock.AnythingOfType("string")).Return(nil)
	dispatcher.On("Dispatch", ctx, &event.UserPasswordChanged{UserID: 1}).Return().Once()
	assert.NoError(t, service.SetPassword(ctx, 1, "new"))
}

func TestSetPasswordUnknownUser(t *testing.T) {
	service, dataStore, _, _ := newTestService(t)
	ctx := context.Background()
	dataStore.On("SetPassword", ctx, 9, mock.AnythingOfType("string")).Return(db.ErrNotFound)
	assert.ErrorIs(t, service.SetPassword(ctx, 9, "new"), ErrEntityDoesNotExist)
}

func TestCheckPassword(t *testing.T) {
	assert := assert.New(t)
	service, dataStore, _, _ := newTestService(t)
	ctx := context.Background()
	dataStore.On("UserByID", ctx, 1).Return(&tables.UserTable{ID: 1, Password: hashed(t, "admin")}, nil)

	ok, err := service.CheckPassword(ctx, 1, "admin")
	assert.NoError(err)
	assert.True(ok)
	ok, err = service.CheckPassword(ctx, 1, "nope")
	assert.NoError(err)
	assert.False(ok)
}

func TestByIDMapsErrors(t *testing.T) {
	service, dataStore, _, _ := newTestService(t)
	ctx := context.Background()
	dataStore.On("UserByID", ctx, 2).Return(nil, db.ErrNotFound)
	dataStore.On("UserByID", ctx, 3).Return(nil, errors.New("db down"))

	_, err := service.ByID(ctx, 2)
	assert.ErrorIs(t, err, ErrEntityDoesNotExist)
	_, err = service.ByID(ctx, 3)
	assert.EqualError(t, err, "db down")
}

func TestResetTokenLifecycle(t *testing.T) {
	assert := assert.New(t)
	service, dataStore, _, tokens := newTestService(t)
	ctx := context.Background()
	dataStore.On("UserByUsername", ctx, "andrea").Return(&tables.UserTable{ID: 5, Username: "andrea"}, nil)

	token, err := service.CreateResetToken(ctx, "andrea")
	assert.NoError(err)
	assert.NotEmpty(token)

	stored, err := tokens.Get(ctx, "pass-reset:"+token)
	assert.NoError(err)
	assert.Equal("5", string(stored))

	id, err := service.UserForResetToken(ctx, token)
	assert.NoError(err)
	assert.Equal(5, id)

	service.ConsumeResetToken(ctx, token)
	_, err = service.UserForResetToken(ctx, token)
	assert.ErrorIs(err, ErrInvalidResetToken)
}

func TestResetTokenForUnknownUser(t *testing.T) {
	service, dataStore, _, _ := newTestService(t)
	ctx := context.Background()
	dataStore.On("UserByUsername", ctx, "ghost").Return(nil, db.ErrNotFound)
	_, err := service.CreateResetToken(ctx, "ghost")
	assert.ErrorIs(t, err, ErrEntityDoesNotExist)
}

func TestCorruptResetToken(t *testing.T) {
	service, _, _, tokens := newTestService(t)
	ctx := context.Background()
	assert.NoError(t, tokens.SetWithExpire(ctx, "pass-reset:abc", []byte("x"), time.Minute))
	_, err := service.UserForResetToken(ctx, "abc")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
	_, err = service.UserForResetToken(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}
