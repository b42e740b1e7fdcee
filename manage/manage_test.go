package manage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eisenwinter/apicportal/db"
	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/manage/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestListApplications(t *testing.T) {
	assert := assert.New(t)
	store := mocks.NewApplicationLister(t)
	ctx := context.Background()
	id := uuid.New()
	opts := db.ListOptions{Page: 2, PageSize: 10, Query: "state==enabled", Sort: "+title"}
	store.On("Applications", ctx, opts).Return([]*tables.ApplicationTable{
		{
			ID:            id,
			ApplicationID: "app-1",
			Title:         "Weather",
			State:         "enabled",
			Enabled:       true,
			Credentials:   tables.JSONList[tables.CredentialColumn]{{ID: "c1"}, {ID: "c2"}},
			CreatedAt:     time.Now(),
		},
	}, 11, nil)

	service := NewApplicationService(store, zaptest.NewLogger(t))
	res, err := service.List(ctx, 2, 10, "state==enabled", "+title")
	assert.NoError(err)
	assert.Equal(11, res.Total)
	entries := res.Entries.([]*ApplicationDTO)
	if assert.Len(entries, 1) {
		assert.Equal(id, entries[0].ID)
		assert.Equal(2, entries[0].Credentials)
		assert.Equal(0, entries[0].Subscriptions)
	}
}

func TestListApplicationsError(t *testing.T) {
	store := mocks.NewApplicationLister(t)
	ctx := context.Background()
	store.On("Applications", ctx, db.ListOptions{Page: 1, PageSize: 12, Query: "invalid=="}).Return(nil, 0, errors.New("invalid query"))
	_, err := NewApplicationService(store, zaptest.NewLogger(t)).List(ctx, 1, 12, "invalid==", "")
	assert.Error(t, err)
}

func TestListUsersHidesPasswords(t *testing.T) {
	assert := assert.New(t)
	store := mocks.NewUserLister(t)
	ctx := context.Background()
	store.On("Users", ctx, db.ListOptions{Page: 1, PageSize: 12}).Return([]*tables.UserTable{
		{ID: 1, Username: "admin", Password: "hash"},
		{ID: 2, Username: "andrea"},
	}, 2, nil)

	res, err := NewUserService(store, zaptest.NewLogger(t)).List(ctx, 1, 12, "", "")
	assert.NoError(err)
	entries := res.Entries.([]*UserDTO)
	assert.Len(entries, 2)
	assert.Equal("andrea", entries[1].Username)
}

func TestUserByID(t *testing.T) {
	store := mocks.NewUserLister(t)
	ctx := context.Background()
	store.On("UserByID", ctx, 3).Return(&tables.UserTable{ID: 3, Username: "kim"}, nil)
	store.On("UserByID", ctx, 4).Return(nil, db.ErrNotFound)
	service := NewUserService(store, zaptest.NewLogger(t))

	u, err := service.ByID(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, "kim", u.Username)
	_, err = service.ByID(ctx, 4)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
