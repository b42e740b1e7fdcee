package manage

import (
	"context"
	"errors"

	"github.com/eisenwinter/apicportal/db"
	"github.com/eisenwinter/apicportal/db/tables"
	"go.uber.org/zap"
)

var ErrUserNotFound = errors.New("user not found")

// UserLister lists stored users
type UserLister interface {
	Users(ctx context.Context, opts db.ListOptions) ([]*tables.UserTable, int, error)
	UserByID(ctx context.Context, id int) (*tables.UserTable, error)
}

func NewUserService(store UserLister, log *zap.Logger) *UserService {
	return &UserService{
		store: store,
		log:   log,
	}
}

type UserService struct {
	store UserLister
	log   *zap.Logger
}

// List returns a page of users matching the FIQL query q
func (g *UserService) List(ctx context.Context, page int, pageSize int, q string, sort string) (*PaginationResponse, error) {
	users, total, err := g.store.Users(ctx, db.ListOptions{Page: page, PageSize: pageSize, Query: q, Sort: sort})
	if err != nil {
		return nil, err
	}
	dtos := make([]*UserDTO, 0, len(users))
	for _, v := range users {
		dtos = append(dtos, userDTOfromDB(v))
	}
	return &PaginationResponse{
		Total:   total,
		Entries: dtos,
	}, nil
}

// ByID returns a single user
func (g *UserService) ByID(ctx context.Context, id int) (*UserDTO, error) {
	u, err := g.store.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		g.log.Error("could not load user", zap.Int("user_id", id), zap.Error(err))
		return nil, err
	}
	return userDTOfromDB(u), nil
}
