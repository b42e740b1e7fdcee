package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/eisenwinter/apicportal/db/tables"
	"go.uber.org/zap"
)

var userColumns = []string{
	"id",
	"username",
	"email",
	"password",
	"consumer_org_url",
	"created_at",
	"updated_at",
}

// Users lists the portal users filtered by a FIQL query
func (d *DataStore) Users(ctx context.Context, opts ListOptions) ([]*tables.UserTable, int, error) {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 25
	}

	var c int
	count := d.sb.Select("COUNT(*)").From("users")
	applyWhere, err := d.whereFromAdapater("users", opts.Query)
	if err != nil {
		return nil, 0, err
	}
	count = applyWhere(count)
	err = count.RunWith(d.db).QueryRowContext(ctx).Scan(&c)
	if err != nil {
		return nil, 0, err
	}
	offset := (opts.Page - 1) * opts.PageSize
	if c < offset {
		return []*tables.UserTable{}, c, nil
	}

	var entities []*tables.UserTable
	q := d.sb.Select(userColumns...).From("users")
	q = applyWhere(q)
	q = d.orderByFromAdapater(q, "users", "id ASC", opts)
	q = q.Offset(uint64(offset)).Limit(uint64(opts.PageSize))
	err = d.selectStatement(ctx, &entities, q, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}

	return entities, c, nil
}

func (d *DataStore) userWhere(ctx context.Context, pred sq.Eq) (*tables.UserTable, error) {
	var userEntity tables.UserTable
	userQuery := d.sb.Select(userColumns...).From("users").Where(pred)
	err := d.getStatement(ctx, &userEntity, userQuery, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		d.log.Error("unable to query database", zap.Error(err))
		return nil, err
	}
	return &userEntity, nil
}

// UserByID returns the user with the given id
func (d *DataStore) UserByID(ctx context.Context, id int) (*tables.UserTable, error) {
	return d.userWhere(ctx, sq.Eq{"id": id})
}

// UserByUsername returns the user with the given username
func (d *DataStore) UserByUsername(ctx context.Context, username string) (*tables.UserTable, error) {
	return d.userWhere(ctx, sq.Eq{"username": username})
}

// InsertUser creates a new user and returns its id
func (d *DataStore) InsertUser(
	ctx context.Context,
	username string,
	email string,
	passwordHash string,
	consumerOrgURL *string,
) (int, error) {
	insert := d.sb.Insert("users").SetMap(map[string]interface{}{
		"username":         username,
		"email":            email,
		"password":         passwordHash,
		"consumer_org_url": consumerOrgURL,
		"created_at":       time.Now().UTC(),
	})
	_, err := d.insertStatement(ctx, insert, nil)
	if err != nil {
		if strings.Contains(strings.ToUpper(err.Error()), "UNIQUE") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			return 0, ErrAlreadyExists
		}
		d.log.Error("could not insert user", zap.Error(err))
		return 0, err
	}
	u, err := d.UserByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

// SetPassword stores a new password hash for the user
func (d *DataStore) SetPassword(ctx context.Context, userID int, passwordHash string) error {
	update := d.sb.
		Update("users").
		Set("password", passwordHash).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": userID})
	rs, err := d.updateStatement(ctx, update, nil)
	if err != nil {
		return err
	}
	if n, err := rs.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
