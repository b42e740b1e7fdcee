package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/eisenwinter/apicportal/db/tables"
	"go.uber.org/zap"
)

var applicationColumns = []string{
	"id",
	"application_id",
	"title",
	"apic_hostname",
	"apic_provider_id",
	"apic_catalog_id",
	"application_name",
	"apic_summary",
	"consumer_org_url",
	"enabled",
	"redirect_endpoints",
	"apic_url",
	"apic_state",
	"lifecycle_state",
	"lifecycle_pending",
	"client_type",
	"credentials",
	"subscriptions",
	"application_data",
	"custom_fields",
	"image",
	"created_at",
	"updated_at",
}

func (d *DataStore) whereFromAdapater(
	table string,
	query string,
) (func(sq.SelectBuilder) sq.SelectBuilder, error) {
	if query != "" {
		where, err := d.adapters[table].Where(query)
		if err != nil {
			return nil, err
		}
		w, a, err := where.ToSql()
		if err != nil {
			return nil, err
		}
		return func(sb sq.SelectBuilder) sq.SelectBuilder {
			return sb.Where(w, a...)
		}, nil

	}
	return func(sb sq.SelectBuilder) sq.SelectBuilder {
		return sb
	}, nil
}

func (d *DataStore) orderByFromAdapater(
	q sq.SelectBuilder,
	table string,
	defaultOrderby string,
	opts ListOptions,
) sq.SelectBuilder {
	if opts.Sort != "" {
		order, err := d.adapters[table].OrderBy(opts.Sort)
		if err != nil {
			q = q.OrderBy(defaultOrderby)
		} else {
			or, _, _ := order.ToSql()
			q = q.OrderBy(or)
		}
	} else {
		q = q.OrderBy(defaultOrderby)
	}
	return q
}

// Applications lists the stored applications filtered by a FIQL query
func (d *DataStore) Applications(
	ctx context.Context,
	opts ListOptions,
) ([]*tables.ApplicationTable, int, error) {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 25
	}
	var c int
	count := d.sb.Select("COUNT(*)").From("applications")
	applyWhere, err := d.whereFromAdapater("applications", opts.Query)
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
		return []*tables.ApplicationTable{}, c, nil
	}

	var entities []*tables.ApplicationTable
	q := d.sb.
		Select(applicationColumns...).
		From("applications")
	q = applyWhere(q)
	q = d.orderByFromAdapater(q, "applications", "created_at DESC", opts)
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

func (d *DataStore) applicationWhere(ctx context.Context, pred sq.Eq) (*tables.ApplicationTable, error) {
	var entity tables.ApplicationTable
	q := d.sb.
		Select(applicationColumns...).
		From("applications").
		Where(pred).
		Limit(1)
	err := d.getStatement(ctx, &entity, q, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// ApplicationByID returns the application with the given local id
func (d *DataStore) ApplicationByID(ctx context.Context, id uuid.UUID) (*tables.ApplicationTable, error) {
	return d.applicationWhere(ctx, sq.Eq{"id": id})
}

// ApplicationByApplicationID returns the application with the given remote application id
func (d *DataStore) ApplicationByApplicationID(
	ctx context.Context,
	applicationID string,
) (*tables.ApplicationTable, error) {
	return d.applicationWhere(ctx, sq.Eq{"application_id": applicationID})
}

// ApplicationByURL returns the application with the given relative remote url
func (d *DataStore) ApplicationByURL(ctx context.Context, url string) (*tables.ApplicationTable, error) {
	return d.applicationWhere(ctx, sq.Eq{"apic_url": url})
}

// ApplicationIDs returns the local ids of all applications,
// restricted to a consumer organization if one is passed
func (d *DataStore) ApplicationIDs(ctx context.Context, consumerOrgURL *string) ([]uuid.UUID, error) {
	q := d.sb.Select("id").From("applications")
	if consumerOrgURL != nil {
		q = q.Where(sq.Eq{"consumer_org_url": *consumerOrgURL})
	}
	q = q.OrderBy("created_at ASC")
	ids := make([]uuid.UUID, 0)
	err := d.selectStatement(ctx, &ids, q, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []uuid.UUID{}, nil
		}
		return nil, err
	}
	return ids, nil
}

// InsertApplication persists a new application, the id and created time are set on the entity
func (d *DataStore) InsertApplication(ctx context.Context, app *tables.ApplicationTable) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	app.CreatedAt = time.Now().UTC()
	app.UpdatedAt = nil
	insert := d.sb.Insert("applications").SetMap(map[string]interface{}{
		"id":                 app.ID,
		"application_id":     app.ApplicationID,
		"title":              app.Title,
		"apic_hostname":      app.Hostname,
		"apic_provider_id":   app.ProviderID,
		"apic_catalog_id":    app.CatalogID,
		"application_name":   app.Name,
		"apic_summary":       app.Summary,
		"consumer_org_url":   app.ConsumerOrgURL,
		"enabled":            app.Enabled,
		"redirect_endpoints": app.RedirectEndpoints,
		"apic_url":           app.URL,
		"apic_state":         app.State,
		"lifecycle_state":    app.LifecycleState,
		"lifecycle_pending":  app.LifecyclePending,
		"client_type":        app.ClientType,
		"credentials":        app.Credentials,
		"subscriptions":      app.Subscriptions,
		"application_data":   app.Data,
		"custom_fields":      app.CustomFields,
		"image":              app.Image,
		"created_at":         app.CreatedAt,
	})
	_, err := d.insertStatement(ctx, insert, nil)
	if err != nil {
		if strings.Contains(strings.ToUpper(err.Error()), "UNIQUE") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			return ErrAlreadyExists
		}
		d.log.Error("could not insert application", zap.Error(err))
		return err
	}
	return nil
}

// UpdateApplication writes all mutable columns of the application, the updated time is set on the entity
func (d *DataStore) UpdateApplication(ctx context.Context, app *tables.ApplicationTable) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	ts := time.Now().UTC()
	update := d.sb.
		Update("applications").
		SetMap(map[string]interface{}{
			"application_id":     app.ApplicationID,
			"title":              app.Title,
			"apic_hostname":      app.Hostname,
			"apic_provider_id":   app.ProviderID,
			"apic_catalog_id":    app.CatalogID,
			"application_name":   app.Name,
			"apic_summary":       app.Summary,
			"consumer_org_url":   app.ConsumerOrgURL,
			"enabled":            app.Enabled,
			"redirect_endpoints": app.RedirectEndpoints,
			"apic_url":           app.URL,
			"apic_state":         app.State,
			"lifecycle_state":    app.LifecycleState,
			"lifecycle_pending":  app.LifecyclePending,
			"client_type":        app.ClientType,
			"credentials":        app.Credentials,
			"subscriptions":      app.Subscriptions,
			"application_data":   app.Data,
			"custom_fields":      app.CustomFields,
			"image":              app.Image,
			"updated_at":         ts,
		}).
		Where(sq.Eq{"id": app.ID})
	rs, err := d.updateStatement(ctx, update, tx)
	if err != nil {
		rollBack(tx, d)
		return err
	}
	affected, err := rs.RowsAffected()
	if err != nil {
		rollBack(tx, d)
		return err
	}
	if affected == 0 {
		rollBack(tx, d)
		return ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	app.UpdatedAt = &ts
	return nil
}

// SetApplicationImage sets or clears the custom image path of an application
func (d *DataStore) SetApplicationImage(ctx context.Context, id uuid.UUID, image *string) error {
	update := d.sb.
		Update("applications").
		Set("image", image).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})
	rs, err := d.updateStatement(ctx, update, nil)
	if err != nil {
		return err
	}
	if n, err := rs.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteApplication removes the application, false is returned if nothing was deleted
func (d *DataStore) DeleteApplication(ctx context.Context, id uuid.UUID) (bool, error) {
	del := d.sb.Delete("applications").Where(sq.Eq{"id": id})
	rs, err := d.deleteStatement(ctx, del, nil)
	if err != nil {
		return false, err
	}
	affected, err := rs.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func rollBack(tx *sqlx.Tx, d *DataStore) {
	if rerr := tx.Rollback(); rerr != nil {
		d.log.Error("couldnt rollback", zap.Error(rerr))
	}
}
