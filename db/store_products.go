package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/google/uuid"
)

var productColumns = []string{
	"id",
	"title",
	"version",
	"apic_url",
	"image",
	"published",
	"plans",
	"product_data",
	"created_at",
	"updated_at",
}

// ProductByURL returns the product stored for the relative remote url,
// if publishedOnly is set unpublished products are reported as not found
func (d *DataStore) ProductByURL(
	ctx context.Context,
	url string,
	publishedOnly bool,
) (*tables.ProductTable, error) {
	var entity tables.ProductTable
	pred := sq.And{sq.Eq{"apic_url": url}}
	if publishedOnly {
		pred = append(pred, sq.Eq{"published": true})
	}
	q := d.sb.Select(productColumns...).From("products").Where(pred).Limit(1)
	err := d.getStatement(ctx, &entity, q, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// UpsertProduct inserts or replaces the product keyed by its remote url
func (d *DataStore) UpsertProduct(ctx context.Context, p *tables.ProductTable) (bool, error) {
	existing, err := d.ProductByURL(ctx, p.URL, false)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return false, err
	}
	ts := time.Now().UTC()
	if existing == nil {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		p.CreatedAt = ts
		insert := d.sb.Insert("products").SetMap(map[string]interface{}{
			"id":           p.ID,
			"title":        p.Title,
			"version":      p.Version,
			"apic_url":     p.URL,
			"image":        p.Image,
			"published":    p.Published,
			"plans":        p.Plans,
			"product_data": p.Data,
			"created_at":   ts,
		})
		_, err = d.insertStatement(ctx, insert, nil)
		return err == nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = &ts
	update := d.sb.Update("products").SetMap(map[string]interface{}{
		"title":        p.Title,
		"version":      p.Version,
		"image":        p.Image,
		"published":    p.Published,
		"plans":        p.Plans,
		"product_data": p.Data,
		"updated_at":   ts,
	}).Where(sq.Eq{"id": existing.ID})
	_, err = d.updateStatement(ctx, update, nil)
	return false, err
}
