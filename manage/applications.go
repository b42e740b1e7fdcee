// Package manage backs the headless management endpoints
package manage

import (
	"context"

	"github.com/eisenwinter/apicportal/db"
	"github.com/eisenwinter/apicportal/db/tables"
	"go.uber.org/zap"
)

// ApplicationLister lists stored applications
type ApplicationLister interface {
	Applications(ctx context.Context, opts db.ListOptions) ([]*tables.ApplicationTable, int, error)
}

func NewApplicationService(store ApplicationLister, log *zap.Logger) *ApplicationService {
	return &ApplicationService{
		store: store,
		log:   log,
	}
}

type ApplicationService struct {
	store ApplicationLister
	log   *zap.Logger
}

// List returns a page of applications matching the FIQL query q
func (a *ApplicationService) List(
	ctx context.Context,
	page int,
	pageSize int,
	q string,
	sort string,
) (*PaginationResponse, error) {
	apps, total, err := a.store.Applications(
		ctx,
		db.ListOptions{Page: page, PageSize: pageSize, Query: q, Sort: sort},
	)
	if err != nil {
		a.log.Info("could not list applications", zap.Error(err))
		return nil, err
	}
	dtos := make([]*ApplicationDTO, 0, len(apps))
	for _, v := range apps {
		dtos = append(dtos, applicationDTOfromDB(v))
	}
	return &PaginationResponse{
		Total:   total,
		Entries: dtos,
	}, nil
}
