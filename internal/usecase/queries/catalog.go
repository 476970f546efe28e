package queries

import (
	"context"

	"courtbook/internal/pkg/errs"
)

type CatalogReadStore interface {
	ListCourts(ctx context.Context) ([]*CourtView, error)
	ListCoaches(ctx context.Context) ([]*CoachView, error)
	ListEquipment(ctx context.Context) ([]*EquipmentView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListCourts(ctx context.Context) ([]*CourtView, error) {
	views, err := q.store.ListCourts(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListCoaches(ctx context.Context) ([]*CoachView, error) {
	views, err := q.store.ListCoaches(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListEquipment(ctx context.Context) ([]*EquipmentView, error) {
	views, err := q.store.ListEquipment(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
