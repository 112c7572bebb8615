package queries

import (
	"context"
)

type CustomerReadStore interface {
	List(ctx context.Context) ([]*CustomerView, error)
}

type CustomerQueries interface {
	List(ctx context.Context) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) List(ctx context.Context) ([]*CustomerView, error) {
	return q.readStore.List(ctx)
}
