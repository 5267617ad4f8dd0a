package queries

import (
	"context"
	"strings"

	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type CustomerReadStore interface {
	List(ctx context.Context, db db.DBTX) ([]CustomerView, error)
	FindByID(ctx context.Context, db db.DBTX, id int64) (*CustomerView, error)
	FindByEmail(ctx context.Context, db db.DBTX, email string) (*CustomerView, error)
}

type CustomerQueries interface {
	ListCustomers(ctx context.Context) ([]CustomerView, error)
	GetCustomer(ctx context.Context, id int64) (*CustomerView, error)
	FindCustomerByEmail(ctx context.Context, email string) (*CustomerView, error)
}

type customerQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore CustomerReadStore
}

func NewCustomerQueries(uow shared.UnitOfWork, readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{uow: uow, readStore: readStore}
}

func (q *customerQueriesImpl) ListCustomers(ctx context.Context) ([]CustomerView, error) {
	var list []CustomerView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		list, err = q.readStore.List(ctx, db)
		return err
	})
	return list, err
}

func (q *customerQueriesImpl) GetCustomer(ctx context.Context, id int64) (*CustomerView, error) {
	var c *CustomerView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		c, err = q.readStore.FindByID(ctx, db, id)
		return notFoundAs(err, errs.ErrCustomerNotFound)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindCustomerByEmail matches case-insensitively; a blank address is simply not found.
func (q *customerQueriesImpl) FindCustomerByEmail(ctx context.Context, email string) (*CustomerView, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errs.ErrCustomerNotFound
	}
	var c *CustomerView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		c, err = q.readStore.FindByEmail(ctx, db, email)
		return notFoundAs(err, errs.ErrCustomerNotFound)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
