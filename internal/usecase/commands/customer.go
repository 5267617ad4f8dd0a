package commands

import (
	"context"

	"room-booking/internal/domain/customer"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type CustomerCommands interface {
	CreateCustomer(ctx context.Context, p customer.Params) (int64, error)
	UpdateCustomer(ctx context.Context, id int64, p customer.Params) error
	DeleteCustomer(ctx context.Context, id int64) error
}

type customerCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCustomerCommands(uow shared.UnitOfWork) CustomerCommands {
	return &customerCommandsImpl{uow: uow}
}

func (uc *customerCommandsImpl) CreateCustomer(ctx context.Context, p customer.Params) (int64, error) {
	c, err := customer.NewCustomer(p)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		newID, cerr := tx.Customers().Create(ctx, tx.DB(), c)
		id = newID
		return customerWriteErr(cerr)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (uc *customerCommandsImpl) UpdateCustomer(ctx context.Context, id int64, p customer.Params) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Customers().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, errs.ErrCustomerNotFound)
		}
		if err := c.Update(p); err != nil {
			return err
		}
		return customerWriteErr(tx.Customers().Update(ctx, tx.DB(), c))
	})
}

func (uc *customerCommandsImpl) DeleteCustomer(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Customers().FindByID(ctx, tx.DB(), id); err != nil {
			return notFoundAs(err, errs.ErrCustomerNotFound)
		}
		has, err := tx.Customers().HasBookings(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if has {
			return errs.ErrCustomerHasBookings
		}
		err = tx.Customers().Delete(ctx, tx.DB(), id)
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, errs.ErrCustomerHasBookings)
		}
		return notFoundAs(err, errs.ErrCustomerNotFound)
	})
}

func customerWriteErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, errs.ErrDuplicateEmail)
	}
	return err
}
