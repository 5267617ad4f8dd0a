package repository

import (
	"context"

	"room-booking/internal/domain/customer"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findCustomerSQL = `
SELECT id, first_name, last_name, email, is_minor, is_banned, customer_notes
FROM customers WHERE id = $1 FOR UPDATE`

	insertCustomerSQL = `
INSERT INTO customers (first_name, last_name, email, is_minor, is_banned, customer_notes)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

	updateCustomerSQL = `
UPDATE customers
SET first_name = $2, last_name = $3, email = $4, is_minor = $5, is_banned = $6,
    customer_notes = $7, updated_at = now()
WHERE id = $1`

	deleteCustomerSQL = `DELETE FROM customers WHERE id = $1`

	customerHasBookingsSQL = `SELECT EXISTS (SELECT 1 FROM bookings WHERE customer_id = $1)`
)

// CustomerEmailConstraint is violated when two customers share an address.
const CustomerEmailConstraint = "customers_email_key"

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) FindByID(ctx context.Context, tx db.DBTX, id int64) (*customer.Customer, error) {
	var (
		customerID int64
		p          customer.Params
		notes      pgtype.Text
	)
	err := tx.QueryRow(ctx, findCustomerSQL, id).Scan(
		&customerID, &p.FirstName, &p.LastName, &p.Email, &p.IsMinor, &p.IsBanned, &notes,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find customer", err)
	}
	p.Notes = pgconv.StringPtrFromPgtype(notes)
	return customer.ReconstructCustomer(customerID, p), nil
}

func (r *CustomerRepository) Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, insertCustomerSQL,
		c.FirstName(), c.LastName(), c.Email(), c.IsMinor(), c.IsBanned(), pgconv.StringPtrToPgtype(c.Notes()),
	).Scan(&id)
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to create customer", err)
	}
	return id, nil
}

func (r *CustomerRepository) Update(ctx context.Context, tx db.DBTX, c *customer.Customer) error {
	tag, err := tx.Exec(ctx, updateCustomerSQL,
		c.ID(), c.FirstName(), c.LastName(), c.Email(), c.IsMinor(), c.IsBanned(), pgconv.StringPtrToPgtype(c.Notes()),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	return execDelete(ctx, tx, deleteCustomerSQL, id, "customer")
}

func (r *CustomerRepository) HasBookings(ctx context.Context, tx db.DBTX, id int64) (bool, error) {
	var has bool
	if err := tx.QueryRow(ctx, customerHasBookingsSQL, id).Scan(&has); err != nil {
		return false, infra.WrapRepoErr("failed to check customer bookings", err)
	}
	return has, nil
}
