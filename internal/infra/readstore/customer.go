package readstore

import (
	"context"

	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	customerColumns = `id, first_name, last_name, email, is_minor, is_banned, customer_notes`

	listCustomersSQL = `SELECT ` + customerColumns + ` FROM customers ORDER BY last_name, first_name, id`

	findCustomerSQL = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	findCustomerByEmailSQL = `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
)

type CustomerReadStore struct{}

func NewCustomerReadStore() *CustomerReadStore {
	return &CustomerReadStore{}
}

func (r *CustomerReadStore) List(ctx context.Context, db db.DBTX) ([]queries.CustomerView, error) {
	rows, err := db.Query(ctx, listCustomersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	list, err := collect(rows, scanCustomer)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan customers", err)
	}
	return list, nil
}

func (r *CustomerReadStore) FindByID(ctx context.Context, db db.DBTX, id int64) (*queries.CustomerView, error) {
	view, err := scanCustomer(db.QueryRow(ctx, findCustomerSQL, id))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find customer", err)
	}
	return &view, nil
}

// FindByEmail expects an already normalized address.
func (r *CustomerReadStore) FindByEmail(ctx context.Context, db db.DBTX, email string) (*queries.CustomerView, error) {
	view, err := scanCustomer(db.QueryRow(ctx, findCustomerByEmailSQL, email))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find customer by email", err)
	}
	return &view, nil
}

func scanCustomer(row pgx.Row) (queries.CustomerView, error) {
	var (
		v     queries.CustomerView
		notes pgtype.Text
	)
	if err := row.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.IsMinor, &v.IsBanned, &notes); err != nil {
		return queries.CustomerView{}, err
	}
	v.CustomerNotes = pgconv.StringPtrFromPgtype(notes)
	return v, nil
}
