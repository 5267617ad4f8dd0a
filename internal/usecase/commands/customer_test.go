//go:build unit

package commands_test

import (
	"context"
	"testing"

	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("success: stores the email lowercased and rejects duplicates", func(t *testing.T) {
		uow := newMemUoW()
		uc := commands.NewCustomerCommands(uow)

		id, err := uc.CreateCustomer(ctx, builder.NewCustomerBuilder().WithEmail("Hanako@Example.com").Params())
		require.NoError(t, err)
		assert.Equal(t, "hanako@example.com", uow.tx.customers[id].Email())

		_, err = uc.CreateCustomer(ctx, builder.NewCustomerBuilder().Params())
		assert.True(t, errs.Is(err, errs.ErrDuplicateEmail))
		assert.Len(t, uow.tx.customers, 1)
	})

	t.Run("error: customer with bookings cannot be deleted", func(t *testing.T) {
		uow := newMemUoW()
		uow.tx.customers[1] = builder.NewCustomerBuilder().BuildStored()
		uow.tx.bookings[1] = builder.NewBookingBuilder().BuildStored()
		uc := commands.NewCustomerCommands(uow)

		err := uc.DeleteCustomer(ctx, 1)
		assert.True(t, errs.Is(err, errs.ErrCustomerHasBookings))
		assert.Len(t, uow.tx.customers, 1)
	})

	t.Run("success: update", func(t *testing.T) {
		uow := newMemUoW()
		uow.tx.customers[1] = builder.NewCustomerBuilder().BuildStored()
		uc := commands.NewCustomerCommands(uow)

		require.NoError(t, uc.UpdateCustomer(ctx, 1, builder.NewCustomerBuilder().AsBanned().Params()))
		assert.True(t, uow.tx.customers[1].IsBanned())

		assert.True(t, errs.Is(uc.UpdateCustomer(ctx, 2, builder.NewCustomerBuilder().Params()), errs.ErrCustomerNotFound))
	})
}
