//go:build unit

package customer_test

import (
	"testing"

	"room-booking/internal/domain/customer"
	"room-booking/internal/pkg/ptr"
	"room-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.CustomerBuilder)
		errIs  error
	}{
		{name: "success", mutate: func(b *builder.CustomerBuilder) {}},
		{name: "success: minor and banned flags", mutate: func(b *builder.CustomerBuilder) { b.IsMinor = true; b.AsBanned() }},
		{name: "error: first name blank", mutate: func(b *builder.CustomerBuilder) { b.FirstName = " " }, errIs: customer.ErrEmptyFirstName},
		{name: "error: last name blank", mutate: func(b *builder.CustomerBuilder) { b.LastName = "" }, errIs: customer.ErrEmptyLastName},
		{name: "error: email blank", mutate: func(b *builder.CustomerBuilder) { b.WithEmail("") }, errIs: customer.ErrEmptyEmail},
		{name: "error: email malformed", mutate: func(b *builder.CustomerBuilder) { b.WithEmail("hanako@") }, errIs: customer.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := builder.NewCustomerBuilder().With(tt.mutate).BuildDomain()
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestCustomerNormalizesInput(t *testing.T) {
	c, err := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
		b.FirstName = "  Hanako "
		b.WithEmail(" Hanako@Example.com ")
		b.Notes = ptr.To("  ")
	}).BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, "Hanako", c.FirstName())
	assert.Equal(t, "hanako@example.com", c.Email())
	assert.Nil(t, c.Notes())
}

func TestCustomerUpdateKeepsStateOnError(t *testing.T) {
	c := builder.NewCustomerBuilder().BuildStored()

	err := c.Update(builder.NewCustomerBuilder().WithEmail("broken").Params())
	require.ErrorIs(t, err, customer.ErrInvalidEmail)
	assert.Equal(t, "hanako@example.com", c.Email())
}
