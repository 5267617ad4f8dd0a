package password

import (
	"errors"

	"room-booking/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errs.New("password is empty")
	ErrMismatch = errs.New("password does not match")
)

// HashPassword hashes a staff password for the users table.
func HashPassword(plain string) (string, error) {
	return hash(plain, bcrypt.DefaultCost)
}

// HashPasswordForTest uses the minimum bcrypt cost.
func HashPasswordForTest(plain string) (string, error) {
	return hash(plain, bcrypt.MinCost)
}

func hash(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errs.Wrap(err, "failed to hash password")
	}
	return string(b), nil
}

// ComparePassword returns ErrMismatch for a wrong password and a wrapped error
// when the stored hash itself is unusable.
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "failed to compare password")
	}
}
