package auth

import (
	"strings"

	"room-booking/internal/domain/user"
	"room-booking/internal/pkg/errs"
)

var ErrMissingCredentials = errs.Validation("username and password are required")

// Credentials are checked against the stored hash; no format rules apply at login.
type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Credentials{}, ErrMissingCredentials
	}
	return Credentials{username: username, password: password}, nil
}

func (c Credentials) Username() string { return c.username }
func (c Credentials) Password() string { return c.password }

type Registration struct {
	username user.Username
	email    user.Email
	password user.Password
}

func NewRegistration(username, email, password string) (Registration, error) {
	u, err := user.NewUsername(username)
	if err != nil {
		return Registration{}, err
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return Registration{}, err
	}
	p, err := user.NewPassword(password)
	if err != nil {
		return Registration{}, err
	}
	return Registration{username: u, email: e, password: p}, nil
}

func (r Registration) Username() user.Username { return r.username }
func (r Registration) Email() user.Email       { return r.email }
func (r Registration) Password() user.Password { return r.password }
