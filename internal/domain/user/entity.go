package user

import "time"

// User is a console account. Registration creates staff users.
type User struct {
	id           int64
	username     Username
	email        Email
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewUser(username Username, email Email, passwordHash string, role Role, now time.Time) *User {
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
	}
}

func (u *User) ID() int64            { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
