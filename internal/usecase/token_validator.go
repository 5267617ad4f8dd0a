package usecase

import (
	"room-booking/internal/domain/user"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/jwt"
)

var ErrUnauthenticated = errs.New("unauthenticated")

// Principal is the console user a request acts for.
type Principal struct {
	UserID   int64
	Username string
	Role     user.Role
}

// TokenValidator resolves a bearer token to its principal for the auth middleware.
type TokenValidator interface {
	ValidateToken(token string) (Principal, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (Principal, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return Principal{}, errs.Mark(err, ErrUnauthenticated)
	}
	return Principal{UserID: claims.UserID, Username: claims.Username, Role: claims.Role}, nil
}
