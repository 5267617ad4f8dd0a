package commands

import (
	"context"

	"room-booking/internal/domain/auth"
	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/jwt"
	"room-booking/internal/pkg/password"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrRegistrationFailed   = errs.New("registration failed")
)

type LoginResult struct {
	UserID      int64
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, reg auth.Registration) (int64, error)
	Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
	}
}

// Register creates a staff account.
func (a *authCommandsImpl) Register(ctx context.Context, reg auth.Registration) (int64, error) {
	hash, err := password.HashPassword(reg.Password().Value())
	if err != nil {
		return 0, errs.Mark(err, ErrRegistrationFailed)
	}
	u := user.NewUser(reg.Username(), reg.Email(), hash, user.RoleStaff, a.clock.Now())

	var id int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		newID, cerr := tx.Users().Create(ctx, tx.DB(), u)
		id = newID
		if infra.IsKind(cerr, infra.KindDuplicateKey) {
			return errs.Mark(cerr, errs.ErrDuplicateUser)
		}
		return cerr
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error) {
	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateToken(userView.ID, userView.Username, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{UserID: userView.ID, AccessToken: accessToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	var (
		userView *queries.AuthorizedUserView
		hash     string
	)
	err := a.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var ferr error
		userView, hash, ferr = a.readStore.FindByUsername(ctx, db, credentials.Username())
		return ferr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch to prevent user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(hash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return userView, nil
}
