package console

import (
	"context"

	"room-booking/internal/domain/form"
	reqdto "room-booking/internal/handler/dto/request"
)

type AuthConsole interface {
	// Login returns the access token, or an Outcome explaining why there is none.
	Login(ctx context.Context, f form.Login) (string, Outcome)
	Register(ctx context.Context, f form.Register) Outcome
}

type authConsoleImpl struct {
	api API
}

func NewAuthConsole(api API) AuthConsole {
	return &authConsoleImpl{api: api}
}

func (uc *authConsoleImpl) Login(ctx context.Context, f form.Login) (string, Outcome) {
	if fe := f.Validate(); fe.Any() {
		return "", invalid(fe)
	}
	token, err := uc.api.Login(ctx, reqdto.LoginRequest{Username: f.Username, Password: f.Password})
	if err != nil {
		return "", failed(err)
	}
	return token, Outcome{}
}

func (uc *authConsoleImpl) Register(ctx context.Context, f form.Register) Outcome {
	if fe := f.Validate(); fe.Any() {
		return invalid(fe)
	}
	msg, err := uc.api.Register(ctx, reqdto.RegisterRequest{Username: f.Username, Email: f.Email, Password: f.Password})
	if err != nil {
		return failed(err)
	}
	return Outcome{Message: msg}
}
