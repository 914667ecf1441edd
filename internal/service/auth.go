package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/dompet/internal/api"
	"github.com/hance08/dompet/internal/model"
	"github.com/hance08/dompet/internal/validation"
	"github.com/rs/zerolog"
)

type RegisterInput struct {
	Fullname    string
	Username    string
	Email       string
	Password    string
	PhoneNumber string
}

func (in RegisterInput) Validate() error {
	if err := validation.ValidateRequired("fullname")(in.Fullname); err != nil {
		return fromValidator("fullname", err)
	}
	if err := validation.ValidateRequired("username")(in.Username); err != nil {
		return fromValidator("username", err)
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return fromValidator("email", err)
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return fromValidator("password", err)
	}
	return fromValidator("phone", validation.ValidatePhone(in.PhoneNumber))
}

type AuthService struct {
	backend Backend
	session SessionStore
	log     zerolog.Logger
}

func NewAuthService(backend Backend, sess SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{backend: backend, session: sess, log: log}
}

// Login exchanges credentials for a token, then caches the identity behind
// it. A failed identity fetch leaves the session cleared.
func (as *AuthService) Login(ctx context.Context, email, password string) (*model.CurrentUser, error) {
	email = strings.TrimSpace(email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fromValidator("email", err)
	}
	if password == "" {
		return nil, invalid("password", "password is required")
	}

	token, err := as.backend.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if err := as.session.SetToken(token); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	user, err := as.backend.Me(ctx)
	if err != nil {
		if clearErr := as.session.Clear(); clearErr != nil {
			as.log.Warn().Err(clearErr).Msg("Failed to clear session after identity fetch error")
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	if err := as.session.SetCurrentUser(user); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	as.log.Info().Str("user_id", user.ID.String()).Msg("Logged in")
	return user, nil
}

func (as *AuthService) Register(ctx context.Context, in RegisterInput) error {
	in.Email = strings.TrimSpace(in.Email)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	if err := in.Validate(); err != nil {
		return err
	}

	err := as.backend.Register(ctx, api.RegisterRequest{
		Fullname:    strings.TrimSpace(in.Fullname),
		Username:    strings.TrimSpace(in.Username),
		Email:       in.Email,
		Password:    in.Password,
		PhoneNumber: in.PhoneNumber,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	as.log.Info().Str("email", in.Email).Msg("Registered")
	return nil
}

func (as *AuthService) Logout() error {
	if err := as.session.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	as.log.Info().Msg("Logged out")
	return nil
}

// Restore returns the signed-in user. The cached copy is preferred; when it
// is missing but a token exists the identity is fetched again.
func (as *AuthService) Restore(ctx context.Context) (*model.CurrentUser, error) {
	if user, ok := as.session.CurrentUser(); ok {
		return user, nil
	}

	if _, ok := as.session.Token(); !ok {
		return nil, ErrNotLoggedIn
	}

	user, err := as.backend.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore profile: %w", err)
	}
	if err := as.session.SetCurrentUser(user); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return user, nil
}

func (as *AuthService) IsLoggedIn() bool {
	_, ok := as.session.Token()
	return ok
}
