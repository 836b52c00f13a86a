// Package services contains the application services of the Travel Manager
// client. They validate and normalize input, call the backend through
// client.Client and keep the session store in step with the results.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/UhCardoso/travel-manager-front/internal/client/client"
	"github.com/UhCardoso/travel-manager-front/internal/client/models"
	"github.com/UhCardoso/travel-manager-front/internal/client/session"
	"github.com/UhCardoso/travel-manager-front/internal/client/validation"
	"github.com/UhCardoso/travel-manager-front/internal/logging"
)

// AuthService defines authentication operations.
//
// Contract:
//   - Login, Register, AdminLogin: validate the form (returning
//     *validation.Error without any network call when it is invalid), send
//     the trimmed values and, on success, make the returned user the session.
//   - Logout: tell the backend, then always clear the local session.
//   - Restore: load a previously persisted session.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, name, email, password, confirmation string) (*models.User, error)
	AdminLogin(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session *session.Store
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the API client and the session store.
func NewAuthService(c client.Client, s *session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: c, session: s, log: log}
}

// check validates form against schema and returns the trimmed form.
func check(schema validation.Schema, form map[string]string) (map[string]string, error) {
	if res := validation.Validate(schema, form); !res.IsValid {
		return nil, validation.NewError(res)
	}
	return validation.Trim(form), nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	form, err := check(validation.UserLogin, map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	resp, err := a.client.UserLogin(ctx, models.LoginRequest{Email: form["email"], Password: form["password"]})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return a.establish(ctx, resp.Data)
}

func (a *authService) Register(ctx context.Context, name, email, password, confirmation string) (*models.User, error) {
	form, err := check(validation.UserRegister, map[string]string{
		"name":                  name,
		"email":                 email,
		"password":              password,
		"password_confirmation": confirmation,
	})
	if err != nil {
		return nil, err
	}

	resp, err := a.client.UserRegister(ctx, models.RegisterRequest{
		Name:                 form["name"],
		Email:                form["email"],
		Password:             form["password"],
		PasswordConfirmation: form["password_confirmation"],
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	// Some deployments answer registration without a token; the user then
	// has to log in explicitly.
	if resp.Data.Token == "" {
		u := resp.Data.User
		return &u, nil
	}
	return a.establish(ctx, resp.Data)
}

// AdminLogin signs an administrator in. A successful answer from the admin
// endpoint is what makes the user an admin, so the role is set here when
// the backend left it out.
func (a *authService) AdminLogin(ctx context.Context, email, password string) (*models.User, error) {
	form, err := check(validation.AdminLogin, map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	resp, err := a.client.AdminLogin(ctx, models.LoginRequest{Email: form["email"], Password: form["password"]})
	if err != nil {
		return nil, fmt.Errorf("admin login: %w", err)
	}

	data := resp.Data
	if data.User.Role == "" {
		data.User.Role = models.RoleAdmin
	}
	return a.establish(ctx, data)
}

func (a *authService) establish(ctx context.Context, data models.AuthData) (*models.User, error) {
	user := data.User
	if err := a.session.SetAuth(ctx, data.Token, &user); err != nil {
		if errors.Is(err, session.ErrIncompleteSession) {
			return nil, fmt.Errorf("backend returned no token: %w", err)
		}
		a.log.Warn(ctx, "session not persisted", "user_id", user.ID, "error", err)
	}
	a.log.Info(ctx, "signed in", "user_id", user.ID, "role", user.Role)
	return &user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.UserLogout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed", "error", err)
	}
	return a.session.ClearAuth(ctx)
}

func (a *authService) Restore(ctx context.Context) error {
	return a.session.Initialize(ctx)
}
