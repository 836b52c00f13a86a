package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UhCardoso/travel-manager-front/internal/client/client"
	"github.com/UhCardoso/travel-manager-front/internal/client/models"
	"github.com/UhCardoso/travel-manager-front/internal/client/session"
	"github.com/UhCardoso/travel-manager-front/internal/client/validation"
)

func TestLogin_InvalidFormNeverCallsBackend(t *testing.T) {
	fc := &fakeClient{}
	store := newSession(t)
	svc := NewAuthService(fc, store, nil)

	_, err := svc.Login(context.Background(), "not-an-email", "123")

	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{
		"email":    "enter a valid email",
		"password": "password must be at least 6 characters",
	}, vErr.Fields())
	assert.Zero(t, fc.Calls)
	assert.False(t, store.IsAuthenticated())
}

func TestLogin_TrimsAndEstablishesSession(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{AuthRet: authOK("tok", models.User{ID: 3, Name: "Ann", Email: "ann@example.com"})}
	store := newSession(t)
	svc := NewAuthService(fc, store, nil)

	u, err := svc.Login(ctx, "  ann@example.com ", " secret1 ")
	require.NoError(t, err)

	assert.Equal(t, models.LoginRequest{Email: "ann@example.com", Password: "secret1"}, fc.LastLogin)
	assert.Equal(t, int64(3), u.ID)
	assert.False(t, u.IsAdmin())
	assert.Equal(t, "tok", store.Token())

	persisted, err := store.PersistedToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", persisted)
}

func TestLogin_BackendErrorLeavesSessionEmpty(t *testing.T) {
	apiErr := &client.APIError{StatusCode: 401, Message: "Invalid credentials"}
	fc := &fakeClient{AuthErr: apiErr}
	store := newSession(t)
	svc := NewAuthService(fc, store, nil)

	_, err := svc.Login(context.Background(), "ann@example.com", "secret1")
	require.ErrorIs(t, err, client.ErrUnauthorized)

	var got *client.APIError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "Invalid credentials", got.Message)
	assert.False(t, store.IsAuthenticated())
}

func TestLogin_MissingTokenIsAnError(t *testing.T) {
	fc := &fakeClient{AuthRet: authOK("", models.User{ID: 1})}
	store := newSession(t)
	svc := NewAuthService(fc, store, nil)

	_, err := svc.Login(context.Background(), "ann@example.com", "secret1")
	require.Error(t, err)
	assert.False(t, store.IsAuthenticated())
}

func TestRegister_ValidatesConfirmation(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, newSession(t), nil)

	_, err := svc.Register(context.Background(), "Ann", "ann@example.com", "secret1", "secret2")

	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "passwords do not match", vErr.Fields()["password_confirmation"])
	assert.Zero(t, fc.Calls)
}

func TestRegister_SignsIn(t *testing.T) {
	fc := &fakeClient{AuthRet: authOK("tok", models.User{ID: 9, Name: "Ann"})}
	store := newSession(t)
	svc := NewAuthService(fc, store, nil)

	u, err := svc.Register(context.Background(), " Ann ", "ann@example.com", "secret1", "secret1")
	require.NoError(t, err)

	assert.Equal(t, models.RegisterRequest{
		Name:                 "Ann",
		Email:                "ann@example.com",
		Password:             "secret1",
		PasswordConfirmation: "secret1",
	}, fc.LastRegister)
	assert.Equal(t, int64(9), u.ID)
	assert.True(t, store.IsAuthenticated())
}

func TestRegister_WithoutTokenDoesNotSignIn(t *testing.T) {
	fc := &fakeClient{AuthRet: authOK("", models.User{ID: 9, Name: "Ann"})}
	store := newSession(t)
	svc := NewAuthService(fc, store, nil)

	u, err := svc.Register(context.Background(), "Ann", "ann@example.com", "secret1", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(9), u.ID)
	assert.False(t, store.IsAuthenticated())
}

func TestAdminLogin_StricterPasswordRule(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, newSession(t), nil)

	_, err := svc.AdminLogin(context.Background(), "admin@admin.com", "1234567")

	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"password": "password must be at least 8 characters"}, vErr.Fields())
	assert.Zero(t, fc.Calls)
}

func TestAdminLogin_StampsRoleWhenMissing(t *testing.T) {
	fc := &fakeClient{AuthRet: authOK("tok", models.User{ID: 1, Email: "boss@example.com"})}
	store := newSession(t)
	svc := NewAuthService(fc, store, nil)

	u, err := svc.AdminLogin(context.Background(), "boss@example.com", "12345678")
	require.NoError(t, err)

	assert.Equal(t, "AdminLogin", fc.LastMethod)
	assert.True(t, u.IsAdmin())
	assert.True(t, store.User().IsAdmin())
}

func TestAdminLogin_KeepsBackendRole(t *testing.T) {
	fc := &fakeClient{AuthRet: authOK("tok", models.User{ID: 1, Role: "auditor"})}
	store := newSession(t)
	svc := NewAuthService(fc, store, nil)

	u, err := svc.AdminLogin(context.Background(), "boss@example.com", "12345678")
	require.NoError(t, err)
	assert.Equal(t, "auditor", u.Role)
}

func TestLogout_ClearsSessionEvenWhenServerFails(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{LogoutErr: errors.New("boom")}
	store := newSession(t)
	require.NoError(t, store.SetAuth(ctx, "tok", &models.User{ID: 1}))

	svc := NewAuthService(fc, store, nil)
	require.NoError(t, svc.Logout(ctx))

	assert.Equal(t, "UserLogout", fc.LastMethod)
	assert.False(t, store.IsAuthenticated())

	persisted, err := store.PersistedToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestRestore_LoadsPersistedSession(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{AuthRet: authOK("tok", models.User{ID: 5, Email: "ann@example.com"})}
	st := newStorage(t)

	_, err := NewAuthService(fc, session.NewStore(st, nil), nil).Login(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)

	restarted := session.NewStore(st, nil)
	require.NoError(t, NewAuthService(fc, restarted, nil).Restore(ctx))
	assert.Equal(t, "tok", restarted.Token())
	assert.Equal(t, int64(5), restarted.User().ID)
}
