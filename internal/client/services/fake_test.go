package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/UhCardoso/travel-manager-front/internal/client/models"
	"github.com/UhCardoso/travel-manager-front/internal/client/session"
	"github.com/UhCardoso/travel-manager-front/internal/client/storage"
)

// ---- helpers ----

func newStorage(t *testing.T) session.Storage {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return session.NewSQLiteStorage(db)
}

func newSession(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(newStorage(t), nil)
}

// ---- fake client ----

type fakeClient struct {
	AuthRet *models.AuthResponse
	AuthErr error

	LogoutErr error

	TravelRet *models.TravelRequestResponse
	TravelErr error

	PageRet *models.TravelRequestPageResponse
	PageErr error

	Calls int

	LastLogin      models.LoginRequest
	LastAdminLogin models.LoginRequest
	LastRegister   models.RegisterRequest
	LastCreate     models.CreateTravelRequest
	LastPage       int
	LastID         int64
	LastStatus     models.Status
	LastMethod     string
}

func (f *fakeClient) record(method string) { f.Calls++; f.LastMethod = method }

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) UserLogin(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.record("UserLogin")
	f.LastLogin = req
	return f.AuthRet, f.AuthErr
}

func (f *fakeClient) UserRegister(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.record("UserRegister")
	f.LastRegister = req
	return f.AuthRet, f.AuthErr
}

func (f *fakeClient) UserLogout(context.Context) error {
	f.record("UserLogout")
	return f.LogoutErr
}

func (f *fakeClient) AdminLogin(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.record("AdminLogin")
	f.LastAdminLogin = req
	return f.AuthRet, f.AuthErr
}

func (f *fakeClient) CreateTravelRequest(_ context.Context, req models.CreateTravelRequest) (*models.TravelRequestResponse, error) {
	f.record("CreateTravelRequest")
	f.LastCreate = req
	return f.TravelRet, f.TravelErr
}

func (f *fakeClient) ListTravelRequests(_ context.Context, page int) (*models.TravelRequestPageResponse, error) {
	f.record("ListTravelRequests")
	f.LastPage = page
	return f.PageRet, f.PageErr
}

func (f *fakeClient) CancelTravelRequest(_ context.Context, id int64) (*models.TravelRequestResponse, error) {
	f.record("CancelTravelRequest")
	f.LastID = id
	return f.TravelRet, f.TravelErr
}

func (f *fakeClient) TravelRequestDetails(_ context.Context, id int64) (*models.TravelRequestResponse, error) {
	f.record("TravelRequestDetails")
	f.LastID = id
	return f.TravelRet, f.TravelErr
}

func (f *fakeClient) AdminListTravelRequests(_ context.Context, page int) (*models.TravelRequestPageResponse, error) {
	f.record("AdminListTravelRequests")
	f.LastPage = page
	return f.PageRet, f.PageErr
}

func (f *fakeClient) AdminUpdateTravelRequestStatus(_ context.Context, id int64, status models.Status) (*models.TravelRequestResponse, error) {
	f.record("AdminUpdateTravelRequestStatus")
	f.LastID = id
	f.LastStatus = status
	return f.TravelRet, f.TravelErr
}

func authOK(token string, user models.User) *models.AuthResponse {
	return &models.AuthResponse{
		Success: true,
		Message: "ok",
		Data:    models.AuthData{User: user, Token: token, TokenType: "Bearer"},
	}
}
