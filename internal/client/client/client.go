package client

import (
	"context"

	"github.com/UhCardoso/travel-manager-front/internal/client/models"
)

// Client is the backend API surface. Page numbers are 1-based; page <= 0
// leaves the choice to the server.
type Client interface {
	Close() error

	UserLogin(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	UserRegister(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	UserLogout(ctx context.Context) error
	AdminLogin(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)

	CreateTravelRequest(ctx context.Context, req models.CreateTravelRequest) (*models.TravelRequestResponse, error)
	ListTravelRequests(ctx context.Context, page int) (*models.TravelRequestPageResponse, error)
	CancelTravelRequest(ctx context.Context, id int64) (*models.TravelRequestResponse, error)
	TravelRequestDetails(ctx context.Context, id int64) (*models.TravelRequestResponse, error)

	AdminListTravelRequests(ctx context.Context, page int) (*models.TravelRequestPageResponse, error)
	AdminUpdateTravelRequestStatus(ctx context.Context, id int64, status models.Status) (*models.TravelRequestResponse, error)
}
