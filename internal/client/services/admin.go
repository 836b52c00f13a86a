package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/UhCardoso/travel-manager-front/internal/client/client"
	"github.com/UhCardoso/travel-manager-front/internal/client/models"
	"github.com/UhCardoso/travel-manager-front/internal/logging"
)

// AdminService covers the administrator's view of all travel requests.
// Each role action is a single backend call.
type AdminService interface {
	List(ctx context.Context, page int) (*models.Page[models.TravelRequest], error)
	Approve(ctx context.Context, id int64) (*models.TravelRequest, error)
	Reject(ctx context.Context, id int64) (*models.TravelRequest, error)
	SetStatus(ctx context.Context, id int64, status models.Status) (*models.TravelRequest, error)
}

type adminService struct {
	client client.Client
	log    logging.Logger
}

func NewAdminService(c client.Client, log logging.Logger) AdminService {
	if log == nil {
		log = logging.Nop()
	}
	return &adminService{client: c, log: log}
}

func (s *adminService) List(ctx context.Context, page int) (*models.Page[models.TravelRequest], error) {
	resp, err := s.client.AdminListTravelRequests(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list all travel requests: %w", err)
	}
	checkPage(ctx, s.log, &resp.Data)
	return &resp.Data, nil
}

func (s *adminService) Approve(ctx context.Context, id int64) (*models.TravelRequest, error) {
	return s.SetStatus(ctx, id, models.StatusApproved)
}

func (s *adminService) Reject(ctx context.Context, id int64) (*models.TravelRequest, error) {
	return s.SetStatus(ctx, id, models.StatusRejected)
}

// SetStatus sends any status string; the backend decides which are legal.
func (s *adminService) SetStatus(ctx context.Context, id int64, status models.Status) (*models.TravelRequest, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	status = models.Status(strings.TrimSpace(string(status)))
	if status == "" {
		return nil, ErrInvalidStatus
	}

	resp, err := s.client.AdminUpdateTravelRequestStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("set status of travel request %d: %w", id, err)
	}
	s.log.Info(ctx, "travel request status updated", "id", id, "status", status.String())
	return &resp.Data, nil
}
