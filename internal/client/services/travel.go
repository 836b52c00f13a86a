package services

import (
	"context"
	"fmt"

	"github.com/UhCardoso/travel-manager-front/internal/client/client"
	"github.com/UhCardoso/travel-manager-front/internal/client/models"
	"github.com/UhCardoso/travel-manager-front/internal/client/validation"
	"github.com/UhCardoso/travel-manager-front/internal/logging"
)

// TravelService covers the travel requests of the signed-in user.
type TravelService interface {
	Create(ctx context.Context, req models.CreateTravelRequest) (*models.TravelRequest, error)
	List(ctx context.Context, page int) (*models.Page[models.TravelRequest], error)
	Details(ctx context.Context, id int64) (*models.TravelRequest, error)
	Cancel(ctx context.Context, id int64) (*models.TravelRequest, error)
}

type travelService struct {
	client client.Client
	log    logging.Logger
}

func NewTravelService(c client.Client, log logging.Logger) TravelService {
	if log == nil {
		log = logging.Nop()
	}
	return &travelService{client: c, log: log}
}

func (s *travelService) Create(ctx context.Context, req models.CreateTravelRequest) (*models.TravelRequest, error) {
	req = req.Normalize()
	if res := validation.Validate(validation.CreateTravel, req.Fields()); !res.IsValid {
		return nil, validation.NewError(res)
	}

	resp, err := s.client.CreateTravelRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create travel request: %w", err)
	}
	return &resp.Data, nil
}

func (s *travelService) List(ctx context.Context, page int) (*models.Page[models.TravelRequest], error) {
	resp, err := s.client.ListTravelRequests(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list travel requests: %w", err)
	}
	checkPage(ctx, s.log, &resp.Data)
	return &resp.Data, nil
}

func (s *travelService) Details(ctx context.Context, id int64) (*models.TravelRequest, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	resp, err := s.client.TravelRequestDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("travel request %d: %w", id, err)
	}
	return &resp.Data, nil
}

func (s *travelService) Cancel(ctx context.Context, id int64) (*models.TravelRequest, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	resp, err := s.client.CancelTravelRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel travel request %d: %w", id, err)
	}
	return &resp.Data, nil
}

// checkPage only logs: the backend owns pagination and a page that breaks
// the usual bounds is still shown.
func checkPage(ctx context.Context, log logging.Logger, p *models.Page[models.TravelRequest]) {
	if !p.Valid() {
		log.Warn(ctx, "inconsistent page metadata",
			"items", len(p.Items), "per_page", p.Meta.PerPage,
			"current_page", p.Meta.CurrentPage, "last_page", p.Meta.LastPage)
	}
}
