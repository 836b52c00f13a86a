package services

import (
	"context"

	"github.com/UhCardoso/travel-manager-front/internal/client/geocoding"
	"github.com/UhCardoso/travel-manager-front/internal/client/models"
)

// DestinationService looks destinations up for the create form.
type DestinationService interface {
	Search(ctx context.Context, query string) ([]models.Destination, error)
}

type destinationService struct {
	geocoder geocoding.Searcher
}

func NewDestinationService(g geocoding.Searcher) DestinationService {
	return &destinationService{geocoder: g}
}

func (s *destinationService) Search(ctx context.Context, query string) ([]models.Destination, error) {
	return s.geocoder.Search(ctx, query)
}
