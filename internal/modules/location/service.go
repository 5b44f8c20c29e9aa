package location

import (
	"context"
	"errors"
	"sort"
	"strings"

	"campusfood/internal/domain"
	"campusfood/internal/modules/review"

	"gorm.io/gorm"
)

const topLocationsLimit = 3

var ErrNotFound = errors.New("not_found")

// LocationRepository defines the persistence operations the location service needs
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	GetAll(ctx context.Context) ([]domain.Location, error)
	GetByCategory(ctx context.Context, category string) ([]domain.Location, error)
	SearchByName(ctx context.Context, term string) ([]domain.Location, error)
	GetCategories(ctx context.Context) ([]string, error)
}

type Service struct {
	locations LocationRepository
	ratings   *review.Aggregator
}

func NewService(locations LocationRepository, ratings *review.Aggregator) *Service {
	return &Service{locations: locations, ratings: ratings}
}

// GetAll lists every location with its rating summary attached.
func (s *Service) GetAll(ctx context.Context) ([]LocationView, error) {
	items, err := s.locations.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.withSummaries(ctx, items)
}

// GetTop returns the highest-rated locations, unrated ones excluded.
func (s *Service) GetTop(ctx context.Context) ([]LocationView, error) {
	views, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rated := views[:0]
	for _, v := range views {
		if v.Rating > 0 {
			rated = append(rated, v)
		}
	}
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Rating > rated[j].Rating
	})
	if len(rated) > topLocationsLimit {
		rated = rated[:topLocationsLimit]
	}
	return rated, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*LocationView, error) {
	loc, err := s.locations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	view, err := s.toView(ctx, *loc)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *Service) GetByCategory(ctx context.Context, category string) ([]LocationView, error) {
	items, err := s.locations.GetByCategory(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, err
	}
	return s.withSummaries(ctx, items)
}

func (s *Service) Search(ctx context.Context, term string) ([]LocationView, error) {
	items, err := s.locations.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	return s.withSummaries(ctx, items)
}

func (s *Service) GetCategories(ctx context.Context) ([]string, error) {
	return s.locations.GetCategories(ctx)
}

func (s *Service) withSummaries(ctx context.Context, items []domain.Location) ([]LocationView, error) {
	out := make([]LocationView, 0, len(items))
	for _, loc := range items {
		view, err := s.toView(ctx, loc)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *Service) toView(ctx context.Context, loc domain.Location) (LocationView, error) {
	summary, err := s.ratings.Summary(ctx, loc.ID)
	if err != nil {
		return LocationView{}, err
	}
	return LocationView{
		ID:          loc.ID,
		Name:        loc.Name,
		Address:     loc.Address,
		Category:    loc.Category,
		Description: loc.Description,
		Lat:         loc.Lat,
		Lng:         loc.Lng,
		Rating:      summary.AverageRating,
		ReviewCount: summary.ReviewCount,
	}, nil
}
