package review

import (
	"context"

	"campusfood/internal/domain"
)

// ReviewRepository defines the persistence operations the review services need
type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	GetByLocation(ctx context.Context, locationID int64) ([]domain.Review, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.Review, error)
	GetTopByLocation(ctx context.Context, locationID int64, n int) ([]domain.Review, error)
	ExistsByUserAndLocation(ctx context.Context, userID, locationID int64) (bool, error)
	Update(ctx context.Context, rv *domain.Review) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	AverageRating(ctx context.Context, locationID int64) (float64, error)
	CountByLocation(ctx context.Context, locationID int64) (int64, error)
}

// UserLookup resolves author names for review listings
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
