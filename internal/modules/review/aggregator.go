package review

import (
	"context"
	"math"

	"campusfood/internal/domain"
)

// Aggregator computes rating summaries straight from storage on every call.
// No caching: the data volumes are campus-scale and a re-scan is cheap.
type Aggregator struct {
	reviews ReviewRepository
}

func NewAggregator(reviews ReviewRepository) *Aggregator {
	return &Aggregator{reviews: reviews}
}

// AverageRating returns the mean rating of a location rounded to one
// decimal place, 0.0 when the location has no reviews. Never NaN.
func (a *Aggregator) AverageRating(ctx context.Context, locationID int64) (float64, error) {
	avg, err := a.reviews.AverageRating(ctx, locationID)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(avg) || avg == 0 {
		return 0.0, nil
	}
	return math.Round(avg*10) / 10, nil
}

func (a *Aggregator) ReviewCount(ctx context.Context, locationID int64) (int, error) {
	count, err := a.reviews.CountByLocation(ctx, locationID)
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (a *Aggregator) Summary(ctx context.Context, locationID int64) (domain.RatingSummary, error) {
	avg, err := a.AverageRating(ctx, locationID)
	if err != nil {
		return domain.RatingSummary{}, err
	}
	count, err := a.ReviewCount(ctx, locationID)
	if err != nil {
		return domain.RatingSummary{}, err
	}
	return domain.RatingSummary{
		LocationID:    locationID,
		AverageRating: avg,
		ReviewCount:   count,
	}, nil
}
