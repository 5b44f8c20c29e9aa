package review

import (
	"context"
	"sort"

	"campusfood/internal/domain"
)

const (
	SortRecent     = "recent"
	SortRatingHigh = "rating-high"
	SortRatingLow  = "rating-low"
	SortHelpful    = "helpful"

	defaultPageSize = 10

	// anonymousAuthor is shown when the submitting user no longer resolves.
	anonymousAuthor = "Anonymous"
)

// QueryService serves sorted, paginated review listings and the bounded
// top-N fast path, enriching each review with its author's display name.
type QueryService struct {
	reviews ReviewRepository
	users   UserLookup
}

func NewQueryService(reviews ReviewRepository, users UserLookup) *QueryService {
	return &QueryService{reviews: reviews, users: users}
}

// List returns one page of a location's reviews. page is 1-based; pages
// past the end yield an empty slice with the counters still correct,
// never an error.
func (q *QueryService) List(ctx context.Context, locationID int64, page, pageSize int, sortBy string) (*PageResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if sortBy == "" {
		sortBy = SortRecent
	}

	all, err := q.reviews.GetByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	sortReviews(all, sortBy)

	total := len(all)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &PageResult{
		Reviews:      q.enrich(ctx, all[start:end]),
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalReviews: total,
		PageSize:     pageSize,
	}, nil
}

// Top returns the n highest-rated reviews of a location, most recent first
// on equal rating. Bounded at the store query, not a full-set sort.
func (q *QueryService) Top(ctx context.Context, locationID int64, n int) ([]ReviewView, error) {
	top, err := q.reviews.GetTopByLocation(ctx, locationID, n)
	if err != nil {
		return nil, err
	}
	return q.enrich(ctx, top), nil
}

// ByUser returns the acting user's own reviews, newest first.
func (q *QueryService) ByUser(ctx context.Context, userID int64) ([]ReviewView, error) {
	items, err := q.reviews.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return q.enrich(ctx, items), nil
}

// sortReviews re-sorts in place. Input arrives createdAt-descending from
// the store, and the stable sort keeps that order for equal keys.
// "helpful" is an alias of "rating-high": there is no helpfulness signal
// in the data model yet.
func sortReviews(items []domain.Review, sortBy string) {
	switch sortBy {
	case SortRatingHigh, SortHelpful:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	case SortRatingLow:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating < items[j].Rating
		})
	default: // SortRecent
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	}
}

// enrich resolves author names one lookup per review. Batching would be
// invisible to callers and can land behind the same contract later.
func (q *QueryService) enrich(ctx context.Context, items []domain.Review) []ReviewView {
	out := make([]ReviewView, 0, len(items))
	for _, rv := range items {
		author := anonymousAuthor
		if u, err := q.users.GetByID(ctx, rv.UserID); err == nil && u != nil {
			author = u.Name
		}
		out = append(out, ReviewView{
			ID:           rv.ID,
			LocationID:   rv.LocationID,
			UserID:       rv.UserID,
			Rating:       rv.Rating,
			Title:        rv.Title,
			Body:         rv.Body,
			Author:       author,
			CreatedAt:    formatCreatedAt(rv.CreatedAt),
			Tags:         []string{},
			HelpfulCount: 0,
		})
	}
	return out
}
