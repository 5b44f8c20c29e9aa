package review

import (
	"context"
	"errors"
	"strings"

	"campusfood/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Broadcaster publishes review events to live subscribers.
type Broadcaster interface {
	Broadcast(event interface{})
}

// Service handles review submission and owner-scoped mutations.
type Service struct {
	reviews ReviewRepository
	feed    Broadcaster
}

func NewService(reviews ReviewRepository, feed Broadcaster) *Service {
	return &Service{reviews: reviews, feed: feed}
}

// Create validates and persists a new review for the acting user.
// The Exists pre-check and the insert are not one transaction; the unique
// index on (user_id, location_id) catches the losing side of a concurrent
// double submission and is mapped to ErrAlreadyReviewed here.
func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 0 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Body)
	if title == "" || body == "" {
		return nil, ErrEmptyText
	}

	exists, err := s.reviews.ExistsByUserAndLocation(ctx, userID, req.LocationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rv := &domain.Review{
		LocationID: req.LocationID,
		UserID:     userID,
		Rating:     req.Rating,
		Title:      title,
		Body:       body,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	if s.feed != nil {
		s.feed.Broadcast(ReviewCreatedEvent{Type: "review_created", Review: rv})
	}
	return rv, nil
}

// Delete removes a review owned by the acting user.
func (s *Service) Delete(ctx context.Context, reviewID, userID int64) error {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if rv.UserID != userID {
		return ErrForbidden
	}

	deleted, err := s.reviews.Delete(ctx, reviewID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// sqlite in local development reports the same class of failure as text
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
