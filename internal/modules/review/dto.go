package review

import (
	"time"

	"campusfood/internal/domain"
)

// ReviewCreatedEvent is pushed to live feed subscribers after a successful
// submission.
type ReviewCreatedEvent struct {
	Type   string         `json:"type"`
	Review *domain.Review `json:"review"`
}

type CreateReviewRequest struct {
	LocationID int64   `json:"locationID" validate:"required,gt=0"`
	Rating     float64 `json:"rating" validate:"gte=0,lte=5"`
	Title      string  `json:"title" validate:"required"`
	Body       string  `json:"body" validate:"required"`
}

// ReviewView is the wire projection of a review. Tags and HelpfulCount are
// reserved for future features and are always emitted empty/zero.
type ReviewView struct {
	ID           int64    `json:"id"`
	LocationID   int64    `json:"locationID"`
	UserID       int64    `json:"userID"`
	Rating       float64  `json:"rating"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	Author       string   `json:"author"`
	CreatedAt    string   `json:"createdAt"`
	Tags         []string `json:"tags"`
	HelpfulCount int      `json:"helpfulCount"`
}

type PageResult struct {
	Reviews      []ReviewView `json:"reviews"`
	CurrentPage  int          `json:"currentPage"`
	TotalPages   int          `json:"totalPages"`
	TotalReviews int          `json:"totalReviews"`
	PageSize     int          `json:"pageSize"`
}

func formatCreatedAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
