package domain

import "time"

type Review struct {
	ID         int64     `json:"id"`
	LocationID int64     `json:"location_id"`
	UserID     int64     `json:"user_id"`
	Rating     float64   `json:"rating"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// RatingSummary is derived from the review set of a location, never stored.
// AverageRating is 0.0 for locations without reviews.
type RatingSummary struct {
	LocationID    int64   `json:"location_id"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}
