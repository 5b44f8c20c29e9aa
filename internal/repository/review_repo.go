package repository

import (
	"context"
	"time"

	"campusfood/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	LocationID int64     `gorm:"column:location_id;uniqueIndex:idx_one_review_per_user_location"`
	UserID     int64     `gorm:"column:user_id;uniqueIndex:idx_one_review_per_user_location"`
	Rating     float64   `gorm:"column:rating"`
	Title      string    `gorm:"column:title"`
	Body       string    `gorm:"column:body"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) domain.Review {
	return domain.Review{
		ID:         m.ID,
		LocationID: m.LocationID,
		UserID:     m.UserID,
		Rating:     m.Rating,
		Title:      m.Title,
		Body:       m.Body,
		CreatedAt:  m.CreatedAt,
	}
}

func toReviewModel(r *domain.Review) reviewModel {
	return reviewModel{
		ID:         r.ID,
		LocationID: r.LocationID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		Title:      r.Title,
		Body:       r.Body,
		CreatedAt:  r.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rv = toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var m reviewModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	d := toDomainReview(m)
	return &d, nil
}

// GetByLocation returns every review of a location, newest first.
// The query service re-sorts in memory for the other orderings.
func (r *ReviewRepository) GetByLocation(ctx context.Context, locationID int64) ([]domain.Review, error) {
	var rows []reviewModel
	tx := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainReview(m))
	}
	return out, nil
}

func (r *ReviewRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	var rows []reviewModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainReview(m))
	}
	return out, nil
}

// GetTopByLocation fetches the n highest-rated reviews of a location,
// ties broken by recency. Bounded at the query so cost follows n, not the
// size of the review set.
func (r *ReviewRepository) GetTopByLocation(ctx context.Context, locationID int64, n int) ([]domain.Review, error) {
	if n <= 0 {
		return []domain.Review{}, nil
	}

	var rows []reviewModel
	tx := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("rating DESC, created_at DESC").
		Limit(n).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainReview(m))
	}
	return out, nil
}

func (r *ReviewRepository) ExistsByUserAndLocation(ctx context.Context, userID, locationID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("user_id = ? AND location_id = ?", userID, locationID).
		Count(&count).Error
	return count > 0, err
}

// Update is best-effort: zero affected rows means nothing to do, not a fault.
func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("id = ?", rv.ID).
		Updates(map[string]any{
			"rating": rv.Rating,
			"title":  rv.Title,
			"body":   rv.Body,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&reviewModel{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// AverageRating returns the raw (unrounded) mean rating for a location,
// 0 when the location has no reviews.
func (r *ReviewRepository) AverageRating(ctx context.Context, locationID int64) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("location_id = ?", locationID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *ReviewRepository) CountByLocation(ctx context.Context, locationID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("location_id = ?", locationID).
		Count(&count).Error
	return count, err
}
