package repository

import (
	"context"
	"strings"
	"time"

	"campusfood/internal/domain"

	"gorm.io/gorm"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

type locationModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Address     string    `gorm:"column:address"`
	Category    string    `gorm:"column:category"`
	Description *string   `gorm:"column:description"`
	Lat         float64   `gorm:"column:lat"`
	Lng         float64   `gorm:"column:lng"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (locationModel) TableName() string { return "locations" }

func toDomainLocation(m locationModel) domain.Location {
	var description string
	if m.Description != nil {
		description = *m.Description
	}
	return domain.Location{
		ID:          m.ID,
		Name:        m.Name,
		Address:     m.Address,
		Category:    m.Category,
		Description: description,
		Lat:         m.Lat,
		Lng:         m.Lng,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toLocationModel(l *domain.Location) locationModel {
	var description *string
	if l.Description != "" {
		v := l.Description
		description = &v
	}
	return locationModel{
		ID:          l.ID,
		Name:        l.Name,
		Address:     l.Address,
		Category:    l.Category,
		Description: description,
		Lat:         l.Lat,
		Lng:         l.Lng,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func (r *LocationRepository) Create(ctx context.Context, l *domain.Location) error {
	m := toLocationModel(l)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = toDomainLocation(m)
	return nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	var m locationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	d := toDomainLocation(m)
	return &d, nil
}

func (r *LocationRepository) GetAll(ctx context.Context) ([]domain.Location, error) {
	var rows []locationModel
	tx := r.db.WithContext(ctx).Order("name").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Location, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainLocation(m))
	}
	return out, nil
}

func (r *LocationRepository) GetByCategory(ctx context.Context, category string) ([]domain.Location, error) {
	var rows []locationModel
	tx := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("name").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Location, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainLocation(m))
	}
	return out, nil
}

func (r *LocationRepository) SearchByName(ctx context.Context, term string) ([]domain.Location, error) {
	var rows []locationModel
	tx := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+strings.TrimSpace(term)+"%").
		Order("name").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Location, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainLocation(m))
	}
	return out, nil
}

func (r *LocationRepository) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&locationModel{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *LocationRepository) Update(ctx context.Context, l *domain.Location) (bool, error) {
	m := toLocationModel(l)
	tx := r.db.WithContext(ctx).
		Model(&locationModel{}).
		Where("id = ?", l.ID).
		Updates(&m)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *LocationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&locationModel{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
