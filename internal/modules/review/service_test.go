package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusfood/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if args.Error(0) == nil && rv != nil {
		rv.ID = 999 // simulate DB insert
		rv.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByLocation(ctx context.Context, locationID int64) ([]domain.Review, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetTopByLocation(ctx context.Context, locationID int64, n int) ([]domain.Review, error) {
	args := m.Called(ctx, locationID, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ExistsByUserAndLocation(ctx context.Context, userID, locationID int64) (bool, error) {
	args := m.Called(ctx, userID, locationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, rv *domain.Review) (bool, error) {
	args := m.Called(ctx, rv)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) AverageRating(ctx context.Context, locationID int64) (float64, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReviewRepository) CountByLocation(ctx context.Context, locationID int64) (int64, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserLookup struct {
	mock.Mock
}

func (m *MockUserLookup) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Broadcast(event interface{}) {
	m.Called(event)
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockReviewRepository)
	repo.On("ExistsByUserAndLocation", mock.Anything, int64(7), int64(10)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)

	svc := NewService(repo, nil)
	rv, err := svc.Create(context.Background(), 7, CreateReviewRequest{
		LocationID: 10,
		Rating:     4.5,
		Title:      "Good",
		Body:       "Tasty",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), rv.ID)
	assert.Equal(t, int64(10), rv.LocationID)
	assert.Equal(t, int64(7), rv.UserID)
	assert.Equal(t, 4.5, rv.Rating)
	assert.False(t, rv.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestService_Create_RatingBounds(t *testing.T) {
	repo := new(MockReviewRepository)
	repo.On("ExistsByUserAndLocation", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)

	svc := NewService(repo, nil)

	for _, rating := range []float64{-0.1, 5.1, 100} {
		_, err := svc.Create(context.Background(), 7, CreateReviewRequest{
			LocationID: 10, Rating: rating, Title: "t", Body: "b",
		})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %v must be rejected", rating)
	}

	// inclusive bounds are accepted
	for _, rating := range []float64{0, 5} {
		_, err := svc.Create(context.Background(), 7, CreateReviewRequest{
			LocationID: int64(20 + int(rating)), Rating: rating, Title: "t", Body: "b",
		})
		assert.NoError(t, err, "rating %v must be accepted", rating)
	}
}

func TestService_Create_EmptyTextAfterTrim(t *testing.T) {
	svc := NewService(new(MockReviewRepository), nil)

	cases := []CreateReviewRequest{
		{LocationID: 10, Rating: 3, Title: "", Body: "b"},
		{LocationID: 10, Rating: 3, Title: "t", Body: ""},
		{LocationID: 10, Rating: 3, Title: "   ", Body: "b"},
		{LocationID: 10, Rating: 3, Title: "t", Body: "\t\n"},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), 7, req)
		assert.ErrorIs(t, err, ErrEmptyText)
	}
}

func TestService_Create_TrimsTitleAndBody(t *testing.T) {
	repo := new(MockReviewRepository)
	repo.On("ExistsByUserAndLocation", mock.Anything, int64(7), int64(10)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)

	svc := NewService(repo, nil)
	rv, err := svc.Create(context.Background(), 7, CreateReviewRequest{
		LocationID: 10, Rating: 3, Title: "  Good  ", Body: " Tasty \n",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Good", rv.Title)
	assert.Equal(t, "Tasty", rv.Body)
}

func TestService_Create_DuplicateReview(t *testing.T) {
	repo := new(MockReviewRepository)
	repo.On("ExistsByUserAndLocation", mock.Anything, int64(7), int64(10)).Return(true, nil)

	svc := NewService(repo, nil)
	_, err := svc.Create(context.Background(), 7, CreateReviewRequest{
		LocationID: 10, Rating: 2, Title: "Again", Body: "Different content",
	})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_UniqueIndexRace(t *testing.T) {
	// both submissions pass the pre-check; the storage index catches the loser
	repo := new(MockReviewRepository)
	repo.On("ExistsByUserAndLocation", mock.Anything, int64(7), int64(10)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).
		Return(errors.New("UNIQUE constraint failed: reviews.user_id, reviews.location_id"))

	svc := NewService(repo, nil)
	_, err := svc.Create(context.Background(), 7, CreateReviewRequest{
		LocationID: 10, Rating: 4, Title: "t", Body: "b",
	})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestService_Create_StorageError(t *testing.T) {
	repo := new(MockReviewRepository)
	repo.On("ExistsByUserAndLocation", mock.Anything, int64(7), int64(10)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).
		Return(errors.New("connection refused"))

	svc := NewService(repo, nil)
	_, err := svc.Create(context.Background(), 7, CreateReviewRequest{
		LocationID: 10, Rating: 4, Title: "t", Body: "b",
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadyReviewed)
}

func TestService_Create_BroadcastsEvent(t *testing.T) {
	repo := new(MockReviewRepository)
	repo.On("ExistsByUserAndLocation", mock.Anything, int64(7), int64(10)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)

	feed := new(MockBroadcaster)
	feed.On("Broadcast", mock.MatchedBy(func(ev interface{}) bool {
		e, ok := ev.(ReviewCreatedEvent)
		return ok && e.Type == "review_created" && e.Review.ID == 999
	})).Return()

	svc := NewService(repo, feed)
	_, err := svc.Create(context.Background(), 7, CreateReviewRequest{
		LocationID: 10, Rating: 4, Title: "t", Body: "b",
	})

	assert.NoError(t, err)
	feed.AssertExpectations(t)
}

func TestService_Delete_OwnerOnly(t *testing.T) {
	repo := new(MockReviewRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Review{ID: 5, UserID: 7}, nil)

	svc := NewService(repo, nil)
	err := svc.Delete(context.Background(), 5, 8)

	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Delete_Success(t *testing.T) {
	repo := new(MockReviewRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Review{ID: 5, UserID: 7}, nil)
	repo.On("Delete", mock.Anything, int64(5)).Return(true, nil)

	svc := NewService(repo, nil)
	assert.NoError(t, svc.Delete(context.Background(), 5, 7))
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(MockReviewRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), 5, 7), ErrNotFound)
}
