package review

import (
	"context"
	"errors"
	"testing"

	"artgallery/internal/domain"
	"artgallery/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, r *domain.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockStore) List(ctx context.Context, artworkID string) ([]domain.Review, error) {
	args := m.Called(ctx, artworkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockStore) Summary(ctx context.Context, artworkID string) (repository.RatingSummary, error) {
	args := m.Called(ctx, artworkID)
	return args.Get(0).(repository.RatingSummary), args.Error(1)
}

type MockArtworks struct {
	mock.Mock
}

func (m *MockArtworks) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"no reviews", nil, 0},
		{"three and five", []int{3, 5}, 4.0},
		{"one two two", []int{1, 2, 2}, 1.7},
		{"half rounds up", []int{1, 1, 2, 1}, 1.3},
		{"single", []int{5}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s repository.RatingSummary
			for _, r := range tt.ratings {
				s.Count++
				s.Sum += int64(r)
			}
			assert.Equal(t, tt.want, Average(s))
		})
	}
}

func TestCreate_RequiresAllFields(t *testing.T) {
	svc := NewService(new(MockStore), new(MockArtworks))

	_, err := svc.Create(context.Background(), CreateReviewRequest{ArtworkID: "a1", Rating: 4})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "userName")
	assert.Contains(t, verr.Fields, "comment")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.Create(context.Background(), CreateReviewRequest{ArtworkID: "a1", UserName: "A", Comment: "c", Rating: 6})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "rating")
}

func TestCreate_BlankAfterSanitizeIsRejected(t *testing.T) {
	svc := NewService(new(MockStore), new(MockArtworks))

	_, err := svc.Create(context.Background(), CreateReviewRequest{ArtworkID: "a1", UserName: "<i></i>", Comment: "ok", Rating: 3})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "userName")
}

func TestCreate_UnknownArtwork(t *testing.T) {
	artworks := new(MockArtworks)
	svc := NewService(new(MockStore), artworks)
	ctx := context.Background()

	artworks.On("Exists", ctx, "ghost").Return(false, nil)
	_, err := svc.Create(ctx, CreateReviewRequest{ArtworkID: "ghost", UserName: "A", Comment: "c", Rating: 3})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_Stores(t *testing.T) {
	store := new(MockStore)
	artworks := new(MockArtworks)
	svc := NewService(store, artworks)
	ctx := context.Background()

	artworks.On("Exists", ctx, "a1").Return(true, nil)
	store.On("Create", ctx, mock.MatchedBy(func(r *domain.Review) bool {
		return r.ArtworkID == "a1" && r.UserName == "Meera" && r.Rating == 5 && r.Comment == "Superb"
	})).Return(nil)

	rv, err := svc.Create(ctx, CreateReviewRequest{ArtworkID: "a1", UserName: " Meera ", Comment: "Superb", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, "Meera", rv.UserName)
	store.AssertExpectations(t)
}

func TestList_ComputesAverageOnEveryRead(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockArtworks))
	ctx := context.Background()

	store.On("List", ctx, "a1").Return([]domain.Review{{Rating: 3}, {Rating: 5}}, nil)
	store.On("Summary", ctx, "a1").Return(repository.RatingSummary{Count: 2, Sum: 8}, nil).Once()
	store.On("Summary", ctx, "a1").Return(repository.RatingSummary{Count: 3, Sum: 9}, nil).Once()

	out, err := svc.List(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, out.AverageRating)
	assert.Equal(t, int64(2), out.Count)

	out, err = svc.List(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 3.0, out.AverageRating)
}

func TestList_StoreError(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockArtworks))
	ctx := context.Background()

	store.On("List", ctx, "").Return(nil, errors.New("db down"))
	_, err := svc.List(ctx, "")
	assert.Error(t, err)
}
