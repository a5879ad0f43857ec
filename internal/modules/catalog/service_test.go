package catalog

import (
	"context"
	"testing"
	"time"

	"artgallery/internal/domain"
	"artgallery/internal/pkg/cache"
	"artgallery/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

/* ==================== MOCKS ==================== */

type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) List(ctx context.Context) ([]domain.ArtistWithCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArtistWithCount), args.Error(1)
}

func (m *MockArtistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockArtistRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockArtworkRepository struct {
	mock.Mock
}

func (m *MockArtworkRepository) List(ctx context.Context, f repository.ArtworkFilters) ([]domain.Artwork, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) GetByID(ctx context.Context, id string) (*domain.Artwork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) Related(ctx context.Context, artistID, excludeID string, limit int) ([]domain.Artwork, error) {
	args := m.Called(ctx, artistID, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArtworkRepository) CountByCategory(ctx context.Context) ([]repository.CategoryCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CategoryCount), args.Error(1)
}

/* ==================== HELPERS ==================== */

func newTestService() (*Service, *MockArtistRepository, *MockArtworkRepository, *cache.Cache) {
	artists := new(MockArtistRepository)
	artworks := new(MockArtworkRepository)
	c := cache.New(nil)
	p := Policies{
		Hours: cache.Policy{Stale: time.Hour, Expire: 2 * time.Hour},
		Days:  cache.Policy{Stale: 24 * time.Hour, Expire: 48 * time.Hour},
	}
	return NewService(artists, artworks, c, p, nil), artists, artworks, c
}

/* ==================== TESTS ==================== */

func TestListArtists_ServedFromCache(t *testing.T) {
	svc, artists, _, _ := newTestService()
	ctx := context.Background()

	artists.On("List", ctx).Return([]domain.ArtistWithCount{{Artist: domain.Artist{ID: "ar1", Name: "Priya"}, ArtworkCount: 2}}, nil)

	for i := 0; i < 3; i++ {
		list, err := svc.ListArtists(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, int64(2), list[0].ArtworkCount)
	}
	artists.AssertNumberOfCalls(t, "List", 1)
}

func TestListArtists_InvalidateReloads(t *testing.T) {
	svc, artists, _, c := newTestService()
	ctx := context.Background()

	artists.On("List", ctx).Return([]domain.ArtistWithCount{}, nil).Once()
	artists.On("List", ctx).Return([]domain.ArtistWithCount{{Artist: domain.Artist{ID: "ar1"}}}, nil).Once()

	list, err := svc.ListArtists(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	c.Invalidate(TagArtworks)
	list, err = svc.ListArtists(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "unrelated tag must not drop the listing")

	c.Invalidate(TagArtists)
	list, err = svc.ListArtists(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	artists.AssertNumberOfCalls(t, "List", 2)
}

func TestGetArtwork_NotFoundIsNotCached(t *testing.T) {
	svc, _, artworks, _ := newTestService()
	ctx := context.Background()

	artworks.On("GetByID", ctx, "ghost").Return(nil, repository.ErrNotFound)

	_, err := svc.GetArtwork(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetArtwork(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	artworks.AssertNumberOfCalls(t, "GetByID", 2)

	_, err = svc.GetArtwork(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGetArtwork_ArtworkTagInvalidation(t *testing.T) {
	svc, _, artworks, c := newTestService()
	ctx := context.Background()

	artworks.On("GetByID", ctx, "a1").Return(&domain.Artwork{ID: "a1", Title: "Old"}, nil).Once()
	artworks.On("GetByID", ctx, "a1").Return(&domain.Artwork{ID: "a1", Title: "New"}, nil).Once()

	a, err := svc.GetArtwork(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Old", a.Title)

	c.Invalidate(ArtworkTag("a1"))
	a, err = svc.GetArtwork(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "New", a.Title)
}

func TestListArtworks_FiltersAreKeyed(t *testing.T) {
	svc, _, artworks, _ := newTestService()
	ctx := context.Background()

	paintings := repository.ArtworkFilters{Category: "Painting", Sort: repository.SortNewest}
	all := repository.ArtworkFilters{Sort: repository.SortNewest}
	artworks.On("List", ctx, paintings).Return([]domain.Artwork{{ID: "a1"}}, nil)
	artworks.On("List", ctx, all).Return(nil, nil)

	list, err := svc.ListArtworks(ctx, repository.ArtworkFilters{Category: "Painting"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = svc.ListArtworks(ctx, repository.ArtworkFilters{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = svc.ListArtworks(ctx, repository.ArtworkFilters{MinPrice: 100, MaxPrice: 50})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestRelatedArtworks_Limit(t *testing.T) {
	svc, _, artworks, _ := newTestService()
	ctx := context.Background()

	artworks.On("Related", ctx, "ar1", "a1", DefaultRelatedLimit).Return([]domain.Artwork{{ID: "a2"}}, nil)
	artworks.On("Related", ctx, "ar1", "a1", MaxRelatedLimit).Return([]domain.Artwork{}, nil)

	list, err := svc.RelatedArtworks(ctx, "ar1", "a1", 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.RelatedArtworks(ctx, "ar1", "a1", 100)
	require.NoError(t, err)
	artworks.AssertExpectations(t)

	_, err = svc.RelatedArtworks(ctx, "", "a1", 3)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestStats(t *testing.T) {
	svc, artists, artworks, _ := newTestService()
	ctx := context.Background()

	artists.On("Count", ctx).Return(int64(6), nil)
	artworks.On("Count", ctx).Return(int64(12), nil)
	artworks.On("CountByCategory", ctx).Return([]repository.CategoryCount{{Category: "Painting", Count: 7}}, nil)

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), st.TotalArtists)
	assert.Equal(t, int64(12), st.TotalArtworks)
	assert.Len(t, st.Categories, 1)
}
