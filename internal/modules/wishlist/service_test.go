package wishlist

import (
	"context"
	"testing"

	"artgallery/internal/domain"
	"artgallery/internal/modules/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListBySession(ctx context.Context, sessionID string) ([]domain.WishlistItem, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WishlistItem), args.Error(1)
}

func (m *MockStore) Add(ctx context.Context, sessionID, artworkID string) (*domain.WishlistItem, bool, error) {
	args := m.Called(ctx, sessionID, artworkID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.WishlistItem), args.Bool(1), args.Error(2)
}

func (m *MockStore) Remove(ctx context.Context, sessionID, artworkID string) (bool, error) {
	args := m.Called(ctx, sessionID, artworkID)
	return args.Bool(0), args.Error(1)
}

type MockArtworks struct {
	mock.Mock
}

func (m *MockArtworks) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(sessionID, eventType string) int {
	return m.Called(sessionID, eventType).Int(0)
}

func TestAdd_PublishesOnlyWhenCreated(t *testing.T) {
	store := new(MockStore)
	artworks := new(MockArtworks)
	events := new(MockPublisher)
	svc := NewService(store, artworks, events)
	ctx := context.Background()

	item := &domain.WishlistItem{SessionID: "s1", ArtworkID: "a1"}
	artworks.On("Exists", ctx, "a1").Return(true, nil)
	store.On("Add", ctx, "s1", "a1").Return(item, true, nil).Once()
	store.On("Add", ctx, "s1", "a1").Return(item, false, nil).Once()
	events.On("Publish", "s1", realtime.EventWishlistUpdated).Return(1).Once()

	_, created, err := svc.Add(ctx, "s1", "a1")
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = svc.Add(ctx, "s1", "a1")
	require.NoError(t, err)
	assert.False(t, created)

	events.AssertNumberOfCalls(t, "Publish", 1)
}

func TestAdd_Errors(t *testing.T) {
	artworks := new(MockArtworks)
	svc := NewService(new(MockStore), artworks, nil)
	ctx := context.Background()

	_, _, err := svc.Add(ctx, "s1", "  ")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	artworks.On("Exists", ctx, "ghost").Return(false, nil)
	_, _, err = svc.Add(ctx, "s1", "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, new(MockArtworks), nil)
	ctx := context.Background()

	store.On("ListBySession", ctx, "s1").Return(nil, nil)
	items, err := svc.List(ctx, "s1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRemove_Absent(t *testing.T) {
	store := new(MockStore)
	events := new(MockPublisher)
	svc := NewService(store, new(MockArtworks), events)
	ctx := context.Background()

	store.On("Remove", ctx, "s1", "a1").Return(false, nil)
	require.NoError(t, svc.Remove(ctx, "s1", "a1"))
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
