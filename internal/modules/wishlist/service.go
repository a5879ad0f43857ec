package wishlist

import (
	"context"
	"strings"

	"artgallery/internal/domain"
	"artgallery/internal/modules/realtime"
)

type Store interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.WishlistItem, error)
	Add(ctx context.Context, sessionID, artworkID string) (*domain.WishlistItem, bool, error)
	Remove(ctx context.Context, sessionID, artworkID string) (bool, error)
}

type ArtworkChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Publisher interface {
	Publish(sessionID, eventType string) int
}

type Service struct {
	items    Store
	artworks ArtworkChecker
	events   Publisher
}

func NewService(items Store, artworks ArtworkChecker, events Publisher) *Service {
	return &Service{items: items, artworks: artworks, events: events}
}

func (s *Service) List(ctx context.Context, sessionID string) ([]domain.WishlistItem, error) {
	items, err := s.items.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.WishlistItem{}
	}
	return items, nil
}

// Add is idempotent. created is false when the artwork was already saved.
func (s *Service) Add(ctx context.Context, sessionID, artworkID string) (item *domain.WishlistItem, created bool, err error) {
	artworkID = strings.TrimSpace(artworkID)
	if sessionID == "" || artworkID == "" {
		return nil, false, ErrInvalidRequest
	}

	ok, err := s.artworks.Exists(ctx, artworkID)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, ErrNotFound
	}

	item, created, err = s.items.Add(ctx, sessionID, artworkID)
	if err != nil {
		return nil, false, err
	}
	if created {
		s.publish(sessionID)
	}
	return item, created, nil
}

func (s *Service) Remove(ctx context.Context, sessionID, artworkID string) error {
	artworkID = strings.TrimSpace(artworkID)
	if sessionID == "" || artworkID == "" {
		return ErrInvalidRequest
	}
	removed, err := s.items.Remove(ctx, sessionID, artworkID)
	if err != nil {
		return err
	}
	if removed {
		s.publish(sessionID)
	}
	return nil
}

func (s *Service) publish(sessionID string) {
	if s.events != nil {
		s.events.Publish(sessionID, realtime.EventWishlistUpdated)
	}
}
