package follow

import (
	"context"
	"strings"

	"artgallery/internal/domain"
	"artgallery/internal/modules/realtime"
)

type Store interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.ArtistFollow, error)
	Add(ctx context.Context, sessionID, artistID string) (*domain.ArtistFollow, bool, error)
	Remove(ctx context.Context, sessionID, artistID string) (bool, error)
}

type ArtistChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Publisher interface {
	Publish(sessionID, eventType string) int
}

type Service struct {
	follows Store
	artists ArtistChecker
	events  Publisher
}

func NewService(follows Store, artists ArtistChecker, events Publisher) *Service {
	return &Service{follows: follows, artists: artists, events: events}
}

func (s *Service) List(ctx context.Context, sessionID string) ([]domain.ArtistFollow, error) {
	list, err := s.follows.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.ArtistFollow{}
	}
	return list, nil
}

func (s *Service) Follow(ctx context.Context, sessionID, artistID string) (*domain.ArtistFollow, bool, error) {
	artistID = strings.TrimSpace(artistID)
	if sessionID == "" || artistID == "" {
		return nil, false, ErrInvalidRequest
	}

	ok, err := s.artists.Exists(ctx, artistID)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, ErrNotFound
	}

	f, created, err := s.follows.Add(ctx, sessionID, artistID)
	if err != nil {
		return nil, false, err
	}
	if created && s.events != nil {
		s.events.Publish(sessionID, realtime.EventFollowsUpdated)
	}
	return f, created, nil
}

func (s *Service) Unfollow(ctx context.Context, sessionID, artistID string) error {
	artistID = strings.TrimSpace(artistID)
	if sessionID == "" || artistID == "" {
		return ErrInvalidRequest
	}
	removed, err := s.follows.Remove(ctx, sessionID, artistID)
	if err != nil {
		return err
	}
	if removed && s.events != nil {
		s.events.Publish(sessionID, realtime.EventFollowsUpdated)
	}
	return nil
}
