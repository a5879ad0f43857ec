package cart

import (
	"context"
	"errors"
	"strings"

	"artgallery/internal/domain"
	"artgallery/internal/modules/realtime"
	"artgallery/internal/pkg/validator"
	"artgallery/internal/repository"

	"go.uber.org/zap"
)

type Store interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	Add(ctx context.Context, sessionID, artworkID string, qty int) (*domain.CartItem, error)
	SetQuantity(ctx context.Context, sessionID, artworkID string, qty int) (*domain.CartItem, error)
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
	log      *zap.Logger
}

func NewService(items Store, artworks ArtworkChecker, events Publisher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{items: items, artworks: artworks, events: events, log: log}
}

func (s *Service) List(ctx context.Context, sessionID string) (CartResponse, error) {
	items, err := s.items.ListBySession(ctx, sessionID)
	if err != nil {
		return CartResponse{}, err
	}
	return NewCartResponse(items), nil
}

// Add puts qty copies of the artwork into the cart, adding to what is there.
func (s *Service) Add(ctx context.Context, sessionID string, req AddItemRequest) (*domain.CartItem, error) {
	if sessionID == "" {
		return nil, ErrInvalidRequest
	}
	req.ArtworkID = strings.TrimSpace(req.ArtworkID)
	if errs := validator.Validate(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	artworkID := req.ArtworkID
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	ok, err := s.artworks.Exists(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	item, err := s.items.Add(ctx, sessionID, artworkID, qty)
	if err != nil {
		if errors.Is(err, repository.ErrQuantityLimit) {
			return nil, ErrQuantityLimit
		}
		return nil, err
	}
	s.publish(sessionID)
	return item, nil
}

// SetQuantity overwrites the quantity. A quantity of zero or less removes the
// item, in which case the returned item is nil.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, req UpdateQuantityRequest) (*domain.CartItem, error) {
	if sessionID == "" {
		return nil, ErrInvalidRequest
	}
	req.ArtworkID = strings.TrimSpace(req.ArtworkID)
	if errs := validator.Validate(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	artworkID := req.ArtworkID

	if *req.Quantity <= 0 {
		removed, err := s.items.Remove(ctx, sessionID, artworkID)
		if err != nil {
			return nil, err
		}
		if !removed {
			return nil, ErrItemNotFound
		}
		s.publish(sessionID)
		return nil, nil
	}

	item, err := s.items.SetQuantity(ctx, sessionID, artworkID, *req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrItemNotFound
		case errors.Is(err, repository.ErrQuantityLimit):
			return nil, ErrQuantityLimit
		}
		return nil, err
	}
	s.publish(sessionID)
	return item, nil
}

// Remove is a no-op when the artwork is not in the cart.
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
	if s.events == nil {
		return
	}
	s.events.Publish(sessionID, realtime.EventCartUpdated)
}
