// Package mirror is the client side store of a visitor's session state.
// One Store is built per application session; it talks to the gallery API
// with a cookie jar (so every call carries the same session) and keeps a
// local copy of cart, wishlist, follows and reviews that listeners can
// observe. Mutations go to the server first and then refetch the affected
// collection, the server is always authoritative.
package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"artgallery/internal/domain"
	"artgallery/internal/pkg/currency"

	"go.uber.org/zap"
)

// APIError is a non-2xx answer from the gallery API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gallery api: %d %s: %s", e.Status, e.Code, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type ReviewList struct {
	Reviews       []domain.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	Count         int64           `json:"count"`
}

// State is an immutable snapshot handed to readers and listeners.
type State struct {
	Cart           []domain.CartItem
	CartTotalItems int
	CartTotals     map[currency.Code]float64
	Wishlist       []domain.WishlistItem
	Follows        []domain.ArtistFollow
	Reviews        map[string]ReviewList
	LastSync       time.Time
}

func (s State) clone() State {
	out := State{
		Cart:           append([]domain.CartItem(nil), s.Cart...),
		CartTotalItems: s.CartTotalItems,
		CartTotals:     make(map[currency.Code]float64, len(s.CartTotals)),
		Wishlist:       append([]domain.WishlistItem(nil), s.Wishlist...),
		Follows:        append([]domain.ArtistFollow(nil), s.Follows...),
		Reviews:        make(map[string]ReviewList, len(s.Reviews)),
		LastSync:       s.LastSync,
	}
	for k, v := range s.CartTotals {
		out.CartTotals[k] = v
	}
	for k, v := range s.Reviews {
		out.Reviews[k] = v
	}
	return out
}

type Options struct {
	// HTTPClient is used for API calls. A client without a cookie jar gets one.
	HTTPClient *http.Client
	Logger     *zap.Logger
}

type Store struct {
	base   *url.URL
	client *http.Client
	log    *zap.Logger

	mu    sync.RWMutex
	state State

	listenersMu sync.Mutex
	listeners   map[int]func(State)
	nextID      int
}

// New builds a store for the API rooted at baseURL, e.g.
// "http://localhost:8080/api/v1".
func New(baseURL string, opts Options) (*Store, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", base.Scheme)
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if client.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c := *client
		c.Jar = jar
		client = &c
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Store{
		base:      base,
		client:    client,
		log:       log,
		state:     State{CartTotals: map[currency.Code]float64{}, Reviews: map[string]ReviewList{}},
		listeners: make(map[int]func(State)),
	}, nil
}

/* ---------- READ ACCESSORS ---------- */

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *Store) InWishlist(artworkID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.state.Wishlist {
		if it.ArtworkID == artworkID {
			return true
		}
	}
	return false
}

func (s *Store) IsFollowing(artistID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.state.Follows {
		if f.ArtistID == artistID {
			return true
		}
	}
	return false
}

func (s *Store) CartTotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.CartTotalItems
}

// Subscribe registers fn to be called with a snapshot after every change.
// The returned func removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

/* ---------- SYNC ---------- */

// Refresh loads cart, wishlist and follows from the server.
func (s *Store) Refresh(ctx context.Context) error {
	if err := s.fetchCart(ctx, false); err != nil {
		return err
	}
	if err := s.fetchWishlist(ctx, false); err != nil {
		return err
	}
	if err := s.fetchFollows(ctx, false); err != nil {
		return err
	}
	s.notify()
	return nil
}

type cartPayload struct {
	Items      []domain.CartItem         `json:"items"`
	TotalItems int                       `json:"totalItems"`
	Totals     map[currency.Code]float64 `json:"totals"`
}

func (s *Store) fetchCart(ctx context.Context, notify bool) error {
	var p cartPayload
	if err := s.do(ctx, http.MethodGet, "/cart", nil, nil, &p); err != nil {
		return err
	}
	s.mu.Lock()
	s.state.Cart = p.Items
	s.state.CartTotalItems = p.TotalItems
	s.state.CartTotals = p.Totals
	if s.state.CartTotals == nil {
		s.state.CartTotals = map[currency.Code]float64{}
	}
	s.state.LastSync = time.Now()
	s.mu.Unlock()
	if notify {
		s.notify()
	}
	return nil
}

func (s *Store) fetchWishlist(ctx context.Context, notify bool) error {
	var items []domain.WishlistItem
	if err := s.do(ctx, http.MethodGet, "/wishlist", nil, nil, &items); err != nil {
		return err
	}
	s.mu.Lock()
	s.state.Wishlist = items
	s.state.LastSync = time.Now()
	s.mu.Unlock()
	if notify {
		s.notify()
	}
	return nil
}

func (s *Store) fetchFollows(ctx context.Context, notify bool) error {
	var items []domain.ArtistFollow
	if err := s.do(ctx, http.MethodGet, "/follows", nil, nil, &items); err != nil {
		return err
	}
	s.mu.Lock()
	s.state.Follows = items
	s.state.LastSync = time.Now()
	s.mu.Unlock()
	if notify {
		s.notify()
	}
	return nil
}

/* ---------- CART ---------- */

func (s *Store) AddToCart(ctx context.Context, artworkID string, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}
	body := map[string]interface{}{"artworkId": artworkID, "quantity": quantity}
	if err := s.do(ctx, http.MethodPost, "/cart", nil, body, nil); err != nil {
		return err
	}
	return s.fetchCart(ctx, true)
}

// UpdateQuantity sets the quantity; zero or less removes the item.
func (s *Store) UpdateQuantity(ctx context.Context, artworkID string, quantity int) error {
	body := map[string]interface{}{"artworkId": artworkID, "quantity": quantity}
	if err := s.do(ctx, http.MethodPatch, "/cart", nil, body, nil); err != nil {
		return err
	}
	return s.fetchCart(ctx, true)
}

func (s *Store) RemoveFromCart(ctx context.Context, artworkID string) error {
	q := url.Values{"artworkId": {artworkID}}
	if err := s.do(ctx, http.MethodDelete, "/cart", q, nil, nil); err != nil {
		return err
	}
	return s.fetchCart(ctx, true)
}

/* ---------- WISHLIST / FOLLOWS ---------- */

// ToggleWishlist adds or removes the artwork and returns the new membership.
func (s *Store) ToggleWishlist(ctx context.Context, artworkID string) (bool, error) {
	var err error
	if s.InWishlist(artworkID) {
		err = s.do(ctx, http.MethodDelete, "/wishlist", url.Values{"artworkId": {artworkID}}, nil, nil)
	} else {
		err = s.do(ctx, http.MethodPost, "/wishlist", nil, map[string]string{"artworkId": artworkID}, nil)
	}
	if err != nil {
		return s.InWishlist(artworkID), err
	}
	if err := s.fetchWishlist(ctx, true); err != nil {
		return s.InWishlist(artworkID), err
	}
	return s.InWishlist(artworkID), nil
}

// ToggleFollow follows or unfollows the artist and returns the new state.
func (s *Store) ToggleFollow(ctx context.Context, artistID string) (bool, error) {
	var err error
	if s.IsFollowing(artistID) {
		err = s.do(ctx, http.MethodDelete, "/follows", url.Values{"artistId": {artistID}}, nil, nil)
	} else {
		err = s.do(ctx, http.MethodPost, "/follows", nil, map[string]string{"artistId": artistID}, nil)
	}
	if err != nil {
		return s.IsFollowing(artistID), err
	}
	if err := s.fetchFollows(ctx, true); err != nil {
		return s.IsFollowing(artistID), err
	}
	return s.IsFollowing(artistID), nil
}

/* ---------- REVIEWS ---------- */

// Reviews fetches the reviews of an artwork and keeps them in the state.
func (s *Store) Reviews(ctx context.Context, artworkID string) (ReviewList, error) {
	var list ReviewList
	if err := s.do(ctx, http.MethodGet, "/reviews", url.Values{"artworkId": {artworkID}}, nil, &list); err != nil {
		return ReviewList{}, err
	}
	s.mu.Lock()
	s.state.Reviews[artworkID] = list
	s.mu.Unlock()
	s.notify()
	return list, nil
}

func (s *Store) AddReview(ctx context.Context, artworkID, userName string, rating int, comment string) (*domain.Review, error) {
	body := map[string]interface{}{
		"artworkId": artworkID,
		"userName":  userName,
		"rating":    rating,
		"comment":   comment,
	}
	var rv domain.Review
	if err := s.do(ctx, http.MethodPost, "/reviews", nil, body, &rv); err != nil {
		return nil, err
	}
	if _, err := s.Reviews(ctx, artworkID); err != nil {
		return &rv, err
	}
	return &rv, nil
}

/* ---------- TRANSPORT ---------- */

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Store) endpoint(path string, q url.Values) string {
	u := *s.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if q != nil {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func (s *Store) do(ctx context.Context, method, path string, q url.Values, body, out interface{}) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.endpoint(path, q), rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &APIError{Status: resp.StatusCode, Code: "BAD_RESPONSE", Message: err.Error()}
	}

	if resp.StatusCode >= 300 || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		s.log.Debug("api call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("code", apiErr.Code))
		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (s *Store) notify() {
	snap := s.Snapshot()

	s.listenersMu.Lock()
	fns := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
