package mirror

import (
	"context"
	"strings"

	"artgallery/internal/modules/realtime"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Watch syncs the store, then follows the server's change feed and refetches
// whatever another tab or device changed for this session. It blocks until
// ctx is done or the connection fails; a nil error means ctx ended.
func (s *Store) Watch(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		return err
	}

	dialer := websocket.Dialer{
		Jar:              s.client.Jar,
		HandshakeTimeout: s.client.Timeout,
	}
	conn, _, err := dialer.DialContext(ctx, s.wsURL(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	for {
		var ev realtime.Event
		if err := conn.ReadJSON(&ev); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := s.apply(ctx, ev); err != nil {
			s.log.Warn("refetch after change event failed", zap.String("type", ev.Type), zap.Error(err))
		}
	}
}

func (s *Store) apply(ctx context.Context, ev realtime.Event) error {
	switch ev.Type {
	case realtime.EventCartUpdated:
		return s.fetchCart(ctx, true)
	case realtime.EventWishlistUpdated:
		return s.fetchWishlist(ctx, true)
	case realtime.EventFollowsUpdated:
		return s.fetchFollows(ctx, true)
	}
	return nil
}

func (s *Store) wsURL() string {
	u := *s.base
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	u.RawQuery = ""
	return u.String()
}
