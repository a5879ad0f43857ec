package session

import (
	"errors"
	"net/http"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	CookieName = "sessionId"
	CookieTTL  = 365 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid session token")

// Manager mints and verifies session cookies. The cookie value is an HS256
// token whose subject is the session id; ids themselves are random UUIDs.
type Manager struct {
	secret []byte
	secure bool
	now    func() time.Time
}

type Claims struct {
	jwtlib.RegisteredClaims
}

func NewManager(secret string, secure bool) *Manager {
	return &Manager{
		secret: []byte(secret),
		secure: secure,
		now:    time.Now,
	}
}

// Mint returns a new session id and the signed cookie value carrying it.
func (m *Manager) Mint() (id string, token string, err error) {
	id = uuid.NewString()
	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:  id,
			IssuedAt: jwtlib.NewNumericDate(m.now()),
		},
	}
	token, err = jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", err
	}
	return id, token, nil
}

// Verify returns the session id carried by a cookie value.
func (m *Manager) Verify(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}
	parsed, err := jwtlib.ParseWithClaims(token, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return m.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Resolve reads the session cookie from r, minting a new session when the
// cookie is missing or fails verification.
func (m *Manager) Resolve(r *http.Request) (id string, token string, fresh bool, err error) {
	if c, cerr := r.Cookie(CookieName); cerr == nil {
		if id, verr := m.Verify(c.Value); verr == nil {
			return id, c.Value, false, nil
		}
	}
	id, token, err = m.Mint()
	if err != nil {
		return "", "", false, err
	}
	return id, token, true, nil
}

// Cookie builds the long lived cookie for token.
func (m *Manager) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(CookieTTL / time.Second),
		Expires:  m.now().Add(CookieTTL),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
