package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"artgallery/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func sessionRouter(m *session.Manager) *gin.Engine {
	router := gin.New()
	router.Use(Session(m))
	router.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session_id": c.GetString("session_id")})
	})
	return router
}

func TestSession_SetsCookieForNewVisitor(t *testing.T) {
	m := session.NewManager("test-secret", false)
	router := sessionRouter(m)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	id, err := m.Verify(cookies[0].Value)
	require.NoError(t, err)
	assert.Contains(t, w.Body.String(), id)
}

func TestSession_EchoesExistingCookie(t *testing.T) {
	m := session.NewManager("test-secret", false)
	router := sessionRouter(m)

	id, token, err := m.Mint()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, token, cookies[0].Value)
	assert.Contains(t, w.Body.String(), id)
}

func TestSession_ForgedCookieGetsNewSession(t *testing.T) {
	other := session.NewManager("other-secret", false)
	_, forged, err := other.Mint()
	require.NoError(t, err)

	m := session.NewManager("test-secret", false)
	router := sessionRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: forged})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, forged, cookies[0].Value)
	_, err = m.Verify(cookies[0].Value)
	assert.NoError(t, err)
}

func TestRecovery_HidesPanicDetails(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(zap.NewNop()))
	router.GET("/boom", func(c *gin.Context) {
		panic("db password is hunter2")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL")
	assert.NotContains(t, w.Body.String(), "hunter2")
}

func TestRequestID_GeneratesAndKeeps(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORS_AllowsConfiguredOriginWithCredentials(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://gallery.example"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://gallery.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://gallery.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRequestLogger_MarksNewSessions(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := session.NewManager("test-secret", false)

	router := gin.New()
	router.Use(RequestLogger(zap.New(core)))
	router.Use(Session(m))
	router.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookies[0])
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request").AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, true, entries[0].ContextMap()["new_session"])
	assert.Equal(t, false, entries[1].ContextMap()["new_session"])
}

func TestOriginChecker(t *testing.T) {
	check := OriginChecker([]string{"https://gallery.example"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil)
	assert.True(t, check(req), "non-browser clients send no Origin")

	req.Header.Set("Origin", "https://gallery.example")
	assert.True(t, check(req))

	req.Header.Set("Origin", "http://localhost:3000")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, check(req))
}
