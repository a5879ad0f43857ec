package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Локальные origins фронтенда, добавляются всегда.
var devOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

func mergeOrigins(allowed []string) []string {
	origins := make([]string, 0, len(devOrigins)+len(allowed))
	seen := make(map[string]bool)
	for _, o := range append(append([]string{}, devOrigins...), allowed...) {
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		origins = append(origins, o)
	}
	return origins
}

// CORS allows the configured origins with credentials, so the session cookie
// travels on cross-origin calls from the storefront.
func CORS(allowed []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     mergeOrigins(allowed),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept", "Origin", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	})
}

// OriginChecker accepts the same origins as CORS. Requests without an Origin
// header come from non-browser clients and pass. Used for websocket upgrades,
// which CORS preflight does not cover.
func OriginChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{})
	for _, o := range mergeOrigins(allowed) {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
