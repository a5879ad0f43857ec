package server

import (
	"net/http"
	"time"

	"artgallery/internal/config"
	"artgallery/internal/middleware"
	"artgallery/internal/modules/cart"
	"artgallery/internal/modules/catalog"
	"artgallery/internal/modules/follow"
	"artgallery/internal/modules/realtime"
	"artgallery/internal/modules/review"
	"artgallery/internal/modules/submission"
	"artgallery/internal/modules/wishlist"
	"artgallery/internal/pkg/cache"
	"artgallery/internal/pkg/currency"
	"artgallery/internal/pkg/session"
	"artgallery/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the assembled HTTP stack and the long lived pieces main needs
// to shut down.
type App struct {
	Router *gin.Engine
	Cache  *cache.Cache
	Hub    *realtime.Hub
}

// New wires repositories, services and handlers onto a gin engine.
func New(cfg *config.Config, db *gorm.DB, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}

	// Repositories
	artistRepo := repository.NewArtistRepository(db)
	artworkRepo := repository.NewArtworkRepository(db)
	cartRepo := repository.NewCartRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	followRepo := repository.NewFollowRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Shared infrastructure
	readCache := cache.New(log.Named("cache"))
	hub := realtime.NewHub(log.Named("realtime"))
	sessions := session.NewManager(cfg.SessionSecret, cfg.CookieSecure)

	policies := catalog.Policies{
		Hours: cache.Policy{Stale: cfg.HoursStale, Expire: cfg.HoursExpire},
		Days:  cache.Policy{Stale: cfg.DaysStale, Expire: cfg.DaysExpire},
	}

	// Services
	catalogService := catalog.NewService(artistRepo, artworkRepo, readCache, policies, log.Named("catalog"))
	submissionService := submission.NewService(db, readCache, currency.Code(cfg.DefaultCurrency), log.Named("submission"))
	cartService := cart.NewService(cartRepo, artworkRepo, hub, log.Named("cart"))
	wishlistService := wishlist.NewService(wishlistRepo, artworkRepo, hub)
	followService := follow.NewService(followRepo, artistRepo, hub)
	reviewService := review.NewService(reviewRepo, artworkRepo)

	// Handlers
	catalogHandler := catalog.NewHandler(catalogService)
	submissionHandler := submission.NewHandler(submissionService)
	cartHandler := cart.NewHandler(cartService)
	wishlistHandler := wishlist.NewHandler(wishlistService)
	followHandler := follow.NewHandler(followService)
	reviewHandler := review.NewHandler(reviewService)
	realtimeHandler := realtime.NewHandler(hub, middleware.OriginChecker(cfg.AllowedOrigins), log.Named("realtime"))

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	v1 := r.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(v1)
		submissionHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)

		// session scoped: cookie is set on every response
		scoped := v1.Group("")
		scoped.Use(middleware.Session(sessions))
		{
			cartHandler.RegisterRoutes(scoped)
			wishlistHandler.RegisterRoutes(scoped)
			followHandler.RegisterRoutes(scoped)
			realtimeHandler.RegisterRoutes(scoped)
		}
	}
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &App{Router: r, Cache: readCache, Hub: hub}
}
