package main

import (
	"flag"
	"log"

	"artgallery/internal/config"
	"artgallery/internal/database"
	"artgallery/internal/domain"
	"artgallery/internal/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	keepSessions := flag.Bool("keep-sessions", false, "do not clear carts, wishlists, follows and reviews")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, zl)
	if err != nil {
		zl.Fatal("DB connection failed", zap.Error(err))
	}

	zl.Info("running migrations")
	if err := database.Migrate(db); err != nil {
		zl.Fatal("AutoMigrate failed", zap.Error(err))
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// children first, foreign keys
		tables := []string{"artworks", "artists"}
		if !*keepSessions {
			tables = append([]string{"reviews", "cart_items", "wishlist_items", "artist_follows"}, tables...)
		}
		for _, t := range tables {
			if err := tx.Exec("DELETE FROM " + t).Error; err != nil {
				return err
			}
		}
		zl.Info("cleared existing data", zap.Strings("tables", tables))

		total := 0
		for _, s := range seedData {
			artist := s.artist
			if err := tx.Create(&artist).Error; err != nil {
				return err
			}
			for _, w := range s.artworks {
				artwork := w
				artwork.ArtistID = artist.ID
				if err := tx.Create(&artwork).Error; err != nil {
					return err
				}
			}
			total += len(s.artworks)
			zl.Info("created artist", zap.String("name", artist.Name), zap.Int("artworks", len(s.artworks)))
		}

		zl.Info("seeding finished", zap.Int("artists", len(seedData)), zap.Int("artworks", total))
		return nil
	})
	if err != nil {
		zl.Fatal("seeding failed", zap.Error(err))
	}

	var count int64
	if err := db.Model(&domain.Artwork{}).Count(&count).Error; err != nil {
		zl.Fatal("counting artworks failed", zap.Error(err))
	}
	zl.Info("catalog ready", zap.Int64("artworks", count))
}
