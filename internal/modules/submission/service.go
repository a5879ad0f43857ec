package submission

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"artgallery/internal/domain"
	"artgallery/internal/modules/catalog"
	"artgallery/internal/pkg/currency"
	"artgallery/internal/pkg/sanitize"
	"artgallery/internal/pkg/validator"
	"artgallery/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultArtistBio   = "Emerging artist"
	DefaultArtistImage = "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop"
)

type Invalidator interface {
	Invalidate(tags ...string)
}

type Service struct {
	db              *gorm.DB
	artists         *repository.ArtistRepository
	artworks        *repository.ArtworkRepository
	cache           Invalidator
	defaultCurrency currency.Code
	log             *zap.Logger
}

func NewService(db *gorm.DB, cache Invalidator, defaultCurrency currency.Code, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if !defaultCurrency.Valid() {
		defaultCurrency = currency.INR
	}
	return &Service{
		db:              db,
		artists:         repository.NewArtistRepository(db),
		artworks:        repository.NewArtworkRepository(db),
		cache:           cache,
		defaultCurrency: defaultCurrency,
		log:             log,
	}
}

// Result of a submission. ArtistCreated is false when an existing artist
// matched by name or instagram handle.
type Result struct {
	Artwork       *domain.Artwork
	ArtistCreated bool
}

// Submit resolves or creates the artist and creates the artwork in one
// transaction, then drops the affected cache tags.
func (s *Service) Submit(ctx context.Context, req SubmitArtworkRequest) (*Result, error) {
	artist, artwork, err := s.normalize(req)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		artists := s.artists.WithTx(tx)
		artworks := s.artworks.WithTx(tx)

		instagram := ""
		if artist.Instagram != nil {
			instagram = *artist.Instagram
		}
		found, err := artists.FindByNameOrInstagram(ctx, artist.Name, instagram)
		switch {
		case err == nil:
			artist = found
		case errors.Is(err, repository.ErrNotFound):
			if err := artists.Create(ctx, artist); err != nil {
				return err
			}
			res.ArtistCreated = true
		default:
			return err
		}

		artwork.ArtistID = artist.ID
		return artworks.Create(ctx, artwork)
	})
	if err != nil {
		s.log.Error("artwork submission failed",
			zap.String("artist_name", artist.Name),
			zap.String("title", artwork.Title),
			zap.Error(err))
		return nil, err
	}

	// Counts of existing artists in the artists listing are allowed to lag
	// (days policy); a brand new artist must show up there, so only then
	// the listing tag is dropped as well.
	tags := []string{catalog.TagArtworks, catalog.ArtistTag(artist.ID)}
	if res.ArtistCreated {
		tags = append(tags, catalog.TagArtists)
	}
	if s.cache != nil {
		s.cache.Invalidate(tags...)
	}

	s.log.Info("artwork submitted",
		zap.String("artwork_id", artwork.ID),
		zap.String("artist_id", artist.ID),
		zap.Bool("artist_created", res.ArtistCreated))

	res.Artwork = artwork
	return res, nil
}

func (s *Service) normalize(req SubmitArtworkRequest) (*domain.Artist, *domain.Artwork, error) {
	req.ArtistName = sanitize.Text(req.ArtistName)
	req.ArtistBio = sanitize.Text(req.ArtistBio)
	req.ArtistWebsite = strings.TrimSpace(req.ArtistWebsite)
	req.ArtistInstagram = sanitize.Text(req.ArtistInstagram)
	req.ArtistProfileImage = strings.TrimSpace(req.ArtistProfileImage)
	req.Title = sanitize.Text(req.Title)
	req.Image = strings.TrimSpace(req.Image)
	req.Description = sanitize.Text(req.Description)
	req.Dimensions = sanitize.Text(req.Dimensions)
	req.Category = sanitize.Text(req.Category)
	req.Medium = sanitize.Text(req.Medium)
	req.Price = FlexString(strings.TrimSpace(string(req.Price)))
	req.Year = FlexString(strings.TrimSpace(string(req.Year)))

	fields := validator.Validate(req)
	if fields == nil {
		fields = map[string]string{}
	}

	var price float64
	if _, bad := fields["price"]; !bad {
		p, err := currency.ParsePrice(string(req.Price))
		if err != nil {
			fields["price"] = "invalid"
		}
		price = p
	}

	var year int
	if _, bad := fields["year"]; !bad {
		y, err := strconv.Atoi(string(req.Year))
		if err != nil || y <= 0 || y > 9999 {
			fields["year"] = "invalid"
		}
		year = y
	}

	cur, err := currency.Parse(req.Currency, s.defaultCurrency)
	if err != nil {
		fields["currency"] = "oneof INR USD"
	}

	if len(fields) > 0 {
		return nil, nil, &ValidationError{Fields: fields}
	}

	artist := &domain.Artist{
		Name:           req.ArtistName,
		Bio:            req.ArtistBio,
		ProfileImage:   req.ArtistProfileImage,
		Specialization: req.Category,
		Website:        sanitize.Optional(&req.ArtistWebsite),
		Instagram:      sanitize.Optional(&req.ArtistInstagram),
	}
	if artist.Bio == "" {
		artist.Bio = DefaultArtistBio
	}
	if artist.ProfileImage == "" {
		artist.ProfileImage = DefaultArtistImage
	}

	artwork := &domain.Artwork{
		Title:       req.Title,
		Price:       price,
		Currency:    cur,
		Image:       req.Image,
		Description: req.Description,
		Dimensions:  req.Dimensions,
		Year:        year,
		Category:    req.Category,
		Medium:      sanitize.Optional(&req.Medium),
	}
	return artist, artwork, nil
}
