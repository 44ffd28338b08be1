package service

import (
	"context"

	"grill-master/internal/model"
	"grill-master/internal/repository"

	"github.com/rs/zerolog"
)

// Categories is the fixed, hand-maintained list of catalog buckets, in
// display order. A product whose category matches none of these is never
// rendered; there is no catch-all bucket.
var Categories = []string{"Grillades", "Accompagnements", "Boissons", "Sauces"}

// categoryMeta maps a category label to its display hints. The lookup is
// exhaustive over known labels; unknown labels get the fallback entry.
type categoryMeta struct {
	Icon  string
	Color string
}

var categoryMetas = map[string]categoryMeta{
	"Grillades":       {Icon: "flame", Color: "from-orange-500 to-red-500"},
	"Accompagnements": {Icon: "salad", Color: "from-green-500 to-emerald-500"},
	"Boissons":        {Icon: "coffee", Color: "from-blue-500 to-cyan-500"},
	"Sauces":          {Icon: "droplet", Color: "from-amber-500 to-yellow-500"},
	"Eau Minerale":    {Icon: "droplet", Color: "from-cyan-500 to-blue-500"},
}

var defaultCategoryMeta = categoryMeta{Icon: "flame", Color: "from-gray-500 to-gray-600"}

// MetaFor returns the icon and colour hints for a category label.
func MetaFor(category string) (icon, color string) {
	meta, ok := categoryMetas[category]
	if !ok {
		meta = defaultCategoryMeta
	}
	return meta.Icon, meta.Color
}

// catalogService implements CatalogService.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// GetCatalog fetches all products and groups them into the fixed category
// buckets. A fetch error is logged and swallowed: the caller gets an empty
// catalog rather than a hard failure. Empty buckets are omitted.
func (s *catalogService) GetCatalog(ctx context.Context) []model.CategoryGroup {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load products, serving empty catalog")
		return []model.CategoryGroup{}
	}

	byCategory := make(map[string][]model.Product)
	for _, p := range products {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	groups := make([]model.CategoryGroup, 0, len(Categories))
	for _, category := range Categories {
		bucket := byCategory[category]
		if len(bucket) == 0 {
			continue
		}

		icon, color := MetaFor(category)
		groups = append(groups, model.CategoryGroup{
			Category: category,
			Icon:     icon,
			Color:    color,
			Products: bucket,
		})
	}

	s.logger.Debug().
		Int("products", len(products)).
		Int("groups", len(groups)).
		Msg("catalog assembled")

	return groups
}
