package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"teide-booking/internal/data/catalog"
	"teide-booking/internal/dto/response"
	"teide-booking/internal/i18n"

	"go.uber.org/zap"
)

const (
	siteName             = "Volcano Teide"
	metaDescriptionLimit = 160
)

// PageService renders the public catalog for a locale.
type PageService interface {
	// ListServices returns every service, or only those in category when it
	// is not empty.
	ListServices(ctx context.Context, locale, category string) ([]response.ServiceCard, error)
	ServicePage(ctx context.Context, slug, locale string) (*response.ServicePageResponse, error)
}

type pageService struct {
	resolver   ResolverService
	translator i18n.Translator
	siteURL    string
	log        *zap.Logger
}

func NewPageService(resolver ResolverService, translator i18n.Translator, siteURL string, log *zap.Logger) PageService {
	return &pageService{
		resolver:   resolver,
		translator: translator,
		siteURL:    strings.TrimRight(siteURL, "/"),
		log:        log.With(zap.String("service", "page")),
	}
}

func (s *pageService) ListServices(ctx context.Context, locale, category string) ([]response.ServiceCard, error) {
	var (
		services []catalog.EffectiveService
		err      error
	)
	if category == "" {
		services, err = s.resolver.ResolveAll(ctx)
	} else {
		c := catalog.Category(category)
		if !c.Valid() {
			return nil, validationFailed("category", "Must be one of: cable_car, stars, hiking, observatory, independently")
		}
		services, err = s.resolver.ResolveCategory(ctx, c)
	}
	if err != nil {
		s.log.Error("Failed to resolve services", zap.Error(err))
		return nil, err
	}

	t := i18n.Func(s.translator, locale)
	cards := make([]response.ServiceCard, 0, len(services))
	for _, eff := range services {
		cards = append(cards, response.ServiceToCard(eff, t))
	}
	return cards, nil
}

func (s *pageService) ServicePage(ctx context.Context, slug, locale string) (*response.ServicePageResponse, error) {
	// one resolution feeds the body, the metadata and the JSON-LD
	eff, err := s.resolver.Resolve(ctx, slug)
	if err != nil {
		s.log.Error("Failed to resolve service", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}
	if eff == nil {
		return nil, notFound("service %s", slug)
	}

	related, err := s.resolver.Related(ctx, slug)
	if err != nil {
		s.log.Error("Failed to resolve related services", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}

	t := i18n.Func(s.translator, locale)
	view := response.ServiceToView(*eff, t)

	cards := make([]response.ServiceCard, 0, len(related))
	for _, r := range related {
		cards = append(cards, response.ServiceToCard(r, t))
	}

	return &response.ServicePageResponse{
		Locale:   locale,
		Service:  view,
		Related:  cards,
		Metadata: s.metadata(view, locale),
		JSONLD:   s.jsonLD(*eff, view, locale),
	}, nil
}

func (s *pageService) serviceURL(locale, slug string) string {
	return fmt.Sprintf("%s/%s/services/%s", s.siteURL, locale, slug)
}

func (s *pageService) metadata(view response.ServiceView, locale string) response.PageMetadata {
	title := fmt.Sprintf("%s | %s", view.Title, siteName)
	description := truncateRunes(view.Description, metaDescriptionLimit)
	canonical := s.serviceURL(locale, view.Slug)

	alternates := make(map[string]string, len(i18n.Locales))
	for _, l := range i18n.Locales {
		alternates[l] = s.serviceURL(l, view.Slug)
	}

	og := response.OpenGraph{
		Title:       title,
		Description: description,
		URL:         canonical,
		Images:      []string{},
		Locale:      locale,
		Type:        "website",
	}
	if len(view.Images) > 0 {
		og.Images = []string{view.Images[0]}
	}

	return response.PageMetadata{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		Alternates:  alternates,
		PriceLabel:  PriceLabel(view.Price),
		OpenGraph:   og,
	}
}

func (s *pageService) jsonLD(eff catalog.EffectiveService, view response.ServiceView, locale string) response.TouristTrip {
	url := s.serviceURL(locale, eff.Slug)
	return response.TouristTrip{
		Context:     "https://schema.org",
		Type:        "TouristTrip",
		Name:        view.Title,
		Description: view.Description,
		URL:         url,
		Image:       view.Images,
		TouristType: "Sightseeing",
		Offers: response.Offer{
			Type:          "Offer",
			Price:         fmt.Sprintf("%.2f", eff.Price),
			PriceCurrency: Currency,
			Availability:  "https://schema.org/InStock",
			URL:           url,
		},
		AggregateRating: response.AggregateRating{
			Type:        "AggregateRating",
			RatingValue: eff.Rating,
			ReviewCount: eff.ReviewCount,
			BestRating:  "5",
		},
		Provider: response.Organization{
			Type: "Organization",
			Name: siteName,
			URL:  s.siteURL,
		},
	}
}

// PriceLabel formats a EUR amount the way pages print it, e.g. €19.99.
func PriceLabel(price float64) string {
	return fmt.Sprintf("€%.2f", price)
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
