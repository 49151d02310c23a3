package usecase

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"teide-booking/internal/data/catalog"
	"teide-booking/internal/data/entity"
	"teide-booking/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPageFixture() (PageService, *fakeOverrideRepo) {
	overrides := newFakeOverrideRepo()
	resolver := NewResolverService(catalog.Default(), overrides, zap.NewNop())
	translator := i18n.NewMapTranslator("en", map[string]map[string]string{
		"en": {
			"services.teide-cable-car.title":       "Teide Cable Car Tickets",
			"services.teide-cable-car.description": "Ride to the top of Spain.",
		},
		"es": {"services.teide-cable-car.title": "Entradas Teleférico del Teide"},
	})
	return NewPageService(resolver, translator, "https://www.teideexplorer.com/", zap.NewNop()), overrides
}

func TestServicePageFromCatalog(t *testing.T) {
	svc, _ := newPageFixture()

	page, err := svc.ServicePage(context.Background(), "teide-cable-car", "es")
	require.NoError(t, err)

	assert.Equal(t, "es", page.Locale)
	assert.Equal(t, "Entradas Teleférico del Teide", page.Service.Title)
	assert.Equal(t, "Ride to the top of Spain.", page.Service.Description)
	assert.Equal(t, "Entradas Teleférico del Teide | Volcano Teide", page.Metadata.Title)
	assert.Equal(t, "https://www.teideexplorer.com/es/services/teide-cable-car", page.Metadata.Canonical)
	assert.Len(t, page.Metadata.Alternates, 6)
	assert.Equal(t, "https://www.teideexplorer.com/pl/services/teide-cable-car", page.Metadata.Alternates["pl"])
	assert.Equal(t, "€23.50", page.Metadata.PriceLabel)
	require.Len(t, page.Metadata.OpenGraph.Images, 1)
	assert.Equal(t, page.Service.Images[0], page.Metadata.OpenGraph.Images[0])

	assert.Equal(t, "TouristTrip", page.JSONLD.Type)
	assert.Equal(t, "23.50", page.JSONLD.Offers.Price)
	assert.Equal(t, "EUR", page.JSONLD.Offers.PriceCurrency)
	assert.Equal(t, "5", page.JSONLD.AggregateRating.BestRating)
	assert.Equal(t, "Volcano Teide", page.JSONLD.Provider.Name)

	assert.NotEmpty(t, page.Related)
}

func TestServicePageAppliesOverrideEverywhere(t *testing.T) {
	svc, overrides := newPageFixture()
	price := 19.99
	overrides.byslug["teide-cable-car"] = &entity.ServiceOverride{
		Slug:   "teide-cable-car",
		Price:  &price,
		Images: []string{"https://cdn.example.com/new.jpg"},
		Data: &entity.ServiceOverrideData{
			Title:       "Sunrise Cable Car",
			Description: strings.Repeat("á", 200),
		},
	}

	for _, locale := range []string{"en", "de"} {
		page, err := svc.ServicePage(context.Background(), "teide-cable-car", locale)
		require.NoError(t, err)

		assert.Equal(t, "Sunrise Cable Car", page.Service.Title)
		assert.Equal(t, "Sunrise Cable Car | Volcano Teide", page.Metadata.Title)
		assert.Equal(t, "Sunrise Cable Car", page.JSONLD.Name)
		assert.Equal(t, "€19.99", page.Metadata.PriceLabel)
		assert.Equal(t, "19.99", page.JSONLD.Offers.Price)
		assert.Equal(t, 19.99, page.Service.Price)
		assert.Equal(t, []string{"https://cdn.example.com/new.jpg"}, page.Metadata.OpenGraph.Images)
		assert.Equal(t, []string{"https://cdn.example.com/new.jpg"}, page.JSONLD.Image)
		assert.Equal(t, 160, utf8.RuneCountInString(page.Metadata.Description))
		assert.Equal(t, 200, utf8.RuneCountInString(page.JSONLD.Description))
	}
}

func TestServicePageRelatedUsesOverrides(t *testing.T) {
	svc, overrides := newPageFixture()
	related := catalog.Default().Related("teide-cable-car")
	require.NotEmpty(t, related)

	price := 5.0
	overrides.byslug[related[0].Slug] = &entity.ServiceOverride{Slug: related[0].Slug, Price: &price}

	page, err := svc.ServicePage(context.Background(), "teide-cable-car", "en")
	require.NoError(t, err)
	require.Len(t, page.Related, len(related))
	assert.Equal(t, related[0].Slug, page.Related[0].Slug)
	assert.Equal(t, 5.0, page.Related[0].Price)
}

func TestServicePageUnknownSlug(t *testing.T) {
	svc, _ := newPageFixture()
	_, err := svc.ServicePage(context.Background(), "volcano-bungee", "en")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServicePageStoreFailure(t *testing.T) {
	svc, overrides := newPageFixture()
	overrides.err = errStoreDown

	_, err := svc.ServicePage(context.Background(), "teide-cable-car", "en")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListServicesCards(t *testing.T) {
	svc, _ := newPageFixture()

	cards, err := svc.ListServices(context.Background(), "en", "")
	require.NoError(t, err)
	require.Len(t, cards, len(catalog.Default().All()))
	assert.Equal(t, "teide-cable-car", cards[0].Slug)
	assert.Equal(t, "Teide Cable Car Tickets", cards[0].Title)
	assert.NotEmpty(t, cards[0].Image)
}

func TestListServicesByCategory(t *testing.T) {
	svc, overrides := newPageFixture()
	stars := catalog.Default().ByCategory(catalog.CategoryStars)
	require.NotEmpty(t, stars)

	price := 42.0
	overrides.byslug[stars[0].Slug] = &entity.ServiceOverride{Slug: stars[0].Slug, Price: &price}

	cards, err := svc.ListServices(context.Background(), "en", "stars")
	require.NoError(t, err)
	require.Len(t, cards, len(stars))
	for i, card := range cards {
		assert.Equal(t, stars[i].Slug, card.Slug)
	}
	assert.Equal(t, 42.0, cards[0].Price)
}

func TestListServicesRejectsUnknownCategory(t *testing.T) {
	svc, _ := newPageFixture()

	_, err := svc.ListServices(context.Background(), "en", "bungee")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "category")
}

func TestPriceLabel(t *testing.T) {
	assert.Equal(t, "€19.99", PriceLabel(19.99))
	assert.Equal(t, "€35.00", PriceLabel(35))
}
