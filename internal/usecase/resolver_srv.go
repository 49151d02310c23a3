package usecase

import (
	"context"

	"teide-booking/internal/data/catalog"
	"teide-booking/internal/data/entity"
	"teide-booking/internal/data/repository"

	"go.uber.org/zap"
)

// ResolverService produces the effective view of catalog services. Every read
// path (public pages, metadata, JSON-LD, admin, pricing) goes through it and
// nothing is cached, so an admin edit is visible on the next request.
type ResolverService interface {
	// Resolve returns nil without error when slug is not in the catalog.
	Resolve(ctx context.Context, slug string) (*catalog.EffectiveService, error)
	// ResolveWithOverride also returns the raw stored override (nil if none).
	ResolveWithOverride(ctx context.Context, slug string) (*catalog.EffectiveService, *entity.ServiceOverride, error)
	ResolveAll(ctx context.Context) ([]catalog.EffectiveService, error)
	ResolveCategory(ctx context.Context, category catalog.Category) ([]catalog.EffectiveService, error)
	Related(ctx context.Context, slug string) ([]catalog.EffectiveService, error)
}

type resolverService struct {
	catalog   *catalog.Store
	overrides repository.ServiceOverrideRepository
	log       *zap.Logger
}

func NewResolverService(store *catalog.Store, overrides repository.ServiceOverrideRepository, log *zap.Logger) ResolverService {
	return &resolverService{
		catalog:   store,
		overrides: overrides,
		log:       log.With(zap.String("service", "resolver")),
	}
}

func (s *resolverService) Resolve(ctx context.Context, slug string) (*catalog.EffectiveService, error) {
	eff, _, err := s.ResolveWithOverride(ctx, slug)
	return eff, err
}

func (s *resolverService) ResolveWithOverride(ctx context.Context, slug string) (*catalog.EffectiveService, *entity.ServiceOverride, error) {
	svc, ok := s.catalog.Lookup(slug)
	if !ok {
		return nil, nil, nil
	}

	override, err := s.overrides.Find(ctx, slug)
	if err != nil {
		return nil, nil, internal("load service override", err)
	}

	eff := catalog.Merge(svc, override)
	return &eff, override, nil
}

func (s *resolverService) ResolveAll(ctx context.Context) ([]catalog.EffectiveService, error) {
	return s.mergeAll(ctx, s.catalog.All())
}

func (s *resolverService) ResolveCategory(ctx context.Context, category catalog.Category) ([]catalog.EffectiveService, error) {
	return s.mergeAll(ctx, s.catalog.ByCategory(category))
}

func (s *resolverService) Related(ctx context.Context, slug string) ([]catalog.EffectiveService, error) {
	return s.mergeAll(ctx, s.catalog.Related(slug))
}

func (s *resolverService) mergeAll(ctx context.Context, services []catalog.Service) ([]catalog.EffectiveService, error) {
	if len(services) == 0 {
		return nil, nil
	}

	overrides, err := s.overrides.FindAll(ctx)
	if err != nil {
		return nil, internal("load service overrides", err)
	}

	out := make([]catalog.EffectiveService, 0, len(services))
	for _, svc := range services {
		out = append(out, catalog.Merge(svc, overrides[svc.Slug]))
	}
	return out, nil
}
