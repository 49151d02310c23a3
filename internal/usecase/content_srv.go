package usecase

import (
	"context"
	"strings"
	"time"

	"teide-booking/internal/data/catalog"
	"teide-booking/internal/data/entity"
	"teide-booking/internal/data/repository"
	"teide-booking/internal/dto/request"
	"teide-booking/internal/dto/response"
	"teide-booking/internal/i18n"
	"teide-booking/pkg/utils"

	"go.uber.org/zap"
)

// ContentService is the admin side of service overrides.
type ContentService interface {
	ListServices(ctx context.Context) ([]response.AdminServiceListItem, error)
	GetService(ctx context.Context, slug string) (*response.AdminServiceResponse, error)
	UpdateService(ctx context.Context, slug string, req *request.UpdateServiceRequest) (*response.UpdateServiceResponse, error)
}

type contentService struct {
	resolver   ResolverService
	overrides  repository.ServiceOverrideRepository
	translator i18n.Translator
	locale     string
	now        func() time.Time
	log        *zap.Logger
}

func NewContentService(
	resolver ResolverService,
	overrides repository.ServiceOverrideRepository,
	translator i18n.Translator,
	locale string,
	log *zap.Logger,
) ContentService {
	return &contentService{
		resolver:   resolver,
		overrides:  overrides,
		translator: translator,
		locale:     locale,
		now:        time.Now,
		log:        log.With(zap.String("service", "content")),
	}
}

func (s *contentService) ListServices(ctx context.Context) ([]response.AdminServiceListItem, error) {
	services, err := s.resolver.ResolveAll(ctx)
	if err != nil {
		s.log.Error("Failed to resolve services", zap.Error(err))
		return nil, err
	}

	t := i18n.Func(s.translator, s.locale)
	items := make([]response.AdminServiceListItem, 0, len(services))
	for _, eff := range services {
		items = append(items, response.ServiceToAdminListItem(eff, t))
	}
	return items, nil
}

func (s *contentService) GetService(ctx context.Context, slug string) (*response.AdminServiceResponse, error) {
	eff, override, err := s.resolver.ResolveWithOverride(ctx, slug)
	if err != nil {
		s.log.Error("Failed to resolve service", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}
	if eff == nil {
		return nil, notFound("service %s", slug)
	}

	return &response.AdminServiceResponse{
		Slug:        eff.Slug,
		Category:    eff.Category,
		Effective:   response.ServiceToView(*eff, i18n.Func(s.translator, s.locale)),
		Override:    response.OverrideToFields(override),
		HasOverride: eff.HasOverride,
	}, nil
}

func (s *contentService) UpdateService(ctx context.Context, slug string, req *request.UpdateServiceRequest) (*response.UpdateServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Service override validation failed", zap.Any("errors", errs), zap.String("slug", slug))
		return nil, NewValidationError(errs)
	}
	if req.Difficulty != nil && *req.Difficulty != "" {
		switch catalog.Difficulty(*req.Difficulty) {
		case catalog.DifficultyLow, catalog.DifficultyMedium, catalog.DifficultyHigh:
		default:
			return nil, validationFailed("difficulty", "Must be one of: Low, Medium, High")
		}
	}

	eff, err := s.resolver.Resolve(ctx, slug)
	if err != nil {
		return nil, err
	}
	if eff == nil {
		return nil, notFound("service %s", slug)
	}

	if req.Price == nil && req.Images == nil && !req.HasContent() {
		s.log.Info("Service override unchanged, nothing supplied", zap.String("slug", slug))
		return &response.UpdateServiceResponse{Success: true, Slug: slug}, nil
	}

	in := repository.ServiceOverrideUpsert{
		Slug:   slug,
		Price:  req.Price,
		Images: req.Images,
	}
	if req.HasContent() {
		in.Data = overrideData(req)
	}

	if err := s.overrides.Upsert(ctx, in, s.now()); err != nil {
		s.log.Error("Failed to save service override", zap.Error(err), zap.String("slug", slug))
		return nil, internal("save service override", err)
	}

	s.log.Info("Service override saved",
		zap.String("slug", slug),
		zap.Bool("price", req.Price != nil),
		zap.Bool("images", req.Images != nil),
		zap.Bool("content", in.Data != nil),
	)

	return &response.UpdateServiceResponse{Success: true, Slug: slug}, nil
}

func overrideData(req *request.UpdateServiceRequest) *entity.ServiceOverrideData {
	return &entity.ServiceOverrideData{
		Title:            trimmed(req.Title),
		ShortDescription: trimmed(req.ShortDescription),
		Description:      trimmed(req.Description),
		FullDescription:  trimmed(req.FullDescription),
		Duration:         trimmed(req.Duration),
		Difficulty:       trimmed(req.Difficulty),
		Rating:           req.Rating,
		ReviewCount:      req.ReviewCount,
		Languages:        compact(req.Languages),
		Highlights:       compact(req.Highlights),
		Includes:         compact(req.Includes),
		NotIncluded:      compact(req.NotIncluded),
		Restrictions:     compact(req.Restrictions),
		ImportantInfo:    compact(req.ImportantInfo),
		Prepare:          compact(req.Prepare),
		MeetingPoint:     trimmed(req.MeetingPoint),
	}
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// compact drops blank entries the editor leaves behind.
func compact(in []string) []string {
	var out []string
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
