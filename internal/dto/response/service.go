package response

import (
	"teide-booking/internal/data/catalog"
	"teide-booking/internal/data/entity"
)

// ServiceView is an effective service rendered for one locale.
type ServiceView struct {
	Slug             string           `json:"slug"`
	Category         catalog.Category `json:"category"`
	Title            string           `json:"title"`
	ShortDescription string           `json:"short_description"`
	Description      string           `json:"description"`
	FullDescription  string           `json:"full_description"`
	Price            float64          `json:"price"`
	Duration         string           `json:"duration"`
	Difficulty       string           `json:"difficulty"`
	Rating           float64          `json:"rating"`
	ReviewCount      int              `json:"review_count"`
	Languages        []string         `json:"languages"`
	Images           []string         `json:"images"`
	Highlights       []string         `json:"highlights"`
	Includes         []string         `json:"includes"`
	NotIncluded      []string         `json:"not_included"`
	Restrictions     []string         `json:"restrictions"`
	ImportantInfo    []string         `json:"important_info"`
	Prepare          []string         `json:"prepare"`
	MeetingPoint     string           `json:"meeting_point"`
	RelatedSlugs     []string         `json:"related_slugs"`
}

// ServiceCard is the short form used in listings and "related" strips.
type ServiceCard struct {
	Slug             string           `json:"slug"`
	Category         catalog.Category `json:"category"`
	Title            string           `json:"title"`
	ShortDescription string           `json:"short_description"`
	Price            float64          `json:"price"`
	Duration         string           `json:"duration"`
	Difficulty       string           `json:"difficulty"`
	Rating           float64          `json:"rating"`
	ReviewCount      int              `json:"review_count"`
	Image            string           `json:"image"`
}

type AdminServiceListItem struct {
	Slug        string           `json:"slug"`
	Category    catalog.Category `json:"category"`
	Title       string           `json:"title"`
	TitleKey    string           `json:"title_key"`
	Price       float64          `json:"price"`
	Images      []string         `json:"images"`
	Duration    string           `json:"duration"`
	Difficulty  string           `json:"difficulty"`
	Rating      float64          `json:"rating"`
	ReviewCount int              `json:"review_count"`
	HasOverride bool             `json:"has_override"`
}

// OverrideFields is the raw stored override. Empty values mean "not
// overridden" so an editor can tell inherited content apart.
type OverrideFields struct {
	Price            *float64 `json:"price"`
	Images           []string `json:"images"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	FullDescription  string   `json:"full_description"`
	Highlights       []string `json:"highlights"`
	Includes         []string `json:"includes"`
	NotIncluded      []string `json:"not_included"`
	Restrictions     []string `json:"restrictions"`
	ImportantInfo    []string `json:"important_info"`
	Prepare          []string `json:"prepare"`
	Duration         string   `json:"duration"`
	Difficulty       string   `json:"difficulty"`
	Rating           *float64 `json:"rating"`
	ReviewCount      *int     `json:"review_count"`
	Languages        []string `json:"languages"`
	MeetingPoint     string   `json:"meeting_point"`
	UpdatedAt        *string  `json:"updated_at"`
}

type AdminServiceResponse struct {
	Slug        string           `json:"slug"`
	Category    catalog.Category `json:"category"`
	Effective   ServiceView      `json:"effective"`
	Override    OverrideFields   `json:"override"`
	HasOverride bool             `json:"has_override"`
}

type UpdateServiceResponse struct {
	Success bool   `json:"success"`
	Slug    string `json:"slug"`
}

// Helper converters
func ServiceToView(eff catalog.EffectiveService, translate func(key string) string) ServiceView {
	return ServiceView{
		Slug:             eff.Slug,
		Category:         eff.Category,
		Title:            eff.Title.Render(translate),
		ShortDescription: eff.ShortDescription.Render(translate),
		Description:      eff.Description.Render(translate),
		FullDescription:  eff.FullDescription.Render(translate),
		Price:            eff.Price,
		Duration:         eff.Duration,
		Difficulty:       eff.Difficulty,
		Rating:           eff.Rating,
		ReviewCount:      eff.ReviewCount,
		Languages:        nonNil(eff.Languages),
		Images:           nonNil(eff.Images),
		Highlights:       eff.Highlights.Render(translate),
		Includes:         eff.Includes.Render(translate),
		NotIncluded:      eff.NotIncluded.Render(translate),
		Restrictions:     eff.Restrictions.Render(translate),
		ImportantInfo:    eff.ImportantInfo.Render(translate),
		Prepare:          eff.Prepare.Render(translate),
		MeetingPoint:     eff.MeetingPoint,
		RelatedSlugs:     nonNil(eff.RelatedSlugs),
	}
}

func ServiceToCard(eff catalog.EffectiveService, translate func(key string) string) ServiceCard {
	card := ServiceCard{
		Slug:             eff.Slug,
		Category:         eff.Category,
		Title:            eff.Title.Render(translate),
		ShortDescription: eff.ShortDescription.Render(translate),
		Price:            eff.Price,
		Duration:         eff.Duration,
		Difficulty:       eff.Difficulty,
		Rating:           eff.Rating,
		ReviewCount:      eff.ReviewCount,
	}
	if len(eff.Images) > 0 {
		card.Image = eff.Images[0]
	}
	return card
}

func ServiceToAdminListItem(eff catalog.EffectiveService, translate func(key string) string) AdminServiceListItem {
	return AdminServiceListItem{
		Slug:        eff.Slug,
		Category:    eff.Category,
		Title:       eff.Title.Render(translate),
		TitleKey:    eff.Title.Key,
		Price:       eff.Price,
		Images:      nonNil(eff.Images),
		Duration:    eff.Duration,
		Difficulty:  eff.Difficulty,
		Rating:      eff.Rating,
		ReviewCount: eff.ReviewCount,
		HasOverride: eff.HasOverride,
	}
}

func OverrideToFields(o *entity.ServiceOverride) OverrideFields {
	f := OverrideFields{
		Images:        []string{},
		Highlights:    []string{},
		Includes:      []string{},
		NotIncluded:   []string{},
		Restrictions:  []string{},
		ImportantInfo: []string{},
		Prepare:       []string{},
		Languages:     []string{},
	}
	if o == nil {
		return f
	}

	f.Price = o.Price
	f.Images = nonNil(o.Images)
	updated := o.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	f.UpdatedAt = &updated

	d := o.Data
	if d == nil {
		return f
	}
	f.Title = d.Title
	f.ShortDescription = d.ShortDescription
	f.Description = d.Description
	f.FullDescription = d.FullDescription
	f.Highlights = nonNil(d.Highlights)
	f.Includes = nonNil(d.Includes)
	f.NotIncluded = nonNil(d.NotIncluded)
	f.Restrictions = nonNil(d.Restrictions)
	f.ImportantInfo = nonNil(d.ImportantInfo)
	f.Prepare = nonNil(d.Prepare)
	f.Duration = d.Duration
	f.Difficulty = d.Difficulty
	f.Rating = d.Rating
	f.ReviewCount = d.ReviewCount
	f.Languages = nonNil(d.Languages)
	f.MeetingPoint = d.MeetingPoint
	return f
}

// lists always encode as [] rather than null
func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
