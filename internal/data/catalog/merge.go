package catalog

import "teide-booking/internal/data/entity"

// Text is either a translation key from the catalog or literal override text.
type Text struct {
	Key     string
	Literal string
}

func (t Text) Overridden() bool { return t.Literal != "" }

// Render returns the literal when set, otherwise the translated key.
func (t Text) Render(translate func(key string) string) string {
	if t.Overridden() {
		return t.Literal
	}
	return translate(t.Key)
}

// TextList mirrors Text for the ordered content lists.
type TextList struct {
	Keys     []string
	Literals []string
}

func (l TextList) Overridden() bool { return len(l.Literals) > 0 }

func (l TextList) Render(translate func(key string) string) []string {
	if l.Overridden() {
		return append([]string(nil), l.Literals...)
	}
	out := make([]string, len(l.Keys))
	for i, k := range l.Keys {
		out[i] = translate(k)
	}
	return out
}

// EffectiveService is a catalog entry with its override applied.
type EffectiveService struct {
	Slug         string
	Category     Category
	Price        float64
	Duration     string
	Difficulty   string
	Rating       float64
	ReviewCount  int
	Languages    []string
	Images       []string
	MeetingPoint string
	RelatedSlugs []string

	Title            Text
	ShortDescription Text
	Description      Text
	FullDescription  Text

	Highlights    TextList
	Includes      TextList
	NotIncluded   TextList
	Restrictions  TextList
	ImportantInfo TextList
	Prepare       TextList

	// HasOverride is true only when a stored override changes at least one
	// field; a row with nothing but empty values does not count.
	HasOverride bool
}

// Merge overlays o on svc field by field. A field wins only when it is present
// and non-empty; lists replace the catalog list wholesale. o may be nil.
func Merge(svc Service, o *entity.ServiceOverride) EffectiveService {
	eff := EffectiveService{
		Slug:             svc.Slug,
		Category:         svc.Category,
		Price:            svc.Price,
		Duration:         svc.Duration,
		Difficulty:       string(svc.Difficulty),
		Rating:           svc.Rating,
		ReviewCount:      svc.ReviewCount,
		Languages:        cloneStrings(svc.Languages),
		Images:           cloneStrings(svc.Images),
		MeetingPoint:     svc.MeetingPoint,
		RelatedSlugs:     cloneStrings(svc.RelatedSlugs),
		Title:            Text{Key: svc.TitleKey},
		ShortDescription: Text{Key: svc.ShortDescriptionKey},
		Description:      Text{Key: svc.DescriptionKey},
		FullDescription:  Text{Key: svc.FullDescriptionKey},
		Highlights:       TextList{Keys: cloneStrings(svc.HighlightsKeys)},
		Includes:         TextList{Keys: cloneStrings(svc.IncludesKeys)},
		NotIncluded:      TextList{Keys: cloneStrings(svc.NotIncludedKeys)},
		Restrictions:     TextList{Keys: cloneStrings(svc.RestrictionsKeys)},
		ImportantInfo:    TextList{Keys: cloneStrings(svc.ImportantInfoKeys)},
		Prepare:          TextList{Keys: cloneStrings(svc.PrepareKeys)},
	}
	if o.Empty() {
		return eff
	}

	eff.HasOverride = true
	if o.Price != nil {
		eff.Price = *o.Price
	}
	if len(o.Images) > 0 {
		eff.Images = cloneStrings(o.Images)
	}

	d := o.Data
	if d == nil {
		return eff
	}

	eff.Title.Literal = d.Title
	eff.ShortDescription.Literal = d.ShortDescription
	eff.Description.Literal = d.Description
	eff.FullDescription.Literal = d.FullDescription

	eff.Highlights.Literals = cloneStrings(d.Highlights)
	eff.Includes.Literals = cloneStrings(d.Includes)
	eff.NotIncluded.Literals = cloneStrings(d.NotIncluded)
	eff.Restrictions.Literals = cloneStrings(d.Restrictions)
	eff.ImportantInfo.Literals = cloneStrings(d.ImportantInfo)
	eff.Prepare.Literals = cloneStrings(d.Prepare)

	if d.Duration != "" {
		eff.Duration = d.Duration
	}
	if d.Difficulty != "" {
		eff.Difficulty = d.Difficulty
	}
	if d.Rating != nil {
		eff.Rating = *d.Rating
	}
	if d.ReviewCount != nil {
		eff.ReviewCount = *d.ReviewCount
	}
	if len(d.Languages) > 0 {
		eff.Languages = cloneStrings(d.Languages)
	}
	if d.MeetingPoint != "" {
		eff.MeetingPoint = d.MeetingPoint
	}

	return eff
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	return append([]string(nil), in...)
}
