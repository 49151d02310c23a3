// Package catalog holds the static service definitions and the merge that
// overlays operator overrides on top of them.
package catalog

import "fmt"

type Difficulty string

const (
	DifficultyLow    Difficulty = "Low"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHigh   Difficulty = "High"
)

type Category string

const (
	CategoryCableCar      Category = "cable_car"
	CategoryStars         Category = "stars"
	CategoryHiking        Category = "hiking"
	CategoryObservatory   Category = "observatory"
	CategoryIndependently Category = "independently"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryCableCar, CategoryStars, CategoryHiking, CategoryObservatory, CategoryIndependently:
		return true
	}
	return false
}

// Service is an immutable catalog entry. Text fields hold translation keys.
type Service struct {
	Slug                string
	TitleKey            string
	ShortDescriptionKey string
	DescriptionKey      string
	FullDescriptionKey  string
	Price               float64 // EUR
	Duration            string
	Difficulty          Difficulty
	Rating              float64
	ReviewCount         int
	Languages           []string
	Images              []string
	Category            Category
	HighlightsKeys      []string
	IncludesKeys        []string
	NotIncludedKeys     []string
	RestrictionsKeys    []string
	ImportantInfoKeys   []string
	PrepareKeys         []string
	MeetingPoint        string
	RelatedSlugs        []string
}

// Store is a read-only slug index over a fixed list of services.
type Store struct {
	services []Service
	bySlug   map[string]int
}

// NewStore indexes services by slug. Duplicate slugs are an authoring error.
func NewStore(services []Service) (*Store, error) {
	s := &Store{
		services: services,
		bySlug:   make(map[string]int, len(services)),
	}
	for i, svc := range services {
		if svc.Slug == "" {
			return nil, fmt.Errorf("catalog entry %d has no slug", i)
		}
		if _, dup := s.bySlug[svc.Slug]; dup {
			return nil, fmt.Errorf("duplicate catalog slug %q", svc.Slug)
		}
		s.bySlug[svc.Slug] = i
	}
	return s, nil
}

// Default returns the store built from the authored service list.
func Default() *Store {
	s, err := NewStore(services)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Store) Lookup(slug string) (Service, bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return Service{}, false
	}
	return s.services[i], true
}

// Related returns the curated related services in authored order, skipping
// slugs that are not in the catalog.
func (s *Store) Related(slug string) []Service {
	svc, ok := s.Lookup(slug)
	if !ok {
		return nil
	}

	related := make([]Service, 0, len(svc.RelatedSlugs))
	for _, rs := range svc.RelatedSlugs {
		if r, ok := s.Lookup(rs); ok {
			related = append(related, r)
		}
	}
	return related
}

func (s *Store) All() []Service {
	out := make([]Service, len(s.services))
	copy(out, s.services)
	return out
}

func (s *Store) ByCategory(category Category) []Service {
	var out []Service
	for _, svc := range s.services {
		if svc.Category == category {
			out = append(out, svc)
		}
	}
	return out
}
