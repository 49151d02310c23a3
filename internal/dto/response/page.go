package response

// ServicePageResponse is everything a public service page renders, built from
// a single resolution so the body, metadata and structured data agree.
type ServicePageResponse struct {
	Locale   string        `json:"locale"`
	Service  ServiceView   `json:"service"`
	Related  []ServiceCard `json:"related"`
	Metadata PageMetadata  `json:"metadata"`
	JSONLD   TouristTrip   `json:"json_ld"`
}

type PageMetadata struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Canonical   string            `json:"canonical"`
	Alternates  map[string]string `json:"alternates"`
	PriceLabel  string            `json:"price_label"`
	OpenGraph   OpenGraph         `json:"open_graph"`
}

type OpenGraph struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Images      []string `json:"images"`
	Locale      string   `json:"locale"`
	Type        string   `json:"type"`
}

// TouristTrip is schema.org JSON-LD.
type TouristTrip struct {
	Context         string          `json:"@context"`
	Type            string          `json:"@type"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	URL             string          `json:"url"`
	Image           []string        `json:"image"`
	TouristType     string          `json:"touristType"`
	Offers          Offer           `json:"offers"`
	AggregateRating AggregateRating `json:"aggregateRating"`
	Provider        Organization    `json:"provider"`
}

type Offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability"`
	URL           string `json:"url"`
}

type AggregateRating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int     `json:"reviewCount"`
	BestRating  string  `json:"bestRating"`
}

type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
