package entity

import "time"

// ServiceOverride is operator-authored content layered over a catalog entry.
// A nil or empty field means "not overridden".
type ServiceOverride struct {
	Slug      string               `db:"slug"`
	Price     *float64             `db:"price"`
	Images    []string             `db:"images_json"`
	Data      *ServiceOverrideData `db:"data_json"`
	UpdatedAt time.Time            `db:"updated_at"`
}

// ServiceOverrideData is stored as JSON in data_json. Strings are literal
// text shown for every locale.
type ServiceOverrideData struct {
	Title            string   `json:"title,omitempty"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Description      string   `json:"description,omitempty"`
	FullDescription  string   `json:"fullDescription,omitempty"`
	Duration         string   `json:"duration,omitempty"`
	Difficulty       string   `json:"difficulty,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	ReviewCount      *int     `json:"reviewCount,omitempty"`
	Languages        []string `json:"languages,omitempty"`
	Highlights       []string `json:"highlights,omitempty"`
	Includes         []string `json:"includes,omitempty"`
	NotIncluded      []string `json:"notIncluded,omitempty"`
	Restrictions     []string `json:"restrictions,omitempty"`
	ImportantInfo    []string `json:"importantInfo,omitempty"`
	Prepare          []string `json:"prepare,omitempty"`
	MeetingPoint     string   `json:"meetingPoint,omitempty"`
}

// Empty reports whether nothing in o would change the catalog entry.
func (o *ServiceOverride) Empty() bool {
	if o == nil {
		return true
	}
	return o.Price == nil && len(o.Images) == 0 && o.Data.Empty()
}

func (d *ServiceOverrideData) Empty() bool {
	if d == nil {
		return true
	}
	return d.Title == "" && d.ShortDescription == "" && d.Description == "" &&
		d.FullDescription == "" && d.Duration == "" && d.Difficulty == "" &&
		d.Rating == nil && d.ReviewCount == nil && d.MeetingPoint == "" &&
		len(d.Languages) == 0 && len(d.Highlights) == 0 && len(d.Includes) == 0 &&
		len(d.NotIncluded) == 0 && len(d.Restrictions) == 0 &&
		len(d.ImportantInfo) == 0 && len(d.Prepare) == 0
}
