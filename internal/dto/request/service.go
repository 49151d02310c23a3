package request

// UpdateServiceRequest is a partial override edit. Nil fields are left alone.
// Supplying any text, list or extended field rewrites the stored content
// block as a whole; an empty string or list there means "use the catalog".
type UpdateServiceRequest struct {
	Price  *float64 `json:"price" validate:"omitempty,gte=0,lte=100000"`
	Images []string `json:"images" validate:"omitempty,dive,required"`

	Title            *string `json:"title"`
	ShortDescription *string `json:"short_description"`
	Description      *string `json:"description"`
	FullDescription  *string `json:"full_description"`

	Highlights    []string `json:"highlights"`
	Includes      []string `json:"includes"`
	NotIncluded   []string `json:"not_included"`
	Restrictions  []string `json:"restrictions"`
	ImportantInfo []string `json:"important_info"`
	Prepare       []string `json:"prepare"`

	Duration     *string  `json:"duration" validate:"omitempty,max=100"`
	Difficulty   *string  `json:"difficulty"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount  *int     `json:"review_count" validate:"omitempty,gte=0"`
	Languages    []string `json:"languages"`
	MeetingPoint *string  `json:"meeting_point"`
}

// HasContent reports whether the request touches the content block.
func (r *UpdateServiceRequest) HasContent() bool {
	strs := []*string{
		r.Title, r.ShortDescription, r.Description, r.FullDescription,
		r.Duration, r.Difficulty, r.MeetingPoint,
	}
	for _, s := range strs {
		if s != nil {
			return true
		}
	}

	lists := [][]string{
		r.Highlights, r.Includes, r.NotIncluded, r.Restrictions,
		r.ImportantInfo, r.Prepare, r.Languages,
	}
	for _, l := range lists {
		if l != nil {
			return true
		}
	}

	return r.Rating != nil || r.ReviewCount != nil
}
