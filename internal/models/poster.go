package models

const (
	DefaultTheme    = "noir"
	DefaultDistance = 18000
)

// PosterRequest is the body of both generate endpoints. Width/height bounds
// (1-20 inches) are enforced here at binding time; theme and size membership
// are checked against the catalog afterwards. Width, height and distance are
// pointers so an explicit zero is validated (and passed through) rather than
// mistaken for an absent field.
type PosterRequest struct {
	City           string   `json:"city" binding:"required,min=1"`
	Country        string   `json:"country" binding:"required,min=1"`
	Theme          string   `json:"theme"`
	Size           string   `json:"size,omitempty"`
	Width          *float64 `json:"width,omitempty" binding:"omitempty,gte=1,lte=20"`
	Height         *float64 `json:"height,omitempty" binding:"omitempty,gte=1,lte=20"`
	Distance       *int     `json:"distance,omitempty"`
	DisplayCity    string   `json:"display_city,omitempty"`
	DisplayCountry string   `json:"display_country,omitempty"`
	FontFamily     string   `json:"font_family,omitempty"`
	PreviewMaxPx   int      `json:"preview_max_px,omitempty" binding:"omitempty,gte=16,lte=4096"`
}

// ApplyDefaults fills the fields that default server-side rather than at
// binding time. Explicitly supplied values, zero included, are left alone.
func (r *PosterRequest) ApplyDefaults() {
	if r.Theme == "" {
		r.Theme = DefaultTheme
	}
	if r.Distance == nil {
		d := DefaultDistance
		r.Distance = &d
	}
}

type Base64Response struct {
	Success     bool   `json:"success"`
	Filename    string `json:"filename"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Theme       string `json:"theme"`
	ImageBase64 string `json:"image_base64"`
	ContentType string `json:"content_type"`
	StorageURL  string `json:"storage_url,omitempty"`
}
