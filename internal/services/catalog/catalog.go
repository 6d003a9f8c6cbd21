package catalog

import (
	"fmt"
	"strings"

	"github.com/phambaophuc/map-poster-api/internal/models"
)

// Themes mirrors the theme set shipped with the poster script. The script is
// the source of truth; this list only exists so bad requests fail before a
// process is spawned.
var Themes = []string{
	"noir", "blueprint", "midnight_blue", "neon_cyberpunk", "japanese_ink",
	"terracotta", "sunset", "warm_beige", "pastel_dream", "ocean",
	"forest", "emerald", "copper_patina", "monochrome_blue",
	"gradient_roads", "contrast_zones", "autumn",
}

// SizePreset is a named print size in inches at 300 DPI.
type SizePreset struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Description string  `json:"description"`
}

// SizeNames keeps the preset order stable for error messages and listings.
var SizeNames = []string{
	"instagram", "mobile", "4k", "a4", "poster_small", "poster_medium", "poster_large",
}

var Sizes = map[string]SizePreset{
	"instagram":     {Width: 3.6, Height: 3.6, Description: "1080x1080px"},
	"mobile":        {Width: 3.6, Height: 6.4, Description: "1080x1920px"},
	"4k":            {Width: 12.8, Height: 7.2, Description: "3840x2160px"},
	"a4":            {Width: 8.27, Height: 11.69, Description: "2480x3508px"},
	"poster_small":  {Width: 8, Height: 10, Description: "2400x3000px"},
	"poster_medium": {Width: 12, Height: 16, Description: "3600x4800px"},
	"poster_large":  {Width: 18, Height: 24, Description: "5400x7200px"},
}

// Default dimensions when neither a preset nor an explicit pair is given
// (matches the poster_medium preset).
const (
	DefaultWidth  = 12.0
	DefaultHeight = 16.0
)

// ValidationError is a client fault: unknown theme or size name.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// ValidateTheme checks membership in the theme set.
func ValidateTheme(theme string) error {
	for _, t := range Themes {
		if t == theme {
			return nil
		}
	}
	return &ValidationError{
		Detail: fmt.Sprintf("Invalid theme '%s'. Available themes: %s",
			theme, strings.Join(Themes, ", ")),
	}
}

// ResolveSize turns the request's size specification into concrete inches.
// A named preset wins over an explicit width/height pair; with neither, the
// default applies.
func ResolveSize(req *models.PosterRequest) (width, height float64, err error) {
	if req.Size != "" {
		preset, ok := Sizes[req.Size]
		if !ok {
			return 0, 0, &ValidationError{
				Detail: fmt.Sprintf("Invalid size '%s'. Available sizes: %s",
					req.Size, strings.Join(SizeNames, ", ")),
			}
		}
		return preset.Width, preset.Height, nil
	}
	if req.Width != nil && req.Height != nil {
		return *req.Width, *req.Height, nil
	}
	return DefaultWidth, DefaultHeight, nil
}
