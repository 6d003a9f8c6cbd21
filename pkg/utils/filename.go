package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// PosterFilename synthesizes the filename advertised to clients. The file on
// disk keeps whatever name the script gave it; the short random suffix only
// prevents collisions in client-side saves.
func PosterFilename(city, country, theme string) string {
	id := uuid.New().String()[:8]
	return fmt.Sprintf("%s_%s_%s_%s.png", city, country, theme, id)
}
