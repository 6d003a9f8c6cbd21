// Package preview downscales generated posters for clients that asked for a
// bounded pixel size instead of the full print-resolution file.
package preview

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// Downscale fits the PNG into a maxPx x maxPx box, preserving aspect ratio.
// Posters that already fit are returned unchanged.
func Downscale(data []byte, maxPx int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode poster: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxPx && bounds.Dy() <= maxPx {
		return data, nil
	}

	fitted := imaging.Fit(img, maxPx, maxPx, imaging.Lanczos)

	buffer := &bytes.Buffer{}
	if err := imaging.Encode(buffer, fitted, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}
	return buffer.Bytes(), nil
}
