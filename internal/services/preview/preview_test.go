package preview

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 30, G: 30, B: 40, A: 255})
	buffer := &bytes.Buffer{}
	if err := imaging.Encode(buffer, img, imaging.PNG); err != nil {
		t.Fatal(err)
	}
	return buffer.Bytes()
}

func TestDownscaleFitsWithinBox(t *testing.T) {
	data := encodePNG(t, 400, 200)

	out, err := Downscale(data, 100)
	if err != nil {
		t.Fatalf("Downscale: %v", err)
	}

	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 50 {
		t.Errorf("result = %dx%d, want 100x50", bounds.Dx(), bounds.Dy())
	}
}

func TestDownscaleLeavesSmallImagesAlone(t *testing.T) {
	data := encodePNG(t, 64, 64)

	out, err := Downscale(data, 100)
	if err != nil {
		t.Fatalf("Downscale: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("small image should be returned unchanged")
	}
}

func TestDownscaleRejectsGarbage(t *testing.T) {
	if _, err := Downscale([]byte("not a png"), 100); err == nil {
		t.Fatal("expected decode error")
	}
}
