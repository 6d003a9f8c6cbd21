package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/phambaophuc/map-poster-api/internal/models"
)

func inches(v float64) *float64 {
	return &v
}

func TestValidateThemeKnown(t *testing.T) {
	for _, theme := range Themes {
		if err := ValidateTheme(theme); err != nil {
			t.Errorf("ValidateTheme(%q) = %v, want nil", theme, err)
		}
	}
}

func TestValidateThemeUnknown(t *testing.T) {
	err := ValidateTheme("vaporwave")
	if err == nil {
		t.Fatal("expected error for unknown theme")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !strings.Contains(validationErr.Detail, "Invalid theme 'vaporwave'") {
		t.Errorf("detail missing theme name: %q", validationErr.Detail)
	}
	// The message must enumerate the valid set
	for _, theme := range Themes {
		if !strings.Contains(validationErr.Detail, theme) {
			t.Errorf("detail missing valid theme %q", theme)
		}
	}
}

func TestResolveSizePreset(t *testing.T) {
	req := &models.PosterRequest{Size: "instagram"}
	w, h, err := ResolveSize(req)
	if err != nil {
		t.Fatalf("ResolveSize: %v", err)
	}
	if w != 3.6 || h != 3.6 {
		t.Errorf("instagram = (%g, %g), want (3.6, 3.6)", w, h)
	}
}

func TestResolveSizeDefault(t *testing.T) {
	req := &models.PosterRequest{}
	w, h, err := ResolveSize(req)
	if err != nil {
		t.Fatalf("ResolveSize: %v", err)
	}
	if w != 12 || h != 16 {
		t.Errorf("default = (%g, %g), want (12, 16)", w, h)
	}
}

func TestResolveSizeExplicitPair(t *testing.T) {
	req := &models.PosterRequest{Width: inches(5), Height: inches(7)}
	w, h, err := ResolveSize(req)
	if err != nil {
		t.Fatalf("ResolveSize: %v", err)
	}
	if w != 5 || h != 7 {
		t.Errorf("explicit = (%g, %g), want (5, 7)", w, h)
	}
}

func TestResolveSizePresetBeatsExplicitPair(t *testing.T) {
	req := &models.PosterRequest{Size: "a4", Width: inches(5), Height: inches(7)}
	w, h, err := ResolveSize(req)
	if err != nil {
		t.Fatalf("ResolveSize: %v", err)
	}
	if w != 8.27 || h != 11.69 {
		t.Errorf("a4 = (%g, %g), want (8.27, 11.69)", w, h)
	}
}

func TestResolveSizePartialPairFallsBackToDefault(t *testing.T) {
	req := &models.PosterRequest{Width: inches(5)}
	w, h, err := ResolveSize(req)
	if err != nil {
		t.Fatalf("ResolveSize: %v", err)
	}
	if w != 12 || h != 16 {
		t.Errorf("width-only = (%g, %g), want (12, 16)", w, h)
	}
}

func TestResolveSizeUnknownPreset(t *testing.T) {
	req := &models.PosterRequest{Size: "billboard"}
	_, _, err := ResolveSize(req)
	if err == nil {
		t.Fatal("expected error for unknown size")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !strings.Contains(validationErr.Detail, "Invalid size 'billboard'") {
		t.Errorf("detail missing size name: %q", validationErr.Detail)
	}
	for _, name := range SizeNames {
		if !strings.Contains(validationErr.Detail, name) {
			t.Errorf("detail missing preset %q", name)
		}
	}
}

func TestSizeTablesAgree(t *testing.T) {
	if len(SizeNames) != len(Sizes) {
		t.Fatalf("SizeNames has %d entries, Sizes has %d", len(SizeNames), len(Sizes))
	}
	for _, name := range SizeNames {
		if _, ok := Sizes[name]; !ok {
			t.Errorf("SizeNames entry %q missing from Sizes", name)
		}
	}
}
