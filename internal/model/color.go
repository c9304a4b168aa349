package model

import (
	"encoding/json"
	"errors"
)

// NoPrimaryColor is printed when a palette entry has no hex value.
const NoPrimaryColor = "N/A"

// ErrEmptyPalette is returned by ParsePalette when the raw value carries
// no color data at all (empty string or the literal empty JSON array).
// Callers use it to distinguish "nothing stored" from "stored but broken".
var ErrEmptyPalette = errors.New("no color data")

// Color is a single dominant color extracted from an image.
// The field set matches what the gallery application serializes into the
// colors column, so rows written by any version of the app decode cleanly.
type Color struct {
	// Hex is the web-style color code, e.g. "#FF0000".
	Hex string `json:"hex"`

	// RGB holds the raw red, green, and blue channel values.
	RGB [3]uint8 `json:"rgb"`

	// IsDark reports whether the color is perceived as dark.
	// The extractor computes this for UI contrast decisions.
	IsDark bool `json:"is_dark"`
}

// Palette is the ordered sequence of dominant colors for one image,
// most dominant first.
type Palette []Color

// ParsePalette decodes the raw colors column value into a Palette.
//
// Design decision: We return an error rather than a nil palette on bad
// input because the caller decides the fallback. The inspect report shows
// a truncated raw value for undecodable data instead of aborting, and a
// "no color data" placeholder for empty values; both need to know which
// case they are in.
func ParsePalette(raw string) (Palette, error) {
	if raw == "" || raw == "[]" {
		return nil, ErrEmptyPalette
	}

	var p Palette
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, err
	}
	return p, nil
}

// Primary returns the hex code of the most dominant color,
// or NoPrimaryColor when the palette is empty or the entry has no hex.
func (p Palette) Primary() string {
	if len(p) == 0 || p[0].Hex == "" {
		return NoPrimaryColor
	}
	return p[0].Hex
}
