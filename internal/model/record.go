package model

import "time"

// Status is the lifecycle tag of a color-extraction job for one file.
// The gallery application writes these as plain strings, so Status is a
// string type rather than an iota enum: unknown values coming out of the
// database must survive a round trip unchanged.
type Status string

const (
	// StatusExtracted marks files whose palette was extracted successfully.
	StatusExtracted Status = "extracted"

	// StatusPending marks files queued for extraction.
	StatusPending Status = "pending"

	// StatusError marks files whose extraction failed.
	StatusError Status = "error"
)

// Known reports whether the status is one of the values the extraction
// worker writes. The database may contain other values (e.g. from newer
// app versions); those are counted but not classified.
func (s Status) Known() bool {
	switch s {
	case StatusExtracted, StatusPending, StatusError:
		return true
	default:
		return false
	}
}

// ColorRecord is one row of the dominant_colors table.
type ColorRecord struct {
	// FilePath is the absolute path of the image file. Unique per row.
	FilePath string `json:"file_path"`

	// Status is the extraction job state for this file.
	Status Status `json:"status"`

	// CreatedAt is when the row was first inserted, in Unix seconds.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is when the row was last touched, in Unix seconds.
	UpdatedAt int64 `json:"updated_at"`

	// RawColors is the colors column verbatim: a JSON array of color
	// objects, "[]", or empty. Use Palette() to decode it.
	RawColors string `json:"colors"`
}

// Palette decodes the record's raw colors value.
func (r *ColorRecord) Palette() (Palette, error) {
	return ParsePalette(r.RawColors)
}

// CreatedTime returns CreatedAt as a local time.Time.
func (r *ColorRecord) CreatedTime() time.Time {
	return time.Unix(r.CreatedAt, 0)
}

// UpdatedTime returns UpdatedAt as a local time.Time.
func (r *ColorRecord) UpdatedTime() time.Time {
	return time.Unix(r.UpdatedAt, 0)
}
