package model

import "time"

// Scene is one satellite acquisition event for a site: an acquisition date
// at day resolution, a cloud-cover fraction, and optionally a vegetation
// index value computed by the imagery backend for that acquisition.
type Scene struct {
	ID           string // acquisition identifier from the imagery catalog
	SiteID       string
	AcquiredDate time.Time
	CloudCover   float64  // fraction in [0, 1]
	IndexValue   *float64 // nil when the backend supplied no index for this scene
}

// Valid reports whether the scene record carries the attributes required
// for coverage computation. Invalid records are excluded per site rather
// than failing the site.
func (s Scene) Valid() bool {
	return !s.AcquiredDate.IsZero() && s.CloudCover >= 0 && s.CloudCover <= 1
}

// HasIndexValue reports whether the imagery backend supplied an index
// value for this scene
func (s Scene) HasIndexValue() bool {
	return s.IndexValue != nil
}

// Site is a fixed geographic monitoring location. The catalog metadata is
// owned by the external PhenoCam catalog and passed through unchanged.
type Site struct {
	ID             string
	Lat            float64
	Lon            float64
	VegetationType string
	Description    string
	Country        string
	Elevation      float64
	DateFirst      time.Time // zero when the catalog supplied no camera date range
	DateLast       time.Time
}
