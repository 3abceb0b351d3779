package stac

import (
	"time"

	"github.com/pantierra/phenocam-finder/model"
	"github.com/pantierra/phenocam-finder/phenocam"
)

const (
	// DefaultBufferKm is the AOI buffer around a site's point coordinate
	DefaultBufferKm = 5.0
	// DefaultPeriodDays is the lookback window for sites without a camera
	// date range
	DefaultPeriodDays = 365
)

// Source adapts the STAC search client to the coverage engine. Each site is
// queried over its camera date range when the catalog supplied one, and
// over a fixed lookback window from now otherwise.
type Source struct {
	Context    *Context
	BufferKm   float64
	PeriodDays int
}

// ScenesForSite implements the coverage engine's scene source
func (s Source) ScenesForSite(site model.Site) ([]model.Scene, error) {
	start, end := site.DateFirst, site.DateLast
	if start.IsZero() || end.IsZero() {
		end = time.Now().UTC()
		start = end.AddDate(0, 0, -s.periodDays())
	}

	bufferKm := s.BufferKm
	if bufferKm <= 0 {
		bufferKm = DefaultBufferKm
	}

	options := SearchOptions{
		Bbox:            phenocam.BufferBbox(site.Lat, site.Lon, bufferKm),
		AcquiredDate:    start.UTC().Format(time.RFC3339),
		MaxAcquiredDate: end.UTC().Format(time.RFC3339),
	}
	return SearchScenes(options, site.ID, s.Context)
}

func (s Source) periodDays() int {
	if s.PeriodDays <= 0 {
		return DefaultPeriodDays
	}
	return s.PeriodDays
}
