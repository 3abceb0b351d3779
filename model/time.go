package model

import (
	"fmt"
	"time"
)

// STAC catalogs do not all agree on a single datetime format: some emit
// RFC 3339 with fractional seconds, some without a zone designator, and
// site catalogs emit bare dates. We need lenient "multi-format" parsing
// functionality, implemented here.

// SceneDateLayout is the format used when formatting scene dates for output
const SceneDateLayout = "2006-01-02"

var sceneTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseSceneTime is a drop-in replacement for time.Parse, but matching
// against multiple possible scene datetime formats
func ParseSceneTime(sceneTime string) (time.Time, error) {
	for _, layout := range sceneTimeLayouts {
		if output, err := time.Parse(layout, sceneTime); err == nil {
			return output, nil
		}
	}
	return time.Time{}, fmt.Errorf("Date could not be parsed by any expected time format: `%s`", sceneTime)
}
