package phenocam

import (
	"math"

	"github.com/venicegeo/geojson-go/geojson"
)

// European analysis domain (approximate)
const (
	europeLatMin = 35.0
	europeLatMax = 71.0
	europeLonMin = -10.0
	europeLonMax = 40.0
)

// InEurope reports whether the coordinates fall inside the European
// analysis domain
func InEurope(lat, lon float64) bool {
	return lat >= europeLatMin && lat <= europeLatMax &&
		lon >= europeLonMin && lon <= europeLonMax
}

// ValidCoordinates reports whether lat and lon are in range
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// BufferBbox builds the bounding box of a square buffer of bufferKm around
// a point, as a GeoJSON bounding box [west, south, east, north]. The
// kilometer-to-degree conversion is the usual flat approximation, with the
// longitude span corrected for latitude.
func BufferBbox(lat, lon, bufferKm float64) geojson.BoundingBox {
	latBuffer := bufferKm / 111.0
	lonBuffer := bufferKm / (111.0 * math.Cos(lat*math.Pi/180.0))

	return geojson.BoundingBox{
		lon - lonBuffer,
		lat - latBuffer,
		lon + lonBuffer,
		lat + latBuffer,
	}
}
