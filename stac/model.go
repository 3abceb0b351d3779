package stac

import (
	"github.com/pantierra/phenocam-finder/util"
	"github.com/venicegeo/geojson-go/geojson"
)

// Context is the context for a STAC search operation
type Context struct {
	BaseSTACURL   string
	Collection    string
	MaxCloudCover float64 // percent, server-side prefilter only
	Limit         int
	sessionID     string
}

// AppName returns the name of the application
func (c *Context) AppName() string {
	return "phenocam-finder"
}

// SessionID returns a Session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = util.PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *Context) LogRootDir() string {
	return ""
}

// SearchOptions are the search options for a STAC item search
type SearchOptions struct {
	Bbox            geojson.BoundingBox
	AcquiredDate    string
	MaxAcquiredDate string
}

// searchRequest is the POST body of a STAC item search
type searchRequest struct {
	Collections []string            `json:"collections"`
	Datetime    string              `json:"datetime"`
	Bbox        geojson.BoundingBox `json:"bbox,omitempty"`
	Limit       int                 `json:"limit,omitempty"`
	Filter      *comparisonFilter   `json:"filter,omitempty"`
}

// comparisonFilter is a single CQL2 comparison
type comparisonFilter struct {
	Op   string        `json:"op"`
	Args []interface{} `json:"args"`
}

// propertyRef names a queryable item property inside a CQL2 filter
type propertyRef struct {
	Property string `json:"property"`
}

// searchResults is the subset of a STAC ItemCollection the broker reads
type searchResults struct {
	Features []searchFeature `json:"features"`
	Links    []searchLink    `json:"links"`
}

type searchFeature struct {
	ID         string            `json:"id"`
	Properties featureProperties `json:"properties"`
}

type featureProperties struct {
	Datetime   string   `json:"datetime"`
	CloudCover *float64 `json:"eo:cloud_cover"`
}

type searchLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}
