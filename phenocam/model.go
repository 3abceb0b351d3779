package phenocam

import (
	"github.com/pantierra/phenocam-finder/util"
)

// Context is the context for a PhenoCam catalog operation
type Context struct {
	BasePhenoCamURL string
	sessionID       string
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

// SiteOptions are the options for a catalog site listing
type SiteOptions struct {
	// EuropeOnly restricts the listing to the European analysis domain
	EuropeOnly bool
	// VegetationType, when set, keeps only sites of that (readable) type
	VegetationType string
}

// camerasPage is one page of the paginated cameras listing
type camerasPage struct {
	Next    string   `json:"next"`
	Results []camera `json:"results"`
}

// camera is a single catalog record. The catalog capitalizes some field
// names and not others; the tags follow the API as-is.
type camera struct {
	Sitename     string       `json:"Sitename"`
	Lat          *float64     `json:"Lat"`
	Lon          *float64     `json:"Lon"`
	Elevation    float64      `json:"Elev"`
	DateFirst    string       `json:"date_first"`
	DateLast     string       `json:"date_last"`
	SiteMetadata siteMetadata `json:"sitemetadata"`
}

type siteMetadata struct {
	PrimaryVegType  string `json:"primary_veg_type"`
	SiteDescription string `json:"site_description"`
	Country         string `json:"country"`
}

// vegetationTypeNames maps the catalog's two-letter vegetation codes to
// readable names. Unknown codes pass through unchanged.
var vegetationTypeNames = map[string]string{
	"GR": "Grassland",
	"AG": "Agriculture",
	"DB": "Deciduous Broadleaf",
	"EN": "Evergreen Needleleaf",
	"SH": "Shrubland",
	"WL": "Wetland",
	"TU": "Tundra",
	"DN": "Deciduous Needleleaf",
	"EB": "Evergreen Broadleaf",
	"MX": "Mixed Forest",
}

// VegetationTypeName resolves a catalog vegetation code to its readable name
func VegetationTypeName(code string) string {
	if name, ok := vegetationTypeNames[code]; ok {
		return name
	}
	return code
}
