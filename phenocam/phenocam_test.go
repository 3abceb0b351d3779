package phenocam

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	cameraPageOne = `{
		"next": "%v/?page=2",
		"results": [
			{
				"Sitename": "alpgarten",
				"Lat": 47.42,
				"Lon": 11.06,
				"Elev": 900,
				"date_first": "2015-03-01",
				"date_last": "2024-12-31",
				"sitemetadata": {
					"primary_veg_type": "GR",
					"site_description": "Alpine grassland test plot",
					"country": "Germany"
				}
			},
			{
				"Sitename": "harvardbarn",
				"Lat": 42.53,
				"Lon": -72.19,
				"Elev": 340,
				"sitemetadata": {"primary_veg_type": "DB", "country": "USA"}
			},
			{
				"Sitename": "nocoords",
				"sitemetadata": {"primary_veg_type": "GR"}
			}
		]
	}`
	cameraPageTwo = `{
		"next": null,
		"results": [
			{
				"Sitename": "borealforest",
				"Lat": 61.85,
				"Lon": 24.29,
				"Elev": 180,
				"sitemetadata": {
					"primary_veg_type": "EN",
					"country": "Finland"
				}
			}
		]
	}`
)

type mockCatalogHandler struct{}

func (h mockCatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.URL.Query().Get("page") == "2" {
		w.Write([]byte(cameraPageTwo))
		return
	}
	w.Write([]byte(fmt.Sprintf(cameraPageOne, "http://"+r.Host)))
}

func TestGetSites(t *testing.T) {
	mockCatalog := httptest.NewServer(mockCatalogHandler{})
	defer mockCatalog.Close()
	context := Context{BasePhenoCamURL: mockCatalog.URL}

	sites, err := GetSites(SiteOptions{}, &context)

	assert.Nil(t, err, "%v", err)
	assert.Len(t, sites, 3, "record without coordinates must be skipped")

	assert.Equal(t, "alpgarten", sites[0].ID)
	assert.Equal(t, "Grassland", sites[0].VegetationType)
	assert.Equal(t, "Alpine grassland test plot", sites[0].Description)
	assert.Equal(t, "Germany", sites[0].Country)
	assert.Equal(t, 900.0, sites[0].Elevation)
	assert.Equal(t, time.Date(2015, 3, 1, 0, 0, 0, 0, time.UTC), sites[0].DateFirst)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), sites[0].DateLast)

	// Second page followed
	assert.Equal(t, "borealforest", sites[2].ID)
	assert.Equal(t, "Evergreen Needleleaf", sites[2].VegetationType)

	// Missing description falls back to a generated one
	assert.Equal(t, "PhenoCam site harvardbarn", sites[1].Description)
	assert.True(t, sites[1].DateFirst.IsZero())
}

func TestGetSites_EuropeOnly(t *testing.T) {
	mockCatalog := httptest.NewServer(mockCatalogHandler{})
	defer mockCatalog.Close()
	context := Context{BasePhenoCamURL: mockCatalog.URL}

	sites, err := GetSites(SiteOptions{EuropeOnly: true}, &context)

	assert.Nil(t, err, "%v", err)
	assert.Len(t, sites, 2)
	for _, site := range sites {
		assert.True(t, InEurope(site.Lat, site.Lon))
	}
}

func TestGetSites_VegetationTypeFilter(t *testing.T) {
	mockCatalog := httptest.NewServer(mockCatalogHandler{})
	defer mockCatalog.Close()
	context := Context{BasePhenoCamURL: mockCatalog.URL}

	sites, err := GetSites(SiteOptions{VegetationType: "Grassland"}, &context)

	assert.Nil(t, err, "%v", err)
	assert.Len(t, sites, 1)
	assert.Equal(t, "alpgarten", sites[0].ID)
}

func TestGetSites_CatalogError(t *testing.T) {
	mockCatalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer mockCatalog.Close()
	context := Context{BasePhenoCamURL: mockCatalog.URL}

	_, err := GetSites(SiteOptions{}, &context)

	assert.NotNil(t, err, "Catalog error did not cause an error")
}

func TestInEurope(t *testing.T) {
	assert.True(t, InEurope(47.42, 11.06))
	assert.True(t, InEurope(61.85, 24.29))
	assert.False(t, InEurope(42.53, -72.19))
	assert.False(t, InEurope(-33.9, 18.4))
}

func TestBufferBbox(t *testing.T) {
	bbox := BufferBbox(48.0, 11.0, 5.0)

	assert.Len(t, bbox, 4)
	// West < east, south < north, centered on the point
	assert.True(t, bbox[0] < 11.0 && bbox[2] > 11.0)
	assert.True(t, bbox[1] < 48.0 && bbox[3] > 48.0)
	assert.InDelta(t, 5.0/111.0, bbox[3]-48.0, 1e-9)
	// Longitude span widens with latitude
	wide := BufferBbox(65.0, 11.0, 5.0)
	assert.True(t, wide[2]-wide[0] > bbox[2]-bbox[0])
}

func TestVegetationTypeName(t *testing.T) {
	assert.Equal(t, "Grassland", VegetationTypeName("GR"))
	assert.Equal(t, "Mixed Forest", VegetationTypeName("MX"))
	assert.Equal(t, "XX", VegetationTypeName("XX"))
}
