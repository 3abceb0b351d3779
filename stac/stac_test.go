package stac

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pantierra/phenocam-finder/model"
)

const sampleItemCollection = `{
	"type": "FeatureCollection",
	"features": [
		{
			"id": "S2B_MSIL2A_20240301",
			"properties": {"datetime": "2024-03-01T10:20:31.024Z", "eo:cloud_cover": 12.5}
		},
		{
			"id": "S2A_MSIL2A_20240306",
			"properties": {"datetime": "2024-03-06T10:20:31Z", "eo:cloud_cover": 81.0}
		},
		{
			"id": "S2A_MSIL2A_BADDATE",
			"properties": {"datetime": "not-a-date", "eo:cloud_cover": 3.0}
		},
		{
			"id": "S2A_MSIL2A_NOCLOUD",
			"properties": {"datetime": "2024-03-11T10:20:31Z"}
		}
	],
	"links": []
}`

type mockSTACHandler struct {
	lastRequestBody []byte
}

func (h *mockSTACHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.lastRequestBody, _ = ioutil.ReadAll(r.Body)
	w.Header().Set("Content-Type", "application/geo+json")
	w.Write([]byte(sampleItemCollection))
}

func TestSearchScenes(t *testing.T) {
	handler := &mockSTACHandler{}
	mockSTAC := httptest.NewServer(handler)
	defer mockSTAC.Close()
	context := Context{BaseSTACURL: mockSTAC.URL, Collection: "sentinel-2-l2a", MaxCloudCover: 90, Limit: 100}

	options := SearchOptions{
		Bbox:            []float64{10.9, 47.9, 11.1, 48.1},
		AcquiredDate:    "2024-01-01T00:00:00Z",
		MaxAcquiredDate: "2024-12-31T23:59:59Z",
	}
	scenes, err := SearchScenes(options, "alpgarten", &context)

	assert.Nil(t, err, "%v", err)
	assert.Len(t, scenes, 2, "features with bad datetime or missing cloud cover must be dropped")

	assert.Equal(t, "S2B_MSIL2A_20240301", scenes[0].ID)
	assert.Equal(t, "alpgarten", scenes[0].SiteID)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 20, 31, 24000000, time.UTC), scenes[0].AcquiredDate)
	assert.Equal(t, 0.125, scenes[0].CloudCover)
	assert.Equal(t, 0.81, scenes[1].CloudCover)
	assert.True(t, scenes[0].Valid())
	assert.False(t, scenes[0].HasIndexValue())
}

func TestSearchScenes_RequestBody(t *testing.T) {
	handler := &mockSTACHandler{}
	mockSTAC := httptest.NewServer(handler)
	defer mockSTAC.Close()
	context := Context{BaseSTACURL: mockSTAC.URL, Collection: "sentinel-2-l2a", MaxCloudCover: 90}

	_, err := SearchScenes(SearchOptions{
		Bbox:            []float64{10.9, 47.9, 11.1, 48.1},
		AcquiredDate:    "2024-01-01T00:00:00Z",
		MaxAcquiredDate: "2024-12-31T23:59:59Z",
	}, "alpgarten", &context)
	assert.Nil(t, err, "%v", err)

	var sent map[string]interface{}
	err = json.Unmarshal(handler.lastRequestBody, &sent)
	assert.Nil(t, err, "%v", err)

	assert.Equal(t, []interface{}{"sentinel-2-l2a"}, sent["collections"])
	assert.Equal(t, "2024-01-01T00:00:00Z/2024-12-31T23:59:59Z", sent["datetime"])
	assert.Equal(t, float64(defaultSearchLimit), sent["limit"])

	filter, ok := sent["filter"].(map[string]interface{})
	assert.True(t, ok, "cloud cover prefilter missing from request")
	assert.Equal(t, "<", filter["op"])
}

func TestSearchScenes_NoCloudCeilingOmitsFilter(t *testing.T) {
	handler := &mockSTACHandler{}
	mockSTAC := httptest.NewServer(handler)
	defer mockSTAC.Close()
	context := Context{BaseSTACURL: mockSTAC.URL, Collection: "sentinel-2-l2a"}

	_, err := SearchScenes(SearchOptions{Bbox: []float64{0, 0, 1, 1}}, "s", &context)
	assert.Nil(t, err, "%v", err)

	var sent map[string]interface{}
	json.Unmarshal(handler.lastRequestBody, &sent)
	_, hasFilter := sent["filter"]
	assert.False(t, hasFilter)
}

func TestSearchScenes_UpstreamError(t *testing.T) {
	mockSTAC := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer mockSTAC.Close()
	context := Context{BaseSTACURL: mockSTAC.URL, Collection: "sentinel-2-l2a"}

	_, err := SearchScenes(SearchOptions{}, "s", &context)

	assert.NotNil(t, err, "Upstream 400 did not cause an error")
}

func TestSource_ScenesForSite(t *testing.T) {
	handler := &mockSTACHandler{}
	mockSTAC := httptest.NewServer(handler)
	defer mockSTAC.Close()
	context := Context{BaseSTACURL: mockSTAC.URL, Collection: "sentinel-2-l2a"}

	site := model.Site{
		ID: "alpgarten", Lat: 47.42, Lon: 11.06,
		DateFirst: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateLast:  time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	scenes, err := Source{Context: &context}.ScenesForSite(site)

	assert.Nil(t, err, "%v", err)
	assert.Len(t, scenes, 2)

	var sent map[string]interface{}
	json.Unmarshal(handler.lastRequestBody, &sent)
	assert.Equal(t, "2024-01-01T00:00:00Z/2024-12-31T00:00:00Z", sent["datetime"])

	bbox, ok := sent["bbox"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, bbox, 4)
	assert.InDelta(t, 47.42-5.0/111.0, bbox[1].(float64), 1e-9)
}

func TestSource_ScenesForSite_NoDateRange(t *testing.T) {
	handler := &mockSTACHandler{}
	mockSTAC := httptest.NewServer(handler)
	defer mockSTAC.Close()
	context := Context{BaseSTACURL: mockSTAC.URL, Collection: "sentinel-2-l2a"}

	site := model.Site{ID: "new-site", Lat: 47.42, Lon: 11.06}
	_, err := Source{Context: &context, PeriodDays: 30}.ScenesForSite(site)
	assert.Nil(t, err, "%v", err)

	var sent map[string]interface{}
	json.Unmarshal(handler.lastRequestBody, &sent)
	datetime, _ := sent["datetime"].(string)
	interval := strings.Split(datetime, "/")
	assert.Len(t, interval, 2)

	start, err := time.Parse(time.RFC3339, interval[0])
	assert.Nil(t, err, "%v", err)
	end, err := time.Parse(time.RFC3339, interval[1])
	assert.Nil(t, err, "%v", err)
	assert.InDelta(t, 30*24.0, end.Sub(start).Hours(), 1.0)
}
