package localindex

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/pantierra/phenocam-finder/coverage"
	"github.com/pantierra/phenocam-finder/localindex/db"
	"github.com/pantierra/phenocam-finder/model"
	"github.com/pantierra/phenocam-finder/util"
)

// SitesHandler is a handler for /sites
// @Title sitesHandler
// @Description lists the indexed monitoring sites as GeoJSON
// @Accept  plain
// @Success 200 {object}  geojson.FeatureCollection
// @Failure 500 {object}  string
// @Router /sites [get]
type SitesHandler struct {
	Context Context
}

// NewSitesHandler creates a new handler using the given connection provider
func NewSitesHandler(connectionProvider db.ConnectionProvider) (*SitesHandler, error) {
	database, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}
	return &SitesHandler{Context: Context{DB: database}}, nil
}

// ServeHTTP implements the http.Handler interface for the SitesHandler type
func (h SitesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	sites, err := db.GetSites(tx)
	if err != nil {
		message := fmt.Sprintf("Error listing sites: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	creators := make([]model.GeoJSONFeatureCreator, len(sites))
	for i, site := range sites {
		creators[i] = model.SiteEntry{Site: site}
	}
	featureCollection, err := model.MultiSiteResult{FeatureCreators: creators}.GeoJSONFeatureCollection()
	if err != nil {
		message := fmt.Sprintf("Error converting to feature collection: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	w.Write([]byte(featureCollection.String()))
}

// CoverageHandler is a handler for /coverage
// @Title coverageHandler
// @Description computes coverage statistics for the indexed sites
// @Accept  plain
// @Param   cloudCover   query   string  false        "The clear-scene cloud cover threshold, as a percentage (0-100)"
// @Param   gapThreshold query   string  false        "The gap length in days above which a gap is counted"
// @Param   sites        query   string  false        "Comma-separated site IDs to restrict the run to"
// @Success 200 {object}  geojson.FeatureCollection
// @Failure 400 {object}  string
// @Router /coverage [get]
type CoverageHandler struct {
	Context Context
	Config  coverage.Config
}

// NewCoverageHandler creates a new handler using the given connection provider
func NewCoverageHandler(connectionProvider db.ConnectionProvider, cfg coverage.Config) (*CoverageHandler, error) {
	database, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}
	return &CoverageHandler{Context: Context{DB: database}, Config: cfg}, nil
}

// ServeHTTP implements the http.Handler interface for the CoverageHandler type
func (h CoverageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configFromRequest(r)
	if err != nil {
		message := err.Error()
		util.LogAlert(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
		return
	}

	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	sites, err := db.GetSites(tx)
	if err != nil {
		message := fmt.Sprintf("Error listing sites: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}
	if requested := r.FormValue("sites"); requested != "" {
		sites = selectSites(sites, strings.Split(requested, ","))
	}

	results := coverage.ComputeSites(&h.Context, sites, db.Source{DB: h.Context.DB}, cfg)

	featureCollection, err := coverage.ResultsToMultiResult(results).GeoJSONFeatureCollection()
	if err != nil {
		message := fmt.Sprintf("Error converting to feature collection: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	w.Write([]byte(featureCollection.String()))
}

// configFromRequest overlays query-parameter overrides onto the handler's
// base configuration
func (h CoverageHandler) configFromRequest(r *http.Request) (coverage.Config, error) {
	cfg := h.Config

	if r.FormValue("cloudCover") != "" {
		maxCloudCover, err := strconv.ParseFloat(r.FormValue("cloudCover"), 64)
		if err != nil {
			return cfg, fmt.Errorf("Cloud Cover value of %v is invalid.", r.FormValue("cloudCover"))
		}
		cfg.ClearCloudThreshold = maxCloudCover / 100.0
	}
	if r.FormValue("gapThreshold") != "" {
		gapThreshold, err := strconv.Atoi(r.FormValue("gapThreshold"))
		if err != nil {
			return cfg, fmt.Errorf("Gap threshold value of %v is invalid.", r.FormValue("gapThreshold"))
		}
		cfg.GapThresholdDays = gapThreshold
	}

	return cfg, nil
}

// SiteCoverageHandler is a handler for /coverage/{siteId}
// @Title siteCoverageHandler
// @Description computes coverage statistics for a single indexed site
// @Accept  plain
// @Param   siteId  path   string  true        "The ID of the requested site"
// @Success 200 {object}  geojson.Feature
// @Failure 404 {object}  string
// @Router /coverage/{siteId} [get]
type SiteCoverageHandler struct {
	Context Context
	Config  coverage.Config
}

// NewSiteCoverageHandler creates a new handler using the given connection provider
func NewSiteCoverageHandler(connectionProvider db.ConnectionProvider, cfg coverage.Config) (*SiteCoverageHandler, error) {
	database, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}
	return &SiteCoverageHandler{Context: Context{DB: database}, Config: cfg}, nil
}

// ServeHTTP implements the http.Handler interface for the SiteCoverageHandler type
func (h SiteCoverageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	siteID, ok := mux.Vars(r)["siteId"]
	if !ok {
		message := "No site ID found in URL"
		util.LogAlert(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		return
	}

	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	site, err := db.GetSiteByID(tx, siteID)
	if err == sql.ErrNoRows {
		message := fmt.Sprintf("Site not found: %s", siteID)
		util.LogInfo(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		tx.Rollback()
		return
	}
	if err != nil {
		message := fmt.Sprintf("Server error searching for site: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	scenes, err := db.ScenesForSite(tx, siteID)
	if err != nil {
		message := fmt.Sprintf("Server error reading scenes for site: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	result := coverage.ComputeSiteResult(site, scenes, h.Config)
	feature, err := result.GeoJSONFeature()
	if err != nil {
		message := fmt.Sprintf("Error converting result to geojson: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	w.Write([]byte(feature.String()))
}

func selectSites(sites []model.Site, requestedIDs []string) []model.Site {
	requested := make(map[string]bool, len(requestedIDs))
	for _, id := range requestedIDs {
		requested[strings.TrimSpace(id)] = true
	}

	selected := make([]model.Site, 0, len(sites))
	for _, site := range sites {
		if requested[site.ID] {
			selected = append(selected, site)
		}
	}
	return selected
}
