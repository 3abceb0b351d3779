package coverage

import (
	"fmt"
	"sync"

	"github.com/pantierra/phenocam-finder/model"
	"github.com/pantierra/phenocam-finder/util"
)

// SceneSource supplies the scene records for a site. Implementations
// perform whatever remote querying or database access they need; the
// engine only sees the resolved collection or the failure.
type SceneSource interface {
	ScenesForSite(site model.Site) ([]model.Scene, error)
}

// ComputeSiteResult runs the full per-site computation on an
// already-resolved scene collection: filter, gap statistics for both
// subset policies, and (when the site is selected) the index series.
func ComputeSiteResult(site model.Site, scenes []model.Scene, cfg Config) model.SiteResult {
	cfg = cfg.normalized()

	all, clear, dropped := SplitScenes(scenes, cfg.ClearCloudThreshold)

	result := model.SiteResult{
		Site:            site,
		SceneCount:      len(all),
		ClearSceneCount: len(clear),
		DroppedScenes:   dropped,
		AllScenes:       ComputeGapStatistics(SceneDates(all), cfg),
		ClearScenes:     ComputeGapStatistics(SceneDates(clear), cfg),
	}

	if cfg.indexEnabled(site.ID) {
		index := ComputeIndexSeries(clear)
		result.Index = &index
	}

	return result
}

// ComputeSites computes one SiteResult per requested site, in the input
// order. A failing scene source marks that one site's result with the
// error and moves on: one bad site never blocks results for the others,
// and the output never silently omits a site.
//
// Sites are independent, so with cfg.MaxWorkers > 1 they are processed
// concurrently; results land in their input slot either way.
func ComputeSites(ctx util.LogContext, sites []model.Site, source SceneSource, cfg Config) []model.SiteResult {
	cfg = cfg.normalized()
	results := make([]model.SiteResult, len(sites))

	if cfg.MaxWorkers < 2 {
		for i, site := range sites {
			results[i] = computeSiteFromSource(ctx, site, source, cfg)
		}
		return results
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.MaxWorkers)
	for i, site := range sites {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, site model.Site) {
			defer wg.Done()
			results[i] = computeSiteFromSource(ctx, site, source, cfg)
			<-sem
		}(i, site)
	}
	wg.Wait()

	return results
}

func computeSiteFromSource(ctx util.LogContext, site model.Site, source SceneSource, cfg Config) model.SiteResult {
	scenes, err := source.ScenesForSite(site)
	if err != nil {
		util.LogAlert(ctx, fmt.Sprintf("Scene source failed for site %s: %v", site.ID, err))
		return model.SiteResult{Site: site, Error: err}
	}

	result := ComputeSiteResult(site, scenes, cfg)
	if result.DroppedScenes > 0 {
		util.LogAlert(ctx, fmt.Sprintf("Excluded %d malformed scene records for site %s", result.DroppedScenes, site.ID))
	}
	return result
}

// ResultsToMultiResult bundles per-site results into the final output
// collection, preserving result order.
func ResultsToMultiResult(results []model.SiteResult) model.MultiSiteResult {
	creators := make([]model.GeoJSONFeatureCreator, len(results))
	for i, result := range results {
		creators[i] = result
	}
	return model.MultiSiteResult{FeatureCreators: creators}
}
