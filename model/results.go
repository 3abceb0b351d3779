package model

import (
	"github.com/venicegeo/geojson-go/geojson"
)

// GapStatistics quantifies the temporal sparsity of one scene subset for
// one site. Computed fresh each run; one instance per (site, subset) pair.
type GapStatistics struct {
	MaxGapDays       int
	GapCount         int
	WeightedGapScore float64
}

// SiteResult is the per-site output record: catalog metadata, gap
// statistics for the all-scene and clear-scene subsets, and the vegetation
// index summary for the clear subset. Immutable after assembly.
type SiteResult struct {
	Site            Site
	SceneCount      int
	ClearSceneCount int
	DroppedScenes   int
	AllScenes       GapStatistics
	ClearScenes     GapStatistics
	Index           *IndexSeries // nil when the site was not selected for index computation
	Error           error        // set when the scene source failed for this site
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface. A failed
// site still yields a feature, carrying only its identity and the error
// marker, so the output always contains one entry per requested site.
func (sr SiteResult) GeoJSONFeature() (*geojson.Feature, error) {
	properties := map[string]interface{}{
		"site_id":         sr.Site.ID,
		"vegetation_type": sr.Site.VegetationType,
		"description":     sr.Site.Description,
		"country":         sr.Site.Country,
		"elevation":       sr.Site.Elevation,
	}

	f := geojson.NewFeature(geojson.NewPoint([]float64{sr.Site.Lon, sr.Site.Lat}), sr.Site.ID, properties)
	f.Bbox = f.ForceBbox()

	if sr.Error != nil {
		f.Properties["error"] = sr.Error.Error()
		return f, nil
	}

	f.Properties["scene_count"] = sr.SceneCount
	f.Properties["clear_scene_count"] = sr.ClearSceneCount
	if sr.DroppedScenes > 0 {
		f.Properties["dropped_scenes"] = sr.DroppedScenes
	}

	mixins := []GeoJSONFeatureMixin{
		GapStatisticsMixin{Stats: sr.AllScenes},
		GapStatisticsMixin{Prefix: "clear_", Stats: sr.ClearScenes},
	}
	if sr.Index != nil {
		mixins = append(mixins, IndexSeriesMixin{Series: *sr.Index})
	}

	for _, mixin := range mixins {
		if err := mixin.Apply(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// SiteEntry wraps a catalog site as a standalone output feature, carrying
// the catalog metadata without any computed statistics
type SiteEntry struct {
	Site Site
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (se SiteEntry) GeoJSONFeature() (*geojson.Feature, error) {
	properties := map[string]interface{}{
		"site_id":         se.Site.ID,
		"vegetation_type": se.Site.VegetationType,
		"description":     se.Site.Description,
		"country":         se.Site.Country,
		"elevation":       se.Site.Elevation,
	}
	if !se.Site.DateFirst.IsZero() {
		properties["date_first"] = se.Site.DateFirst.Format(SceneDateLayout)
	}
	if !se.Site.DateLast.IsZero() {
		properties["date_last"] = se.Site.DateLast.Format(SceneDateLayout)
	}

	f := geojson.NewFeature(geojson.NewPoint([]float64{se.Site.Lon, se.Site.Lat}), se.Site.ID, properties)
	f.Bbox = f.ForceBbox()
	return f, nil
}

// MultiSiteResult is a container type for bundling all sites' results
// together as a single output collection
type MultiSiteResult struct {
	FeatureCreators []GeoJSONFeatureCreator
}

// GeoJSONFeatureCollection implements the GeoJSONFeatureCollectionCreator interface
func (result MultiSiteResult) GeoJSONFeatureCollection() (*geojson.FeatureCollection, error) {
	var err error
	features := make([]*geojson.Feature, len(result.FeatureCreators))
	for i, creator := range result.FeatureCreators {
		features[i], err = creator.GeoJSONFeature()
		if err != nil {
			return nil, err
		}
	}

	return geojson.NewFeatureCollection(features), nil
}
