package model

import (
	"math"

	"github.com/venicegeo/geojson-go/geojson"
)

// GapStatisticsMixin augments a site feature with one subset's gap
// statistics. The prefix distinguishes the subset policy: "" for the
// all-scene statistics, "clear_" for the cloud-filtered subset.
type GapStatisticsMixin struct {
	Prefix string
	Stats  GapStatistics
}

// Apply implements the GeoJSONFeatureMixin interface
func (m GapStatisticsMixin) Apply(feature *geojson.Feature) error {
	feature.Properties[m.Prefix+"max_gap_days"] = m.Stats.MaxGapDays
	feature.Properties[m.Prefix+"gap_count"] = m.Stats.GapCount
	feature.Properties[m.Prefix+"weighted_gap_score"] = m.Stats.WeightedGapScore
	return nil
}

// IndexSeriesMixin augments a site feature with the vegetation index
// series and its summary. NaN sentinels become JSON nulls: a site with no
// clear scenes must not report an index of zero.
type IndexSeriesMixin struct {
	Series IndexSeries
}

// Apply implements the GeoJSONFeatureMixin interface
func (m IndexSeriesMixin) Apply(feature *geojson.Feature) error {
	feature.Properties["index_mean"] = nanToNil(m.Series.Mean)
	feature.Properties["index_min"] = nanToNil(m.Series.Min)
	feature.Properties["index_max"] = nanToNil(m.Series.Max)
	feature.Properties["index_range"] = nanToNil(m.Series.Range)

	series := make([]map[string]interface{}, len(m.Series.Samples))
	for i, sample := range m.Series.Samples {
		series[i] = map[string]interface{}{
			"date":  sample.Date.Format(SceneDateLayout),
			"value": sample.Value,
		}
	}
	feature.Properties["index_series"] = series
	feature.Properties["index_observations"] = len(m.Series.Samples)
	return nil
}

func nanToNil(value float64) interface{} {
	if math.IsNaN(value) {
		return nil
	}
	return value
}
