package coverage

import (
	"github.com/pantierra/phenocam-finder/model"
)

// ComputeIndexSeries derives the vegetation index time series and its
// summary from the clear-scene subset. The input must already be sorted
// ascending by acquisition date (SplitScenes output). Only scenes for
// which the imagery backend supplied an index value contribute a sample;
// values are taken as-is, with no smoothing or interpolation. Zero clear
// scenes is not an error: the summary carries NaN sentinels instead.
func ComputeIndexSeries(clear []model.Scene) model.IndexSeries {
	samples := make([]model.IndexSample, 0, len(clear))
	for _, scene := range clear {
		if scene.HasIndexValue() {
			samples = append(samples, model.IndexSample{
				Date:  scene.AcquiredDate,
				Value: *scene.IndexValue,
			})
		}
	}
	return model.NewIndexSeries(samples)
}
