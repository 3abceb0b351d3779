package coverage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pantierra/phenocam-finder/model"
)

func TestComputeIndexSeries(t *testing.T) {
	clear := []model.Scene{
		{SiteID: "s", AcquiredDate: testDate(1), CloudCover: 0.1, IndexValue: indexValue(0.2)},
		{SiteID: "s", AcquiredDate: testDate(8), CloudCover: 0.1, IndexValue: indexValue(0.5)},
		{SiteID: "s", AcquiredDate: testDate(15), CloudCover: 0.1, IndexValue: indexValue(0.3)},
	}

	series := ComputeIndexSeries(clear)

	assert.Len(t, series.Samples, 3)
	assert.InDelta(t, 0.3333, series.Mean, 0.001)
	assert.Equal(t, 0.2, series.Min)
	assert.Equal(t, 0.5, series.Max)
	assert.InDelta(t, 0.3, series.Range, 1e-9)

	// Sample order follows acquisition order
	assert.Equal(t, 0.2, series.Samples[0].Value)
	assert.Equal(t, 0.3, series.Samples[2].Value)
}

func TestComputeIndexSeries_ScenesWithoutValueSkipped(t *testing.T) {
	clear := []model.Scene{
		{SiteID: "s", AcquiredDate: testDate(1), CloudCover: 0.1, IndexValue: indexValue(0.4)},
		{SiteID: "s", AcquiredDate: testDate(8), CloudCover: 0.1},
	}

	series := ComputeIndexSeries(clear)

	assert.Len(t, series.Samples, 1)
	assert.Equal(t, 0.4, series.Mean)
	assert.Equal(t, 0.0, series.Range)
}

func TestComputeIndexSeries_Empty(t *testing.T) {
	series := ComputeIndexSeries(nil)

	assert.True(t, series.Empty())
	assert.True(t, math.IsNaN(series.Mean))
	assert.True(t, math.IsNaN(series.Min))
	assert.True(t, math.IsNaN(series.Max))
	assert.True(t, math.IsNaN(series.Range))
}
