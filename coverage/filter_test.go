package coverage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pantierra/phenocam-finder/model"
)

func testDate(dayOfYear int) time.Time {
	return time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, dayOfYear-1)
}

func testScene(dayOfYear int, cloudCover float64) model.Scene {
	return model.Scene{
		SiteID:       "test-site",
		AcquiredDate: testDate(dayOfYear),
		CloudCover:   cloudCover,
	}
}

func indexValue(v float64) *float64 {
	return &v
}

func TestSplitScenes(t *testing.T) {
	scenes := []model.Scene{
		testScene(20, 0.80),
		testScene(1, 0.05),
		testScene(5, 0.45),
		testScene(12, 0.10),
	}

	all, clear, dropped := SplitScenes(scenes, 0.30)

	assert.Equal(t, 0, dropped)
	assert.Len(t, all, 4)
	assert.Len(t, clear, 2)

	// Canonical ascending sort in both subsets
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].AcquiredDate.Before(all[i-1].AcquiredDate))
	}
	assert.Equal(t, testDate(1), clear[0].AcquiredDate)
	assert.Equal(t, testDate(12), clear[1].AcquiredDate)
}

func TestSplitScenes_ClearIsSubsetOfAll(t *testing.T) {
	scenes := []model.Scene{
		testScene(3, 0.0), testScene(9, 0.29), testScene(15, 0.30),
		testScene(21, 0.31), testScene(27, 1.0),
	}

	all, clear, _ := SplitScenes(scenes, 0.30)

	assert.True(t, len(clear) <= len(all))
	allDates := map[time.Time]int{}
	for _, scene := range all {
		allDates[scene.AcquiredDate]++
	}
	for _, scene := range clear {
		assert.True(t, allDates[scene.AcquiredDate] > 0, "clear scene %v not in all-scene subset", scene.AcquiredDate)
		allDates[scene.AcquiredDate]--
	}

	// Threshold is strict: cloud cover exactly at the threshold is not clear
	assert.Len(t, clear, 2)
}

func TestSplitScenes_DuplicateDatesKept(t *testing.T) {
	scenes := []model.Scene{
		testScene(10, 0.10),
		testScene(10, 0.20),
	}

	all, clear, _ := SplitScenes(scenes, 0.30)

	assert.Len(t, all, 2)
	assert.Len(t, clear, 2)
}

func TestSplitScenes_MalformedDropped(t *testing.T) {
	scenes := []model.Scene{
		testScene(2, 0.10),
		{SiteID: "test-site", CloudCover: 0.10},                        // no date
		{SiteID: "test-site", AcquiredDate: testDate(4), CloudCover: 1.7}, // cloud cover out of range
		testScene(8, 0.90),
	}

	all, clear, dropped := SplitScenes(scenes, 0.30)

	assert.Equal(t, 2, dropped)
	assert.Len(t, all, 2)
	assert.Len(t, clear, 1)
}

func TestSplitScenes_Empty(t *testing.T) {
	all, clear, dropped := SplitScenes(nil, 0.30)

	assert.Empty(t, all)
	assert.Empty(t, clear)
	assert.Equal(t, 0, dropped)
}

func TestSplitScenes_DoesNotMutateInput(t *testing.T) {
	scenes := []model.Scene{
		testScene(20, 0.10),
		testScene(1, 0.10),
	}

	SplitScenes(scenes, 0.30)

	assert.Equal(t, testDate(20), scenes[0].AcquiredDate)
	assert.Equal(t, testDate(1), scenes[1].AcquiredDate)
}
