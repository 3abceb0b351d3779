package coverage

import (
	"sort"
	"time"

	"github.com/pantierra/phenocam-finder/model"
)

// SplitScenes partitions a site's scene collection into the all-scene and
// clear-scene subsets. Both subsets are returned canonically sorted by
// ascending acquisition date; the clear subset contains the scenes whose
// cloud-cover fraction is strictly below clearThreshold. Records missing a
// usable date or cloud-cover value are excluded from both subsets and
// counted in dropped. Scenes sharing a date are kept as distinct entries:
// two acquisitions on one day are two scenes.
//
// The input slice is not modified.
func SplitScenes(scenes []model.Scene, clearThreshold float64) (all, clear []model.Scene, dropped int) {
	all = make([]model.Scene, 0, len(scenes))
	for _, scene := range scenes {
		if !scene.Valid() {
			dropped++
			continue
		}
		all = append(all, scene)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].AcquiredDate.Before(all[j].AcquiredDate)
	})

	clear = make([]model.Scene, 0, len(all))
	for _, scene := range all {
		if scene.CloudCover < clearThreshold {
			clear = append(clear, scene)
		}
	}

	return all, clear, dropped
}

// SceneDates extracts the acquisition dates of an already-sorted scene subset
func SceneDates(scenes []model.Scene) []time.Time {
	dates := make([]time.Time, len(scenes))
	for i, scene := range scenes {
		dates[i] = scene.AcquiredDate
	}
	return dates
}
