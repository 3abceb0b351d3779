package db

import (
	"fmt"
	"time"

	"github.com/pantierra/phenocam-finder/model"
	"github.com/pantierra/phenocam-finder/util"
)

// SceneFetcher resolves the scene records for one site, normally backed by
// the STAC search client
type SceneFetcher interface {
	ScenesForSite(site model.Site) ([]model.Scene, error)
}

// Importer manages the state for an ingest job.
type Importer struct {
	dbConnProvider ConnectionProvider
	fetcher        SceneFetcher
}

// ImportStats summarizes one ingest job
type ImportStats struct {
	SitesUpserted  int
	ScenesUpserted int
	SitesFailed    int
	StartTime      time.Time
	EndTime        time.Time
}

func (stats ImportStats) String() string {
	return fmt.Sprintf(`
	Start:	%v
	End:	%v
	#Sites:		%v
	#Scenes:	%v
	#Failed:	%v
	`,
		stats.StartTime.Format("Mon Jan _2 15:04:05 2006"),
		stats.EndTime.Format("Mon Jan _2 15:04:05 2006"),
		stats.SitesUpserted,
		stats.ScenesUpserted,
		stats.SitesFailed)
}

// NewImporter initializes a new importer.
func NewImporter(dbConnProvider ConnectionProvider, fetcher SceneFetcher) *Importer {
	return &Importer{dbConnProvider: dbConnProvider, fetcher: fetcher}
}

// Import upserts the given catalog sites and their fetched scenes into the
// local index. A site whose scene fetch fails is counted and skipped; its
// catalog record is still stored. The database connection is opened right
// before the ingest, and closed immediately after.
func (imp *Importer) Import(ctx util.LogContext, sites []model.Site) (ImportStats, error) {
	stats := ImportStats{StartTime: time.Now()}

	database, err := imp.dbConnProvider(ctx)
	if err != nil {
		return stats, util.LogSimpleErr(ctx, "Could not open database connection.", err)
	}
	defer database.Close()

	for _, site := range sites {
		tx, err := database.Begin()
		if err != nil {
			return stats, util.LogSimpleErr(ctx, "Could not begin DB transaction.", err)
		}

		if err = InsertSite(tx, site); err != nil {
			tx.Rollback()
			return stats, util.LogSimpleErr(ctx, fmt.Sprintf("Failed to upsert site %v.", site.ID), err)
		}
		stats.SitesUpserted++

		scenes, err := imp.fetcher.ScenesForSite(site)
		if err != nil {
			util.LogAlert(ctx, fmt.Sprintf("Scene fetch failed for site %v: %v", site.ID, err))
			stats.SitesFailed++
			tx.Commit()
			continue
		}

		for _, scene := range scenes {
			if err = InsertScene(tx, scene); err != nil {
				tx.Rollback()
				return stats, util.LogSimpleErr(ctx, fmt.Sprintf("Failed to upsert scene %v.", scene.ID), err)
			}
			stats.ScenesUpserted++
		}

		if err = tx.Commit(); err != nil {
			return stats, util.LogSimpleErr(ctx, fmt.Sprintf("Failed to commit scenes for site %v.", site.ID), err)
		}
		util.LogInfo(ctx, fmt.Sprintf("Indexed %v scenes for site %v", len(scenes), site.ID))
	}

	stats.EndTime = time.Now()
	return stats, nil
}
