package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/pantierra/phenocam-finder/localindex/db"
	"github.com/pantierra/phenocam-finder/phenocam"
	"github.com/pantierra/phenocam-finder/stac"
	"github.com/pantierra/phenocam-finder/util"
)

const maxCloudCoverEnv = "STAC_MAX_CLOUD_COVER"

// ingestAction fetches the site catalog and each site's scenes, and upserts
// them into the local index
func ingestAction(*cli.Context) {
	logContext := &(util.BasicLogContext{})

	phenocamContext := phenocam.Context{BasePhenoCamURL: util.GetPhenoCamAPIURL()}
	sites, err := phenocam.GetSites(phenocam.SiteOptions{EuropeOnly: true}, &phenocamContext)
	if err != nil {
		log.Fatal("Could not fetch site catalog: ", err)
	}

	stacContext := stac.Context{
		BaseSTACURL:   util.GetSTACAPIURL(),
		Collection:    util.GetSTACCollection(),
		MaxCloudCover: getMaxCloudCover(logContext),
	}
	importer := db.NewImporter(getDbConnectionFunc, stac.Source{Context: &stacContext})

	stats, err := importer.Import(logContext, sites)
	if err != nil {
		log.Fatal("Ingest failed: ", err)
	}
	util.LogInfo(logContext, fmt.Sprintf("Ingest complete: %v", stats))
}

// getMaxCloudCover reads the optional server-side cloud cover prefilter
// ceiling, in percent. Zero means no prefilter: the all-scene statistics
// need the cloudy acquisitions too.
func getMaxCloudCover(ctx util.LogContext) float64 {
	value := os.Getenv(maxCloudCoverEnv)
	if value == "" {
		return 0
	}
	maxCloudCover, err := strconv.ParseFloat(value, 64)
	if err != nil {
		util.LogAlert(ctx, fmt.Sprintf("Ignoring invalid %v value of %v", maxCloudCoverEnv, value))
		return 0
	}
	return maxCloudCover
}
