package main

import (
	"fmt"
	"io/ioutil"
	"log"

	_ "github.com/lib/pq"
	cli "gopkg.in/urfave/cli.v1"
	yaml "gopkg.in/yaml.v3"

	"github.com/pantierra/phenocam-finder/coverage"
	"github.com/pantierra/phenocam-finder/localindex/db"
	"github.com/pantierra/phenocam-finder/model"
	"github.com/pantierra/phenocam-finder/util"
)

// evaluateConfig is the YAML configuration of an evaluate run: the engine
// thresholds plus an optional restriction of the run to named sites
type evaluateConfig struct {
	coverage.Config `yaml:",inline"`
	Sites           []string `yaml:"sites"`
}

// evaluateAction runs the coverage engine over the local index and writes
// the resulting FeatureCollection to a file
func evaluateAction(c *cli.Context) {
	logContext := &(util.BasicLogContext{})

	cfg, err := loadEvaluateConfig(c.String("config"))
	if err != nil {
		log.Fatal("Could not load configuration: ", err)
	}

	database, err := getDbConnectionFunc(logContext)
	if err != nil {
		log.Fatal("Could not open database connection.")
	}
	defer database.Close()

	tx, err := database.Begin()
	if err != nil {
		log.Fatal("Could not begin DB transaction: ", err)
	}
	sites, err := db.GetSites(tx)
	if err != nil {
		tx.Rollback()
		log.Fatal("Could not list sites: ", err)
	}
	tx.Commit()

	if len(cfg.Sites) > 0 {
		sites = selectSitesByID(sites, cfg.Sites)
	}
	util.LogInfo(logContext, fmt.Sprintf("Evaluating coverage for %v sites", len(sites)))

	results := coverage.ComputeSites(logContext, sites, db.Source{DB: database}, cfg.Config)
	featureCollection, err := coverage.ResultsToMultiResult(results).GeoJSONFeatureCollection()
	if err != nil {
		log.Fatal("Could not build feature collection: ", err)
	}

	outputPath := c.String("output")
	if err = ioutil.WriteFile(outputPath, []byte(featureCollection.String()), 0644); err != nil {
		log.Fatal("Could not write output file: ", err)
	}
	util.LogInfo(logContext, fmt.Sprintf("Wrote %v site results to %v", len(results), outputPath))
}

// loadEvaluateConfig reads the YAML run configuration, falling back to the
// engine defaults when no file is given
func loadEvaluateConfig(path string) (evaluateConfig, error) {
	cfg := evaluateConfig{Config: coverage.DefaultConfig()}
	if path == "" {
		return cfg, nil
	}

	contents, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err = yaml.Unmarshal(contents, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func selectSitesByID(sites []model.Site, ids []string) []model.Site {
	requested := make(map[string]bool, len(ids))
	for _, id := range ids {
		requested[id] = true
	}

	selected := make([]model.Site, 0, len(sites))
	for _, site := range sites {
		if requested[site.ID] {
			selected = append(selected, site)
		}
	}
	return selected
}
