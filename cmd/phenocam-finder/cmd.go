package main

import (
	"fmt"

	cli "gopkg.in/urfave/cli.v1"
)

const version = "1.0.0"

var commands = cli.Commands{
	cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Launch the phenocam-finder webserver",
		Action:  serveAction,
	},
	cli.Command{
		Name:    "ingest",
		Aliases: []string{"i"},
		Usage:   "Update the local index with the latest catalog sites and scenes",
		Action:  ingestAction,
	},
	cli.Command{
		Name:    "evaluate",
		Aliases: []string{"e"},
		Usage:   "Compute coverage statistics over the local index and write them to a GeoJSON file",
		Action:  evaluateAction,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "config, c",
				Usage: "Load engine thresholds and site selection from a YAML `FILE`",
			},
			cli.StringFlag{
				Name:  "output, o",
				Value: "coverage.geojson",
				Usage: "Write the result FeatureCollection to `FILE`",
			},
		},
	},
	cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Update database schema",
		Action:  migrateDatabaseAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the phenocam-finder CLI",
		Action:  versionAction,
	},
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "phenocam-finder"
	app.Usage = "Launch a phenocam-finder process"
	app.Version = version
	app.Commands = commands
	return
}

func versionAction(c *cli.Context) {
	fmt.Fprintln(c.App.Writer, version)
}
