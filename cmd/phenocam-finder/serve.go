package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/pantierra/phenocam-finder/coverage"
	"github.com/pantierra/phenocam-finder/localindex"
	"github.com/pantierra/phenocam-finder/util"
)

func getPortStr() string {
	if port, ok := os.LookupEnv("PORT"); ok {
		return ":" + port
	}
	return ":8080"
}

func createRouter(ctx util.LogContext) (*mux.Router, error) {
	cfg := coverage.DefaultConfig()

	router := mux.NewRouter()
	router.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte("OK"))
	})

	if sitesHandler, err := localindex.NewSitesHandler(getDbConnectionFunc); err == nil {
		router.Handle("/sites", sitesHandler)
	} else {
		return nil, err
	}

	if coverageHandler, err := localindex.NewCoverageHandler(getDbConnectionFunc, cfg); err == nil {
		router.Handle("/coverage", coverageHandler)
	} else {
		return nil, err
	}

	if siteCoverageHandler, err := localindex.NewSiteCoverageHandler(getDbConnectionFunc, cfg); err == nil {
		router.Handle("/coverage/{siteId}", siteCoverageHandler)
	} else {
		return nil, err
	}

	return router, nil
}

func serveAction(*cli.Context) {
	logContext := &(util.BasicLogContext{})

	portStr := getPortStr()

	if router, err := createRouter(logContext); err == nil {
		launchServerFunc(portStr, router)
	} else {
		util.LogSimpleErr(logContext, "Failed to create router: ", err)
	}
}

var launchServerFunc = launchServer

func launchServer(portStr string, router *mux.Router) {
	server := http.Server{
		Addr:    portStr,
		Handler: router,
	}

	log.Fatal(server.ListenAndServe())
}
