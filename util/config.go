package util

import "os"

// Environment variables
const (
	PHENOCAM_API_URL = "PHENOCAM_API_URL"
	STAC_API_URL     = "STAC_API_URL"
	STAC_COLLECTION  = "STAC_COLLECTION"
)

const defaultPhenoCamAPIURL = "https://phenocam.nau.edu/api/cameras/"
const defaultSTACAPIURL = "https://stac.dataspace.copernicus.eu/v1/search"
const defaultSTACCollection = "sentinel-2-l2a"

// GetPhenoCamAPIURL returns a string for the PHENOCAM_API_URL environment
// variable or the default public catalog endpoint
func GetPhenoCamAPIURL() string {
	apiURL, ok := os.LookupEnv(PHENOCAM_API_URL)
	if !ok {
		LogInfo(&BasicLogContext{}, "Did not get PhenoCam API URL from the environment. Using default catalog URL: "+defaultPhenoCamAPIURL)
		apiURL = defaultPhenoCamAPIURL
	}
	return apiURL
}

// GetSTACAPIURL returns a string for the STAC_API_URL environment variable
// or the default Copernicus Data Space search endpoint
func GetSTACAPIURL() string {
	stacURL, ok := os.LookupEnv(STAC_API_URL)
	if !ok {
		LogInfo(&BasicLogContext{}, "Did not get STAC API URL from the environment. Using default search URL: "+defaultSTACAPIURL)
		stacURL = defaultSTACAPIURL
	}
	return stacURL
}

// GetSTACCollection returns a string for the STAC_COLLECTION environment
// variable or the default Sentinel-2 L2A collection
func GetSTACCollection() string {
	collection, ok := os.LookupEnv(STAC_COLLECTION)
	if !ok {
		collection = defaultSTACCollection
	}
	return collection
}
