package phenocam

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pantierra/phenocam-finder/model"
	"github.com/pantierra/phenocam-finder/util"
)

const catalogDateLayout = "2006-01-02"

// GetSites returns the catalog's monitoring sites matching the options,
// walking the paginated cameras listing to the end. Camera records without
// an identifier or usable coordinates are skipped, not fatal.
func GetSites(options SiteOptions, context *Context) ([]model.Site, error) {
	var sites []model.Site

	pageURL := context.BasePhenoCamURL
	for pageURL != "" {
		page, err := fetchCamerasPage(pageURL, context)
		if err != nil {
			return nil, err
		}

		for _, camera := range page.Results {
			site, ok := siteFromCamera(camera, context)
			if !ok {
				continue
			}
			if options.EuropeOnly && !InEurope(site.Lat, site.Lon) {
				continue
			}
			if options.VegetationType != "" && site.VegetationType != options.VegetationType {
				continue
			}
			sites = append(sites, site)
		}

		pageURL = page.Next
	}

	util.LogInfo(context, fmt.Sprintf("Retrieved %v sites from PhenoCam catalog", len(sites)))
	return sites, nil
}

// fetchCamerasPage performs the request for one page of the listing
func fetchCamerasPage(pageURL string, context *Context) (camerasPage, error) {
	var (
		page     camerasPage
		response *http.Response
		err      error
		body     []byte
	)

	inputURL := pageURL
	if !strings.Contains(inputURL, context.BasePhenoCamURL) {
		baseURL, _ := url.Parse(context.BasePhenoCamURL)
		parsedRelativeURL, _ := url.Parse(pageURL)
		inputURL = baseURL.ResolveReference(parsedRelativeURL).String()
	}

	request, err := http.NewRequest("GET", inputURL, nil)
	if err != nil {
		err = util.LogSimpleErr(context, fmt.Sprintf("Failed to make a new HTTP request for %v.", inputURL), err)
		return page, err
	}
	util.LogAudit(context, util.LogAuditInput{Actor: "phenocam/fetchCamerasPage", Action: "GET", Actee: inputURL, Message: "Requesting site catalog from PhenoCam", Severity: util.INFO})
	if response, err = util.HTTPClient().Do(request); err != nil {
		err = util.LogSimpleErr(context, fmt.Sprintf("Failed to complete PhenoCam catalog request for %v.", inputURL), err)
		return page, err
	}
	util.LogAudit(context, util.LogAuditInput{Actor: inputURL, Action: "GET response", Actee: "phenocam/fetchCamerasPage", Message: "Receiving data from PhenoCam catalog", Severity: util.INFO})

	switch {
	case (response.StatusCode >= 400) && (response.StatusCode < 500):
		message := fmt.Sprintf("Failed to list sites from PhenoCam catalog: %v. ", response.Status)
		err := util.HTTPErr{Status: response.StatusCode, Message: message}
		util.LogAlert(context, message)
		return page, err
	case response.StatusCode >= 500:
		err = util.LogSimpleErr(context, "Failed to list sites from PhenoCam catalog.", errors.New(response.Status))
		return page, err
	default:
		//no op
	}

	defer response.Body.Close()
	body, _ = ioutil.ReadAll(response.Body)

	if err = json.Unmarshal(body, &page); err != nil {
		pcErr := util.Error{LogMsg: "Failed to Unmarshal response from PhenoCam catalog request: " + err.Error(),
			SimpleMsg:  "The PhenoCam catalog returned an unexpected response for this request. See log for further details.",
			Response:   string(body),
			URL:        inputURL,
			HTTPStatus: response.StatusCode}
		err = pcErr.Log(context, "")
		return page, err
	}

	return page, nil
}

// siteFromCamera converts a raw catalog record into a Site, reporting
// whether the record was usable
func siteFromCamera(camera camera, context util.LogContext) (model.Site, bool) {
	if camera.Sitename == "" || camera.Lat == nil || camera.Lon == nil {
		return model.Site{}, false
	}
	if !ValidCoordinates(*camera.Lat, *camera.Lon) {
		util.LogAlert(context, fmt.Sprintf("Skipping site %v: coordinates %v, %v out of range", camera.Sitename, *camera.Lat, *camera.Lon))
		return model.Site{}, false
	}

	description := camera.SiteMetadata.SiteDescription
	if description == "" {
		description = "PhenoCam site " + camera.Sitename
	}

	site := model.Site{
		ID:             camera.Sitename,
		Lat:            *camera.Lat,
		Lon:            *camera.Lon,
		VegetationType: VegetationTypeName(camera.SiteMetadata.PrimaryVegType),
		Description:    description,
		Country:        camera.SiteMetadata.Country,
		Elevation:      camera.Elevation,
	}

	// Camera date range is optional metadata; a bad value is dropped, not fatal
	if camera.DateFirst != "" {
		site.DateFirst, _ = time.Parse(catalogDateLayout, camera.DateFirst)
	}
	if camera.DateLast != "" {
		site.DateLast, _ = time.Parse(catalogDateLayout, camera.DateLast)
	}

	return site, true
}
