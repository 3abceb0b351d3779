package stac

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/pantierra/phenocam-finder/model"
	"github.com/pantierra/phenocam-finder/util"
)

const defaultSearchLimit = 1000

// SearchScenes returns the scene records matching the options, posting an
// item search against the configured collection. The cloud-cover ceiling in
// the context is only a server-side prefilter to bound the transfer; the
// coverage engine applies its own clear threshold afterwards.
func SearchScenes(options SearchOptions, siteID string, context *Context) ([]model.Scene, error) {
	var (
		err          error
		response     *http.Response
		requestBody  []byte
		responseBody []byte
	)

	req := searchRequest{
		Collections: []string{context.Collection},
		Bbox:        options.Bbox,
		Limit:       context.Limit,
	}
	if req.Limit <= 0 {
		req.Limit = defaultSearchLimit
	}
	if options.AcquiredDate != "" || options.MaxAcquiredDate != "" {
		req.Datetime = options.AcquiredDate + "/" + options.MaxAcquiredDate
	}
	if context.MaxCloudCover > 0 {
		req.Filter = &comparisonFilter{
			Op:   "<",
			Args: []interface{}{propertyRef{Property: "eo:cloud_cover"}, context.MaxCloudCover},
		}
	}

	if requestBody, err = json.Marshal(req); err != nil {
		err = util.LogSimpleErr(context, fmt.Sprintf("Failed to marshal request object %#v.", req), err)
		return nil, err
	}

	if response, err = stacRequest(requestBody, context); err != nil {
		err = util.LogSimpleErr(context, fmt.Sprintf("Failed to complete STAC search request %#v.", string(requestBody)), err)
		return nil, err
	}
	switch {
	case (response.StatusCode >= 400) && (response.StatusCode < 500):
		message := fmt.Sprintf("Failed to search scenes from STAC API: %v. ", response.Status)
		err := util.HTTPErr{Status: response.StatusCode, Message: message}
		util.LogAlert(context, message)
		return nil, err
	case response.StatusCode >= 500:
		err = util.LogSimpleErr(context, "Failed to search scenes from STAC API.", errors.New(response.Status))
		return nil, err
	default:
		//no op
	}

	defer response.Body.Close()
	responseBody, _ = ioutil.ReadAll(response.Body)

	return parseSearchResults(responseBody, siteID, context)
}

// stacRequest performs the search POST
func stacRequest(body []byte, context *Context) (*http.Response, error) {
	request, err := http.NewRequest("POST", context.BaseSTACURL, bytes.NewBuffer(body))
	if err != nil {
		err = util.LogSimpleErr(context, fmt.Sprintf("Failed to make a new HTTP request for %v.", context.BaseSTACURL), err)
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")

	message := "Requesting scenes from STAC API: " + string(body)
	util.LogAudit(context, util.LogAuditInput{Actor: "stac/stacRequest", Action: "POST", Actee: context.BaseSTACURL, Message: message, Severity: util.INFO})
	util.LogAudit(context, util.LogAuditInput{Actor: context.BaseSTACURL, Action: "POST response", Actee: "stac/stacRequest", Message: "Receiving data from STAC API", Severity: util.INFO})
	return util.HTTPClient().Do(request)
}

// parseSearchResults converts the item collection into scene records.
// Features without a parseable datetime or a cloud-cover value are dropped
// and logged rather than failing the search.
func parseSearchResults(body []byte, siteID string, context util.LogContext) ([]model.Scene, error) {
	var results searchResults
	if err := json.Unmarshal(body, &results); err != nil {
		stacErr := util.Error{LogMsg: "Failed to Unmarshal response from STAC search request: " + err.Error(),
			SimpleMsg: "The STAC API returned an unexpected response for this request. See log for further details.",
			Response:  string(body)}
		return nil, stacErr.Log(context, "")
	}

	scenes := make([]model.Scene, 0, len(results.Features))
	for _, feature := range results.Features {
		acquired, err := model.ParseSceneTime(feature.Properties.Datetime)
		if err != nil {
			util.LogAlert(context, fmt.Sprintf("Dropping scene %v: unparseable datetime %#v", feature.ID, feature.Properties.Datetime))
			continue
		}
		if feature.Properties.CloudCover == nil {
			util.LogAlert(context, fmt.Sprintf("Dropping scene %v: no cloud cover value", feature.ID))
			continue
		}

		scenes = append(scenes, model.Scene{
			ID:           feature.ID,
			SiteID:       siteID,
			AcquiredDate: acquired,
			CloudCover:   *feature.Properties.CloudCover / 100.0,
		})
	}

	return scenes, nil
}
