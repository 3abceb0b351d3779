package util

import (
	"fmt"
	"net/http"
	"time"
)

var httpClient = &http.Client{Timeout: 90 * time.Second}

// HTTPClient returns the shared http.Client for outbound requests
func HTTPClient() *http.Client {
	return httpClient
}

// HTTPError logs the given message and writes it to the ResponseWriter
// with the given status
func HTTPError(r *http.Request, w http.ResponseWriter, ctx LogContext, message string, status int) {
	LogAudit(ctx, LogAuditInput{
		Actor: "phenocam-finder", Action: fmt.Sprintf("%s response %d", r.Method, status), Actee: r.URL.String(), Message: message, Severity: ALERT,
	})
	http.Error(w, message, status)
}
