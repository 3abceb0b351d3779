package util

import (
	"crypto/rand"
	"fmt"
	"log"
)

// Severity indicates the importance of an audit log message
type Severity int

// Severity levels, ordered most to least severe
const (
	FATAL Severity = iota
	ALERT
	NOTICE
	INFO
	DEBUG
)

func (s Severity) String() string {
	switch s {
	case FATAL:
		return "FATAL"
	case ALERT:
		return "ALERT"
	case NOTICE:
		return "NOTICE"
	case INFO:
		return "INFO"
	default:
		return "DEBUG"
	}
}

// LogContext is the interface required for contextual logging. Operation
// contexts (stac.Context, phenocam.Context, localindex.Context) implement it
// so that log lines carry the application name and a per-operation session ID.
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// BasicLogContext is a minimal LogContext for code paths that have no
// operation context of their own (startup, CLI actions)
type BasicLogContext struct {
	sessionID string
}

// AppName returns the application name
func (c *BasicLogContext) AppName() string {
	return "phenocam-finder"
}

// SessionID returns a Session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *BasicLogContext) LogRootDir() string {
	return ""
}

// LogAuditInput is the full set of inputs for LogAudit
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity Severity
}

func logMessage(ctx LogContext, level Severity, message string) {
	log.Printf("[%s %s] %s: %s", ctx.AppName(), ctx.SessionID(), level, message)
}

// LogInfo logs an informational message
func LogInfo(ctx LogContext, message string) {
	logMessage(ctx, INFO, message)
}

// LogAlert logs a message that requires attention but is not necessarily
// an application error
func LogAlert(ctx LogContext, message string) {
	logMessage(ctx, ALERT, message)
}

// LogAudit logs an actor/action/actee audit record, typically one line on
// each side of an outbound request
func LogAudit(ctx LogContext, input LogAuditInput) {
	logMessage(ctx, input.Severity, fmt.Sprintf("AUDIT %s => %s => %s: %s", input.Actor, input.Action, input.Actee, input.Message))
}

// LogSimpleErr logs a message plus its underlying error and returns an
// Error suitable for handing back up the call stack
func LogSimpleErr(ctx LogContext, message string, err error) error {
	lErr := Error{SimpleMsg: message, LogMsg: message}
	if err != nil {
		lErr.LogMsg = message + err.Error()
	}
	return lErr.Log(ctx, "")
}

// Error is a loggable error with a cleaned-up message for external
// consumption and the full detail for the logs
type Error struct {
	LogMsg     string
	SimpleMsg  string
	Response   string
	URL        string
	HTTPStatus int
	hasLogged  bool
}

// Error implements the error interface, preferring the simple message
func (e Error) Error() string {
	if e.SimpleMsg != "" {
		return e.SimpleMsg
	}
	return e.LogMsg
}

// Log records the full detail of the error and marks it as logged,
// returning the error for convenience
func (e Error) Log(ctx LogContext, message string) error {
	if message != "" {
		message = message + ": "
	}
	message = message + e.LogMsg
	if e.URL != "" {
		message = fmt.Sprintf("%s\nURL: %s", message, e.URL)
	}
	if e.Response != "" {
		message = fmt.Sprintf("%s\nResponse: %s", message, e.Response)
	}
	if e.HTTPStatus != 0 {
		message = fmt.Sprintf("%s\nHTTP Status: %d", message, e.HTTPStatus)
	}
	logMessage(ctx, ALERT, message)
	e.hasLogged = true
	return e
}

// HTTPErr is an error holding the HTTP status that should be reported
type HTTPErr struct {
	Status  int
	Message string
}

func (e HTTPErr) Error() string {
	return e.Message
}

// PsuUUID generates a pseudorandom UUID-shaped session identifier
func PsuUUID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:]), nil
}
