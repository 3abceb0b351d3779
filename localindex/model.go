package localindex

import (
	"database/sql"

	"github.com/pantierra/phenocam-finder/util"
)

// Context is the context for a local index operation
type Context struct {
	DB        *sql.DB
	sessionID string
}

// AppName returns the name of the application
func (c *Context) AppName() string {
	return "phenocam-finder"
}

// SessionID returns a Session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = util.PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *Context) LogRootDir() string {
	return ""
}
