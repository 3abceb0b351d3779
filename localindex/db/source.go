package db

import (
	"database/sql"

	"github.com/pantierra/phenocam-finder/model"
)

// Source supplies a site's scenes out of the local index, implementing the
// coverage engine's scene source over a live database connection
type Source struct {
	DB *sql.DB
}

// ScenesForSite returns the indexed scenes of the site
func (s Source) ScenesForSite(site model.Site) ([]model.Scene, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}

	scenes, err := ScenesForSite(tx, site.ID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	return scenes, tx.Commit()
}
