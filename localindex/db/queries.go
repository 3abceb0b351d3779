package db

import (
	"database/sql"

	"github.com/pantierra/phenocam-finder/model"
)

const insertSiteStatement = `
INSERT INTO sites (
	site_id,
	lat,
	lon,
	vegetation_type,
	description,
	country,
	elevation,
	date_first,
	date_last)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (site_id) DO UPDATE
	SET lat = $2,
		lon = $3,
		vegetation_type = $4,
		description = $5,
		country = $6,
		elevation = $7,
		date_first = $8,
		date_last = $9
	`

const insertSceneStatement = `
INSERT INTO scenes (
	scene_id,
	site_id,
	acquired_date,
	cloud_cover,
	index_value)
VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (site_id, scene_id) DO UPDATE
	SET acquired_date = $3,
		cloud_cover = $4,
		index_value = $5
	`

// InsertSite upserts one catalog site record
func InsertSite(tx *sql.Tx, site model.Site) error {
	dateFirst := sql.NullTime{Time: site.DateFirst, Valid: !site.DateFirst.IsZero()}
	dateLast := sql.NullTime{Time: site.DateLast, Valid: !site.DateLast.IsZero()}
	_, err := tx.Exec(insertSiteStatement,
		site.ID, site.Lat, site.Lon, site.VegetationType, site.Description,
		site.Country, site.Elevation, dateFirst, dateLast)
	return err
}

// InsertScene upserts one scene record
func InsertScene(tx *sql.Tx, scene model.Scene) error {
	indexValue := sql.NullFloat64{}
	if scene.IndexValue != nil {
		indexValue = sql.NullFloat64{Float64: *scene.IndexValue, Valid: true}
	}
	_, err := tx.Exec(insertSceneStatement,
		scene.ID, scene.SiteID, scene.AcquiredDate, scene.CloudCover, indexValue)
	return err
}

// GetSites returns every indexed site, ordered by site ID
func GetSites(tx *sql.Tx) ([]model.Site, error) {
	rows, err := tx.Query(`
		SELECT site_id, lat, lon, vegetation_type, description, country, elevation, date_first, date_last
		FROM sites
		ORDER BY site_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []model.Site
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, rows.Err()
}

// GetSiteByID returns the indexed site with the given ID, or sql.ErrNoRows
func GetSiteByID(tx *sql.Tx, siteID string) (model.Site, error) {
	rows, err := tx.Query(`
		SELECT site_id, lat, lon, vegetation_type, description, country, elevation, date_first, date_last
		FROM sites
		WHERE site_id=$1
		LIMIT 1`,
		siteID,
	)
	if err != nil {
		return model.Site{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		return model.Site{}, sql.ErrNoRows
	}
	return scanSite(rows)
}

// ScenesForSite returns the indexed scenes of one site, ordered by
// acquisition date
func ScenesForSite(tx *sql.Tx, siteID string) ([]model.Scene, error) {
	rows, err := tx.Query(`
		SELECT scene_id, site_id, acquired_date, cloud_cover, index_value
		FROM scenes
		WHERE site_id=$1
		ORDER BY acquired_date`,
		siteID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scenes []model.Scene
	for rows.Next() {
		var (
			scene      model.Scene
			indexValue sql.NullFloat64
		)
		if err = rows.Scan(&scene.ID, &scene.SiteID, &scene.AcquiredDate, &scene.CloudCover, &indexValue); err != nil {
			return nil, err
		}
		if indexValue.Valid {
			value := indexValue.Float64
			scene.IndexValue = &value
		}
		scenes = append(scenes, scene)
	}
	return scenes, rows.Err()
}

func scanSite(rows *sql.Rows) (model.Site, error) {
	var (
		site      model.Site
		dateFirst sql.NullTime
		dateLast  sql.NullTime
	)
	err := rows.Scan(&site.ID, &site.Lat, &site.Lon, &site.VegetationType,
		&site.Description, &site.Country, &site.Elevation, &dateFirst, &dateLast)
	if err != nil {
		return site, err
	}
	if dateFirst.Valid {
		site.DateFirst = dateFirst.Time
	}
	if dateLast.Valid {
		site.DateLast = dateLast.Time
	}
	return site, nil
}
