package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up00001, Down00001)
}

// Up00001 adds the site catalog and scene index tables
func Up00001(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	err := addTables(tx)

	if err == nil {
		err = addIndexes(tx)
	}

	return err
}

// Down00001 undoes the db changes.
func Down00001(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec(`
		DROP TABLE IF EXISTS public.scenes;
		DROP TABLE IF EXISTS public.sites;
		`)
	return err
}

func addTables(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE public.sites
		(
			site_id text NOT NULL,
			lat double precision NOT NULL,
			lon double precision NOT NULL,
			vegetation_type text NOT NULL DEFAULT '',
			description text NOT NULL DEFAULT '',
			country text NOT NULL DEFAULT '',
			elevation double precision NOT NULL DEFAULT 0,
			date_first date,
			date_last date,
			CONSTRAINT sites_primary_site_id PRIMARY KEY (site_id)
		);

		CREATE TABLE public.scenes
		(
			scene_id text NOT NULL,
			site_id text NOT NULL,
			acquired_date timestamp with time zone NOT NULL,
			cloud_cover double precision NOT NULL,
			index_value double precision,
			CONSTRAINT scenes_primary_site_scene PRIMARY KEY (site_id, scene_id),
			CONSTRAINT scenes_site_fkey FOREIGN KEY (site_id)
				REFERENCES public.sites (site_id)
				ON DELETE CASCADE
		);
		`)
	return err
}

func addIndexes(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE INDEX idx_scenes_site_acquired
		ON public.scenes (site_id, acquired_date);
		`)
	return err
}
