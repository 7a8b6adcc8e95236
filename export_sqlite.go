package lanetopo

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS builds (
		build_id              TEXT PRIMARY KEY,
		connection_proximity  DOUBLE,
		lanes_num             BIGINT,
		intersections_num     BIGINT,
		total_lane_length     DOUBLE,
		created_at            TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS lanes (
		build_id         TEXT,
		lane_id          TEXT,
		is_traffic       BOOLEAN,
		speed            DOUBLE,
		straight_length  DOUBLE,
		length           DOUBLE,
		stop_line_id     TEXT,
		section_id       TEXT,
		turn_type        TEXT,
		geom             TEXT,
		PRIMARY KEY (build_id, lane_id)
	);
	CREATE TABLE IF NOT EXISTS lane_successors (
		build_id      TEXT,
		lane_id       TEXT,
		next_lane_id  TEXT
	);
	CREATE TABLE IF NOT EXISTS intersections (
		build_id         TEXT,
		intersection_id  TEXT,
		geom             TEXT,
		PRIMARY KEY (build_id, intersection_id)
	);
	CREATE TABLE IF NOT EXISTS intersection_lanes (
		build_id         TEXT,
		intersection_id  TEXT,
		lane_id          TEXT
	);
`

// ExportToSQLite stores the topology in SQLite database (created when missing).
// Every export is a separate build identified by returned build ID.
func (topology *Topology) ExportToSQLite(path string) (string, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return "", errors.Wrap(err, "Can't open database")
	}
	defer db.Close()

	_, err = db.Exec(sqliteSchema)
	if err != nil {
		return "", errors.Wrap(err, "Can't create schema")
	}

	buildID := uuid.New().String()
	tx, err := db.Begin()
	if err != nil {
		return "", errors.Wrap(err, "Can't begin transaction")
	}
	err = topology.insertBuild(tx, buildID)
	if err != nil {
		_ = tx.Rollback()
		return "", err
	}
	err = tx.Commit()
	if err != nil {
		return "", errors.Wrap(err, "Can't commit build")
	}
	return buildID, nil
}

func (topology *Topology) insertBuild(tx *sql.Tx, buildID string) error {
	_, err := tx.Exec(
		`INSERT INTO builds (build_id, connection_proximity, lanes_num, intersections_num, total_lane_length, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		buildID, topology.ConnectionProximity, len(topology.Network), len(topology.Intersections), TotalLaneLength(topology.Lanes), time.Now().UTC(),
	)
	if err != nil {
		return errors.Wrap(err, "Can't insert build")
	}
	for _, lane := range topology.Network {
		_, err = tx.Exec(
			`INSERT INTO lanes (build_id, lane_id, is_traffic, speed, straight_length, length, stop_line_id, section_id, turn_type, geom) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			buildID, string(lane.ID), lane.IsTrafficLane, lane.Speed, lane.StraightLength(), lane.Length(), lineID(lane.StopLine), sectionID(lane.Section), lane.TurnType.String(), PrepareWKTLinestring(lane.WorldPositions),
		)
		if err != nil {
			return errors.Wrapf(err, "Can't insert lane '%s'", lane.ID)
		}
		for _, next := range lane.NextConnectedLanes {
			_, err = tx.Exec(
				`INSERT INTO lane_successors (build_id, lane_id, next_lane_id) VALUES (?, ?, ?)`,
				buildID, string(lane.ID), string(next.ID),
			)
			if err != nil {
				return errors.Wrapf(err, "Can't insert successor of lane '%s'", lane.ID)
			}
		}
	}
	for _, intersection := range topology.Intersections {
		_, err = tx.Exec(
			`INSERT INTO intersections (build_id, intersection_id, geom) VALUES (?, ?, ?)`,
			buildID, string(intersection.ID), PrepareWKTPoint(intersection.Center),
		)
		if err != nil {
			return errors.Wrapf(err, "Can't insert intersection '%s'", intersection.ID)
		}
		for _, lane := range intersection.Lanes {
			_, err = tx.Exec(
				`INSERT INTO intersection_lanes (build_id, intersection_id, lane_id) VALUES (?, ?, ?)`,
				buildID, string(intersection.ID), string(lane.ID),
			)
			if err != nil {
				return errors.Wrapf(err, "Can't insert lane of intersection '%s'", intersection.ID)
			}
		}
	}
	return nil
}
