// Package history records every build the CLI performs in a local
// sqlite database: which object, which parameters, where the output
// went and how long meshing took. The report command reads it back.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

// Open opens (or creates) the build history database at path. The
// schema is managed by migrations; call MigrateUp before inserting.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set pragmas: %w", err)
	}

	return &DB{db}, nil
}

// Build is one recorded CLI build.
type Build struct {
	ID         string
	Object     string
	Params     map[string]string
	Format     string
	Path       string
	SizeBytes  int64
	DurationMS int64
	MeshCells  int
	CreatedAt  time.Time
}

// Insert records a build. A missing ID gets a fresh UUID and a zero
// CreatedAt gets the current time; both are written back to b.
func (db *DB) Insert(b *Build) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	params := b.Params
	if params == nil {
		params = map[string]string{}
	}
	encoded, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode params: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO builds (
			id, object, params, format, path, size_bytes, duration_ms,
			mesh_cells, created_unix
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Object, string(encoded), b.Format, b.Path, b.SizeBytes,
		b.DurationMS, b.MeshCells, b.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert build: %w", err)
	}
	return nil
}

// Recent returns the most recent builds, newest first.
func (db *DB) Recent(limit int) ([]Build, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(
		`SELECT id, object, params, format, path, size_bytes, duration_ms,
			mesh_cells, created_unix
		FROM builds
		ORDER BY created_unix DESC, id
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query builds: %w", err)
	}
	defer rows.Close()

	var builds []Build
	for rows.Next() {
		var b Build
		var params string
		var createdUnix int64
		if err := rows.Scan(
			&b.ID, &b.Object, &params, &b.Format, &b.Path, &b.SizeBytes,
			&b.DurationMS, &b.MeshCells, &createdUnix,
		); err != nil {
			return nil, fmt.Errorf("failed to scan build: %w", err)
		}
		if err := json.Unmarshal([]byte(params), &b.Params); err != nil {
			return nil, fmt.Errorf("failed to decode params for build %s: %w", b.ID, err)
		}
		b.CreatedAt = time.Unix(createdUnix, 0)
		builds = append(builds, b)
	}
	return builds, rows.Err()
}

// ObjectCount is the number of recorded builds for one object.
type ObjectCount struct {
	Object string
	Builds int64
}

// CountByObject returns build counts grouped by object, most built
// first.
func (db *DB) CountByObject() ([]ObjectCount, error) {
	rows, err := db.Query(
		`SELECT object, COUNT(*) AS n
		FROM builds
		GROUP BY object
		ORDER BY n DESC, object`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query build counts: %w", err)
	}
	defer rows.Close()

	var counts []ObjectCount
	for rows.Next() {
		var c ObjectCount
		if err := rows.Scan(&c.Object, &c.Builds); err != nil {
			return nil, fmt.Errorf("failed to scan build count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// ObjectDuration summarises build durations for one object.
type ObjectDuration struct {
	Object string
	Builds int64
	MeanMS float64
	MaxMS  int64
}

// DurationStatsByObject returns per-object duration summaries in
// object name order.
func (db *DB) DurationStatsByObject() ([]ObjectDuration, error) {
	rows, err := db.Query(
		`SELECT object, COUNT(*), AVG(duration_ms), MAX(duration_ms)
		FROM builds
		GROUP BY object
		ORDER BY object`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query durations: %w", err)
	}
	defer rows.Close()

	var stats []ObjectDuration
	for rows.Next() {
		var s ObjectDuration
		if err := rows.Scan(&s.Object, &s.Builds, &s.MeanMS, &s.MaxMS); err != nil {
			return nil, fmt.Errorf("failed to scan duration stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
