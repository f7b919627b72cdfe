package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/notargets/gopanel/model_problems/PanelMethod2D"
)

// Store keeps solved cases in a SQLite database so polars can be built up
// over several invocations
type Store struct {
	db *sql.DB
}

type Run struct {
	ID        int64
	Title     string
	Geometry  string // NACA code or coordinate file name
	Panels    int
	UInf      float64
	Alpha     float64 // Degrees
	CL        float64
	Gamma     float64
	Chord     float64
	SourceSum float64
	Condition float64
	Surface   []SurfacePoint
	CreatedAt time.Time
}

type SurfacePoint struct {
	XC    float64 `json:"xc"`
	YC    float64 `json:"yc"`
	Sigma float64 `json:"sigma"`
	Vt    float64 `json:"vt"`
	Cp    float64 `json:"cp"`
}

type PolarPoint struct {
	Alpha, CL float64
}

func NewRun(title, geometry string, sol *PanelMethod2D.Solution) (r Run) {
	r = Run{
		Title:     title,
		Geometry:  geometry,
		Panels:    len(sol.Panels),
		UInf:      sol.FS.UInf,
		Alpha:     sol.FS.AlphaDegrees(),
		CL:        sol.CL,
		Gamma:     sol.Gamma,
		Chord:     sol.Chord,
		SourceSum: sol.SourceSum,
		Condition: sol.Condition,
		Surface:   make([]SurfacePoint, len(sol.Panels)),
	}
	for i, p := range sol.Panels {
		r.Surface[i] = SurfacePoint{XC: p.XC, YC: p.YC, Sigma: p.Sigma, Vt: p.Vt, Cp: p.Cp}
	}
	return
}

func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps an in memory database alive between calls
	db.SetMaxOpenConns(1)
	st := &Store{db: db}
	if err := st.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return st, nil
}

func (st *Store) Close() error { return st.db.Close() }

func (st *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		geometry TEXT NOT NULL,
		panels INTEGER NOT NULL,
		uinf REAL NOT NULL,
		alpha REAL NOT NULL,
		cl REAL NOT NULL,
		gamma REAL NOT NULL,
		chord REAL NOT NULL,
		source_sum REAL NOT NULL,
		condition REAL,
		surface JSON NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_title ON runs(title);
	`
	_, err := st.db.Exec(schema)
	return err
}

func (st *Store) SaveRun(ctx context.Context, r Run) (id int64, err error) {
	var (
		surface []byte
		res     sql.Result
	)
	if surface, err = json.Marshal(r.Surface); err != nil {
		return 0, fmt.Errorf("failed to marshal surface: %w", err)
	}
	res, err = st.db.ExecContext(ctx, `
		INSERT INTO runs (title, geometry, panels, uinf, alpha, cl, gamma, chord, source_sum, condition, surface)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.Title, r.Geometry, r.Panels, r.UInf, r.Alpha, r.CL, r.Gamma, r.Chord, r.SourceSum,
		conditionToNull(r.Condition), surface)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return res.LastInsertId()
}

// Runs returns every run with the title in the order they were saved
func (st *Store) Runs(ctx context.Context, title string) (runs []Run, err error) {
	rows, err := st.db.QueryContext(ctx, `
		SELECT id, title, geometry, panels, uinf, alpha, cl, gamma, chord, source_sum, condition, surface, created_at
		FROM runs WHERE title = ? ORDER BY id
	`, title)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			r         Run
			surface   []byte
			condition sql.NullFloat64
		)
		if err = rows.Scan(&r.ID, &r.Title, &r.Geometry, &r.Panels, &r.UInf, &r.Alpha, &r.CL, &r.Gamma,
			&r.Chord, &r.SourceSum, &condition, &surface, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err = json.Unmarshal(surface, &r.Surface); err != nil {
			return nil, fmt.Errorf("failed to unmarshal surface of run %d: %w", r.ID, err)
		}
		r.Condition = condition.Float64
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Polar returns CL by angle of attack for one title and panel count. When an
// angle was solved more than once the latest run wins.
func (st *Store) Polar(ctx context.Context, title string, panels int) (polar []PolarPoint, err error) {
	rows, err := st.db.QueryContext(ctx, `
		SELECT alpha, cl FROM runs
		WHERE id IN (SELECT MAX(id) FROM runs WHERE title = ? AND panels = ? GROUP BY alpha)
		ORDER BY alpha
	`, title, panels)
	if err != nil {
		return nil, fmt.Errorf("failed to query polar: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pp PolarPoint
		if err = rows.Scan(&pp.Alpha, &pp.CL); err != nil {
			return nil, fmt.Errorf("failed to scan polar point: %w", err)
		}
		polar = append(polar, pp)
	}
	return polar, rows.Err()
}

func conditionToNull(c float64) sql.NullFloat64 {
	if c == 0 {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: c, Valid: true}
}
