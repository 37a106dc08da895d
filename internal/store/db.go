package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"salesnav-etl/internal/model"
)

var db *sql.DB

// InitDB opens the run history database and creates the schema.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		spec TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS run_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`
	summaryTable := `
	CREATE TABLE IF NOT EXISTS run_summaries (
		run_id TEXT PRIMARY KEY,
		summary TEXT,
		created_at DATETIME
	);
	`

	for _, stmt := range []string{runTable, errorTable, summaryTable} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun stores a new processing run.
func SaveRun(runID string, spec model.RunSpec) error {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO runs (id, spec, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		runID, specJSON, "pending", now, now)
	return err
}

// UpdateRunStatus updates the status of a run.
func UpdateRunStatus(runID, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`, status, now, runID)
	return err
}

// SaveRunError records a fatal error for a run.
func SaveRunError(runID string, err error) error {
	if err == nil {
		return nil
	}
	return SaveRunErrors(runID, []string{err.Error()})
}

// SaveRunErrors records per-file soft errors for a run.
func SaveRunErrors(runID string, messages []string) error {
	now := time.Now().UTC()
	for _, msg := range messages {
		if _, err := db.Exec(`INSERT INTO run_errors (run_id, error_message, created_at) VALUES (?, ?, ?)`,
			runID, msg, now); err != nil {
			return err
		}
	}
	return nil
}

// SaveRunSummary persists the final report of a run.
func SaveRunSummary(runID string, report *model.RunReport) error {
	summaryJSON, err := json.Marshal(report)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT OR REPLACE INTO run_summaries (run_id, summary, created_at) VALUES (?, ?, ?)`,
		runID, summaryJSON, time.Now().UTC())
	return err
}

// ListRuns returns all runs with basic info, newest first.
func ListRuns() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, status, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []map[string]interface{}
	for rows.Next() {
		var id, status string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, map[string]interface{}{
			"id":        id,
			"status":    status,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return runs, rows.Err()
}

// GetRun fetches the full spec and status of one run.
func GetRun(runID string) (map[string]interface{}, error) {
	var specJSON, status string
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT spec, status, created_at, updated_at FROM runs WHERE id = ?`, runID).
		Scan(&specJSON, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	var spec model.RunSpec
	if err := json.Unmarshal([]byte(specJSON), &spec); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":        runID,
		"spec":      spec,
		"status":    status,
		"createdAt": createdAt,
		"updatedAt": updatedAt,
	}, nil
}

// GetRunErrors returns all errors recorded for a run.
func GetRunErrors(runID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT error_message, created_at FROM run_errors WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errs []map[string]interface{}
	for rows.Next() {
		var msg string
		var createdAt time.Time
		if err := rows.Scan(&msg, &createdAt); err != nil {
			return nil, err
		}
		errs = append(errs, map[string]interface{}{
			"message":   msg,
			"createdAt": createdAt,
		})
	}
	return errs, rows.Err()
}

// GetRunSummary returns the persisted final report of a run.
func GetRunSummary(runID string) (*model.RunReport, error) {
	var summaryJSON string
	err := db.QueryRow(`SELECT summary FROM run_summaries WHERE run_id = ?`, runID).Scan(&summaryJSON)
	if err != nil {
		return nil, err
	}

	var report model.RunReport
	if err := json.Unmarshal([]byte(summaryJSON), &report); err != nil {
		return nil, err
	}
	return &report, nil
}
