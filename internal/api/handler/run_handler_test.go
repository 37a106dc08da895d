package handler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesnav-etl/internal/model"
	"salesnav-etl/internal/store"
)

func TestExecuteRunRecordsFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, store.InitDB(filepath.Join(dir, "history.db")))

	spec := model.RunSpec{Mode: "convert", InputDir: filepath.Join(dir, "absent")}
	runID := "run-missing-input"
	require.NoError(t, store.SaveRun(runID, spec))

	executeRun(runID, spec)

	run, err := store.GetRun(runID)
	require.NoError(t, err)
	assert.Equal(t, "failed", run["status"])

	errs, err := store.GetRunErrors(runID)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0]["message"], "invalid path")
}

func TestExecuteRunPersistsSummary(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, store.InitDB(filepath.Join(dir, "history.db")))

	inDir := filepath.Join(dir, "in")
	require.NoError(t, os.MkdirAll(inDir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(inDir, "a.json"),
		[]byte(`[{"entityUrn": "urn:li:company:1", "companyName": "Acme Corp"}]`),
		0644,
	))

	spec := model.RunSpec{
		Mode:       "convert",
		InputDir:   inDir,
		OutputFile: filepath.Join(dir, "companies.csv"),
	}
	runID := "run-ok"
	require.NoError(t, store.SaveRun(runID, spec))

	executeRun(runID, spec)

	run, err := store.GetRun(runID)
	require.NoError(t, err)
	assert.Equal(t, "completed", run["status"])

	report, err := store.GetRunSummary(runID)
	require.NoError(t, err)
	require.NotNil(t, report.Convert)
	assert.Equal(t, 1, report.Convert.RowsWritten)
}
