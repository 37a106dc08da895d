package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"salesnav-etl/internal/model"
	"salesnav-etl/internal/pipeline"
	"salesnav-etl/internal/store"
	"salesnav-etl/pkg/utils"
)

var outputManager = utils.NewOutputManager("outputs")

// CreateRun submits a new processing run
// @Summary Create a new run
// @Description Submit a combine, convert or workflow run over a directory of JSON export files
// @Tags runs
// @Accept json
// @Produce json
// @Param run body model.RunSpec true "Run configuration"
// @Success 200 {object} map[string]interface{} "Run created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [post]
func CreateRun(w http.ResponseWriter, r *http.Request) {
	var spec model.RunSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if spec.InputDir == "" {
		http.Error(w, "input_dir is required", http.StatusBadRequest)
		return
	}
	if spec.Mode == "" {
		spec.Mode = "convert"
	}
	switch spec.Mode {
	case "combine", "convert", "workflow":
	default:
		http.Error(w, "mode must be combine, convert or workflow", http.StatusBadRequest)
		return
	}

	runID := uuid.New().String()

	// Route unspecified outputs into this run's own directory so they can
	// be downloaded afterwards.
	if err := assignDefaultOutput(runID, &spec); err != nil {
		http.Error(w, "Failed to prepare output directory", http.StatusInternalServerError)
		return
	}

	if err := store.SaveRun(runID, spec); err != nil {
		http.Error(w, "Failed to save run", http.StatusInternalServerError)
		return
	}

	go executeRun(runID, spec)

	resp := map[string]interface{}{
		"message":   "Run created successfully!",
		"runID":     runID,
		"status":    "pending",
		"createdAt": time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func assignDefaultOutput(runID string, spec *model.RunSpec) error {
	switch spec.Mode {
	case "combine":
		if spec.OutputFile == "" {
			path, err := outputManager.GetOutputFilePath(runID, "combined.json")
			if err != nil {
				return err
			}
			spec.OutputFile = path
		}
	case "convert":
		if spec.OutputFile == "" {
			path, err := outputManager.GetOutputFilePath(runID, "companies.csv")
			if err != nil {
				return err
			}
			spec.OutputFile = path
		}
	case "workflow":
		if spec.OutputDir == "" {
			dir, err := outputManager.CreateRunOutputDir(runID)
			if err != nil {
				return err
			}
			spec.OutputDir = dir
		}
	}
	return nil
}

func executeRun(runID string, spec model.RunSpec) {
	setStatus := func(status string) {
		if err := store.UpdateRunStatus(runID, status); err != nil {
			fmt.Printf("⚠️ Run %s: failed to update status to %s: %v\n", runID, status, err)
		}
	}

	setStatus("running")

	report, runErr := pipeline.Run(spec)
	if runErr != nil {
		setStatus("failed")
		if err := store.SaveRunError(runID, runErr); err != nil {
			fmt.Printf("⚠️ Run %s: failed to record error: %v\n", runID, err)
		}
		return
	}

	if err := store.SaveRunErrors(runID, report.SoftErrors()); err != nil {
		fmt.Printf("⚠️ Run %s: failed to record errors: %v\n", runID, err)
	}
	if err := store.SaveRunSummary(runID, report); err != nil {
		fmt.Printf("⚠️ Run %s: failed to save summary: %v\n", runID, err)
	}
	setStatus("completed")
}

// ListRuns retrieves all processing runs
// @Summary List all runs
// @Description Get a list of all runs with their current status
// @Tags runs
// @Produce json
// @Success 200 {array} map[string]interface{} "List of runs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [get]
func ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch runs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

// GetRun retrieves a specific run
// @Summary Get run
// @Description Retrieve spec and status of a specific run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run details"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /runs/{id} [get]
func GetRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(r.URL.Path, "")
	if !ok {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return
	}

	run, err := store.GetRun(runID)
	if err != nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}

// GetRunErrors retrieves the errors recorded for a run
// @Summary Get run errors
// @Description Retrieve the per-file and fatal errors recorded during a run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run errors"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/errors [get]
func GetRunErrors(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(r.URL.Path, "/errors")
	if !ok {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return
	}

	errs, err := store.GetRunErrors(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"run_id": runID,
		"errors": errs,
		"count":  len(errs),
	})
}

// GetRunSummary retrieves the persisted result counters of a run
// @Summary Get run summary
// @Description Retrieve the final report of a completed run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} model.RunReport "Run summary"
// @Failure 404 {object} map[string]interface{} "Summary not found"
// @Router /runs/{id}/summary [get]
func GetRunSummary(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(r.URL.Path, "/summary")
	if !ok {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return
	}

	report, err := store.GetRunSummary(runID)
	if err != nil {
		http.Error(w, "Summary not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// DownloadOutput serves an output file produced by a run
// @Summary Download run output
// @Description Download one of the files produced by a run
// @Tags runs
// @Produce octet-stream
// @Param id path string true "Run ID"
// @Param file path string true "File name"
// @Success 200 {file} binary "Output file"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{id}/{file} [get]
func DownloadOutput(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/v1/download/"
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.Error(w, "Run ID and file name are required", http.StatusBadRequest)
		return
	}

	runID := parts[0]
	fileName := filepath.Base(parts[1])
	filePath := filepath.Join(outputManager.BaseOutputDir, runID, fileName)

	if _, err := os.Stat(filePath); err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	http.ServeFile(w, r, filePath)
}

// runIDFromPath extracts the run ID from /api/v1/runs/{id}{suffix}.
func runIDFromPath(path, suffix string) (string, bool) {
	const prefix = "/api/v1/runs/"
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return "", false
	}
	runID := path[len(prefix) : len(path)-len(suffix)]
	if runID == "" || strings.Contains(runID, "/") {
		return "", false
	}
	return runID, true
}
