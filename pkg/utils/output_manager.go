package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager organizes run output files under a base directory, one
// subdirectory per run.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager.
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{BaseOutputDir: baseOutputDir}
}

// CreateRunOutputDir creates the output directory for a run.
func (om *OutputManager) CreateRunOutputDir(runID string) (string, error) {
	runDir := filepath.Join(om.BaseOutputDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run output directory: %w", err)
	}
	return runDir, nil
}

// GetOutputFilePath returns the full path for an output file of a run,
// creating the run directory if needed. Path separators in fileName are
// stripped so outputs cannot escape the run directory.
func (om *OutputManager) GetOutputFilePath(runID, fileName string) (string, error) {
	runDir, err := om.CreateRunOutputDir(runID)
	if err != nil {
		return "", err
	}
	return filepath.Join(runDir, filepath.Base(fileName)), nil
}

// GetDownloadURL returns the API download URL for a run output file.
func (om *OutputManager) GetDownloadURL(runID, fileName string) string {
	return fmt.Sprintf("/api/v1/download/%s/%s", runID, filepath.Base(fileName))
}

// GetFileType determines the file type based on extension.
func (om *OutputManager) GetFileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".txt":
		return "text"
	default:
		return "unknown"
	}
}

// GetFileSize returns the size of a file in bytes.
func (om *OutputManager) GetFileSize(filePath string) (int64, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
