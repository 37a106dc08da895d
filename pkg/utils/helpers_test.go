package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0.00 B"},
		{512, "512.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{5 * 1024 * 1024 * 1024, "5.00 GB"},
		{3 * 1024 * 1024 * 1024 * 1024, "3.00 TB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFileSize(tt.size), "size=%d", tt.size)
	}
}

func TestOutputManagerPaths(t *testing.T) {
	om := NewOutputManager(t.TempDir())

	path, err := om.GetOutputFilePath("run-1", "companies.csv")
	assert.NoError(t, err)
	assert.Contains(t, path, "run-1")

	// Path traversal in the file name is stripped.
	path, err = om.GetOutputFilePath("run-1", "../../escape.csv")
	assert.NoError(t, err)
	assert.Contains(t, path, "escape.csv")
	assert.NotContains(t, path, "..")

	assert.Equal(t, "/api/v1/download/run-1/companies.csv", om.GetDownloadURL("run-1", "companies.csv"))
	assert.Equal(t, "csv", om.GetFileType("out.CSV"))
	assert.Equal(t, "json", om.GetFileType("out.json"))
	assert.Equal(t, "unknown", om.GetFileType("out.bin"))
}
