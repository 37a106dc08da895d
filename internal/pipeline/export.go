package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"

	"salesnav-etl/internal/model"
)

// WriteCSV writes the fixed header followed by every row in accumulation
// order and returns the number of bytes written. Field values containing
// the delimiter, quotes or newlines are quoted by encoding/csv so every
// row round-trips losslessly.
func WriteCSV(rows []model.FlatRow, outputPath string) (int64, error) {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, &WriteError{Path: outputPath, Err: err}
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return 0, &WriteError{Path: outputPath, Err: err}
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(CSVFields); err != nil {
		return 0, &WriteError{Path: outputPath, Err: err}
	}

	line := make([]string, len(CSVFields))
	for _, row := range rows {
		for i, field := range CSVFields {
			line[i] = row[field]
		}
		if err := writer.Write(line); err != nil {
			return 0, &WriteError{Path: outputPath, Err: err}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, &WriteError{Path: outputPath, Err: err}
	}

	info, err := file.Stat()
	if err != nil {
		return 0, &WriteError{Path: outputPath, Err: err}
	}
	return info.Size(), nil
}

// WriteCombinedJSON writes every collected record as one pretty-printed
// JSON array. HTML escaping is disabled so non-ASCII and URL characters
// are preserved literally.
func WriteCombinedJSON(records []model.SourceRecord, outputPath string) (int64, error) {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, &WriteError{Path: outputPath, Err: err}
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return 0, &WriteError{Path: outputPath, Err: err}
	}
	defer file.Close()

	values := make([]interface{}, len(records))
	for i, rec := range records {
		values[i] = rec.Value
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(values); err != nil {
		return 0, &WriteError{Path: outputPath, Err: err}
	}

	info, err := file.Stat()
	if err != nil {
		return 0, &WriteError{Path: outputPath, Err: err}
	}
	return info.Size(), nil
}
