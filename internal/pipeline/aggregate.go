package pipeline

import (
	"fmt"
	"path/filepath"

	"salesnav-etl/internal/model"
	"salesnav-etl/pkg/utils"
)

// AggregateRecords loads every file in resolved order and normalizes the
// payloads into one flat record sequence: a JSON array contributes all its
// elements in order, a single object contributes one element, and any other
// shape is passed through as-is for the flattener to reject. A file that
// cannot be read or parsed is skipped and its error recorded — one bad file
// never aborts the run. Only a run where no file succeeds is fatal.
func AggregateRecords(files []model.SourceFile) ([]model.SourceRecord, model.AggregateStats, error) {
	var stats model.AggregateStats
	var records []model.SourceRecord

	progress := utils.NewProgressBar(len(files), "Processing files")

	for _, f := range files {
		payload, err := LoadJSON(f.Path)
		if err != nil {
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", filepath.Base(f.Path), err))
			stats.FilesSkipped++
			fmt.Printf("\n⚠️ Skipping %s: %v\n", filepath.Base(f.Path), err)
			progress.Update()
			continue
		}

		switch v := payload.(type) {
		case []interface{}:
			for _, item := range v {
				records = append(records, model.SourceRecord{Value: item, SourceFile: f.Path})
			}
		default:
			records = append(records, model.SourceRecord{Value: v, SourceFile: f.Path})
		}

		stats.FilesProcessed++
		stats.InputBytes += f.Size
		progress.Update()
	}

	progress.Finish()

	if stats.FilesProcessed == 0 {
		return nil, stats, &AggregationError{Msg: "no files could be processed"}
	}

	stats.TotalRecords = len(records)
	return records, stats, nil
}
