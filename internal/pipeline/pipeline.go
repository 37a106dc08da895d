package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"salesnav-etl/internal/model"
	"salesnav-etl/pkg/utils"
)

const (
	defaultPattern      = "*.json"
	defaultCombinedFile = "combined.json"
	defaultCSVFile      = "companies.csv"

	workflowCombinedFile = "combined_salesnav.json"
	workflowCSVFile      = "linkedin_companies.csv"
)

// Combine merges every matching JSON file in the input directory into a
// single pretty-printed JSON array.
func Combine(opts model.CombineOptions) (*model.CombineResult, error) {
	start := time.Now()
	fmt.Println("🚀 Starting JSON file combination...")

	pattern := opts.Pattern
	if pattern == "" {
		pattern = defaultPattern
	}
	outputPath := resolveOutputPath(opts.InputDir, opts.OutputFile, defaultCombinedFile)

	files, err := ResolveSourceFiles(opts.InputDir, pattern, outputPath)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, &AggregationError{Msg: fmt.Sprintf("no files matching pattern %q found in %s", pattern, opts.InputDir)}
	}
	fmt.Printf("📁 Found %d JSON files to combine\n", len(files))

	records, stats, err := AggregateRecords(files)
	if err != nil {
		logSummary("JSON Combination", failureFields(stats, err))
		return nil, err
	}

	fmt.Printf("💾 Writing combined data to %s...\n", filepath.Base(outputPath))
	outputBytes, err := WriteCombinedJSON(records, outputPath)
	if err != nil {
		logSummary("JSON Combination", failureFields(stats, err))
		return nil, err
	}

	result := &model.CombineResult{
		FilesFound:     len(files),
		FilesProcessed: stats.FilesProcessed,
		FilesSkipped:   stats.FilesSkipped,
		TotalRecords:   stats.TotalRecords,
		InputBytes:     stats.InputBytes,
		OutputBytes:    outputBytes,
		InputSize:      utils.FormatFileSize(stats.InputBytes),
		OutputSize:     utils.FormatFileSize(outputBytes),
		OutputFile:     outputPath,
		Duration:       fmt.Sprintf("%.2fs", time.Since(start).Seconds()),
		Errors:         stats.Errors,
	}

	logSummary("JSON Combination", [][2]string{
		{"files_processed", fmt.Sprintf("%d", result.FilesProcessed)},
		{"files_skipped", fmt.Sprintf("%d", result.FilesSkipped)},
		{"total_records", fmt.Sprintf("%d", result.TotalRecords)},
		{"input_size", result.InputSize},
		{"output_size", result.OutputSize},
		{"output_file", result.OutputFile},
		{"duration", result.Duration},
	})

	return result, nil
}

// Convert flattens every matching JSON file in the input directory into a
// fixed-field CSV in one fused pass over the aggregated record sequence.
func Convert(opts model.ConvertOptions) (*model.ConvertResult, error) {
	start := time.Now()
	fmt.Println("🚀 Starting JSON to CSV conversion...")

	pattern := opts.Pattern
	if pattern == "" {
		pattern = defaultPattern
	}
	outputPath := resolveOutputPath(opts.InputDir, opts.OutputFile, defaultCSVFile)

	files, err := ResolveSourceFiles(opts.InputDir, pattern, outputPath)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, &AggregationError{Msg: fmt.Sprintf("no files matching pattern %q found in %s", pattern, opts.InputDir)}
	}
	fmt.Printf("📁 Found %d files to process\n", len(files))

	records, stats, err := AggregateRecords(files)
	if err != nil {
		logSummary("JSON to CSV Conversion", failureFields(stats, err))
		return nil, err
	}

	extractor := NewExtractor(opts.Verbose)
	rows := make([]model.FlatRow, 0, len(records))
	for _, rec := range records {
		row, reason := extractor.ExtractRow(rec.Value, rec.SourceFile)
		if reason == RejectNone {
			rows = append(rows, row)
		}
	}

	fmt.Printf("💾 Writing %d rows to %s...\n", len(rows), filepath.Base(outputPath))
	outputBytes, err := WriteCSV(rows, outputPath)
	if err != nil {
		logSummary("JSON to CSV Conversion", failureFields(stats, err))
		return nil, err
	}

	result := &model.ConvertResult{
		FilesFound:       len(files),
		FilesProcessed:   stats.FilesProcessed,
		FilesSkipped:     stats.FilesSkipped,
		TotalRecords:     stats.TotalRecords,
		ValidRecords:     extractor.Stats.ValidRecords,
		InvalidRecords:   extractor.Stats.InvalidRecords,
		DuplicateRecords: extractor.Stats.DuplicateRecords,
		ExtractionErrors: extractor.Stats.ExtractionErrors,
		RowsWritten:      len(rows),
		InputBytes:       stats.InputBytes,
		OutputBytes:      outputBytes,
		InputSize:        utils.FormatFileSize(stats.InputBytes),
		OutputSize:       utils.FormatFileSize(outputBytes),
		OutputFile:       outputPath,
		Duration:         fmt.Sprintf("%.2fs", time.Since(start).Seconds()),
		Errors:           stats.Errors,
	}

	logSummary("JSON to CSV Conversion", [][2]string{
		{"files_processed", fmt.Sprintf("%d", result.FilesProcessed)},
		{"files_skipped", fmt.Sprintf("%d", result.FilesSkipped)},
		{"valid_records", fmt.Sprintf("%d", result.ValidRecords)},
		{"invalid_records", fmt.Sprintf("%d", result.InvalidRecords)},
		{"duplicate_records", fmt.Sprintf("%d", result.DuplicateRecords)},
		{"extraction_errors", fmt.Sprintf("%d", result.ExtractionErrors)},
		{"rows_written", fmt.Sprintf("%d", result.RowsWritten)},
		{"output_file", result.OutputFile},
		{"duration", result.Duration},
	})

	return result, nil
}

// Workflow runs the complete two-step extraction: combine all exports into
// an intermediate JSON file, convert that file to CSV, then remove the
// intermediate unless KeepCombined is set.
func Workflow(opts model.WorkflowOptions) (*model.WorkflowResult, error) {
	start := time.Now()

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = opts.InputDir
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Sales Navigator Data Extraction Workflow")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("📂 Input directory: %s\n", opts.InputDir)
	fmt.Printf("📁 Output directory: %s\n", outputDir)

	fmt.Println("Step 1: Combining JSON files...")
	combineResult, err := Combine(model.CombineOptions{
		InputDir:   opts.InputDir,
		OutputFile: workflowCombinedFile,
		Pattern:    opts.Pattern,
		Verbose:    opts.Verbose,
	})
	if err != nil {
		return nil, err
	}

	fmt.Println("Step 2: Converting to CSV...")
	csvPath := filepath.Join(outputDir, workflowCSVFile)
	convertResult, err := Convert(model.ConvertOptions{
		InputDir:   opts.InputDir,
		OutputFile: csvPath,
		Pattern:    workflowCombinedFile,
		Verbose:    opts.Verbose,
	})
	if err != nil {
		return nil, err
	}

	if !opts.KeepCombined {
		combinedPath := combineResult.OutputFile
		if err := os.Remove(combinedPath); err == nil {
			fmt.Printf("🗑️ Removed temporary file: %s\n", filepath.Base(combinedPath))
		}
	}

	result := &model.WorkflowResult{
		Combine:   combineResult,
		Convert:   convertResult,
		OutputCSV: csvPath,
		Duration:  fmt.Sprintf("%.2fs", time.Since(start).Seconds()),
	}

	logSummary("Workflow", [][2]string{
		{"files_processed", fmt.Sprintf("%d", combineResult.FilesProcessed)},
		{"companies_extracted", fmt.Sprintf("%d", convertResult.RowsWritten)},
		{"output_csv", csvPath},
		{"duration", result.Duration},
	})

	return result, nil
}

// resolveOutputPath anchors a relative output file inside the input
// directory, matching where the resolver expects to exclude it.
func resolveOutputPath(inputDir, outputFile, fallback string) string {
	if outputFile == "" {
		outputFile = fallback
	}
	if filepath.IsAbs(outputFile) {
		return outputFile
	}
	if dir := filepath.Dir(outputFile); dir != "." {
		return outputFile
	}
	return filepath.Join(inputDir, outputFile)
}

func failureFields(stats model.AggregateStats, err error) [][2]string {
	fields := [][2]string{
		{"files_processed", fmt.Sprintf("%d", stats.FilesProcessed)},
		{"files_skipped", fmt.Sprintf("%d", stats.FilesSkipped)},
		{"error", err.Error()},
	}
	return fields
}

// logSummary prints the human-readable operation summary that closes every
// run, successful or not.
func logSummary(operation string, fields [][2]string) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("📊 %s Summary\n", operation)
	fmt.Println(strings.Repeat("-", 60))
	for _, f := range fields {
		fmt.Printf("   • %s: %s\n", f[0], f[1])
	}
	fmt.Println(strings.Repeat("=", 60))
}
