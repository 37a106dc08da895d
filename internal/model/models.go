package model

// RunSpec is the configuration for one processing run, supplied either by
// CLI flags or as the POST /api/v1/runs payload.
type RunSpec struct {
	Mode         string `json:"mode"`                    // combine, convert or workflow
	InputDir     string `json:"input_dir"`               // directory containing JSON export files
	OutputFile   string `json:"output_file,omitempty"`   // combine/convert output path
	OutputDir    string `json:"output_dir,omitempty"`    // workflow output directory
	Pattern      string `json:"pattern,omitempty"`       // glob pattern, default *.json
	KeepCombined bool   `json:"keep_combined,omitempty"` // workflow: keep intermediate combined file
	Verbose      bool   `json:"verbose,omitempty"`
}

// SourceFile describes one resolved input file.
type SourceFile struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// SourceRecord pairs one decoded record with the file it came from.
type SourceRecord struct {
	Value      interface{}
	SourceFile string
}

// CombineOptions configures a JSON combination run.
type CombineOptions struct {
	InputDir   string
	OutputFile string
	Pattern    string
	Verbose    bool
}

// ConvertOptions configures a JSON to CSV conversion run.
type ConvertOptions struct {
	InputDir   string
	OutputFile string
	Pattern    string
	Verbose    bool
}

// WorkflowOptions configures the two-step combine-then-convert workflow.
type WorkflowOptions struct {
	InputDir     string
	OutputDir    string
	Pattern      string
	KeepCombined bool
	Verbose      bool
}

// AggregateStats holds the counters produced by the aggregation stage.
type AggregateStats struct {
	FilesProcessed int      `json:"files_processed"`
	FilesSkipped   int      `json:"files_skipped"`
	TotalRecords   int      `json:"total_records"`
	InputBytes     int64    `json:"input_bytes"`
	Errors         []string `json:"errors,omitempty"`
}

// ExtractStats holds the counters produced by the flattening stage.
type ExtractStats struct {
	ValidRecords     int `json:"valid_records"`
	InvalidRecords   int `json:"invalid_records"`
	DuplicateRecords int `json:"duplicate_records"`
	ExtractionErrors int `json:"extraction_errors"`
}

// CombineResult is the outcome of one combine run.
type CombineResult struct {
	FilesFound     int      `json:"files_found"`
	FilesProcessed int      `json:"files_processed"`
	FilesSkipped   int      `json:"files_skipped"`
	TotalRecords   int      `json:"total_records"`
	InputBytes     int64    `json:"input_bytes"`
	OutputBytes    int64    `json:"output_bytes"`
	InputSize      string   `json:"input_size"`
	OutputSize     string   `json:"output_size"`
	OutputFile     string   `json:"output_file"`
	Duration       string   `json:"duration"`
	Errors         []string `json:"errors,omitempty"`
}

// ConvertResult is the outcome of one conversion run.
type ConvertResult struct {
	FilesFound       int      `json:"files_found"`
	FilesProcessed   int      `json:"files_processed"`
	FilesSkipped     int      `json:"files_skipped"`
	TotalRecords     int      `json:"total_records"`
	ValidRecords     int      `json:"valid_records"`
	InvalidRecords   int      `json:"invalid_records"`
	DuplicateRecords int      `json:"duplicate_records"`
	ExtractionErrors int      `json:"extraction_errors"`
	RowsWritten      int      `json:"rows_written"`
	InputBytes       int64    `json:"input_bytes"`
	OutputBytes      int64    `json:"output_bytes"`
	InputSize        string   `json:"input_size"`
	OutputSize       string   `json:"output_size"`
	OutputFile       string   `json:"output_file"`
	Duration         string   `json:"duration"`
	Errors           []string `json:"errors,omitempty"`
}

// WorkflowResult is the outcome of one combine-then-convert workflow run.
type WorkflowResult struct {
	Combine   *CombineResult `json:"combine"`
	Convert   *ConvertResult `json:"convert"`
	OutputCSV string         `json:"output_csv"`
	Duration  string         `json:"duration"`
}

// RunReport wraps whichever result a run produced.
type RunReport struct {
	Mode     string          `json:"mode"`
	Combine  *CombineResult  `json:"combine,omitempty"`
	Convert  *ConvertResult  `json:"convert,omitempty"`
	Workflow *WorkflowResult `json:"workflow,omitempty"`
}

// SoftErrors collects the per-file errors recorded during the run. These
// never aborted the run; they are surfaced for inspection afterwards.
func (r *RunReport) SoftErrors() []string {
	var errs []string
	if r.Combine != nil {
		errs = append(errs, r.Combine.Errors...)
	}
	if r.Convert != nil {
		errs = append(errs, r.Convert.Errors...)
	}
	if r.Workflow != nil {
		if r.Workflow.Combine != nil {
			errs = append(errs, r.Workflow.Combine.Errors...)
		}
		if r.Workflow.Convert != nil {
			errs = append(errs, r.Workflow.Convert.Errors...)
		}
	}
	return errs
}
