package pipeline

import (
	"fmt"

	"salesnav-etl/internal/model"
)

// Run dispatches one run spec to the matching workflow and wraps the
// outcome in a report for callers that persist or display it.
func Run(spec model.RunSpec) (*model.RunReport, error) {
	mode := spec.Mode
	if mode == "" {
		mode = "convert"
	}

	report := &model.RunReport{Mode: mode}

	switch mode {
	case "combine":
		result, err := Combine(model.CombineOptions{
			InputDir:   spec.InputDir,
			OutputFile: spec.OutputFile,
			Pattern:    spec.Pattern,
			Verbose:    spec.Verbose,
		})
		if err != nil {
			return nil, err
		}
		report.Combine = result

	case "convert":
		result, err := Convert(model.ConvertOptions{
			InputDir:   spec.InputDir,
			OutputFile: spec.OutputFile,
			Pattern:    spec.Pattern,
			Verbose:    spec.Verbose,
		})
		if err != nil {
			return nil, err
		}
		report.Convert = result

	case "workflow":
		result, err := Workflow(model.WorkflowOptions{
			InputDir:     spec.InputDir,
			OutputDir:    spec.OutputDir,
			Pattern:      spec.Pattern,
			KeepCombined: spec.KeepCombined,
			Verbose:      spec.Verbose,
		})
		if err != nil {
			return nil, err
		}
		report.Workflow = result

	default:
		return nil, fmt.Errorf("unknown mode: %q (want combine, convert or workflow)", spec.Mode)
	}

	return report, nil
}
