package main

import (
	"flag"
	"fmt"
	"os"

	"salesnav-etl/internal/model"
	"salesnav-etl/internal/pipeline"
)

func main() {
	mode := flag.String("mode", "convert", "operation mode: combine, convert or workflow")
	inputDir := flag.String("input-dir", ".", "directory containing JSON export files")
	output := flag.String("output", "", "output file name (default: combined.json / companies.csv)")
	outputDir := flag.String("output-dir", "", "output directory for workflow mode (default: input directory)")
	pattern := flag.String("pattern", "*.json", "glob pattern for input files")
	keepCombined := flag.Bool("keep-combined", false, "keep the intermediate combined JSON file (workflow mode)")
	verbose := flag.Bool("verbose", false, "enable verbose output")
	flag.Parse()

	spec := model.RunSpec{
		Mode:         *mode,
		InputDir:     *inputDir,
		OutputFile:   *output,
		OutputDir:    *outputDir,
		Pattern:      *pattern,
		KeepCombined: *keepCombined,
		Verbose:      *verbose,
	}

	if _, err := pipeline.Run(spec); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Run failed: %v\n", err)
		os.Exit(1)
	}
}
