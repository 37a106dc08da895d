package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"salesnav-etl/internal/model"
)

// ResolveSourceFiles returns the ordered, deduplicated list of input files
// in dir whose base name matches pattern. The designated output file is
// excluded when it resolves to a matched path, so a previous run's output
// in the input directory is never re-ingested while an input that merely
// shares the output's base name is kept. The list is
// sorted lexicographically by path, which keeps record order — and with it
// first-seen-wins deduplication — identical across repeated runs. An empty
// result is not an error at this layer.
func ResolveSourceFiles(dir, pattern, excludePath string) ([]model.SourceFile, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, &PathError{Path: dir, Msg: err.Error()}
	}

	info, err := os.Stat(absDir)
	if err != nil {
		return nil, &PathError{Path: absDir, Msg: "directory does not exist"}
	}
	if !info.IsDir() {
		return nil, &PathError{Path: absDir, Msg: "path is not a directory"}
	}
	if _, err := os.ReadDir(absDir); err != nil {
		return nil, &PathError{Path: absDir, Msg: "directory is not readable"}
	}

	// Non-recursive shell glob over base names.
	matches, err := filepath.Glob(filepath.Join(absDir, pattern))
	if err != nil {
		return nil, &PathError{Path: absDir, Msg: fmt.Sprintf("bad pattern %q: %v", pattern, err)}
	}
	sort.Strings(matches)

	excludeAbs := ""
	if excludePath != "" {
		excludeAbs, _ = filepath.Abs(excludePath)
	}

	var files []model.SourceFile
	seen := make(map[string]bool, len(matches))
	for _, match := range matches {
		if seen[match] {
			continue
		}
		seen[match] = true

		fi, err := os.Stat(match)
		if err != nil || fi.IsDir() {
			continue
		}
		if excludeAbs != "" && match == excludeAbs {
			continue
		}

		files = append(files, model.SourceFile{Path: match, Size: fi.Size()})
	}

	return files, nil
}
