package fileio

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverFiles expands a list of configured paths into concrete JSONL
// files. A path naming a file is kept as-is; a path naming a directory
// contributes the *.jsonl files directly inside it, sorted by name so the
// concatenation order is stable. Paths that do not exist are kept in the
// result so the loader can report them as missing sources.
func DiscoverFiles(paths []string) []string {
	var files []string

	for _, path := range paths {
		path = expandHome(path)

		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			files = append(files, path)
			continue
		}

		matches, err := filepath.Glob(filepath.Join(path, "*.jsonl"))
		if err != nil || len(matches) == 0 {
			continue
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}

	return files
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
