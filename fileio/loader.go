package fileio

import (
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/promptlens/promptlens/logging"
	"github.com/promptlens/promptlens/models"
)

// RecordCache caches parsed records per source file so unchanged files can
// skip re-parsing on the next startup.
type RecordCache interface {
	Get(path string, info os.FileInfo) ([]models.RawRecord, bool)
	Put(path string, info os.FileInfo, records []models.RawRecord) error
}

// Loader reads a set of JSONL sources into one flat record sequence.
type Loader struct {
	cache       RecordCache
	concurrency int
}

// NewLoader creates a loader. cache may be nil to disable caching.
func NewLoader(cache RecordCache) *Loader {
	return &Loader{
		cache:       cache,
		concurrency: runtime.NumCPU(),
	}
}

// Load reads every path and concatenates the parsed records in path order.
// A missing file is a warning, not an error: it contributes zero records and
// the load continues. Files are parsed in parallel; concatenation order is
// still the input order.
func (l *Loader) Load(paths []string) ([]models.RawRecord, error) {
	perFile := make([][]models.RawRecord, len(paths))

	var g errgroup.Group
	g.SetLimit(l.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			info, err := os.Stat(path)
			if err != nil {
				logging.LogWarnf("%s not found, skipping source", path)
				return nil
			}

			if l.cache != nil {
				if records, ok := l.cache.Get(path, info); ok {
					logging.LogDebugf("%s: %d records from cache", path, len(records))
					perFile[i] = records
					return nil
				}
			}

			records, err := ReadRecordFile(path)
			if err != nil {
				return err
			}
			perFile[i] = records

			if l.cache != nil {
				if err := l.cache.Put(path, info, records); err != nil {
					logging.LogWarnf("%s: failed to cache parsed records: %v", path, err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []models.RawRecord
	for _, records := range perFile {
		all = append(all, records...)
	}
	return all, nil
}
