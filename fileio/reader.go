package fileio

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/promptlens/promptlens/logging"
	"github.com/promptlens/promptlens/models"
)

// Reader reads newline-delimited JSON prompt records from a single file.
type Reader struct {
	file     *os.File
	scanner  *bufio.Scanner
	filepath string
}

// NewReader opens a JSONL file for reading.
func NewReader(filepath string) (*Reader, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filepath, err)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 64KB initial, 1MB max

	return &Reader{
		file:     file,
		scanner:  scanner,
		filepath: filepath,
	}, nil
}

// ReadAll parses every line of the file. Blank lines are ignored; a line
// that is not valid JSON is skipped with a warning rather than aborting the
// file, so one corrupt line cannot poison an otherwise good source.
func (r *Reader) ReadAll() ([]models.RawRecord, error) {
	var records []models.RawRecord

	lineNum := 0
	for r.scanner.Scan() {
		lineNum++
		line := r.scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var record models.RawRecord
		if err := sonic.Unmarshal(line, &record); err != nil {
			logging.LogWarnf("%s:%d: skipping malformed JSON line: %v", r.filepath, lineNum, err)
			continue
		}
		records = append(records, record)
	}

	if err := r.scanner.Err(); err != nil {
		return records, fmt.Errorf("scanner error at line %d: %w", lineNum, err)
	}
	return records, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ReadRecordFile is a convenience function to read an entire record file.
func ReadRecordFile(filepath string) ([]models.RawRecord, error) {
	reader, err := NewReader(filepath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return reader.ReadAll()
}
