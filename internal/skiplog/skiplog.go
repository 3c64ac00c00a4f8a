// Package skiplog writes audit CSVs describing values the cleaning
// pipeline replaced with missing markers. The log is diagnostic only; it
// never fails the pipeline, and write errors are swallowed after the file
// is created.
package skiplog

import (
	"encoding/csv"
	"os"
	"path/filepath"
)

// Log appends one line per invalid value to a CSV file with the header
// (table, field, uniq_id, raw_value) and keeps per-field counts.
type Log struct {
	counts map[string]int
	w      *csv.Writer
	f      *os.File
}

// New creates the audit file at path, creating parent directories as
// needed.
func New(path string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	_ = w.Write([]string{"table", "field", "uniq_id", "raw_value"})
	return &Log{counts: make(map[string]int), w: w, f: f}, nil
}

// Invalid records one replaced value. It satisfies the pipeline's Auditor
// interface.
func (l *Log) Invalid(table, field, uniqID, raw string) {
	l.counts[table+"."+field]++
	_ = l.w.Write([]string{table, field, uniqID, raw})
}

// Counts returns the number of invalid values seen per "table.field" key.
func (l *Log) Counts() map[string]int {
	out := make(map[string]int, len(l.counts))
	for k, v := range l.counts {
		out[k] = v
	}
	return out
}

// Close flushes and closes the audit file.
func (l *Log) Close() error {
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		_ = l.f.Close()
		return err
	}
	return l.f.Close()
}
