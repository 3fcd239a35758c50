// Package storage persists utterance sets as timestamped CSV files inside
// per-day output directories, and houses the folder housekeeping tooling.
package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	dirPrefix   = "utterance_outputs"
	filePrefix  = "utterances"
	fileExt     = "csv"
	dateLayout  = "20060102"
	stampLayout = "20060102_150405"
)

// header is the first row of every record file.
var header = []string{"id", "utterance", "original_intention"}

// Store writes one new record file per call. Files are created exclusively
// and never overwritten; the per-day directory is reused across runs.
type Store struct {
	BaseDir string
	// Now is injectable so tests can force same-second collisions.
	Now    func() time.Time
	logger *zap.Logger
}

func NewStore(baseDir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{BaseDir: baseDir, Now: time.Now, logger: logger}
}

// Save writes the utterances plus the original intention to a new CSV file
// under the dated directory for today and returns its path. Rows carry ids
// 1..n and the intention verbatim.
func (s *Store) Save(utterances []string, intention string) (string, error) {
	now := s.Now()
	dir := filepath.Join(s.BaseDir, fmt.Sprintf("%s_%s", dirPrefix, now.Format(dateLayout)))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	f, path, err := createRecordFile(dir, now.Format(stampLayout))
	if err != nil {
		return "", err
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(header)
	for i, u := range utterances {
		if writeErr != nil {
			break
		}
		writeErr = w.Write([]string{strconv.Itoa(i + 1), u, intention})
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return "", fmt.Errorf("write record file %s: %w", path, writeErr)
	}

	s.logger.Info("utterances saved",
		zap.String("path", path),
		zap.Int("count", len(utterances)))
	return path, nil
}

// createRecordFile opens a new file exclusively. Two runs inside the same
// second must not collide, so on conflict a numeric suffix is appended.
func createRecordFile(dir, stamp string) (*os.File, string, error) {
	for seq := 1; ; seq++ {
		name := fmt.Sprintf("%s_%s.%s", filePrefix, stamp, fileExt)
		if seq > 1 {
			name = fmt.Sprintf("%s_%s_%d.%s", filePrefix, stamp, seq, fileExt)
		}
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("create record file: %w", err)
		}
		return f, path, nil
	}
}
