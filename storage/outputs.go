package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Manager handles the dated output directories: listing, stats and cleanup.
type Manager struct {
	BaseDir string
	Now     func() time.Time
	logger  *zap.Logger
}

// DirStats is the per-directory record file count.
type DirStats struct {
	Name  string
	Files int
}

func NewManager(baseDir string, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{BaseDir: baseDir, Now: time.Now, logger: logger}
}

// ListDirs returns the dated output directories under BaseDir, sorted by
// name (which sorts by date, given the fixed layout).
func (m *Manager) ListDirs() ([]string, error) {
	entries, err := os.ReadDir(m.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read base directory: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), dirPrefix+"_") {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// Stats counts record files per dated directory.
func (m *Manager) Stats() ([]DirStats, error) {
	dirs, err := m.ListDirs()
	if err != nil {
		return nil, err
	}

	stats := make([]DirStats, 0, len(dirs))
	for _, name := range dirs {
		entries, err := os.ReadDir(filepath.Join(m.BaseDir, name))
		if err != nil {
			return nil, fmt.Errorf("read output directory %s: %w", name, err)
		}
		count := 0
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), "."+fileExt) {
				count++
			}
		}
		stats = append(stats, DirStats{Name: name, Files: count})
	}
	return stats, nil
}

// Clean deletes directories whose embedded date is older than the given
// number of days and returns the deleted names. Names that do not parse as
// dates are warned about and never deleted.
func (m *Manager) Clean(days int) ([]string, error) {
	dirs, err := m.ListDirs()
	if err != nil {
		return nil, err
	}

	cutoff := m.Now().AddDate(0, 0, -days)
	var cleaned []string
	for _, name := range dirs {
		dirDate, err := time.Parse(dateLayout, strings.TrimPrefix(name, dirPrefix+"_"))
		if err != nil {
			m.logger.Warn("skipping directory with invalid date format", zap.String("dir", name))
			continue
		}
		if !dirDate.Before(cutoff) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(m.BaseDir, name)); err != nil {
			return cleaned, fmt.Errorf("remove output directory %s: %w", name, err)
		}
		m.logger.Info("removed old output directory", zap.String("dir", name))
		cleaned = append(cleaned, name)
	}
	return cleaned, nil
}
