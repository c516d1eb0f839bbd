package run

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	RendersDir    = "renders"
	LatestSymlink = "latest"
)

type Dir struct {
	Path      string    // Absolute path to the run directory
	ID        string    // Unique run identifier
	Timestamp time.Time // When the run was created
}

// CreateDirectory creates a new run directory under base/renders and points
// base/renders/latest at it. A failed symlink is logged, not returned.
func CreateDirectory(base string, logger *log.Logger) (*Dir, error) {
	root := filepath.Join(base, RendersDir)
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating renders directory: %w", err)
	}

	id := GenerateID()

	absPath, err := filepath.Abs(filepath.Join(root, id))
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}

	if err := os.Mkdir(absPath, 0755); err != nil {
		return nil, fmt.Errorf("creating run directory: %w", err)
	}

	latestPath := filepath.Join(root, LatestSymlink)
	_ = os.Remove(latestPath)
	if err := os.Symlink(id, latestPath); err != nil {
		logger.Warn("failed to create latest symlink", "err", err)
	}

	return &Dir{
		Path:      absPath,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}, nil
}

// FilePath returns the absolute path for a file in the run directory
func (d *Dir) FilePath(filename string) string {
	return filepath.Join(d.Path, filename)
}

// CopyConfigFile copies the scene file the run was started from into the
// run directory
func (d *Dir) CopyConfigFile(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := os.WriteFile(d.FilePath(filepath.Base(srcPath)), content, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
