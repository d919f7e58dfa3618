package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/docfence/internal/logfields"
)

// Manager creates scratch directories under a base directory. Renders run
// concurrently, so every Create call yields its own directory; the Manager
// itself holds no per-render state.
type Manager struct {
	baseDir string
}

// NewManager creates a workspace manager. An empty baseDir falls back to the
// system temp directory.
func NewManager(baseDir string) *Manager {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &Manager{baseDir: baseDir}
}

// Workspace is one scratch directory, valid until Cleanup.
type Workspace struct {
	dir string
}

// Create makes a fresh scratch directory. The timestamp in the name keeps
// leaked directories attributable when a crash skips Cleanup.
func (m *Manager) Create() (*Workspace, error) {
	timestamp := time.Now().Format("20060102-150405")
	dir, err := os.MkdirTemp(m.baseDir, fmt.Sprintf("docfence-%s-*", timestamp))
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace directory: %w", err)
	}

	slog.Debug("Created workspace", logfields.Path(dir))
	return &Workspace{dir: dir}, nil
}

// Path returns the scratch directory path.
func (w *Workspace) Path() string {
	return w.dir
}

// File returns the path of a named file inside the scratch directory.
func (w *Workspace) File(name string) string {
	return filepath.Join(w.dir, name)
}

// Cleanup removes the scratch directory. Safe to call more than once.
func (w *Workspace) Cleanup() error {
	if w.dir == "" {
		return nil
	}

	if err := os.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("failed to cleanup workspace: %w", err)
	}

	slog.Debug("Cleaned up workspace", logfields.Path(w.dir))
	w.dir = ""
	return nil
}
