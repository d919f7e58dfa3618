package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestManager_CreateAndCleanup(t *testing.T) {
	tempBase := t.TempDir()
	mgr := NewManager(tempBase)

	ws, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	wsPath := ws.Path()
	if wsPath == "" {
		t.Fatal("Path() returned empty string")
	}

	if !strings.Contains(filepath.Base(wsPath), "docfence-") {
		t.Errorf("Expected timestamped directory, got: %s", wsPath)
	}

	if _, err := os.Stat(wsPath); os.IsNotExist(err) {
		t.Errorf("Workspace directory does not exist: %s", wsPath)
	}

	// Cleanup should remove directory
	if err := ws.Cleanup(); err != nil {
		t.Fatalf("Cleanup() failed: %v", err)
	}

	if _, err := os.Stat(wsPath); !os.IsNotExist(err) {
		t.Errorf("Workspace directory still exists after cleanup: %s", wsPath)
	}

	// Second cleanup is a no-op
	if err := ws.Cleanup(); err != nil {
		t.Fatalf("Repeated Cleanup() failed: %v", err)
	}
}

func TestManager_ConcurrentCreatesAreDistinct(t *testing.T) {
	tempBase := t.TempDir()
	mgr := NewManager(tempBase)

	first, err := mgr.Create()
	if err != nil {
		t.Fatalf("first Create() failed: %v", err)
	}
	defer first.Cleanup()

	second, err := mgr.Create()
	if err != nil {
		t.Fatalf("second Create() failed: %v", err)
	}
	defer second.Cleanup()

	if first.Path() == second.Path() {
		t.Errorf("Expected distinct directories, both are %s", first.Path())
	}
}

func TestWorkspace_File(t *testing.T) {
	tempBase := t.TempDir()
	mgr := NewManager(tempBase)

	ws, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	defer ws.Cleanup()

	outfile := ws.File("output.svg")
	if filepath.Dir(outfile) != ws.Path() {
		t.Errorf("File() should resolve inside the workspace, got: %s", outfile)
	}

	if err := os.WriteFile(outfile, []byte("<svg/>"), 0o600); err != nil {
		t.Fatalf("Failed to write into workspace: %v", err)
	}
}

func TestManager_EmptyBaseDirUsesTempDir(t *testing.T) {
	mgr := NewManager("")

	ws, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	defer ws.Cleanup()

	if !strings.HasPrefix(ws.Path(), os.TempDir()) {
		t.Errorf("Expected workspace under %s, got: %s", os.TempDir(), ws.Path())
	}
}
