package site

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Report summarizes one directory build. It is written as JSON next to the
// build output so automation can inspect outcomes without scraping logs.
type Report struct {
	BuildID   string    `json:"build_id"`
	Source    string    `json:"source"`
	Output    string    `json:"output"`
	Format    string    `json:"format"`
	StartedAt time.Time `json:"started_at"`
	Duration  string    `json:"duration"`

	Documents int `json:"documents"`
	Copied    int `json:"copied"`
	Blocks    int `json:"blocks"`
	Failures  int `json:"failures"`

	// Failed lists documents containing at least one diagnostic fragment.
	Failed []string `json:"failed,omitempty"`
	// Errors lists documents the driver could not process at all.
	Errors []string `json:"errors,omitempty"`
}

// OK reports whether the build completed without driver errors. Block-level
// diagnostics do not fail a build; they are visible in the output itself.
func (r *Report) OK() bool {
	return len(r.Errors) == 0
}

// Write serializes the report as indented JSON to path.
func (r *Report) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal build report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write build report: %w", err)
	}
	return nil
}
