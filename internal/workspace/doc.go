// Package workspace hands out private scratch directories for renderers
// that write to named output files instead of stdout.
//
// Directories are timestamped (e.g., docfence-20260821-122336-1834729) so a
// leaked directory after a crash is attributable to the run that made it.
// Every render call gets its own directory, released on every exit path.
package workspace
