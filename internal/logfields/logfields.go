package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyPath       = "path"
	KeyDocument   = "document"
	KeyFence      = "fence"
	KeyKind       = "kind"
	KeyBinary     = "binary"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyAddr       = "addr"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Document(d string) slog.Attr     { return slog.String(KeyDocument, d) }
func Fence(name string) slog.Attr     { return slog.String(KeyFence, name) }
func Kind(k string) slog.Attr         { return slog.String(KeyKind, k) }
func Binary(b string) slog.Attr       { return slog.String(KeyBinary, b) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Addr(a string) slog.Attr         { return slog.String(KeyAddr, a) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
