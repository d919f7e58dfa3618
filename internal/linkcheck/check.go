package linkcheck

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/docfence/internal/logfields"
)

// Problem is one finding in built output.
type Problem struct {
	File   string `json:"file"`
	Kind   string `json:"kind"` // "diagnostic" or "broken-ref"
	Detail string `json:"detail"`
}

// Result summarizes one check run.
type Result struct {
	Files    int       `json:"files"`
	Problems []Problem `json:"problems,omitempty"`
}

// OK reports whether the output is clean.
func (r *Result) OK() bool {
	return len(r.Problems) == 0
}

// Run scans every HTML file under dir for leftover diagnostic fragments and
// local references whose targets do not exist on disk.
func Run(dir string) (*Result, error) {
	result := &Result{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".html") {
			return nil
		}

		result.Files++
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}

		refs, diags, err := ExtractFile(path)
		if err != nil {
			return err
		}
		for _, diag := range diags {
			result.Problems = append(result.Problems, Problem{
				File:   rel,
				Kind:   "diagnostic",
				Detail: strings.TrimSpace(diag.Text),
			})
		}
		for _, ref := range refs {
			if !targetExists(dir, path, ref.Target) {
				result.Problems = append(result.Problems, Problem{
					File:   rel,
					Kind:   "broken-ref",
					Detail: fmt.Sprintf("<%s %s=%q>", ref.Tag, ref.Attribute, ref.Target),
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk output tree: %w", err)
	}

	sort.Slice(result.Problems, func(i, j int) bool {
		if result.Problems[i].File != result.Problems[j].File {
			return result.Problems[i].File < result.Problems[j].File
		}
		return result.Problems[i].Detail < result.Problems[j].Detail
	})

	slog.Debug("Check finished",
		logfields.Count(result.Files),
		slog.Int("problems", len(result.Problems)),
	)
	return result, nil
}

// targetExists resolves a local reference against the built tree:
// root-relative targets resolve from dir, relative ones from the referencing
// file. Query strings and fragments are ignored.
func targetExists(dir, fromFile, target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	clean := u.Path
	if clean == "" {
		return true
	}

	var resolved string
	if strings.HasPrefix(clean, "/") {
		resolved = filepath.Join(dir, filepath.FromSlash(clean))
	} else {
		resolved = filepath.Join(filepath.Dir(fromFile), filepath.FromSlash(clean))
	}

	info, err := os.Stat(resolved)
	if err == nil {
		if info.IsDir() {
			// Directory links count when an index page exists.
			_, err = os.Stat(filepath.Join(resolved, "index.html"))
			return err == nil
		}
		return true
	}
	return false
}
