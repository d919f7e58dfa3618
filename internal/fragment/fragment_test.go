package fragment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/docfence/internal/block"
	"git.home.luguber.info/inful/docfence/internal/foundation"
)

func TestSizing(t *testing.T) {
	assert.Equal(t, Sizing{Width: "100px", Height: "50px"}, Intrinsic("100", "50"))
	assert.Equal(t, Sizing{Width: "80%", Height: "auto"}, Explicit("80%"))
}

func TestCompose(t *testing.T) {
	markup := `<svg viewBox="0 0 100 50"></svg>`

	tests := []struct {
		name       string
		sizing     Sizing
		opts       block.Options
		accessible string
		wantStyle  string
	}{
		{
			name:      "centered with intrinsic size",
			sizing:    Intrinsic("100", "50"),
			opts:      block.Options{Center: true},
			wantStyle: "width:100px;height:50px;max-width:100%;margin:0 auto;",
		},
		{
			name:      "explicit width floats right",
			sizing:    Explicit("40%"),
			opts:      block.Options{Float: block.SideRight, Width: foundation.Some("40%")},
			wantStyle: "width:40%;height:auto;max-width:100%;float:right;",
		},
		{
			name:      "neither centered nor floated",
			sizing:    Intrinsic("120.5", "40"),
			opts:      block.Options{},
			wantStyle: "width:120.5px;height:40px;max-width:100%;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(markup, tt.sizing, tt.opts, tt.accessible)
			assert.True(t, strings.HasPrefix(got, `<div style="`+tt.wantStyle+`">`),
				"fragment %q should start with style %q", got, tt.wantStyle)
			assert.Contains(t, got, markup)
			assert.True(t, strings.HasSuffix(got, "</div>"))
		})
	}
}

func TestCompose_AccessibleText(t *testing.T) {
	got := Compose("<svg/>", Intrinsic("100", "50"), block.Options{Center: true}, "ok")
	assert.Contains(t, got, ">ok</span>")
	assert.Contains(t, got, "position:absolute", "hidden text must stay out of visual flow")

	t.Run("absent text adds no hidden container", func(t *testing.T) {
		got := Compose("<svg/>", Intrinsic("100", "50"), block.Options{Center: true}, "")
		assert.NotContains(t, got, "<span")
	})

	t.Run("text is escaped", func(t *testing.T) {
		got := Compose("<svg/>", Intrinsic("100", "50"), block.Options{}, `a < b & "c"`)
		assert.Contains(t, got, "a &lt; b &amp; &#34;c&#34;")
	})
}

func TestDiagnostic(t *testing.T) {
	got := Diagnostic("freeze failed: exit status 1: parse error")
	assert.True(t, strings.HasPrefix(got, `<code class="docfence-error">`))
	assert.True(t, strings.HasSuffix(got, "</code>"))
	assert.Contains(t, got, "parse error")

	t.Run("markup in diagnostics is escaped", func(t *testing.T) {
		got := Diagnostic(`unexpected token "<svg>"`)
		assert.NotContains(t, got, "<svg>")
		assert.Contains(t, got, "&lt;svg&gt;")
	})
}
