package mdtransform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docfence/internal/block"
)

func anyFence(string) bool { return true }

func named(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestLocateFindsFenceWithAttributes(t *testing.T) {
	source := []byte("# Title\n\n```freeze language=\"go\" width=420px\nfmt.Println()\n```\n\ntail\n")

	fences := Locate(source, named("freeze"))
	require.Len(t, fences, 1)

	f := fences[0]
	assert.Equal(t, "freeze", f.Name)
	assert.Equal(t, []block.Attr{
		{Key: "language", Value: "go"},
		{Key: "width", Value: "420px"},
	}, f.Attrs)
	assert.Equal(t, "fmt.Println()\n", f.Body)
	assert.Equal(t, "```freeze language=\"go\" width=420px\nfmt.Println()\n```\n", string(source[f.Start:f.Stop]))
}

func TestLocateSkipsUnregisteredFences(t *testing.T) {
	source := []byte("```go\ncode\n```\n\n```pikchr\nbox\n```\n")

	fences := Locate(source, named("pikchr"))
	require.Len(t, fences, 1)
	assert.Equal(t, "pikchr", fences[0].Name)
	assert.Equal(t, "box\n", fences[0].Body)
}

func TestLocateEmptyBody(t *testing.T) {
	source := []byte("```pikchr\n```\n")

	fences := Locate(source, anyFence)
	require.Len(t, fences, 1)
	assert.Equal(t, "", fences[0].Body)
	assert.Equal(t, string(source), string(source[fences[0].Start:fences[0].Stop]))
}

func TestLocateMultipleFencesInOrder(t *testing.T) {
	source := []byte("```freeze language=go\na\n```\n\nmiddle\n\n```pikchr\nb\n```\n")

	fences := Locate(source, anyFence)
	require.Len(t, fences, 2)
	assert.Equal(t, "freeze", fences[0].Name)
	assert.Equal(t, "pikchr", fences[1].Name)
	assert.Less(t, fences[0].Stop, fences[1].Start)
}

func TestLocateUnclosedFenceAtEOF(t *testing.T) {
	source := []byte("```pikchr\nbox\n")

	fences := Locate(source, anyFence)
	require.Len(t, fences, 1)
	assert.Equal(t, len(source), fences[0].Stop)
}

func TestLocatePreservesBodyExactly(t *testing.T) {
	source := []byte("```freeze language=terminal\n{green}ok{reset}\n\n  indented\n```\n")

	fences := Locate(source, anyFence)
	require.Len(t, fences, 1)
	assert.Equal(t, "{green}ok{reset}\n\n  indented\n", fences[0].Body)
}
