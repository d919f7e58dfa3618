package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docfence/internal/foundation/errors"
)

func TestValidate_CodeImage(t *testing.T) {
	tests := []struct {
		name     string
		attrs    []Attr
		expected Options
	}{
		{
			name:  "language only keeps defaults",
			attrs: []Attr{{Key: "language", Value: "go"}},
			expected: Options{
				Center:   true,
				Language: "go",
			},
		},
		{
			name: "explicit center wins over float",
			attrs: []Attr{
				{Key: "language", Value: "go"},
				{Key: "float", Value: "right"},
				{Key: "center", Value: "true"},
			},
			expected: Options{
				Center:   true,
				Float:    SideNone,
				Language: "go",
			},
		},
		{
			name: "float alone flips center default",
			attrs: []Attr{
				{Key: "language", Value: "go"},
				{Key: "float", Value: "left"},
			},
			expected: Options{
				Center:   false,
				Float:    SideLeft,
				Language: "go",
			},
		},
		{
			name: "terminal rewrites to ansi and flags materialization",
			attrs: []Attr{
				{Key: "language", Value: "terminal"},
			},
			expected: Options{
				Center:   true,
				Language: "ansi",
				Terminal: true,
			},
		},
		{
			name: "non true center value means not centered",
			attrs: []Attr{
				{Key: "language", Value: "go"},
				{Key: "center", Value: "yes"},
			},
			expected: Options{
				Center:   false,
				Language: "go",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, leftover, err := Validate(KindCodeImage, tt.attrs)
			require.NoError(t, err)
			assert.Empty(t, leftover)
			assert.Equal(t, tt.expected.Center, opts.Center)
			assert.Equal(t, tt.expected.Float, opts.Float)
			assert.Equal(t, tt.expected.Language, opts.Language)
			assert.Equal(t, tt.expected.Terminal, opts.Terminal)
		})
	}
}

func TestValidate_CodeImageWidth(t *testing.T) {
	opts, _, err := Validate(KindCodeImage, []Attr{
		{Key: "language", Value: "go"},
		{Key: "width", Value: "80%"},
	})
	require.NoError(t, err)
	require.True(t, opts.Width.IsSome())
	assert.Equal(t, "80%", opts.Width.Unwrap())

	opts, _, err = Validate(KindCodeImage, []Attr{{Key: "language", Value: "go"}})
	require.NoError(t, err)
	assert.True(t, opts.Width.IsNone(), "missing width should stay unset for intrinsic sizing")
}

func TestValidate_MissingLanguageFails(t *testing.T) {
	_, _, err := Validate(KindCodeImage, []Attr{{Key: "width", Value: "50%"}})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestValidate_InvalidFloatFails(t *testing.T) {
	_, _, err := Validate(KindCodeImage, []Attr{
		{Key: "language", Value: "go"},
		{Key: "float", Value: "middle"},
	})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestValidate_Diagram(t *testing.T) {
	t.Run("width defaults to 100 percent", func(t *testing.T) {
		opts, leftover, err := Validate(KindDiagram, nil)
		require.NoError(t, err)
		assert.Empty(t, leftover)
		require.True(t, opts.Width.IsSome())
		assert.Equal(t, "100%", opts.Width.Unwrap())
		assert.True(t, opts.Center)
	})

	t.Run("explicit width is kept", func(t *testing.T) {
		opts, _, err := Validate(KindDiagram, []Attr{{Key: "width", Value: "60%"}})
		require.NoError(t, err)
		assert.Equal(t, "60%", opts.Width.Unwrap())
	})

	t.Run("language is not a diagram option", func(t *testing.T) {
		opts, leftover, err := Validate(KindDiagram, []Attr{{Key: "language", Value: "pikchr"}})
		require.NoError(t, err)
		assert.Empty(t, opts.Language)
		require.Len(t, leftover, 1)
		assert.Equal(t, "language", leftover[0].Key)
	})

	t.Run("float and center resolve like code image blocks", func(t *testing.T) {
		opts, _, err := Validate(KindDiagram, []Attr{{Key: "float", Value: "right"}})
		require.NoError(t, err)
		assert.False(t, opts.Center)
		assert.Equal(t, SideRight, opts.Float)
	})
}

func TestValidate_LeftoverPreservesOrder(t *testing.T) {
	opts, leftover, err := Validate(KindCodeImage, []Attr{
		{Key: "zeta", Value: "1"},
		{Key: "language", Value: "go"},
		{Key: "alpha", Value: "2"},
		{Key: "zeta", Value: "3"},
	})
	require.NoError(t, err)
	assert.Equal(t, "go", opts.Language)
	require.Len(t, leftover, 3)
	assert.Equal(t, []Attr{
		{Key: "zeta", Value: "1"},
		{Key: "alpha", Value: "2"},
		{Key: "zeta", Value: "3"},
	}, leftover)
}
