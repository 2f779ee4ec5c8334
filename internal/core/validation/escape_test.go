package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape_Empty(t *testing.T) {
	assert.Equal(t, "", Escape(""))
}

func TestEscape_AllGlyphs(t *testing.T) {
	out := Escape(`\ # $ * _ @ ~ < >`)
	for _, g := range []string{"#", "$", "*", "_", "@", "~", "<", ">"} {
		require.Contains(t, out, `\`+g)
	}
}

func TestEscape_BackslashFirst(t *testing.T) {
	// Escaping a literal backslash must not be re-escaped by the later glyphs.
	out := Escape(`\`)
	assert.Equal(t, `\\`, out)
}

func TestEscape_Monotonic(t *testing.T) {
	// Property 3 from spec.md §8: no unescaped special glyph survives outside
	// an inserted backslash.
	input := "Caf#é $1_000 @handle ~approx <tag> *bold*"
	out := Escape(input)
	for _, r := range []rune("#$*_@~<>") {
		idx := 0
		for {
			pos := strings.IndexRune(out[idx:], r)
			if pos < 0 {
				break
			}
			pos += idx
			require.Greater(t, pos, 0, "glyph must be preceded by a backslash")
			assert.Equal(t, byte('\\'), out[pos-1])
			idx = pos + 1
		}
	}
}

func TestEscape_NotIdempotent(t *testing.T) {
	once := Escape("_")
	twice := Escape(once)
	assert.NotEqual(t, once, twice)
}

func TestFieldWithFallback(t *testing.T) {
	obj := map[string]any{"title": "", "position": "Engineer"}
	assert.Equal(t, "Engineer", FieldWithFallback(obj, "title", []string{"position", "role"}, "Unknown"))
}

func TestFieldWithFallback_Default(t *testing.T) {
	obj := map[string]any{}
	assert.Equal(t, "Unknown", FieldWithFallback(obj, "title", []string{"position"}, "Unknown"))
}

func TestDotPath(t *testing.T) {
	obj := map[string]any{
		"experience": []any{
			map[string]any{"startDate": "2020-01"},
		},
	}
	assert.Equal(t, "2020-01", DotPath(obj, "experience.0.startDate"))
	assert.Nil(t, DotPath(obj, "experience.1.startDate"))
	assert.Nil(t, DotPath(obj, "experience.0.missing.deep"))
}
