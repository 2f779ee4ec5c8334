package helpers

import (
	"fmt"
	"strings"

	"github.com/rendis/resumegen/internal/core/entity"
)

// spacingPreset holds the concrete numeric values of spec.md §4.4.2 for one
// spacing mode. Compact and ultra-compact margins are given as ranges in
// the spec; mid-range values are used so the preamble emits a single fixed
// number per mode.
type spacingPreset struct {
	marginCm float64
	fontPt   float64
	leading  float64
}

var spacingPresets = map[entity.SpacingMode]spacingPreset{
	entity.SpacingNormal:       {marginCm: 0.8, fontPt: 10, leading: 0.60},
	entity.SpacingCompact:      {marginCm: 0.55, fontPt: 10, leading: 0.50},
	entity.SpacingUltraCompact: {marginCm: 0.45, fontPt: 9.5, leading: 0.45},
}

// ResolveSpacingMode applies the lookup order of spec.md §4.4.2:
// config.spacing_mode, data.spacing_mode, data.spacingMode, default compact.
func ResolveSpacingMode(cfg Config, data entity.Data) entity.SpacingMode {
	if cfg.SpacingMode != "" {
		return cfg.SpacingMode
	}
	if v, ok := data["spacing_mode"].(string); ok && v != "" {
		return entity.SpacingMode(v)
	}
	if v, ok := data["spacingMode"].(string); ok && v != "" {
		return entity.SpacingMode(v)
	}
	return entity.SpacingCompact
}

// bodyFontFallbacks maps the body font to the cross-platform fallback chain
// Typst tries in order, so a container image without the preferred font
// still renders something legible instead of falling back to its own
// default. Liberation/DejaVu/Noto ship in the Alpine fontconfig packages
// typical of a PDF-rendering container.
var bodyFontFallbacks = map[string][]string{
	"arial":     {"Arial", "Liberation Sans", "DejaVu Sans"},
	"helvetica": {"Helvetica", "Liberation Sans", "DejaVu Sans"},
	"georgia":   {"Georgia", "Noto Serif", "Liberation Serif"},
	"inter":     {"Inter", "Noto Sans", "Liberation Sans"},
}

// bodyFont is the default body typeface for every template.
const bodyFont = "arial"

// fontWithFallbacks returns a Typst #set text(font: ...) value: a single
// quoted name for an unknown family, or a parenthesized fallback chain for
// one of the known cross-platform families.
func fontWithFallbacks(family string) string {
	chain := bodyFontFallbacks[strings.ToLower(strings.TrimSpace(family))]
	if len(chain) == 0 {
		return fmt.Sprintf("%q", family)
	}
	quoted := make([]string, len(chain))
	for i, f := range chain {
		quoted[i] = fmt.Sprintf("%q", f)
	}
	return "(" + strings.Join(quoted, ", ") + ")"
}

// BuildPreamble emits the page/text preamble for the resolved spacing mode.
// Unknown modes fall back to compact rather than raising, since the
// document must still render.
func BuildPreamble(mode entity.SpacingMode) string {
	preset, ok := spacingPresets[mode]
	if !ok {
		preset = spacingPresets[entity.SpacingCompact]
	}
	return fmt.Sprintf(
		"#set page(margin: %.2fcm)\n#set text(font: %s, size: %.1fpt)\n#set par(leading: %.2fem, justify: true)\n\n",
		preset.marginCm, fontWithFallbacks(bodyFont), preset.fontPt, preset.leading,
	)
}

// linesPerPage is keyed by spacing mode for the page-estimate math of
// spec.md §4.4.4.
var linesPerPage = map[entity.SpacingMode]int{
	entity.SpacingNormal:       45,
	entity.SpacingCompact:      52,
	entity.SpacingUltraCompact: 58,
}
