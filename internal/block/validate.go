package block

import (
	"git.home.luguber.info/inful/docfence/internal/foundation"
	"git.home.luguber.info/inful/docfence/internal/foundation/normalization"
)

// TerminalLanguage is the pseudo-language that triggers escape materialization.
const TerminalLanguage = "terminal"

// ansiLanguage is the renderer's own identifier for raw ANSI text. Blocks
// declared as "terminal" are rewritten to this during validation.
const ansiLanguage = "ansi"

// diagramDefaultWidth is the width a diagram block falls back to when no
// width attribute is supplied.
const diagramDefaultWidth = "100%"

var floatSides = normalization.NewEnumNormalizer("float", map[string]Side{
	"left":  SideLeft,
	"right": SideRight,
}, SideNone)

// Validate resolves raw fence attributes into Options for the given kind.
// Recognized keys are consumed; everything else is returned in source order
// as leftover. The float/center exclusion is resolved here exactly once:
// a float side flips the center default to false, and an effective
// center=true clears any float. Validation is pure and never spawns a
// renderer process.
func Validate(kind Kind, attrs []Attr) (Options, []Attr, error) {
	var (
		width, language, floatRaw, centerRaw       string
		widthSet, languageSet, floatSet, centerSet bool
		leftover                                   []Attr
	)

	// Diagram blocks carry no language option, so the key passes through.
	languageRecognized := kind == KindCodeImage

	for _, attr := range attrs {
		switch attr.Key {
		case "width":
			width, widthSet = attr.Value, true
		case "float":
			floatRaw, floatSet = attr.Value, true
		case "center":
			centerRaw, centerSet = attr.Value, true
		case "language":
			if languageRecognized {
				language, languageSet = attr.Value, true
				continue
			}
			leftover = append(leftover, attr)
		default:
			leftover = append(leftover, attr)
		}
	}

	opts := Options{}
	vr := foundation.Valid()

	defaultCenter := true
	if floatSet {
		side, err := floatSides.NormalizeWithValidation(floatRaw)
		if err != nil {
			vr = vr.Combine(foundation.Invalid(
				foundation.NewValidationError("float", "one_of", err.Error()),
			))
		}
		opts.Float = side
		defaultCenter = false
	}

	if widthSet {
		opts.Width = foundation.Some(width)
	}

	opts.Center = defaultCenter
	if centerSet {
		opts.Center = centerRaw == "true"
	}
	if opts.Center {
		opts.Float = SideNone
	}

	switch kind {
	case KindCodeImage:
		if !languageSet {
			vr = vr.Combine(foundation.Invalid(
				foundation.NewValidationError("language", "required", "code image blocks require a language attribute"),
			))
		}
		opts.Language = language
		if opts.Language == TerminalLanguage {
			opts.Language = ansiLanguage
			opts.Terminal = true
		}
	case KindDiagram:
		if !widthSet {
			opts.Width = foundation.Some(diagramDefaultWidth)
		}
	}

	if err := vr.ToError(); err != nil {
		return Options{}, nil, err
	}
	return opts, leftover, nil
}
