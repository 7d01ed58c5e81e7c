package markup

// MacroKind classifies the type of a macro call.
type MacroKind uint16

// Macro kinds, one per macro letter of the markup language.
const (
	// KindItalic is I(text).
	KindItalic MacroKind = iota

	// KindBold is B(text).
	KindBold

	// KindCode is C(text).
	KindCode

	// KindModuleRef is M(fully.qualified.name).
	KindModuleRef

	// KindURL is U(url).
	KindURL

	// KindLink is L(text, url).
	KindLink

	// KindCrossRef is R(text, label).
	KindCrossRef

	// KindOptionRef is O(name) or O(name=value).
	KindOptionRef

	// KindValueRef is V(value).
	KindValueRef

	// KindEnvVar is E(ENV_VAR).
	KindEnvVar

	// KindReturnValueRef is RV(name) or RV(name=value).
	KindReturnValueRef
)

// macroSpec describes the surface syntax of one macro kind.
type macroSpec struct {
	kind   MacroKind
	letter string
	arity  int
}

// macroSpecs lists every macro of the language. The set is closed: there is
// no registration mechanism, and the tokenizer recognizes nothing else.
var macroSpecs = []macroSpec{
	{KindItalic, "I", 1},
	{KindBold, "B", 1},
	{KindCode, "C", 1},
	{KindModuleRef, "M", 1},
	{KindURL, "U", 1},
	{KindLink, "L", 2},
	{KindCrossRef, "R", 2},
	{KindOptionRef, "O", 1},
	{KindValueRef, "V", 1},
	{KindEnvVar, "E", 1},
	{KindReturnValueRef, "RV", 1},
}

var macroByLetter = func() map[string]macroSpec {
	m := make(map[string]macroSpec, len(macroSpecs))
	for _, spec := range macroSpecs {
		m[spec.letter] = spec
	}
	return m
}()

var macroByKind = func() map[MacroKind]macroSpec {
	m := make(map[MacroKind]macroSpec, len(macroSpecs))
	for _, spec := range macroSpecs {
		m[spec.kind] = spec
	}
	return m
}()

// Letter returns the macro letter for this kind (e.g. "RV" for KindReturnValueRef).
func (k MacroKind) Letter() string {
	return macroByKind[k].letter
}

// Arity returns the fixed number of arguments this kind requires.
func (k MacroKind) Arity() int {
	return macroByKind[k].arity
}

// String returns a human-readable name for the kind.
func (k MacroKind) String() string {
	switch k {
	case KindItalic:
		return "italic"
	case KindBold:
		return "bold"
	case KindCode:
		return "code"
	case KindModuleRef:
		return "module-ref"
	case KindURL:
		return "url"
	case KindLink:
		return "link"
	case KindCrossRef:
		return "cross-ref"
	case KindOptionRef:
		return "option-ref"
	case KindValueRef:
		return "value-ref"
	case KindEnvVar:
		return "env-var"
	case KindReturnValueRef:
		return "return-value-ref"
	default:
		return "unknown"
	}
}
