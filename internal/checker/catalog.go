package checker

import "math"

// builtinInfo describes one built-in's static signature: positional
// parameter types (used only up to the declared length; extra args within
// [MinArgs, MaxArgs] are unchecked) and an argument-count range.
type builtinInfo struct {
	Name      string
	ParamTypes []StaticType
	MinArgs   int
	MaxArgs   int
}

const unbounded = math.MaxInt32

// builtinCatalog lists every built-in name the pre-check pass knows a
// signature for. It predeclares these names in the outermost scope and
// drives the arity/type checks applied to calls of known built-ins.
var builtinCatalog = []builtinInfo{
	{"print", nil, 0, 1},
	{"println", nil, 0, 1},
	{"read", nil, 0, 0},
	{"abs", []StaticType{TNumber}, 1, 1},
	{"ceil", []StaticType{TNumber}, 1, 1},
	{"floor", []StaticType{TNumber}, 1, 1},
	{"round", []StaticType{TNumber}, 1, 1},
	{"sqrt", []StaticType{TNumber}, 1, 1},
	{"rnd", []StaticType{TNumber}, 1, 1},
	{"parse_num", []StaticType{TString}, 1, 1},
	{"to_string", nil, 1, 1},
	{"len", nil, 1, 1},
	{"type", nil, 1, 1},
	{"lower", []StaticType{TString}, 1, 1},
	{"upper", []StaticType{TString}, 1, 1},
	{"split", []StaticType{TString, TString}, 2, 2},
	{"join", []StaticType{TList, TString}, 2, 2},
	{"replace", []StaticType{TString, TString, TString}, 3, 3},
	{"range", []StaticType{TNumber}, 1, 3},
	{"push", []StaticType{TList}, 2, 2},
	{"pop", []StaticType{TList}, 1, 1},
	{"insert", []StaticType{TList, TNumber}, 3, 3},
	{"remove", []StaticType{TList, TNumber}, 2, 2},
	{"sort", []StaticType{TList}, 1, 1},
	{"stacktrace", nil, 0, 0},
	// min/max are variadic aggregates (at least two numeric args); the
	// original's static catalog omits them entirely, which would leave
	// them unresolvable as names under the rule that every built-in is
	// predeclared, so they are added here with a minimum of two args and
	// no positional type check.
	{"min", nil, 2, unbounded},
	{"max", nil, 2, unbounded},
}

var builtinLookup = func() map[string]builtinInfo {
	m := make(map[string]builtinInfo, len(builtinCatalog))
	for _, b := range builtinCatalog {
		m[b.Name] = b
	}
	return m
}()

func lookupBuiltin(name string) (builtinInfo, bool) {
	info, ok := builtinLookup[name]
	return info, ok
}
