package checker

// StaticType is the checker's six-element type lattice plus Unknown, used
// for best-effort static validation. It is distinct from value.Kind: a
// runtime Value always has a known tag, but the checker frequently cannot
// determine one (e.g. the result of indexing into a List) and must defer.
type StaticType string

const (
	TNumber   StaticType = "Number"
	TString   StaticType = "String"
	TBool     StaticType = "Bool"
	TNil      StaticType = "Nil"
	TList     StaticType = "List"
	TFunction StaticType = "Function"
	TUnknown  StaticType = "Unknown"
)

// compatible reports whether a value of type got may stand in for a value
// of type want, for the purposes of a positional built-in parameter check.
// Unknown is always compatible in either position: the checker defers
// rather than rejects when it cannot prove anything.
func compatible(want, got StaticType) bool {
	return want == TUnknown || got == TUnknown || want == got
}
