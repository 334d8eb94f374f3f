package model

// RoleWindow is the accessibility role of a top-level window.
const RoleWindow = "AXWindow"

// SubroleMap maps macOS AXSubrole values of windows to compact kind codes.
var SubroleMap = map[string]string{
	"AXStandardWindow":       "standard",
	"AXDialog":               "dialog",
	"AXSystemDialog":         "dialog",
	"AXFloatingWindow":       "floating",
	"AXSystemFloatingWindow": "floating",
	"AXSheet":                "sheet",
	"AXUnknown":              "other",
}

// MapSubrole converts a raw window subrole to a compact kind code.
// An empty subrole means the query failed and maps to "unknown".
func MapSubrole(axSubrole string) string {
	if axSubrole == "" {
		return "unknown"
	}
	if short, ok := SubroleMap[axSubrole]; ok {
		return short
	}
	return "other"
}

// IsCycleKind reports whether windows of the given kind take part in cycling.
// Unknown kinds are kept so a failed subrole query never hides a window.
func IsCycleKind(kind string) bool {
	return kind == "standard" || kind == "unknown"
}
