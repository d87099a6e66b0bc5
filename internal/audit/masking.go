package audit

import "strings"

// MaskPlaceholder replaces sensitive values on export. The in-memory ledger
// keeps raw values; masking happens on the way out only.
const MaskPlaceholder = "***MASKED***"

// sensitiveMarkers are matched as case-insensitive substrings of the field
// name. The substring match is heuristic but downstream consumers depend on
// its current coverage, so keep it as is.
var sensitiveMarkers = []string{"pin", "password", "token", "secret", "key"}

// IsSensitiveField reports whether a field name should be masked on export.
func IsSensitiveField(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range sensitiveMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// MaskEntry returns a copy with sensitive values replaced by the
// placeholder.
func MaskEntry(e Entry) Entry {
	if IsSensitiveField(e.FieldName) {
		e.OldValue = MaskPlaceholder
		e.NewValue = MaskPlaceholder
	}
	return e
}

// MaskEntries masks a batch for external export.
func MaskEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = MaskEntry(e)
	}
	return out
}
