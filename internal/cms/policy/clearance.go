package policy

import "casetrack/internal/cms/model"

// ClearanceOrder lists clearance levels from least to most restrictive.
var ClearanceOrder = []string{
	model.ClearanceLow,
	model.ClearanceMedium,
	model.ClearanceHigh,
	model.ClearanceCritical,
}

// ClearanceRank returns the position of a clearance level in the order.
// Unknown or empty values report ok=false.
func ClearanceRank(clearance string) (int, bool) {
	for i, c := range ClearanceOrder {
		if c == clearance {
			return i, true
		}
	}
	return 0, false
}

// ClearanceMeets reports whether a subject's clearance meets or exceeds the
// required level. A subject with no valid clearance is always insufficient.
func ClearanceMeets(subject, required string) bool {
	rs, ok := ClearanceRank(subject)
	if !ok {
		return false
	}
	rr, ok := ClearanceRank(required)
	if !ok {
		return false
	}
	return rs >= rr
}
