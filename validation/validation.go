package validation

import "strings"

// Record is a flat view of incoming form fields.
type Record map[string]string

// MissingFields returns the names of required fields that are absent or
// empty after trimming, in the order the caller listed them. The input
// is not mutated; callers get every violation at once so a client can
// fix a whole request in one round trip.
func MissingFields(rec Record, required []string) []string {
	var missing []string
	for _, name := range required {
		v, ok := rec[name]
		if !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
