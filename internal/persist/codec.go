package persist

import (
	"regexp"
	"strings"
	"time"
)

// timestampPattern matches the prefix of an ISO-8601 timestamp string.
var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)

// knownTimestampFields are field names that always hold timestamps even when
// the name heuristic would miss them.
var knownTimestampFields = map[string]bool{
	"createdAt":       true,
	"updatedAt":       true,
	"lastLogin":       true,
	"hatchTime":       true,
	"deathDate":       true,
	"lastInteraction": true,
	"caughtAt":        true,
	"obtainedAt":      true,
	"ownedAt":         true,
	"unlockedAt":      true,
	"lastRestocked":   true,
	"spawnTime":       true,
	"startTime":       true,
	"expiresAt":       true,
}

// IsTimestampKey reports whether a field name denotes a timestamp. The
// heuristic mirrors how snapshots were historically written: any key
// containing "At" or "Date", plus a fixed list of known names.
func IsTimestampKey(key string) bool {
	return strings.Contains(key, "At") ||
		strings.Contains(key, "Date") ||
		knownTimestampFields[key]
}

// Rehydrate walks a decoded JSON value and converts timestamp strings back
// into time.Time, recursively through nested maps and slices. Values under a
// timestamp-like key are converted without further recursion; everything
// else is walked. Unparseable strings are left untouched.
func Rehydrate(v any) any {
	switch val := v.(type) {
	case string:
		if timestampPattern.MatchString(val) {
			if t, ok := parseTimestamp(val); ok {
				return t
			}
		}
		return val
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = Rehydrate(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for key, elem := range val {
			if IsTimestampKey(key) {
				if s, isStr := elem.(string); isStr {
					if t, ok := parseTimestamp(s); ok {
						out[key] = t
						continue
					}
				}
				out[key] = elem
				continue
			}
			out[key] = Rehydrate(elem)
		}
		return out
	default:
		return v
	}
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
