package scheme

import "strings"

// FilterExtra returns a new map with extra fields filtered out based on the
// provided patterns. Supports wildcard patterns:
//   - "prefix*" matches names starting with "prefix"
//   - "*suffix" matches names ending with "suffix"
//   - "*contains*" matches names containing "contains"
//   - "exact" matches names exactly
//
// The instance itself is not modified; reporting code uses this to ignore
// known-benign extras.
func FilterExtra(extra map[string]any, patterns []string) map[string]any {
	result := make(map[string]any)

	for name, value := range extra {
		omit := false
		for _, pattern := range patterns {
			if matchesPattern(name, pattern) {
				omit = true
				break
			}
		}
		if !omit {
			result[name] = value
		}
	}

	return result
}

// matchesPattern checks if a field name matches a pattern with wildcard support.
func matchesPattern(name, pattern string) bool {
	switch {
	case strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") && len(pattern) > 1:
		return strings.Contains(name, pattern[1:len(pattern)-1])
	case strings.HasPrefix(pattern, "*"):
		return strings.HasSuffix(name, pattern[1:])
	case strings.HasSuffix(pattern, "*"):
		return strings.HasPrefix(name, pattern[:len(pattern)-1])
	default:
		return name == pattern
	}
}
