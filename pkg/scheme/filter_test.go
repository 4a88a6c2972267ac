package scheme

import "testing"

func TestFilterExtra(t *testing.T) {
	extra := map[string]any{
		"KERNEL":        "5.10",
		"KERNEL_FLAVOR": "lts",
		"DEBUG_KERNEL":  "no",
		"DATETIME":      "2026-01-05",
		"MISC":          "x",
	}

	tests := []struct {
		name     string
		patterns []string
		wantKeys []string
	}{
		{
			name:     "exact match",
			patterns: []string{"MISC"},
			wantKeys: []string{"KERNEL", "KERNEL_FLAVOR", "DEBUG_KERNEL", "DATETIME"},
		},
		{
			name:     "prefix wildcard",
			patterns: []string{"KERNEL*"},
			wantKeys: []string{"DEBUG_KERNEL", "DATETIME", "MISC"},
		},
		{
			name:     "suffix wildcard",
			patterns: []string{"*KERNEL"},
			wantKeys: []string{"KERNEL_FLAVOR", "DATETIME", "MISC"},
		},
		{
			name:     "contains wildcard",
			patterns: []string{"*KERNEL*"},
			wantKeys: []string{"DATETIME", "MISC"},
		},
		{
			name:     "multiple patterns",
			patterns: []string{"*KERNEL*", "DATETIME"},
			wantKeys: []string{"MISC"},
		},
		{
			name:     "no patterns",
			patterns: nil,
			wantKeys: []string{"KERNEL", "KERNEL_FLAVOR", "DEBUG_KERNEL", "DATETIME", "MISC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterExtra(extra, tt.patterns)

			if len(result) != len(tt.wantKeys) {
				t.Errorf("FilterExtra() returned %d keys, want %d", len(result), len(tt.wantKeys))
			}
			for _, wantKey := range tt.wantKeys {
				if _, exists := result[wantKey]; !exists {
					t.Errorf("FilterExtra() missing expected key %q", wantKey)
				}
			}
		})
	}
}
