package registry

import (
	"testing"

	"ctest/internal/domain"
)

func TestMatchName(t *testing.T) {
	names := []string{"add_test", "sub_test", "mul_test", "div_test", "strfind_test"}

	tests := []struct {
		name     string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			pattern:  "",
			expected: 5,
		},
		{
			name:     "wildcard pattern matches prefix",
			pattern:  "add_*",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			pattern:  "*d*",
			expected: 3,
		},
		{
			name:     "simple contains match",
			pattern:  "find",
			expected: 1,
		},
		{
			name:     "no matches",
			pattern:  "*NonExistent*",
			expected: 0,
		},
		{
			name:     "single character wildcard",
			pattern:  "?ub_test",
			expected: 1,
		},
		{
			name:     "only wildcards",
			pattern:  "*",
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := 0
			for _, n := range names {
				if MatchName(tt.pattern, n) {
					matches++
				}
			}
			if matches != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, matches)
			}
		})
	}
}

func TestRegistry_Filter(t *testing.T) {
	r := New(8)
	for _, name := range []string{"add_test", "sub_test", "add_more_test"} {
		r.Register(name, func() domain.Outcome { return domain.Success() })
	}

	t.Run("keeps registration order", func(t *testing.T) {
		filtered := r.Filter("add*")
		names := filtered.Names()
		if len(names) != 2 || names[0] != "add_test" || names[1] != "add_more_test" {
			t.Errorf("unexpected filtered names: %v", names)
		}
		if filtered.Cap() != r.Cap() {
			t.Errorf("expected capacity %d, got %d", r.Cap(), filtered.Cap())
		}
	})

	t.Run("original registry is untouched", func(t *testing.T) {
		r.Filter("sub")
		if r.Len() != 3 {
			t.Errorf("expected 3 tests, got %d", r.Len())
		}
	})
}
