package util

import (
	"github.com/google/go-cmp/cmp"
	"testing"
)

func TestJoinWithEqualSpacing(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		items    []string
		expected string
	}{
		{
			name:     "no items",
			width:    10,
			expected: "",
		},
		{
			name:     "single item",
			width:    10,
			items:    []string{"one"},
			expected: "one",
		},
		{
			name:     "two items spread",
			width:    10,
			items:    []string{"ab", "cd"},
			expected: "ab      cd",
		},
		{
			name:     "three items uneven spacing",
			width:    10,
			items:    []string{"a", "b", "c"},
			expected: "a    b   c",
		},
		{
			name:     "truncated from right",
			width:    5,
			items:    []string{"abc", "def"},
			expected: "abcde",
		},
		{
			name:     "zero width",
			width:    0,
			items:    []string{"abc"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			CmpStr(t, tt.expected, JoinWithEqualSpacing(tt.width, tt.items...))
		})
	}
}

func TestPreviewLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		maxLines int
		expected []string
	}{
		{
			name:     "empty",
			text:     "",
			width:    10,
			maxLines: 3,
			expected: []string{""},
		},
		{
			name:     "fits",
			text:     "one\ntwo",
			width:    10,
			maxLines: 3,
			expected: []string{"one", "two"},
		},
		{
			name:     "trailing newline dropped",
			text:     "one\ntwo\n",
			width:    10,
			maxLines: 3,
			expected: []string{"one", "two"},
		},
		{
			name:     "truncated width",
			text:     "a long line of code",
			width:    10,
			maxLines: 3,
			expected: []string{"a long ..."},
		},
		{
			name:     "tabs expanded",
			text:     "\tx",
			width:    10,
			maxLines: 1,
			expected: []string{"    x"},
		},
		{
			name:     "too many lines",
			text:     "1\n2\n3\n4\n5",
			width:    20,
			maxLines: 3,
			expected: []string{"1", "2", "... 3 more lines"},
		},
		{
			name:     "exactly max lines",
			text:     "1\n2\n3",
			width:    20,
			maxLines: 3,
			expected: []string{"1", "2", "3"},
		},
		{
			name:     "no room",
			text:     "1",
			width:    0,
			maxLines: 3,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, PreviewLines(tt.text, tt.width, tt.maxLines)); diff != "" {
				t.Errorf("PreviewLines() mismatch (-expected +actual):\n%s", diff)
			}
		})
	}
}

func TestMoreLinesText(t *testing.T) {
	CmpStr(t, "... 1 more line", MoreLinesText(1))
	CmpStr(t, "... 12 more lines", MoreLinesText(12))
}
