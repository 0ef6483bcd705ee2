package util

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-runewidth"
	"runtime"
	"strings"
	"testing"
)

func JoinWithEqualSpacing(width int, items ...string) string {
	if len(items) == 0 {
		return ""
	}

	totalContentWidth := 0
	for _, item := range items {
		totalContentWidth += lipgloss.Width(item)
	}

	if width <= 0 {
		return ""
	}

	if totalContentWidth <= width {
		// if enough space, proceed with equal spacing
		if len(items) == 1 {
			return items[0]
		}

		totalSpacing := width - totalContentWidth
		baseSpacing := totalSpacing / (len(items) - 1)
		extraSpacing := totalSpacing % (len(items) - 1)

		var result strings.Builder

		for i, item := range items {
			result.WriteString(item)
			if i < len(items)-1 {
				spaces := baseSpacing
				if i < extraSpacing {
					spaces++
				}
				result.WriteString(strings.Repeat(" ", spaces))
			}
		}

		return result.String()
	} else {
		// if not enough space, truncate from the right
		var result strings.Builder
		remainingWidth := width

		for _, item := range items {
			itemWidth := lipgloss.Width(item)
			if remainingWidth <= 0 {
				break
			}
			if itemWidth > remainingWidth {
				result.WriteString(lipgloss.NewStyle().MaxWidth(remainingWidth).Render(item))
				break
			}
			result.WriteString(item)
			remainingWidth -= itemWidth
		}

		return result.String()
	}
}

// PreviewLines returns at most maxLines lines of text, each truncated to width cells. If lines were
// dropped, the last returned line notes how many.
func PreviewLines(text string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	var res []string
	for i, line := range lines {
		if i == maxLines-1 && len(lines) > maxLines {
			res = append(res, runewidth.Truncate(MoreLinesText(len(lines)-i), width, ""))
			break
		}
		// tabs are rendered as a single cell by runewidth, expand them first
		line = strings.ReplaceAll(line, "\t", "    ")
		res = append(res, runewidth.Truncate(line, width, "..."))
	}
	return res
}

func MoreLinesText(n int) string {
	if n == 1 {
		return "... 1 more line"
	}
	return fmt.Sprintf("... %d more lines", n)
}

// CmpStr compares two strings and fails the test if they are not equal
func CmpStr(t *testing.T, expected, actual string) {
	_, file, line, _ := runtime.Caller(1)
	testName := t.Name()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("\nTest %q failed at %s:%d\nDiff (-expected +actual):\n%s", testName, file, line, diff)
	}
}
