package color

import "testing"

func TestLangColorStable(t *testing.T) {
	if LangColor("go") != LangColor("Go") {
		t.Error("expected case-insensitive color")
	}
	if LangColor("bash") != LangColor("bash") {
		t.Error("expected stable color")
	}
	seen := make(map[string]bool)
	for _, c := range langColors {
		seen[string(c)] = true
	}
	for _, lang := range []string{"", "go", "bash", "yaml", "python", "json"} {
		if !seen[string(LangColor(lang))] {
			t.Errorf("unexpected color for %q", lang)
		}
	}
}
