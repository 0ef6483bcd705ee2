package source

import (
	"github.com/google/go-cmp/cmp"
	"github.com/robinovitch61/copycode/internal/copyaction"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const page = `<!DOCTYPE html>
<html>
<body>
  <h1>Install</h1>
  <div class="highlight">
    <button class="copy-code-button" id="install" data-lang="bash" data-code="go install ./...<br /> copycode --help">copy</button>
  </div>
  <p>Then</p>
  <button class="copy-code-button" title="config" data-code="delay: 2s">copy</button>
  <button class="copy-code-button" id="install" data-code="dup id">copy</button>
  <button class="copy-code-button" data-code="">copy</button>
  <button class="not-a-code-button">nope</button>
</body>
</html>`

func TestParseHTML(t *testing.T) {
	elements, err := ParseHTML(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	expected := []copyaction.Element{
		{ID: "install", Title: "bash", Payload: "go install ./...<br /> copycode --help"},
		{ID: "block-1", Title: "config", Payload: "delay: 2s"},
		{ID: "block-2", Payload: "dup id"},
		{ID: "block-3", Payload: ""},
	}
	if diff := cmp.Diff(expected, elements); diff != "" {
		t.Errorf("ParseHTML() mismatch (-expected +actual):\n%s", diff)
	}
	if got := elements[0].Text(); got != "go install ./...\ncopycode --help" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestParseHTMLGeneratedIDsStayUnique(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		expected []string
	}{
		{
			"explicit id takes the next generated id",
			`<button id="block-1" data-code="a"></button><button data-code="b"></button>`,
			[]string{"block-1", "block-1-2"},
		},
		{
			"explicit id repeats an earlier generated id",
			`<button data-code="a"></button><button id="block-0" data-code="b"></button>`,
			[]string{"block-0", "block-1"},
		},
		{
			"suffix skips taken ids too",
			`<button id="block-2" data-code="a"></button><button id="block-2-2" data-code="b"></button><button data-code="c"></button>`,
			[]string{"block-2", "block-2-2", "block-2-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements, err := ParseHTML(strings.NewReader(tt.page))
			if err != nil {
				t.Fatal(err)
			}
			var ids []string
			for _, e := range elements {
				ids = append(ids, e.ID)
			}
			if diff := cmp.Diff(tt.expected, ids); diff != "" {
				t.Errorf("ids mismatch (-expected +actual):\n%s", diff)
			}
		})
	}
}

func TestParseHTMLEntities(t *testing.T) {
	elements, err := ParseHTML(strings.NewReader(`<button data-code="if a &lt; b &amp;&amp; c {<br /> }">copy</button>`))
	if err != nil {
		t.Fatal(err)
	}
	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}
	if got := elements[0].Text(); got != "if a < b && c {\n}" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestParseHTMLNoBlocks(t *testing.T) {
	elements, err := ParseHTML(strings.NewReader("<p>nothing here</p>"))
	if err != nil {
		t.Fatal(err)
	}
	if len(elements) != 0 {
		t.Errorf("expected no elements, got %v", elements)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		t.Fatal(err)
	}
	elements, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(elements) != 4 {
		t.Errorf("expected 4 elements, got %d", len(elements))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFind(t *testing.T) {
	elements, _ := ParseHTML(strings.NewReader(page))
	e, ok := Find(elements, "block-1")
	if !ok || e.Title != "config" {
		t.Errorf("unexpected find result %v %v", e, ok)
	}
	if _, ok := Find(elements, "missing"); ok {
		t.Error("expected missing element not to be found")
	}
}
