// Package source finds copyable blocks in a generated page.
//
// Any element with a data-code attribute is a block. Its id attribute names it, falling back to its
// position on the page. data-lang or title, whichever is set first, becomes its title.
package source

import (
	"fmt"
	"github.com/robinovitch61/copycode/internal/copyaction"
	"golang.org/x/net/html"
	"io"
	"os"
)

const (
	CodeAttr  = "data-code"
	LangAttr  = "data-lang"
	TitleAttr = "title"
	IDAttr    = "id"
)

func ParseHTML(r io.Reader) ([]copyaction.Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var elements []copyaction.Element
	seen := make(map[string]bool)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if code, ok := attr(n, CodeAttr); ok {
				id, _ := attr(n, IDAttr)
				if id == "" || seen[id] {
					id = generatedID(len(elements), seen)
				}
				seen[id] = true
				title, _ := attr(n, LangAttr)
				if title == "" {
					title, _ = attr(n, TitleAttr)
				}
				elements = append(elements, copyaction.Element{ID: id, Title: title, Payload: code})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return elements, nil
}

// Load parses the page at path, or stdin if path is "-"
func Load(path string) ([]copyaction.Element, error) {
	if path == "-" {
		elements, err := ParseHTML(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("parse stdin: %w", err)
		}
		return elements, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	elements, err := ParseHTML(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return elements, nil
}

// Find returns the element with the given id
func Find(elements []copyaction.Element, id string) (copyaction.Element, bool) {
	for _, e := range elements {
		if e.ID == id {
			return e, true
		}
	}
	return copyaction.Element{}, false
}

// generatedID names the block at index i, skipping any id already taken on the page
func generatedID(i int, seen map[string]bool) string {
	id := fmt.Sprintf("block-%d", i)
	for n := 2; seen[id]; n++ {
		id = fmt.Sprintf("block-%d-%d", i, n)
	}
	return id
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
