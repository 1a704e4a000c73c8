// Package html parses HTML pages into the runtime's document tree
// using golang.org/x/net/html as the underlying parser implementation.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/chrisuehlinger/pagekit/dom"
)

// Parse parses HTML from a string and returns a document.
func Parse(content string) (*dom.Document, error) {
	return ParseReader(strings.NewReader(content))
}

// ParseReader parses HTML from an io.Reader and returns a document.
func ParseReader(r io.Reader) (*dom.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	doc := dom.NewDocument()
	convertChildren(doc, doc.AsNode(), root)
	return doc, nil
}

// convertChildren converts the children of src into dom nodes under
// parent. Comments and doctypes are dropped; the runtime has no use for
// them.
func convertChildren(doc *dom.Document, parent *dom.Node, src *html.Node) {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			el := doc.CreateElement(c.Data)
			for _, attr := range c.Attr {
				el.SetAttribute(attr.Key, attr.Val)
			}
			seedControlState(el)
			parent.AppendChild(el.AsNode())
			convertChildren(doc, el.AsNode(), c)
		case html.TextNode:
			parent.AppendChild(doc.CreateTextNode(c.Data))
		}
	}
}

// seedControlState maps boolean HTML attributes onto element state.
func seedControlState(el *dom.Element) {
	if el.HasAttribute("checked") {
		el.SetChecked(true)
	}
	if el.HasAttribute("disabled") {
		el.SetDisabled(true)
	}
}
