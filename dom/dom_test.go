package dom

import "testing"

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	if doc == nil {
		t.Fatal("NewDocument returned nil")
	}
	if doc.AsNode().NodeType() != DocumentNode {
		t.Errorf("Expected DocumentNode, got %v", doc.AsNode().NodeType())
	}
	if doc.AsNode().NodeName() != "#document" {
		t.Errorf("Expected '#document', got %s", doc.AsNode().NodeName())
	}
}

func TestDocument_CreateElement(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	if el.TagName() != "DIV" {
		t.Errorf("Expected tagName 'DIV', got '%s'", el.TagName())
	}
	if el.LocalName() != "div" {
		t.Errorf("Expected localName 'div', got '%s'", el.LocalName())
	}
	if el.AsNode().NodeType() != ElementNode {
		t.Errorf("Expected ElementNode, got %v", el.AsNode().NodeType())
	}
}

func TestAppendAndRemoveChild(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("ul")
	a := doc.CreateElement("li")
	b := doc.CreateElement("li")

	if err := parent.AsNode().AppendChild(a.AsNode()); err != nil {
		t.Fatalf("AppendChild failed: %v", err)
	}
	if err := parent.AsNode().AppendChild(b.AsNode()); err != nil {
		t.Fatalf("AppendChild failed: %v", err)
	}
	children := parent.AsNode().ChildNodes()
	if len(children) != 2 || children[0] != a.AsNode() || children[1] != b.AsNode() {
		t.Fatalf("Unexpected children: %v", children)
	}
	if a.AsNode().NextSibling() != b.AsNode() || b.AsNode().PrevSibling() != a.AsNode() {
		t.Error("Sibling links are wrong")
	}

	if err := parent.AsNode().RemoveChild(a.AsNode()); err != nil {
		t.Fatalf("RemoveChild failed: %v", err)
	}
	if a.AsNode().ParentNode() != nil {
		t.Error("Removed child should be detached")
	}
	if err := parent.AsNode().RemoveChild(a.AsNode()); err == nil {
		t.Error("Removing a non-child should fail")
	}
}

func TestAppendChildRejectsAncestor(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("div")
	outer.AsNode().AppendChild(inner.AsNode())
	if err := inner.AsNode().AppendChild(outer.AsNode()); err == nil {
		t.Error("Appending an ancestor should fail")
	}
}

func TestAttributes(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("input")
	el.SetAttribute("type", "checkbox")
	el.SetAttribute("id", "row-1")

	if got := el.GetAttribute("type"); got != "checkbox" {
		t.Errorf("Expected 'checkbox', got %q", got)
	}
	if !el.HasAttribute("id") {
		t.Error("Expected id attribute")
	}
	el.SetAttribute("id", "row-2")
	if got := el.GetAttribute("id"); got != "row-2" {
		t.Errorf("Expected updated value 'row-2', got %q", got)
	}
	el.RemoveAttribute("id")
	if el.HasAttribute("id") {
		t.Error("Attribute should be removed")
	}
	if got := el.GetAttribute("missing"); got != "" {
		t.Errorf("Missing attribute should be empty, got %q", got)
	}
}

func TestIntAttribute(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("button")
	el.SetAttribute("data-min-selected", "2")
	if got := el.IntAttribute("data-min-selected", 1); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
	if got := el.IntAttribute("missing", 1); got != 1 {
		t.Errorf("Expected fallback 1, got %d", got)
	}
	el.SetAttribute("data-min-selected", "junk")
	if got := el.IntAttribute("data-min-selected", 1); got != 1 {
		t.Errorf("Expected fallback for malformed value, got %d", got)
	}
}

func TestCheckedAndDisabled(t *testing.T) {
	doc := NewDocument()
	box := doc.CreateElement("input")
	if box.Checked() {
		t.Error("New checkbox should be unchecked")
	}
	box.SetChecked(true)
	if !box.Checked() {
		t.Error("SetChecked(true) should stick")
	}
	btn := doc.CreateElement("button")
	btn.SetDisabled(true)
	if !btn.Disabled() {
		t.Error("SetDisabled(true) should stick")
	}
}

func TestClasses(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("tr")
	el.SetAttribute("class", "row-select odd highlighted")
	if !el.HasClass("odd") {
		t.Error("Expected class 'odd'")
	}
	if el.HasClass("even") {
		t.Error("Did not expect class 'even'")
	}
}

func TestTextContent(t *testing.T) {
	doc := NewDocument()
	p := doc.CreateElement("p")
	p.AsNode().AppendChild(doc.CreateTextNode("Hello, "))
	span := doc.CreateElement("span")
	span.AsNode().AppendChild(doc.CreateTextNode("World!"))
	p.AsNode().AppendChild(span.AsNode())
	if got := p.AsNode().TextContent(); got != "Hello, World!" {
		t.Errorf("Expected 'Hello, World!', got %q", got)
	}
}

func TestDocumentLookup(t *testing.T) {
	doc := NewDocument()
	html := doc.CreateElement("html")
	body := doc.CreateElement("body")
	doc.AsNode().AppendChild(html.AsNode())
	html.AsNode().AppendChild(body.AsNode())

	for i, id := range []string{"a", "b", "c"} {
		box := doc.CreateElement("input")
		box.SetAttribute("id", id)
		box.SetAttribute("class", "row-select")
		if i == 2 {
			box.SetAttribute("class", "row-select special")
		}
		body.AsNode().AppendChild(box.AsNode())
	}

	if el := doc.GetElementByID("b"); el == nil || el.ID() != "b" {
		t.Error("GetElementByID failed to find 'b'")
	}
	if el := doc.GetElementByID("missing"); el != nil {
		t.Error("GetElementByID should return nil for unknown ids")
	}
	if els := doc.GetElementsByTagName("input"); len(els) != 3 {
		t.Errorf("Expected 3 inputs, got %d", len(els))
	}
	if els := doc.GetElementsByClassName("row-select"); len(els) != 3 {
		t.Errorf("Expected 3 row-select elements, got %d", len(els))
	}
	if els := doc.GetElementsByClassName("special"); len(els) != 1 {
		t.Errorf("Expected 1 special element, got %d", len(els))
	}
	if doc.Body() == nil {
		t.Error("Body should be found")
	}
	if doc.DocumentElement() == nil || doc.DocumentElement().LocalName() != "html" {
		t.Error("DocumentElement should be the html element")
	}
}

func TestParentEventTargetChain(t *testing.T) {
	doc := NewDocument()
	html := doc.CreateElement("html")
	body := doc.CreateElement("body")
	doc.AsNode().AppendChild(html.AsNode())
	html.AsNode().AppendChild(body.AsNode())

	if got := body.AsNode().ParentEventTarget(); got != html.AsNode() {
		t.Errorf("Expected body's event parent to be html, got %v", got)
	}
	if got := doc.AsNode().ParentEventTarget(); got != nil {
		t.Errorf("Document should end the chain, got %v", got)
	}
}
