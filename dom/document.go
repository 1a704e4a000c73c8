package dom

import "strings"

// Document represents an HTML document.
type Document Node

// NewDocument creates a new empty HTML Document.
func NewDocument() *Document {
	node := newNode(DocumentNode, "#document", nil)
	doc := (*Document)(node)
	node.ownerDoc = doc
	return doc
}

// AsNode returns the underlying Node.
func (d *Document) AsNode() *Node {
	return (*Node)(d)
}

// CreateElement creates a detached element with the given tag name.
func (d *Document) CreateElement(tag string) *Element {
	node := newNode(ElementNode, strings.ToUpper(tag), d)
	node.elementData = &elementData{
		tagName:   strings.ToUpper(tag),
		localName: strings.ToLower(tag),
	}
	return (*Element)(node)
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) *Node {
	node := newNode(TextNode, "#text", d)
	node.textData = &text
	return node
}

// DocumentElement returns the root element (html), or nil for an empty
// document.
func (d *Document) DocumentElement() *Element {
	for c := d.AsNode().firstChild; c != nil; c = c.nextSibling {
		if c.nodeType == ElementNode {
			return c.AsElement()
		}
	}
	return nil
}

// Body returns the document's body element, or nil.
func (d *Document) Body() *Element {
	els := d.GetElementsByTagName("body")
	if len(els) == 0 {
		return nil
	}
	return els[0]
}

// GetElementByID returns the first element with the given id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	d.AsNode().walk(func(n *Node) bool {
		if el := n.AsElement(); el != nil && el.ID() == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// GetElementsByTagName returns every element with the given tag name in
// document order. The tag "*" matches every element.
func (d *Document) GetElementsByTagName(tag string) []*Element {
	tag = strings.ToLower(tag)
	var out []*Element
	d.AsNode().walk(func(n *Node) bool {
		if el := n.AsElement(); el != nil && (tag == "*" || el.LocalName() == tag) {
			out = append(out, el)
		}
		return true
	})
	return out
}

// GetElementsByClassName returns every element whose class attribute
// contains name, in document order.
func (d *Document) GetElementsByClassName(name string) []*Element {
	var out []*Element
	d.AsNode().walk(func(n *Node) bool {
		if el := n.AsElement(); el != nil && el.HasClass(name) {
			out = append(out, el)
		}
		return true
	})
	return out
}
