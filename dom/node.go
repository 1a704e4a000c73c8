package dom

import "strings"

// Node represents a node in the document tree. It is the base from
// which Document, Element, Text, and Comment nodes derive.
type Node struct {
	nodeType   NodeType
	nodeName   string
	ownerDoc   *Document
	parentNode *Node

	// First/last child and sibling pointers for efficient traversal
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node

	// Type-specific data (only one will be non-nil based on nodeType)
	elementData *elementData
	textData    *string
}

// Attribute is one element attribute. Order of declaration is kept.
type Attribute struct {
	Key   string
	Value string
}

// elementData holds data specific to Element nodes.
type elementData struct {
	tagName    string
	localName  string
	attributes []Attribute

	// Form-control state, seeded from attributes at parse time but
	// mutable independently of them afterwards.
	checked  bool
	disabled bool
}

// newNode creates a new node with the given type and name.
func newNode(nodeType NodeType, nodeName string, ownerDoc *Document) *Node {
	return &Node{
		nodeType: nodeType,
		nodeName: nodeName,
		ownerDoc: ownerDoc,
	}
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// NodeName returns the name of the node: the uppercase tag name for
// elements, "#text" for text nodes, "#document" for documents.
func (n *Node) NodeName() string {
	return n.nodeName
}

// OwnerDocument returns the document the node belongs to, or nil for a
// document node itself.
func (n *Node) OwnerDocument() *Document {
	return n.ownerDoc
}

// ParentNode returns the parent, or nil for a detached node or the
// document root.
func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	return n.firstChild
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	return n.lastChild
}

// NextSibling returns the following sibling, or nil.
func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// PrevSibling returns the preceding sibling, or nil.
func (n *Node) PrevSibling() *Node {
	return n.prevSibling
}

// ChildNodes returns a slice of all child nodes.
func (n *Node) ChildNodes() []*Node {
	var children []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		children = append(children, c)
	}
	return children
}

// ParentEventTarget returns the node's parent for event propagation.
// It implements the events package's Propagator interface; a nil return
// ends the propagation chain at the document.
func (n *Node) ParentEventTarget() any {
	if n.parentNode == nil {
		return nil
	}
	return n.parentNode
}

// AppendChild adds c to the end of this node's children, detaching it
// from its previous parent first.
func (n *Node) AppendChild(c *Node) error {
	if c == nil {
		return ErrHierarchyRequest("cannot append nil node")
	}
	for a := n; a != nil; a = a.parentNode {
		if a == c {
			return ErrHierarchyRequest("cannot append an ancestor")
		}
	}
	if c.parentNode != nil {
		c.parentNode.RemoveChild(c)
	}
	c.parentNode = n
	c.prevSibling = n.lastChild
	c.nextSibling = nil
	if n.lastChild != nil {
		n.lastChild.nextSibling = c
	} else {
		n.firstChild = c
	}
	n.lastChild = c
	return nil
}

// RemoveChild detaches c from this node's children.
func (n *Node) RemoveChild(c *Node) error {
	if c == nil || c.parentNode != n {
		return ErrNotFound("node is not a child")
	}
	if c.prevSibling != nil {
		c.prevSibling.nextSibling = c.nextSibling
	} else {
		n.firstChild = c.nextSibling
	}
	if c.nextSibling != nil {
		c.nextSibling.prevSibling = c.prevSibling
	} else {
		n.lastChild = c.prevSibling
	}
	c.parentNode = nil
	c.prevSibling = nil
	c.nextSibling = nil
	return nil
}

// TextContent returns the concatenated text of the node and its
// descendants.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.collectTextContent(&sb)
	return sb.String()
}

func (n *Node) collectTextContent(sb *strings.Builder) {
	if n.nodeType == TextNode && n.textData != nil {
		sb.WriteString(*n.textData)
		return
	}
	for c := n.firstChild; c != nil; c = c.nextSibling {
		c.collectTextContent(sb)
	}
}

// AsElement returns the node as an Element, or nil for non-elements.
func (n *Node) AsElement() *Element {
	if n.nodeType != ElementNode {
		return nil
	}
	return (*Element)(n)
}

// walk visits n and its descendants in document order until visit
// returns false.
func (n *Node) walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if !c.walk(visit) {
			return false
		}
	}
	return true
}
