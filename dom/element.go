package dom

import (
	"strconv"
	"strings"
)

// Element represents an element in the document tree.
// Element inherits from Node and provides attribute access and
// form-control state.
type Element Node

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// TagName returns the tag name in uppercase.
func (e *Element) TagName() string {
	if e.elementData != nil {
		return e.elementData.tagName
	}
	return strings.ToUpper(e.nodeName)
}

// LocalName returns the lowercase tag name.
func (e *Element) LocalName() string {
	if e.elementData != nil {
		return e.elementData.localName
	}
	return strings.ToLower(e.nodeName)
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	return e.GetAttribute("id")
}

// ClassName returns the element's class attribute.
func (e *Element) ClassName() string {
	return e.GetAttribute("class")
}

// HasClass reports whether the class attribute contains name.
func (e *Element) HasClass(name string) bool {
	for _, c := range strings.Fields(e.ClassName()) {
		if c == name {
			return true
		}
	}
	return false
}

// GetAttribute returns the value of the named attribute, or the empty
// string when absent.
func (e *Element) GetAttribute(key string) string {
	if e.elementData == nil {
		return ""
	}
	for _, attr := range e.elementData.attributes {
		if attr.Key == key {
			return attr.Value
		}
	}
	return ""
}

// HasAttribute reports whether the named attribute is present.
func (e *Element) HasAttribute(key string) bool {
	if e.elementData == nil {
		return false
	}
	for _, attr := range e.elementData.attributes {
		if attr.Key == key {
			return true
		}
	}
	return false
}

// SetAttribute sets an attribute value, creating it if needed.
func (e *Element) SetAttribute(key, value string) {
	if e.elementData == nil {
		return
	}
	for i, attr := range e.elementData.attributes {
		if attr.Key == key {
			e.elementData.attributes[i].Value = value
			return
		}
	}
	e.elementData.attributes = append(e.elementData.attributes, Attribute{Key: key, Value: value})
}

// RemoveAttribute removes the named attribute.
func (e *Element) RemoveAttribute(key string) {
	if e.elementData == nil {
		return
	}
	attrs := e.elementData.attributes
	for i, attr := range attrs {
		if attr.Key == key {
			e.elementData.attributes = append(attrs[:i], attrs[i+1:]...)
			return
		}
	}
}

// IntAttribute returns the named attribute parsed as an integer, or
// fallback when the attribute is absent or malformed.
func (e *Element) IntAttribute(key string, fallback int) int {
	v := e.GetAttribute(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// Checked returns the checkbox state.
func (e *Element) Checked() bool {
	return e.elementData != nil && e.elementData.checked
}

// SetChecked sets the checkbox state.
func (e *Element) SetChecked(checked bool) {
	if e.elementData != nil {
		e.elementData.checked = checked
	}
}

// Disabled returns the control's disabled state.
func (e *Element) Disabled() bool {
	return e.elementData != nil && e.elementData.disabled
}

// SetDisabled sets the control's disabled state.
func (e *Element) SetDisabled(disabled bool) {
	if e.elementData != nil {
		e.elementData.disabled = disabled
	}
}
