// Package console implements the admin console page widgets on top of
// the dom and events packages. Its only widget is the select-all
// controller for the entity table: a master checkbox driving the row
// checkboxes, with action buttons gated on how many rows are selected.
package console

import (
	"github.com/chrisuehlinger/pagekit/dom"
	"github.com/chrisuehlinger/pagekit/events"
)

// Page element hooks the controller looks for.
const (
	SelectAllID     = "select-all"
	RowClass        = "row-select"
	ActionClass     = "selection-action"
	minSelectedAttr = "data-min-selected"
)

// Controller wires the select-all widget to a document. A controller
// does nothing until Attach succeeds.
type Controller struct {
	registry *events.Registry
	doc      *dom.Document

	selectAll *dom.Element
	rows      []*dom.Element
	buttons   []*dom.Element
	listeners []*events.Listener
}

// NewController creates a controller for doc using registry for
// listener bookkeeping.
func NewController(registry *events.Registry, doc *dom.Document) *Controller {
	return &Controller{registry: registry, doc: doc}
}

// Attach locates the widget's elements and registers its listeners.
// It returns false without error when the page has no select-all
// checkbox or no row checkboxes; a page without the widget simply gets
// no widget behavior.
func (c *Controller) Attach() (bool, error) {
	c.selectAll = c.doc.GetElementByID(SelectAllID)
	c.rows = c.doc.GetElementsByClassName(RowClass)
	if c.selectAll == nil || len(c.rows) == 0 {
		return false, nil
	}
	c.buttons = c.doc.GetElementsByClassName(ActionClass)

	l, err := c.registry.Listen(c.selectAll.AsNode(), "click", events.ListenerFunc(c.onSelectAllClick), nil)
	if err != nil {
		return false, err
	}
	c.listeners = append(c.listeners, l)

	for _, row := range c.rows {
		l, err := c.registry.Listen(row.AsNode(), "click", events.ListenerFunc(c.onRowClick), nil)
		if err != nil {
			c.Detach()
			return false, err
		}
		c.listeners = append(c.listeners, l)
	}

	c.updateButtons()
	return true, nil
}

// Detach removes every listener the controller registered.
func (c *Controller) Detach() {
	for _, l := range c.listeners {
		c.registry.UnlistenByKey(l)
	}
	c.listeners = nil
}

// SelectedCount returns how many row checkboxes are checked.
func (c *Controller) SelectedCount() int {
	n := 0
	for _, row := range c.rows {
		if row.Checked() {
			n++
		}
	}
	return n
}

// onSelectAllClick toggles the master checkbox and drives every row
// checkbox to the same state.
func (c *Controller) onSelectAllClick(e *events.BrowserEvent) bool {
	c.selectAll.SetChecked(!c.selectAll.Checked())
	checked := c.selectAll.Checked()
	for _, row := range c.rows {
		row.SetChecked(checked)
	}
	c.updateButtons()
	return true
}

// onRowClick toggles the clicked row checkbox and keeps the master
// checkbox consistent: any unchecked row unchecks it, all rows checked
// re-checks it.
func (c *Controller) onRowClick(e *events.BrowserEvent) bool {
	node, ok := e.Target.(*dom.Node)
	if !ok {
		return true
	}
	row := node.AsElement()
	if row == nil {
		return true
	}
	row.SetChecked(!row.Checked())

	if !row.Checked() {
		c.selectAll.SetChecked(false)
	} else if c.SelectedCount() == len(c.rows) {
		c.selectAll.SetChecked(true)
	}
	c.updateButtons()
	return true
}

// updateButtons enables each action button whose minimum selection is
// met and disables the rest. The minimum comes from the button's
// data-min-selected attribute and defaults to one.
func (c *Controller) updateButtons() {
	count := c.SelectedCount()
	for _, btn := range c.buttons {
		min := btn.IntAttribute(minSelectedAttr, 1)
		btn.SetDisabled(count < min)
	}
}
