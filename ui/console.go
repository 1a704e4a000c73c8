// Package ui provides the admin console user interface using Fyne. It
// renders a parsed document as native widgets and acts as the event
// host: widget interactions become raw events delivered through the
// listener registry.
package ui

import (
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/chrisuehlinger/pagekit/dom"
	"github.com/chrisuehlinger/pagekit/events"
)

// proxyKey identifies a node's handler list for one legacy event name.
type proxyKey struct {
	node *dom.Node
	name string
}

// attachSlot is one legacy attachment. A node may hold several slots
// under the same event name; the registry attaches once per delivery
// bucket and tears each down independently.
type attachSlot struct {
	key   proxyKey
	proxy func(*events.RawEvent) bool
}

// ConsoleUI is the main console window. It owns the mapping between
// document nodes and their widgets, and implements the host side of
// event delivery as a legacy-style platform: handlers attach to a node
// by legacy event name, with the propagation walk simulated by the
// dispatcher.
type ConsoleUI struct {
	app    fyne.App
	window fyne.Window

	platform *events.HostPlatform
	doc      *dom.Document

	mu      sync.Mutex
	proxies map[proxyKey][]*attachSlot
	checks  map[*dom.Node]*widget.Check
	buttons map[*dom.Node]*widget.Button

	// syncing suppresses OnChanged feedback while widget state is being
	// driven from the document.
	syncing bool
}

// newConsole builds the event-host state without any window, so the
// delivery path can run headless.
func newConsole() *ConsoleUI {
	c := &ConsoleUI{
		proxies: make(map[proxyKey][]*attachSlot),
		checks:  make(map[*dom.Node]*widget.Check),
		buttons: make(map[*dom.Node]*widget.Button),
	}
	c.platform = &events.HostPlatform{
		LegacyAttach: c.attach,
		LegacyDetach: c.detach,
	}
	return c
}

// NewConsoleUI creates the console window.
func NewConsoleUI(title string) *ConsoleUI {
	c := newConsole()
	c.app = app.New()
	c.window = c.app.NewWindow(title)
	c.window.Resize(fyne.NewSize(800, 600))
	return c
}

// Platform returns the event platform backed by this window.
func (c *ConsoleUI) Platform() events.Platform {
	return c.platform
}

// attach adds proxy to the handler list for (source, name).
func (c *ConsoleUI) attach(source any, name string, proxy func(*events.RawEvent) bool) any {
	node, ok := source.(*dom.Node)
	if !ok {
		return nil
	}
	slot := &attachSlot{key: proxyKey{node, name}, proxy: proxy}
	c.mu.Lock()
	c.proxies[slot.key] = append(c.proxies[slot.key], slot)
	c.mu.Unlock()
	return slot
}

// detach removes one attachment, leaving any others on the same node
// and event name in place.
func (c *ConsoleUI) detach(source any, name string, handle any) {
	slot, ok := handle.(*attachSlot)
	if !ok {
		return
	}
	c.mu.Lock()
	slots := c.proxies[slot.key]
	for i, s := range slots {
		if s == slot {
			slots = append(slots[:i], slots[i+1:]...)
			break
		}
	}
	if len(slots) == 0 {
		delete(c.proxies, slot.key)
	} else {
		c.proxies[slot.key] = slots
	}
	c.mu.Unlock()
}

// SetDocument renders doc into the window and binds its interactive
// elements.
func (c *ConsoleUI) SetDocument(doc *dom.Document) {
	c.mu.Lock()
	c.doc = doc
	c.proxies = make(map[proxyKey][]*attachSlot)
	c.checks = make(map[*dom.Node]*widget.Check)
	c.buttons = make(map[*dom.Node]*widget.Button)
	c.mu.Unlock()

	body := doc.Body()
	if body == nil {
		c.window.SetContent(widget.NewLabel("Empty page"))
		return
	}
	content := c.buildBlock(body.AsNode())
	c.window.SetContent(container.NewScroll(content))
	c.SyncControls()
}

// buildBlock renders a node's children vertically.
func (c *ConsoleUI) buildBlock(node *dom.Node) *fyne.Container {
	box := container.NewVBox()
	for _, child := range node.ChildNodes() {
		if obj := c.buildObject(child); obj != nil {
			box.Add(obj)
		}
	}
	return box
}

// buildRow renders a table row's cells horizontally.
func (c *ConsoleUI) buildRow(node *dom.Node) *fyne.Container {
	box := container.NewHBox()
	for _, cell := range node.ChildNodes() {
		for _, child := range cell.ChildNodes() {
			if obj := c.buildObject(child); obj != nil {
				box.Add(obj)
			}
		}
		if text := strings.TrimSpace(cell.TextContent()); text != "" && !hasElementChild(cell) {
			box.Add(widget.NewLabel(text))
		}
	}
	return box
}

// buildObject renders one node. Checkbox inputs and buttons become
// live widgets; rows and generic containers recurse; bare text becomes
// a label.
func (c *ConsoleUI) buildObject(node *dom.Node) fyne.CanvasObject {
	el := node.AsElement()
	if el == nil {
		if text := strings.TrimSpace(node.TextContent()); text != "" {
			return widget.NewLabel(text)
		}
		return nil
	}

	switch el.LocalName() {
	case "input":
		if el.GetAttribute("type") != "checkbox" {
			return nil
		}
		check := widget.NewCheck("", func(bool) {
			c.mu.Lock()
			syncing := c.syncing
			c.mu.Unlock()
			if !syncing {
				c.Deliver(node, "click")
			}
		})
		c.mu.Lock()
		c.checks[node] = check
		c.mu.Unlock()
		return check
	case "button":
		btn := widget.NewButton(strings.TrimSpace(node.TextContent()), func() {
			c.Deliver(node, "click")
		})
		c.mu.Lock()
		c.buttons[node] = btn
		c.mu.Unlock()
		return btn
	case "tr":
		return c.buildRow(node)
	case "script", "style", "head":
		return nil
	default:
		block := c.buildBlock(node)
		if len(block.Objects) == 0 {
			if text := strings.TrimSpace(node.TextContent()); text != "" {
				return widget.NewLabel(text)
			}
			return nil
		}
		return block
	}
}

// Deliver routes one interaction into the registry. Like a legacy
// host, delivery enters at the nearest node with an attachment for the
// event, starting from the target. Every handler attached there is
// fired; the raw event's dispatched flag makes repeat entries no-ops.
// The document owns control state, so widgets are re-synced from it
// afterwards.
func (c *ConsoleUI) Deliver(node *dom.Node, typ string) {
	name := events.LegacyEventName(typ)
	var proxies []func(*events.RawEvent) bool

	c.mu.Lock()
	for n := node; n != nil; {
		if slots, ok := c.proxies[proxyKey{n, name}]; ok && len(slots) > 0 {
			for _, s := range slots {
				proxies = append(proxies, s.proxy)
			}
			break
		}
		parent, _ := n.ParentEventTarget().(*dom.Node)
		n = parent
	}
	c.mu.Unlock()

	raw := &events.RawEvent{Type: typ, Target: node}
	for _, proxy := range proxies {
		proxy(raw)
	}
	c.SyncControls()
}

// SyncControls drives every bound widget from its element's state.
func (c *ConsoleUI) SyncControls() {
	c.mu.Lock()
	c.syncing = true
	checks := make(map[*dom.Node]*widget.Check, len(c.checks))
	for node, check := range c.checks {
		checks[node] = check
	}
	buttons := make(map[*dom.Node]*widget.Button, len(c.buttons))
	for node, btn := range c.buttons {
		buttons[node] = btn
	}
	c.mu.Unlock()

	// SetChecked fires OnChanged synchronously, so the lock must not be
	// held here; the syncing flag keeps the feedback out of delivery.
	for node, check := range checks {
		if el := node.AsElement(); el != nil && check.Checked != el.Checked() {
			check.SetChecked(el.Checked())
		}
	}
	for node, btn := range buttons {
		el := node.AsElement()
		if el == nil {
			continue
		}
		if el.Disabled() {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}

	c.mu.Lock()
	c.syncing = false
	c.mu.Unlock()
}

// Run shows the window and blocks until it closes.
func (c *ConsoleUI) Run() {
	c.window.ShowAndRun()
}

// hasElementChild reports whether any direct child is an element.
func hasElementChild(node *dom.Node) bool {
	for _, child := range node.ChildNodes() {
		if child.AsElement() != nil {
			return true
		}
	}
	return false
}
