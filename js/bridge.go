package js

import (
	"sync"

	"github.com/dop251/goja"

	"github.com/chrisuehlinger/pagekit/events"
)

// jsBinding ties one JS listener function to its registry record so it
// can be removed by the exact record rather than by callback identity.
type jsBinding struct {
	typ      string
	capture  bool
	value    goja.Value
	listener *events.Listener
}

// Bridge exposes event sources to scripts. BindTarget installs the
// EventTarget methods on a JS object; registrations flow into the
// shared registry so script and Go listeners share one dispatch order.
type Bridge struct {
	runtime  *Runtime
	registry *events.Registry

	mu       sync.Mutex
	bindings map[any][]*jsBinding
	objects  map[any]*goja.Object
}

// NewBridge creates a bridge between runtime and registry.
func NewBridge(runtime *Runtime, registry *events.Registry) *Bridge {
	return &Bridge{
		runtime:  runtime,
		registry: registry,
		bindings: make(map[any][]*jsBinding),
		objects:  make(map[any]*goja.Object),
	}
}

// BindTarget installs addEventListener, removeEventListener and
// dispatchEvent on obj, routing them to source's listeners in the
// registry.
func (b *Bridge) BindTarget(obj *goja.Object, source any) {
	vm := b.runtime.vm

	b.mu.Lock()
	b.objects[source] = obj
	b.mu.Unlock()

	obj.Set("addEventListener", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			return goja.Undefined()
		}
		typ := call.Arguments[0].String()
		fn := call.Arguments[1]
		callback, ok := goja.AssertFunction(fn)
		if !ok {
			return goja.Undefined()
		}
		opts := parseListenOptions(vm, call.Arguments)
		// The JS function is the scope, so registry-level identity
		// mirrors script-side identity rather than the Go proxy's.
		opts.Scope = fn

		b.mu.Lock()
		if b.findBinding(source, typ, fn, opts.Capture) != nil {
			b.mu.Unlock()
			return goja.Undefined()
		}
		b.mu.Unlock()

		proxy := func(e *events.BrowserEvent) bool {
			callback(goja.Undefined(), b.wrapEvent(e))
			// Script listeners cancel through preventDefault, never by
			// return value.
			return true
		}
		l, err := b.registry.Listen(source, typ, events.ListenerFunc(proxy), &opts)
		if err != nil {
			return goja.Undefined()
		}
		b.mu.Lock()
		b.bindings[source] = append(b.bindings[source], &jsBinding{
			typ:      typ,
			capture:  opts.Capture,
			value:    fn,
			listener: l,
		})
		b.mu.Unlock()
		return goja.Undefined()
	})

	obj.Set("removeEventListener", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			return goja.Undefined()
		}
		typ := call.Arguments[0].String()
		fn := call.Arguments[1]
		opts := parseListenOptions(vm, call.Arguments)

		b.mu.Lock()
		binding := b.findBinding(source, typ, fn, opts.Capture)
		b.mu.Unlock()
		if binding != nil {
			b.registry.UnlistenByKey(binding.listener)
			b.dropBinding(source, binding)
		}
		return goja.Undefined()
	})

	obj.Set("dispatchEvent", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return vm.ToValue(true)
		}
		evObj := call.Arguments[0].ToObject(vm)
		if evObj == nil {
			return vm.ToValue(true)
		}
		raw := &events.RawEvent{
			Type:   evObj.Get("type").String(),
			Target: source,
		}
		ok := b.registry.Dispatch(source, raw)
		if !ok {
			evObj.Set("defaultPrevented", true)
		}
		return vm.ToValue(ok)
	})
}

// BindGlobal creates a JS object bound to source and installs it in
// the global scope under name.
func (b *Bridge) BindGlobal(name string, source any) *goja.Object {
	obj := b.runtime.vm.NewObject()
	b.BindTarget(obj, source)
	b.runtime.vm.Set(name, obj)
	return obj
}

// Release unbinds every script listener registered on source.
func (b *Bridge) Release(source any) {
	b.mu.Lock()
	list := b.bindings[source]
	delete(b.bindings, source)
	delete(b.objects, source)
	b.mu.Unlock()
	for _, binding := range list {
		b.registry.UnlistenByKey(binding.listener)
	}
}

// findBinding returns the live binding matching (typ, fn, capture), or
// nil. Bindings whose listener was consumed elsewhere are pruned as a
// side effect. Callers must hold mu.
func (b *Bridge) findBinding(source any, typ string, fn goja.Value, capture bool) *jsBinding {
	list := b.bindings[source]
	kept := list[:0]
	var found *jsBinding
	for _, binding := range list {
		if binding.listener.Removed() {
			continue
		}
		kept = append(kept, binding)
		if binding.typ == typ && binding.capture == capture && binding.value.SameAs(fn) {
			found = binding
		}
	}
	b.bindings[source] = kept
	return found
}

// dropBinding removes one binding record.
func (b *Bridge) dropBinding(source any, target *jsBinding) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.bindings[source]
	for i, binding := range list {
		if binding == target {
			b.bindings[source] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// wrapEvent builds the JS view of a normalized event. preventDefault
// and stopPropagation act on the Go event, so their effects are shared
// with Go listeners in the same dispatch.
func (b *Bridge) wrapEvent(e *events.BrowserEvent) *goja.Object {
	vm := b.runtime.vm
	obj := vm.NewObject()

	obj.Set("type", e.Type)
	obj.Set("eventPhase", int(e.Phase))
	obj.Set("bubbles", e.Bubbles)
	obj.Set("cancelable", e.Cancelable)
	obj.Set("defaultPrevented", e.DefaultPrevented)
	obj.Set("target", b.objectFor(e.Target))
	obj.Set("currentTarget", b.objectFor(e.CurrentTarget))

	obj.Set("clientX", e.ClientX)
	obj.Set("clientY", e.ClientY)
	obj.Set("screenX", e.ScreenX)
	obj.Set("screenY", e.ScreenY)
	obj.Set("offsetX", e.OffsetX)
	obj.Set("offsetY", e.OffsetY)
	obj.Set("button", e.Button)
	obj.Set("key", e.Key)
	obj.Set("keyCode", e.KeyCode)
	obj.Set("ctrlKey", e.CtrlKey)
	obj.Set("altKey", e.AltKey)
	obj.Set("shiftKey", e.ShiftKey)
	obj.Set("metaKey", e.MetaKey)

	obj.Set("preventDefault", func(call goja.FunctionCall) goja.Value {
		e.PreventDefault()
		obj.Set("defaultPrevented", true)
		return goja.Undefined()
	})
	obj.Set("stopPropagation", func(call goja.FunctionCall) goja.Value {
		e.StopPropagation()
		return goja.Undefined()
	})
	return obj
}

// objectFor returns the bound JS object for a source, or null.
func (b *Bridge) objectFor(source any) goja.Value {
	if source == nil {
		return goja.Null()
	}
	b.mu.Lock()
	obj := b.objects[source]
	b.mu.Unlock()
	if obj == nil {
		return goja.Null()
	}
	return obj
}

// parseListenOptions reads the third addEventListener argument: either
// a boolean capture flag or an options object.
func parseListenOptions(vm *goja.Runtime, args []goja.Value) events.ListenOptions {
	var opts events.ListenOptions
	if len(args) < 3 {
		return opts
	}
	arg := args[2]
	if arg == nil || goja.IsUndefined(arg) || goja.IsNull(arg) {
		return opts
	}
	if t := arg.ExportType(); t != nil && t.Kind().String() == "bool" {
		opts.Capture = arg.ToBoolean()
		return opts
	}
	if optObj := arg.ToObject(vm); optObj != nil {
		if v := optObj.Get("capture"); v != nil {
			opts.Capture = v.ToBoolean()
		}
		if v := optObj.Get("once"); v != nil {
			opts.Once = v.ToBoolean()
		}
		if v := optObj.Get("passive"); v != nil {
			opts.Passive = v.ToBoolean()
		}
	}
	return opts
}

// SetupEventConstructor installs a minimal Event constructor so scripts
// can build synthetic events for dispatchEvent.
func (b *Bridge) SetupEventConstructor() {
	vm := b.runtime.vm
	vm.Set("Event", func(call goja.ConstructorCall) *goja.Object {
		eventType := ""
		if len(call.Arguments) > 0 {
			eventType = call.Arguments[0].String()
		}
		event := vm.NewObject()
		event.Set("type", eventType)
		event.Set("bubbles", false)
		event.Set("cancelable", false)
		event.Set("defaultPrevented", false)
		if len(call.Arguments) > 1 {
			if optObj := call.Arguments[1].ToObject(vm); optObj != nil {
				if v := optObj.Get("bubbles"); v != nil && !goja.IsUndefined(v) {
					event.Set("bubbles", v.ToBoolean())
				}
				if v := optObj.Get("cancelable"); v != nil && !goja.IsUndefined(v) {
					event.Set("cancelable", v.ToBoolean())
				}
			}
		}
		return event
	})
}
