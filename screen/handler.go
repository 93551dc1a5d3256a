// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/handler.go
// Summary: The capability record of collaborator callbacks.
// Usage: Passed at construction; absent entries are explicit no-ops.
// Notes: Callbacks fire synchronously, before Apply returns.

package screen

// EventHandler bundles every hook the screen fires toward its
// collaborators (PTY writer, window system, input encoder). Any field
// may be nil; the screen treats missing behaviors as no-ops.
type EventHandler struct {
	// Reply receives the VT reply stream destined for the PTY.
	Reply func(data string)

	OnWindowTitleChanged func(title string)
	ResizeWindow         func(rows, columns int, inPixels bool)

	SetMouseProtocol          func(protocol MouseProtocol, enable bool)
	SetMouseTransport         func(transport MouseTransport)
	SetMouseWheelMode         func(mode MouseWheelMode)
	SetApplicationKeypadMode  func(enable bool)
	SetBracketedPaste         func(enable bool)
	SetGenerateFocusEvents    func(enable bool)
	UseApplicationCursorKeys  func(enable bool)
	SetCursorStyle            func(display CursorDisplay, shape CursorShape)

	OnBufferChanged func(kind BufferType)

	Bell   func()
	Notify func(title, body string)

	RequestDynamicColor func(name DynamicColorName) (RGB, bool)
	SetDynamicColor     func(name DynamicColorName, color RGB)
	ResetDynamicColor   func(name DynamicColorName)

	// OnCommands is a trace hook fired once per dispatched batch.
	OnCommands func(batch []Command)
}

func (h *EventHandler) reply(data string) {
	if h.Reply != nil {
		h.Reply(data)
	}
}

func (h *EventHandler) windowTitleChanged(title string) {
	if h.OnWindowTitleChanged != nil {
		h.OnWindowTitleChanged(title)
	}
}

func (h *EventHandler) resizeWindow(rows, columns int, inPixels bool) {
	if h.ResizeWindow != nil {
		h.ResizeWindow(rows, columns, inPixels)
	}
}

func (h *EventHandler) mouseProtocol(p MouseProtocol, enable bool) {
	if h.SetMouseProtocol != nil {
		h.SetMouseProtocol(p, enable)
	}
}

func (h *EventHandler) mouseTransport(t MouseTransport) {
	if h.SetMouseTransport != nil {
		h.SetMouseTransport(t)
	}
}

func (h *EventHandler) mouseWheelMode(m MouseWheelMode) {
	if h.SetMouseWheelMode != nil {
		h.SetMouseWheelMode(m)
	}
}

func (h *EventHandler) applicationKeypadMode(enable bool) {
	if h.SetApplicationKeypadMode != nil {
		h.SetApplicationKeypadMode(enable)
	}
}

func (h *EventHandler) bracketedPaste(enable bool) {
	if h.SetBracketedPaste != nil {
		h.SetBracketedPaste(enable)
	}
}

func (h *EventHandler) generateFocusEvents(enable bool) {
	if h.SetGenerateFocusEvents != nil {
		h.SetGenerateFocusEvents(enable)
	}
}

func (h *EventHandler) applicationCursorKeys(enable bool) {
	if h.UseApplicationCursorKeys != nil {
		h.UseApplicationCursorKeys(enable)
	}
}

func (h *EventHandler) cursorStyle(d CursorDisplay, s CursorShape) {
	if h.SetCursorStyle != nil {
		h.SetCursorStyle(d, s)
	}
}

func (h *EventHandler) bufferChanged(kind BufferType) {
	if h.OnBufferChanged != nil {
		h.OnBufferChanged(kind)
	}
}

func (h *EventHandler) bell() {
	if h.Bell != nil {
		h.Bell()
	}
}

func (h *EventHandler) notify(title, body string) {
	if h.Notify != nil {
		h.Notify(title, body)
	}
}

func (h *EventHandler) requestDynamicColor(name DynamicColorName) (RGB, bool) {
	if h.RequestDynamicColor != nil {
		return h.RequestDynamicColor(name)
	}
	return RGB{}, false
}

func (h *EventHandler) setDynamicColor(name DynamicColorName, c RGB) {
	if h.SetDynamicColor != nil {
		h.SetDynamicColor(name, c)
	}
}

func (h *EventHandler) resetDynamicColor(name DynamicColorName) {
	if h.ResetDynamicColor != nil {
		h.ResetDynamicColor(name)
	}
}

func (h *EventHandler) commands(batch []Command) {
	if h.OnCommands != nil {
		h.OnCommands(batch)
	}
}
