// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/screen.go
// Summary: The command interpreter: owns both buffers, dispatches every
//          display command to the grid primitives, emits replies.
// Usage: Single-threaded; the owner serializes all calls.
// Notes: Dispatch is one type switch over the closed Command set.

package screen

import "log"

// Screen interprets the parsed command stream against two buffers (main
// and alternate) and maintains the viewport state a renderer draws.
type Screen struct {
	size    WindowSize
	buffers [2]ScreenBuffer
	active  int // index into buffers; 0 = main, 1 = alternate
	handler *EventHandler

	scrollOffset int

	windowTitle string
	titleStack  []string

	// savedModes backs XTSAVE/XTRESTORE; a separate stack per mode,
	// independent of the DECSC state stack.
	savedModes map[Mode][]bool

	maxHistory int
	tabWidth   int

	logRaw   bool
	logTrace bool
	verify   bool
}

// Option configures a Screen at construction.
type Option func(*Screen)

// WithMaxHistoryLineCount bounds the main buffer's scrollback. Zero or
// absent means unbounded.
func WithMaxHistoryLineCount(n int) Option {
	return func(s *Screen) { s.maxHistory = n }
}

// WithTabWidth sets the default tab stop cadence (default 8).
func WithTabWidth(n int) Option {
	return func(s *Screen) {
		if n > 0 {
			s.tabWidth = n
		}
	}
}

// WithLogRaw enables logging of raw reply traffic.
func WithLogRaw(enabled bool) Option {
	return func(s *Screen) { s.logRaw = enabled }
}

// WithLogTrace enables logging of ignored or unhandled commands.
func WithLogTrace(enabled bool) Option {
	return func(s *Screen) { s.logTrace = enabled }
}

// WithStateVerification runs the grid invariant checks after every
// dispatched command. Meant for tests; violations panic.
func WithStateVerification() Option {
	return func(s *Screen) { s.verify = true }
}

// New creates a screen of the given size. handler may be nil, which
// turns every callback into a no-op.
func New(size WindowSize, handler *EventHandler, opts ...Option) *Screen {
	if size.Rows < 1 {
		size.Rows = 1
	}
	if size.Columns < 1 {
		size.Columns = 1
	}
	if handler == nil {
		handler = &EventHandler{}
	}
	s := &Screen{
		size:       size,
		handler:    handler,
		savedModes: make(map[Mode][]bool),
		tabWidth:   8,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.buffers[0] = newScreenBuffer(MainBuffer, size, s.maxHistory, s.tabWidth)
	s.buffers[1] = newScreenBuffer(AlternateBuffer, size, 0, s.tabWidth)
	return s
}

// buffer returns the active buffer.
func (s *Screen) buffer() *ScreenBuffer { return &s.buffers[s.active] }

// mainBuffer returns the main buffer regardless of which is active.
func (s *Screen) mainBuffer() *ScreenBuffer { return &s.buffers[0] }

// Size returns the visible grid extent.
func (s *Screen) Size() WindowSize { return s.size }

// IsAlternateScreen reports whether the alternate buffer is active.
func (s *Screen) IsAlternateScreen() bool { return s.active == 1 }

// BufferType returns the active buffer's type.
func (s *Screen) BufferType() BufferType { return s.buffer().kind }

// Cursor returns the active buffer's cursor (absolute coordinates).
func (s *Screen) Cursor() Cursor { return s.buffer().cursor }

// CursorPosition returns the cursor in logical (origin-mode) space.
func (s *Screen) CursorPosition() Coordinate { return s.buffer().cursorPosition() }

// Margin returns the active buffer's scroll region.
func (s *Screen) Margin() Margin { return s.buffer().margin }

// WindowTitle returns the current window title.
func (s *Screen) WindowTitle() string { return s.windowTitle }

// IsModeEnabled reports whether a mode is set on the active buffer.
func (s *Screen) IsModeEnabled(m Mode) bool {
	if m == ModeUseAlternateScreen {
		return s.IsAlternateScreen()
	}
	return s.buffer().IsModeEnabled(m)
}

// HistoryLineCount returns the main buffer's scrollback depth.
func (s *Screen) HistoryLineCount() int { return s.mainBuffer().HistoryLineCount() }

// PruneHyperlinks drops interned hyperlink entries no cell references
// anymore. Hosts may call it periodically; links held by cells survive.
func (s *Screen) PruneHyperlinks() {
	s.buffers[0].pruneHyperlinks()
	s.buffers[1].pruneHyperlinks()
}

// Write dispatches a batch of commands in order, then fires the trace
// hook once. All callbacks run before Write returns.
func (s *Screen) Write(batch ...Command) {
	for _, cmd := range batch {
		s.Apply(cmd)
	}
	s.handler.commands(batch)
}

// Apply interprets a single command against the active buffer.
func (s *Screen) Apply(cmd Command) {
	b := s.buffer()
	switch v := cmd.(type) {
	case AppendChar:
		b.appendChar(v.Char, v.Consecutive)
	case RepeatLastCharacter:
		b.repeatLastCharacter(defaultCount(v.Count))
	case Linefeed:
		b.linefeed()
		if b.modes.enabled(ModeAutomaticNewline) {
			b.carriageReturn()
		}
	case Backspace:
		b.backspace()
	case CarriageReturn:
		b.carriageReturn()

	case MoveCursorTo:
		b.moveCursorTo(Coordinate{Row: defaultCount(v.Row), Column: defaultCount(v.Column)})
	case MoveCursorUp:
		b.moveCursorUp(defaultCount(v.N))
	case MoveCursorDown:
		b.moveCursorDown(defaultCount(v.N))
	case MoveCursorForward:
		b.moveCursorForward(defaultCount(v.N))
	case MoveCursorBackward:
		b.moveCursorBackward(defaultCount(v.N))
	case CursorNextLine:
		b.moveCursorDown(defaultCount(v.N))
		b.carriageReturn()
	case CursorPreviousLine:
		b.moveCursorUp(defaultCount(v.N))
		b.carriageReturn()
	case MoveCursorToColumn:
		b.setCurrentColumn(defaultCount(v.Column))
	case MoveCursorToLine:
		b.setCurrentRow(defaultCount(v.Line))
	case HorizontalPositionRelative:
		b.moveCursorForward(defaultCount(v.N))
	case VerticalPositionRelative:
		b.moveCursorDown(defaultCount(v.N))
	case MoveCursorToBeginOfLine:
		b.carriageReturn()
	case MoveCursorToNextTab:
		b.nextTabStops(defaultCount(v.N))
	case CursorBackwardTab:
		b.prevTabStops(defaultCount(v.N))

	case Index:
		b.linefeed()
	case ReverseIndex:
		b.reverseLinefeed()
	case NextLine:
		b.linefeed()
		b.carriageReturn()
	case BackIndex:
		b.backIndex()
	case ForwardIndex:
		b.forwardIndex()

	case ClearToEndOfScreen:
		b.clearToEndOfScreen()
	case ClearToBeginOfScreen:
		b.clearToBeginOfScreen()
	case ClearScreen:
		b.clearScreen()
	case ClearScrollbackBuffer:
		b.clearScrollback()
		s.clampScrollOffset()
	case ClearToEndOfLine:
		b.clearToEndOfLine()
	case ClearToBeginOfLine:
		b.clearToBeginOfLine()
	case ClearLine:
		b.clearLine()
	case EraseCharacters:
		b.eraseCharacters(defaultCount(v.N))

	case ScrollUp:
		b.scrollUp(defaultCount(v.N), b.margin)
	case ScrollDown:
		b.scrollDown(defaultCount(v.N), b.margin)
	case InsertLines:
		b.insertLines(defaultCount(v.N))
	case DeleteLines:
		b.deleteLines(defaultCount(v.N))
	case InsertCharacters:
		b.insertChars(defaultCount(v.N))
	case DeleteCharacters:
		b.deleteChars(defaultCount(v.N))
	case InsertColumns:
		b.insertColumns(defaultCount(v.N))
	case DeleteColumns:
		b.deleteColumns(defaultCount(v.N))

	case SetTopBottomMargin:
		b.setTopBottomMargin(v.Top, v.Bottom)
	case SetLeftRightMargin:
		b.setLeftRightMargin(v.Left, v.Right)

	case SetForegroundColor:
		b.graphicsRendition.Foreground = v.Color
	case SetBackgroundColor:
		b.graphicsRendition.Background = v.Color
	case SetUnderlineColor:
		b.graphicsRendition.Underline = v.Color
	case SetGraphicsRendition:
		b.applyRendition(v.Rendition)

	case SetMode:
		s.applyMode(v.Mode, v.Enable)
	case RequestMode:
		s.reportMode(v.Number, v.Private)
	case SaveModes:
		s.saveModes(v.Modes)
	case RestoreModes:
		s.restoreModes(v.Modes)

	case SaveCursor:
		b.saveState()
	case RestoreCursor:
		b.restoreState()
	case SetCursorStyle:
		s.handler.cursorStyle(v.Display, v.Shape)

	case HorizontalTabSet:
		b.setTabUnderCursor()
	case HorizontalTabClear:
		switch v.Which {
		case TabClearUnderCursor:
			b.clearTabUnderCursor()
		case TabClearAllTabs:
			b.clearAllTabs()
		}

	case DeviceStatusReport:
		s.reportOperatingStatus()
	case ReportCursorPosition:
		s.reportCursorPosition()
	case ReportExtendedCursorPosition:
		s.reportExtendedCursorPosition()
	case SendDeviceAttributes:
		s.reportDeviceAttributes()
	case SendTerminalId:
		s.reportTerminalId()
	case RequestTabStops:
		s.reportTabStops()
	case RequestDynamicColor:
		s.reportDynamicColor(v.Name)
	case SetDynamicColor:
		s.handler.setDynamicColor(v.Name, v.Color)
	case ResetDynamicColor:
		s.handler.resetDynamicColor(v.Name)

	case ChangeWindowTitle:
		s.windowTitle = v.Title
		s.handler.windowTitleChanged(s.windowTitle)
	case SaveWindowTitle:
		s.titleStack = append(s.titleStack, s.windowTitle)
	case RestoreWindowTitle:
		if n := len(s.titleStack); n > 0 {
			s.windowTitle = s.titleStack[n-1]
			s.titleStack = s.titleStack[:n-1]
			s.handler.windowTitleChanged(s.windowTitle)
		}
	case ResizeWindow:
		s.handler.resizeWindow(v.Rows, v.Columns, v.InPixels)

	case Hyperlinked:
		b.setHyperlink(v.ID, v.URI)
	case SetMark:
		b.line(b.cursor.Row).Marked = true
	case Bell:
		s.handler.bell()
	case Notify:
		s.handler.notify(v.Title, v.Body)

	case SendMouseEvents:
		s.handler.mouseProtocol(v.Protocol, v.Enable)
	case ApplicationKeypadMode:
		s.handler.applicationKeypadMode(v.Enable)

	case DesignateCharset, SingleShiftSelect:
		if s.logTrace {
			log.Printf("screen: ignoring charset command %T", v)
		}

	case SoftTerminalReset:
		s.resetSoft()
	case FullReset:
		s.resetHard()
	case ScreenAlignmentPattern:
		b.alignmentPattern()

	default:
		if s.logTrace {
			log.Printf("screen: unhandled command %T", v)
		}
	}

	if s.verify {
		s.buffer().verifyState()
	}
}

// defaultCount clamps malformed counts: zero and negative default to 1.
func defaultCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// applyRendition folds one SGR style operation into the current
// graphics rendition.
func (b *ScreenBuffer) applyRendition(r GraphicsRendition) {
	g := &b.graphicsRendition
	switch r {
	case RenditionReset:
		*g = DefaultAttributes()
	case RenditionBold:
		g.Styles |= StyleBold
	case RenditionFaint:
		g.Styles |= StyleFaint
	case RenditionItalic:
		g.Styles |= StyleItalic
	case RenditionUnderline:
		g.Styles |= StyleUnderline
	case RenditionBlinking:
		g.Styles |= StyleBlinking
	case RenditionInverse:
		g.Styles |= StyleInverse
	case RenditionHidden:
		g.Styles |= StyleHidden
	case RenditionCrossedOut:
		g.Styles |= StyleCrossedOut
	case RenditionDoublyUnderlined:
		g.Styles |= StyleDoublyUnderlined
	case RenditionCurlyUnderlined:
		g.Styles |= StyleCurlyUnderlined
	case RenditionDottedUnderline:
		g.Styles |= StyleDottedUnderline
	case RenditionDashedUnderline:
		g.Styles |= StyleDashedUnderline
	case RenditionFramed:
		g.Styles |= StyleFramed
	case RenditionEncircled:
		g.Styles |= StyleEncircled
	case RenditionNormalIntensity:
		g.Styles &^= StyleBold | StyleFaint
	case RenditionNoItalic:
		g.Styles &^= StyleItalic
	case RenditionNoUnderline:
		g.Styles &^= styleAnyUnderline
	case RenditionNoBlinking:
		g.Styles &^= StyleBlinking
	case RenditionNoInverse:
		g.Styles &^= StyleInverse
	case RenditionNoHidden:
		g.Styles &^= StyleHidden
	case RenditionNoCrossedOut:
		g.Styles &^= StyleCrossedOut
	case RenditionNoFramedOrEncircled:
		g.Styles &^= StyleFramed | StyleEncircled
	}
}

// applyMode flips a mode on the active buffer and forwards the
// input-side modes to the collaborator callbacks.
func (s *Screen) applyMode(m Mode, enable bool) {
	if m == ModeUseAlternateScreen {
		s.setBuffer(enable)
		return
	}
	s.buffer().setMode(m, enable)
	switch m {
	case ModeMouseProtocolX10:
		s.handler.mouseProtocol(MouseProtocolX10, enable)
	case ModeMouseProtocolNormal:
		s.handler.mouseProtocol(MouseProtocolNormal, enable)
	case ModeMouseProtocolHighlight:
		s.handler.mouseProtocol(MouseProtocolHighlight, enable)
	case ModeMouseProtocolButton:
		s.handler.mouseProtocol(MouseProtocolButtonTracking, enable)
	case ModeMouseProtocolAny:
		s.handler.mouseProtocol(MouseProtocolAnyEvent, enable)
	case ModeMouseExtended:
		s.forwardMouseTransport(MouseTransportExtended, enable)
	case ModeMouseSGR:
		s.forwardMouseTransport(MouseTransportSGR, enable)
	case ModeMouseURXVT:
		s.forwardMouseTransport(MouseTransportURXVT, enable)
	case ModeMouseAlternateScroll:
		if enable {
			s.handler.mouseWheelMode(MouseWheelApplicationCursorKeys)
		} else {
			s.handler.mouseWheelMode(MouseWheelDefault)
		}
	case ModeBracketedPaste:
		s.handler.bracketedPaste(enable)
	case ModeFocusEvents:
		s.handler.generateFocusEvents(enable)
	case ModeUseApplicationCursorKeys:
		s.handler.applicationCursorKeys(enable)
	}
}

func (s *Screen) forwardMouseTransport(t MouseTransport, enable bool) {
	if enable {
		s.handler.mouseTransport(t)
	} else {
		s.handler.mouseTransport(MouseTransportDefault)
	}
}

// saveModes pushes the current value of each DEC private mode onto its
// XTSAVE stack.
func (s *Screen) saveModes(modes []Mode) {
	for _, m := range modes {
		if !m.Private() {
			continue
		}
		s.savedModes[m] = append(s.savedModes[m], s.IsModeEnabled(m))
	}
}

// restoreModes pops each mode's XTSAVE stack and reapplies the value.
func (s *Screen) restoreModes(modes []Mode) {
	for _, m := range modes {
		stack := s.savedModes[m]
		if len(stack) == 0 {
			continue
		}
		value := stack[len(stack)-1]
		s.savedModes[m] = stack[:len(stack)-1]
		s.applyMode(m, value)
	}
}

// setBuffer switches between the main and the alternate buffer with
// xterm 1049 semantics: entering saves the main cursor state and clears
// the alternate grid; leaving restores the saved state.
func (s *Screen) setBuffer(alternate bool) {
	if alternate == s.IsAlternateScreen() {
		return
	}
	if alternate {
		s.mainBuffer().saveState()
		s.active = 1
		alt := s.buffer()
		alt.graphicsRendition = s.mainBuffer().graphicsRendition
		alt.clearScreen()
		alt.savedStates = alt.savedStates[:0]
		alt.moveCursorTo(Coordinate{Row: 1, Column: 1})
		s.scrollOffset = 0
	} else {
		s.active = 0
		s.mainBuffer().restoreState()
	}
	s.handler.bufferChanged(s.buffer().kind)
}

// resetSoft is DECSTR: interpreter state resets, grid contents stay.
func (s *Screen) resetSoft() {
	b := s.buffer()
	b.graphicsRendition = DefaultAttributes()
	b.autoWrap = true
	b.wrapPending = false
	b.cursorRestrictedToMargin = false
	b.modes.set(ModeOrigin, false)
	b.modes.set(ModeInsert, false)
	b.margin = fullMargin(b.size)
	b.savedStates = b.savedStates[:0]
	b.cursor.Visible = true
	b.modes.set(ModeVisibleCursor, true)
	b.currentHyperlink = nil
	b.moveCursorTo(Coordinate{Row: 1, Column: 1})
}

// resetHard is RIS: soft reset plus cleared grids, scrollback, tab
// stops, window title stack and hyperlinks; the main buffer activates.
func (s *Screen) resetHard() {
	s.buffers[0] = newScreenBuffer(MainBuffer, s.size, s.maxHistory, s.tabWidth)
	s.buffers[1] = newScreenBuffer(AlternateBuffer, s.size, 0, s.tabWidth)
	if s.active != 0 {
		s.active = 0
		s.handler.bufferChanged(MainBuffer)
	}
	s.scrollOffset = 0
	s.windowTitle = ""
	s.titleStack = nil
	s.savedModes = make(map[Mode][]bool)
}

// Resize applies a host-driven window size change to both buffers.
func (s *Screen) Resize(size WindowSize) {
	if size.Rows < 1 {
		size.Rows = 1
	}
	if size.Columns < 1 {
		size.Columns = 1
	}
	s.size = size
	s.buffers[0].resize(size)
	s.buffers[1].resize(size)
	s.clampScrollOffset()
}
