// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/vtscreen-term/main.go
// Summary: Demo host: runs a shell on a PTY through the screen core and
//          draws it with tcell.
// Usage: go run ./cmd/vtscreen-term [-shell /bin/sh] [-history 5000]
// Notes: Keyboard handling is deliberately minimal; this binary exists
//        to exercise the full pipeline, not to replace a terminal.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"

	"github.com/creack/pty"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/vtscreen/render"
	"github.com/framegrace/vtscreen/screen"
	"github.com/framegrace/vtscreen/sequencer"
)

func main() {
	shell := flag.String("shell", defaultShell(), "shell to run")
	history := flag.Int("history", 5000, "scrollback line limit (0 = unbounded)")
	trace := flag.Bool("trace", false, "log unhandled sequences")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "vtscreen-term: stdin is not a terminal")
		os.Exit(1)
	}

	if err := run(*shell, *history, *trace); err != nil {
		fmt.Fprintln(os.Stderr, "vtscreen-term:", err)
		os.Exit(1)
	}
}

func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

func run(shell string, history int, trace bool) error {
	ts, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open display: %w", err)
	}
	if err := ts.Init(); err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer ts.Fini()

	cols, rows := ts.Size()
	size := screen.WindowSize{Rows: rows, Columns: cols}

	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return fmt.Errorf("start shell: %w", err)
	}
	defer ptmx.Close()

	var (
		mu            sync.Mutex
		appCursorKeys bool
	)
	handler := &screen.EventHandler{
		Reply: func(data string) {
			if _, err := ptmx.WriteString(data); err != nil {
				log.Printf("reply write failed: %v", err)
			}
		},
		Bell: func() { ts.Beep() },
		OnWindowTitleChanged: func(title string) {
			ts.SetTitle(title)
		},
		UseApplicationCursorKeys: func(enable bool) { appCursorKeys = enable },
	}
	scr := screen.New(size, handler,
		screen.WithMaxHistoryLineCount(history),
		screen.WithLogTrace(trace),
	)
	seq := sequencer.New(sequencer.WithLogTrace(trace))
	profile := render.DefaultProfile()

	redraw := make(chan struct{}, 1)
	requestRedraw := func() {
		select {
		case redraw <- struct{}{}:
		default:
		}
	}

	done := make(chan error, 1)
	go func() {
		buf := make([]byte, 32*1024)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				batch := seq.Decode(buf[:n])
				mu.Lock()
				scr.Write(batch...)
				mu.Unlock()
				requestRedraw()
			}
			if err != nil {
				if err != io.EOF {
					done <- err
				} else {
					done <- nil
				}
				return
			}
		}
	}()

	events := make(chan tcell.Event, 16)
	go ts.ChannelEvents(events, nil)

	for {
		select {
		case err := <-done:
			return err
		case <-redraw:
			mu.Lock()
			render.Draw(scr, profile, ts)
			mu.Unlock()
			ts.Show()
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				w, h := e.Size()
				mu.Lock()
				scr.Resize(screen.WindowSize{Rows: h, Columns: w})
				mu.Unlock()
				if err := pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)}); err != nil {
					log.Printf("pty resize failed: %v", err)
				}
				ts.Sync()
				requestRedraw()
			case *tcell.EventKey:
				mu.Lock()
				appKeys := appCursorKeys
				mu.Unlock()
				if data := encodeKey(e, appKeys); len(data) > 0 {
					if _, err := ptmx.Write(data); err != nil {
						return fmt.Errorf("pty write: %w", err)
					}
				}
			}
		}
	}
}

// encodeKey translates a tcell key event into the byte sequence a VT
// application expects.
func encodeKey(e *tcell.EventKey, appCursorKeys bool) []byte {
	arrow := func(final byte) []byte {
		if appCursorKeys {
			return []byte{0x1b, 'O', final}
		}
		return []byte{0x1b, '[', final}
	}
	switch e.Key() {
	case tcell.KeyRune:
		return []byte(string(e.Rune()))
	case tcell.KeyEnter:
		return []byte{'\r'}
	case tcell.KeyTab:
		return []byte{'\t'}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []byte{0x7f}
	case tcell.KeyEscape:
		return []byte{0x1b}
	case tcell.KeyUp:
		return arrow('A')
	case tcell.KeyDown:
		return arrow('B')
	case tcell.KeyRight:
		return arrow('C')
	case tcell.KeyLeft:
		return arrow('D')
	case tcell.KeyHome:
		return []byte("\x1b[H")
	case tcell.KeyEnd:
		return []byte("\x1b[F")
	case tcell.KeyPgUp:
		return []byte("\x1b[5~")
	case tcell.KeyPgDn:
		return []byte("\x1b[6~")
	case tcell.KeyDelete:
		return []byte("\x1b[3~")
	case tcell.KeyCtrlA, tcell.KeyCtrlB, tcell.KeyCtrlC, tcell.KeyCtrlD,
		tcell.KeyCtrlE, tcell.KeyCtrlF, tcell.KeyCtrlG,
		tcell.KeyCtrlJ, tcell.KeyCtrlK, tcell.KeyCtrlL,
		tcell.KeyCtrlN, tcell.KeyCtrlO, tcell.KeyCtrlP, tcell.KeyCtrlQ,
		tcell.KeyCtrlR, tcell.KeyCtrlS, tcell.KeyCtrlT, tcell.KeyCtrlU,
		tcell.KeyCtrlV, tcell.KeyCtrlW, tcell.KeyCtrlX, tcell.KeyCtrlY,
		tcell.KeyCtrlZ:
		return []byte{byte(e.Key())}
	}
	return nil
}
