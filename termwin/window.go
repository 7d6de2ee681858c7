// seehuhn.de/go/svgmesh - tessellate SVG drawings into triangle meshes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package termwin shows the frames of the viewer in a terminal.
//
// Every character cell displays two pixels, using the upper half block
// character with the foreground color for the upper pixel and the
// background color for the lower pixel.  Keyboard input is read in raw
// mode; the arrow keys, the square brackets and escape are recognised.
package termwin

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"seehuhn.de/go/svgmesh"
	"seehuhn.de/go/svgmesh/viewer"
)

// ErrNotTerminal is returned by [Open] if the input or output is not a
// terminal.
var ErrNotTerminal = errors.New("termwin: not a terminal")

// Config holds the settings of a terminal window.
type Config struct {
	// In and Out are the terminal streams.
	// Default: os.Stdin and os.Stdout
	In, Out *os.File

	// FrameInterval is the minimum time between two frames.
	// Default: 1/30 second
	FrameInterval time.Duration
}

// DefaultConfig returns the settings for the terminal of the process.
func DefaultConfig() Config {
	return Config{
		In:            os.Stdin,
		Out:           os.Stdout,
		FrameInterval: time.Second / 30,
	}
}

// WithFrameInterval returns a copy of c with the given frame interval.
func (c Config) WithFrameInterval(d time.Duration) Config {
	c.FrameInterval = d
	return c
}

// Window is a terminal used as a drawing surface.  It implements
// [viewer.Window] and the sink interface of the software device.
type Window struct {
	inFd, outFd int
	oldState    *term.State
	out         *termenv.Output
	ticker      *time.Ticker

	input   chan []byte
	pending []byte
	stale   bool // pending was already present at the previous poll

	cols, rows int
	buf        bytes.Buffer
	closed     bool
}

// Open switches the terminal to raw mode and the alternate screen.
// The terminal is restored by Close.
func Open(cfg Config) (*Window, error) {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultConfig().FrameInterval
	}

	inFd, outFd := int(cfg.In.Fd()), int(cfg.Out.Fd())
	if !term.IsTerminal(inFd) || !term.IsTerminal(outFd) {
		return nil, ErrNotTerminal
	}
	cols, rows, err := term.GetSize(outFd)
	if err != nil {
		return nil, fmt.Errorf("termwin: get size: %w", err)
	}

	oldState, err := term.MakeRaw(inFd)
	if err != nil {
		return nil, fmt.Errorf("termwin: enable raw mode: %w", err)
	}

	out := termenv.NewOutput(cfg.Out)
	out.AltScreen()
	out.HideCursor()
	out.ClearScreen()

	w := &Window{
		inFd:     inFd,
		outFd:    outFd,
		oldState: oldState,
		out:      out,
		ticker:   time.NewTicker(cfg.FrameInterval),
		input:    make(chan []byte, 64),
		cols:     cols,
		rows:     rows,
	}
	go readInput(cfg.In, w.input)

	svgmesh.Logger().Debug("terminal opened",
		slog.Int("cols", cols),
		slog.Int("rows", rows),
		slog.String("profile", profileName(out.Profile)))
	return w, nil
}

// readInput copies r to ch until a read fails.  The goroutine cannot be
// interrupted while it waits for input; it ends with the process.
func readInput(r io.Reader, ch chan<- []byte) {
	for {
		buf := make([]byte, 64)
		n, err := r.Read(buf)
		if n > 0 {
			ch <- buf[:n]
		}
		if err != nil {
			close(ch)
			return
		}
	}
}

// PollEvents returns the key presses and size changes since the last call.
// It does not block.
func (w *Window) PollEvents() []viewer.Event {
	var events []viewer.Event

	received := false
	inputClosed := false
drain:
	for {
		select {
		case data, ok := <-w.input:
			if !ok {
				inputClosed = true
				break drain
			}
			w.pending = append(w.pending, data...)
			received = true
		default:
			break drain
		}
	}

	if len(w.pending) > 0 {
		final := w.stale && !received
		keys, n := decodeKeys(w.pending, final || inputClosed)
		events = append(events, keys...)
		w.pending = append(w.pending[:0], w.pending[n:]...)
		w.stale = len(w.pending) > 0
	}
	if inputClosed {
		w.input = nil
		events = append(events, viewer.CloseEvent())
	}

	if cols, rows, err := term.GetSize(w.outFd); err == nil && (cols != w.cols || rows != w.rows) {
		w.cols, w.rows = cols, rows
		width, height := w.Size()
		events = append(events, viewer.ResizeEvent(width, height))
		svgmesh.Logger().Debug("terminal resized", slog.Int("cols", cols), slog.Int("rows", rows))
	}
	return events
}

// Size returns the drawable size in pixels: one pixel per column and two
// pixels per row.
func (w *Window) Size() (width, height int) {
	return max(w.cols, 1), 2 * max(w.rows, 1)
}

// Show draws img on the terminal.  It waits for the next tick of the
// frame clock before writing.
func (w *Window) Show(img *image.RGBA) error {
	if w.closed {
		return errors.New("termwin: window closed")
	}
	<-w.ticker.C

	w.buf.Reset()
	encodeFrame(&w.buf, w.out.Profile, img, w.cols, w.rows)
	_, err := w.out.Write(w.buf.Bytes())
	return err
}

// Close restores the terminal.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.ticker.Stop()
	w.out.Reset()
	w.out.ShowCursor()
	w.out.ExitAltScreen()
	return term.Restore(w.inFd, w.oldState)
}

const upperHalfBlock = "▀"

// encodeFrame writes the escape sequences which draw img into cols x rows
// character cells.  Color sequences are only emitted when the colors change.
func encodeFrame(buf *bytes.Buffer, profile termenv.Profile, img *image.RGBA, cols, rows int) {
	b := img.Bounds()
	cols = min(cols, b.Dx())
	rows = min(rows, (b.Dy()+1)/2)

	var lastFg, lastBg color.RGBA
	for row := range rows {
		fmt.Fprintf(buf, "%s%d;1H", termenv.CSI, row+1)
		first := true
		for col := range cols {
			x, y := b.Min.X+col, b.Min.Y+2*row
			fg := img.RGBAAt(x, y)
			bg := fg
			if y+1 < b.Max.Y {
				bg = img.RGBAAt(x, y+1)
			}
			if first || fg != lastFg {
				writeColor(buf, profile, fg, false)
				lastFg = fg
			}
			if first || bg != lastBg {
				writeColor(buf, profile, bg, true)
				lastBg = bg
			}
			first = false
			buf.WriteString(upperHalfBlock)
		}
		buf.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	}
}

func writeColor(buf *bytes.Buffer, profile termenv.Profile, c color.RGBA, background bool) {
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	seq := profile.Color(hex).Sequence(background)
	if seq == "" {
		return
	}
	buf.WriteString(termenv.CSI + seq + "m")
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}
