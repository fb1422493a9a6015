// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ht16k33

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// BlinkRate selects the blink divisor of the display.
type BlinkRate byte

const (
	// BlinkOff disables blinking. This is the power-on default.
	BlinkOff BlinkRate = iota
	// Blink2Hz blinks the display at 2Hz.
	Blink2Hz
	// Blink1Hz blinks the display at 1Hz.
	Blink1Hz
	// BlinkHalfHz blinks the display at 0.5Hz.
	BlinkHalfHz
)

const (
	// DefaultAddress is the factory I2C address of the HT16K33. Solder
	// jumpers A0-A2 move it up to 0x77.
	DefaultAddress uint16 = 0x70
	// Digits is the number of 14-segment cells on the display.
	Digits = 4
)

// Command bytes from the datasheet. System setup bit 0 enables the
// internal oscillator, which gates every other operation of the chip.
// Display setup bit 0 turns the LEDs on and bits 1-2 select the blink
// divisor. The low nibble of the dimming command is the brightness level.
const (
	_SYSTEM_SETUP  byte = 0x20
	_OSCILLATOR_ON byte = 0x01
	_DISPLAY_SETUP byte = 0x80
	_DISPLAY_ON    byte = 0x01
	_BRIGHTNESS    byte = 0xE0
)

const (
	// Highest valid 7-bit address on the bus.
	_MAX_ADDRESS uint16 = 0x77
	// Bytes of display RAM backing the 4 cells, 2 per cell.
	_RAM_SIZE = 2 * Digits
)

// ErrClosed is returned by every command issued after Halt.
var ErrClosed = errors.New("ht16k33: device is closed")

// ErrInvalidPosition is returned for a cell position outside [0,4).
var ErrInvalidPosition = errors.New("ht16k33: invalid display position")

// ErrInvalidBrightness is returned for a brightness level outside [0,16).
var ErrInvalidBrightness = errors.New("ht16k33: invalid brightness level")

// ErrTextTooLong is returned when a string does not fit on the display
// from the requested position.
var ErrTextTooLong = errors.New("ht16k33: text does not fit on display")

var errInvalidAddress = errors.New("ht16k33: invalid device address")
var errInvalidBlink = errors.New("ht16k33: invalid blink rate")

func wrap(err error) error {
	return fmt.Errorf("ht16k33: %w", err)
}

// Dev represents an HT16K33 driving a 4-cell 14-segment display.
type Dev struct {
	d *i2c.Dev
	// Set when the device was built by Open and owns the bus.
	bus i2c.BusCloser
	// Host side cursor for the display.TextDisplay interface.
	col    int
	closed bool
}

// New returns a Dev ready for use on the supplied bus. It enables the
// chip's internal oscillator. The caller retains ownership of the bus.
func New(bus i2c.Bus, addr uint16) (*Dev, error) {
	if addr > _MAX_ADDRESS {
		return nil, errInvalidAddress
	}
	d := &Dev{d: &i2c.Dev{Bus: bus, Addr: addr}}
	if err := d.command(_SYSTEM_SETUP | _OSCILLATOR_ON); err != nil {
		return nil, err
	}
	return d, nil
}

// Open opens the named I2C bus through i2creg and returns a Dev that owns
// it: Halt releases the bus. An empty busName selects the first available
// bus. host.Init must have been called first.
func Open(busName string, addr uint16) (*Dev, error) {
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, wrap(err)
	}
	d, err := New(bus, addr)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}
	d.bus = bus
	return d, nil
}

// Halt turns the oscillator off and, if the device was built by Open,
// closes the bus. After Halt every command returns ErrClosed. Calling
// Halt twice is a no-op. Implements conn.Resource.
func (d *Dev) Halt() error {
	if d.closed {
		return nil
	}
	err := d.command(_SYSTEM_SETUP)
	d.closed = true
	if d.bus != nil {
		if cerr := d.bus.Close(); err == nil && cerr != nil {
			err = wrap(cerr)
		}
		d.bus = nil
	}
	return err
}

// Display turns the LEDs on or off. The oscillator keeps running, so the
// display content and brightness survive an off/on cycle. Turning the
// display on also resets the blink rate to BlinkOff.
func (d *Dev) Display(on bool) error {
	cmd := _DISPLAY_SETUP
	if on {
		cmd |= _DISPLAY_ON
	}
	return d.command(cmd)
}

// SetBlink sets the blink rate of the whole display and turns it on.
func (d *Dev) SetBlink(rate BlinkRate) error {
	if rate > BlinkHalfHz {
		return errInvalidBlink
	}
	return d.command(_DISPLAY_SETUP | _DISPLAY_ON | byte(rate)<<1)
}

// SetBrightness sets the duty cycle of the LED drivers. level ranges from
// 0 (dimmest) to 15 (brightest). Level 0 does not turn the display off.
func (d *Dev) SetBrightness(level int) error {
	if level < 0 || level > 0x0f {
		return ErrInvalidBrightness
	}
	return d.command(_BRIGHTNESS | byte(level))
}

// Clear extinguishes all four cells in a single display RAM write.
func (d *Dev) Clear() error {
	w := make([]byte, _RAM_SIZE+1)
	return d.tx(w)
}

// Fill lights every segment of every cell, decimal points included.
func (d *Dev) Fill() error {
	w := make([]byte, _RAM_SIZE+1)
	for i := 1; i < len(w); i++ {
		w[i] = 0xFF
	}
	return d.tx(w)
}

// WriteGlyph writes one segment bitmask to the cell at pos.
func (d *Dev) WriteGlyph(pos int, g Glyph) error {
	if pos < 0 || pos >= Digits {
		return ErrInvalidPosition
	}
	lo, hi := g.bytes()
	return d.tx([]byte{byte(pos * 2), lo, hi})
}

// WriteChar renders a single character at pos, optionally with its
// decimal point lit. Unsupported characters render blank.
func (d *Dev) WriteChar(pos int, r rune, dot bool) error {
	g := GlyphFor(r)
	if dot {
		g = g.WithDecimalPoint()
	}
	return d.WriteGlyph(pos, g)
}

// WriteAt renders text left to right starting at the cell at pos, as a
// single display RAM write. A '.' does not use a cell of its own: it
// lights the decimal point of the preceding cell, so "3.14" covers three
// cells. Text that does not fit returns ErrTextTooLong without touching
// the display.
func (d *Dev) WriteAt(pos int, text string) error {
	if pos < 0 || pos >= Digits {
		return ErrInvalidPosition
	}
	gs := render(text)
	if pos+len(gs) > Digits {
		return ErrTextTooLong
	}
	if len(gs) == 0 {
		return nil
	}
	w := make([]byte, 0, 1+2*len(gs))
	w = append(w, byte(pos*2))
	for _, g := range gs {
		lo, hi := g.bytes()
		w = append(w, lo, hi)
	}
	return d.tx(w)
}

// render turns text into one glyph per display cell, folding a '.' into
// the decimal point of the cell before it. A leading '.', or one whose
// preceding cell already has its point lit, gets a cell of its own.
func render(text string) []Glyph {
	gs := make([]Glyph, 0, len(text))
	for _, r := range text {
		if r == '.' {
			if n := len(gs); n > 0 && gs[n-1]&DecimalPoint == 0 {
				gs[n-1] = gs[n-1].WithDecimalPoint()
			} else {
				gs = append(gs, DecimalPoint)
			}
			continue
		}
		gs = append(gs, GlyphFor(r))
	}
	return gs
}

// command writes a single command byte to the chip.
func (d *Dev) command(cmd byte) error {
	return d.tx([]byte{cmd})
}

func (d *Dev) tx(w []byte) error {
	if d.closed {
		return ErrClosed
	}
	if err := d.d.Tx(w, nil); err != nil {
		return wrap(err)
	}
	return nil
}

//
// display.TextDisplay. The HT16K33 has no hardware cursor; the cursor
// lives on the host and only selects where Write and WriteString land.
//

// AutoScroll is not supported on a 4-cell display.
func (d *Dev) AutoScroll(enabled bool) error {
	return wrap(display.ErrNotImplemented)
}

// Cols returns the number of display cells.
func (d *Dev) Cols() int {
	return Digits
}

// Rows returns the number of display rows.
func (d *Dev) Rows() int {
	return 1
}

// MinCol returns the first cell position.
func (d *Dev) MinCol() int {
	return 0
}

// MinRow returns the only row.
func (d *Dev) MinRow() int {
	return 0
}

// Cursor modes are not supported, the chip has no cursor segments.
func (d *Dev) Cursor(mode ...display.CursorMode) error {
	return wrap(display.ErrNotImplemented)
}

// Home moves the cursor to the first cell.
func (d *Dev) Home() error {
	return d.MoveTo(d.MinRow(), d.MinCol())
}

// Move moves the cursor one cell forward or backward.
func (d *Dev) Move(dir display.CursorDirection) error {
	switch dir {
	case display.Forward:
		if d.col >= Digits-1 {
			return ErrInvalidPosition
		}
		d.col++
	case display.Backward:
		if d.col <= 0 {
			return ErrInvalidPosition
		}
		d.col--
	default:
		return wrap(display.ErrNotImplemented)
	}
	return nil
}

// MoveTo moves the cursor to an arbitrary cell.
func (d *Dev) MoveTo(row, col int) error {
	if row != 0 || col < 0 || col >= Digits {
		return ErrInvalidPosition
	}
	d.col = col
	return nil
}

// Write renders p as characters at the cursor and advances it. Returns
// the number of bytes consumed.
func (d *Dev) Write(p []byte) (int, error) {
	text := string(p)
	if err := d.WriteAt(d.col, text); err != nil {
		return 0, err
	}
	d.col += len(render(text))
	if d.col > Digits-1 {
		d.col = Digits - 1
	}
	return len(p), nil
}

// WriteString renders text at the cursor and advances it.
func (d *Dev) WriteString(text string) (int, error) {
	return d.Write([]byte(text))
}

func (d *Dev) String() string {
	return fmt.Sprintf("ht16k33: %s", d.d.String())
}

var _ display.TextDisplay = &Dev{}
var _ conn.Resource = &Dev{}
