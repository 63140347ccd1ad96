// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asm implements an interactive, single-pass 6502 assembler. Each
// source line is assembled on its own, as soon as it is entered, into a
// 64K program image.
//
// Operands are resolved against a fixed table of 256 instruction patterns.
// A line's operand is replaced by a placeholder whose class (branch,
// one-byte or two-byte) is widened until the table contains a match.
// Symbolic operands are never resolved to addresses; they assemble as zero
// and are kept as label annotations for the listing.
package asm

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultOrigin is the address at which assembly starts when no other
// address is requested.
const DefaultOrigin = 0x2000

// Option type used by NewSession.
type Option uint

// Options for the NewSession function.
const (
	Verbose Option = 1 << iota // log addressing mode resolution
)

// A Session holds the state of an interactive assembly: the program image,
// the write cursor and the per-address annotations. A session is not safe
// for concurrent use.
type Session struct {
	origin   uint16            // address of the first assembled byte
	cursor   uint16            // address of the next free byte
	image    *Image            // assembled machine code
	comments map[uint16]string // instruction address -> source line
	labels   map[uint16]string // instruction address -> symbolic operand
	out      io.Writer         // output used for verbose output
	verbose  bool              // verbose output
}

// NewSession creates an empty assembly session starting at the origin
// address. Verbose output is written to 'out', or to the standard error if
// 'out' is nil.
func NewSession(origin uint16, out io.Writer, options Option) *Session {
	if out == nil {
		out = os.Stderr
	}
	return &Session{
		origin:   origin,
		cursor:   origin,
		image:    NewImage(),
		comments: make(map[uint16]string),
		labels:   make(map[uint16]string),
		out:      out,
		verbose:  (options & Verbose) != 0,
	}
}

// Assemble assembles a single line of source code at the cursor. On
// success the machine code is stored in the image, the line is recorded as
// the instruction's comment and the cursor advances past the instruction.
// On failure nothing is changed.
func (s *Session) Assemble(text string) error {
	text = strings.ToUpper(text)

	line, err := Normalize(text)
	if err != nil {
		s.log("%04X  %v", s.cursor, err)
		return err
	}

	o := resolveOperand(line.Operand)
	e, err := s.match(&line, o)
	if err != nil {
		return err
	}

	comment := text
	if o.symbolic() && e.label != o.label {
		comment = strings.Replace(comment, o.label, e.label, 1)
	}

	s.emit(e, comment)
	return nil
}

// Store an encoded instruction at the cursor along with its annotations,
// and advance the cursor.
func (s *Session) emit(e encoding, comment string) {
	addr := s.cursor
	s.comments[addr] = comment
	if e.label != "" {
		s.labels[addr] = e.label
	}

	s.image.StoreBytes(addr, e.code)
	s.cursor += uint16(len(e.code))
	s.log("%04X-   %-8s    %s", addr, byteString(e.code), comment)
}

// Origin returns the address at which the session started.
func (s *Session) Origin() uint16 {
	return s.origin
}

// Cursor returns the address of the next byte to be assembled.
func (s *Session) Cursor() uint16 {
	return s.cursor
}

// Image returns the session's program image.
func (s *Session) Image() *Image {
	return s.image
}

// Code returns a copy of the machine code assembled so far.
func (s *Session) Code() []byte {
	b := make([]byte, s.cursor-s.origin)
	s.image.LoadBytes(s.origin, b)
	return b
}

// Comment returns the source line of the instruction starting at addr.
func (s *Session) Comment(addr uint16) (string, bool) {
	c, ok := s.comments[addr]
	return c, ok
}

// Label returns the symbolic operand of the instruction starting at addr.
func (s *Session) Label(addr uint16) (string, bool) {
	l, ok := s.labels[addr]
	return l, ok
}

// SetVerbose turns verbose output on or off.
func (s *Session) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// In verbose mode, log a formatted line.
func (s *Session) log(format string, args ...any) {
	if s.verbose {
		fmt.Fprintf(s.out, format, args...)
		fmt.Fprintf(s.out, "\n")
	}
}
