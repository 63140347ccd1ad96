// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "github.com/pkg/errors"

// An encoding is the machine code selected for a single line.
type encoding struct {
	opcode byte   // selected opcode
	class  Class  // operand class of the selected pattern
	code   []byte // opcode followed by operand bytes
	label  string // label annotation, if any
}

// Shift and rotate instructions accept both "XXX" (accumulator) and
// "XXX 1" (zero page), so an operand spelled "A" is ambiguous for them.
func shiftRotate(mnemonic string) bool {
	switch mnemonic {
	case "ASL", "LSR", "ROL", "ROR":
		return true
	default:
		return false
	}
}

// Return the operand class to try after a failed lookup at class c. The
// second return value is false when there is no wider class.
func escalate(c Class, l *Line, o *operand) (Class, bool) {
	switch c {
	case ClassRelative:
		switch {
		case o.symbolic():
			// The accumulator shorthand is exempt so that the ambiguity
			// can be reported at one-byte width.
			if o.zeroPage() || (l.Accumulator && shiftRotate(l.Mnemonic)) {
				return ClassByte, true
			}
			return ClassWord, true
		case o.value > 0xff:
			return ClassWord, true
		default:
			return ClassByte, true
		}
	case ClassByte:
		return ClassWord, true
	default:
		return c, false
	}
}

// Select the machine code for a normalized line and its operand. Lines with
// operands are first tried as branches, then at one-byte width, then at
// two-byte width, widening only when the table lacks a narrower form, the
// value doesn't fit in a byte, or a label requires it.
func (s *Session) match(l *Line, o operand) (encoding, error) {
	if !l.HasOperand() {
		p := l.Pattern(ClassNone)
		opcode, ok := Lookup(p)
		if !ok {
			s.log("%04X  %-12s not found", s.cursor, p)
			return encoding{}, ErrInvalidInstruction
		}
		s.log("%04X  %-12s Opcode:%02X", s.cursor, p, opcode)
		return s.encode(l, o, ClassNone, opcode)
	}

	c := ClassRelative
	for {
		p := l.Pattern(c)
		if opcode, ok := Lookup(p); ok {
			s.log("%04X  %-12s Opcode:%02X Class:%s", s.cursor, p, opcode, c)
			return s.encode(l, o, c, opcode)
		}
		s.log("%04X  %-12s not found", s.cursor, p)

		next, ok := escalate(c, l, &o)
		if !ok {
			return encoding{}, ErrInvalidInstruction
		}

		// A marked label that still has to widen no longer needs its marker.
		if next == ClassWord && o.zeroPage() {
			o.label = o.label[1:]
			s.log("%04X  label widened to '%s'", s.cursor, o.label)
		}
		c = next
	}
}

// Encode the selected opcode and operand at the current cursor.
func (s *Session) encode(l *Line, o operand, c Class, opcode byte) (encoding, error) {
	e := encoding{opcode: opcode, class: c, label: o.label}

	switch c {
	case ClassNone:
		e.code = []byte{opcode}

	case ClassRelative:
		if o.symbolic() {
			return encoding{}, ErrLabelInBranch
		}
		offset, err := relOffset(o.value, s.cursor+2)
		if err != nil {
			return encoding{}, err
		}
		e.code = []byte{opcode, offset}

	case ClassByte:
		if l.Accumulator && shiftRotate(l.Mnemonic) {
			return encoding{}, &AmbiguityError{Mnemonic: l.Mnemonic}
		}
		e.code = []byte{opcode, byte(o.value)}

	case ClassWord:
		e.code = append([]byte{opcode}, toBytes(2, int(o.value))...)

	default:
		return encoding{}, errors.Errorf("invalid operand class %d", c)
	}
	return e, nil
}

// Compute the relative offset of a branch target from the address of the
// instruction following the branch, as a two's-complement byte value.
// Addresses wrap at 16 bits. If the offset can't fit into a byte, return an
// error.
func relOffset(target, next uint16) (byte, error) {
	diff := int16(target - next)
	if diff < -128 || diff > 127 {
		return 0, ErrBranchOutOfRange
	}
	return byte(diff), nil
}
