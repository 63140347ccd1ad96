// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strings"

	"github.com/pkg/errors"
)

const mnemonicLength = 3

// A Line is a source line converted into the format of the instruction
// table. The operand, if any, is replaced in the pattern by a single
// placeholder whose class is chosen during matching.
type Line struct {
	Mnemonic    string // first three characters of the line
	Operand     string // raw operand text, empty if there is none
	Accumulator bool   // operand text is exactly "A"
	head        string // pattern text preceding the placeholder
	tail        string // pattern text following the placeholder
}

// HasOperand returns true if the line contains an operand.
func (l *Line) HasOperand() bool {
	return l.Operand != ""
}

// Pattern returns the line's canonical pattern with the operand placeholder
// set to class c. Lines without an operand ignore c.
func (l *Line) Pattern(c Class) string {
	if !l.HasOperand() {
		return l.head
	}
	return l.head + string(rune(c)) + l.tail
}

// Normalize converts an upper-cased source line into a Line. It fails only
// when a second operand token follows the first.
func Normalize(text string) (Line, error) {
	n := min(mnemonicLength, len(text))
	line := Line{Mnemonic: text[:n]}

	var b strings.Builder
	b.WriteString(line.Mnemonic)
	b.WriteByte(' ')

	slot := -1
	for s := newFstring(text).consume(n); !s.isEmpty(); {
		c := s.peek()
		switch {
		case whitespace(c):
			s = s.consume(1)

		case syntaxChar(c):
			line.Accumulator = false
			b.WriteByte(c)
			s = s.consume(1)

		case slot >= 0:
			if !indexChar(c) {
				return Line{}, errors.Wrapf(ErrInvalidInstruction, "unexpected '%c' at column %d", c, s.column+1)
			}
			b.WriteByte(c)
			s = s.consume(1)

		default:
			var operand fstring
			operand, s = s.consumeRun(operandDelimiter)
			line.Operand = operand.str
			line.Accumulator = operand.str == "A"
			slot = b.Len()
			b.WriteByte(byte(ClassRelative))
		}
	}

	p := b.String()
	if slot < 0 {
		line.head = strings.TrimSuffix(p, " ")
	} else {
		line.head, line.tail = p[:slot], p[slot+1:]
	}
	return line, nil
}
