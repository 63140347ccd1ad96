// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// A label beginning with the zero-page marker keeps its instruction at
// one-byte operand width. Any other label forces a two-byte operand.
const zeroPageMarker = '0'

// An operand is the resolved form of a line's operand text. Symbolic
// operands are never resolved to an address; they encode as zero and are
// carried along as a label annotation.
type operand struct {
	value uint16 // numeric value, zero for symbolic operands
	label string // symbolic operand text, empty for numeric operands
}

func resolveOperand(text string) operand {
	if text == "" {
		return operand{}
	}
	v, err := ParseNumber(text)
	if err != nil {
		return operand{label: text}
	}
	return operand{value: v}
}

func (o *operand) symbolic() bool {
	return o.label != ""
}

// Return true if the operand is a symbolic label carrying the zero-page
// marker.
func (o *operand) zeroPage() bool {
	return o.symbolic() && o.label[0] == zeroPageMarker
}
