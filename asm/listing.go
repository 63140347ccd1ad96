// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"bufio"
	"fmt"
	"io"
)

// WriteListing writes the machine code assembled so far as a bracketed
// list of byte values. Operand bytes of instructions with a symbolic
// operand are replaced by the label, and each instruction's source line
// follows its bytes as a comment.
func (s *Session) WriteListing(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "[")

	var pending string
	var hasPending bool

	n := int(s.cursor - s.origin)
	for i := 0; i < n; i++ {
		addr := s.origin + uint16(i)
		if c, ok := s.comments[addr]; ok {
			if hasPending {
				fmt.Fprintf(bw, "\t; %s\n", pending)
			}
			pending, hasPending = c, true
		}

		fmt.Fprintf(bw, " $%02X", s.image.LoadByte(addr))

		if l, ok := s.labels[addr]; ok {
			// A marked label stands in for a single operand byte.
			if l[0] == zeroPageMarker {
				fmt.Fprintf(bw, " %s", l[1:])
				i++
			} else {
				fmt.Fprintf(bw, " %s", l)
				i += 2
			}
		}
	}
	if hasPending {
		fmt.Fprintf(bw, "\t; %s\n", pending)
	}

	fmt.Fprintln(bw, "]")
	return bw.Flush()
}
