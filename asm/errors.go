// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors reported while assembling a line. None of them is fatal to a
// session; the line is simply discarded.
var (
	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrLabelInBranch      = errors.New("labels not allowed in branches")
	ErrBranchOutOfRange   = errors.New("branch out of range (give destination address as argument)")
	ErrInvalidNumber      = errors.New("invalid number")
)

// An AmbiguityError is returned when a shift or rotate instruction is given
// the operand "A", which could mean either accumulator or zero-page
// addressing.
type AmbiguityError struct {
	Mnemonic string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("\"%s A\" is ambiguous.\n"+
		"Use \"%s\" for accumulator mode or \"%s 0A\" for zeropage mode.",
		e.Mnemonic, e.Mnemonic, e.Mnemonic)
}
