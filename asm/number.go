// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strconv"

	"github.com/pkg/errors"
)

// ParseNumber parses a non-negative 16-bit value from a hexadecimal literal
// prefixed with '$' or from a decimal literal.
func ParseNumber(s string) (uint16, error) {
	base, digits := 10, s
	if len(s) > 0 && s[0] == '$' {
		base, digits = 16, s[1:]
	}

	// strconv tolerates a leading sign; the literal grammar does not.
	if digits == "" || !digitsOnly(digits, base) {
		return 0, errors.Wrapf(ErrInvalidNumber, "'%s'", s)
	}

	v, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "'%s'", s)
	}
	return uint16(v), nil
}

func digitsOnly(s string, base int) bool {
	fn := decimal
	if base == 16 {
		fn = hexadecimal
	}
	for i := 0; i < len(s); i++ {
		if !fn(s[i]) {
			return false
		}
	}
	return true
}
