// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		text        string
		pattern     string
		operand     string
		accumulator bool
	}{
		{"CLC", "CLC", "", false},
		{"NO", "NO", "", false},
		{"LDA #$10", "LDA #0", "$10", false},
		{"LDA $10,X", "LDA 0,X", "$10", false},
		{"LDA ($10),Y", "LDA (0),Y", "$10", false},
		{"LDA ( $10 , X )", "LDA (0,X)", "$10", false},
		{"LDA\t$1234", "LDA 0", "$1234", false},
		{"ASL A", "ASL 0", "A", true},
		{"ASL A,X", "ASL 0,X", "A", false},
		{"ASL (A)", "ASL (0)", "A", false},
		{"ASL AB", "ASL 0", "AB", false},
		{"ASL @", "ASL 0", "@", false},
		{"LDA 0FOO", "LDA 0", "0FOO", false},
		{"ESCAPE", "ESC 0", "APE", false},
		{"LDA #$FF  ", "LDA #0", "$FF", false},
	}

	for _, test := range tests {
		l, err := Normalize(test.text)
		if err != nil {
			t.Errorf("'%s': unexpected error: %v", test.text, err)
			continue
		}
		if p := l.Pattern(ClassRelative); p != test.pattern {
			t.Errorf("'%s': pattern incorrect. exp: '%s', got: '%s'", test.text, test.pattern, p)
		}
		if l.Operand != test.operand {
			t.Errorf("'%s': operand incorrect. exp: '%s', got: '%s'", test.text, test.operand, l.Operand)
		}
		if l.Accumulator != test.accumulator {
			t.Errorf("'%s': accumulator flag incorrect. exp: %v, got: %v", test.text, test.accumulator, l.Accumulator)
		}
	}
}

func TestNormalizeClasses(t *testing.T) {
	l, err := Normalize("LDA $1234,Y")
	if err != nil {
		t.Fatal(err)
	}

	exp := map[Class]string{
		ClassRelative: "LDA 0,Y",
		ClassByte:     "LDA 1,Y",
		ClassWord:     "LDA 2,Y",
	}
	for c, p := range exp {
		if got := l.Pattern(c); got != p {
			t.Errorf("Pattern(%s) incorrect. exp: '%s', got: '%s'", c, p, got)
		}
	}
}

func TestNormalizeErrors(t *testing.T) {
	lines := []string{
		"LDA $10 $20",
		"LDA 12$34",
		"LDA FOO,Z",
		"LDA 1 2",
		"ESCAPE #$10",
	}

	for _, line := range lines {
		_, err := Normalize(line)
		if err == nil {
			t.Errorf("'%s': expected error", line)
			continue
		}
		if errors.Cause(err) != ErrInvalidInstruction {
			t.Errorf("'%s': unexpected error: %v", line, err)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		s   string
		v   uint16
		bad bool
	}{
		{"$10", 0x10, false},
		{"$ffff", 0xffff, false},
		{"$0", 0, false},
		{"16", 16, false},
		{"65535", 65535, false},
		{"0012", 12, false},
		{"$", 0, true},
		{"", 0, true},
		{"$10000", 0, true},
		{"65536", 0, true},
		{"1F", 0, true},
		{"-1", 0, true},
		{"$+1", 0, true},
		{"FOO", 0, true},
	}

	for _, test := range tests {
		v, err := ParseNumber(test.s)
		switch {
		case test.bad && err == nil:
			t.Errorf("'%s': expected error, got $%04X", test.s, v)
		case !test.bad && err != nil:
			t.Errorf("'%s': unexpected error: %v", test.s, err)
		case !test.bad && v != test.v:
			t.Errorf("'%s': value incorrect. exp: $%04X, got: $%04X", test.s, test.v, v)
		case test.bad && errors.Cause(err) != ErrInvalidNumber:
			t.Errorf("'%s': unexpected error: %v", test.s, err)
		}
	}
}
