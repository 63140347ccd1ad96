// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// An fstring is a string that keeps track of its position within the
// line from which it was read.
type fstring struct {
	column int    // 0-based column of start of substring
	str    string // the actual substring of interest
	full   string // the full line as originally read
}

func newFstring(str string) fstring {
	return fstring{0, str, str}
}

func (l *fstring) String() string {
	return l.str
}

func (l *fstring) advanceColumn(n int) int {
	c := l.column
	for i := 0; i < n; i++ {
		if l.str[i] == '\t' {
			c += 8 - (c % 8)
		} else {
			c++
		}
	}
	return c
}

func (l fstring) consume(n int) fstring {
	col := l.advanceColumn(n)
	return fstring{col, l.str[n:], l.full}
}

func (l fstring) trunc(n int) fstring {
	return fstring{l.column, l.str[:n], l.full}
}

func (l *fstring) isEmpty() bool {
	return len(l.str) == 0
}

func (l *fstring) peek() byte {
	return l.str[0]
}

func (l *fstring) scanUntil(fn func(c byte) bool) int {
	i := 0
	for ; i < len(l.str) && !fn(l.str[i]); i++ {
	}
	return i
}

// Consume a run of characters terminated by a character satisfying fn. The
// first character is always consumed, even if it satisfies fn.
func (l fstring) consumeRun(fn func(c byte) bool) (consumed, remain fstring) {
	rest := l.consume(1)
	i := 1 + rest.scanUntil(fn)
	consumed, remain = l.trunc(i), l.consume(i)
	return
}

//
// character helper functions
//

func whitespace(c byte) bool {
	return c == ' ' || c == '\t'
}

func decimal(c byte) bool {
	return (c >= '0' && c <= '9')
}

func hexadecimal(c byte) bool {
	return decimal(c) || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

// Characters copied verbatim into a normalized pattern.
func syntaxChar(c byte) bool {
	return c == '#' || c == '(' || c == ')' || c == ','
}

func indexChar(c byte) bool {
	return c == 'X' || c == 'Y'
}

// Characters that end an operand token.
func operandDelimiter(c byte) bool {
	return whitespace(c) || syntaxChar(c) || c == '$' || c == '@'
}
