// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// An Image represents an entire 16-bit address space as a singular 64K
// buffer holding assembled machine code. Multi-byte accesses wrap from
// $FFFF to $0000.
type Image struct {
	b [64 * 1024]byte
}

// NewImage creates a new zeroed 16-bit program image.
func NewImage() *Image {
	return &Image{}
}

// LoadByte loads a single byte from the address and returns it.
func (m *Image) LoadByte(addr uint16) byte {
	return m.b[addr]
}

// LoadBytes loads multiple bytes from the address and stores them into
// the buffer 'b'.
func (m *Image) LoadBytes(addr uint16, b []byte) {
	n := copy(b, m.b[addr:])
	for n < len(b) {
		n += copy(b[n:], m.b[:])
	}
}

// LoadAddress loads a little-endian 16-bit value from the requested address
// and returns it.
func (m *Image) LoadAddress(addr uint16) uint16 {
	return uint16(m.b[addr]) | uint16(m.b[addr+1])<<8
}

// StoreByte stores a byte at the requested address.
func (m *Image) StoreByte(addr uint16, v byte) {
	m.b[addr] = v
}

// StoreBytes stores multiple bytes to the requested address.
func (m *Image) StoreBytes(addr uint16, b []byte) {
	for i, v := range b {
		m.b[addr+uint16(i)] = v
	}
}
