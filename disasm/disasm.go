// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a 6502 instruction set
// disassembler driven by the assembler's instruction table.
package disasm

import (
	"fmt"
	"strings"

	"github.com/beevik/sasm6502/asm"
)

// Memory is the interface used to read the machine code being
// disassembled.
type Memory interface {
	LoadByte(addr uint16) byte
}

// Disassembler formatting for operand classes
var classFormat = map[asm.Class]string{
	asm.ClassRelative: "$%04X",
	asm.ClassByte:     "$%02X",
	asm.ClassWord:     "$%04X",
}

// Disassemble the machine code in memory 'm' at address 'addr'. Return a
// 'line' string representing the disassembled instruction and a 'next'
// address that starts the following line of machine code.
func Disassemble(m Memory, addr uint16) (line string, next uint16) {
	opcode := m.LoadByte(addr)
	p := asm.Pattern(opcode)
	next = addr + uint16(asm.Length(opcode))

	c, i := asm.PatternClass(p)
	if i >= 0 {
		var v uint16
		switch c {
		case asm.ClassRelative:
			// Convert relative offset to absolute address.
			v = next + uint16(int8(m.LoadByte(addr+1)))
		case asm.ClassByte:
			v = uint16(m.LoadByte(addr + 1))
		case asm.ClassWord:
			v = uint16(m.LoadByte(addr+1)) | uint16(m.LoadByte(addr+2))<<8
		}
		p = p[:i] + fmt.Sprintf(classFormat[c], v) + p[i+1:]
	}

	line = strings.TrimSuffix(p, " !")
	return
}

// Lines disassembles 'count' instructions starting at 'addr' and returns
// them along with the address following the last one.
func Lines(m Memory, addr uint16, count int) (lines []string, next uint16) {
	next = addr
	for i := 0; i < count; i++ {
		var line string
		line, next = Disassemble(m, next)
		lines = append(lines, line)
	}
	return
}
