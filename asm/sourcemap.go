// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"encoding/json"
	"hash/crc32"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// A SourceMap describes the mapping between machine code addresses and the
// source lines and labels that produced them.
type SourceMap struct {
	Origin uint16
	Size   uint32
	CRC    uint32
	Lines  []SourceLine
}

// A SourceLine represents a mapping between a machine code address and the
// source line used to generate it.
type SourceLine struct {
	Address uint16 // Machine code address
	Source  string // Source code line
	Label   string `json:",omitempty"` // Symbolic operand, if any
}

// SourceMap builds a source map for the machine code assembled so far.
// Lines are ordered by their offset from the origin.
func (s *Session) SourceMap() *SourceMap {
	code := s.Code()
	m := &SourceMap{
		Origin: s.origin,
		Size:   uint32(len(code)),
		CRC:    crc32.ChecksumIEEE(code),
	}
	for i := range code {
		addr := s.origin + uint16(i)
		if c, ok := s.comments[addr]; ok {
			m.Lines = append(m.Lines, SourceLine{
				Address: addr,
				Source:  c,
				Label:   s.labels[addr],
			})
		}
	}
	return m
}

// Search searches the source map for a mapping with the requested address.
func (m *SourceMap) Search(addr uint16) (line SourceLine, ok bool) {
	off := addr - m.Origin
	i := sort.Search(len(m.Lines), func(i int) bool {
		return m.Lines[i].Address-m.Origin >= off
	})
	if i < len(m.Lines) && m.Lines[i].Address == addr {
		return m.Lines[i], true
	}
	return SourceLine{}, false
}

// ReadFrom reads the contents of an exported source map file.
func (m *SourceMap) ReadFrom(r io.Reader) (n int64, err error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, errors.Wrap(err, "source map read failed")
	}

	err = json.Unmarshal(b, m)
	if err != nil {
		return 0, errors.Wrap(err, "source map decode failed")
	}
	return int64(len(b)), nil
}

// WriteTo writes the contents of the source map to an output stream.
func (m *SourceMap) WriteTo(w io.Writer) (n int64, err error) {
	b, err := json.Marshal(*m)
	if err != nil {
		return 0, errors.Wrap(err, "source map encode failed")
	}

	nn, err := w.Write(b)
	return int64(nn), err
}
