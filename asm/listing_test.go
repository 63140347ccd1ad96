// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"bytes"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"
)

const listingProgram = `
	LDA #$10
	STA FOO
	LDA 0ZP
	JMP 0FAR
	RTS`

func TestListing(t *testing.T) {
	s, errs := assemble(DefaultOrigin, listingProgram)
	for _, err := range errs {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := s.WriteListing(&buf); err != nil {
		t.Fatal(err)
	}

	exp := "[\n" +
		" $A9 $10\t; LDA #$10\n" +
		" $8D FOO\t; STA FOO\n" +
		" $A5 ZP\t; LDA 0ZP\n" +
		" $4C FAR\t; JMP FAR\n" +
		" $60\t; RTS\n" +
		"]\n"
	if got := buf.String(); got != exp {
		t.Error("listing doesn't match expected")
		t.Errorf("got: %q\n", got)
		t.Errorf("exp: %q\n", exp)
	}
}

func TestListingEmpty(t *testing.T) {
	s := NewSession(DefaultOrigin, nil, 0)

	var buf bytes.Buffer
	if err := s.WriteListing(&buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[\n]\n" {
		t.Errorf("listing incorrect. got: %q", got)
	}
}

func TestSourceMap(t *testing.T) {
	s, _ := assemble(DefaultOrigin, listingProgram)
	m := s.SourceMap()

	if m.Origin != DefaultOrigin || m.Size != 11 {
		t.Errorf("source map header incorrect. origin: $%04X, size: %d", m.Origin, m.Size)
	}
	if m.CRC != crc32.ChecksumIEEE(s.Code()) {
		t.Error("source map CRC incorrect")
	}
	if len(m.Lines) != 5 {
		t.Fatalf("source map line count incorrect. exp: 5, got: %d", len(m.Lines))
	}

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}

	var m2 SourceMap
	if _, err := m2.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}

	l, ok := m2.Search(0x2002)
	if !ok {
		t.Fatal("Search($2002) failed")
	}
	if l.Source != "STA FOO" || l.Label != "FOO" {
		t.Errorf("Search($2002) incorrect. got: %+v", l)
	}

	l, ok = m2.Search(0x2007)
	if !ok || l.Source != "JMP FAR" || l.Label != "FAR" {
		t.Errorf("Search($2007) incorrect. got: %+v", l)
	}

	if _, ok := m2.Search(0x2003); ok {
		t.Error("Search($2003) found an operand byte")
	}
}

func TestSave(t *testing.T) {
	s, _ := assemble(DefaultOrigin, listingProgram)

	dir := t.TempDir()
	binPath, mapPath, err := s.Save(filepath.Join(dir, "prog.asm"))
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(binPath) != "prog.bin" || filepath.Base(mapPath) != "prog.map" {
		t.Errorf("file names incorrect. got: %s, %s", binPath, mapPath)
	}

	b, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, s.Code()) {
		t.Error("saved code doesn't match assembled code")
	}

	f, err := os.Open(mapPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var m SourceMap
	if _, err := m.ReadFrom(f); err != nil {
		t.Fatal(err)
	}
	if m.Origin != DefaultOrigin || len(m.Lines) != 5 {
		t.Errorf("saved source map incorrect. got: %+v", m)
	}
}
