// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/sasm6502/asm"
)

func run(t *testing.T, input string, interactive bool) (*Host, string) {
	t.Helper()
	h := New(asm.DefaultOrigin)

	var out bytes.Buffer
	h.Run(strings.NewReader(input), &out, interactive)
	return h, out.String()
}

func checkOutput(t *testing.T, out string, expected ...string) {
	t.Helper()
	for _, e := range expected {
		if !strings.Contains(out, e) {
			t.Errorf("output missing %q\ngot: %s", e, out)
		}
	}
}

func TestRunStopsAtEmptyLine(t *testing.T) {
	h, _ := run(t, "LDA #$10\nSTA $0200\n\nLDA #$20\n", false)

	s := h.Session()
	if s.Cursor() != 0x2005 {
		t.Errorf("Cursor incorrect. exp: $2005, got: $%04X", s.Cursor())
	}
	if _, ok := s.Comment(0x2005); ok {
		t.Error("Line after the empty line was assembled")
	}
}

func TestRunStopsAtEOF(t *testing.T) {
	h, out := run(t, "LDA #$10\nRTS", false)
	if h.Session().Cursor() != 0x2003 {
		t.Errorf("Cursor incorrect. exp: $2003, got: $%04X", h.Session().Cursor())
	}
	if out != "" {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestRunDiagnostics(t *testing.T) {
	input := strings.Join([]string{
		"XYZ",
		"BNE LOOP",
		"ASL A",
		"BEQ $9000",
		"LDA $10 $20",
		"LDA #$01",
	}, "\n")

	h, out := run(t, input, false)
	checkOutput(t, out,
		"invalid instruction\n",
		"labels not allowed in branches\n",
		"\"ASL A\" is ambiguous.\nUse \"ASL\" for accumulator mode or \"ASL 0A\" for zeropage mode.\n",
		"branch out of range (give destination address as argument)\n",
	)
	if strings.Contains(out, "column") {
		t.Error("Error context shown outside verbose mode")
	}

	code := h.Session().Code()
	if !bytes.Equal(code, []byte{0xa9, 0x01}) {
		t.Errorf("Code incorrect. got: % X", code)
	}
}

func TestRunVerbose(t *testing.T) {
	h := New(asm.DefaultOrigin)
	h.SetVerbose(true)

	var out bytes.Buffer
	h.Run(strings.NewReader("LDA $10\nLDA 12$34\n"), &out, false)

	checkOutput(t, out.String(),
		"LDA 0",
		"not found",
		"LDA 1",
		"A5 10",
		"unexpected '$' at column 7",
	)
}

func TestRunPrompt(t *testing.T) {
	_, out := run(t, "LDA #$10\nNOP\n", true)
	checkOutput(t, out, "Type .help", "2000: ", "2002: ", "2003: ")
}

func TestCommandList(t *testing.T) {
	_, out := run(t, "LDA #$10\nSTA FOO\n.list\n", false)
	checkOutput(t, out, "[\n $A9 $10\t; LDA #$10\n $8D FOO\t; STA FOO\n]\n")
}

func TestCommandDisassemble(t *testing.T) {
	_, out := run(t, "LDA #$10\nBNE $2000\n.disassemble $2000 2\n", false)
	checkOutput(t, out,
		"2000-   A9 10       LDA #$10        ; LDA #$10\n",
		"2002-   D0 FC       BNE $2000       ; BNE $2000\n",
	)
}

func TestCommandDump(t *testing.T) {
	_, out := run(t, "LDA #$41\n.dump $2000 2\n", false)
	checkOutput(t, out, "2000- A9 41")
}

func TestCommandSet(t *testing.T) {
	h, out := run(t, ".set disasm 4\n.set verb on\n.set bogus 1\n.set\n", false)
	if h.settings.DisasmLines != 4 {
		t.Errorf("DisasmLines incorrect. exp: 4, got: %d", h.settings.DisasmLines)
	}
	if !h.settings.Verbose {
		t.Error("Verbose not set")
	}
	checkOutput(t, out, "Setting updated.", "ERROR: setting 'bogus' not found.", "DisasmLines")
}

func TestCommandSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.asm")

	_, out := run(t, "LDA #$10\nRTS\n.save "+path+"\n", false)
	checkOutput(t, out, "Saved 'prog.bin' and 'prog.map'.")

	b, err := os.ReadFile(filepath.Join(dir, "prog.bin"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0xa9, 0x10, 0x60}) {
		t.Errorf("Saved code incorrect. got: % X", b)
	}
}

func TestCommandNotFound(t *testing.T) {
	h, out := run(t, ".bogus\n.\nLDA #$10\n", false)
	checkOutput(t, out, "Command not found.")
	if h.Session().Cursor() != 0x2002 {
		t.Error("Session stopped after a bad command")
	}
}

func TestCommandHelp(t *testing.T) {
	_, out := run(t, ".help\n.help save\n", false)
	checkOutput(t, out, ".disassemble", "Syntax: .save <filename>")
}
