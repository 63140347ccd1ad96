// Copyright 2018-2026 Brett Vickers.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host runs an interactive assembly session: it reads source lines
// one at a time, assembles each as soon as it is entered, reports problems
// with the line and carries on.
//
// Lines beginning with '.' are meta-commands that inspect the session
// (listing, disassembly, memory dump), save its code, or change settings.
// An empty line ends the session.
package host

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/sasm6502/asm"
	"github.com/pkg/errors"
)

type state byte

const (
	stateReading state = iota
	stateTerminated
)

// A Host reads source lines and meta-commands and feeds them to an assembly
// session.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	session     *asm.Session
	settings    *settings
	state       state
}

// New creates a new host whose session starts assembling at the origin
// address.
func New(origin uint16) *Host {
	h := &Host{
		state:    stateReading,
		settings: newSettings(),
	}
	h.session = asm.NewSession(origin, console{h}, 0)
	return h
}

// Session returns the host's assembly session.
func (h *Host) Session() *asm.Session {
	return h.session
}

// SetVerbose turns on or off tracing of addressing mode resolution.
func (h *Host) SetVerbose(verbose bool) {
	h.settings.Verbose = verbose
	h.onSettingsUpdate()
}

// Run accepts source lines and meta-commands from a reader and writes
// prompts, diagnostics and command output to a writer. If the session is
// interactive, a banner is displayed and each line is prompted for with
// the address at which it will be assembled. Run returns when an empty
// line is read or the input is exhausted.
func (h *Host) Run(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive
	h.settings.Prompt = interactive
	h.state = stateReading

	if interactive {
		h.println("sasm6502: enter one instruction per line, an empty line to end.")
		h.println("Type .help for a list of commands.")
	}

	for h.state == stateReading {
		h.prompt()

		line, err := h.getLine()
		if err != nil || line == "" {
			h.state = stateTerminated
			break
		}

		if strings.HasPrefix(line, ".") {
			h.runCommand(line[1:])
		} else {
			h.assemble(line)
		}
	}

	h.flush()
}

func (h *Host) assemble(line string) {
	err := h.session.Assemble(line)
	if err != nil {
		h.report(err)
	}
	h.flush()
}

func (h *Host) runCommand(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		h.println("Command not found.")
		return
	}
	fields[0] = strings.ToLower(fields[0])

	c, args, err := lookupCommand(strings.Join(fields, " "))
	switch {
	case err == cmd.ErrNotFound:
		h.println("Command not found.")
		return
	case err == cmd.ErrAmbiguous:
		h.println("Command is ambiguous.")
		return
	case err != nil:
		h.printf("ERROR: %v.\n", err)
		return
	}

	if err := c.handler(h, args); err != nil {
		h.printf("ERROR: %v.\n", err)
	}
}

// Print a line-level error. In verbose mode the error's full context is
// shown.
func (h *Host) report(err error) {
	if h.settings.Verbose {
		h.println(err)
	} else {
		h.println(errors.Cause(err))
	}
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.settings.Prompt {
		h.printf("%04X: ", h.session.Cursor())
	}
}

func (h *Host) onSettingsUpdate() {
	h.session.SetVerbose(h.settings.Verbose)
}

// The console routes session trace output through the host's writer.
type console struct {
	h *Host
}

func (c console) Write(p []byte) (int, error) {
	if c.h.output == nil {
		return len(p), nil
	}
	return c.h.output.Write(p)
}
