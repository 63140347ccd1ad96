// Copyright 2018-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/sasm6502/disasm"
)

// A command is a session meta-command. Meta-command lines begin with a
// '.', which can never start a valid instruction.
type command struct {
	name        string
	brief       string
	description string
	usage       string
	handler     func(h *Host, args []string) error
}

var (
	cmds     *cmd.Tree
	commands []*command
)

func init() {
	commands = []*command{
		{
			name:        "help",
			description: "Display help for a command.",
			usage:       ".help [<command>]",
			handler:     (*Host).cmdHelp,
		},
		{
			name:  "list",
			brief: "List assembled code",
			description: "Display the listing of all code assembled so far." +
				" Symbolic operands appear in place of their operand bytes.",
			usage:   ".list",
			handler: (*Host).cmdList,
		},
		{
			name:  "disassemble",
			brief: "Disassemble code",
			description: "Disassemble machine code starting at the requested" +
				" address. The number of instruction lines to disassemble may be" +
				" specified as an option. If no address is specified, the" +
				" disassembly continues from where the last disassembly left off.",
			usage:   ".disassemble [<address>] [<lines>]",
			handler: (*Host).cmdDisassemble,
		},
		{
			name:  "dump",
			brief: "Dump memory at address",
			description: "Dump the contents of memory starting from the" +
				" specified address. The number of bytes to dump may be" +
				" specified as an option. If no address is specified, the" +
				" memory dump continues from where the last dump left off.",
			usage:   ".dump [<address>] [<bytes>]",
			handler: (*Host).cmdDump,
		},
		{
			name:  "save",
			brief: "Save the assembled code",
			description: "Save the code assembled so far to a binary file and" +
				" its source map to a map file. Both are named after the" +
				" requested file with its extension replaced.",
			usage:   ".save <filename>",
			handler: (*Host).cmdSave,
		},
		{
			name:  "set",
			brief: "Set a configuration variable",
			description: "Set the value of a configuration variable. To see the" +
				" current values of all configuration variables, type set" +
				" without any arguments.",
			usage:   ".set [<var> <value>]",
			handler: (*Host).cmdSet,
		},
	}

	root := cmd.NewTree(cmd.TreeDescriptor{Name: "sasm6502"})
	for _, c := range commands {
		root.AddCommand(cmd.CommandDescriptor{
			Name:        c.name,
			Brief:       c.brief,
			Description: c.description,
			Usage:       c.usage,
			Data:        c,
		})
	}

	// Add command shortcuts.
	root.AddShortcut("?", "help")
	root.AddShortcut("l", "list")
	root.AddShortcut("d", "disassemble")
	root.AddShortcut("m", "dump")
	root.AddShortcut("w", "save")

	cmds = root
}

// Find the command selected by a meta-command line (without its leading
// '.') and the arguments that follow it.
func lookupCommand(line string) (*command, []string, error) {
	n, args, err := cmds.Lookup(line)
	if err != nil {
		return nil, nil, err
	}
	c, ok := n.(*cmd.Command)
	if !ok {
		return nil, nil, cmd.ErrNotFound
	}
	return c.Data.(*command), args, nil
}

func (h *Host) cmdHelp(args []string) error {
	if len(args) == 0 {
		h.println("Commands:")
		for _, c := range commands {
			if c.brief != "" {
				h.printf("    .%-15s  %s\n", c.name, c.brief)
			}
		}
		h.println("Enter an empty line to end the session.")
		return nil
	}

	c, _, err := lookupCommand(strings.TrimPrefix(args[0], "."))
	if err != nil {
		return err
	}
	h.printf("Syntax: %s\n\n", c.usage)
	switch {
	case c.description != "":
		h.printf("Description:\n   %s\n\n", c.description)
	case c.brief != "":
		h.printf("Description:\n   %s.\n\n", c.brief)
	}
	return nil
}

func (h *Host) cmdList(args []string) error {
	err := h.session.WriteListing(h.output)
	h.flush()
	return err
}

func (h *Host) cmdDisassemble(args []string) error {
	addr := h.settings.NextDisasmAddr
	if addr == 0 {
		addr = h.session.Origin()
	}
	if len(args) > 0 {
		a, err := parseValue(args[0])
		if err != nil {
			return err
		}
		addr = a
	}

	lines := h.settings.DisasmLines
	if len(args) > 1 {
		l, err := parseValue(args[1])
		if err != nil {
			return err
		}
		lines = int(l)
	}

	for i := 0; i < lines; i++ {
		d, next := h.disassemble(addr)
		h.println(d)
		addr = next
	}

	h.settings.NextDisasmAddr = addr
	return nil
}

func (h *Host) cmdDump(args []string) error {
	addr := h.settings.NextMemDumpAddr
	if addr == 0 {
		addr = h.session.Origin()
	}
	if len(args) > 0 {
		a, err := parseValue(args[0])
		if err != nil {
			return err
		}
		addr = a
	}

	bytes := uint16(h.settings.MemDumpBytes)
	if len(args) > 1 {
		b, err := parseValue(args[1])
		if err != nil {
			return err
		}
		bytes = b
	}

	h.dumpMemory(addr, bytes)

	h.settings.NextMemDumpAddr = addr + bytes
	return nil
}

func (h *Host) cmdSave(args []string) error {
	if len(args) < 1 {
		h.printf("Syntax: .save <filename>\n")
		return nil
	}

	binPath, mapPath, err := h.session.Save(args[0])
	if err != nil {
		return err
	}

	h.printf("Saved '%s' and '%s'.\n", filepath.Base(binPath), filepath.Base(mapPath))
	return nil
}

func (h *Host) cmdSet(args []string) error {
	switch len(args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)
		h.flush()

	case 1:
		h.printf("Syntax: .set [<var> <value>]\n")

	default:
		key, value := strings.ToLower(args[0]), strings.Join(args[1:], " ")
		if err := h.settings.SetString(key, value); err != nil {
			return err
		}
		h.println("Setting updated.")
		h.onSettingsUpdate()
	}
	return nil
}

func (h *Host) disassemble(addr uint16) (str string, next uint16) {
	var line string
	line, next = disasm.Disassemble(h.session.Image(), addr)

	b := make([]byte, next-addr)
	h.session.Image().LoadBytes(addr, b)

	str = fmt.Sprintf("%04X-   %-8s    %-15s", addr, codeString(b), line)
	if comment, ok := h.session.Comment(addr); ok {
		str += " ; " + comment
	}
	return str, next
}

func (h *Host) dumpMemory(addr0, bytes uint16) {
	if bytes == 0 {
		return
	}

	addr1 := addr0 + bytes - 1
	if addr1 < addr0 {
		addr1 = 0xffff
	}

	mem := h.session.Image()
	buf := []byte("    -" + strings.Repeat(" ", 35))

	// Don't align display for short dumps.
	if addr1-addr0 < 8 {
		addrToBuf(addr0, buf[0:4])
		for a, c1, c2 := addr0, 6, 32; a <= addr1 && a >= addr0; a, c1, c2 = a+1, c1+3, c2+1 {
			m := mem.LoadByte(a)
			byteToBuf(m, buf[c1:c1+2])
			buf[c2] = toPrintableChar(m)
		}
		h.println(string(buf))
		return
	}

	// Align addr0 and addr1 to 8-byte boundaries.
	start := uint32(addr0) & 0xfff8
	stop := (uint32(addr1) + 8) & 0xffff8
	if stop > 0x10000 {
		stop = 0x10000
	}

	a := uint16(start)
	for r := start; r < stop; r += 8 {
		addrToBuf(a, buf[0:4])
		for c1, c2 := 6, 32; c1 < 29; c1, c2, a = c1+3, c2+1, a+1 {
			if a >= addr0 && a <= addr1 {
				m := mem.LoadByte(a)
				byteToBuf(m, buf[c1:c1+2])
				buf[c2] = toPrintableChar(m)
			} else {
				buf[c1] = ' '
				buf[c1+1] = ' '
				buf[c2] = ' '
			}
		}
		h.println(string(buf))
	}
}
