// Copyright 2018-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/sasm6502/asm"
	"github.com/beevik/sasm6502/host"
	"github.com/beevik/term"
	"github.com/pkg/errors"
)

var (
	verbose bool
	quiet   bool
	outFile string
)

func init() {
	flag.BoolVar(&verbose, "v", false, "trace addressing mode resolution")
	flag.BoolVar(&quiet, "q", false, "don't print the listing")
	flag.StringVar(&outFile, "o", "", "save binary and source map files")
	flag.CommandLine.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: sasm6502 [options] [start address]\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	origin := uint16(asm.DefaultOrigin)
	if flag.NArg() > 0 {
		var err error
		origin, err = parseOrigin(flag.Arg(0))
		if err != nil {
			exitOnError(err)
		}
	}

	h := host.New(origin)
	h.SetVerbose(verbose)

	// Run the session, keeping standard output for the listing.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	h.Run(os.Stdin, os.Stderr, interactive)

	s := h.Session()
	if !quiet {
		if err := s.WriteListing(os.Stdout); err != nil {
			exitOnError(err)
		}
	}

	if outFile != "" {
		binPath, mapPath, err := s.Save(outFile)
		if err != nil {
			exitOnError(err)
		}
		fmt.Fprintf(os.Stderr, "Saved '%s' and '%s'.\n", filepath.Base(binPath), filepath.Base(mapPath))
	}
}

// Parse the start address. A '$' prefix selects hexadecimal; otherwise the
// usual "0x" and leading-zero octal prefixes apply.
func parseOrigin(s string) (uint16, error) {
	if strings.HasPrefix(s, "$") {
		return asm.ParseNumber(strings.ToUpper(s))
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, errors.Wrapf(asm.ErrInvalidNumber, "start address '%s'", s)
	}
	return uint16(v), nil
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
