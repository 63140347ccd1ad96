// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Assembly contains assembled machine code and the address it was
// assembled to run at.
type Assembly struct {
	Origin uint16 // Load address of the machine code
	Code   []byte // Assembled machine code
}

// Assembly returns the machine code assembled so far.
func (s *Session) Assembly() *Assembly {
	return &Assembly{Origin: s.origin, Code: s.Code()}
}

// ReadFrom reads machine code from a binary input source.
func (a *Assembly) ReadFrom(r io.Reader) (n int64, err error) {
	a.Code, err = io.ReadAll(r)
	n = int64(len(a.Code))
	if err != nil {
		return n, errors.Wrap(err, "code read failed")
	}
	if n > 0x10000 {
		return n, errors.Errorf("code exceeded 64K size")
	}
	return n, nil
}

// WriteTo saves machine code as binary data into an output writer.
func (a *Assembly) WriteTo(w io.Writer) (n int64, err error) {
	nn, err := w.Write(a.Code)
	return int64(nn), err
}

// Save writes the machine code assembled so far to a binary file and its
// source map to a map file. Both file names are derived from 'path' by
// replacing its extension with ".bin" and ".map".
func (s *Session) Save(path string) (binPath, mapPath string, err error) {
	ext := filepath.Ext(path)
	prefix := path[:len(path)-len(ext)]
	binPath = prefix + ".bin"
	mapPath = prefix + ".map"

	if err = writeFile(binPath, s.Assembly()); err != nil {
		return "", "", err
	}
	if err = writeFile(mapPath, s.SourceMap()); err != nil {
		return "", "", err
	}
	return binPath, mapPath, nil
}

func writeFile(path string, wt io.WriterTo) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	defer file.Close()

	if _, err = wt.WriteTo(file); err != nil {
		return errors.Wrapf(err, "write '%s' failed", filepath.Base(path))
	}
	return file.Close()
}
