// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package cmd implements the navgen subcommands. Each Run function is
// called by cmd/navgen after flag parsing.
package cmd

import (
	"fmt"
	"io"
	"os"
)

// OutputPrinter writes user-facing command output.
type OutputPrinter struct {
	w io.Writer
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer) *OutputPrinter {
	return &OutputPrinter{w: w}
}

// Printer is where commands write their results. Logs go to stderr.
var Printer = NewPrinter(os.Stdout)

func (p *OutputPrinter) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *OutputPrinter) Println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

func (p *OutputPrinter) Print(args ...any) {
	fmt.Fprint(p.w, args...)
}

// Writer returns the underlying writer.
func (p *OutputPrinter) Writer() io.Writer {
	return p.w
}
