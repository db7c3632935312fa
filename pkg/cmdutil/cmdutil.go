// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Prompter asks the user for input. Questions are written to Out and
// answers are read line by line from In.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	r *bufio.Reader
}

// NewPrompter returns a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{In: in, Out: out}
}

var stdPrompter = sync.OnceValue(func() *Prompter {
	return NewPrompter(os.Stdin, os.Stderr)
})

// StdPrompter prompts on stderr so that stdout stays clean for command output.
// Every call returns the same Prompter, which owns the buffered reader on
// os.Stdin.
func StdPrompter() *Prompter {
	return stdPrompter()
}

func (p *Prompter) reader() *bufio.Reader {
	if p.r == nil {
		p.r = bufio.NewReader(p.In)
	}
	return p.r
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader().ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Line asks msg and returns the answer without its line terminator.
func (p *Prompter) Line(msg string) (string, error) {
	fmt.Fprintf(p.Out, "%s: ", msg)
	return p.readLine()
}

// Confirm asks a yes/no question. Anything but y or yes is a no.
func (p *Prompter) Confirm(msg string) (bool, error) {
	fmt.Fprintf(p.Out, "%s [y/N]: ", msg)
	answer, err := p.readLine()
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Secret asks msg without echoing the answer when In is a terminal.
func (p *Prompter) Secret(msg string) (string, error) {
	f, ok := p.In.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.Line(msg)
	}
	fmt.Fprintf(p.Out, "%s: ", msg)
	b, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(p.Out)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return string(b), nil
}
