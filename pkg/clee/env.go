// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clee

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yeetrun/clee/pkg/cmdutil"
	"github.com/yeetrun/clee/pkg/parse"
)

// Env is the process state a parse reads and writes. Tests use an Env
// backed by buffers; ProcessEnv wires the real process.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	// Dir is the working directory paths are resolved against. Empty means
	// the process working directory.
	Dir string

	// Chdir, when set, is called after the cwd option changed Dir.
	Chdir func(dir string) error

	// Prompter answers prompt parsers. When nil, prompts are read from
	// Stdin and written to Stderr.
	Prompter parse.Prompter

	// ExitCode is set to 1 when an action returns an error value.
	ExitCode int

	// stdin reads Stdin for every parse against this Env, so answers
	// buffered by one prompt stay available to the next parse. It is
	// created on first use; replacing Stdin afterwards has no effect.
	stdin *cmdutil.Prompter
}

// ProcessEnv returns an Env for the running process. Changing directory
// through the cwd option changes the process working directory.
func ProcessEnv() *Env {
	dir, _ := os.Getwd()
	return &Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Dir:    dir,
		Chdir:  os.Chdir,
	}
}

func (e *Env) stdout() io.Writer {
	if e.Stdout == nil {
		return io.Discard
	}
	return e.Stdout
}

func (e *Env) stderr() io.Writer {
	if e.Stderr == nil {
		return io.Discard
	}
	return e.Stderr
}

func (e *Env) dir() string {
	if e.Dir != "" {
		return e.Dir
	}
	dir, err := os.Getwd()
	if err != nil {
		return string(filepath.Separator)
	}
	return dir
}

func (e *Env) prompter() parse.Prompter {
	if e.Prompter != nil {
		return e.Prompter
	}
	if e.Stdin == nil {
		return cmdutil.StdPrompter()
	}
	if e.stdin == nil {
		e.stdin = cmdutil.NewPrompter(e.Stdin, e.stderr())
	}
	e.stdin.Out = e.stderr()
	return e.stdin
}

// chdir resolves dir against the current directory and applies it.
func (e *Env) chdir(dir string) error {
	next := parse.ResolvePath(e.dir(), dir).Absolute
	if e.Chdir != nil {
		if err := e.Chdir(next); err != nil {
			return fmt.Errorf("failed to change directory to %s: %w", next, err)
		}
	}
	e.Dir = next
	return nil
}
