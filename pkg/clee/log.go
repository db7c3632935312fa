// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clee

import (
	"log"

	"github.com/yeetrun/clee/pkg/tui"
)

// logger echoes parse output. Info goes to stdout, errors and verbose
// traces to stderr. Nothing is written when silent.
type logger struct {
	info    *log.Logger
	err     *log.Logger
	color   tui.Colorizer
	silent  bool
	verbose bool
}

func newLogger(env *Env, o *parseOptions) *logger {
	return &logger{
		info:    log.New(env.stdout(), "", 0),
		err:     log.New(env.stderr(), "", 0),
		color:   tui.Detect(env.stderr()),
		silent:  o.silent,
		verbose: o.verbose,
	}
}

func (l *logger) Info(msg string) {
	if !l.silent {
		l.info.Print(msg)
	}
}

func (l *logger) Error(err error) {
	if !l.silent {
		l.err.Print(l.color.Red(err.Error()))
	}
}

func (l *logger) Verbosef(format string, args ...any) {
	if !l.silent && l.verbose {
		l.err.Printf(format, args...)
	}
}
