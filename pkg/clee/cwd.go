// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clee

import (
	"slices"

	"github.com/yeetrun/clee/pkg/flags"
)

const cwdDescription = "A relative or absolute path to the working directory."

// CWD adds a --cwd option that changes the working directory before the
// remaining input is parsed.
func (c Command) CWD() Command {
	return c.WithCWDFlags("", "--cwd", cwdDescription)
}

// WithCWDFlags adds a working directory option with the given flags.
func (c Command) WithCWDFlags(short, long, description string) Command {
	c.cwd = flagSkin{short, long, description}
	return c
}

// WithoutCWD removes the working directory option.
func (c Command) WithoutCWD() Command {
	c.cwd = flagSkin{}
	return c
}

// takeCWD removes the first cwd flag and its value from args. The value is
// the token after the flag, or the flag's inline body. A flag followed by
// nothing or by another flag is removed without changing directory.
func (c Command) takeCWD(args []string) (rest []string, dir string, ok bool) {
	if !c.cwd.enabled() {
		return args, "", false
	}
	for i, arg := range args {
		if c.cwd.matches(arg) {
			if i+1 >= len(args) || flags.IsFlag(args[i+1]) {
				return slices.Delete(slices.Clone(args), i, i+1), "", false
			}
			return slices.Delete(slices.Clone(args), i, i+2), args[i+1], true
		}
		if !flags.IsFlag(arg) {
			continue
		}
		if f, err := flags.Parse(arg); err == nil && f.HasBody() && c.cwd.matches(f.Staff) {
			return slices.Delete(slices.Clone(args), i, i+1), *f.Body, true
		}
	}
	return args, "", false
}
