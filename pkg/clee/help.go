// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clee

import (
	"slices"
	"strings"
)

type helpRow struct {
	prefix, desc string
}

// Usage renders the help text: title, description, usage line, then the
// Arguments, Options and Commands sections. Rows of all three sections
// share one description column.
func (c Command) Usage() string {
	args := c.argumentRows()
	opts := c.optionRows()
	cmds := c.commandRows()

	width := 0
	for _, r := range slices.Concat(args, opts, cmds) {
		width = max(width, len(r.prefix))
	}
	params := joinSections(
		section("Arguments:", args, width),
		section("Options:", opts, width),
		section("Commands:", cmds, width),
	)
	return joinSections(c.title, c.description, c.usageLine(), params)
}

func (c Command) usageLine() string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(c.name)
	if len(c.opts) > 0 {
		b.WriteString(" [options]")
	}
	if len(c.subs) > 0 {
		b.WriteString(" [command]")
	}
	for _, a := range c.args {
		b.WriteString(" ")
		b.WriteString(a.Param())
	}
	return b.String()
}

// argumentRows lists arguments only when at least one is described.
func (c Command) argumentRows() []helpRow {
	if !slices.ContainsFunc(c.args, func(a Argument) bool { return a.Description != "" }) {
		return nil
	}
	rows := make([]helpRow, 0, len(c.args))
	for _, a := range c.args {
		rows = append(rows, helpRow{"  " + a.Param(), a.Description})
	}
	return rows
}

func (c Command) optionRows() []helpRow {
	opts := slices.Clone(c.opts)
	if c.version.active() {
		opts = append(opts, c.version.option())
	}
	if c.cwd.enabled() {
		opts = append(opts, c.cwd.option())
	}
	if c.help.enabled() {
		opts = append(opts, c.help.option())
	}
	rows := make([]helpRow, 0, len(opts))
	for _, o := range opts {
		rows = append(rows, helpRow{optionPrefix(o), o.Description})
	}
	return rows
}

// optionPrefix renders e.g. "  -f, --flag <value>" or "      --flag".
func optionPrefix(o Option) string {
	sep := " "
	if o.Short != "" && o.Long != "" {
		sep = ","
	}
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(rightPad(o.Short, 2))
	b.WriteString(sep)
	if o.Long != "" {
		b.WriteString(" ")
		b.WriteString(o.Long)
	}
	if o.Param != "" {
		b.WriteString(" ")
		b.WriteString(wrapParam(o.Param, o.Required, o.Variadic))
	}
	return b.String()
}

func (c Command) commandRows() []helpRow {
	rows := make([]helpRow, 0, len(c.subs))
	for _, s := range c.subs {
		var b strings.Builder
		b.WriteString("  ")
		b.WriteString(s.name)
		if len(s.opts) > 0 {
			b.WriteString(" [options]")
		}
		for _, a := range s.args {
			b.WriteString(" ")
			b.WriteString(a.Param())
		}
		rows = append(rows, helpRow{b.String(), s.description})
	}
	return rows
}

func section(heading string, rows []helpRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	lines := []string{heading}
	for _, r := range rows {
		if r.desc == "" {
			lines = append(lines, r.prefix)
			continue
		}
		lines = append(lines, rightPad(r.prefix, width)+"  "+r.desc)
	}
	return strings.Join(lines, "\n")
}

func joinSections(sections ...string) string {
	return strings.Join(slices.DeleteFunc(sections, func(s string) bool { return s == "" }), "\n\n")
}

func rightPad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
