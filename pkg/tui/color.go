// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that colors only when enabled is set
// and the environment allows it (NO_COLOR unset, TERM set and not dumb).
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// Detect enables color when w is a terminal.
func Detect(w io.Writer) Colorizer {
	f, ok := w.(*os.File)
	return NewColorizer(ok && term.IsTerminal(int(f.Fd())))
}

func (c Colorizer) Wrap(attr color.Attribute, text string) string {
	if !c.Enabled {
		return text
	}
	col := color.New(attr)
	col.EnableColor()
	return col.Sprint(text)
}

func (c Colorizer) Red(text string) string     { return c.Wrap(color.FgRed, text) }
func (c Colorizer) Green(text string) string   { return c.Wrap(color.FgGreen, text) }
func (c Colorizer) Yellow(text string) string  { return c.Wrap(color.FgYellow, text) }
func (c Colorizer) Dim(text string) string     { return c.Wrap(color.FgHiBlack, text) }
func (c Colorizer) Magenta(text string) string { return c.Wrap(color.FgMagenta, text) }

type colorizerKey struct{}

// WithColorizer returns a context carrying c.
func WithColorizer(ctx context.Context, c Colorizer) context.Context {
	return context.WithValue(ctx, colorizerKey{}, c)
}

// FromContext returns the Colorizer in ctx, or a disabled one.
func FromContext(ctx context.Context) Colorizer {
	c, _ := ctx.Value(colorizerKey{}).(Colorizer)
	return c
}
