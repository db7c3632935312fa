// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clee

import (
	"fmt"
	"strings"

	"github.com/yeetrun/clee/pkg/flags"
	"github.com/yeetrun/clee/pkg/parse"
)

// Argument is a positional parameter.
type Argument struct {
	Name        string
	Description string
	Required    bool
	Variadic    bool
	Parser      parse.Func
}

// Param returns the argument as it appears in usage text, e.g. "<name>"
// or "[files...]".
func (a Argument) Param() string {
	return wrapParam(a.Name, a.Required, a.Variadic)
}

func (a Argument) meta() parse.Meta {
	return parse.Meta{Name: a.Name, Description: a.Description, Variadic: a.Variadic, Required: a.Required}
}

// Option is a flag-addressed parameter. Options are keyed by Field, the
// camel-cased long flag.
type Option struct {
	Field       string
	Short       string
	Long        string
	Param       string // value label without brackets, empty for boolean options
	Description string
	Required    bool
	Variadic    bool
	Parser      parse.Func
}

func (o Option) meta() parse.Meta {
	return parse.Meta{Name: o.Field, Description: o.Description, Variadic: o.Variadic, Required: o.Required}
}

func (o Option) matches(flag string) bool {
	return flag != "" && (flag == o.Long || flag == o.Short)
}

// OptionSpec describes an option before it is added to a command. Build one
// with ShortLong or Long.
type OptionSpec struct {
	short, long, param, desc string
	parser                   parse.Func
}

// ShortLong starts an option addressed by both a short and a long flag.
func ShortLong(short, long string) OptionSpec {
	return OptionSpec{short: short, long: long}
}

// Long starts an option addressed only by its long flag.
func Long(long string) OptionSpec {
	return OptionSpec{long: long}
}

// WithParam sets the value token, e.g. "<value>" or "[values...]". Angle
// brackets make the option required.
func (s OptionSpec) WithParam(param string) OptionSpec {
	s.param = param
	return s
}

// Describe sets the help description.
func (s OptionSpec) Describe(desc string) OptionSpec {
	s.desc = desc
	return s
}

// Parse sets the value parser.
func (s OptionSpec) Parse(p parse.Func) OptionSpec {
	s.parser = p
	return s
}

func (s OptionSpec) build(required bool) Option {
	if !flags.IsLongFlag(s.long) {
		panic(fmt.Sprintf("clee: invalid long flag %q", s.long))
	}
	if s.short != "" && (!flags.IsShortFlag(s.short) || flags.IsCompoundFlag(s.short)) {
		panic(fmt.Sprintf("clee: invalid short flag %q", s.short))
	}
	o := Option{
		Field:       flags.FieldName(s.long),
		Short:       s.short,
		Long:        s.long,
		Description: s.desc,
		Required:    required,
		Parser:      s.parser,
	}
	if s.param != "" {
		name, req, variadic := parseParam(s.param)
		o.Param = name
		o.Required = o.Required || req
		o.Variadic = variadic
	}
	if o.Parser == nil {
		if o.Param == "" {
			o.Parser = parse.Boolean
		} else {
			o.Parser = parse.String
		}
	}
	return o
}

// parseParam splits a parameter token such as "<name>", "[name]" or
// "[name...]". Tokens without brackets are optional.
func parseParam(token string) (name string, required, variadic bool) {
	name = strings.TrimSpace(token)
	switch {
	case strings.HasPrefix(name, "<") && strings.HasSuffix(name, ">"):
		required = true
		name = name[1 : len(name)-1]
	case strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]"):
		name = name[1 : len(name)-1]
	}
	if strings.HasSuffix(name, "...") {
		variadic = true
		name = strings.TrimSuffix(name, "...")
	}
	return name, required, variadic
}

func wrapParam(name string, required, variadic bool) string {
	if variadic {
		name += "..."
	}
	if required {
		return "<" + name + ">"
	}
	return "[" + name + "]"
}

// Input is what an action receives: the bound arguments in declaration
// order and the bound options keyed by field name. Options that produced
// no value are absent from Options.
type Input struct {
	Args    []any
	Options map[string]any
}

// Arg returns argument i as a T. ok is false when the argument is missing,
// produced no value or holds a different type.
func Arg[T any](in Input, i int) (v T, ok bool) {
	if i < 0 || i >= len(in.Args) {
		return v, false
	}
	v, ok = in.Args[i].(T)
	return v, ok
}

// Args returns the variadic argument i as a []T, skipping values of other
// types.
func Args[T any](in Input, i int) []T {
	list, ok := Arg[[]any](in, i)
	if !ok {
		return nil
	}
	out := make([]T, 0, len(list))
	for _, item := range list {
		if v, ok := item.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// Opt returns the option bound to field as a T.
func Opt[T any](in Input, field string) (v T, ok bool) {
	v, ok = in.Options[field].(T)
	return v, ok
}

func firstParser(ps []parse.Func) parse.Func {
	if len(ps) > 0 && ps[0] != nil {
		return ps[0]
	}
	return parse.String
}
