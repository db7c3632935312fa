// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clee

import (
	"fmt"

	"github.com/yeetrun/clee/pkg/flags"
	"tailscale.com/types/ptr"
	"tailscale.com/util/mak"
)

// UnknownFlagPolicy decides what happens to a flag that matches no option.
// A compound flag such as "-abc" counts as unknown only when none of its
// letters match an option; otherwise the unmatched letters are skipped.
// Under UnknownAsOption an unknown compound flag is dropped.
type UnknownFlagPolicy int

const (
	// UnknownAsPositional keeps the flag as a positional token, verbatim.
	UnknownAsPositional UnknownFlagPolicy = iota
	// UnknownAsOption consumes the flag and its value like a declared
	// single-valued option. The value is never bound.
	UnknownAsOption
	// UnknownAsError fails the parse with an UnknownFlagError.
	UnknownAsError
)

func (p UnknownFlagPolicy) String() string {
	switch p {
	case UnknownAsPositional:
		return "positional"
	case UnknownAsOption:
		return "option"
	case UnknownAsError:
		return "error"
	}
	return fmt.Sprintf("UnknownFlagPolicy(%d)", int(p))
}

// rawValue is what the tokenizer collected for one option: a single value,
// or every value in order for a variadic option.
type rawValue struct {
	single *string
	list   []string
	multi  bool
}

type tokens struct {
	args    []string
	options map[string]*rawValue
}

func (t *tokens) set(field, v string) {
	mak.Set(&t.options, field, &rawValue{single: ptr.To(v)})
}

func (t *tokens) push(field string, vs ...string) {
	rv, ok := t.options[field]
	if !ok || !rv.multi {
		rv = &rawValue{multi: true}
		mak.Set(&t.options, field, rv)
	}
	rv.list = append(rv.list, vs...)
}

// tokenize walks args once, left to right, sorting tokens into positional
// tokens and raw option values.
func (c Command) tokenize(args []string) (tokens, error) {
	var t tokens
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !flags.IsFlag(arg) {
			t.args = append(t.args, arg)
			continue
		}
		f, err := flags.Parse(arg)
		if err != nil {
			return t, err
		}

		if flags.IsCompoundFlag(arg) {
			matched := false
			for _, r := range f.Name {
				letter := string(r)
				if !flags.IsLetter(letter) {
					continue
				}
				o, ok := c.findOption(flags.ShortFlag(letter))
				if !ok {
					continue
				}
				matched = true
				if o.Variadic {
					t.push(o.Field, bodyOr(f, "true"))
				} else {
					t.set(o.Field, "true")
				}
			}
			if matched {
				continue
			}
			// No letter matched, e.g. "-12" or "-xyz": the whole token is an
			// unknown flag.
			switch c.unknown {
			case UnknownAsError:
				return t, &UnknownFlagError{Flag: f.Staff, Command: c.name}
			case UnknownAsPositional:
				t.args = append(t.args, arg)
			}
			continue
		}

		o, ok := c.findOption(f.Staff)
		if !ok {
			switch c.unknown {
			case UnknownAsError:
				return t, &UnknownFlagError{Flag: f.Staff, Command: c.name}
			case UnknownAsOption:
				o = Option{Field: flags.CamelCase(f.Name)}
			default:
				t.args = append(t.args, arg)
				continue
			}
		}

		var values []string
		if f.HasBody() {
			values = append(values, *f.Body)
		} else {
			for i+1 < len(args) && !flags.IsFlag(args[i+1]) && (o.Variadic || len(values) == 0) {
				i++
				values = append(values, args[i])
			}
			if len(values) == 0 {
				values = append(values, "true")
			}
		}
		if o.Variadic {
			t.push(o.Field, values...)
		} else {
			t.set(o.Field, values[0])
		}
	}
	return t, nil
}

func bodyOr(f flags.Parts, def string) string {
	if f.HasBody() {
		return *f.Body
	}
	return def
}
