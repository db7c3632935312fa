// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clee

import (
	"context"

	"github.com/yeetrun/clee/pkg/parse"
	"tailscale.com/types/ptr"
	"tailscale.com/util/mak"
)

// bind runs every parser over the tokenized input in declaration order,
// arguments first, then options. Parsers run one at a time so prompts
// appear in a predictable order. The first error stops binding.
func (c Command) bind(ctx context.Context, t tokens) (Input, error) {
	in := Input{Args: make([]any, 0, len(c.args))}
	for k, a := range c.args {
		if k == len(c.args)-1 && a.Variadic {
			v, err := bindVariadic(ctx, a, t.args[min(k, len(t.args)):])
			if err != nil {
				return in, err
			}
			if v == nil && a.Required {
				return in, &RequiredArgumentError{Param: a.Param()}
			}
			in.Args = append(in.Args, v)
			continue
		}

		var raw *string
		if k < len(t.args) {
			raw = ptr.To(t.args[k])
		}
		v, err := runParser(ctx, a.Parser, raw, a.meta(), a.Param())
		if err != nil {
			return in, err
		}
		if v == nil && a.Required {
			return in, &RequiredArgumentError{Param: a.Param()}
		}
		in.Args = append(in.Args, v)
	}

	for _, o := range c.opts {
		v, err := bindOption(ctx, o, t.options[o.Field])
		if err != nil {
			return in, err
		}
		if v == nil {
			if o.Required {
				return in, &RequiredOptionError{Flag: o.Long}
			}
			continue
		}
		mak.Set(&in.Options, o.Field, v)
	}
	if in.Options == nil {
		in.Options = map[string]any{}
	}
	return in, nil
}

// bindVariadic parses every remaining positional token and drops the ones
// that produced nothing. With no tokens left the parser still runs once on
// a missing value, which lets prompt parsers ask for one.
func bindVariadic(ctx context.Context, a Argument, rest []string) (any, error) {
	if len(rest) == 0 {
		v, err := runParser(ctx, a.Parser, nil, a.meta(), a.Param())
		if err != nil || v == nil {
			return nil, err
		}
		return []any{v}, nil
	}
	list := make([]any, 0, len(rest))
	for _, s := range rest {
		v, err := runParser(ctx, a.Parser, ptr.To(s), a.meta(), a.Param())
		if err != nil {
			return nil, err
		}
		if v != nil {
			list = append(list, v)
		}
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list, nil
}

// bindOption parses an option's raw value. Variadic options drop values
// that produced nothing, like variadic arguments, and bind nothing when
// every value was dropped.
func bindOption(ctx context.Context, o Option, raw *rawValue) (any, error) {
	if raw == nil || !raw.multi {
		var s *string
		if raw != nil {
			s = raw.single
		}
		return runParser(ctx, o.Parser, s, o.meta(), o.Long)
	}
	list := make([]any, 0, len(raw.list))
	for _, s := range raw.list {
		v, err := runParser(ctx, o.Parser, ptr.To(s), o.meta(), o.Long)
		if err != nil {
			return nil, err
		}
		if v != nil {
			list = append(list, v)
		}
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list, nil
}

func runParser(ctx context.Context, p parse.Func, raw *string, meta parse.Meta, name string) (any, error) {
	v, err := p(ctx, raw, meta)
	if err != nil {
		ve := &ValueError{Name: name, Err: err}
		if raw != nil {
			ve.Value = *raw
		}
		return nil, ve
	}
	return v, nil
}
