// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse provides the value parsers that turn raw command-line
// strings into typed values.
//
// A parser is a Func. It receives the raw token (nil when the user gave
// none) and metadata about the argument or option it serves, and returns
// the parsed value. A nil value means "nothing produced", which is not an
// error: it lets optional arguments stay unset and lets required ones be
// reported as missing. A non-nil error means the supplied value is
// invalid.
//
//	port := parse.Of(func(s string) (uint16, error) {
//	    n, err := strconv.ParseUint(s, 10, 16)
//	    return uint16(n), err
//	})
//
// Parsers run one at a time, in declaration order. Parsers that block,
// such as file readers and the Prompt* family, should honor ctx.
package parse

import (
	"context"
	"os"
)

// Meta describes the argument or option a parser is bound to.
type Meta struct {
	Name        string
	Description string
	Variadic    bool
	Required    bool
}

// Func parses one raw value. raw is nil when no value was supplied.
type Func func(ctx context.Context, raw *string, meta Meta) (any, error)

// Of adapts a plain conversion function into a Func. Missing values
// produce nothing and fn is not called.
func Of[T any](fn func(string) (T, error)) Func {
	return func(_ context.Context, raw *string, _ Meta) (any, error) {
		if raw == nil {
			return nil, nil
		}
		v, err := fn(*raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Default wraps p so that v is produced whenever p produces nothing.
func Default(p Func, v any) Func {
	return func(ctx context.Context, raw *string, meta Meta) (any, error) {
		got, err := p(ctx, raw, meta)
		if err != nil {
			return nil, err
		}
		if got == nil {
			return v, nil
		}
		return got, nil
	}
}

type dirKey struct{}

// WithDir returns a context whose working directory is dir. Path based
// parsers resolve relative paths against it.
func WithDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, dirKey{}, dir)
}

// Dir returns the working directory carried by ctx, falling back to the
// process working directory.
func Dir(ctx context.Context) string {
	if dir, ok := ctx.Value(dirKey{}).(string); ok && dir != "" {
		return dir
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
