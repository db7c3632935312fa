// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"context"

	"github.com/yeetrun/clee/pkg/cmdutil"
)

// Prompter asks the user for values that were not given on the command line.
type Prompter interface {
	Line(msg string) (string, error)
	Confirm(msg string) (bool, error)
	Secret(msg string) (string, error)
}

type prompterKey struct{}

// WithPrompter returns a context whose Prompt* parsers ask p.
func WithPrompter(ctx context.Context, p Prompter) context.Context {
	return context.WithValue(ctx, prompterKey{}, p)
}

func prompter(ctx context.Context) Prompter {
	if p, ok := ctx.Value(prompterKey{}).(Prompter); ok && p != nil {
		return p
	}
	return cmdutil.StdPrompter()
}

func question(meta Meta) string {
	if meta.Description != "" {
		return meta.Name + " (" + meta.Description + ")"
	}
	return meta.Name
}

// prompted asks for a line when raw is nil and feeds the answer to p.
func prompted(p Func, ask func(Prompter, string) (string, error)) Func {
	return func(ctx context.Context, raw *string, meta Meta) (any, error) {
		if raw != nil {
			return p(ctx, raw, meta)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		answer, err := ask(prompter(ctx), question(meta))
		if err != nil {
			return nil, err
		}
		return p(ctx, &answer, meta)
	}
}

func askLine(p Prompter, msg string) (string, error)   { return p.Line(msg) }
func askSecret(p Prompter, msg string) (string, error) { return p.Secret(msg) }

var (
	// PromptString asks for a string when none was given.
	PromptString = prompted(String, askLine)
	// PromptNumber asks for a number when none was given.
	PromptNumber = prompted(Number, askLine)
	// PromptInt asks for an integer when none was given.
	PromptInt = prompted(Int, askLine)
	// PromptFloat asks for a decimal number when none was given.
	PromptFloat = prompted(Float, askLine)
	// PromptSecret asks for a string without echoing it when none was given.
	PromptSecret = prompted(String, askSecret)
)

// PromptBoolean asks a yes/no question when no value was given.
func PromptBoolean(ctx context.Context, raw *string, meta Meta) (any, error) {
	if raw != nil {
		return Boolean(ctx, raw, meta)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return prompter(ctx).Confirm(question(meta))
}
