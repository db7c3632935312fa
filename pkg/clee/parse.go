// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clee

import (
	"context"
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"
	"github.com/yeetrun/clee/pkg/format"
	"github.com/yeetrun/clee/pkg/parse"
	"github.com/yeetrun/clee/pkg/tui"
)

// Result is the outcome of a parse that did not fail: the formatted action
// result, or the help or version text.
type Result struct {
	Message    string
	HasMessage bool
	// ExitCode is 1 when the action returned an error value.
	ExitCode int
}

type parseOptions struct {
	silent  bool
	verbose bool
	env     *Env
}

// ParseOption configures a single parse.
type ParseOption func(*parseOptions)

// Silent stops Parse from echoing anything. The Result is unchanged.
func Silent() ParseOption {
	return func(o *parseOptions) { o.silent = true }
}

// Verbose logs dispatch decisions to stderr.
func Verbose() ParseOption {
	return func(o *parseOptions) { o.verbose = true }
}

// WithEnv runs the parse against env instead of the process.
func WithEnv(env *Env) ParseOption {
	return func(o *parseOptions) { o.env = env }
}

// Parse runs the command against args, which exclude the program name.
//
// The first token naming a subcommand hands the rest of args to that
// subcommand. Otherwise a version flag prints the version, and a help flag,
// or a command without an action, prints the help text. Anything else is
// bound to the command's arguments and options and passed to its action;
// the formatted result is printed and returned.
//
// Errors from binding, the action or the formatter are printed to stderr
// and returned. Panics are not recovered.
func (c Command) Parse(ctx context.Context, args []string, opts ...ParseOption) (Result, error) {
	o := &parseOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.env == nil {
		o.env = ProcessEnv()
	}
	return c.parse(ctx, args, o, newLogger(o.env, o))
}

// ParseLine splits line into words the way a POSIX shell would, without
// any expansion, and parses them.
func (c Command) ParseLine(ctx context.Context, line string, opts ...ParseOption) (Result, error) {
	args, err := shellquote.Split(line)
	if err != nil {
		return Result{}, fmt.Errorf("failed to split command line: %w", err)
	}
	return c.Parse(ctx, args, opts...)
}

func (c Command) parse(ctx context.Context, args []string, o *parseOptions, lg *logger) (Result, error) {
	if len(args) > 0 {
		if sub, ok := c.Subcommand(args[0]); ok {
			lg.Verbosef("%s: running subcommand %s", c.name, sub.name)
			return sub.parse(ctx, args[1:], o, lg)
		}
	}

	if c.version.active() && c.version.in(args) {
		v, err := c.version.resolve()
		if err != nil {
			lg.Error(err)
			return Result{}, err
		}
		lg.Info(v)
		return Result{Message: v, HasMessage: true}, nil
	}

	if c.help.in(args) || c.action == nil {
		h := c.Usage()
		lg.Info(h)
		return Result{Message: h, HasMessage: true}, nil
	}

	res, err := c.execute(ctx, args, o, lg)
	if err != nil {
		lg.Error(err)
		return Result{}, err
	}
	return res, nil
}

func (c Command) execute(ctx context.Context, args []string, o *parseOptions, lg *logger) (Result, error) {
	env := o.env
	args, dir, ok := c.takeCWD(args)
	if ok {
		lg.Verbosef("%s: changing directory to %s", c.name, dir)
		if err := env.chdir(dir); err != nil {
			return Result{}, err
		}
	}

	ctx = parse.WithDir(ctx, env.dir())
	ctx = parse.WithPrompter(ctx, env.prompter())
	ctx = tui.WithColorizer(ctx, tui.Detect(env.stdout()))

	t, err := c.tokenize(args)
	if err != nil {
		return Result{}, err
	}
	in, err := c.bind(ctx, t)
	if err != nil {
		return Result{}, err
	}

	out, err := c.action(ctx, in)
	if err != nil {
		return Result{}, err
	}
	var res Result
	if e, ok := out.(error); ok && e != nil {
		lg.Verbosef("%s: action returned error value: %v", c.name, e)
		res.ExitCode = 1
		env.ExitCode = 1
	}

	f := c.format
	if f == nil {
		f = format.Default
	}
	msg, ok, err := f(ctx, out, in.Options)
	if err != nil {
		return Result{}, err
	}
	if ok {
		lg.Info(msg)
		res.Message, res.HasMessage = msg, true
	}
	return res, nil
}

// Main parses the process arguments and exits: 1 when the parse failed or
// the action returned an error value, 0 otherwise.
func Main(ctx context.Context, c Command, opts ...ParseOption) {
	env := ProcessEnv()
	res, err := c.Parse(ctx, os.Args[1:], append([]ParseOption{WithEnv(env)}, opts...)...)
	if err != nil {
		os.Exit(1)
	}
	os.Exit(res.ExitCode)
}
