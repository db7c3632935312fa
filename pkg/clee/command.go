// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clee

import (
	"context"
	"fmt"
	"slices"

	"github.com/yeetrun/clee/pkg/format"
	"github.com/yeetrun/clee/pkg/parse"
)

// Action is the function a command runs once its input is bound. A
// returned value that is itself an error marks the run as failed without
// aborting it; a non-nil err aborts it.
type Action func(ctx context.Context, in Input) (any, error)

// Command is an immutable command definition. Every builder method
// returns a new Command and leaves the receiver untouched, so a Command
// may be shared and extended freely.
type Command struct {
	name        string
	title       string
	description string

	args []Argument
	opts []Option
	subs []Command

	help    flagSkin
	version versionSkin
	cwd     flagSkin

	action  Action
	format  format.Func
	unknown UnknownFlagPolicy
}

// flagSkin is the short flag, long flag and description of a built-in
// option such as help.
type flagSkin struct {
	short, long, description string
}

func (s flagSkin) enabled() bool {
	return s.short != "" || s.long != ""
}

func (s flagSkin) in(args []string) bool {
	if !s.enabled() {
		return false
	}
	return slices.ContainsFunc(args, s.matches)
}

func (s flagSkin) matches(flag string) bool {
	return flag != "" && (flag == s.short || flag == s.long)
}

// without clears the flags o takes over.
func (s flagSkin) without(o Option) flagSkin {
	if s.short != "" && s.short == o.Short {
		s.short = ""
	}
	if s.long == o.Long {
		s.long = ""
	}
	return s
}

func (s flagSkin) option() Option {
	return Option{Short: s.short, Long: s.long, Description: s.description}
}

// New returns a command named name with the default help flags and no
// action. Running it without an action prints its help.
func New(name string) Command {
	return Command{
		name:    name,
		help:    flagSkin{"-h", "--help", "Display help for command"},
		version: versionSkin{flagSkin: flagSkin{"-v", "--version", "Display version"}},
		format:  format.Default,
	}
}

func (c Command) Name() string        { return c.name }
func (c Command) Title() string       { return c.title }
func (c Command) Description() string { return c.description }

// Arguments returns the declared arguments in order.
func (c Command) Arguments() []Argument { return slices.Clone(c.args) }

// Options returns the declared options in registry order.
func (c Command) Options() []Option { return slices.Clone(c.opts) }

// Commands returns the subcommands in the order they were added.
func (c Command) Commands() []Command { return slices.Clone(c.subs) }

// Subcommand returns the subcommand called name.
func (c Command) Subcommand(name string) (Command, bool) {
	i := slices.IndexFunc(c.subs, func(s Command) bool { return s.name == name })
	if i < 0 {
		return Command{}, false
	}
	return c.subs[i], true
}

// WithTitle sets the banner shown at the top of the help text.
func (c Command) WithTitle(title string) Command {
	c.title = title
	return c
}

// WithDescription sets the description shown in help text and in the
// parent's command list.
func (c Command) WithDescription(desc string) Command {
	c.description = desc
	return c
}

// Argument appends a positional argument. param is "<name>" for a required
// argument, "[name]" for an optional one, with a trailing "..." inside the
// brackets for a variadic one. The parser defaults to parse.String.
//
// Only the last argument may be variadic; Argument panics otherwise.
func (c Command) Argument(param, description string, parser ...parse.Func) Command {
	name, required, variadic := parseParam(param)
	return c.addArgument(Argument{
		Name:        name,
		Description: description,
		Required:    required,
		Variadic:    variadic,
		Parser:      firstParser(parser),
	})
}

// RequiredArgument is like Argument but the argument is required whatever
// its brackets say.
func (c Command) RequiredArgument(param, description string, parser ...parse.Func) Command {
	name, _, variadic := parseParam(param)
	return c.addArgument(Argument{
		Name:        name,
		Description: description,
		Required:    true,
		Variadic:    variadic,
		Parser:      firstParser(parser),
	})
}

func (c Command) addArgument(a Argument) Command {
	if n := len(c.args); n > 0 && c.args[n-1].Variadic {
		panic(fmt.Sprintf("clee: argument %s follows variadic argument %s", a.Param(), c.args[n-1].Param()))
	}
	c.args = append(slices.Clip(c.args), a)
	return c
}

// Option adds an option. An option with the same long flag replaces the
// earlier definition in place. Built-in help, version and cwd flags equal
// to the option's flags are dropped.
func (c Command) Option(spec OptionSpec) Command {
	return c.addOption(spec.build(false))
}

// RequiredOption adds an option that must produce a value.
func (c Command) RequiredOption(spec OptionSpec) Command {
	return c.addOption(spec.build(true))
}

func (c Command) addOption(o Option) Command {
	opts := slices.Clone(c.opts)
	if i := slices.IndexFunc(opts, func(x Option) bool { return x.Field == o.Field }); i >= 0 {
		opts[i] = o
	} else {
		opts = append(opts, o)
	}
	c.opts = opts
	c.help = c.help.without(o)
	c.version.flagSkin = c.version.flagSkin.without(o)
	c.cwd = c.cwd.without(o)
	return c
}

// Command adds a subcommand, replacing any subcommand of the same name.
func (c Command) Command(sub Command) Command {
	subs := slices.Clone(c.subs)
	if i := slices.IndexFunc(subs, func(s Command) bool { return s.name == sub.name }); i >= 0 {
		subs[i] = sub
	} else {
		subs = append(subs, sub)
	}
	c.subs = subs
	return c
}

// WithHelpFlags replaces the help flags. Empty strings disable a flag.
func (c Command) WithHelpFlags(short, long, description string) Command {
	c.help = flagSkin{short, long, description}
	return c
}

// WithoutHelp disables the help flags. Help is still shown when the
// command has no action.
func (c Command) WithoutHelp() Command {
	c.help = flagSkin{}
	return c
}

// Action sets the function run by Parse.
func (c Command) Action(fn Action) Command {
	c.action = fn
	return c
}

// Format sets the formatter applied to the action's result.
func (c Command) Format(f format.Func) Command {
	c.format = f
	return c
}

// UnknownFlags sets how flags matching no option are treated.
func (c Command) UnknownFlags(p UnknownFlagPolicy) Command {
	c.unknown = p
	return c
}

// Call runs the action with in directly, without parsing or formatting.
func (c Command) Call(ctx context.Context, in Input) (any, error) {
	if c.action == nil {
		return nil, ErrNoAction
	}
	if in.Options == nil {
		in.Options = map[string]any{}
	}
	return c.action(ctx, in)
}

// Run calls the subcommand named name with in. It panics if there is no
// such subcommand.
func (c Command) Run(ctx context.Context, name string, in Input) (any, error) {
	sub, ok := c.Subcommand(name)
	if !ok {
		panic(fmt.Sprintf("Command %s not found", name))
	}
	return sub.Call(ctx, in)
}

func (c Command) findOption(flag string) (Option, bool) {
	i := slices.IndexFunc(c.opts, func(o Option) bool { return o.matches(flag) })
	if i < 0 {
		return Option{}, false
	}
	return c.opts[i], true
}
