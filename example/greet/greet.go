// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command greet says hello. It asks for a name when none is given.
//
//	greet Ada --times 2
//	greet shout ada lovelace
//	greet --version
package main

import (
	"context"
	"strings"

	"github.com/yeetrun/clee/pkg/clee"
	"github.com/yeetrun/clee/pkg/parse"
)

func hello(name string, times int) string {
	lines := make([]string, max(times, 1))
	for i := range lines {
		lines[i] = "Hello, " + name + "!"
	}
	return strings.Join(lines, "\n")
}

var shout = clee.New("shout").
	WithDescription("Greet loudly").
	Argument("<names...>", "People to greet").
	Action(func(_ context.Context, in clee.Input) (any, error) {
		names := clee.Args[string](in, 0)
		return strings.ToUpper(hello(strings.Join(names, " "), 1)), nil
	})

var greet = clee.New("greet").
	WithTitle("greet").
	WithDescription("Say hello to someone.").
	VersionFromBuild().
	Argument("<name>", "Who to greet", parse.PromptString).
	Option(clee.ShortLong("-t", "--times").WithParam("[count]").Describe("How many times").Parse(parse.Default(parse.Int, 1))).
	Command(shout).
	Action(func(_ context.Context, in clee.Input) (any, error) {
		name, _ := clee.Arg[string](in, 0)
		times, _ := clee.Opt[int](in, "times")
		return hello(name, times), nil
	})

func main() {
	clee.Main(context.Background(), greet)
}
