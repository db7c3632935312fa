// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clee builds command-line programs from declarative definitions
// of arguments, options and subcommands, and generates their help text.
//
// # Basic Usage
//
// A Command is an immutable value. Each builder call returns a new one:
//
//	cmd := clee.New("greet").
//	    WithDescription("Say hello").
//	    Argument("<name>", "Who to greet").
//	    Option(clee.ShortLong("-s", "--shout").Describe("Use capitals")).
//	    Action(func(ctx context.Context, in clee.Input) (any, error) {
//	        name, _ := clee.Arg[string](in, 0)
//	        if shout, _ := clee.Opt[bool](in, "shout"); shout {
//	            name = strings.ToUpper(name)
//	        }
//	        return "Hello, " + name, nil
//	    })
//
//	func main() {
//	    clee.Main(context.Background(), cmd)
//	}
//
// # Parameters
//
// Arguments and option values are declared with bracket tokens:
//   - <name>: required
//   - [name]: optional
//   - [name...] or <name...>: variadic, only valid for the last argument
//
// Options are keyed by their long flag in camel case, so --dry-run is bound
// to the field "dryRun". An option without a parameter token is boolean.
//
// # Flag Syntax
//
//   - --flag value and -f value
//   - --flag=value and -f=value
//   - -abc sets the boolean options -a, -b and -c
//   - -f 1 -f 2 collects [1, 2] for a variadic option
//
// A flag that matches no option is kept as a positional token unless the
// command chooses another UnknownFlagPolicy.
//
// # Parsers
//
// Values are converted by parse.Func functions from package parse. Parsers
// run one at a time in declaration order, so prompt parsers ask their
// questions in a predictable order.
package clee

//go:generate go run github.com/google/addlicense -c AUTHORS -l bsd -ignore _examples/** ../..
