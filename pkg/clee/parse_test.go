// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clee

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/clee/pkg/flags"
	"github.com/yeetrun/clee/pkg/format"
	"github.com/yeetrun/clee/pkg/parse"
)

// capture sets an action that records its input and returns nothing.
func capture(c Command) (Command, *Input) {
	got := new(Input)
	return c.Action(func(_ context.Context, in Input) (any, error) {
		*got = in
		return nil, nil
	}), got
}

func quiet(c Command, args ...string) (Result, error) {
	return c.Parse(context.Background(), args, Silent(), WithEnv(&Env{}))
}

func TestBindOptions(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		args []string
		want map[string]any
	}{
		{
			name: "compound flag",
			cmd: New("clee").
				Option(ShortLong("-a", "--option-a")).
				Option(ShortLong("-b", "--option-b")).
				Option(ShortLong("-c", "--option-c")),
			args: []string{"-abc"},
			want: map[string]any{"optionA": true, "optionB": true, "optionC": true},
		},
		{
			name: "compound flag skips unknown letters",
			cmd:  New("clee").Option(ShortLong("-a", "--all")),
			args: []string{"-za"},
			want: map[string]any{"all": true},
		},
		{
			name: "variadic accumulation",
			cmd:  New("clee").Option(ShortLong("-f", "--flag").WithParam("[values...]").Parse(parse.Number)),
			args: []string{"-f", "1", "-f", "2", "-f", "3"},
			want: map[string]any{"flag": []any{1.0, 2.0, 3.0}},
		},
		{
			name: "variadic option takes following tokens",
			cmd:  New("clee").Option(Long("--tag").WithParam("[tags...]")),
			args: []string{"--tag", "a", "b", "--tag=c"},
			want: map[string]any{"tag": []any{"a", "b", "c"}},
		},
		{
			name: "variadic option drops nothing values",
			cmd:  New("clee").Option(Long("--b").WithParam("[v...]").Parse(parse.BooleanLenient)),
			args: []string{"--b", "maybe", "yes"},
			want: map[string]any{"b": []any{true}},
		},
		{
			name: "variadic option with only nothing values",
			cmd:  New("clee").Option(Long("--b").WithParam("[v...]").Parse(parse.BooleanLenient)),
			args: []string{"--b", "maybe"},
			want: map[string]any{},
		},
		{
			name: "inline value",
			cmd:  New("clee").Option(Long("--flag").WithParam("[value]")),
			args: []string{"--flag=custom", "next"},
			want: map[string]any{"flag": "custom"},
		},
		{
			name: "inline csv",
			cmd:  New("clee").Option(ShortLong("-f", "--flag").WithParam("[values]").Parse(parse.CSV)),
			args: []string{"-f=1,2,3"},
			want: map[string]any{"flag": []string{"1", "2", "3"}},
		},
		{
			name: "boolean takes a value",
			cmd:  New("clee").Option(Long("--color")),
			args: []string{"--color", "no"},
			want: map[string]any{"color": false},
		},
		{
			name: "last single value wins",
			cmd:  New("clee").Option(Long("--name").WithParam("[name]")),
			args: []string{"--name", "a", "--name", "b"},
			want: map[string]any{"name": "b"},
		},
		{
			name: "unset options are absent",
			cmd:  New("clee").Option(Long("--name").WithParam("[name]")).Option(Long("--dry-run")),
			args: nil,
			want: map[string]any{},
		},
		{
			name: "default value",
			cmd:  New("clee").Option(Long("--mode").WithParam("[mode]").Parse(parse.Default(parse.String, "fast"))),
			want: map[string]any{"mode": "fast"},
		},
		{
			name: "user help option",
			cmd:  New("clee").Option(ShortLong("-h", "--help")),
			args: []string{"-h"},
			want: map[string]any{"help": true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, got := capture(tt.cmd)
			res, err := quiet(c, tt.args...)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if res.HasMessage {
				t.Errorf("unexpected message %q", res.Message)
			}
			if diff := cmp.Diff(tt.want, got.Options); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBindArguments(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		args []string
		want []any
	}{
		{
			name: "in order",
			cmd:  New("clee").Argument("<a>", "").Argument("[b]", "", parse.Int),
			args: []string{"x", "42"},
			want: []any{"x", 42},
		},
		{
			name: "missing optional",
			cmd:  New("clee").Argument("[a]", "").Argument("[b]", ""),
			args: []string{"x"},
			want: []any{"x", nil},
		},
		{
			name: "default",
			cmd:  New("clee").Argument("[a]", "", parse.Default(parse.String, "default")),
			want: []any{"default"},
		},
		{
			name: "variadic",
			cmd:  New("clee").Argument("<first>", "").Argument("[rest...]", ""),
			args: []string{"arg1", "arg2", "arg3", "--flag"},
			want: []any{"arg1", []any{"arg2", "arg3", "--flag"}},
		},
		{
			name: "empty variadic",
			cmd:  New("clee").Argument("[rest...]", ""),
			want: []any{nil},
		},
		{
			name: "variadic drops nothing values",
			cmd:  New("clee").Argument("[rest...]", "", parse.BooleanLenient),
			args: []string{"yes", "maybe", "no"},
			want: []any{[]any{true, false}},
		},
		{
			name: "numeric compound tokens are positional",
			cmd:  New("clee").Option(ShortLong("-a", "--all")).Argument("[rest...]", ""),
			args: []string{"-5", "-12", "-1.5"},
			want: []any{[]any{"-5", "-12", "-1.5"}},
		},
		{
			name: "extra positionals ignored",
			cmd:  New("clee").Argument("[a]", ""),
			args: []string{"x", "y"},
			want: []any{"x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, got := capture(tt.cmd)
			if _, err := quiet(c, tt.args...); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBindErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		args []string
		want string
	}{
		{
			name: "required argument",
			cmd:  New("clee").Argument("<name>", ""),
			want: `Argument "<name>" is required.`,
		},
		{
			name: "required variadic",
			cmd:  New("clee").Argument("<files...>", ""),
			want: `Argument "<files...>" is required.`,
		},
		{
			name: "forced required argument",
			cmd:  New("clee").RequiredArgument("[name]", ""),
			want: `Argument "<name>" is required.`,
		},
		{
			name: "required option",
			cmd:  New("clee").RequiredOption(Long("--flag").WithParam("[value]")),
			want: `Option "--flag" must specify a value.`,
		},
		{
			name: "angle bracket param is required",
			cmd:  New("clee").Option(ShortLong("-f", "--flag").WithParam("<value>")),
			want: `Option "--flag" must specify a value.`,
		},
		{
			name: "parser error",
			cmd:  New("clee").Argument("<n>", "", parse.Int),
			args: []string{"abc"},
			want: "Unable to parse integer.",
		},
		{
			name: "boolean swallows a word",
			cmd:  New("clee").Option(Long("--verbose")).Argument("[file]", ""),
			args: []string{"--verbose", "file.txt"},
			want: "Unable to parse boolean.",
		},
		{
			name: "unknown flag",
			cmd:  New("clee").UnknownFlags(UnknownAsError),
			args: []string{"--nope"},
			want: `Unknown flag "--nope".`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := capture(tt.cmd)
			_, err := quiet(c, tt.args...)
			if err == nil {
				t.Fatal("Parse succeeded")
			}
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err, tt.want)
			}
		})
	}
}

func TestValueError(t *testing.T) {
	c, _ := capture(New("clee").Argument("<n>", "", parse.Int))
	_, err := quiet(c, "abc")
	var ve *ValueError
	if !errors.As(err, &ve) {
		t.Fatalf("error %v is not a ValueError", err)
	}
	if ve.Name != "<n>" || ve.Value != "abc" {
		t.Errorf("ValueError = %+v", ve)
	}
}

func TestFlagSyntaxError(t *testing.T) {
	c, _ := capture(New("clee"))
	_, err := quiet(c, "--flag x")
	var se *flags.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want a flags.SyntaxError", err)
	}
}

func TestUnknownFlagPolicies(t *testing.T) {
	base := New("clee").Argument("[rest...]", "")

	c, got := capture(base)
	if _, err := quiet(c, "a", "--flag", "b"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{[]any{"a", "--flag", "b"}}, got.Args); diff != "" {
		t.Errorf("positional policy (-want +got):\n%s", diff)
	}

	c, got = capture(base.UnknownFlags(UnknownAsOption))
	if _, err := quiet(c, "a", "--flag", "b", "c"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{[]any{"a", "c"}}, got.Args); diff != "" {
		t.Errorf("option policy (-want +got):\n%s", diff)
	}
	if len(got.Options) != 0 {
		t.Errorf("unknown flag was bound: %v", got.Options)
	}

	c, _ = capture(base.UnknownFlags(UnknownAsError))
	_, err := quiet(c, "--flag")
	var ue *UnknownFlagError
	if !errors.As(err, &ue) || ue.Flag != "--flag" || ue.Command != "clee" {
		t.Errorf("error = %v, want UnknownFlagError for --flag", err)
	}

	c, got = capture(base.UnknownFlags(UnknownAsOption))
	if _, err := quiet(c, "-xyz", "a"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{[]any{"a"}}, got.Args); diff != "" {
		t.Errorf("option policy compound (-want +got):\n%s", diff)
	}

	c, _ = capture(base.UnknownFlags(UnknownAsError))
	if _, err := quiet(c, "-12"); !errors.As(err, &ue) || ue.Flag != "-12" {
		t.Errorf("error = %v, want UnknownFlagError for -12", err)
	}

	if got := UnknownAsError.String(); got != "error" {
		t.Errorf("String = %q", got)
	}
}

func TestDispatch(t *testing.T) {
	sub := New("sub").Argument("[x]", "").Action(func(_ context.Context, in Input) (any, error) {
		return "ran sub", nil
	})
	root := New("clee").Version("1.2.3").Command(sub).Action(func(context.Context, Input) (any, error) {
		return "ran root", nil
	})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"action", nil, "ran root"},
		{"subcommand", []string{"sub"}, "ran sub"},
		{"subcommand help", []string{"sub", "-h"}, sub.Usage()},
		{"help", []string{"-h"}, root.Usage()},
		{"help anywhere", []string{"x", "--help"}, root.Usage()},
		{"version", []string{"--version"}, "1.2.3"},
		{"version before help", []string{"-h", "-v"}, "1.2.3"},
		{"subcommand name not first", []string{"x", "sub"}, "ran root"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := quiet(root, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, res.Message); diff != "" {
				t.Errorf("message mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"version":"2.1.0"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	c := New("clee").VersionFrom(filepath.Join(dir, "main.go"))
	if _, err := quiet(c, "-v"); err == nil {
		t.Error("version from a missing file succeeded")
	}

	c = New("clee").VersionFrom(dir)
	res, err := quiet(c, "-v")
	if err != nil || res.Message != "2.1.0" {
		t.Errorf("Parse = %+v, %v; want 2.1.0", res, err)
	}

	bad := t.TempDir()
	if err := os.WriteFile(filepath.Join(bad, "VERSION"), []byte("latest\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := quiet(New("clee").VersionFrom(bad), "--version"); !errors.Is(err, ErrUnknownVersion) {
		t.Errorf("error = %v, want ErrUnknownVersion", err)
	}

	// Without a source the version flag is an ordinary token.
	c, got := capture(New("clee").Argument("[a]", ""))
	if _, err := quiet(c, "-v"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"-v"}, got.Args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}

	if _, err := quiet(New("clee").Version("1.0.0").WithoutVersion(), "-v"); err != nil {
		t.Fatal(err)
	}
}

func TestCWD(t *testing.T) {
	root := t.TempDir()
	var changed []string
	newEnv := func() *Env {
		return &Env{Dir: root, Chdir: func(dir string) error {
			changed = append(changed, dir)
			return nil
		}}
	}
	c, got := capture(New("clee").CWD().Argument("[path]", "", parse.Path))

	for _, args := range [][]string{
		{"--cwd", "sub", "file.txt"},
		{"file.txt", "--cwd=sub"},
	} {
		changed = nil
		env := newEnv()
		if _, err := c.Parse(context.Background(), args, Silent(), WithEnv(env)); err != nil {
			t.Fatal(err)
		}
		want := filepath.Join(root, "sub")
		if diff := cmp.Diff([]string{want}, changed); diff != "" {
			t.Errorf("%q: chdir mismatch (-want +got):\n%s", args, diff)
		}
		if env.Dir != want {
			t.Errorf("%q: Dir = %q, want %q", args, env.Dir, want)
		}
		p, ok := Arg[parse.PathInfo](*got, 0)
		if !ok || p.Absolute != filepath.Join(want, "file.txt") {
			t.Errorf("%q: path = %+v", args, p)
		}
	}

	changed = nil
	env := newEnv()
	if _, err := c.Parse(context.Background(), []string{"--cwd", "--x"}, Silent(), WithEnv(env)); err != nil {
		t.Fatal(err)
	}
	if len(changed) != 0 || env.Dir != root {
		t.Errorf("--cwd followed by a flag changed directory: %q, Dir = %q", changed, env.Dir)
	}
	if p, _ := Arg[parse.PathInfo](*got, 0); p.Absolute != filepath.Join(root, "--x") {
		t.Errorf("path = %+v, want the flag kept as a positional", p)
	}

	env = newEnv()
	env.Chdir = func(string) error { return os.ErrNotExist }
	if _, err := c.Parse(context.Background(), []string{"--cwd", "gone"}, Silent(), WithEnv(env)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want ErrNotExist", err)
	}
}

func TestOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	env := &Env{Stdout: &stdout, Stderr: &stderr}
	c := New("clee").Argument("<name>", "").Action(func(_ context.Context, in Input) (any, error) {
		name, _ := Arg[string](in, 0)
		if name == "bad" {
			return errors.New("bad name"), nil
		}
		return "hello " + name, nil
	})

	res, err := c.Parse(context.Background(), []string{"ada"}, WithEnv(env))
	if err != nil {
		t.Fatal(err)
	}
	if res.Message != "hello ada" || res.ExitCode != 0 {
		t.Errorf("Parse = %+v", res)
	}
	if got := stdout.String(); got != "hello ada\n" {
		t.Errorf("stdout = %q", got)
	}

	stdout.Reset()
	res, err = c.Parse(context.Background(), []string{"bad"}, WithEnv(env))
	if err != nil {
		t.Fatal(err)
	}
	if res.ExitCode != 1 || env.ExitCode != 1 || res.Message != "bad name" {
		t.Errorf("Parse = %+v, env exit code %d", res, env.ExitCode)
	}

	stdout.Reset()
	if _, err := c.Parse(context.Background(), nil, WithEnv(env)); err == nil {
		t.Fatal("Parse succeeded without a required argument")
	}
	if got := stderr.String(); got != "Argument \"<name>\" is required.\n" {
		t.Errorf("stderr = %q", got)
	}

	stdout.Reset()
	stderr.Reset()
	res, _ = c.Parse(context.Background(), []string{"ada"}, WithEnv(env), Silent())
	if stdout.Len()+stderr.Len() != 0 || res.Message != "hello ada" {
		t.Errorf("silent parse wrote %q %q", stdout.String(), stderr.String())
	}
}

func TestVerbose(t *testing.T) {
	var stderr bytes.Buffer
	c := New("clee").Command(New("sub").Action(func(context.Context, Input) (any, error) { return nil, nil }))
	if _, err := c.Parse(context.Background(), []string{"sub"}, Verbose(), WithEnv(&Env{Stderr: &stderr})); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "running subcommand sub") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestFormat(t *testing.T) {
	c := New("clee").
		Option(Long("--silent")).
		Format(format.Silenceable(format.JSON, "")).
		Action(func(context.Context, Input) (any, error) {
			return map[string]any{"ok": true}, nil
		})
	res, err := quiet(c)
	if err != nil || res.Message != `{"ok":true}` {
		t.Errorf("Parse = %+v, %v", res, err)
	}
	res, err = quiet(c, "--silent", "yes")
	if err != nil || res.HasMessage {
		t.Errorf("Parse = %+v, %v; want no message", res, err)
	}

	c = c.Format(func(context.Context, any, map[string]any) (string, bool, error) {
		return "", false, errors.New("cannot print")
	})
	if _, err := quiet(c); err == nil || err.Error() != "cannot print" {
		t.Errorf("error = %v", err)
	}
}

func TestParseLine(t *testing.T) {
	c, got := capture(New("clee").Argument("[name]", "").Option(Long("--loud")))
	if _, err := c.ParseLine(context.Background(), `"Jane Doe" --loud=yes`, Silent(), WithEnv(&Env{})); err != nil {
		t.Fatal(err)
	}
	want := Input{Args: []any{"Jane Doe"}, Options: map[string]any{"loud": true}}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("input mismatch (-want +got):\n%s", diff)
	}
	if _, err := c.ParseLine(context.Background(), `"unterminated`, Silent()); err == nil {
		t.Error("ParseLine accepted an unterminated quote")
	}
}

type fakePrompter struct {
	answer string
	asked  []string
}

func (p *fakePrompter) Line(msg string) (string, error) {
	p.asked = append(p.asked, msg)
	return p.answer, nil
}

func (p *fakePrompter) Secret(msg string) (string, error) { return p.Line(msg) }

func (p *fakePrompter) Confirm(msg string) (bool, error) {
	p.asked = append(p.asked, msg)
	return true, nil
}

func TestPromptThroughEnv(t *testing.T) {
	p := &fakePrompter{answer: "Ada"}
	c, got := capture(New("clee").Argument("<name>", "Your name", parse.PromptString))
	if _, err := c.Parse(context.Background(), nil, Silent(), WithEnv(&Env{Prompter: p})); err != nil {
		t.Fatal(err)
	}
	if name, _ := Arg[string](*got, 0); name != "Ada" {
		t.Errorf("name = %q, want Ada", name)
	}
	if diff := cmp.Diff([]string{"name (Your name)"}, p.asked); diff != "" {
		t.Errorf("questions mismatch (-want +got):\n%s", diff)
	}
}

func TestPromptSharesStdinAcrossParses(t *testing.T) {
	env := &Env{Stdin: strings.NewReader("alice\nbob\n")}
	c := New("clee").Argument("[name]", "", parse.PromptString).Action(func(_ context.Context, in Input) (any, error) {
		name, _ := Arg[string](in, 0)
		return name, nil
	})
	for _, want := range []string{"alice", "bob"} {
		res, err := c.Parse(context.Background(), nil, Silent(), WithEnv(env))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if res.Message != want {
			t.Errorf("Message = %q, want %q", res.Message, want)
		}
	}
}

func TestPromptReadsStdin(t *testing.T) {
	var stderr bytes.Buffer
	env := &Env{Stdin: strings.NewReader("Grace\n"), Stderr: &stderr}
	c, got := capture(New("clee").Argument("<name>", "", parse.PromptString))
	if _, err := c.Parse(context.Background(), nil, Silent(), WithEnv(env)); err != nil {
		t.Fatal(err)
	}
	if name, _ := Arg[string](*got, 0); name != "Grace" {
		t.Errorf("name = %q, want Grace", name)
	}
	if stderr.String() != "name: " {
		t.Errorf("prompt = %q", stderr.String())
	}
}
