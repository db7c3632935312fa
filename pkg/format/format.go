// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format turns action results into printable text.
package format

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Func formats an action result. options are the bound options of the
// parse. ok is false when there is nothing to print.
type Func func(ctx context.Context, result any, options map[string]any) (s string, ok bool, err error)

// Default prints strings as they are and error values as their message.
// Anything else is rendered like a literal, with colors when the context
// allows them. A nil result prints nothing.
func Default(ctx context.Context, result any, _ map[string]any) (string, bool, error) {
	switch v := result.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case error:
		return v.Error(), true, nil
	}
	return Inspect(ctx, result), true, nil
}

// Buffer prints a []byte result as text.
func Buffer(_ context.Context, result any, _ map[string]any) (string, bool, error) {
	switch v := result.(type) {
	case nil:
		return "", false, nil
	case []byte:
		return string(v), true, nil
	case string:
		return v, true, nil
	}
	return "", false, fmt.Errorf("format: cannot print %T as a buffer", result)
}

// JSON prints the result as compact JSON.
func JSON(_ context.Context, result any, _ map[string]any) (string, bool, error) {
	return marshalJSON(result, "")
}

// JSONPretty prints the result as JSON indented by two spaces.
func JSONPretty(_ context.Context, result any, _ map[string]any) (string, bool, error) {
	return marshalJSON(result, "  ")
}

func marshalJSON(result any, indent string) (string, bool, error) {
	if result == nil {
		return "", false, nil
	}
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(result); err != nil {
		return "", false, fmt.Errorf("format: %w", err)
	}
	return strings.TrimSuffix(b.String(), "\n"), true, nil
}

// YAML prints the result as a YAML document.
func YAML(_ context.Context, result any, _ map[string]any) (string, bool, error) {
	if result == nil {
		return "", false, nil
	}
	b, err := yaml.Marshal(result)
	if err != nil {
		return "", false, fmt.Errorf("format: %w", err)
	}
	return strings.TrimSuffix(string(b), "\n"), true, nil
}

// Lines prints a list one item per line.
func Lines(_ context.Context, result any, _ map[string]any) (string, bool, error) {
	switch v := result.(type) {
	case nil:
		return "", false, nil
	case []string:
		return strings.Join(v, "\n"), true, nil
	case []any:
		lines := make([]string, len(v))
		for i, item := range v {
			lines[i] = fmt.Sprint(item)
		}
		return strings.Join(lines, "\n"), true, nil
	}
	return "", false, fmt.Errorf("format: cannot print %T as lines", result)
}

// Capitalize prints a string result with underscores turned into spaces
// and the first letter of every word upper-cased.
func Capitalize(_ context.Context, result any, _ map[string]any) (string, bool, error) {
	switch v := result.(type) {
	case nil:
		return "", false, nil
	case string:
		return CapitalizeWords(v), true, nil
	}
	return "", false, fmt.Errorf("format: cannot capitalize %T", result)
}

// CapitalizeWords turns "first_name" into "First Name".
func CapitalizeWords(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(strings.ReplaceAll(s, "_", " "))
}

// Silenceable wraps f so that nothing is printed when the option field
// holds a truthy value, e.g. a --silent flag.
func Silenceable(f Func, field string) Func {
	if field == "" {
		field = "silent"
	}
	return func(ctx context.Context, result any, options map[string]any) (string, bool, error) {
		if truthy(options[field]) {
			return "", false, nil
		}
		return f(ctx, result, options)
	}
}

func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case float64:
		return v != 0
	}
	return true
}
