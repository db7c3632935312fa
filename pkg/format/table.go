// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/yeetrun/clee/pkg/parse"
	"tailscale.com/util/set"
)

// Table prints a list of rows as aligned columns. Columns appear in the
// order their keys are first seen, each row's keys sorted. Headers are
// capitalized and numeric cells are right-aligned.
func Table(_ context.Context, result any, _ map[string]any) (string, bool, error) {
	var rows []map[string]string
	switch v := result.(type) {
	case nil:
		return "", false, nil
	case []map[string]string:
		rows = v
	case []map[string]any:
		rows = make([]map[string]string, len(v))
		for i, r := range v {
			rows[i] = make(map[string]string, len(r))
			for k, x := range r {
				if x != nil {
					rows[i][k] = fmt.Sprint(x)
				}
			}
		}
	default:
		return "", false, fmt.Errorf("format: cannot print %T as a table", result)
	}
	s := renderTable(rows)
	if s == "" {
		return "", false, nil
	}
	return s, true, nil
}

// renderTable returns "" when the rows have no columns.
func renderTable(rows []map[string]string) string {
	var headers []string
	seen := make(set.Set[string])
	for _, r := range rows {
		keys := make([]string, 0, len(r))
		for k := range r {
			if !seen.Contains(k) {
				keys = append(keys, k)
			}
		}
		slices.Sort(keys)
		for _, k := range keys {
			seen.Add(k)
			headers = append(headers, k)
		}
	}
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = width(CapitalizeWords(h))
		for _, r := range rows {
			widths[i] = max(widths[i], width(r[h]))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = padEnd(CapitalizeWords(h), widths[i])
	}
	lines = append(lines, strings.Join(cells, " "))
	for _, r := range rows {
		cells := make([]string, len(headers))
		for i, h := range headers {
			if v := r[h]; parse.IsNumeric(v) {
				cells[i] = padStart(v, widths[i])
			} else {
				cells[i] = padEnd(v, widths[i])
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

// width counts runes so that non-ASCII cells line up.
func width(s string) int {
	return utf8.RuneCountInString(s)
}

func padEnd(s string, n int) string {
	if w := width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

func padStart(s string, n int) string {
	if w := width(s); w < n {
		return strings.Repeat(" ", n-w) + s
	}
	return s
}
