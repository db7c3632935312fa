// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flags

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CamelCase converts dash, underscore and space separated words to
// lowerCamelCase: "with-dash_and underscore" -> "withDashAndUnderscore".
// Leading and trailing separators are dropped.
func CamelCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	var b strings.Builder
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if i == 0 {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		b.WriteString(w[size:])
	}
	return b.String()
}

// FieldName returns the options-map key for a long flag:
// "--dry-run" -> "dryRun".
func FieldName(long string) string {
	return CamelCase(LongFlagName(long))
}
