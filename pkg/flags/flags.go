// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flags classifies command-line tokens as short, long or compound
// flags and splits flag tokens into their parts.
//
// A flag token has up to four parts. For "--output=out.txt":
//
//	staff:  "--output"  (the flag without its body)
//	prefix: "--"
//	name:   "output"
//	body:   "out.txt"
package flags

import (
	"fmt"
	"regexp"
	"strings"
)

// Flag prefixes.
const (
	ShortPrefix = "-"
	LongPrefix  = "--"
	inverse     = "--no-"
)

var (
	flagRE     = regexp.MustCompile(`^--?[^-=\s]+`)
	shortRE    = regexp.MustCompile(`^-[^-=\s]+`)
	longRE     = regexp.MustCompile(`^--[^-=\s]+`)
	compoundRE = regexp.MustCompile(`^-[^-=\s]{2,}`)
	partsRE    = regexp.MustCompile(`^((--?)([^=\s]+))(?:=(\S*))?$`)
	letterRE   = regexp.MustCompile(`^[a-zA-Z]$`)
)

// Parts is a flag token split into its components.
type Parts struct {
	Staff  string  // flag without body, e.g. "--help" for "--help=true"
	Prefix string  // "-" or "--"
	Name   string  // flag without prefix, e.g. "help"
	Body   *string // value after the first "=", nil when absent
}

// HasBody reports whether the flag carried an inline "=value".
func (p Parts) HasBody() bool {
	return p.Body != nil
}

// SyntaxError is returned by Parse when a token does not follow the flag
// grammar. Callers that gate on IsFlag should never see it.
type SyntaxError struct {
	Token string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("could not parse flag: %s", e.Token)
}

// IsFlag reports whether s starts with one or two dashes followed by at
// least one character that is not a dash, "=" or whitespace.
func IsFlag(s string) bool {
	return flagRE.MatchString(s)
}

// IsShortFlag reports whether s is a single-dash flag. Compound flags
// such as "-abc" are short flags too.
func IsShortFlag(s string) bool {
	return shortRE.MatchString(s)
}

// IsLongFlag reports whether s is a double-dash flag.
func IsLongFlag(s string) bool {
	return longRE.MatchString(s)
}

// IsCompoundFlag reports whether s bundles two or more short flags, as in "-abc".
func IsCompoundFlag(s string) bool {
	return compoundRE.MatchString(s)
}

// IsInverseFlag reports whether a long flag negates a boolean, as in "--no-color".
func IsInverseFlag(long string) bool {
	return strings.HasPrefix(long, inverse)
}

// LongFlagName strips the "--" prefix from a long flag.
func LongFlagName(long string) string {
	return strings.TrimPrefix(long, LongPrefix)
}

// IsLetter reports whether s is a single ASCII letter.
func IsLetter(s string) bool {
	return letterRE.MatchString(s)
}

// ShortFlag returns the short flag for a letter, e.g. "a" -> "-a".
func ShortFlag(letter string) string {
	return ShortPrefix + letter
}

// Parse splits a flag token on its first "=".
func Parse(token string) (Parts, error) {
	m := partsRE.FindStringSubmatchIndex(token)
	if m == nil {
		return Parts{}, &SyntaxError{Token: token}
	}
	p := Parts{
		Staff:  token[m[2]:m[3]],
		Prefix: token[m[4]:m[5]],
		Name:   token[m[6]:m[7]],
	}
	if m[8] >= 0 {
		body := token[m[8]:m[9]]
		p.Body = &body
	}
	return p, nil
}

// MustParse is like Parse but panics on malformed tokens.
func MustParse(token string) Parts {
	p, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return p
}
