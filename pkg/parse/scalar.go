// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
	"github.com/tidwall/gjson"
)

var (
	errBoolean = errors.New("Unable to parse boolean.")
	errNumber  = errors.New("Unable to parse number.")
	errInt     = errors.New("Unable to parse integer.")
	errFloat   = errors.New("Unable to parse float.")
	errDollars = errors.New("Unable to parse dollar amount.")
	errJSON    = errors.New("Unable to parse JSON.")
	errDate    = errors.New("Unable to parse Date.")
	errURL     = errors.New("Unable to parse URL.")
	errUUID    = errors.New("Unable to parse UUID.")
	errCSV     = errors.New("Unable to parse CSV.")
	errShell   = errors.New("Unable to parse shell words.")
)

var (
	trueWords  = []string{"true", "t", "yes", "y", "1"}
	falseWords = []string{"false", "f", "no", "n", "0"}

	intPrefixRE   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefixRE = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// String returns the raw value unchanged.
func String(_ context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	return *raw, nil
}

func lookupBool(s string) (value, ok bool) {
	s = strings.ToLower(s)
	for _, w := range trueWords {
		if s == w {
			return true, true
		}
	}
	for _, w := range falseWords {
		if s == w {
			return false, true
		}
	}
	return false, false
}

// Boolean accepts true, t, yes, y, 1 and false, f, no, n, 0 in any case.
// Anything else is an error.
func Boolean(_ context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	v, ok := lookupBool(*raw)
	if !ok {
		return nil, errBoolean
	}
	return v, nil
}

// BooleanLenient is like Boolean but produces nothing for words outside
// the boolean vocabulary instead of failing.
func BooleanLenient(_ context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	v, ok := lookupBool(*raw)
	if !ok {
		return nil, nil
	}
	return v, nil
}

// Number parses the whole value as a float64. Empty input is zero.
func Number(_ context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return float64(0), nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) {
		return nil, errNumber
	}
	return n, nil
}

// Int parses the leading integer of the value, so "1.5" is 1.
func Int(_ context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	m := intPrefixRE.FindString(strings.TrimSpace(*raw))
	if m == "" {
		return nil, errInt
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return nil, errInt
	}
	return n, nil
}

func floatPrefix(s string) (float64, bool) {
	m := floatPrefixRE.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float parses the leading decimal number of the value.
func Float(_ context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	n, ok := floatPrefix(*raw)
	if !ok {
		return nil, errFloat
	}
	return n, nil
}

// Dollars parses an amount such as "$1,234.50".
func Dollars(_ context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	n, ok := floatPrefix(strings.NewReplacer("$", "", ",", "").Replace(*raw))
	if !ok {
		return nil, errDollars
	}
	return n, nil
}

// IsNumeric reports whether s reads as an amount accepted by Dollars.
func IsNumeric(s string) bool {
	_, err := Dollars(context.Background(), &s, Meta{})
	return err == nil
}

// JSON decodes any JSON document. Objects become map[string]any, arrays
// []any and numbers float64. The literal null produces nothing.
func JSON(_ context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if !gjson.Valid(*raw) {
		return nil, errJSON
	}
	return gjson.Parse(*raw).Value(), nil
}

// Date parses a unix timestamp in milliseconds or a date in any layout
// dateparse understands, such as "2023-01-01" or RFC 3339.
func Date(_ context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms), nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil, errDate
	}
	return t, nil
}

// URL parses an absolute URL.
func URL(_ context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	u, err := url.Parse(*raw)
	if err != nil || u.Scheme == "" {
		return nil, errURL
	}
	return u, nil
}

// UUID parses a UUID in any form google/uuid accepts.
func UUID(_ context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, errUUID
	}
	return id, nil
}

// CSV splits a comma separated value into a []string. Fields may be
// double-quoted; a doubled quote inside a quoted field is a literal quote.
func CSV(_ context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if *raw == "" {
		return []string{}, nil
	}
	r := csv.NewReader(strings.NewReader(*raw))
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errCSV
	}
	return fields, nil
}

// Shell splits the value into words the way a POSIX shell would quote
// them. No expansion of any kind is performed.
func Shell(_ context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	words, err := shellquote.Split(*raw)
	if err != nil {
		return nil, errShell
	}
	return words, nil
}
