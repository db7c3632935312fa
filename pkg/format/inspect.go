// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/yeetrun/clee/pkg/tui"
)

var identRE = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Inspect renders v on one line the way a literal would be written:
// strings single-quoted, lists as "[ a, b ]" and maps and structs as
// "{ key: value }". Map keys are sorted. Strings are green and numbers and
// booleans yellow when the context's Colorizer is enabled.
func Inspect(ctx context.Context, v any) string {
	var b strings.Builder
	inspect(&b, tui.FromContext(ctx), reflect.ValueOf(v))
	return b.String()
}

var (
	timeType  = reflect.TypeFor[time.Time]()
	errorType = reflect.TypeFor[error]()
	bytesType = reflect.TypeFor[[]byte]()
)

func inspect(b *strings.Builder, c tui.Colorizer, v reflect.Value) {
	if !v.IsValid() {
		b.WriteString(c.Dim("null"))
		return
	}
	switch {
	case v.Type() == timeType:
		b.WriteString(c.Magenta(v.Interface().(time.Time).UTC().Format("2006-01-02T15:04:05.000Z")))
		return
	case v.Type() == bytesType:
		inspectBytes(b, v.Bytes())
		return
	case v.Type().Implements(errorType) && v.Kind() != reflect.Interface:
		if v.Kind() == reflect.Pointer && v.IsNil() {
			b.WriteString(c.Dim("null"))
			return
		}
		fmt.Fprintf(b, "[Error: %s]", v.Interface().(error).Error())
		return
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			b.WriteString(c.Dim("null"))
			return
		}
		if s, ok := v.Interface().(fmt.Stringer); ok && v.Kind() == reflect.Pointer {
			b.WriteString(c.Green(quote(s.String())))
			return
		}
		inspect(b, c, v.Elem())
	case reflect.String:
		b.WriteString(c.Green(quote(v.String())))
	case reflect.Bool:
		b.WriteString(c.Yellow(strconv.FormatBool(v.Bool())))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(c.Yellow(strconv.FormatInt(v.Int(), 10)))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString(c.Yellow(strconv.FormatUint(v.Uint(), 10)))
	case reflect.Float32, reflect.Float64:
		b.WriteString(c.Yellow(strconv.FormatFloat(v.Float(), 'f', -1, 64)))
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Array {
			if s, ok := v.Interface().(fmt.Stringer); ok {
				b.WriteString(c.Green(quote(s.String())))
				return
			}
		}
		if v.Len() == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[ ")
		for i := range v.Len() {
			if i > 0 {
				b.WriteString(", ")
			}
			inspect(b, c, v.Index(i))
		}
		b.WriteString(" ]")
	case reflect.Map:
		keys := v.MapKeys()
		if len(keys) == 0 {
			b.WriteString("{}")
			return
		}
		slices.SortFunc(keys, func(x, y reflect.Value) int {
			return strings.Compare(fmt.Sprint(x.Interface()), fmt.Sprint(y.Interface()))
		})
		b.WriteString("{ ")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(key(fmt.Sprint(k.Interface())))
			b.WriteString(": ")
			inspect(b, c, v.MapIndex(k))
		}
		b.WriteString(" }")
	case reflect.Struct:
		inspectStruct(b, c, v)
	default:
		fmt.Fprint(b, v.Interface())
	}
}

func inspectStruct(b *strings.Builder, c tui.Colorizer, v reflect.Value) {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		b.WriteString(c.Green(quote(s.String())))
		return
	}
	t := v.Type()
	n := 0
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag == "-" {
			continue
		} else if tag != "" {
			name = tag
		}
		if n == 0 {
			b.WriteString("{ ")
		} else {
			b.WriteString(", ")
		}
		n++
		b.WriteString(key(name))
		b.WriteString(": ")
		inspect(b, c, v.Field(i))
	}
	if n == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString(" }")
}

func inspectBytes(b *strings.Builder, p []byte) {
	b.WriteString("<Buffer")
	for _, x := range p {
		fmt.Fprintf(b, " %02x", x)
	}
	b.WriteString(">")
}

// quote single-quotes s, or double-quotes it when s contains a single
// quote and no double quote.
func quote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return strconv.Quote(s)
	}
	q := strconv.Quote(s)
	q = strings.ReplaceAll(q[1:len(q)-1], `\"`, `"`)
	return "'" + strings.ReplaceAll(q, "'", `\'`) + "'"
}

func key(k string) string {
	if identRE.MatchString(k) {
		return k
	}
	return quote(k)
}
