// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ls lists a directory as a table.
//
//	ls --cwd /tmp
//	ls src --format json
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yeetrun/clee/pkg/clee"
	"github.com/yeetrun/clee/pkg/format"
	"github.com/yeetrun/clee/pkg/parse"
)

var formats = map[string]format.Func{
	"table": format.Table,
	"json":  format.JSONPretty,
	"yaml":  format.YAML,
}

func printer(ctx context.Context, result any, options map[string]any) (string, bool, error) {
	name, _ := options["format"].(string)
	f, ok := formats[name]
	if !ok {
		return "", false, fmt.Errorf("unknown format %q", name)
	}
	return f(ctx, result, options)
}

// dir lists the working directory when no directory is given.
func dir(ctx context.Context, raw *string, meta parse.Meta) (any, error) {
	if raw == nil {
		cur := "."
		raw = &cur
	}
	return parse.Directory(ctx, raw, meta)
}

func list(_ context.Context, in clee.Input) (any, error) {
	entries, _ := clee.Arg[[]os.DirEntry](in, 0)
	all, _ := clee.Opt[bool](in, "all")
	rows := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		if !all && e.Name()[0] == '.' {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		rows = append(rows, map[string]any{
			"name":     e.Name(),
			"size":     info.Size(),
			"mode":     info.Mode().String(),
			"modified": info.ModTime().Format("2006-01-02 15:04"),
		})
	}
	return rows, nil
}

var ls = clee.New("ls").
	WithDescription("List directory contents.").
	VersionFrom(".").
	CWD().
	Argument("[dir]", "Directory to list", dir).
	Option(clee.ShortLong("-a", "--all").Describe("Include dot files")).
	Option(clee.ShortLong("-f", "--format").WithParam("[name]").Describe("table, json or yaml").Parse(parse.Default(parse.String, "table"))).
	Format(printer).
	Action(list)

func main() {
	clee.Main(context.Background(), ls)
}
