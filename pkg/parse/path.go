// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yeetrun/clee/pkg/codecutil"
)

// PathInfo is a path resolved against the working directory.
type PathInfo struct {
	Absolute string
	Relative string // relative to the working directory
	Root     string
	Dir      string
	Base     string
	Ext      string
	Name     string // Base without Ext
}

// ResolvePath resolves s against dir. A "file://" prefix is stripped.
func ResolvePath(dir, s string) PathInfo {
	body := strings.TrimPrefix(s, "file://")
	abs := body
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(dir, body)
	}
	abs = filepath.Clean(abs)
	rel, err := filepath.Rel(dir, abs)
	if err != nil {
		rel = abs
	}
	base := filepath.Base(abs)
	ext := filepath.Ext(base)
	return PathInfo{
		Absolute: abs,
		Relative: rel,
		Root:     filepath.VolumeName(abs) + string(filepath.Separator),
		Dir:      filepath.Dir(abs),
		Base:     base,
		Ext:      ext,
		Name:     strings.TrimSuffix(base, ext),
	}
}

// Path resolves the value against the context working directory and
// produces a PathInfo.
func Path(ctx context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	return ResolvePath(Dir(ctx), *raw), nil
}

// File reads the file named by the value. Files ending in .zst or .gz are
// decompressed.
func File(ctx context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	p := ResolvePath(Dir(ctx), *raw)
	f, err := os.Open(p.Absolute)
	if err != nil {
		return nil, fmt.Errorf("Unable to read file %q: %w", p.Relative, err)
	}
	defer f.Close()
	b, err := codecutil.ReadAll(f, p.Base)
	if err != nil {
		return nil, fmt.Errorf("Unable to read file %q: %w", p.Relative, err)
	}
	return b, nil
}

// Directory lists the entries of the directory named by the value.
func Directory(ctx context.Context, raw *string, _ Meta) (any, error) {
	if raw == nil {
		return nil, nil
	}
	p := ResolvePath(Dir(ctx), *raw)
	entries, err := os.ReadDir(p.Absolute)
	if err != nil {
		return nil, fmt.Errorf("Unable to read directory %q: %w", p.Relative, err)
	}
	return entries, nil
}
