// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manifest finds the version of a program from the project
// manifest nearest to it, or from the build information in the binary.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no manifest with a version exists at or
// above the start directory.
var ErrNotFound = errors.New("no project manifest with a version found")

// Manifest is a version found in a project file.
type Manifest struct {
	Path    string
	Version string
}

type reader struct {
	name    string
	version func([]byte) (string, error)
}

// readers are tried in order in every directory.
var readers = []reader{
	{"VERSION", plainVersion},
	{"package.json", packageJSONVersion},
	{"Cargo.toml", cargoVersion},
	{"pyproject.toml", pyprojectVersion},
	{"Chart.yaml", chartVersion},
	{"chart.yaml", chartVersion},
}

// Find walks up from start, which may be a file, a directory or a file://
// URL, and returns the first manifest that declares a version.
func Find(start string) (Manifest, error) {
	dir, err := startDir(start)
	if err != nil {
		return Manifest{}, err
	}
	for {
		for _, r := range readers {
			path := filepath.Join(dir, r.name)
			b, err := os.ReadFile(path)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				return Manifest{}, err
			}
			v, err := r.version(b)
			if err != nil {
				return Manifest{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
			if v != "" {
				return Manifest{Path: path, Version: v}, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return Manifest{}, ErrNotFound
}

// Resolve finds the nearest manifest and validates its version.
func Resolve(start string) (string, error) {
	m, err := Find(start)
	if err != nil {
		return "", err
	}
	return Validate(m.Version)
}

// FromBuild returns the main module version recorded by the Go toolchain.
// Binaries built from a working tree report "(devel)", which is an error.
func FromBuild() (string, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", errors.New("no build information in binary")
	}
	return Validate(bi.Main.Version)
}

// Validate checks that v is a semantic version and returns it as written.
func Validate(v string) (string, error) {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %w", v, err)
	}
	return sv.Original(), nil
}

func startDir(start string) (string, error) {
	p := strings.TrimPrefix(start, "file://")
	if p == "" {
		return os.Getwd()
	}
	p, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	fi, err := os.Stat(p)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		p = filepath.Dir(p)
	}
	return p, nil
}

func plainVersion(b []byte) (string, error) {
	line, _, _ := strings.Cut(string(b), "\n")
	return strings.TrimSpace(line), nil
}

func packageJSONVersion(b []byte) (string, error) {
	if !gjson.ValidBytes(b) {
		return "", errors.New("invalid JSON")
	}
	return gjson.GetBytes(b, "version").String(), nil
}

// tomlString returns the string at path in a decoded TOML document.
// Values of other types, such as Cargo's version.workspace tables, are
// treated as absent.
func tomlString(doc map[string]any, path ...string) string {
	var cur any = doc
	for _, k := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[k]
	}
	s, _ := cur.(string)
	return s
}

func cargoVersion(b []byte) (string, error) {
	var doc map[string]any
	if err := toml.Unmarshal(b, &doc); err != nil {
		return "", err
	}
	if v := tomlString(doc, "package", "version"); v != "" {
		return v, nil
	}
	return tomlString(doc, "workspace", "package", "version"), nil
}

func pyprojectVersion(b []byte) (string, error) {
	var doc map[string]any
	if err := toml.Unmarshal(b, &doc); err != nil {
		return "", err
	}
	if v := tomlString(doc, "project", "version"); v != "" {
		return v, nil
	}
	return tomlString(doc, "tool", "poetry", "version"), nil
}

func chartVersion(b []byte) (string, error) {
	var chart struct {
		Version string `yaml:"version"`
	}
	if err := yaml.Unmarshal(b, &chart); err != nil {
		return "", err
	}
	return chart.Version, nil
}
