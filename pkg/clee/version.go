// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clee

import (
	"github.com/yeetrun/clee/pkg/manifest"
	"tailscale.com/types/lazy"
)

// versionSkin is the version option: its flags plus where the version
// comes from. It is active only when it has a flag and a source.
type versionSkin struct {
	flagSkin
	number string
	source *versionSource
}

// versionSource resolves a version once and remembers the outcome. It is
// shared by every copy of a Command.
type versionSource struct {
	fill func() (string, error)
	v    lazy.SyncValue[string]
}

func (s *versionSource) get() (string, error) {
	return s.v.GetErr(s.fill)
}

func (v versionSkin) active() bool {
	return v.enabled() && (v.number != "" || v.source != nil)
}

func (v versionSkin) resolve() (string, error) {
	if v.number != "" {
		return v.number, nil
	}
	if v.source == nil {
		return "", ErrUnknownVersion
	}
	s, err := v.source.get()
	if err != nil || s == "" {
		return "", ErrUnknownVersion
	}
	return s, nil
}

// Version sets an explicit version string.
func (c Command) Version(number string) Command {
	c.version.number = number
	c.version.source = nil
	return c
}

// VersionFrom reads the version from the nearest project manifest at or
// above path. path may be a file, a directory or a file:// URL. See
// manifest.Resolve for the files recognized.
func (c Command) VersionFrom(path string) Command {
	c.version.number = ""
	c.version.source = &versionSource{fill: func() (string, error) {
		return manifest.Resolve(path)
	}}
	return c
}

// VersionFromBuild reports the main module version recorded in the binary.
func (c Command) VersionFromBuild() Command {
	c.version.number = ""
	c.version.source = &versionSource{fill: manifest.FromBuild}
	return c
}

// WithVersionFlags replaces the version flags. Empty strings disable a flag.
func (c Command) WithVersionFlags(short, long, description string) Command {
	c.version.flagSkin = flagSkin{short, long, description}
	return c
}

// WithoutVersion removes the version option.
func (c Command) WithoutVersion() Command {
	c.version = versionSkin{}
	return c
}
