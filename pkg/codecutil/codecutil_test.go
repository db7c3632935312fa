// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codecutil

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestReadAllZstd(t *testing.T) {
	want := []byte("hello from a compressed payload\n")
	compressed, err := ZstdCompress(want)
	if err != nil {
		t.Fatalf("ZstdCompress: %v", err)
	}
	got, err := ReadAll(bytes.NewReader(compressed), "payload.txt.zst")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadAll = %q, want %q", got, want)
	}
}

func TestReadAllGzip(t *testing.T) {
	want := []byte("gzip body")
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	got, err := ReadAll(&buf, "body.GZ")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadAll = %q, want %q", got, want)
	}
}

func TestReadAllPlain(t *testing.T) {
	got, err := ReadAll(bytes.NewReader([]byte("plain")), "notes.txt")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "plain" {
		t.Errorf("ReadAll = %q, want %q", got, "plain")
	}
}

func TestIsCompressed(t *testing.T) {
	for name, want := range map[string]bool{
		"a.zst":  true,
		"a.gz":   true,
		"a.txt":  false,
		"a":      false,
		"a.ZSTD": true,
	} {
		if got := IsCompressed(name); got != want {
			t.Errorf("IsCompressed(%q) = %v, want %v", name, got, want)
		}
	}
}
