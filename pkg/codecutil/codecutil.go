// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codecutil

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// IsCompressed reports whether name has an extension ReadAll decodes.
func IsCompressed(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd", ".gz":
		return true
	}
	return false
}

// ReadAll reads r fully, decompressing it when name ends in .zst or .gz.
func ReadAll(r io.Reader, name string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return ZstdDecompress(r)
	case ".gz":
		return GzipDecompress(r)
	}
	return io.ReadAll(r)
}

func ZstdDecompress(r io.Reader) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer decoder.Close()

	if err := decoder.Reset(r); err != nil {
		return nil, fmt.Errorf("failed to reset decoder: %w", err)
	}
	var buf bytes.Buffer
	if _, err := decoder.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return buf.Bytes(), nil
}

func ZstdCompress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	encoder, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	if _, err := encoder.Write(src); err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to compress: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress: %w", err)
	}
	return buf.Bytes(), nil
}

func GzipDecompress(r io.Reader) ([]byte, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer zr.Close()
	b, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return b, nil
}
