// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package file provides the in-memory file representation used for
// uploads (analysis and decompilation inputs) and downloads (outputs
// delivered as attachments).
//
// A File is content plus a display name. The display name may contain
// any characters; [File.SafeName] derives the printable-ASCII form the
// API accepts in multipart uploads.
package file

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mozillazg/go-unidecode"
	"github.com/zeebo/blake3"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/retdec-client/retdec-go/lib/apierror"
)

// File is an immutable in-memory file.
type File struct {
	content []byte
	name    string
}

// FromContent creates a file with the given content and name. The
// content is copied.
func FromContent(content []byte, name string) *File {
	return &File{content: bytes.Clone(content), name: name}
}

// FromPath reads the file at path. The name is the last element of the
// path.
func FromPath(path string) (*File, error) {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return nil, fmt.Errorf("no file name in %q", path)
	}
	return FromPathWithName(path, name)
}

// FromPathWithName reads the file at path but gives it a custom name.
func FromPathWithName(path, name string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return &File{content: content, name: name}, nil
}

// Name returns the display name of the file.
func (f *File) Name() string { return f.name }

// Content returns the raw content. The returned slice must not be
// modified.
func (f *File) Content() []byte { return f.content }

// Len returns the number of bytes in the content.
func (f *File) Len() int { return len(f.content) }

// Reader returns a reader over the content that does not copy it.
func (f *File) Reader() io.Reader { return bytes.NewReader(f.content) }

// ContentAsText returns the content as a string. The API encodes text
// as UTF-8; anything else is a decode error.
func (f *File) ContentAsText() (string, error) {
	if !utf8.Valid(f.content) {
		return "", apierror.New(apierror.KindDecode, "failed to parse file content as UTF-8")
	}
	return string(f.content), nil
}

// Checksum returns the hex-encoded BLAKE3-256 digest of the content.
func (f *File) Checksum() string {
	sum := blake3.Sum256(f.content)
	return hex.EncodeToString(sum[:])
}

// SafeName returns the name in the form used for uploads.
func (f *File) SafeName() string { return SafeName(f.name) }

// SaveInto writes the file into dir under its own name and returns the
// path of the written file.
func (f *File) SaveInto(dir string) (string, error) {
	return f.SaveIntoUnderName(dir, f.name)
}

// SaveIntoUnderName writes the file into dir under name. The name must
// be a plain file name; names from the API are never trusted to choose
// a directory.
func (f *File) SaveIntoUnderName(dir, name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("refusing to save a file named %q", name)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, f.content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write content into %q: %w", path, err)
	}
	return path, nil
}

// SafeName transliterates name to its nearest ASCII equivalent and
// replaces every remaining character outside printable ASCII (32-126)
// with '_'. For example "jalapeño.txt" becomes "jalapeno.txt",
// "Привет.txt" becomes "Privet.txt" and "a\nb" becomes "a_b".
func SafeName(name string) string {
	// Decompose, drop combining marks, recompose. A Chain carries state,
	// so each call builds its own.
	stripper := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripper, name)
	if err != nil {
		stripped = name
	}

	var builder strings.Builder
	builder.Grow(len(stripped))
	for _, r := range stripped {
		if r < utf8.RuneSelf {
			writePrintable(&builder, r)
			continue
		}
		transliterated := unidecode.Unidecode(string(r))
		if transliterated == "" {
			builder.WriteByte('_')
			continue
		}
		for _, t := range transliterated {
			writePrintable(&builder, t)
		}
	}
	return builder.String()
}

func writePrintable(builder *strings.Builder, r rune) {
	if r < 32 || r > 126 {
		builder.WriteByte('_')
	} else {
		builder.WriteRune(r)
	}
}
