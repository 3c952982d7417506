// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package fakeservice

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path"
	"strings"
)

// magic numbers recognized by fileFormat, longest first.
var formats = []struct {
	magic []byte
	name  string
}{
	{[]byte("\xfe\xed\xfa\xce"), "Mach-O"},
	{[]byte("\xce\xfa\xed\xfe"), "Mach-O"},
	{[]byte("\xfe\xed\xfa\xcf"), "Mach-O"},
	{[]byte("\xcf\xfa\xed\xfe"), "Mach-O"},
	{[]byte("\x7fELF"), "ELF"},
	{[]byte("MZ"), "PE"},
}

func fileFormat(content []byte) string {
	for _, format := range formats {
		if bytes.HasPrefix(content, format.magic) {
			return format.name
		}
	}
	return "unknown"
}

// stem returns name without its directory and final extension.
func stem(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	if extension := path.Ext(base); extension != "" && extension != base {
		base = strings.TrimSuffix(base, extension)
	}
	return base
}

// header returns up to the first 16 bytes of content in hex.
func header(content []byte) string {
	return hex.EncodeToString(content[:min(len(content), 16)])
}

// analysisOutput renders the analysis result in the job's output format.
// It returns the body, its content type and the file name extension.
func analysisOutput(j *job) ([]byte, string, string) {
	input := j.input
	if j.outputFormat == "json" {
		document := map[string]any{
			"inputFile":  input.Name(),
			"fileSize":   input.Len(),
			"fileFormat": fileFormat(input.Content()),
			"blake3":     input.Checksum(),
		}
		if j.verbose {
			document["header"] = header(input.Content())
		}
		body, _ := json.MarshalIndent(document, "", "    ")
		return append(body, '\n'), "application/json", ".json"
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Input file  : %s\n", input.Name())
	fmt.Fprintf(&body, "File size   : %d\n", input.Len())
	fmt.Fprintf(&body, "File format : %s\n", fileFormat(input.Content()))
	fmt.Fprintf(&body, "BLAKE3      : %s\n", input.Checksum())
	if j.verbose {
		fmt.Fprintf(&body, "Header      : %s\n", header(input.Content()))
	}
	return []byte(body.String()), "text/plain; charset=utf-8", ".txt"
}

// decompilationTemplate is the generated C code. The arguments are the
// input name, size, format and checksum.
const decompilationTemplate = `//
// This file was generated by the fake retdec service.
// Input: %s (%d bytes, %s)
// BLAKE3: %s
//

#include <stdint.h>

int main(int argc, char ** argv) {
    return 0;
}
`

// decompilationOutput renders a C translation unit describing the input.
func decompilationOutput(j *job) []byte {
	input := j.input
	return fmt.Appendf(nil, decompilationTemplate,
		input.SafeName(), input.Len(), fileFormat(input.Content()), input.Checksum())
}
