// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"maps"
	"slices"

	"github.com/retdec-client/retdec-go/lib/file"
)

// Arguments are the parameters of one request: string arguments and
// file arguments, each keyed by name. GET requests send the string
// arguments as query parameters. POST requests send both as a multipart
// body.
//
// A nil *Arguments is valid and empty. Arguments must not be modified
// after being passed to a Connection.
type Arguments struct {
	values map[string]string
	files  map[string]*file.File
}

// NewArguments returns empty arguments.
func NewArguments() *Arguments {
	return &Arguments{
		values: make(map[string]string),
		files:  make(map[string]*file.File),
	}
}

// AddString sets a string argument, replacing any previous value.
func (args *Arguments) AddString(name, value string) {
	args.values[name] = value
}

// AddOptionalString sets a string argument when value is non-nil. A nil
// value leaves the argument out of the request entirely.
func (args *Arguments) AddOptionalString(name string, value *string) {
	if value != nil {
		args.AddString(name, *value)
	}
}

// AddBool sets a boolean argument, encoded as "1" or "0".
func (args *Arguments) AddBool(name string, value bool) {
	if value {
		args.AddString(name, "1")
	} else {
		args.AddString(name, "0")
	}
}

// AddOptionalBool sets a boolean argument when value is non-nil.
func (args *Arguments) AddOptionalBool(name string, value *bool) {
	if value != nil {
		args.AddBool(name, *value)
	}
}

// AddFile sets a file argument, replacing any previous file of that name.
func (args *Arguments) AddFile(name string, f *file.File) {
	args.files[name] = f
}

// Arg returns the value of a string argument.
func (args *Arguments) Arg(name string) (string, bool) {
	if args == nil {
		return "", false
	}
	value, ok := args.values[name]
	return value, ok
}

// HasArg reports whether a string argument is set.
func (args *Arguments) HasArg(name string) bool {
	_, ok := args.Arg(name)
	return ok
}

// File returns a file argument.
func (args *Arguments) File(name string) (*file.File, bool) {
	if args == nil {
		return nil, false
	}
	f, ok := args.files[name]
	return f, ok
}

// HasFile reports whether a file argument is set.
func (args *Arguments) HasFile(name string) bool {
	_, ok := args.File(name)
	return ok
}

// Names returns the names of the string arguments in sorted order.
func (args *Arguments) Names() []string {
	if args == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(args.values))
}

// FileNames returns the names of the file arguments in sorted order.
func (args *Arguments) FileNames() []string {
	if args == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(args.files))
}

// Len returns the total number of string and file arguments.
func (args *Arguments) Len() int {
	if args == nil {
		return 0
	}
	return len(args.values) + len(args.files)
}
