// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"io"
	"mime/multipart"

	"github.com/retdec-client/retdec-go/lib/apierror"
)

// multipartBody is a multipart/form-data body held as a list of
// segments. Boundaries, part headers and form fields are small buffers
// owned by the body; file content is referenced, not copied. The length
// is known up front, so the request never needs chunked encoding.
type multipartBody struct {
	segments    [][]byte
	contentType string
	length      int64
}

// reader returns a fresh reader over the whole body. Each call starts
// from the beginning, which lets net/http replay the body on redirect.
func (body *multipartBody) reader() io.Reader {
	readers := make([]io.Reader, len(body.segments))
	for i, segment := range body.segments {
		readers[i] = bytes.NewReader(segment)
	}
	return io.MultiReader(readers...)
}

// segmentWriter collects what multipart.Writer produces into the
// current buffer and lets file content be spliced in between.
type segmentWriter struct {
	segments [][]byte
	current  bytes.Buffer
	length   int64
}

func (w *segmentWriter) Write(p []byte) (int, error) {
	w.length += int64(len(p))
	return w.current.Write(p)
}

func (w *segmentWriter) flush() {
	if w.current.Len() == 0 {
		return
	}
	w.segments = append(w.segments, bytes.Clone(w.current.Bytes()))
	w.current.Reset()
}

func (w *segmentWriter) splice(content []byte) {
	w.flush()
	w.segments = append(w.segments, content)
	w.length += int64(len(content))
}

// newMultipartBody encodes args in sorted order: string fields first,
// then files.
func newMultipartBody(args *Arguments) (*multipartBody, error) {
	segments := &segmentWriter{}
	writer := multipart.NewWriter(segments)

	for _, name := range args.Names() {
		value, _ := args.Arg(name)
		if err := writer.WriteField(name, value); err != nil {
			return nil, apierror.New(apierror.KindTransport, "encoding argument %q: %w", name, err)
		}
	}

	for _, name := range args.FileNames() {
		f, _ := args.File(name)
		safeName := f.SafeName()
		if safeName == "" {
			return nil, apierror.New(apierror.KindTransport, "file name %q cannot be represented in the request", f.Name())
		}
		if _, err := writer.CreateFormFile(name, safeName); err != nil {
			return nil, apierror.New(apierror.KindTransport, "encoding file %q: %w", name, err)
		}
		segments.splice(f.Content())
	}

	if err := writer.Close(); err != nil {
		return nil, apierror.New(apierror.KindTransport, "finishing multipart body: %w", err)
	}
	segments.flush()

	return &multipartBody{
		segments:    segments.segments,
		contentType: writer.FormDataContentType(),
		length:      segments.length,
	}, nil
}
