// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package fakeservice

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/retdec-client/retdec-go/lib/file"
)

// DefaultPrefix is the path under which the API is served by default.
const DefaultPrefix = "/service/api"

// maxUploadMemory bounds the multipart form parsing held in memory.
// Larger uploads spill to temporary files.
const maxUploadMemory = 32 << 20

// Config holds configuration for creating a Server.
type Config struct {
	// APIKey is the only accepted API key. Required.
	APIKey string

	// Prefix is the path prefix of every endpoint. Defaults to
	// DefaultPrefix. Use "/" to serve at the root.
	Prefix string

	// PollsUntilFinished is the number of status requests a job answers
	// with "not finished" before it finishes. Zero finishes a job on its
	// first status request.
	PollsUntilFinished int

	// FailSuffix makes jobs whose input name ends with it fail. Empty
	// disables failures.
	FailSuffix string

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Server is the fake retdec service. It implements http.Handler.
type Server struct {
	cfg    Config
	router chi.Router
	logger *slog.Logger

	mu   sync.Mutex
	jobs map[string]*job
}

// job kinds, matching the service names in the URLs.
const (
	kindAnalysis      = "fileinfo"
	kindDecompilation = "decompiler"
)

type job struct {
	kind         string
	input        *file.File
	outputFormat string
	verbose      bool
	polls        int
	finished     bool
	fail         bool
}

// New creates a Server.
func New(cfg Config) *Server {
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		logger: logger,
		jobs:   make(map[string]*job),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "The requested URL was not found on the server.")
	})

	api := func(r chi.Router) {
		r.Use(s.authenticate)

		r.Get("/test", s.handleTest)
		r.Get("/test/echo", s.handleEcho)

		r.Post("/fileinfo/analyses", s.handleStartAnalysis)
		r.Get("/fileinfo/analyses/{id}/status", s.handleStatus(kindAnalysis))
		r.Get("/fileinfo/analyses/{id}/output", s.handleAnalysisOutput)

		r.Post("/decompiler/decompilations", s.handleStartDecompilation)
		r.Get("/decompiler/decompilations/{id}/status", s.handleStatus(kindDecompilation))
		r.Get("/decompiler/decompilations/{id}/outputs/hll", s.handleDecompilationOutput)
	}

	if prefix := strings.TrimRight(s.cfg.Prefix, "/"); prefix != "" {
		s.router.Route(prefix, api)
	} else {
		s.router.Group(api)
	}
}

// ServeHTTP dispatches to the API routes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// JobCount returns the number of jobs started so far.
func (s *Server) JobCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, _, ok := r.BasicAuth()
		if !ok || key == "" || key != s.cfg.APIKey {
			w.Header().Set("WWW-Authenticate", `Basic realm="retdec"`)
			writeError(w, http.StatusUnauthorized, "The API key is not valid.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "authentication succeeded"})
}

func (s *Server) handleEcho(w http.ResponseWriter, r *http.Request) {
	echoed := make(map[string]string)
	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			echoed[name] = values[0]
		}
	}
	writeJSON(w, http.StatusOK, echoed)
}

func (s *Server) handleStartAnalysis(w http.ResponseWriter, r *http.Request) {
	input, ok := s.readInput(w, r)
	if !ok {
		return
	}
	outputFormat := r.FormValue("output_format")
	if outputFormat == "" {
		outputFormat = "plain"
	}
	if outputFormat != "plain" && outputFormat != "json" {
		writeError(w, http.StatusBadRequest, "Unsupported output format: "+outputFormat+".")
		return
	}
	verbose := r.FormValue("verbose")
	if verbose != "" && verbose != "0" && verbose != "1" {
		writeError(w, http.StatusBadRequest, "The verbose argument must be 0 or 1.")
		return
	}

	id := s.addJob(&job{
		kind:         kindAnalysis,
		input:        input,
		outputFormat: outputFormat,
		verbose:      verbose == "1",
	})
	s.writeCreated(w, r, id)
}

func (s *Server) handleStartDecompilation(w http.ResponseWriter, r *http.Request) {
	input, ok := s.readInput(w, r)
	if !ok {
		return
	}
	if mode := r.FormValue("mode"); mode != "bin" {
		writeError(w, http.StatusBadRequest, "Unsupported decompilation mode: "+mode+".")
		return
	}
	id := s.addJob(&job{kind: kindDecompilation, input: input})
	s.writeCreated(w, r, id)
}

// readInput parses the multipart body and returns the "input" file. On
// failure it writes the error response itself.
func (s *Server) readInput(w http.ResponseWriter, r *http.Request) (*file.File, bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "The request is not a valid multipart form.")
		return nil, false
	}
	upload, header, err := r.FormFile("input")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing input file.")
		return nil, false
	}
	defer upload.Close()
	content, err := io.ReadAll(upload)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read the input file.")
		return nil, false
	}
	return file.FromContent(content, header.Filename), true
}

func (s *Server) addJob(j *job) string {
	id := uuid.New().String()
	j.fail = s.cfg.FailSuffix != "" && strings.HasSuffix(j.input.Name(), s.cfg.FailSuffix)

	s.mu.Lock()
	s.jobs[id] = j
	s.mu.Unlock()

	s.logger.Info("job started",
		"id", id,
		"kind", j.kind,
		"input", j.input.Name(),
		"size", j.input.Len(),
		"blake3", j.input.Checksum(),
	)
	return id
}

func (s *Server) writeCreated(w http.ResponseWriter, r *http.Request, id string) {
	url := strings.TrimSuffix(r.URL.Path, "/") + "/" + id
	writeJSON(w, http.StatusCreated, map[string]any{
		"id": id,
		"links": map[string]string{
			"self":   url,
			"status": url + "/status",
		},
	})
}

// lookup returns the job with the URL's id when it has the given kind.
func (s *Server) lookup(r *http.Request, kind string) (*job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[chi.URLParam(r, "id")]
	if !ok || j.kind != kind {
		return nil, false
	}
	return j, true
}

func (s *Server) handleStatus(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		j, ok := s.jobs[chi.URLParam(r, "id")]
		if ok && j.kind == kind && !j.finished {
			if j.polls >= s.cfg.PollsUntilFinished {
				j.finished = true
			}
			j.polls++
		}
		var status map[string]any
		if ok && j.kind == kind {
			status = map[string]any{
				"finished":  j.finished,
				"succeeded": j.finished && !j.fail,
				"failed":    j.finished && j.fail,
			}
			if j.finished && j.fail {
				status["error"] = "Unsupported input file format."
			}
		}
		s.mu.Unlock()

		if status == nil {
			writeError(w, http.StatusNotFound, "There is no such job.")
			return
		}
		writeJSON(w, http.StatusOK, status)
	}
}

// finishedOutput returns the job when its output can be served, writing
// the error response otherwise.
func (s *Server) finishedOutput(w http.ResponseWriter, r *http.Request, kind string) (*job, bool) {
	j, ok := s.lookup(r, kind)
	if !ok {
		writeError(w, http.StatusNotFound, "There is no such job.")
		return nil, false
	}
	s.mu.Lock()
	finished, fail := j.finished, j.fail
	s.mu.Unlock()
	if !finished || fail {
		writeError(w, http.StatusNotFound, "The output is not available.")
		return nil, false
	}
	return j, true
}

func (s *Server) handleAnalysisOutput(w http.ResponseWriter, r *http.Request) {
	j, ok := s.finishedOutput(w, r, kindAnalysis)
	if !ok {
		return
	}
	body, contentType, extension := analysisOutput(j)
	writeAttachment(w, contentType, j.input.Name()+extension, body)
}

func (s *Server) handleDecompilationOutput(w http.ResponseWriter, r *http.Request) {
	j, ok := s.finishedOutput(w, r, kindDecompilation)
	if !ok {
		return
	}
	writeAttachment(w, "text/x-csrc; charset=utf-8", stem(j.input.Name())+".c", decompilationOutput(j))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the service's error document.
func writeError(w http.ResponseWriter, status int, description string) {
	writeJSON(w, status, map[string]any{
		"code":        status,
		"message":     http.StatusText(status),
		"description": description,
	})
}

func writeAttachment(w http.ResponseWriter, contentType, name string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": file.SafeName(name),
	}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
