// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package resource models an asynchronous job on the retdec service,
// such as an analysis or a decompilation.
//
// A [Resource] starts out pending and reaches exactly one terminal state,
// succeeded or failed, through [Resource.UpdateStatus]. Once a finished
// status has been observed the state never changes again, and the query
// methods stop contacting the service.
//
// The service has no push notification for job completion, so
// [Resource.WaitUntilFinished] polls the status endpoint every
// [PollInterval] until the job finishes or the context is canceled.
//
// A Resource is not safe for concurrent use. Each handle is owned by one
// goroutine at a time.
package resource

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/retdec-client/retdec-go/lib/api"
	"github.com/retdec-client/retdec-go/lib/apierror"
	"github.com/retdec-client/retdec-go/lib/clock"
)

// PollInterval is the fixed delay between two status requests in
// WaitUntilFinished.
const PollInterval = 500 * time.Millisecond

// Config holds configuration for creating a Resource.
type Config struct {
	// Connection sends the status and output requests. It is wrapped in
	// an api.VerifyingConnection.
	Connection api.Connection

	// Service is the service name in the URL, such as "fileinfo".
	Service string

	// Collection is the collection name in the URL, such as "analyses".
	Collection string

	// ID is the identifier the service assigned to the job.
	ID string

	// Clock times the polling in WaitUntilFinished. Defaults to
	// clock.Real().
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Status is a snapshot of a job's state as last reported by the service.
type Status struct {
	Finished  bool
	Succeeded bool
	Failed    bool

	// Error is the service's failure description. Set only when Failed.
	Error string
}

// Resource is a handle to one job.
type Resource struct {
	id      string
	baseURL string
	conn    api.Connection
	clock   clock.Clock
	logger  *slog.Logger
	status  Status
}

// New creates a handle for the job cfg.ID in the pending state. It sends
// no request.
func New(cfg Config) *Resource {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.Real()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Resource{
		id:      cfg.ID,
		baseURL: fmt.Sprintf("%s/%s/%s/%s", cfg.Connection.APIURL(), cfg.Service, cfg.Collection, cfg.ID),
		conn:    api.Verifying(cfg.Connection),
		clock:   clk,
		logger:  logger.With("id", cfg.ID),
	}
}

// ID returns the job identifier.
func (r *Resource) ID() string { return r.id }

// URL returns the job's base URL, {api_url}/{service}/{collection}/{id}.
func (r *Resource) URL() string { return r.baseURL }

// Status returns the last known state without contacting the service.
func (r *Resource) Status() Status { return r.status }

// ErrorMessage returns the last known failure description without
// contacting the service.
func (r *Resource) ErrorMessage() string { return r.status.Error }

// UpdateStatus fetches the job's status from {base_url}/status. The
// response must carry boolean finished, succeeded and failed members;
// an error member is captured when present. A finished state, once
// observed, is kept.
func (r *Resource) UpdateStatus(ctx context.Context) error {
	statusURL := r.baseURL + "/status"
	response, err := api.GetWithoutArgs(ctx, r.conn, statusURL)
	if err != nil {
		return err
	}
	if _, err := response.BodyAsJSON(); err != nil {
		return err
	}

	finished, finishedOK := response.JSONValueAsBool("finished")
	succeeded, succeededOK := response.JSONValueAsBool("succeeded")
	failed, failedOK := response.JSONValueAsBool("failed")
	if !finishedOK || !succeededOK || !failedOK {
		return apierror.New(apierror.KindInvalidResponse, "%s returned invalid JSON response", statusURL)
	}
	errorMessage, _ := response.JSONValueAsString("error")

	r.logger.Debug("job status",
		"finished", finished,
		"succeeded", succeeded,
		"failed", failed,
	)

	if r.status.Finished {
		return nil
	}
	r.status = Status{
		Finished:  finished,
		Succeeded: succeeded,
		Failed:    failed,
	}
	if failed {
		r.status.Error = errorMessage
	}
	if finished {
		r.logger.Info("job finished", "succeeded", succeeded, "error", r.status.Error)
	}
	return nil
}

// refresh updates the status unless the job is already known to be
// finished.
func (r *Resource) refresh(ctx context.Context) error {
	if r.status.Finished {
		return nil
	}
	return r.UpdateStatus(ctx)
}

// HasFinished reports whether the job has finished.
func (r *Resource) HasFinished(ctx context.Context) (bool, error) {
	if err := r.refresh(ctx); err != nil {
		return false, err
	}
	return r.status.Finished, nil
}

// HasSucceeded reports whether the job has finished successfully.
func (r *Resource) HasSucceeded(ctx context.Context) (bool, error) {
	if err := r.refresh(ctx); err != nil {
		return false, err
	}
	return r.status.Succeeded, nil
}

// HasFailed reports whether the job has finished with a failure.
func (r *Resource) HasFailed(ctx context.Context) (bool, error) {
	if err := r.refresh(ctx); err != nil {
		return false, err
	}
	return r.status.Failed, nil
}

// GetError returns the failure description, or "" when the job has not
// failed.
func (r *Resource) GetError(ctx context.Context) (string, error) {
	if err := r.refresh(ctx); err != nil {
		return "", err
	}
	return r.status.Error, nil
}

// WaitUntilFinished blocks until the job finishes. Each round sleeps for
// PollInterval and then fetches the status. An already finished job
// returns at once without any request. Canceling ctx stops the wait.
func (r *Resource) WaitUntilFinished(ctx context.Context) error {
	for !r.status.Finished {
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for job %s: %w", r.id, ctx.Err())
		case <-r.clock.After(PollInterval):
		}
		if err := r.UpdateStatus(ctx); err != nil {
			return err
		}
	}
	return nil
}

// EnsureSucceeded returns a KindNotSucceeded error naming the job kind
// (for example "analysis has not succeeded") unless the job has
// finished successfully. A job still running and a failed job are
// reported the same way.
func (r *Resource) EnsureSucceeded(ctx context.Context, name string) error {
	succeeded, err := r.HasSucceeded(ctx)
	if err != nil {
		return err
	}
	if !succeeded {
		return apierror.New(apierror.KindNotSucceeded, "%s has not succeeded", name)
	}
	return nil
}

// FetchOutput fetches {base_url}/{path} after checking that the job has
// succeeded. No output request is sent for a job that has not.
func (r *Resource) FetchOutput(ctx context.Context, name, path string) (*api.Response, error) {
	if err := r.EnsureSucceeded(ctx, name); err != nil {
		return nil, err
	}
	return api.GetWithoutArgs(ctx, r.conn, r.baseURL+"/"+path)
}
