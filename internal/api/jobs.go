// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Package api's job handlers translate REST requests into scheduler.Job
enqueues. They never run the job inline; they only validate input and
delegate to the scheduler's single-flight queue.
*/
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/jessielw/tmdb-service/internal/platform/apperr"
	requestutil "github.com/jessielw/tmdb-service/internal/platform/request"
	"github.com/jessielw/tmdb-service/internal/platform/respond"
	"github.com/jessielw/tmdb-service/internal/scheduler"
)

func notFoundJobKind(kind string) error {
	return apperr.ValidationError("unknown job kind: " + kind)
}

// Enqueuer is the subset of *scheduler.Scheduler the HTTP layer needs.
type Enqueuer interface {
	Enqueue(ctx context.Context, job scheduler.Job) error
}

// JobFactory builds the runnable jobs the HTTP handlers enqueue, keeping the
// handlers themselves free of orchestration wiring details.
type JobFactory interface {
	FullSweep() scheduler.Job
	MissingIDs() scheduler.Job
	PruneDeleted() scheduler.Job
	ChangesSync() scheduler.Job
	CreateTables() scheduler.Job
	AddMovie(id string) scheduler.Job
	AddSeries(id string) scheduler.Job
	TestWebhook(message string) scheduler.Job
}

type jobsHandler struct {
	sched   Enqueuer
	factory JobFactory
}

// NewJobsHandler constructs the job-enqueue HTTP handlers.
func NewJobsHandler(sched Enqueuer, factory JobFactory) *jobsHandler {
	return &jobsHandler{sched: sched, factory: factory}
}

type testWebhookBody struct {
	Message string `json:"message"`
}

// EnqueueByKind handles POST /jobs/{kind} for the family-wide job kinds.
func (h *jobsHandler) EnqueueByKind(writer http.ResponseWriter, request *http.Request) {
	kind := requestutil.Param(request, "kind")

	var job scheduler.Job
	switch kind {
	case "full-sweep":
		job = h.factory.FullSweep()
	case "missing-ids":
		job = h.factory.MissingIDs()
	case "prune-deleted":
		job = h.factory.PruneDeleted()
	case "changes-sync":
		job = h.factory.ChangesSync()
	case "create-tables":
		job = h.factory.CreateTables()
	case "test-webhook":
		var body testWebhookBody
		if err := requestutil.DecodeJSON(request, &body); err != nil {
			respond.Error(writer, request, err)
			return
		}
		job = h.factory.TestWebhook(body.Message)
	default:
		respond.Error(writer, request, notFoundJobKind(kind))
		return
	}

	h.enqueue(writer, request, job)
}

// AddMovie handles POST /movies/{id}.
func (h *jobsHandler) AddMovie(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	h.enqueue(writer, request, h.factory.AddMovie(id))
}

// AddSeries handles POST /series/{id}.
func (h *jobsHandler) AddSeries(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	h.enqueue(writer, request, h.factory.AddSeries(id))
}

func (h *jobsHandler) enqueue(writer http.ResponseWriter, request *http.Request, job scheduler.Job) {
	if err := h.sched.Enqueue(request.Context(), job); err != nil {
		if errors.Is(err, scheduler.ErrAlreadyRunning) {
			respond.Error(writer, request, scheduler.ErrAlreadyRunning)
			return
		}
		respond.Error(writer, request, err)
		return
	}
	respond.Accepted(writer, map[string]string{"kind": string(job.Kind), "id": job.ID})
}
