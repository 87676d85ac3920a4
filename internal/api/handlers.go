// Package api exposes the notes service over HTTP. Routes are plain
// net/http handlers registered on a method-aware ServeMux, and every
// response body, including errors, is JSON.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kavia-common/simple-notes-api/internal/errs"
	"github.com/kavia-common/simple-notes-api/internal/notes"
	"github.com/kavia-common/simple-notes-api/internal/obs"
)

const (
	// ServiceName identifies this service in the health check response.
	ServiceName = "Simple Notes API"
	// ServiceVersion is reported by the health check response.
	ServiceVersion = "0.1.0"
)

// Handler holds the dependencies for the HTTP handlers.
type Handler struct {
	notes *notes.Service
}

// NewHandler creates a new API handler backed by the given notes service.
func NewHandler(svc *notes.Service) *Handler {
	return &Handler{notes: svc}
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleHealth)

	mux.HandleFunc("POST /notes", h.handleCreateNote)
	mux.HandleFunc("GET /notes", h.handleListNotes)
	mux.HandleFunc("GET /notes/{id}", h.handleGetNote)
	mux.HandleFunc("PUT /notes/{id}", h.handleUpdateNote)
	mux.HandleFunc("PATCH /notes/{id}", h.handlePatchNote)
	mux.HandleFunc("DELETE /notes/{id}", h.handleDeleteNote)

	// Anything else gets a JSON 404 instead of the default text response.
	mux.HandleFunc("/", h.handleNotFound)
}

// HealthResponse is the body returned by the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ErrorResponse is the body returned for all error statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type notePatchRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: ServiceName,
		Version: ServiceVersion,
	})
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errs.New(errs.NotFound, "resource not found"))
}

func (h *Handler) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errs.Wrap(errs.InvalidArgument, "request body must be valid JSON", err))
		return
	}

	note, err := h.notes.Create(r.Context(), notes.CreateNoteParams{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (h *Handler) handleListNotes(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.notes.List(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGetNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.notes.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errs.Wrap(errs.InvalidArgument, "request body must be valid JSON", err))
		return
	}

	note, err := h.notes.Update(r.Context(), id, notes.UpdateNoteParams{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) handlePatchNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req notePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errs.Wrap(errs.InvalidArgument, "request body must be valid JSON", err))
		return
	}

	note, err := h.notes.Patch(r.Context(), id, notes.PatchNoteParams{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.notes.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseID extracts the note id from the request path. Non-integer ids are
// a validation failure, not a missing resource.
func parseID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.Wrap(errs.InvalidArgument, "id must be an integer", err)
	}
	return id, nil
}

// parseListParams reads pagination and search parameters from the query
// string. Absent parameters get defaults; present but malformed ones are
// rejected so a typo never silently returns page one.
func parseListParams(r *http.Request) (notes.ListNotesParams, error) {
	query := r.URL.Query()
	params := notes.ListNotesParams{
		Page:     1,
		PageSize: notes.DefaultPageSize,
		Search:   query.Get("q"),
	}

	// Has, not Get: a present-but-empty value like ?page= is malformed,
	// not absent, and must not fall back to the default.
	if query.Has("page") {
		page, err := strconv.Atoi(query.Get("page"))
		if err != nil {
			return params, errs.Wrap(errs.InvalidArgument, "page must be an integer", err)
		}
		params.Page = page
	}
	if query.Has("page_size") {
		size, err := strconv.Atoi(query.Get("page_size"))
		if err != nil {
			return params, errs.Wrap(errs.InvalidArgument, "page_size must be an integer", err)
		}
		params.PageSize = size
	}
	return params, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps an error to its HTTP status and writes the JSON error
// body. Internal errors are logged with the request correlation and the
// response carries only the generic message, never the cause.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errs.HTTPStatus(errs.CodeOf(err))
	if status >= http.StatusInternalServerError {
		obs.From(r.Context()).With("pkg", "api").Error("request_failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error(),
		)
	}
	writeJSON(w, status, ErrorResponse{Error: errs.MessageOf(err)})
}
