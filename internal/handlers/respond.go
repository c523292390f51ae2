// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gallerycms/internal/middleware"
	"gallerycms/internal/publish"
	"gallerycms/internal/store"
)

// defaultPerPage bounds admin list pages.
const defaultPerPage = 50

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors map[string][]string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encode response failed", "error", err)
	}
}

func writeRawJSON(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeValidation(w http.ResponseWriter, verr *publish.ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: verr.ByField()})
}

// writeStoreError maps a persistence failure onto a response and logs it.
func writeStoreError(w http.ResponseWriter, r *http.Request, action string, err error) {
	switch {
	case store.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Not Found")
		return
	case store.IsForeignKeyViolation(err):
		writeError(w, http.StatusConflict, "The record references, or is referenced by, another record.")
	case store.IsUniqueViolation(err):
		writeError(w, http.StatusConflict, "A record with this value already exists.")
	default:
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
	slog.Error(action+" failed",
		"request_id", middleware.GetRequestID(r.Context()),
		"error", err,
	)
}

// pathID parses the {id} URL parameter, answering 404 when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return uuid.Nil, false
	}
	return id, true
}

// pageFromQuery reads the 1-based ?page= parameter.
func pageFromQuery(r *http.Request) store.Page {
	n, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || n < 1 {
		n = 1
	}
	return store.Page{Limit: defaultPerPage, Offset: (n - 1) * defaultPerPage}
}
