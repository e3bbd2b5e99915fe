// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ErrInvalidID is returned when a URL ID parameter is missing or not a
// positive integer.
var ErrInvalidID = errors.New("invalid id parameter")

// ParseIDParam parses the {id} URL parameter from the request.
func ParseIDParam(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// decodeJSON decodes JSON from the request body.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// parsePagination reads page/per_page query parameters with sane bounds.
func parsePagination(r *http.Request) (page, perPage int) {
	page = 1
	perPage = 20
	if s := r.URL.Query().Get("page"); s != "" {
		if p, err := strconv.Atoi(s); err == nil && p > 0 {
			page = p
		}
	}
	if s := r.URL.Query().Get("per_page"); s != "" {
		if pp, err := strconv.Atoi(s); err == nil && pp > 0 && pp <= 100 {
			perPage = pp
		}
	}
	return page, perPage
}

// paginationMeta builds a Meta block for a paginated list response.
func paginationMeta(total int64, page, perPage int) *Meta {
	pages := int(total) / perPage
	if int(total)%perPage != 0 {
		pages++
	}
	return &Meta{
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   pages,
	}
}
