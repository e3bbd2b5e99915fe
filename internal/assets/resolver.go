// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package assets resolves stored upload references into browser-usable
// URLs. References are opaque strings produced by the upload pipeline.
package assets

import (
	"strings"

	"github.com/starleap/starleap-go/internal/service"
)

// Resolver turns stored references into absolute URLs. BaseURL is the
// public API origin, empty in same-origin deployments.
type Resolver struct {
	BaseURL string
}

// NewResolver creates a resolver with BaseURL trimmed of any trailing
// slash so joining stays predictable.
func NewResolver(baseURL string) Resolver {
	return Resolver{BaseURL: strings.TrimRight(baseURL, "/")}
}

// URL resolves ref into a URL. References that already carry a scheme
// pass through unchanged, which makes resolution idempotent. Bare file
// names get the upload mount prefix added before the base URL.
func (r Resolver) URL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	path := ref
	if !strings.HasPrefix(path, "/") {
		path = service.UploadMountPrefix + "/" + path
	} else if !strings.HasPrefix(path, service.UploadMountPrefix+"/") {
		path = service.UploadMountPrefix + path
	}
	return r.BaseURL + path
}
