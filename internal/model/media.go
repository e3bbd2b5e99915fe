// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"path/filepath"
	"strings"
	"time"
)

// Supported MIME types.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypeJPG  = "image/jpg" // non-standard, sent by some clients
	MimeTypePNG  = "image/png"
	MimeTypeGIF  = "image/gif"
	MimeTypeSVG  = "image/svg+xml"
	MimeTypePDF  = "application/pdf"
	MimeTypeDOC  = "application/msword"
	MimeTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTypeXLS  = "application/vnd.ms-excel"
	MimeTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeTypeMP4  = "video/mp4"
	MimeTypeMP3  = "audio/mp3"
)

// Media represents an uploaded file reference.
type Media struct {
	ID          int64     `json:"id"`
	FileName    string    `json:"fileName"`
	FilePath    string    `json:"filePath"`
	FileType    string    `json:"fileType"`
	Size        int64     `json:"size"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ImageExtensions lists the extensions accepted by the image-only pipeline.
func ImageExtensions() []string {
	return []string{".jpeg", ".jpg", ".png", ".gif", ".svg"}
}

// ImageMimeTypes lists the declared MIME types accepted by the image-only pipeline.
func ImageMimeTypes() []string {
	return []string{MimeTypeJPEG, MimeTypeJPG, MimeTypePNG, MimeTypeGIF, MimeTypeSVG}
}

// MediaExtensions lists the extensions accepted by the general media pipeline.
func MediaExtensions() []string {
	return append(ImageExtensions(), ".pdf", ".doc", ".docx", ".xls", ".xlsx", ".mp4", ".mp3")
}

// MediaMimeTypes lists the declared MIME types accepted by the general media pipeline.
func MediaMimeTypes() []string {
	return append(ImageMimeTypes(),
		MimeTypePDF, MimeTypeDOC, MimeTypeDOCX, MimeTypeXLS, MimeTypeXLSX, MimeTypeMP4, MimeTypeMP3)
}

// IsImage returns true if the media type is an image.
func (m *Media) IsImage() bool {
	return strings.HasPrefix(m.FileType, "image/")
}

// MimeTypeFromExtension maps a filename extension to a declared MIME type.
// Returns application/octet-stream for unknown extensions.
func MimeTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return MimeTypeJPEG
	case ".png":
		return MimeTypePNG
	case ".gif":
		return MimeTypeGIF
	case ".svg":
		return MimeTypeSVG
	case ".pdf":
		return MimeTypePDF
	case ".doc":
		return MimeTypeDOC
	case ".docx":
		return MimeTypeDOCX
	case ".xls":
		return MimeTypeXLS
	case ".xlsx":
		return MimeTypeXLSX
	case ".mp4":
		return MimeTypeMP4
	case ".mp3":
		return MimeTypeMP3
	default:
		return "application/octet-stream"
	}
}
