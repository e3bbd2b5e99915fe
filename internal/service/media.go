// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/starleap/starleap-go/internal/model"
	"github.com/starleap/starleap-go/internal/store"
	"github.com/starleap/starleap-go/internal/util"
)

// Upload defaults
const (
	DefaultMaxUploadSize = 5_000_000 // bytes
	DefaultUploadDir     = "./uploads"

	// UploadMountPrefix is the public path prefix stored references are
	// rooted at. Downstream code treats references as opaque.
	UploadMountPrefix = "/uploads"
)

// Upload errors surfaced to handlers.
var (
	ErrNoFile          = errors.New("no file uploaded")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file too large")
)

// Pipeline is an upload validation policy: a file is accepted only when
// both its lower-cased extension and its declared content type appear in
// the allow-lists. Both inputs are client-controlled; there is no
// content sniffing.
type Pipeline struct {
	extensions map[string]bool
	mimeTypes  map[string]bool
}

func newPipeline(extensions, mimeTypes []string) Pipeline {
	p := Pipeline{
		extensions: make(map[string]bool, len(extensions)),
		mimeTypes:  make(map[string]bool, len(mimeTypes)),
	}
	for _, ext := range extensions {
		p.extensions[ext] = true
	}
	for _, mt := range mimeTypes {
		p.mimeTypes[mt] = true
	}
	return p
}

// ImagePipeline accepts image files only, for carousel and product images.
func ImagePipeline() Pipeline {
	return newPipeline(model.ImageExtensions(), model.ImageMimeTypes())
}

// MediaPipeline accepts images plus document, video, and audio files.
func MediaPipeline() Pipeline {
	return newPipeline(model.MediaExtensions(), model.MediaMimeTypes())
}

// Allows reports whether the given extension and declared content type
// both pass the pipeline's allow-lists.
func (p Pipeline) Allows(ext, mimeType string) bool {
	return p.extensions[strings.ToLower(ext)] && p.mimeTypes[mimeType]
}

// StoredFile is the stable reference returned by a successful upload.
type StoredFile struct {
	FileName     string
	FilePath     string
	FileType     string
	Size         int64
	OriginalName string
}

// MediaService validates and stores uploaded files and keeps the media
// library records.
type MediaService struct {
	db        *sql.DB
	uploadDir string
	maxSize   int64
}

// NewMediaService creates a media service rooted at uploadDir, creating
// the directory if it does not exist yet.
func NewMediaService(db *sql.DB, uploadDir string, maxSize int64) (*MediaService, error) {
	if uploadDir == "" {
		uploadDir = DefaultUploadDir
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &MediaService{
		db:        db,
		uploadDir: uploadDir,
		maxSize:   maxSize,
	}, nil
}

// MaxSize returns the configured upload size cap in bytes.
func (s *MediaService) MaxSize() int64 {
	return s.maxSize
}

// Store validates the uploaded file against the pipeline and writes it
// under a generated name. Nothing is written when validation fails.
// The generated name is "{field}-{epochMillis}-{random9}{ext}", unique
// with overwhelming probability; collisions are not checked.
func (s *MediaService) Store(file multipart.File, header *multipart.FileHeader, field string, pipeline Pipeline) (StoredFile, error) {
	if header == nil || header.Filename == "" {
		return StoredFile{}, ErrNoFile
	}
	if header.Size > s.maxSize {
		return StoredFile{}, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = model.MimeTypeFromExtension(header.Filename)
	}
	if !pipeline.Allows(ext, mimeType) {
		return StoredFile{}, ErrInvalidFileType
	}

	name := fmt.Sprintf("%s-%d-%09d%s", field, time.Now().UnixMilli(), rand.Int64N(1_000_000_000), ext)

	dst, err := util.SafeJoinPath(s.uploadDir, name)
	if err != nil {
		return StoredFile{}, fmt.Errorf("resolving destination: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return StoredFile{}, fmt.Errorf("creating file: %w", err)
	}

	size, err := io.Copy(out, file)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return StoredFile{}, fmt.Errorf("writing file: %w", err)
	}

	return StoredFile{
		FileName:     name,
		FilePath:     UploadMountPrefix + "/" + name,
		FileType:     mimeType,
		Size:         size,
		OriginalName: header.Filename,
	}, nil
}

// Upload stores the file and records it in the media library.
func (s *MediaService) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader, field, description string, pipeline Pipeline) (model.Media, error) {
	stored, err := s.Store(file, header, field, pipeline)
	if err != nil {
		return model.Media{}, err
	}

	// The record keeps the client's original name; the generated name
	// lives only in the reference path.
	now := time.Now()
	media, err := store.New(s.db).CreateMedia(ctx, store.CreateMediaParams{
		FileName:    stored.OriginalName,
		FilePath:    stored.FilePath,
		FileType:    stored.FileType,
		Size:        stored.Size,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.Remove(stored.FilePath)
		return model.Media{}, fmt.Errorf("creating media record: %w", err)
	}

	return media, nil
}

// Delete removes a media record and best-effort unlinks its file.
func (s *MediaService) Delete(ctx context.Context, id int64) error {
	queries := store.New(s.db)

	media, err := queries.GetMediaByID(ctx, id)
	if err != nil {
		return err
	}

	if err := queries.DeleteMedia(ctx, id); err != nil {
		return fmt.Errorf("deleting media record: %w", err)
	}

	s.Remove(media.FilePath)
	return nil
}

// Remove best-effort unlinks the file behind a stored reference. A
// missing file or a reference outside the mount prefix is not an error.
func (s *MediaService) Remove(reference string) {
	ref, ok := strings.CutPrefix(reference, UploadMountPrefix+"/")
	if !ok {
		return
	}
	// Reject anything that could escape the upload directory.
	name, err := util.SanitizeFilename(ref)
	if err != nil || name != ref {
		return
	}
	_ = os.Remove(filepath.Join(s.uploadDir, name))
}
