package model

import (
	"testing"
)

func TestMimeTypeFromExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"photo.jpg", MimeTypeJPEG},
		{"photo.JPEG", MimeTypeJPEG},
		{"logo.png", MimeTypePNG},
		{"anim.gif", MimeTypeGIF},
		{"icon.svg", MimeTypeSVG},
		{"report.pdf", MimeTypePDF},
		{"sheet.xlsx", MimeTypeXLSX},
		{"clip.mp4", MimeTypeMP4},
		{"payload.exe", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := MimeTypeFromExtension(tt.filename); got != tt.want {
				t.Errorf("MimeTypeFromExtension(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestMediaIsImage(t *testing.T) {
	m := &Media{FileType: MimeTypeJPEG}
	if !m.IsImage() {
		t.Error("jpeg media should be an image")
	}

	m = &Media{FileType: MimeTypePDF}
	if m.IsImage() {
		t.Error("pdf media should not be an image")
	}
}

func TestMediaExtensionsSupersetOfImages(t *testing.T) {
	all := make(map[string]bool)
	for _, ext := range MediaExtensions() {
		all[ext] = true
	}
	for _, ext := range ImageExtensions() {
		if !all[ext] {
			t.Errorf("image extension %q missing from media pipeline", ext)
		}
	}
}
