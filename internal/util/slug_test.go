package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation stripped", "Hello, World!", "hello-world"},
		{"digits kept", "Catalog 2026", "catalog-2026"},
		{"accents folded", "Café résumé", "cafe-resume"},
		{"space runs collapse", "About   Our   Company", "about-our-company"},
		{"hyphenated phrase", "Terms - of - Service", "terms-of-service"},
		{"surrounding whitespace", "  Hello World  ", "hello-world"},
		{"symbols only", "!@#$%^&*()", ""},
		{"non-latin script", "日本語タイトル", ""},
		{"umlauts", "Über München", "uber-munchen"},
		{"empty", "", ""},
		{"mixed case", "HeLLo WoRLd", "hello-world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"canonical", "hello-world", true},
		{"with digits", "page-123", true},
		{"single word", "hello", true},
		{"digits only", "123", true},
		{"empty", "", false},
		{"uppercase", "Hello-World", false},
		{"space", "hello world", false},
		{"punctuation", "hello!world", false},
		{"leading hyphen", "-hello", false},
		{"trailing hyphen", "hello-", false},
		{"doubled hyphen", "hello--world", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidSlug(tt.input); got != tt.want {
				t.Errorf("IsValidSlug(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugifyRoundTrip(t *testing.T) {
	// Every derived slug must satisfy the validator.
	inputs := []string{"Hello World", "Café résumé", "Page 123", "Über München"}
	for _, in := range inputs {
		if slug := Slugify(in); !IsValidSlug(slug) {
			t.Errorf("Slugify(%q) = %q, which IsValidSlug rejects", in, slug)
		}
	}
}
