package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRedirect(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      string
	}{
		{"local path", "/items", "/items"},
		{"local path with query", "/items?page=2#top", "/items?page=2#top"},
		{"root", "/", "/"},
		{"nested path", "/items/42/claim", "/items/42/claim"},
		{"protocol relative", "//evil.example", DefaultRedirect},
		{"backslash host", "/\\evil.example", DefaultRedirect},
		{"absolute url", "http://evil.example", DefaultRedirect},
		{"https absolute url", "https://evil.example/items", DefaultRedirect},
		{"javascript scheme", "javascript:alert(1)", DefaultRedirect},
		{"relative path", "items", DefaultRedirect},
		{"empty", "", DefaultRedirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRedirect(tt.candidate))
		})
	}
}
