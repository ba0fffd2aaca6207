package service

import (
	"strings"
	"testing"

	"github.com/lhgiang/eduquest/config"
)

func TestFindVideo_UnconfiguredReturnsFallbackURL(t *testing.T) {
	svc := NewVideoSearchService(&config.Config{})

	url := svc.FindVideo("Newton's Laws tutorial")
	if url == "" {
		t.Fatalf("FindVideo must never return an empty URL")
	}
	if !strings.HasPrefix(url, "https://www.google.com/search?q=") {
		t.Fatalf("expected fallback search URL, got %q", url)
	}
	if strings.ContainsAny(url, " \t\n") {
		t.Fatalf("fallback URL contains whitespace: %q", url)
	}
}

func TestFallbackSearchURL(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"gravity tutorial", "https://www.google.com/search?q=gravity+tutorial"},
		{"  spaced   out  ", "https://www.google.com/search?q=spaced+out"},
		{"single", "https://www.google.com/search?q=single"},
	}
	for _, tc := range tests {
		if got := fallbackSearchURL(tc.query); got != tc.want {
			t.Fatalf("fallbackSearchURL(%q) = %q, want %q", tc.query, got, tc.want)
		}
	}
}

func TestFallbackSearchURL_IsDeterministic(t *testing.T) {
	first := fallbackSearchURL("Newton's Laws tutorial")
	second := fallbackSearchURL("Newton's Laws tutorial")
	if first != second {
		t.Fatalf("fallback URL must be deterministic: %q vs %q", first, second)
	}
}
