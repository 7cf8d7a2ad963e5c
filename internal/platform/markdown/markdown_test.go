package markdown_test

import (
	"strings"
	"testing"

	"github.com/dkarlsen/notes-service/internal/platform/markdown"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"heading", "# Title", "<h1"},
		{"emphasis", "*milk*", "<em>milk</em>"},
		{"list", "- milk\n- eggs", "<li>milk</li>"},
		{"gfm strikethrough", "~~done~~", "<del>done</del>"},
		{"plain text", "just text", "<p>just text</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := markdown.Render(tt.src)
			if err != nil {
				t.Fatalf("Render(%q) error = %v", tt.src, err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Render(%q) = %q, want substring %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	got, err := markdown.Render("")
	if err != nil {
		t.Fatalf("Render(\"\") error = %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Errorf("Render(\"\") = %q, want empty", got)
	}
}
