package locator

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]string
		dirs       []string
		candidates []string
		expected   string
		expectErr  bool
	}{
		{
			name:       "first candidate exists",
			files:      map[string]string{"/a.md": "a", "/b.md": "b"},
			candidates: []string{"/a.md", "/b.md"},
			expected:   "/a.md",
		},
		{
			name:       "falls back in order",
			files:      map[string]string{"/b.md": "b", "/c.md": "c"},
			candidates: []string{"/a.md", "/b.md", "/c.md"},
			expected:   "/b.md",
		},
		{
			name:       "skips directories",
			files:      map[string]string{"/c.md": "c"},
			dirs:       []string{"/a.md"},
			candidates: []string{"/a.md", "/c.md"},
			expected:   "/c.md",
		},
		{
			name:       "skips empty candidates",
			files:      map[string]string{"/c.md": "c"},
			candidates: []string{"", "/c.md"},
			expected:   "/c.md",
		},
		{
			name:       "nothing exists",
			candidates: []string{"/a.md", "/b.md"},
			expectErr:  true,
		},
		{
			name:      "no candidates",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			for path, content := range tt.files {
				if err := afero.WriteFile(fs, path, []byte(content), 0600); err != nil {
					t.Fatalf("failed to write %s: %v", path, err)
				}
			}
			for _, dir := range tt.dirs {
				if err := fs.MkdirAll(dir, 0750); err != nil {
					t.Fatalf("failed to create %s: %v", dir, err)
				}
			}

			path, err := New(fs, tt.candidates...).Locate()
			if tt.expectErr {
				if !errors.Is(err, ErrDocumentNotFound) {
					t.Fatalf("expected ErrDocumentNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if path != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, path)
			}
		})
	}
}

func TestLocateErrorListsSearchedPaths(t *testing.T) {
	_, err := New(afero.NewMemMapFs(), "/a.md", "/b.md").Locate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, p := range []string{"/a.md", "/b.md"} {
		if !strings.Contains(err.Error(), p) {
			t.Errorf("expected error to mention %s, got %q", p, err)
		}
	}
}

func TestCandidatesDeduplicated(t *testing.T) {
	l := New(afero.NewMemMapFs(), "/a.md", "", "/b.md", "/a.md")
	want := []string{"/a.md", "/b.md"}
	if got := l.Candidates(); !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates() = %v, want %v", got, want)
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/home/user/prompts.md", []byte("## Coding\n"), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	path, text, err := New(fs, "/missing.md", "/home/user/prompts.md").Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/home/user/prompts.md" {
		t.Errorf("unexpected path %q", path)
	}
	if text != "## Coding\n" {
		t.Errorf("unexpected text %q", text)
	}

	if _, _, err := New(fs, "/missing.md").Load(); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("expected ErrDocumentNotFound, got %v", err)
	}
}
