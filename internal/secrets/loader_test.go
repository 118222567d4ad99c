package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	keyFile := filepath.Join(dir, "adzuna.key")
	if err := os.WriteFile(keyFile, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
	emptyFile := filepath.Join(dir, "empty.key")
	if err := os.WriteFile(emptyFile, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write empty file: %v", err)
	}

	tests := []struct {
		name    string
		src     Source
		want    string
		wantErr string
	}{
		{
			name: "inline value is trimmed",
			src:  Source{Name: "jooble api key", Value: "  inline  "},
			want: "inline",
		},
		{
			name: "file takes precedence over value",
			src:  Source{Name: "adzuna app key", Value: "inline", File: keyFile},
			want: "from-file",
		},
		{
			name:    "missing value",
			src:     Source{Name: "adzuna app id"},
			wantErr: "adzuna app id is not configured",
		},
		{
			name:    "empty file",
			src:     Source{Name: "jooble api key", File: emptyFile},
			wantErr: "is empty",
		},
		{
			name:    "unreadable file",
			src:     Source{File: filepath.Join(dir, "missing")},
			wantErr: "reading secret from file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Load(tt.src)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoadOptional(t *testing.T) {
	t.Parallel()

	got, err := LoadOptional(Source{Name: "adzuna app key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty secret, got %q", got)
	}

	if _, err := LoadOptional(Source{File: filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Fatalf("expected error for unreadable file")
	}
}

func TestLoadOptionalEmptyFile(t *testing.T) {
	t.Parallel()

	emptyFile := filepath.Join(t.TempDir(), "jooble.key")
	if err := os.WriteFile(emptyFile, nil, 0o600); err != nil {
		t.Fatalf("write empty file: %v", err)
	}

	_, err := LoadOptional(Source{Name: "jooble api key", File: emptyFile, Value: "inline"})
	if err == nil || !strings.Contains(err.Error(), "jooble api key file") {
		t.Fatalf("expected empty file error, got %v", err)
	}
}
