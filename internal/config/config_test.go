package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "md2html.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
input:
  defaultDir: docs
output:
  defaultDir: site
document:
  standalone: true
  title: Handbook
  frontMatter: true
convert:
  commonmark: false
  workers: 4
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Input.DefaultDir != "docs" {
		t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "docs")
	}
	if cfg.Output.DefaultDir != "site" {
		t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "site")
	}
	if !cfg.Document.Standalone || cfg.Document.Title != "Handbook" || !cfg.Document.FrontMatter {
		t.Errorf("Document = %+v, want standalone Handbook with front matter", cfg.Document)
	}
	if cfg.Convert.Workers != 4 {
		t.Errorf("Convert.Workers = %d, want 4", cfg.Convert.Workers)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name:    "empty name",
			path:    "",
			wantErr: ErrEmptyConfigName,
		},
		{
			name:    "missing file",
			path:    filepath.Join(t.TempDir(), "nope.yaml"),
			wantErr: ErrConfigNotFound,
		},
		{
			name:    "unknown field",
			path:    writeConfig(t, "nonsense: true\n"),
			wantErr: ErrConfigParse,
		},
		{
			name:    "workers out of range",
			path:    writeConfig(t, "convert:\n  workers: 99\n"),
			wantErr: ErrInvalidWorkers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(tt.path); !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateFieldLengths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Document.Title = string(make([]byte, MaxTitleLength+1))

	if err := cfg.Validate(); !errors.Is(err, ErrFieldTooLong) {
		t.Errorf("Validate() err = %v, want ErrFieldTooLong", err)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}
