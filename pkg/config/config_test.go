package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/permgen/pkg/errors"
	"github.com/matzehuels/permgen/pkg/perm"
)

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
algorithm = "plain"
format = "json"
limit = 100
sort = true
verbose = true
`))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	want := Config{Algorithm: "plain", Format: "json", Limit: 100, Sort: true, Verbose: true}
	if cfg != want {
		t.Errorf("Decode() = %+v, want %+v", cfg, want)
	}
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("empty document should decode to zero Config, got %+v", cfg)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", `algorithm = `},
		{"unknown key", "algoritm = \"plain\"\n"},
		{"bad algorithm", "algorithm = \"heap\"\n"},
		{"bad format", "format = \"xml\"\n"},
		{"negative limit", "limit = -3\n"},
		{"wrong type", "limit = \"ten\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Decode(%q) error = %v, want INVALID_CONFIG", tt.doc, err)
			}
		})
	}
}

func TestDecodeUnknownKeysAreListed(t *testing.T) {
	_, err := Decode(strings.NewReader("zeta = 1\nalpha = 2\n"))
	if err == nil || !strings.Contains(err.Error(), "alpha, zeta") {
		t.Errorf("error = %v, want sorted key list", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("algorithm = \"e\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	if got := cfg.AlgorithmOr(perm.Lexicographic); got != perm.Ehrlich {
		t.Errorf("AlgorithmOr() = %s, want ehrlich", got)
	}
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")

	if _, err := Load(path); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
	}

	cfg, err := LoadOptional(path)
	if err != nil {
		t.Errorf("LoadOptional() error = %v, want nil", err)
	}
	if cfg != (Config{}) {
		t.Errorf("LoadOptional() = %+v, want zero Config", cfg)
	}
}

func TestLoadInvalidNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("format = \"yaml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadOptional(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("error = %v, should name %s", err, path)
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config
	if got := cfg.AlgorithmOr(perm.CyclicShift); got != perm.CyclicShift {
		t.Errorf("AlgorithmOr() = %s, want default", got)
	}
	if got := cfg.FormatOr("text"); got != "text" {
		t.Errorf("FormatOr() = %q, want default", got)
	}
	cfg.Format = "json"
	if got := cfg.FormatOr("text"); got != "json" {
		t.Errorf("FormatOr() = %q, want json", got)
	}
}
