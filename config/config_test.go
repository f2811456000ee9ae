package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultArtifactURL(t *testing.T) {
	cfg := Default()
	want := "https://bcartifacts.azureedge.net/onprem/18.0.23013.23795/se"
	if got := cfg.ArtifactURL(); got != want {
		t.Fatalf("ArtifactURL() = %q, want %q", got, want)
	}

	cfg.ArtifactsBaseURL = "http://mirror.local/onprem/"
	cfg.AppVersion = "22.1.0.0"
	cfg.Country = "w1"
	if got := cfg.ArtifactURL(); got != "http://mirror.local/onprem/22.1.0.0/w1" {
		t.Fatalf("ArtifactURL() with trailing slash = %q", got)
	}
}

func TestDefaultIsolatesKnownLanguages(t *testing.T) {
	a := Default()
	a.KnownLanguages[0] = "xx-yy"
	b := Default()
	if b.KnownLanguages[0] != "cs-cz" {
		t.Fatalf("Default() shares known language storage: %q", b.KnownLanguages[0])
	}
	if len(b.KnownLanguages) != 25 {
		t.Fatalf("expected 25 known languages, got %d", len(b.KnownLanguages))
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "app_version: 23.5.0.0\ncountry: dk\nhttp_timeout: 90s\nknown_languages:\n  - da-dk\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppVersion != "23.5.0.0" || cfg.Country != "dk" {
		t.Fatalf("overlay not applied: %+v", cfg)
	}
	if cfg.HTTPTimeout != 90*time.Second {
		t.Fatalf("HTTPTimeout = %s, want 90s", cfg.HTTPTimeout)
	}
	if len(cfg.KnownLanguages) != 1 || cfg.KnownLanguages[0] != "da-dk" {
		t.Fatalf("KnownLanguages = %v", cfg.KnownLanguages)
	}
	if cfg.WorkDir != "tmp" || cfg.ChunkSize != 8192 {
		t.Fatalf("defaults lost: work_dir=%q chunk_size=%d", cfg.WorkDir, cfg.ChunkSize)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppVersion != Default().AppVersion {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("app_versoin: 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestCompile(t *testing.T) {
	p, err := Default().Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	sourceCases := map[string]bool{
		"Applications/BaseApp/Source/Danish language (Denmark).Source.zip":       true,
		"applications/baseapp/source/Danish language (Denmark).source.zip":       true,
		"Applications/BaseApp/Source/Base Application.Source.zip":                false,
		"Other/Applications/BaseApp/Source/Danish language (Denmark).Source.zip": false,
	}
	for name, want := range sourceCases {
		if got := p.SourcePackage.MatchString(name); got != want {
			t.Errorf("SourcePackage(%q) = %v, want %v", name, got, want)
		}
	}

	locCases := map[string]bool{
		"Translations/Base Application.da-DK.xlf": true,
		"Base Application.da-dk.xlf":              true,
		"Base Application.g.xlf":                  false,
		"System Application.da-DK.xlf":            false,
	}
	for name, want := range locCases {
		if got := p.Localization.MatchString(name); got != want {
			t.Errorf("Localization(%q) = %v, want %v", name, got, want)
		}
	}

	if !p.Caption.MatchString("Table 17 - Field 5 - Property 2879900210") {
		t.Error("caption pattern should match a field caption id")
	}
	if p.Caption.MatchString("Table 17 - Field 5 - Property 1295455071") {
		t.Error("caption pattern should not match a tooltip id")
	}
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad regexp", func(c *Config) { c.CaptionPattern = "(" }, "caption_pattern"},
		{"empty pattern", func(c *Config) { c.LocalizationPattern = "" }, "localization_pattern"},
		{"zero chunk", func(c *Config) { c.ChunkSize = 0 }, "chunk_size"},
		{"empty work dir", func(c *Config) { c.WorkDir = "" }, "work_dir"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			_, err := cfg.Compile()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Compile() error = %v, want mention of %q", err, tc.want)
			}
		})
	}
}
