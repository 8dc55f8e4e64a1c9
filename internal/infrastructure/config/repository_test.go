package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"pdfreducer/internal/domain/entities"
	"pdfreducer/internal/infrastructure/config"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	repo := config.NewRepository()

	cfg, err := repo.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Compression.Engine != "ghostscript" {
		t.Errorf("Expected default engine ghostscript, got %q", cfg.Compression.Engine)
	}
	if cfg.Compression.Profile != "/ebook" {
		t.Errorf("Expected default profile /ebook, got %q", cfg.Compression.Profile)
	}
	if cfg.Compression.ColorDPI != 150 || cfg.Compression.GrayDPI != 150 || cfg.Compression.MonoDPI != 300 {
		t.Errorf("Unexpected default resolutions: %d/%d/%d",
			cfg.Compression.ColorDPI, cfg.Compression.GrayDPI, cfg.Compression.MonoDPI)
	}
	if !cfg.Compression.Aggressive {
		t.Error("Aggressive pass should be enabled by default")
	}
	if cfg.Compression.AggressiveProfile != "/screen" || cfg.Compression.AggressiveDPI != 100 {
		t.Errorf("Unexpected fallback defaults: %q %d",
			cfg.Compression.AggressiveProfile, cfg.Compression.AggressiveDPI)
	}
	if cfg.Compression.MinGainPercent != entities.DefaultMinGainPercent {
		t.Errorf("Expected threshold %.1f, got %.1f",
			entities.DefaultMinGainPercent, cfg.Compression.MinGainPercent)
	}
	if cfg.Processing.TimeoutSeconds != 120 {
		t.Errorf("Expected default timeout 120s, got %d", cfg.Processing.TimeoutSeconds)
	}
	if err := cfg.Compression.Validate(); err != nil {
		t.Errorf("Default config should be valid, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	repo := config.NewRepository()
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	original, err := repo.Load(configPath)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	original.Compression.Profile = "/printer"
	original.Compression.MinGainPercent = 25
	original.Scanner.SourceDirectory = "/data/pdfs"

	if err := repo.Save(configPath, original); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	loaded, err := repo.Load(configPath)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if loaded.Compression.Profile != "/printer" {
		t.Errorf("Expected profile /printer, got %q", loaded.Compression.Profile)
	}
	if loaded.Compression.MinGainPercent != 25 {
		t.Errorf("Expected threshold 25, got %.1f", loaded.Compression.MinGainPercent)
	}
	if loaded.Scanner.SourceDirectory != "/data/pdfs" {
		t.Errorf("Expected source directory /data/pdfs, got %q", loaded.Scanner.SourceDirectory)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	repo := config.NewRepository()
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	if err := os.WriteFile(configPath, []byte("scanner: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := repo.Load(configPath); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}
