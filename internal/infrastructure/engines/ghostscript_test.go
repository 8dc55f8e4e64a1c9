package engines

import (
	"errors"
	"strings"
	"testing"
	"time"

	"pdfreducer/internal/domain/entities"
)

func TestBuildArgs(t *testing.T) {
	config := &entities.CompressionConfig{
		Profile:  entities.ProfileEbook,
		ColorDPI: 150,
		GrayDPI:  150,
		MonoDPI:  300,
	}

	args := buildArgs("input.pdf", "output.pdf", config)

	expected := []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=/ebook",
		"-dDetectDuplicateImages=true",
		"-dCompressFonts=true",
		"-dSubsetFonts=true",
		"-dColorImageDownsampleType=/Bicubic",
		"-dColorImageResolution=150",
		"-dGrayImageDownsampleType=/Bicubic",
		"-dGrayImageResolution=150",
		"-dMonoImageDownsampleType=/Subsample",
		"-dMonoImageResolution=300",
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-sOutputFile=output.pdf",
		"input.pdf",
	}

	if len(args) != len(expected) {
		t.Fatalf("Expected %d args, got %d: %v", len(expected), len(args), args)
	}
	for i, want := range expected {
		if args[i] != want {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want)
		}
	}
}

func TestBuildArgs_AggressiveProfile(t *testing.T) {
	config := &entities.CompressionConfig{
		Profile:  entities.ProfileScreen,
		ColorDPI: 100,
		GrayDPI:  100,
		MonoDPI:  300,
	}

	args := buildArgs("a.pdf", "b.pdf", config)

	want := map[string]bool{
		"-dPDFSETTINGS=/screen":      false,
		"-dColorImageResolution=100": false,
		"-dGrayImageResolution=100":  false,
		"-dMonoImageResolution=300":  false,
	}
	for _, arg := range args {
		if _, ok := want[arg]; ok {
			want[arg] = true
		}
	}
	for arg, found := range want {
		if !found {
			t.Errorf("Expected argument %q not present in %v", arg, args)
		}
	}

	// Входной файл всегда последним, после -sOutputFile
	if args[len(args)-1] != "a.pdf" {
		t.Errorf("Input path must be the last argument, got %q", args[len(args)-1])
	}
	if !strings.HasPrefix(args[len(args)-2], "-sOutputFile=") {
		t.Errorf("Expected -sOutputFile before input path, got %q", args[len(args)-2])
	}
}

func TestLookupExecutable_NotFound(t *testing.T) {
	t.Setenv("PATH", "")

	engine := NewGhostscriptEngine(0)
	_, err := engine.LookupExecutable()
	if !errors.Is(err, entities.ErrToolNotFound) {
		t.Errorf("Expected ErrToolNotFound, got %v", err)
	}
}

func TestCompress_ToolNotFound(t *testing.T) {
	t.Setenv("PATH", "")

	engine := NewGhostscriptEngine(30 * time.Second)
	config := entities.NewModerateConfig()

	_, err := engine.Compress("input.pdf", "output.pdf", config)
	if !errors.Is(err, entities.ErrToolNotFound) {
		t.Errorf("Expected ErrToolNotFound, got %v", err)
	}
}

func TestCompress_InvalidConfig(t *testing.T) {
	engine := NewGhostscriptEngine(0)
	config := &entities.CompressionConfig{Profile: "/bad", ColorDPI: 150, GrayDPI: 150, MonoDPI: 300}

	_, err := engine.Compress("input.pdf", "output.pdf", config)
	if !errors.Is(err, entities.ErrInvalidProfile) {
		t.Errorf("Expected ErrInvalidProfile, got %v", err)
	}
}

func TestExternalToolError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *entities.ExternalToolError
		contains []string
	}{
		{
			name:     "Exit code with output",
			err:      &entities.ExternalToolError{Tool: "gs", ExitCode: 1, Output: "Unrecoverable error"},
			contains: []string{"gs", "кодом 1", "Unrecoverable error"},
		},
		{
			name:     "Timeout",
			err:      &entities.ExternalToolError{Tool: "gs", ExitCode: -1, TimedOut: true},
			contains: []string{"gs", "таймауту"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error message %q does not contain %q", msg, want)
				}
			}
		})
	}
}
