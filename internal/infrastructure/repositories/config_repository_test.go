package repositories_test

import (
	"testing"

	"pdfreducer/internal/domain/entities"
	"pdfreducer/internal/infrastructure/repositories"
)

func TestGetReductionOptions_Defaults(t *testing.T) {
	repo := repositories.NewConfigRepository()

	options, err := repo.GetReductionOptions(&entities.AppCompressionConfig{})
	if err != nil {
		t.Fatalf("GetReductionOptions() unexpected error: %v", err)
	}

	if options.Primary.Profile != entities.ProfileEbook {
		t.Errorf("Expected primary profile %q, got %q", entities.ProfileEbook, options.Primary.Profile)
	}
	if options.Fallback.Profile != entities.ProfileScreen {
		t.Errorf("Expected fallback profile %q, got %q", entities.ProfileScreen, options.Fallback.Profile)
	}
	if options.MinGainPercent != entities.DefaultMinGainPercent {
		t.Errorf("Expected threshold %.1f, got %.1f", entities.DefaultMinGainPercent, options.MinGainPercent)
	}
}

func TestGetReductionOptions_FromConfig(t *testing.T) {
	repo := repositories.NewConfigRepository()

	options, err := repo.GetReductionOptions(&entities.AppCompressionConfig{
		Profile:           "printer",
		ColorDPI:          200,
		GrayDPI:           180,
		MonoDPI:           600,
		Aggressive:        true,
		AggressiveProfile: "screen",
		AggressiveDPI:     72,
		MinGainPercent:    15,
	})
	if err != nil {
		t.Fatalf("GetReductionOptions() unexpected error: %v", err)
	}

	if options.Primary.Profile != entities.ProfilePrinter {
		t.Errorf("Expected primary profile %q, got %q", entities.ProfilePrinter, options.Primary.Profile)
	}
	if options.Primary.ColorDPI != 200 || options.Primary.GrayDPI != 180 {
		t.Errorf("Unexpected primary resolutions: %d/%d", options.Primary.ColorDPI, options.Primary.GrayDPI)
	}
	// Монохромное разрешение общее для обоих проходов
	if options.Primary.MonoDPI != 600 || options.Fallback.MonoDPI != 600 {
		t.Errorf("Expected mono DPI 600 for both passes, got %d/%d",
			options.Primary.MonoDPI, options.Fallback.MonoDPI)
	}
	if options.Fallback.ColorDPI != 72 || options.Fallback.GrayDPI != 72 {
		t.Errorf("Unexpected fallback resolutions: %d/%d", options.Fallback.ColorDPI, options.Fallback.GrayDPI)
	}
	if options.MinGainPercent != 15 {
		t.Errorf("Expected threshold 15, got %.1f", options.MinGainPercent)
	}
}

func TestGetReductionOptions_InvalidProfile(t *testing.T) {
	repo := repositories.NewConfigRepository()

	if _, err := repo.GetReductionOptions(&entities.AppCompressionConfig{Profile: "lossless"}); err == nil {
		t.Error("Expected error for unknown profile")
	}
}
