package entities_test

import (
	"errors"
	"testing"

	"pdfreducer/internal/domain/entities"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    entities.Profile
		wantErr bool
	}{
		{"With slash", "/ebook", entities.ProfileEbook, false},
		{"Without slash", "ebook", entities.ProfileEbook, false},
		{"Upper case", "/SCREEN", entities.ProfileScreen, false},
		{"Surrounding spaces", "  /printer ", entities.ProfilePrinter, false},
		{"Prepress", "prepress", entities.ProfilePrepress, false},
		{"Unknown profile", "/default", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entities.ParseProfile(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseProfile(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr && !errors.Is(err, entities.ErrInvalidProfile) {
				t.Errorf("Expected ErrInvalidProfile, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseProfile(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewModerateConfig(t *testing.T) {
	config := entities.NewModerateConfig()

	if config.Profile != entities.ProfileEbook {
		t.Errorf("Expected profile %q, got %q", entities.ProfileEbook, config.Profile)
	}
	if config.ColorDPI != 150 || config.GrayDPI != 150 {
		t.Errorf("Expected color/gray DPI 150/150, got %d/%d", config.ColorDPI, config.GrayDPI)
	}
	if config.MonoDPI != 300 {
		t.Errorf("Expected mono DPI 300, got %d", config.MonoDPI)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Moderate config should be valid, got %v", err)
	}
}

func TestNewAggressiveConfig(t *testing.T) {
	config := entities.NewAggressiveConfig()

	if config.Profile != entities.ProfileScreen {
		t.Errorf("Expected profile %q, got %q", entities.ProfileScreen, config.Profile)
	}
	if config.ColorDPI != 100 || config.GrayDPI != 100 {
		t.Errorf("Expected color/gray DPI 100/100, got %d/%d", config.ColorDPI, config.GrayDPI)
	}
	if config.MonoDPI != 300 {
		t.Errorf("Expected mono DPI 300, got %d", config.MonoDPI)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Aggressive config should be valid, got %v", err)
	}
}

func TestCompressionConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *entities.CompressionConfig
		wantErr error
	}{
		{
			name: "Valid config",
			config: &entities.CompressionConfig{
				Profile:  entities.ProfileEbook,
				ColorDPI: 150,
				GrayDPI:  150,
				MonoDPI:  300,
			},
			wantErr: nil,
		},
		{
			name: "Invalid profile",
			config: &entities.CompressionConfig{
				Profile:  "/default",
				ColorDPI: 150,
				GrayDPI:  150,
				MonoDPI:  300,
			},
			wantErr: entities.ErrInvalidProfile,
		},
		{
			name: "Zero color DPI",
			config: &entities.CompressionConfig{
				Profile:  entities.ProfileScreen,
				ColorDPI: 0,
				GrayDPI:  100,
				MonoDPI:  300,
			},
			wantErr: entities.ErrInvalidResolution,
		},
		{
			name: "Negative mono DPI",
			config: &entities.CompressionConfig{
				Profile:  entities.ProfileScreen,
				ColorDPI: 100,
				GrayDPI:  100,
				MonoDPI:  -1,
			},
			wantErr: entities.ErrInvalidResolution,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewDefaultReductionOptions(t *testing.T) {
	options := entities.NewDefaultReductionOptions()

	if options.Primary.Profile != entities.ProfileEbook {
		t.Errorf("Expected primary profile %q, got %q", entities.ProfileEbook, options.Primary.Profile)
	}
	if options.Fallback.Profile != entities.ProfileScreen {
		t.Errorf("Expected fallback profile %q, got %q", entities.ProfileScreen, options.Fallback.Profile)
	}
	if options.MinGainPercent != entities.DefaultMinGainPercent {
		t.Errorf("Expected threshold %.1f, got %.1f", entities.DefaultMinGainPercent, options.MinGainPercent)
	}
	if !options.Aggressive {
		t.Error("Aggressive pass should be enabled by default")
	}
	if err := options.Validate(); err != nil {
		t.Errorf("Default options should be valid, got %v", err)
	}
}

func TestReductionOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*entities.ReductionOptions)
		wantErr error
	}{
		{
			name:    "Valid defaults",
			modify:  func(o *entities.ReductionOptions) {},
			wantErr: nil,
		},
		{
			name:    "Missing primary",
			modify:  func(o *entities.ReductionOptions) { o.Primary = nil },
			wantErr: entities.ErrInvalidProfile,
		},
		{
			name: "Missing fallback with aggressive enabled",
			modify: func(o *entities.ReductionOptions) {
				o.Aggressive = true
				o.Fallback = nil
			},
			wantErr: entities.ErrInvalidProfile,
		},
		{
			name: "Missing fallback with aggressive disabled",
			modify: func(o *entities.ReductionOptions) {
				o.Aggressive = false
				o.Fallback = nil
			},
			wantErr: nil,
		},
		{
			name:    "Threshold above 100",
			modify:  func(o *entities.ReductionOptions) { o.MinGainPercent = 101 },
			wantErr: entities.ErrInvalidThreshold,
		},
		{
			name:    "Negative threshold",
			modify:  func(o *entities.ReductionOptions) { o.MinGainPercent = -1 },
			wantErr: entities.ErrInvalidThreshold,
		},
		{
			name:    "Zero threshold",
			modify:  func(o *entities.ReductionOptions) { o.MinGainPercent = 0 },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := entities.NewDefaultReductionOptions()
			tt.modify(options)

			err := options.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAppCompressionConfig_Validate(t *testing.T) {
	valid := func() *entities.AppCompressionConfig {
		return &entities.AppCompressionConfig{
			Engine:            "ghostscript",
			Profile:           "/ebook",
			ColorDPI:          150,
			GrayDPI:           150,
			MonoDPI:           300,
			Aggressive:        true,
			AggressiveProfile: "/screen",
			AggressiveDPI:     100,
			MinGainPercent:    10,
		}
	}

	tests := []struct {
		name    string
		modify  func(*entities.AppCompressionConfig)
		wantErr bool
	}{
		{"Valid config", func(c *entities.AppCompressionConfig) {}, false},
		{"Invalid profile", func(c *entities.AppCompressionConfig) { c.Profile = "bad" }, true},
		{"Zero gray DPI", func(c *entities.AppCompressionConfig) { c.GrayDPI = 0 }, true},
		{"Invalid fallback profile", func(c *entities.AppCompressionConfig) { c.AggressiveProfile = "bad" }, true},
		{"Fallback ignored when disabled", func(c *entities.AppCompressionConfig) {
			c.Aggressive = false
			c.AggressiveProfile = "bad"
		}, false},
		{"Threshold out of range", func(c *entities.AppCompressionConfig) { c.MinGainPercent = 150 }, true},
		{"JPEG quality not multiple of 5", func(c *entities.AppCompressionConfig) {
			c.EnableJPEG = true
			c.JPEGQuality = 33
		}, true},
		{"PNG quality valid", func(c *entities.AppCompressionConfig) {
			c.EnablePNG = true
			c.PNGQuality = 25
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid()
			tt.modify(config)

			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
