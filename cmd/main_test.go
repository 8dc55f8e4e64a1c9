package main

import (
	"path/filepath"
	"testing"

	"pdfreducer/internal/domain/entities"
	"pdfreducer/internal/infrastructure/engines"
	"pdfreducer/internal/infrastructure/logging"
)

func TestSelectEngine(t *testing.T) {
	appConfig := &entities.Config{
		Processing: entities.ProcessingConfig{TimeoutSeconds: 120},
	}

	tests := []struct {
		name    string
		engine  string
		wantErr bool
	}{
		{"Ghostscript", "ghostscript", false},
		{"Empty defaults to ghostscript", "", false},
		{"PDFCPU", "pdfcpu", false},
		{"UniPDF", "unipdf", false},
		{"Typo is rejected", "pdfcp", true},
		{"Unknown engine", "mutool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := selectEngine(tt.engine, appConfig)
			if (err != nil) != tt.wantErr {
				t.Fatalf("selectEngine(%q) error = %v, wantErr %v", tt.engine, err, tt.wantErr)
			}
			if !tt.wantErr && engine == nil {
				t.Errorf("selectEngine(%q) returned nil engine", tt.engine)
			}
		})
	}
}

func TestSelectEngine_DefaultIsGhostscript(t *testing.T) {
	appConfig := &entities.Config{
		Processing: entities.ProcessingConfig{TimeoutSeconds: 120},
	}

	engine, err := selectEngine("", appConfig)
	if err != nil {
		t.Fatalf("selectEngine() unexpected error: %v", err)
	}
	if _, ok := engine.(*engines.GhostscriptEngine); !ok {
		t.Errorf("Expected *engines.GhostscriptEngine, got %T", engine)
	}
}

func TestNewTUILogger_DisabledFileLogger(t *testing.T) {
	// log_to_file: false — файловый логгер не создается
	fileLogger, err := logging.NewFileLogger(
		filepath.Join(t.TempDir(), "app.log"), "info", 10, false)
	if err != nil {
		t.Fatalf("NewFileLogger() unexpected error: %v", err)
	}
	if fileLogger != nil {
		t.Fatal("Expected nil file logger when logging to file is disabled")
	}

	// Адаптер не должен падать на отключенном файловом логгере
	logger := newTUILogger(fileLogger, nil)
	logger.Debug("отладка %d", 1)
	logger.Info("сообщение")
	logger.Warning("предупреждение")
	logger.Error("ошибка")
	logger.Success("успех")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() unexpected error: %v", err)
	}
}

func TestNewTUILogger_EnabledFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")
	fileLogger, err := logging.NewFileLogger(logPath, "info", 10, true)
	if err != nil {
		t.Fatalf("NewFileLogger() unexpected error: %v", err)
	}

	logger := newTUILogger(fileLogger, nil)
	logger.Info("сообщение %s", "test")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() unexpected error: %v", err)
	}
}
