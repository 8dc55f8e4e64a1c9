package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"pdfreducer/internal/domain/entities"
)

// Repository реализация репозитория конфигурации
type Repository struct{}

// NewRepository создает новый репозиторий конфигурации
func NewRepository() *Repository {
	return &Repository{}
}

// Load загружает конфигурацию из файла
func (r *Repository) Load(configPath string) (*entities.Config, error) {
	// Если файл не существует, создаем конфигурацию по умолчанию
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return r.createDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config entities.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save сохраняет конфигурацию в файл
func (r *Repository) Save(configPath string, config *entities.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// createDefaultConfig создает конфигурацию по умолчанию:
// умеренный первый проход /ebook 150dpi, агрессивный второй /screen 100dpi,
// порог выигрыша 10%
func (r *Repository) createDefaultConfig() *entities.Config {
	return &entities.Config{
		Scanner: entities.ScannerConfig{
			SourceDirectory: "./pdfs",
			TargetDirectory: "./reduced",
			ReplaceOriginal: false,
		},
		Compression: entities.AppCompressionConfig{
			Engine:            "ghostscript",
			Profile:           "/ebook",
			ColorDPI:          150,
			GrayDPI:           150,
			MonoDPI:           300,
			Aggressive:        true,
			AggressiveProfile: "/screen",
			AggressiveDPI:     100,
			MinGainPercent:    entities.DefaultMinGainPercent,
			AutoStart:         false,
		},
		Processing: entities.ProcessingConfig{
			ParallelWorkers: 2,
			TimeoutSeconds:  120,
		},
		Output: entities.OutputConfig{
			LogLevel:     "info",
			ProgressBar:  true,
			LogToFile:    true,
			LogFileName:  "pdfreducer.log",
			LogMaxSizeMB: 10,
		},
	}
}
