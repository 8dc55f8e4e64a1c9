package repositories

import (
	"pdfreducer/internal/domain/entities"
)

// ConfigRepository реализация репозитория параметров уменьшения
type ConfigRepository struct{}

// NewConfigRepository создает новый репозиторий параметров
func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{}
}

// GetReductionOptions строит параметры двухпроходного уменьшения из
// конфигурации приложения. Пустые поля заполняются значениями по умолчанию.
func (r *ConfigRepository) GetReductionOptions(config *entities.AppCompressionConfig) (*entities.ReductionOptions, error) {
	options := entities.NewDefaultReductionOptions()

	if config.Profile != "" {
		profile, err := entities.ParseProfile(config.Profile)
		if err != nil {
			return nil, err
		}
		options.Primary.Profile = profile
	}
	if config.ColorDPI > 0 {
		options.Primary.ColorDPI = config.ColorDPI
	}
	if config.GrayDPI > 0 {
		options.Primary.GrayDPI = config.GrayDPI
	}
	if config.MonoDPI > 0 {
		options.Primary.MonoDPI = config.MonoDPI
		options.Fallback.MonoDPI = config.MonoDPI
	}

	options.Aggressive = config.Aggressive
	if config.AggressiveProfile != "" {
		profile, err := entities.ParseProfile(config.AggressiveProfile)
		if err != nil {
			return nil, err
		}
		options.Fallback.Profile = profile
	}
	if config.AggressiveDPI > 0 {
		options.Fallback.ColorDPI = config.AggressiveDPI
		options.Fallback.GrayDPI = config.AggressiveDPI
	}

	if config.MinGainPercent > 0 {
		options.MinGainPercent = config.MinGainPercent
	}

	if err := options.Validate(); err != nil {
		return nil, err
	}

	return options, nil
}

// ValidateOptions валидирует параметры уменьшения
func (r *ConfigRepository) ValidateOptions(options *entities.ReductionOptions) error {
	return options.Validate()
}
