package entities

import (
	"fmt"
	"strings"
)

// Profile профиль качества внешнего движка (PDFSETTINGS)
type Profile string

// Профили Ghostscript в порядке возрастания качества и размера
const (
	ProfileScreen   Profile = "/screen"
	ProfileEbook    Profile = "/ebook"
	ProfilePrinter  Profile = "/printer"
	ProfilePrepress Profile = "/prepress"
)

// ParseProfile разбирает имя профиля, принимая варианты с и без ведущего слэша
func ParseProfile(name string) (Profile, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}

	switch Profile(normalized) {
	case ProfileScreen, ProfileEbook, ProfilePrinter, ProfilePrepress:
		return Profile(normalized), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidProfile, name)
	}
}

// String возвращает имя профиля в формате аргумента Ghostscript
func (p Profile) String() string {
	return string(p)
}

// CompressionConfig представляет конфигурацию одного прохода сжатия.
// Значение неизменяемо: каждый проход получает свой экземпляр.
type CompressionConfig struct {
	Profile  Profile // Профиль качества (/screen, /ebook, /printer, /prepress)
	ColorDPI int     // Целевое разрешение цветных изображений
	GrayDPI  int     // Целевое разрешение серых изображений
	MonoDPI  int     // Целевое разрешение монохромных изображений
}

// NewModerateConfig создает умеренную конфигурацию первого прохода
func NewModerateConfig() *CompressionConfig {
	return &CompressionConfig{
		Profile:  ProfileEbook,
		ColorDPI: 150,
		GrayDPI:  150,
		MonoDPI:  300,
	}
}

// NewAggressiveConfig создает агрессивную конфигурацию второго прохода
func NewAggressiveConfig() *CompressionConfig {
	return &CompressionConfig{
		Profile:  ProfileScreen,
		ColorDPI: 100,
		GrayDPI:  100,
		MonoDPI:  300,
	}
}

// Validate проверяет корректность конфигурации прохода
func (c *CompressionConfig) Validate() error {
	switch c.Profile {
	case ProfileScreen, ProfileEbook, ProfilePrinter, ProfilePrepress:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidProfile, c.Profile)
	}

	if c.ColorDPI <= 0 || c.GrayDPI <= 0 || c.MonoDPI <= 0 {
		return ErrInvalidResolution
	}

	return nil
}

// ReductionOptions параметры двухпроходного уменьшения размера
type ReductionOptions struct {
	Primary        *CompressionConfig // Конфигурация первого прохода
	Fallback       *CompressionConfig // Конфигурация агрессивного второго прохода
	MinGainPercent float64            // Порог выигрыша, ниже которого запускается второй проход
	Aggressive     bool               // Разрешен ли агрессивный второй проход
}

// DefaultMinGainPercent порог выигрыша по умолчанию
const DefaultMinGainPercent = 10.0

// NewDefaultReductionOptions создает параметры уменьшения по умолчанию:
// умеренный первый проход, агрессивный второй, порог 10%
func NewDefaultReductionOptions() *ReductionOptions {
	return &ReductionOptions{
		Primary:        NewModerateConfig(),
		Fallback:       NewAggressiveConfig(),
		MinGainPercent: DefaultMinGainPercent,
		Aggressive:     true,
	}
}

// Validate проверяет корректность параметров уменьшения
func (o *ReductionOptions) Validate() error {
	if o.Primary == nil {
		return fmt.Errorf("%w: не задана основная конфигурация", ErrInvalidProfile)
	}
	if err := o.Primary.Validate(); err != nil {
		return err
	}

	if o.Aggressive {
		if o.Fallback == nil {
			return fmt.Errorf("%w: не задана агрессивная конфигурация", ErrInvalidProfile)
		}
		if err := o.Fallback.Validate(); err != nil {
			return err
		}
	}

	if o.MinGainPercent < 0 || o.MinGainPercent > 100 {
		return ErrInvalidThreshold
	}

	return nil
}
