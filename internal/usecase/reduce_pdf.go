package usecases

import (
	"fmt"
	"path/filepath"

	"pdfreducer/internal/domain/entities"
	"pdfreducer/internal/domain/repositories"
)

// ReducePDFUseCase сценарий уменьшения размера одного PDF файла.
// Выполняет один или два прохода внешнего движка: умеренный проход,
// затем, если выигрыш ниже порога, агрессивный проход поверх того же
// файла назначения.
type ReducePDFUseCase struct {
	engine   repositories.PDFEngine
	fileRepo repositories.FileRepository
}

// NewReducePDFUseCase создает новый сценарий уменьшения PDF
func NewReducePDFUseCase(
	engine repositories.PDFEngine,
	fileRepo repositories.FileRepository,
) *ReducePDFUseCase {
	return &ReducePDFUseCase{
		engine:   engine,
		fileRepo: fileRepo,
	}
}

// Execute выполняет уменьшение размера PDF файла.
//
// Предусловия проверяются до первого запуска движка: исходный файл должен
// существовать и быть непустым. Каждый проход полностью перезаписывает файл
// назначения. Эскалация происходит, когда выигрыш первого прохода строго
// ниже options.MinGainPercent. Ошибка любого прохода, включая агрессивный,
// распространяется вызывающему: результат первого прохода не подменяет
// неудавшийся второй.
func (uc *ReducePDFUseCase) Execute(inputPath, outputPath string, options *entities.ReductionOptions) (*entities.ReductionOutcome, error) {
	if options == nil {
		options = entities.NewDefaultReductionOptions()
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}

	// Проверяем существование входного файла
	if !uc.fileRepo.FileExists(inputPath) {
		return nil, fmt.Errorf("%w: %s", entities.ErrSourceNotFound, inputPath)
	}

	fileInfo, err := uc.fileRepo.GetFileInfo(inputPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}
	if fileInfo.Size == 0 {
		return nil, fmt.Errorf("%w: %s", entities.ErrSourceEmpty, inputPath)
	}

	// Генерируем имя выходного файла, если не указано
	if outputPath == "" {
		ext := filepath.Ext(inputPath)
		base := inputPath[:len(inputPath)-len(ext)]
		outputPath = base + "_reduced" + ext
	}

	// Проход 1: умеренная конфигурация
	result, err := uc.engine.Compress(inputPath, outputPath, options.Primary)
	if err != nil {
		return nil, fmt.Errorf("ошибка первого прохода: %w", err)
	}

	outcome := &entities.ReductionOutcome{
		CurrentFile:  inputPath,
		OutputPath:   outputPath,
		OriginalSize: fileInfo.Size,
		ReducedSize:  result.Size,
		ConfigUsed:   options.Primary,
		PassesRun:    1,
		Success:      true,
	}

	// Проход 2: агрессивная конфигурация поверх того же файла назначения.
	// Решение принимается по размерам, а не по производному коэффициенту:
	// деление в Gain() вносит ошибку округления, из-за которой выигрыш
	// ровно на пороге выглядел бы как недостаточный
	thresholdSize := float64(fileInfo.Size) * (1 - options.MinGainPercent/100.0)
	if options.Aggressive && float64(result.Size) > thresholdSize {
		result, err = uc.engine.Compress(inputPath, outputPath, options.Fallback)
		if err != nil {
			return nil, fmt.Errorf("ошибка агрессивного прохода: %w", err)
		}

		outcome.ReducedSize = result.Size
		outcome.ConfigUsed = options.Fallback
		outcome.PassesRun = 2
	}

	outcome.CalculateReductionRatio()
	return outcome, nil
}
