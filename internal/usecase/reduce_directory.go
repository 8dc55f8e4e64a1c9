package usecases

import (
	"fmt"
	"path/filepath"

	"pdfreducer/internal/domain/entities"
	"pdfreducer/internal/domain/repositories"
)

// ReduceDirectoryUseCase сценарий последовательного уменьшения всех PDF
// файлов в директории. Используется одноразовым CLI режимом; интерактивная
// пакетная обработка с воркерами живет в ProcessPDFsUseCase.
type ReduceDirectoryUseCase struct {
	reducer  *ReducePDFUseCase
	fileRepo repositories.FileRepository
}

// NewReduceDirectoryUseCase создает новый сценарий уменьшения директории
func NewReduceDirectoryUseCase(
	reducer *ReducePDFUseCase,
	fileRepo repositories.FileRepository,
) *ReduceDirectoryUseCase {
	return &ReduceDirectoryUseCase{
		reducer:  reducer,
		fileRepo: fileRepo,
	}
}

// DirectoryReductionResult результат уменьшения директории
type DirectoryReductionResult struct {
	TotalFiles   int
	SuccessCount int
	FailedCount  int
	Outcomes     []*entities.ReductionOutcome
	Errors       []error
}

// Execute уменьшает все PDF файлы директории, помещая результаты в outputDir
// с исходными именами
func (uc *ReduceDirectoryUseCase) Execute(inputDir, outputDir string, options *entities.ReductionOptions) (*DirectoryReductionResult, error) {
	if !uc.fileRepo.FileExists(inputDir) {
		return nil, fmt.Errorf("%w: %s", entities.ErrDirectoryNotFound, inputDir)
	}

	if outputDir == "" {
		outputDir = filepath.Clean(inputDir) + "_reduced"
	}

	if err := uc.fileRepo.CreateDirectory(outputDir); err != nil {
		return nil, fmt.Errorf("ошибка создания выходной директории: %w", err)
	}

	files, err := uc.fileRepo.ListPDFFiles(inputDir)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка файлов: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", entities.ErrNoFilesFound, inputDir)
	}

	result := &DirectoryReductionResult{
		TotalFiles: len(files),
		Outcomes:   make([]*entities.ReductionOutcome, 0, len(files)),
		Errors:     make([]error, 0),
	}

	// Обрабатываем файлы строго последовательно: один внешний процесс
	// за раз
	for _, inputFile := range files {
		fileName := filepath.Base(inputFile)
		outputFile := filepath.Join(outputDir, fileName)

		outcome, err := uc.reducer.Execute(inputFile, outputFile, options)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("ошибка уменьшения файла %s: %w", fileName, err))
			result.FailedCount++
			continue
		}

		result.Outcomes = append(result.Outcomes, outcome)
		result.SuccessCount++
	}

	return result, nil
}
