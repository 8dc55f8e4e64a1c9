package controllers

import (
	"fmt"
	"path/filepath"

	"pdfreducer/internal/domain/entities"
	usecases "pdfreducer/internal/usecase"
)

// CLIController контроллер одноразового режима командной строки.
// Используется, когда приложение запущено с флагом -input: TUI не
// поднимается, выполняется одно уменьшение и печатается итог.
type CLIController struct {
	reduceUseCase          *usecases.ReducePDFUseCase
	reduceDirectoryUseCase *usecases.ReduceDirectoryUseCase
}

// NewCLIController создает новый CLI контроллер
func NewCLIController(
	reduceUseCase *usecases.ReducePDFUseCase,
	reduceDirectoryUseCase *usecases.ReduceDirectoryUseCase,
) *CLIController {
	return &CLIController{
		reduceUseCase:          reduceUseCase,
		reduceDirectoryUseCase: reduceDirectoryUseCase,
	}
}

// HandleSingleFile обрабатывает уменьшение одного файла
func (c *CLIController) HandleSingleFile(inputPath, outputPath string, options *entities.ReductionOptions) error {
	fmt.Printf("🚀 Уменьшение размера файла: %s\n", inputPath)

	outcome, err := c.reduceUseCase.Execute(inputPath, outputPath, options)
	if err != nil {
		return fmt.Errorf("ошибка уменьшения: %w", err)
	}

	c.showOutcome(outcome)
	return nil
}

// HandleDirectory обрабатывает уменьшение всех PDF файлов директории
func (c *CLIController) HandleDirectory(inputDir, outputDir string, options *entities.ReductionOptions) error {
	fmt.Printf("🚀 Уменьшение размера файлов директории: %s\n", inputDir)

	result, err := c.reduceDirectoryUseCase.Execute(inputDir, outputDir, options)
	if err != nil {
		return fmt.Errorf("ошибка уменьшения директории: %w", err)
	}

	c.showDirectoryResult(result)
	return nil
}

// showOutcome показывает итог уменьшения файла
func (c *CLIController) showOutcome(outcome *entities.ReductionOutcome) {
	fmt.Printf("%s: %.2f MB → %.2f MB  (выигрыш %.1f%%)\n",
		filepath.Base(outcome.CurrentFile),
		float64(outcome.OriginalSize)/1024/1024,
		float64(outcome.ReducedSize)/1024/1024,
		outcome.ReductionRatio)
	fmt.Printf("Проходов: %d | Профиль: %s @ %d dpi\n",
		outcome.PassesRun,
		outcome.ConfigUsed.Profile,
		outcome.ConfigUsed.ColorDPI)

	if !outcome.IsEffective() {
		fmt.Println("⚠️ Файл не был уменьшен (возможно, уже оптимизирован)")
	}

	fmt.Printf("Итоговый файл: %s\n", outcome.OutputPath)
}

// showDirectoryResult показывает итог уменьшения директории
func (c *CLIController) showDirectoryResult(result *usecases.DirectoryReductionResult) {
	fmt.Printf("\n📊 Результаты уменьшения директории:\n")
	fmt.Printf("Всего файлов: %d\n", result.TotalFiles)
	fmt.Printf("Успешно: %d\n", result.SuccessCount)
	fmt.Printf("Ошибок: %d\n", result.FailedCount)

	for _, outcome := range result.Outcomes {
		fmt.Printf("  %s: %.2f MB → %.2f MB (%.1f%%, проходов: %d)\n",
			filepath.Base(outcome.CurrentFile),
			float64(outcome.OriginalSize)/1024/1024,
			float64(outcome.ReducedSize)/1024/1024,
			outcome.ReductionRatio,
			outcome.PassesRun)
	}

	if len(result.Errors) > 0 {
		fmt.Println("\n❌ Ошибки:")
		for i, err := range result.Errors {
			fmt.Printf("[%d] %v\n", i+1, err)
		}
	}

	fmt.Printf("\n🎉 Обработка завершена! Успешно: %d/%d файлов\n",
		result.SuccessCount, result.TotalFiles)
}
