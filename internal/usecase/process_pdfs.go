package usecases

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pdfreducer/internal/domain/entities"
	"pdfreducer/internal/domain/repositories"
)

// ProcessPDFsUseCase сценарий автоматической обработки PDF файлов:
// сканирует исходную директорию и прогоняет каждый файл через
// двухпроходное уменьшение, распределяя файлы по воркерам
type ProcessPDFsUseCase struct {
	reducer          *ReducePDFUseCase
	fileRepo         repositories.FileRepository
	configRepo       repositories.ConfigRepository
	logger           repositories.Logger
	progressReporter func(entities.ProcessingStatus)
}

// NewProcessPDFsUseCase создает новый сценарий обработки PDF
func NewProcessPDFsUseCase(
	reducer *ReducePDFUseCase,
	fileRepo repositories.FileRepository,
	configRepo repositories.ConfigRepository,
	logger repositories.Logger,
) *ProcessPDFsUseCase {
	return &ProcessPDFsUseCase{
		reducer:    reducer,
		fileRepo:   fileRepo,
		configRepo: configRepo,
		logger:     logger,
	}
}

// SetProgressReporter устанавливает функцию для отчета о прогрессе
func (uc *ProcessPDFsUseCase) SetProgressReporter(reporter func(entities.ProcessingStatus)) {
	uc.progressReporter = reporter
}

// reportProgress отправляет обновление прогресса
func (uc *ProcessPDFsUseCase) reportProgress(status *entities.ProcessingStatus) {
	if uc.progressReporter != nil {
		uc.progressReporter(*status)
	}
}

// Execute выполняет автоматическую обработку PDF файлов согласно конфигурации
func (uc *ProcessPDFsUseCase) Execute(config *entities.Config) error {
	// Фаза 1: Инициализация
	status := entities.NewProcessingStatus(0)
	status.SetPhase(entities.PhaseInitializing, "Инициализация обработки...")
	uc.reportProgress(status)

	uc.logInfo("╔════════════════════════════════════════════════════════════")
	uc.logInfo("║ Начало уменьшения размера PDF файлов")
	uc.logInfo("╠════════════════════════════════════════════════════════════")
	uc.logInfo("║ Исходная директория: %s", config.Scanner.SourceDirectory)

	if config.Scanner.ReplaceOriginal {
		uc.logInfo("║ Режим: Замена оригинальных файлов")
	} else {
		uc.logInfo("║ Целевая директория: %s", config.Scanner.TargetDirectory)
	}

	uc.logInfo("║ Движок: %s", config.Compression.Engine)
	uc.logInfo("║ Профиль: %s @ %d dpi", config.Compression.Profile, config.Compression.ColorDPI)
	if config.Compression.Aggressive {
		uc.logInfo("║ Резервный профиль: %s @ %d dpi (порог %.1f%%)",
			config.Compression.AggressiveProfile,
			config.Compression.AggressiveDPI,
			config.Compression.MinGainPercent)
	}
	uc.logInfo("║ Параллельных воркеров: %d", config.Processing.ParallelWorkers)
	uc.logInfo("╚════════════════════════════════════════════════════════════")

	// Проверяем существование исходной директории
	if !uc.fileRepo.FileExists(config.Scanner.SourceDirectory) {
		err := fmt.Errorf("исходная директория не существует: %s", config.Scanner.SourceDirectory)
		status.Fail(err)
		uc.reportProgress(status)
		return err
	}

	// Создаем целевую директорию, если нужно
	if !config.Scanner.ReplaceOriginal {
		if err := uc.fileRepo.CreateDirectory(config.Scanner.TargetDirectory); err != nil {
			err = fmt.Errorf("ошибка создания целевой директории: %w", err)
			status.Fail(err)
			uc.reportProgress(status)
			return err
		}
	}

	// Фаза 2: Сканирование файлов
	status.SetPhase(entities.PhaseScanning, "Сканирование PDF файлов...")
	uc.reportProgress(status)
	uc.logInfo("🔍 Сканирование директории...")

	files, err := uc.fileRepo.ListPDFFiles(config.Scanner.SourceDirectory)
	if err != nil {
		err = fmt.Errorf("ошибка получения списка файлов: %w", err)
		status.Fail(err)
		uc.reportProgress(status)
		return err
	}

	if len(files) == 0 {
		uc.logWarning("⚠️  PDF файлы не найдены в директории: %s", config.Scanner.SourceDirectory)
		status.Complete()
		uc.reportProgress(status)
		return nil
	}

	status.TotalFiles = len(files)
	uc.logSuccess("✓ Найдено файлов для обработки: %d", len(files))

	// Строим параметры уменьшения из конфигурации
	options, err := uc.configRepo.GetReductionOptions(&config.Compression)
	if err != nil {
		err = fmt.Errorf("ошибка конфигурации уменьшения: %w", err)
		status.Fail(err)
		uc.reportProgress(status)
		return err
	}

	// Фаза 3: Уменьшение файлов
	status.SetPhase(entities.PhaseReducing, "Уменьшение размера PDF файлов...")
	uc.reportProgress(status)
	uc.logInfo("")
	uc.logInfo("🔄 Начало уменьшения файлов...")
	uc.logInfo("─────────────────────────────────────────────────────────────")

	// Создаем воркеры для параллельной обработки. Каждый файл получает
	// собственный файл назначения, поэтому воркеры не конкурируют за запись
	workers := config.Processing.ParallelWorkers
	if workers <= 0 {
		workers = 1
	}

	// Каналы для координации работы
	jobs := make(chan string, len(files))
	outcomes := make(chan *entities.ReductionOutcome, len(files))

	var wg sync.WaitGroup

	// Запускаем воркеров
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go uc.worker(jobs, outcomes, &wg, config, options)
	}

	// Отправляем задачи воркерам
	for _, file := range files {
		jobs <- file
	}
	close(jobs)

	// Горутина для сбора результатов
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	// Обрабатываем результаты
	fileCounter := 0
	for outcome := range outcomes {
		fileCounter++
		status.AddOutcome(outcome)

		// Обновляем текущий файл
		status.SetCurrentFile(outcome.CurrentFile, outcome.OriginalSize)

		// Отправляем обновление прогресса
		uc.reportProgress(status)

		// Логируем итог обработки файла
		fileName := filepath.Base(outcome.CurrentFile)
		if outcome.Success && outcome.Error == nil {
			uc.logSuccess("[%d/%d] ✓ %s", fileCounter, status.TotalFiles, fileName)
			uc.logInfo("    └─ Размер: %.2f MB → %.2f MB",
				float64(outcome.OriginalSize)/1024/1024,
				float64(outcome.ReducedSize)/1024/1024)
			uc.logInfo("    └─ Выигрыш: %.1f%% | Проходов: %d | Профиль: %s",
				outcome.ReductionRatio,
				outcome.PassesRun,
				outcome.ConfigUsed.Profile)
		} else {
			uc.logError("[%d/%d] ✗ %s", fileCounter, status.TotalFiles, fileName)
			uc.logError("    └─ Ошибка: %v", outcome.Error)
		}
	}

	// Финальная фаза
	status.Complete()
	uc.reportProgress(status)

	// Логируем итоговую статистику
	uc.logInfo("")
	uc.logInfo("╔════════════════════════════════════════════════════════════")
	uc.logInfo("║ Обработка завершена")
	uc.logInfo("╠════════════════════════════════════════════════════════════")
	uc.logInfo("║ Время выполнения: %s", status.FormatElapsedTime())
	uc.logInfo("╠════════════════════════════════════════════════════════════")
	uc.logInfo("║ Статистика файлов:")
	uc.logInfo("║   • Всего: %d", status.TotalFiles)
	uc.logSuccess("║   • Успешно: %d", status.SuccessfulFiles)

	if status.FailedFiles > 0 {
		uc.logError("║   • Ошибок: %d", status.FailedFiles)
	}

	if status.EscalatedFiles > 0 {
		uc.logInfo("║   • Второй проход: %d", status.EscalatedFiles)
	}

	if status.TotalOriginalSize > 0 {
		uc.logInfo("╠════════════════════════════════════════════════════════════")
		uc.logInfo("║ Статистика уменьшения:")
		uc.logInfo("║   • Исходный размер: %.2f MB", float64(status.TotalOriginalSize)/1024/1024)
		uc.logInfo("║   • Итоговый размер: %.2f MB", float64(status.TotalReducedSize)/1024/1024)
		uc.logSuccess("║   • Средний выигрыш: %.1f%%", status.AverageReduction)
		uc.logSuccess("║   • Сэкономлено: %.2f MB", float64(status.TotalSavedSpace)/1024/1024)
	}

	uc.logInfo("╚════════════════════════════════════════════════════════════")

	return nil
}

// worker обрабатывает файлы в отдельной горутине
func (uc *ProcessPDFsUseCase) worker(
	jobs <-chan string,
	outcomes chan<- *entities.ReductionOutcome,
	wg *sync.WaitGroup,
	config *entities.Config,
	options *entities.ReductionOptions,
) {
	defer wg.Done()

	for inputFile := range jobs {
		fileName := filepath.Base(inputFile)

		// Определяем путь выходного файла
		var outputFile string
		if config.Scanner.ReplaceOriginal {
			outputFile = inputFile + ".tmp"
		} else {
			// Получаем относительный путь от исходной директории
			relPath, err := filepath.Rel(config.Scanner.SourceDirectory, inputFile)
			if err != nil {
				// Если не удалось получить относительный путь, используем просто имя файла
				outputFile = filepath.Join(config.Scanner.TargetDirectory, fileName)
			} else {
				// Сохраняем структуру директорий
				outputFile = filepath.Join(config.Scanner.TargetDirectory, relPath)
			}
		}

		// Выполняем уменьшение: один или два прохода внешнего движка.
		// Повторных попыток нет, единственная эскалация живет внутри reducer
		outcome, err := uc.reducer.Execute(inputFile, outputFile, options)
		if err != nil {
			var originalSize int64
			if fileInfo, infoErr := uc.fileRepo.GetFileInfo(inputFile); infoErr == nil {
				originalSize = fileInfo.Size
			}
			outcomes <- &entities.ReductionOutcome{
				CurrentFile:  inputFile,
				OriginalSize: originalSize,
				Success:      false,
				Error:        err,
			}
			continue
		}

		// Если заменяем оригинал, переименовываем временный файл
		if config.Scanner.ReplaceOriginal {
			if err := uc.replaceOriginalFile(inputFile, outputFile); err != nil {
				outcome.Success = false
				outcome.Error = fmt.Errorf("ошибка замены оригинального файла: %w", err)
				// Удаляем временный файл при ошибке
				_ = os.Remove(outputFile)
				if uc.logger != nil {
					uc.logger.Error("Не удалось заменить оригинальный файл %s: %v", inputFile, err)
				}
			} else {
				outcome.OutputPath = inputFile
				if uc.logger != nil {
					uc.logger.Info("Файл %s успешно заменен уменьшенной версией", inputFile)
				}
			}
		}

		outcomes <- outcome
	}
}

// replaceOriginalFile заменяет оригинальный файл уменьшенным
func (uc *ProcessPDFsUseCase) replaceOriginalFile(originalFile, tempFile string) error {
	// Проверяем существование временного файла
	if _, err := os.Stat(tempFile); os.IsNotExist(err) {
		return fmt.Errorf("временный файл не существует: %s", tempFile)
	}

	if uc.logger != nil {
		uc.logger.Info("Замена оригинального файла: %s", originalFile)
	}

	backupFile := originalFile + ".backup"

	// Создаем резервную копию оригинала
	if err := os.Rename(originalFile, backupFile); err != nil {
		if uc.logger != nil {
			uc.logger.Error("Ошибка создания резервной копии %s: %v", originalFile, err)
		}
		return fmt.Errorf("ошибка создания резервной копии: %w", err)
	}

	// Переименовываем временный файл в оригинальный
	if err := os.Rename(tempFile, originalFile); err != nil {
		if uc.logger != nil {
			uc.logger.Error("Ошибка замены файла %s: %v", originalFile, err)
		}
		// Восстанавливаем оригинальный файл из резервной копии
		_ = os.Rename(backupFile, originalFile)
		return fmt.Errorf("ошибка замены файла: %w", err)
	}

	// Удаляем резервную копию
	if err := os.Remove(backupFile); err != nil {
		if uc.logger != nil {
			uc.logger.Warning("Не удалось удалить резервную копию %s: %v", backupFile, err)
		}
	}

	return nil
}

// Методы для логирования
func (uc *ProcessPDFsUseCase) logInfo(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Info(format, args...)
	}
}

func (uc *ProcessPDFsUseCase) logSuccess(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Success(format, args...)
	}
}

func (uc *ProcessPDFsUseCase) logWarning(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Warning(format, args...)
	}
}

func (uc *ProcessPDFsUseCase) logError(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Error(format, args...)
	}
}
