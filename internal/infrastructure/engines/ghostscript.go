package engines

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"pdfreducer/internal/domain/entities"
)

// Имена исполняемого файла Ghostscript в порядке проверки
// (unix, затем 64- и 32-битные Windows сборки)
var ghostscriptCandidates = []string{"gs", "gswin64c", "gswin32c"}

// GhostscriptEngine движок уменьшения размера на основе внешнего Ghostscript.
// Каждый вызов Compress — один синхронный запуск процесса gs.
type GhostscriptEngine struct {
	timeout time.Duration // 0 — без ограничения
}

// NewGhostscriptEngine создает новый Ghostscript движок.
// timeout ограничивает длительность одного запуска; 0 отключает ограничение.
func NewGhostscriptEngine(timeout time.Duration) *GhostscriptEngine {
	return &GhostscriptEngine{timeout: timeout}
}

// LookupExecutable ищет исполняемый файл Ghostscript в PATH
func (g *GhostscriptEngine) LookupExecutable() (string, error) {
	for _, candidate := range ghostscriptCandidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", entities.ErrToolNotFound
}

// buildArgs собирает фиксированный список аргументов pdfwrite:
// совместимость 1.4, профиль, дедупликация изображений, сжатие и
// подмножество шрифтов, поканальный даунсэмплинг, пакетный тихий режим
func buildArgs(inputPath, outputPath string, config *entities.CompressionConfig) []string {
	return []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		fmt.Sprintf("-dPDFSETTINGS=%s", config.Profile),
		"-dDetectDuplicateImages=true",
		"-dCompressFonts=true",
		"-dSubsetFonts=true",
		"-dColorImageDownsampleType=/Bicubic",
		fmt.Sprintf("-dColorImageResolution=%d", config.ColorDPI),
		"-dGrayImageDownsampleType=/Bicubic",
		fmt.Sprintf("-dGrayImageResolution=%d", config.GrayDPI),
		"-dMonoImageDownsampleType=/Subsample",
		fmt.Sprintf("-dMonoImageResolution=%d", config.MonoDPI),
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		fmt.Sprintf("-sOutputFile=%s", outputPath),
		inputPath,
	}
}

// Compress выполняет один проход Ghostscript над inputPath, перезаписывая
// outputPath. При ненулевом коде выхода или таймауте возвращает
// *entities.ExternalToolError с захваченным выводом процесса. Повторных
// попыток на этом уровне нет: политика эскалации живет в use case.
// При ошибке файл назначения может быть записан частично.
func (g *GhostscriptEngine) Compress(inputPath, outputPath string, config *entities.CompressionConfig) (*entities.InvocationResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Исполняемый файл ищем до запуска: отсутствие gs — отдельная,
	// диагностируемая ошибка, процесс не порождается
	exe, err := g.LookupExecutable()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания директории назначения: %w", err)
	}

	ctx := context.Background()
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, exe, buildArgs(inputPath, outputPath, config)...)
	output, err := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, &entities.ExternalToolError{
			Tool:     exe,
			ExitCode: -1,
			Output:   string(output),
			TimedOut: true,
		}
	}

	if err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return nil, &entities.ExternalToolError{
			Tool:     exe,
			ExitCode: exitCode,
			Output:   string(output),
		}
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле назначения: %w", err)
	}

	return &entities.InvocationResult{
		OutputPath: outputPath,
		Size:       info.Size(),
	}, nil
}
