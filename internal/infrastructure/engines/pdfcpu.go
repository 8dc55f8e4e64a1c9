package engines

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"pdfreducer/internal/domain/entities"
)

// PDFCPUEngine встроенный движок на основе библиотеки pdfcpu.
// Не требует установленного Ghostscript, но игнорирует целевые разрешения:
// pdfcpu оптимизирует структуру документа, а не растровые изображения.
type PDFCPUEngine struct{}

// NewPDFCPUEngine создает новый pdfcpu движок
func NewPDFCPUEngine() *PDFCPUEngine {
	return &PDFCPUEngine{}
}

// Compress выполняет один проход оптимизации pdfcpu
func (p *PDFCPUEngine) Compress(inputPath, outputPath string, config *entities.CompressionConfig) (*entities.InvocationResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания директории назначения: %w", err)
	}

	if err := api.OptimizeFile(inputPath, outputPath, nil); err != nil {
		return nil, fmt.Errorf("ошибка оптимизации PDFCPU: %w", err)
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
