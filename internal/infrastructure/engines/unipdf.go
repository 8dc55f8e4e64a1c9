package engines

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/unidoc/unipdf/v3/model"
	"github.com/unidoc/unipdf/v3/model/optimize"

	"pdfreducer/internal/domain/entities"
)

// UniPDFEngine встроенный движок на основе библиотеки UniPDF.
// Требует лицензионный ключ (конфигурация или UNIDOC_LICENSE_API_KEY).
// Целевое разрешение цветных изображений отображается на ImageUpperPPI.
type UniPDFEngine struct {
	licenseKey string
}

// NewUniPDFEngine создает новый UniPDF движок
func NewUniPDFEngine(licenseKey string) *UniPDFEngine {
	return &UniPDFEngine{licenseKey: licenseKey}
}

// imageQualityForProfile отображает профиль на качество JPEG оптимизатора
func imageQualityForProfile(profile entities.Profile) int {
	switch profile {
	case entities.ProfileScreen:
		return 40
	case entities.ProfileEbook:
		return 60
	case entities.ProfilePrinter:
		return 80
	default:
		return 90
	}
}

// Compress выполняет один проход оптимизации UniPDF
func (u *UniPDFEngine) Compress(inputPath, outputPath string, config *entities.CompressionConfig) (*entities.InvocationResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	licenseKey := u.licenseKey
	if licenseKey == "" {
		licenseKey = os.Getenv("UNIDOC_LICENSE_API_KEY")
	}
	if licenseKey == "" {
		return nil, fmt.Errorf("UniPDF требует лицензионный ключ. Установите его в конфигурации или в переменной UNIDOC_LICENSE_API_KEY, либо используйте движок 'ghostscript' или 'pdfcpu'")
	}
	os.Setenv("UNIDOC_LICENSE_API_KEY", licenseKey)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания директории назначения: %w", err)
	}

	pdfReader, file, err := model.NewPdfReaderFromFile(inputPath, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	pdfWriter := model.NewPdfWriter()
	pdfWriter.SetOptimizer(optimize.New(optimize.Options{
		CombineDuplicateDirectObjects:   true,
		CombineIdenticalIndirectObjects: true,
		ImageUpperPPI:                   float64(config.ColorDPI),
		ImageQuality:                    imageQualityForProfile(config.Profile),
	}))

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return nil, fmt.Errorf("ошибка получения количества страниц: %w", err)
	}

	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			return nil, fmt.Errorf("ошибка получения страницы %d: %w", i, err)
		}
		if err := pdfWriter.AddPage(page); err != nil {
			return nil, fmt.Errorf("ошибка добавления страницы %d: %w", i, err)
		}
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания выходного файла: %w", err)
	}
	defer outputFile.Close()

	if err := pdfWriter.Write(outputFile); err != nil {
		return nil, fmt.Errorf("ошибка записи файла: %w", err)
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
