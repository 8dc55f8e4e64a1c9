package repositories

import (
	"pdfreducer/internal/domain/entities"
)

// PDFEngine интерфейс движка перезаписи PDF. Один вызов Compress — один проход:
// движок полностью перезаписывает файл назначения или возвращает ошибку.
type PDFEngine interface {
	Compress(inputPath, outputPath string, config *entities.CompressionConfig) (*entities.InvocationResult, error)
}

// FileRepository интерфейс для работы с файловой системой
type FileRepository interface {
	GetFileInfo(path string) (*entities.PDFDocument, error)
	FileExists(path string) bool
	CreateDirectory(path string) error
	ListPDFFiles(directory string) ([]string, error)
}

// ConfigRepository интерфейс для получения параметров уменьшения
type ConfigRepository interface {
	GetReductionOptions(config *entities.AppCompressionConfig) (*entities.ReductionOptions, error)
	ValidateOptions(options *entities.ReductionOptions) error
}
