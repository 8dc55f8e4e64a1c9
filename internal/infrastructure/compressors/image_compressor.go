package compressors

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// ImageCompressor интерфейс для сжатия отдельных изображений
type ImageCompressor interface {
	CompressJPEG(inputPath, outputPath string, quality int) error
	CompressPNG(inputPath, outputPath string, quality int) error
}

// DefaultImageCompressor реализация компрессора изображений
type DefaultImageCompressor struct{}

// NewImageCompressor создает новый компрессор изображений
func NewImageCompressor() ImageCompressor {
	return &DefaultImageCompressor{}
}

// CompressJPEG сжимает JPEG файл с указанным качеством (10-50)
func (c *DefaultImageCompressor) CompressJPEG(inputPath, outputPath string, quality int) error {
	inputFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("не удалось открыть файл %s: %w", inputPath, err)
	}
	defer inputFile.Close()

	img, err := jpeg.Decode(inputFile)
	if err != nil {
		return fmt.Errorf("не удалось декодировать JPEG файл %s: %w", inputPath, err)
	}

	// quality 10 -> масштаб 0.5, quality 50 -> 0.9
	scaleFactor := 0.5 + float64(quality-10)/40.0*0.4
	finalImg := downscale(img, scaleFactor, 0)

	// Маппинг качества конфигурации на качество кодека: 10 -> 20, 50 -> 75
	jpegQuality := 20 + int(float64(quality-10)/40.0*55.0)
	if jpegQuality < 20 {
		jpegQuality = 20
	}
	if jpegQuality > 75 {
		jpegQuality = 75
	}

	encode := func(w io.Writer) error {
		return jpeg.Encode(w, finalImg, &jpeg.Options{Quality: jpegQuality})
	}
	return writeIfSmaller(inputFile, outputPath, encode)
}

// CompressPNG сжимает PNG файл с указанным качеством (10-50)
func (c *DefaultImageCompressor) CompressPNG(inputPath, outputPath string, quality int) error {
	inputFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("не удалось открыть файл %s: %w", inputPath, err)
	}
	defer inputFile.Close()

	img, err := png.Decode(inputFile)
	if err != nil {
		return fmt.Errorf("не удалось декодировать PNG файл %s: %w", inputPath, err)
	}

	// Для PNG масштабирование консервативнее: quality 10 -> 0.6, 50 -> 0.9.
	// Маленькие изображения не трогаем
	scaleFactor := 0.6 + float64(quality-10)/40.0*0.3
	finalImg := downscale(img, scaleFactor, 400)

	encoder := &png.Encoder{CompressionLevel: png.BestCompression}
	encode := func(w io.Writer) error {
		return encoder.Encode(w, finalImg)
	}
	return writeIfSmaller(inputFile, outputPath, encode)
}

// downscale уменьшает изображение с фильтром Lanczos. Изображения, чьи
// стороны меньше minSide, возвращаются как есть.
func downscale(img image.Image, scaleFactor float64, minSide int) image.Image {
	if scaleFactor > 1.0 {
		scaleFactor = 1.0
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if minSide > 0 && width < minSide && height < minSide {
		return img
	}

	newWidth := uint(float64(width) * scaleFactor)
	newHeight := uint(float64(height) * scaleFactor)
	if newWidth >= uint(width) || newHeight >= uint(height) {
		return img
	}

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}

// writeIfSmaller кодирует изображение во временный файл и оставляет результат
// только если он действительно меньше оригинала (с запасом 5%); иначе в
// выходной файл копируется оригинал
func writeIfSmaller(inputFile *os.File, outputPath string, encode func(io.Writer) error) error {
	inputInfo, err := inputFile.Stat()
	if err != nil {
		return fmt.Errorf("не удалось получить информацию о файле %s: %w", inputFile.Name(), err)
	}
	originalSize := inputInfo.Size()

	tmpPath := outputPath + ".tmp"
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("не удалось создать временный файл: %w", err)
	}

	err = encode(tmpFile)
	tmpFile.Close()
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("не удалось закодировать изображение: %w", err)
	}

	tmpInfo, err := os.Stat(tmpPath)
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("не удалось получить информацию о временном файле: %w", err)
	}

	if tmpInfo.Size() >= originalSize*95/100 {
		os.Remove(tmpPath)
		// При замене оригинала исходный файл уже на месте
		if outputPath == inputFile.Name() {
			return nil
		}
		if _, err := inputFile.Seek(0, 0); err != nil {
			return fmt.Errorf("не удалось перемотать исходный файл: %w", err)
		}
		outputFile, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("не удалось создать выходной файл: %w", err)
		}
		defer outputFile.Close()

		if _, err := io.Copy(outputFile, inputFile); err != nil {
			return fmt.Errorf("не удалось скопировать файл: %w", err)
		}
		return nil
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("не удалось переименовать временный файл: %w", err)
	}

	return nil
}

// IsImageFile проверяет, является ли файл изображением поддерживаемого формата
func IsImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png"
}

// GetImageFormat возвращает формат изображения по расширению файла
func GetImageFormat(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".png":
		return "png"
	default:
		return ""
	}
}
