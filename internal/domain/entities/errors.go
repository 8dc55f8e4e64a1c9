package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Доменные ошибки
var (
	ErrSourceNotFound     = errors.New("исходный PDF файл не найден")
	ErrSourceEmpty        = errors.New("исходный PDF файл пуст")
	ErrToolNotFound       = errors.New("Ghostscript не найден. Установите Ghostscript (gs, gswin64c или gswin32c) и убедитесь, что он доступен в PATH")
	ErrInvalidProfile     = errors.New("неизвестный профиль сжатия (допустимы /screen, /ebook, /printer, /prepress)")
	ErrInvalidResolution  = errors.New("разрешение изображений должно быть положительным")
	ErrInvalidThreshold   = errors.New("порог выигрыша должен быть от 0 до 100 процентов")
	ErrInvalidJPEGQuality = errors.New("качество JPEG должно быть от 10 до 50 с шагом 5")
	ErrInvalidPNGQuality  = errors.New("качество PNG должно быть от 10 до 50 с шагом 5")
	ErrDirectoryNotFound  = errors.New("директория не найдена")
	ErrNoFilesFound       = errors.New("PDF файлы не найдены")
)

// ExternalToolError ошибка запуска внешнего движка: ненулевой код выхода
// или превышение таймаута. Содержит код выхода и захваченный вывод процесса.
type ExternalToolError struct {
	Tool     string // Путь к исполняемому файлу
	ExitCode int    // Код выхода процесса (-1 при таймауте)
	Output   string // Объединенный stdout/stderr
	TimedOut bool   // Процесс был прерван по таймауту
}

// Error возвращает описание ошибки с диагностикой
func (e *ExternalToolError) Error() string {
	diag := strings.TrimSpace(e.Output)
	if e.TimedOut {
		if diag != "" {
			return fmt.Sprintf("внешний инструмент %s прерван по таймауту: %s", e.Tool, diag)
		}
		return fmt.Sprintf("внешний инструмент %s прерван по таймауту", e.Tool)
	}
	if diag != "" {
		return fmt.Sprintf("внешний инструмент %s завершился с кодом %d: %s", e.Tool, e.ExitCode, diag)
	}
	return fmt.Sprintf("внешний инструмент %s завершился с кодом %d", e.Tool, e.ExitCode)
}
