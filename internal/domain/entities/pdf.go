package entities

import (
	"time"
)

// PDFDocument представляет PDF документ
type PDFDocument struct {
	Path         string
	Size         int64
	ModifiedTime time.Time
}

// InvocationResult результат одного завершенного прохода внешнего движка.
// Сам файл назначения является побочным эффектом на файловой системе.
type InvocationResult struct {
	OutputPath string
	Size       int64
}

// ReductionOutcome итог уменьшения размера PDF файла после всех проходов
type ReductionOutcome struct {
	CurrentFile    string
	OutputPath     string
	OriginalSize   int64
	ReducedSize    int64
	ConfigUsed     *CompressionConfig // Конфигурация, давшая итоговый файл
	PassesRun      int                // Количество выполненных проходов (1 или 2)
	ReductionRatio float64            // Выигрыш в процентах
	SavedSpace     int64
	Success        bool
	Error          error
}

// CalculateReductionRatio вычисляет выигрыш и сэкономленное место
func (r *ReductionOutcome) CalculateReductionRatio() {
	if r.OriginalSize > 0 {
		r.ReductionRatio = ((float64(r.OriginalSize) - float64(r.ReducedSize)) / float64(r.OriginalSize)) * 100
		r.SavedSpace = r.OriginalSize - r.ReducedSize
	}
}

// IsEffective проверяет, было ли уменьшение эффективным
func (r *ReductionOutcome) IsEffective() bool {
	return r.Success && r.ReductionRatio > 0
}
