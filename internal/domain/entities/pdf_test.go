package entities_test

import (
	"errors"
	"math"
	"testing"

	"pdfreducer/internal/domain/entities"
)

func TestReductionOutcome_CalculateReductionRatio(t *testing.T) {
	tests := []struct {
		name               string
		originalSize       int64
		reducedSize        int64
		expectedRatio      float64
		expectedSavedSpace int64
	}{
		{
			name:               "Half the size",
			originalSize:       1000,
			reducedSize:        500,
			expectedRatio:      50.0,
			expectedSavedSpace: 500,
		},
		{
			name:               "Small gain",
			originalSize:       1000,
			reducedSize:        950,
			expectedRatio:      5.0,
			expectedSavedSpace: 50,
		},
		{
			name:               "No gain",
			originalSize:       1000,
			reducedSize:        1000,
			expectedRatio:      0.0,
			expectedSavedSpace: 0,
		},
		{
			name:               "Output grew",
			originalSize:       1000,
			reducedSize:        1200,
			expectedRatio:      -20.0,
			expectedSavedSpace: -200,
		},
		{
			name:               "Zero original size",
			originalSize:       0,
			reducedSize:        500,
			expectedRatio:      0.0,
			expectedSavedSpace: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := &entities.ReductionOutcome{
				OriginalSize: tt.originalSize,
				ReducedSize:  tt.reducedSize,
			}
			outcome.CalculateReductionRatio()

			if math.Abs(outcome.ReductionRatio-tt.expectedRatio) > 0.001 {
				t.Errorf("Expected ratio %.2f, got %.2f", tt.expectedRatio, outcome.ReductionRatio)
			}
			if outcome.SavedSpace != tt.expectedSavedSpace {
				t.Errorf("Expected saved space %d, got %d", tt.expectedSavedSpace, outcome.SavedSpace)
			}
		})
	}
}

func TestReductionOutcome_IsEffective(t *testing.T) {
	tests := []struct {
		name     string
		outcome  *entities.ReductionOutcome
		expected bool
	}{
		{
			name: "Effective reduction",
			outcome: &entities.ReductionOutcome{
				Success:        true,
				ReductionRatio: 25.0,
			},
			expected: true,
		},
		{
			name: "Failed reduction",
			outcome: &entities.ReductionOutcome{
				Success:        false,
				ReductionRatio: 25.0,
			},
			expected: false,
		},
		{
			name: "No gain",
			outcome: &entities.ReductionOutcome{
				Success:        true,
				ReductionRatio: 0.0,
			},
			expected: false,
		},
		{
			name: "Output grew",
			outcome: &entities.ReductionOutcome{
				Success:        true,
				ReductionRatio: -5.0,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.IsEffective(); got != tt.expected {
				t.Errorf("IsEffective() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestProcessingStatus_AddOutcome(t *testing.T) {
	status := entities.NewProcessingStatus(3)

	onePass := &entities.ReductionOutcome{
		OriginalSize: 1000,
		ReducedSize:  700,
		SavedSpace:   300,
		PassesRun:    1,
		Success:      true,
	}
	twoPasses := &entities.ReductionOutcome{
		OriginalSize: 2000,
		ReducedSize:  800,
		SavedSpace:   1200,
		PassesRun:    2,
		Success:      true,
	}
	failed := &entities.ReductionOutcome{
		OriginalSize: 500,
		Success:      false,
		Error:        errors.New("boom"),
	}

	status.AddOutcome(onePass)
	status.AddOutcome(twoPasses)
	status.AddOutcome(failed)

	if status.ProcessedFiles != 3 {
		t.Errorf("Expected 3 processed files, got %d", status.ProcessedFiles)
	}
	if status.SuccessfulFiles != 2 {
		t.Errorf("Expected 2 successful files, got %d", status.SuccessfulFiles)
	}
	if status.FailedFiles != 1 {
		t.Errorf("Expected 1 failed file, got %d", status.FailedFiles)
	}
	if status.EscalatedFiles != 1 {
		t.Errorf("Expected 1 escalated file, got %d", status.EscalatedFiles)
	}
	if status.TotalOriginalSize != 3000 {
		t.Errorf("Expected total original size 3000, got %d", status.TotalOriginalSize)
	}
	if status.TotalReducedSize != 1500 {
		t.Errorf("Expected total reduced size 1500, got %d", status.TotalReducedSize)
	}
	if math.Abs(status.AverageReduction-50.0) > 0.001 {
		t.Errorf("Expected average reduction 50%%, got %.2f", status.AverageReduction)
	}
	if math.Abs(status.Progress-100.0) > 0.001 {
		t.Errorf("Expected progress 100%%, got %.2f", status.Progress)
	}
}
