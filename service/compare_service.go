package service

import (
	"github.com/IjaIjb/code-quality-analyzer/domain"
)

// ComparisonServiceImpl implements the ComparisonService interface
type ComparisonServiceImpl struct{}

// NewComparisonService creates a new comparison service
func NewComparisonService() *ComparisonServiceImpl {
	return &ComparisonServiceImpl{}
}

// Compare builds the per-dimension comparison of two analyzed artifacts.
// Comparing an artifact against itself yields ties on every row.
func (s *ComparisonServiceImpl) Compare(a, b *domain.AnalyzedFile) (*domain.ComparisonResult, error) {
	if a == nil || b == nil {
		return nil, domain.NewInvalidInputError("comparison requires two analyzed artifacts", nil)
	}
	if a.Result == nil || b.Result == nil {
		return nil, domain.NewInvalidInputError("comparison requires completed analysis results", nil)
	}

	dimsA := a.Result.Metrics.CoreDimensions()
	dimsB := b.Result.Metrics.CoreDimensions()

	result := &domain.ComparisonResult{
		NameA:   a.Name,
		NameB:   b.Name,
		Metrics: make([]domain.MetricComparison, 0, len(dimsA)),
	}

	sumA, sumB := 0, 0
	for i := range dimsA {
		valueA := dimsA[i].Value
		valueB := dimsB[i].Value
		sumA += valueA
		sumB += valueB

		result.Metrics = append(result.Metrics, domain.MetricComparison{
			Metric:     dimsA[i].Name,
			ValueA:     valueA,
			ValueB:     valueB,
			Difference: valueA - valueB,
			Winner:     winnerFor(valueA, valueB),
		})
	}

	// Single-number side scores: mean of the core dimensions on a 0-100 scale
	result.OverallA = sumA * 10 / len(dimsA)
	result.OverallB = sumB * 10 / len(dimsB)
	result.Overall = winnerFor(result.OverallA, result.OverallB)

	return result, nil
}

func winnerFor(a, b int) domain.Winner {
	switch {
	case a > b:
		return domain.WinnerA
	case b > a:
		return domain.WinnerB
	default:
		return domain.WinnerTie
	}
}
