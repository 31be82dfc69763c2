// Package progress derives hour-completion figures from student accumulators.
package progress

import (
	"math"

	"github.com/noah-isme/drivingschool-api/internal/models"
	appErrors "github.com/noah-isme/drivingschool-api/pkg/errors"
)

const (
	completeThreshold  = 100
	attentionThreshold = 50
)

// Percentage returns round(current*100/total). Results above 100 are kept as-is.
func Percentage(current, total int) (int, error) {
	if total <= 0 {
		return 0, appErrors.InvalidArgument("progress total must be positive, got %d", total)
	}
	return int(math.Round(float64(current) * 100 / float64(total))), nil
}

// Breakdown is a student's progress across both class types.
type Breakdown struct {
	Overall        int  `json:"overall"`
	Theoretical    int  `json:"theoretical"`
	Practical      int  `json:"practical"`
	Complete       bool `json:"complete"`
	NeedsAttention bool `json:"needs_attention"`
}

// ForStudent computes the progress breakdown of a student. A student whose
// required totals are not positive yields an INVALID_ARGUMENT error.
func ForStudent(s models.Student) (Breakdown, error) {
	overall, err := Percentage(s.CompletedHours(), s.RequiredHours())
	if err != nil {
		return Breakdown{}, err
	}
	theoretical, err := Percentage(s.TheoreticalHours, s.TotalTheoreticalRequired)
	if err != nil {
		return Breakdown{}, err
	}
	practical, err := Percentage(s.PracticalHours, s.TotalPracticalRequired)
	if err != nil {
		return Breakdown{}, err
	}
	return Breakdown{
		Overall:        overall,
		Theoretical:    theoretical,
		Practical:      practical,
		Complete:       overall >= completeThreshold,
		NeedsAttention: overall < attentionThreshold,
	}, nil
}

// Band classifies an overall percentage for the hours overview.
type Band string

const (
	BandCompleted      Band = "completed"
	BandInProgress     Band = "in_progress"
	BandNeedsAttention Band = "needs_attention"
)

// BandOf returns the overview band for a breakdown.
func BandOf(b Breakdown) Band {
	switch {
	case b.Complete:
		return BandCompleted
	case b.NeedsAttention:
		return BandNeedsAttention
	default:
		return BandInProgress
	}
}
