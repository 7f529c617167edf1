package rtp

import (
	"context"
	"math"

	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/logger"
)

// comparisonEpsilon absorbs float noise at the tolerance boundary.
const comparisonEpsilon = 1e-9

// Comparison is the theoretical-vs-actual consistency check. A difference
// beyond tolerance points at a modeling defect, not at sampling noise.
type Comparison struct {
	Theoretical     float64  `json:"theoretical"`
	Actual          float64  `json:"actual"`
	Difference      float64  `json:"difference"`
	Tolerance       float64  `json:"tolerance"`
	WithinTolerance bool     `json:"withinTolerance"`
	MissingBuckets  []string `json:"missingBuckets,omitempty"`
}

// Compare checks total RTPs against a tolerance in percentage points. A
// non-positive tolerance uses DefaultTolerance.
func Compare(ctx context.Context, theoretical, actual domain.RTPBreakdown, tolerance float64) Comparison {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	diff := actual.TotalRTP - theoretical.TotalRTP
	c := Comparison{
		Theoretical:     theoretical.TotalRTP,
		Actual:          actual.TotalRTP,
		Difference:      diff,
		Tolerance:       tolerance,
		WithinTolerance: math.Abs(diff) <= tolerance+comparisonEpsilon,
	}
	for _, b := range actual.Buckets {
		if b.Missing {
			c.MissingBuckets = append(c.MissingBuckets, b.OutcomeID)
		}
	}

	if !c.WithinTolerance {
		logger.FromContext(ctx).Warn(LogMsgRTPDivergence,
			LogFieldTheoretical, c.Theoretical,
			LogFieldActual, c.Actual,
			LogFieldDifference, c.Difference,
			LogFieldTolerance, c.Tolerance)
	}
	return c
}
