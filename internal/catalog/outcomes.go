package catalog

import (
	"fmt"

	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/rng"
)

// OutcomeTable is an immutable ordered set of weighted multiplier buckets.
type OutcomeTable struct {
	outcomes []domain.Outcome
	total    float64
}

// NewOutcomeTable validates and copies outcomes.
func NewOutcomeTable(outcomes []domain.Outcome) (*OutcomeTable, error) {
	t := &OutcomeTable{outcomes: make([]domain.Outcome, len(outcomes))}
	copy(t.outcomes, outcomes)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	for _, o := range t.outcomes {
		t.total += o.Weight
	}
	return t, nil
}

// Validate rejects empty tables, bad ranges, negative weights, duplicate ids
// and tables whose weights are all zero.
func (t *OutcomeTable) Validate() error {
	if len(t.outcomes) == 0 {
		return domain.ErrNoOutcomesAvailable
	}
	seen := make(map[string]struct{}, len(t.outcomes))
	total := 0.0
	for _, o := range t.outcomes {
		if o.ID == "" {
			return fmt.Errorf("%w: outcome %q has no id", domain.ErrInvalidPaytable, o.Name)
		}
		if _, dup := seen[o.ID]; dup {
			return fmt.Errorf("%w: duplicate outcome id %q", domain.ErrInvalidPaytable, o.ID)
		}
		seen[o.ID] = struct{}{}
		if !o.Range.Valid() {
			return fmt.Errorf("%w: outcome %q [%g, %g]", domain.ErrInvalidMultiplierRange, o.ID, o.Range.Min, o.Range.Max)
		}
		if o.Weight < 0 {
			return fmt.Errorf("%w: outcome %q has negative weight", domain.ErrInvalidPaytable, o.ID)
		}
		total += o.Weight
	}
	if total <= 0 {
		return fmt.Errorf("%w: total weight is zero", domain.ErrNoOutcomesAvailable)
	}
	return nil
}

// DrawWeighted picks an outcome with probability weight/total and returns it
// with its table index. Zero-weight outcomes are never selected.
func (t *OutcomeTable) DrawWeighted(src rng.Source) (domain.Outcome, int, error) {
	if len(t.outcomes) == 0 || t.total <= 0 {
		return domain.Outcome{}, -1, domain.ErrNoOutcomesAvailable
	}

	r := src.Float64() * t.total
	last := -1
	for i, o := range t.outcomes {
		if o.Weight <= 0 {
			continue
		}
		last = i
		r -= o.Weight
		if r <= 0 {
			return o, i, nil
		}
	}
	// rounding left a sliver of r; the last drawable entry takes it
	return t.outcomes[last], last, nil
}

func (t *OutcomeTable) Len() int { return len(t.outcomes) }

// At returns the outcome at index i.
func (t *OutcomeTable) At(i int) domain.Outcome { return t.outcomes[i] }

// Outcomes returns a copy of the table in order.
func (t *OutcomeTable) Outcomes() []domain.Outcome {
	out := make([]domain.Outcome, len(t.outcomes))
	copy(out, t.outcomes)
	return out
}

func (t *OutcomeTable) TotalWeight() float64 { return t.total }

// Probability is outcome i's draw probability.
func (t *OutcomeTable) Probability(i int) float64 {
	if t.total <= 0 {
		return 0
	}
	return t.outcomes[i].Weight / t.total
}

// Index returns the table index of id, or -1.
func (t *OutcomeTable) Index(id string) int {
	for i, o := range t.outcomes {
		if o.ID == id {
			return i
		}
	}
	return -1
}
