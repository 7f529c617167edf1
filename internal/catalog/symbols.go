package catalog

import (
	"fmt"
	"strconv"

	"github.com/osse101/slotforge/internal/domain"
)

// RawScatterConfig is the designer form of a scatter payout table. Keys are
// counts as strings, matching the JSON object the editors produce.
type RawScatterConfig struct {
	MinCount      int                `json:"minCount,omitempty" validate:"omitempty,gte=1"`
	PayoutByCount map[string]float64 `json:"payoutByCount,omitempty"`
}

// RawTriggerConfig is the retired free-spin trigger block. Only MinCount is read.
type RawTriggerConfig struct {
	MinCount int `json:"minCount,omitempty" validate:"omitempty,gte=1"`
}

// RawSymbol is a symbol as stored in a paytable file.
type RawSymbol struct {
	ID               string             `json:"id" validate:"required"`
	Type             domain.SymbolKind  `json:"type" validate:"required,oneof=normal wild scatter"`
	Payouts          domain.PayoutTiers `json:"payouts"`
	AppearanceWeight float64            `json:"appearanceWeight" validate:"gt=0"`
	WildConfig       *domain.WildRule   `json:"wildConfig,omitempty"`

	ScatterPayoutConfig *RawScatterConfig `json:"scatterPayoutConfig,omitempty"`

	// Deprecated: superseded by ScatterPayoutConfig.
	ScatterConfig *RawScatterConfig `json:"scatterConfig,omitempty"`
	// Deprecated: MinCount moved into ScatterPayoutConfig.
	FSTriggerConfig *RawTriggerConfig `json:"fsTriggerConfig,omitempty"`
}

// Resolve turns a raw symbol into its tagged form.
func (r RawSymbol) Resolve() (domain.Symbol, error) {
	sym := domain.Symbol{
		ID:               r.ID,
		Kind:             r.Type,
		Payouts:          r.Payouts,
		AppearanceWeight: r.AppearanceWeight,
	}

	switch r.Type {
	case domain.SymbolKindNormal:
	case domain.SymbolKindWild:
		rule := domain.WildRule{CanReplaceNormal: true}
		if r.WildConfig != nil {
			rule = *r.WildConfig
		}
		sym.Wild = &rule
	case domain.SymbolKindScatter:
		rule, err := resolveScatter(r)
		if err != nil {
			return domain.Symbol{}, err
		}
		sym.Scatter = rule
	default:
		return domain.Symbol{}, fmt.Errorf("%w: symbol %q has unknown type %q", domain.ErrInvalidPaytable, r.ID, r.Type)
	}
	return sym, nil
}

func resolveScatter(r RawSymbol) (*domain.ScatterRule, error) {
	src := r.ScatterPayoutConfig
	if src == nil {
		src = r.ScatterConfig
	}
	if src == nil {
		return nil, nil
	}

	rule := &domain.ScatterRule{
		MinCount:      src.MinCount,
		PayoutByCount: make(map[int]float64, len(src.PayoutByCount)),
	}
	if rule.MinCount == 0 && r.FSTriggerConfig != nil {
		rule.MinCount = r.FSTriggerConfig.MinCount
	}
	if rule.MinCount == 0 {
		rule.MinCount = DefaultScatterMinCount
	}

	for key, mult := range src.PayoutByCount {
		count, err := strconv.Atoi(key)
		if err != nil || count < 1 {
			return nil, fmt.Errorf("%w: symbol %q has invalid scatter count %q", domain.ErrInvalidPaytable, r.ID, key)
		}
		if mult < 0 {
			return nil, fmt.Errorf("%w: symbol %q has negative scatter payout for %d", domain.ErrInvalidPaytable, r.ID, count)
		}
		rule.PayoutByCount[count] = mult
	}
	return rule, nil
}

// SymbolCatalog is an immutable, ordered set of resolved symbols.
type SymbolCatalog struct {
	symbols []domain.Symbol
	byID    map[string]int
	scatter int
}

// NewSymbolCatalog resolves raw symbols in order.
func NewSymbolCatalog(raw []RawSymbol) (*SymbolCatalog, error) {
	symbols := make([]domain.Symbol, 0, len(raw))
	for _, r := range raw {
		sym, err := r.Resolve()
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, sym)
	}
	return FromSymbols(symbols)
}

// FromSymbols builds a catalog from already resolved symbols. The slice is copied.
func FromSymbols(symbols []domain.Symbol) (*SymbolCatalog, error) {
	if len(symbols) == 0 {
		return nil, domain.ErrEmptySymbolCatalog
	}

	c := &SymbolCatalog{
		symbols: make([]domain.Symbol, len(symbols)),
		byID:    make(map[string]int, len(symbols)),
		scatter: -1,
	}
	copy(c.symbols, symbols)

	for i, s := range c.symbols {
		if s.ID == "" {
			return nil, fmt.Errorf("%w: symbol at index %d has no id", domain.ErrInvalidPaytable, i)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol id %q", domain.ErrInvalidPaytable, s.ID)
		}
		if s.AppearanceWeight <= 0 {
			return nil, fmt.Errorf("%w: symbol %q appearance weight must be positive", domain.ErrInvalidPaytable, s.ID)
		}
		if s.IsWild() && s.Wild == nil {
			return nil, fmt.Errorf("%w: wild symbol %q has no wild rule", domain.ErrInvalidPaytable, s.ID)
		}
		c.byID[s.ID] = i
		// first scatter with a payout table drives scatter scoring
		if c.scatter < 0 && s.IsScatter() && s.Scatter != nil {
			c.scatter = i
		}
	}
	return c, nil
}

func (c *SymbolCatalog) Len() int { return len(c.symbols) }

// At returns the symbol at catalog index i.
func (c *SymbolCatalog) At(i int) domain.Symbol { return c.symbols[i] }

// Symbols returns a copy of the catalog in order.
func (c *SymbolCatalog) Symbols() []domain.Symbol {
	out := make([]domain.Symbol, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// Lookup finds a symbol by id.
func (c *SymbolCatalog) Lookup(id string) (domain.Symbol, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Symbol{}, false
	}
	return c.symbols[i], true
}

// Scatter returns the symbol that drives scatter scoring, if any.
func (c *SymbolCatalog) Scatter() (domain.Symbol, bool) {
	if c.scatter < 0 {
		return domain.Symbol{}, false
	}
	return c.symbols[c.scatter], true
}

// TotalWeight sums appearance weights.
func (c *SymbolCatalog) TotalWeight() float64 {
	total := 0.0
	for _, s := range c.symbols {
		total += s.AppearanceWeight
	}
	return total
}
