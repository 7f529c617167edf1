package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/logger"
	"github.com/osse101/slotforge/internal/validation"
)

// PaytableFile is the on-disk paytable document.
type PaytableFile struct {
	Board     domain.BoardConfig      `json:"board"`
	LineCount *int                    `json:"lineCount,omitempty" validate:"omitempty,gte=0,lte=100"`
	Symbols   []RawSymbol             `json:"symbols" validate:"required,min=1,dive"`
	Paylines  []domain.PaylinePattern `json:"paylines,omitempty"`
	Outcomes  []domain.Outcome        `json:"outcomes" validate:"required,min=1"`
}

// Paytable is a fully resolved configuration.
type Paytable struct {
	Board    domain.BoardConfig
	Symbols  *SymbolCatalog
	Paylines *PaylineTable
	Outcomes *OutcomeTable
}

// Loader reads paytable documents.
type Loader interface {
	Load(path string) (*Paytable, error)
	Parse(data []byte) (*Paytable, error)
}

type paytableLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader backed by the paytable JSON schema.
func NewLoader() Loader {
	return &paytableLoader{schemaValidator: validation.NewSchemaValidator()}
}

// Load reads and resolves a paytable file.
func (l *paytableLoader) Load(path string) (*Paytable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read paytable %s: %w", path, err)
	}

	pt, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("paytable %s: %w", path, err)
	}

	logger.Info(LogMsgPaytableLoaded,
		LogFieldPath, path,
		LogFieldSymbols, pt.Symbols.Len(),
		LogFieldPaylines, pt.Paylines.Len(),
		LogFieldOutcomes, pt.Outcomes.Len())
	return pt, nil
}

// Parse validates a paytable document against the schema, then its struct
// tags, then resolves it.
func (l *paytableLoader) Parse(data []byte) (*Paytable, error) {
	if err := l.schemaValidator.ValidateBytes(data, PaytableSchemaPath); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPaytable, err)
	}

	var file PaytableFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPaytable, err)
	}
	return file.Resolve()
}

// Resolve validates the document and builds its tables.
func (f PaytableFile) Resolve() (*Paytable, error) {
	if err := validation.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPaytable, err)
	}
	if !f.Board.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", domain.ErrInvalidBoardDimensions, f.Board.Cols, f.Board.Rows)
	}

	for _, s := range f.Symbols {
		if s.ScatterConfig != nil {
			logger.Warn(LogMsgDeprecatedField, LogFieldSymbolID, s.ID, LogFieldField, "scatterConfig")
		}
		if s.FSTriggerConfig != nil {
			logger.Warn(LogMsgDeprecatedField, LogFieldSymbolID, s.ID, LogFieldField, "fsTriggerConfig")
		}
	}

	symbols, err := NewSymbolCatalog(f.Symbols)
	if err != nil {
		return nil, err
	}

	outcomes, err := NewOutcomeTable(f.Outcomes)
	if err != nil {
		return nil, err
	}

	lines, err := f.paylines()
	if err != nil {
		return nil, err
	}

	return &Paytable{
		Board:    f.Board,
		Symbols:  symbols,
		Paylines: lines,
		Outcomes: outcomes,
	}, nil
}

func (f PaytableFile) paylines() (*PaylineTable, error) {
	count := DefaultLineCount
	if f.LineCount != nil {
		count = *f.LineCount
	}

	if len(f.Paylines) == 0 {
		return DefaultPaylines(f.Board.Cols, f.Board.Rows, count)
	}

	table, err := NewPaylineTable(f.Paylines)
	if err != nil {
		return nil, err
	}
	if f.LineCount == nil {
		return table, nil
	}
	if count > table.Len() {
		logger.Debug(LogMsgPaylinesPadded, LogFieldPaylines, table.Len(), LogFieldPadded, count-table.Len())
	}
	return table.Regenerate(count, f.Board.Cols, f.Board.Rows), nil
}
