package catalog

// Defaults
const (
	DefaultScatterMinCount = 3
	DefaultLineCount       = 20
	MaxLineCount           = 100
)

// Schema location, relative to the project root
const (
	PaytableSchemaPath = "configs/schemas/paytable.schema.json"
)

// Log messages
const (
	LogMsgPaytableLoaded  = "Paytable loaded"
	LogMsgPaylinesPadded  = "Payline table padded with middle-row lines"
	LogMsgDeprecatedField = "Paytable uses deprecated scatter field"
)

// Log field keys
const (
	LogFieldPath     = "path"
	LogFieldSymbols  = "symbols"
	LogFieldPaylines = "paylines"
	LogFieldOutcomes = "outcomes"
	LogFieldSymbolID = "symbol_id"
	LogFieldField    = "field"
	LogFieldPadded   = "padded"
)
