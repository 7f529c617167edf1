package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"id": {"type": "string"},
		"weight": {"type": "number", "minimum": 0},
		"kind": {"enum": ["normal", "wild", "scatter"]}
	},
	"required": ["id"]
}`

func writeSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "symbol.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(testSchema), 0o644))
	return path
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	schemaPath := writeSchema(t)
	v := NewSchemaValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid", data: `{"id": "A", "weight": 2, "kind": "normal"}`},
		{name: "only required", data: `{"id": "W"}`},
		{name: "missing id", data: `{"weight": 1}`, wantError: true, errorMsg: "required"},
		{name: "negative weight", data: `{"id": "A", "weight": -1}`, wantError: true, errorMsg: "minimum"},
		{name: "unknown kind", data: `{"id": "A", "kind": "bonus"}`, wantError: true, errorMsg: "enum"},
		{name: "malformed", data: `{"id": `, wantError: true, errorMsg: "malformed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchemaViolation)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	schemaPath := writeSchema(t)
	dataPath := filepath.Join(t.TempDir(), "symbol.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"id": "S", "kind": "scatter"}`), 0o644))

	v := NewSchemaValidator()
	assert.NoError(t, v.ValidateFile(dataPath, schemaPath))

	err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.ValidateBytes([]byte(`{}`), "/nonexistent/schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
	assert.NotErrorIs(t, err, ErrSchemaViolation)
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	schemaPath := writeSchema(t)
	v := NewSchemaValidator().(*schemaValidator)

	require.NoError(t, v.ValidateBytes([]byte(`{"id": "A"}`), schemaPath))
	require.NoError(t, os.Remove(schemaPath))

	// the compiled copy keeps working after the file is gone
	assert.NoError(t, v.ValidateBytes([]byte(`{"id": "B"}`), schemaPath))
	assert.Len(t, v.schemas, 1)
}

func TestSchemaValidator_PaytableSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.ValidateFile("configs/paytable.json", "configs/schemas/paytable.schema.json")
	assert.NoError(t, err)
}

func TestResolvePath_WalksToModuleRoot(t *testing.T) {
	path, err := ResolvePath("go.mod")
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = ResolvePath("configs/does-not-exist.json")
	assert.Error(t, err)
}

type betRequest struct {
	BaseBet float64 `validate:"gt=0"`
	Spins   int     `validate:"gte=1,lte=1000"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(betRequest{BaseBet: 1, Spins: 10}))
	assert.Error(t, Struct(betRequest{BaseBet: 0, Spins: 10}))
	assert.Error(t, Struct(betRequest{BaseBet: 1, Spins: 0}))
}
