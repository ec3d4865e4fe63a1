package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "theme": {"type": "string", "enum": ["kanagawa", "gruvbox"]},
    "source": {
      "type": "object",
      "properties": {"args": {"type": "array", "items": {"type": "string"}}}
    }
  }
}`

func TestValidator(t *testing.T) {
	v, err := NewValidator("test.json", []byte(testSchema))
	require.NoError(t, err)

	tests := []struct {
		name    string
		doc     interface{}
		wantErr string
	}{
		{
			name: "valid document",
			doc:  map[string]interface{}{"theme": "gruvbox"},
		},
		{
			name:    "enum violation",
			doc:     map[string]interface{}{"theme": "solarized"},
			wantErr: "/theme",
		},
		{
			name: "nested type violation",
			doc: map[string]interface{}{
				"source": map[string]interface{}{"args": []interface{}{"list-units", 3}},
			},
			wantErr: "/source/args/1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.doc)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewValidatorRejectsBrokenSchema(t *testing.T) {
	_, err := NewValidator("broken.json", []byte(`{"type": 12}`))
	assert.Error(t, err)
}
