package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSchemaIsJSON(t *testing.T) {
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(Source(), &doc))
	assert.Equal(t, "Sidebar Manifest", doc["title"])
}

func TestSchemaValidation(t *testing.T) {
	validator, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name      string
		manifest  interface{}
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid manifest",
			manifest: map[string]interface{}{
				"docs": []interface{}{
					"welcome",
					map[string]interface{}{
						"type":  "category",
						"label": "About",
						"items": []interface{}{
							"about/index",
							map[string]interface{}{"type": "link", "label": "Whitepaper", "href": "https://example.com/wp.pdf"},
						},
					},
				},
			},
		},
		{
			name: "multiple collections",
			manifest: map[string]interface{}{
				"docs": []interface{}{"a"},
				"api":  []interface{}{"b"},
			},
		},
		{
			name:      "empty manifest",
			manifest:  map[string]interface{}{},
			wantError: true,
		},
		{
			name: "collection not a list",
			manifest: map[string]interface{}{
				"docs": "welcome",
			},
			wantError: true,
			errorMsg:  "/docs",
		},
		{
			name: "category missing items",
			manifest: map[string]interface{}{
				"docs": []interface{}{
					map[string]interface{}{"type": "category", "label": "About"},
				},
			},
			wantError: true,
			errorMsg:  "/docs/0",
		},
		{
			name: "unknown type",
			manifest: map[string]interface{}{
				"docs": []interface{}{
					"a",
					map[string]interface{}{"type": "html", "label": "x"},
				},
			},
			wantError: true,
			errorMsg:  "/docs/1",
		},
		{
			name: "yaml style interface keyed maps",
			manifest: map[interface{}]interface{}{
				"docs": []interface{}{
					map[interface{}]interface{}{"type": "link", "label": "Home", "href": "https://example.com"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.manifest)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
			if tt.errorMsg != "" {
				assert.Contains(t, err.Error(), tt.errorMsg)
			}
		})
	}
}
