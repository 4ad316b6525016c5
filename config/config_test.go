package config

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/grovetools/navtree/errors"
	"github.com/grovetools/navtree/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loggingSection struct {
	Level        string `yaml:"level"`
	ReportCaller bool   `yaml:"report_caller"`
	Format       struct {
		Preset string `yaml:"preset"`
	} `yaml:"format"`
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "navtree.yml", `
manifest: website/sidebars.yml
content_dir: website/docs
exclude:
  - "**/drafts"
strict: true
logging:
  level: debug
  report_caller: true
  format:
    preset: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "website/sidebars.yml", cfg.Manifest)
	assert.Equal(t, "website/docs", cfg.ContentDir)
	assert.Equal(t, []string{"**/drafts"}, cfg.Exclude)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "docs", cfg.DefaultCollection)

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.Dir)
	assert.Equal(t, filepath.Join(abs, "website", "docs"), cfg.ResolvePath(cfg.ContentDir))

	var logCfg loggingSection
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "debug", logCfg.Level)
	assert.True(t, logCfg.ReportCaller)
	assert.Equal(t, "json", logCfg.Format.Preset)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "navtree.toml", `
manifest = "sidebars.toml"
default_collection = "api"

[logging]
level = "warn"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sidebars.toml", cfg.Manifest)
	assert.Equal(t, "api", cfg.DefaultCollection)
	assert.NotContains(t, cfg.Extensions, "manifest")

	var logCfg loggingSection
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "warn", logCfg.Level)
}

func TestUnmarshalExtensionMissingKey(t *testing.T) {
	cfg := Default()
	var logCfg loggingSection
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Empty(t, logCfg.Level)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "navtree.yml"))
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))

	bad := testutil.WriteFile(t, dir, "bad.yml", "manifest: [unclosed")
	_, err = Load(bad)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		valid bool
	}{
		{"defaults", *Default(), true},
		{"json manifest", Config{DefaultCollection: "docs", Manifest: "sidebars.json"}, true},
		{"js manifest", Config{DefaultCollection: "docs", Manifest: "sidebars.js"}, false},
		{"collection with space", Config{DefaultCollection: "my docs"}, false},
		{"collection starting with digit", Config{DefaultCollection: "1docs"}, false},
		{"empty exclude pattern", Config{DefaultCollection: "docs", Exclude: []string{" "}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation), "got %v", err)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := t.TempDir()
	want := testutil.WriteFile(t, root, "navtree.yml", "strict: true\n")
	nested := filepath.Join(root, "a", "b")
	testutil.WriteFile(t, nested, "keep.md", "")

	got, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	cfg, err := LoadFrom(nested)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)

	_, err = FindConfigFile(t.TempDir())
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestFindConfigFileFallsBackToXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	want := testutil.WriteFile(t, xdg, "navtree/navtree.yml", "default_collection: api\n")

	got, err := FindConfigFile(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "navtree Configuration", schema["title"])

	props, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"manifest", "content_dir", "default_collection", "exclude", "strict"} {
		assert.Contains(t, props, key)
	}
	assert.NotContains(t, props, "Dir")
	assert.NotContains(t, props, "Extensions")
}
