package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("test-component")
	require.NotNil(t, logger)
	assert.Equal(t, "test-component", logger.Data["component"])

	// cached per component
	assert.Same(t, logger, NewLogger("test-component"))
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		config  FormatConfig
		entry   *logrus.Entry
		want    []string
		notWant []string
	}{
		{
			name:   "default format",
			config: FormatConfig{},
			entry: &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: "loaded manifest",
				Data: logrus.Fields{
					"component":  "manifest",
					"collection": "docs",
				},
			},
			want: []string{"[INFO]", "manifest", "loaded manifest", "collection=docs"},
		},
		{
			name: "simple format",
			config: FormatConfig{
				DisableTimestamp: true,
				DisableComponent: true,
			},
			entry: &logrus.Entry{
				Level:   logrus.WarnLevel,
				Message: "empty category",
				Data: logrus.Fields{
					"component": "nav",
				},
			},
			want:    []string{"[WARN] empty category"},
			notWant: []string{"[nav]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &TextFormatter{Config: tt.config}
			out, err := f.Format(tt.entry)
			require.NoError(t, err)

			s := string(out)
			for _, w := range tt.want {
				assert.Contains(t, s, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, s, nw)
			}
			assert.True(t, strings.HasSuffix(s, "\n"))
		})
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true, DisableComponent: true}}
	out, err := f.Format(&logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "m",
		Data:    logrus.Fields{"z": 1, "a": 2, "m": 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "[INFO] m a=2 m=3 z=1\n", string(out))
}

func TestNewLoggerWithConfig(t *testing.T) {
	t.Setenv("NAVTREE_LOG_LEVEL", "")

	var buf bytes.Buffer
	logger := NewLoggerWithConfig("cli", Config{
		Level:  "debug",
		Format: FormatConfig{Preset: "json"},
	}, &buf)

	logger.WithField("collection", "docs").Debug("loaded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, "cli", entry["component"])
	assert.Equal(t, "docs", entry["collection"])
}

func TestNewLoggerWithConfigEnvLevel(t *testing.T) {
	t.Setenv("NAVTREE_LOG_LEVEL", "error")

	var buf bytes.Buffer
	logger := NewLoggerWithConfig("cli", Config{Level: "debug"}, &buf)
	assert.Equal(t, logrus.ErrorLevel, logger.Logger.GetLevel())

	logger.Warn("hidden")
	assert.Empty(t, buf.String())
}

func TestNewLoggerWithConfigNeverStderr(t *testing.T) {
	t.Setenv("NAVTREE_LOG_LEVEL", "")

	var buf bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "logs", "navtree.log")
	logger := NewLoggerWithConfig("cli", Config{
		File:   FileSinkConfig{Enabled: true, Path: logFile},
		Format: FormatConfig{StructuredToStderr: "never"},
	}, &buf)

	logger.Info("to file only")
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file only")
}

func TestPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyLogger().WithWriter(&buf)

	p.Success("sidebar is valid")
	p.Warn("empty category")
	p.Error("load failed", assert.AnError)
	p.Field("docs", 12)
	p.Path("manifest", "sidebars.yml")

	out := buf.String()
	for _, want := range []string{"✓", "sidebar is valid", "⚠", "empty category", "✗", "load failed", assert.AnError.Error(), "docs", "12", "sidebars.yml"} {
		assert.Contains(t, out, want)
	}
}
