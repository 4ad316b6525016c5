package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/navtree/errors"
	"github.com/grovetools/navtree/logging"
	"github.com/grovetools/navtree/testutil"
)

func TestInitConfig(t *testing.T) {
	t.Run("defaults without config file", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
		testutil.Chdir(t, dir)

		cfg, err := InitConfig("")
		require.NoError(t, err)
		assert.Equal(t, "docs", cfg.DefaultCollection)
		assert.NotEmpty(t, cfg.Dir)
	})

	t.Run("explicit config file", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "navtree.yml", "manifest: nav/sidebars.yml\ndefault_collection: guides\n")

		cfg, err := InitConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "guides", cfg.DefaultCollection)
		assert.Equal(t, filepath.Join(cfg.Dir, "nav", "sidebars.yml"), cfg.ResolvePath(cfg.Manifest))
	})

	t.Run("explicit missing config file fails", func(t *testing.T) {
		_, err := InitConfig(filepath.Join(t.TempDir(), "missing.yml"))
		assert.Error(t, err)
	})
}

func TestResolveManifest(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	sidebars := testutil.WriteFile(t, dir, "sidebars.yml", testutil.SampleManifestYAML)
	sub := filepath.Join(dir, "docs", "guides")
	testutil.WriteFile(t, sub, "intro.md", "# Intro\n")
	testutil.Chdir(t, sub)

	t.Run("argument wins", func(t *testing.T) {
		got, err := ResolveManifest(nil, "other.yml")
		require.NoError(t, err)
		assert.Equal(t, "other.yml", got)
	})

	t.Run("configured manifest", func(t *testing.T) {
		cfg, err := InitConfig(testutil.WriteFile(t, dir, "navtree.yml", "manifest: custom.yml\n"))
		require.NoError(t, err)
		got, err := ResolveManifest(cfg, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cfg.Dir, "custom.yml"), got)
	})

	t.Run("search upwards", func(t *testing.T) {
		got, err := ResolveManifest(nil, "")
		require.NoError(t, err)
		resolved, err := filepath.EvalSymlinks(got)
		require.NoError(t, err)
		expected, err := filepath.EvalSymlinks(sidebars)
		require.NoError(t, err)
		assert.Equal(t, expected, resolved)
	})

	t.Run("not found", func(t *testing.T) {
		empty := t.TempDir()
		testutil.Chdir(t, empty)
		_, err := ResolveManifest(nil, "")
		assert.True(t, errors.Is(err, errors.ErrCodeManifestNotFound))
	})
}

func TestStandardCommandHelp(t *testing.T) {
	root := NewStandardCommand("navtree", "Load and check documentation sidebars")
	root.Example = "  # Validate the nearest manifest\n  navtree validate"
	validate := &cobra.Command{
		Use:   "validate [manifest]",
		Short: "Validate a sidebar manifest",
		RunE:  func(cmd *cobra.Command, args []string) error { return nil },
	}
	validate.Flags().Bool("strict", false, "Validate against the JSON schema first")
	root.AddCommand(validate)

	var buf bytes.Buffer
	writeHelp(&buf, root, 70)
	out := buf.String()
	assert.Contains(t, out, "NAVTREE")
	assert.Contains(t, out, "COMMANDS")
	assert.Contains(t, out, "validate")
	assert.Contains(t, out, "Validate a sidebar manifest")
	assert.Contains(t, out, "-v, --verbose")
	assert.Contains(t, out, "navtree validate")

	buf.Reset()
	writeHelp(&buf, validate, 70)
	assert.Contains(t, buf.String(), "--strict")
}

func TestGetOptions(t *testing.T) {
	cmd := NewStandardCommand("navtree", "test")
	require.NoError(t, cmd.ParseFlags([]string{"-v", "--json", "-c", "navtree.yml"}))

	opts := GetOptions(cmd)
	assert.Equal(t, CommandOptions{ConfigFile: "navtree.yml", Verbose: true, JSONOutput: true}, opts)
}

func TestGetLogger(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("NAVTREE_LOG_LEVEL", "")
	testutil.Chdir(t, dir)

	t.Run("verbose logs debug to the command stderr", func(t *testing.T) {
		cmd := NewStandardCommand("navtree", "test")
		var stderr bytes.Buffer
		cmd.SetErr(&stderr)
		require.NoError(t, cmd.ParseFlags([]string{"-v"}))

		logger := GetLogger(cmd)
		assert.Equal(t, logrus.DebugLevel, logger.Logger.GetLevel())
		logger.Debug("loading sidebar manifest")
		assert.Contains(t, stderr.String(), "loading sidebar manifest")

		shared := logging.NewLogger("navtree")
		assert.NotSame(t, shared.Logger, logger.Logger)
		assert.Equal(t, logrus.InfoLevel, shared.Logger.GetLevel())
	})

	t.Run("json uses the json formatter", func(t *testing.T) {
		cmd := NewStandardCommand("navtree", "test")
		var stderr bytes.Buffer
		cmd.SetErr(&stderr)
		require.NoError(t, cmd.ParseFlags([]string{"-v", "--json"}))

		GetLogger(cmd).Debug("hello")
		assert.Contains(t, stderr.String(), `"msg":"hello"`)
	})

	t.Run("default is the shared logger", func(t *testing.T) {
		cmd := NewStandardCommand("navtree", "test")
		assert.Same(t, logging.NewLogger("navtree"), GetLogger(cmd))
	})
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four five", 9)
	assert.Equal(t, "one two\nthree\nfour five", got)
}
