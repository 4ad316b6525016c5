package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/grovetools/navtree/errors"
	"github.com/grovetools/navtree/nav"
	"github.com/grovetools/navtree/schema"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FileNames are the manifest names FindManifest looks for, in order.
var FileNames = []string{
	"sidebars.yml",
	"sidebars.yaml",
	"sidebars.toml",
	"sidebars.json",
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Loader reads manifests. The zero value is not usable; use NewLoader.
type Loader struct {
	logger    *logrus.Entry
	validator *schema.Validator
	expandEnv bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *logrus.Entry) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithSchema runs the JSON Schema validator over the decoded manifest
// before the tree loader. Schema errors report every violation at once.
func WithSchema(v *schema.Validator) Option {
	return func(l *Loader) {
		l.validator = v
	}
}

// WithoutEnvExpansion disables ${VAR} substitution in category and link
// fields.
func WithoutEnvExpansion() Option {
	return func(l *Loader) {
		l.expandEnv = false
	}
}

// NewLoader creates a manifest loader.
func NewLoader(opts ...Option) *Loader {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	l := &Loader{
		logger:    logrus.NewEntry(discard),
		expandEnv: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FormatForPath infers the manifest format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("unsupported manifest extension: %s", filepath.Ext(path))).
			WithDetail("path", path)
	}
}

// LoadFile reads and loads the manifest at path.
func (l *Loader) LoadFile(path string) (*Manifest, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ManifestNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "failed to read manifest").
			WithDetail("path", path)
	}

	l.logger.WithField("path", path).Debug("Loading sidebar manifest")

	m, err := l.load(data, format, path)
	if err != nil {
		return nil, err
	}
	m.Path = path
	return m, nil
}

// LoadBytes loads a manifest from memory.
func (l *Loader) LoadBytes(data []byte, format Format) (*Manifest, error) {
	return l.load(data, format, "")
}

func (l *Loader) load(data []byte, format Format, path string) (*Manifest, error) {
	raw, err := decode(data, format)
	if err != nil {
		return nil, errors.ManifestInvalid(path, err).WithDetail("format", string(format))
	}
	if l.expandEnv {
		for name, value := range raw {
			raw[name] = expandFields(value)
		}
	}
	if len(raw) == 0 {
		return nil, errors.New(errors.ErrCodeManifestInvalid, "manifest defines no collections").
			WithDetail("path", path)
	}

	if l.validator != nil {
		if err := l.validator.Validate(raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeSchemaValidation, "manifest does not match schema").
				WithDetail("path", path)
		}
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	m := &Manifest{Collections: make([]*nav.Tree, 0, len(names))}
	for _, name := range names {
		tree, err := nav.Load(name, raw[name])
		if err != nil {
			navErr := errors.Wrap(err, errors.ErrCodeNavValidation, "invalid sidebar").
				WithDetail("collection", name)
			var ve *nav.ValidationError
			if errors.As(err, &ve) {
				navErr = navErr.WithDetail("node", ve.Path).WithDetail("reason", ve.Reason)
			}
			if path != "" {
				navErr = navErr.WithDetail("path", path)
			}
			return nil, navErr
		}

		counts := tree.Count()
		l.logger.WithFields(logrus.Fields{
			"collection": name,
			"docs":       counts[nav.KindDoc],
			"categories": counts[nav.KindCategory],
			"links":      counts[nav.KindLink],
		}).Debug("Loaded sidebar collection")

		m.Collections = append(m.Collections, tree)
	}
	return m, nil
}

func decode(data []byte, format Format) (map[string]any, error) {
	var raw map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		if _, err := dec.Token(); err != io.EOF {
			return nil, fmt.Errorf("unexpected data after the top-level JSON object")
		}
	default:
		return nil, fmt.Errorf("unknown manifest format %q", format)
	}
	return raw, nil
}

// FindManifest searches startDir and its parents for a manifest file.
func FindManifest(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.ManifestNotFound(startDir).WithDetail("searchPath", startDir)
}

// expandFields expands environment references in the string fields of
// category and link objects. Bare strings in lists are document ids and
// are never rewritten, and substituted values cannot change structure
// because expansion runs after decoding.
func expandFields(v any) any {
	switch t := v.(type) {
	case []any:
		for i, item := range t {
			if _, isID := item.(string); !isID {
				t[i] = expandFields(item)
			}
		}
	case map[string]any:
		for k, field := range t {
			if s, ok := field.(string); ok {
				t[k] = expandEnvVars(s)
			} else {
				t[k] = expandFields(field)
			}
		}
	case map[any]any:
		for k, field := range t {
			if s, ok := field.(string); ok {
				t[k] = expandEnvVars(s)
			} else {
				t[k] = expandFields(field)
			}
		}
	}
	return v
}

// expandEnvVars replaces ${VAR} and ${VAR:-default}. References to unset
// variables without a default are left as written.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]

		if value := os.Getenv(varName); value != "" {
			return value
		}
		if len(parts) > 1 {
			return parts[1]
		}
		return match
	})
}
