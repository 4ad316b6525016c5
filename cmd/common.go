package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/grovetools/navtree/cli"
	"github.com/grovetools/navtree/config"
	"github.com/grovetools/navtree/content"
	"github.com/grovetools/navtree/manifest"
	"github.com/grovetools/navtree/nav"
	"github.com/grovetools/navtree/schema"
)

// session is what most commands start from: the effective configuration
// and the manifest it points at.
type session struct {
	cfg      *config.Config
	path     string
	manifest *manifest.Manifest
}

// newLoader builds a manifest loader, with schema validation when strict.
func newLoader(cmd *cobra.Command, strict bool) (*manifest.Loader, error) {
	opts := []manifest.Option{manifest.WithLogger(cli.GetLogger(cmd))}
	if strict {
		v, err := schema.NewValidator()
		if err != nil {
			return nil, err
		}
		opts = append(opts, manifest.WithSchema(v))
	}
	return manifest.NewLoader(opts...), nil
}

// resolveSession loads configuration and resolves the manifest path
// without loading the manifest.
func resolveSession(cmd *cobra.Command, args []string) (*session, error) {
	opts := cli.GetOptions(cmd)
	cfg, err := cli.InitConfig(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	path, err := cli.ResolveManifest(cfg, arg)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, path: path}, nil
}

// openSession resolves and loads the manifest. strict forces schema
// validation on top of the configured setting.
func openSession(cmd *cobra.Command, args []string, strict bool) (*session, error) {
	s, err := resolveSession(cmd, args)
	if err != nil {
		return nil, err
	}

	loader, err := newLoader(cmd, strict || s.cfg.Strict)
	if err != nil {
		return nil, err
	}
	s.manifest, err = loader.LoadFile(s.path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// tree selects a collection: the named one when given, otherwise the
// configured default, falling back to the only collection of a
// single-collection manifest.
func (s *session) tree(name string) (*nav.Tree, error) {
	if name != "" {
		return s.manifest.Collection(name)
	}
	t, err := s.manifest.Collection(s.cfg.DefaultCollection)
	if err != nil && len(s.manifest.Collections) == 1 {
		return s.manifest.Collections[0], nil
	}
	return t, err
}

// trees returns the named collection, or every collection when all is set.
func (s *session) trees(name string, all bool) ([]*nav.Tree, error) {
	if all {
		return s.manifest.Collections, nil
	}
	t, err := s.tree(name)
	if err != nil {
		return nil, err
	}
	return []*nav.Tree{t}, nil
}

// scanContent indexes dir, or the configured content_dir when dir is empty.
// It returns nil when neither is set.
func (s *session) scanContent(dir string) (*content.Index, error) {
	if dir == "" {
		dir = s.cfg.ResolvePath(s.cfg.ContentDir)
	}
	if dir == "" {
		return nil, nil
	}
	return content.Scan(dir, content.Options{Exclude: s.cfg.Exclude})
}

// isTerminal reports whether the command writes to a color-capable terminal.
func isTerminal(cmd *cobra.Command) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
