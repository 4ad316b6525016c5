package content

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter holds the front matter fields that affect sidebar resolution.
type FrontMatter struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	SidebarLabel string `yaml:"sidebar_label"`
}

// ParseFrontMatter reads the YAML block delimited by '---' lines at the very
// top of a markdown document. Documents without one yield a zero FrontMatter.
// Reading stops at the closing delimiter.
func ParseFrontMatter(r io.Reader) (FrontMatter, error) {
	var fm FrontMatter
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return fm, scanner.Err()
	}
	if strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff")) != "---" {
		return fm, nil
	}

	var block strings.Builder
	closed := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			closed = true
			break
		}
		block.WriteString(line)
		block.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return fm, err
	}
	if !closed {
		return fm, fmt.Errorf("unterminated front matter")
	}

	if err := yaml.Unmarshal([]byte(block.String()), &fm); err != nil {
		return fm, fmt.Errorf("invalid front matter: %w", err)
	}
	fm.ID = strings.TrimSpace(fm.ID)
	return fm, nil
}
