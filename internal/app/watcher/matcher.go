package watcher

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// scratchFiles are the swap and backup files editors write next to a saved file
var scratchFiles = []string{"*.swp", "*.swx", "*~", ".#*", "#*#", "*.tmp"}

// Matcher decides whether a changed file should trigger a reload
type Matcher interface {
	Match(path string) bool
}

// matcher tests base names against compiled globs, ignores first
type matcher struct {
	include []glob.Glob
	ignore  []glob.Glob
}

// NewMatcher compiles include and ignore globs matched against file base names
func NewMatcher(includes, ignores []string) (Matcher, error) {
	include, err := compileGlobs(includes)
	if err != nil {
		return nil, err
	}

	ignore, err := compileGlobs(ignores)
	if err != nil {
		return nil, err
	}

	return &matcher{include: include, ignore: ignore}, nil
}

// NewConfigMatcher matches exactly the config file and, when set, the env file
func NewConfigMatcher(configPath, envPath string) (Matcher, error) {
	names := []string{glob.QuoteMeta(filepath.Base(configPath))}
	if envPath != "" {
		names = append(names, glob.QuoteMeta(filepath.Base(envPath)))
	}

	return NewMatcher(names, scratchFiles)
}

func (m *matcher) Match(path string) bool {
	name := filepath.Base(filepath.ToSlash(path))

	return anyMatch(m.include, name) && !anyMatch(m.ignore, name)
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}

func anyMatch(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}

	return false
}
