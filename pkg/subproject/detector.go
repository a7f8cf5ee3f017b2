// Package subproject maps repository paths to the logical subprojects
// a monorepo task decomposes into.
package subproject

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/conductor-ci/conductor/pkg/config"
)

// Subproject is one detected or configured unit of the repository.
type Subproject struct {
	Path     string
	Name     string
	Language string
}

// Detect resolves the subprojects of a repository from its config and
// file listing. Explicit config wins; otherwise glob auto-detection
// runs over the repository paths. A repository with no matches is a
// single subproject at ".".
func Detect(cfg *config.RepoConfig, repoPaths []string) []Subproject {
	if len(cfg.Subprojects.Explicit) > 0 {
		subs := make([]Subproject, 0, len(cfg.Subprojects.Explicit))
		for _, e := range cfg.Subprojects.Explicit {
			subs = append(subs, Subproject{
				Path:     strings.TrimSuffix(e.Path, "/"),
				Name:     e.Name,
				Language: e.Language,
			})
		}
		return subs
	}

	if cfg.AutoDetectEnabled() {
		if subs := autoDetect(cfg.Subprojects.AutoDetect.Patterns, repoPaths); len(subs) > 0 {
			return subs
		}
	}

	return []Subproject{{Path: ".", Name: "root"}}
}

// autoDetect matches each pattern against the directory prefixes of
// the repository paths. A pattern like packages/* matches exactly one
// path segment.
func autoDetect(patterns, repoPaths []string) []Subproject {
	dirs := map[string]struct{}{}
	for _, p := range repoPaths {
		// Children of a subproject also identify it: packages/api/src/x.ts
		// yields candidate prefixes packages, packages/api, ...
		segments := strings.Split(p, "/")
		for i := 1; i < len(segments); i++ {
			dirs[strings.Join(segments[:i], "/")] = struct{}{}
		}
	}

	found := map[string]struct{}{}
	for dir := range dirs {
		for _, pattern := range patterns {
			ok, err := doublestar.Match(pattern, dir)
			if err != nil {
				continue
			}
			if ok {
				found[dir] = struct{}{}
				break
			}
		}
	}

	subs := make([]Subproject, 0, len(found))
	for dir := range found {
		subs = append(subs, Subproject{Path: dir, Name: baseName(dir)})
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].Path < subs[j].Path })
	return subs
}

// Paths returns the path of every subproject.
func Paths(subs []Subproject) []string {
	paths := make([]string, len(subs))
	for i, s := range subs {
		paths[i] = s.Path
	}
	return paths
}

// Contains reports whether path names one of the subprojects or the
// repository root.
func Contains(subs []Subproject, path string) bool {
	if path == "." {
		return true
	}
	for _, s := range subs {
		if s.Path == path {
			return true
		}
	}
	return false
}

func baseName(dir string) string {
	if i := strings.LastIndex(dir, "/"); i >= 0 {
		return dir[i+1:]
	}
	return dir
}
