package subproject

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conductor-ci/conductor/pkg/config"
)

func TestDetect_AutoDetect(t *testing.T) {
	cfg := config.DefaultRepoConfig()
	paths := []string{
		"packages/api/src/index.ts",
		"packages/api/package.json",
		"packages/web/src/app.tsx",
		"apps/cli/main.go",
		"docs/readme.md",
		"package.json",
	}

	subs := Detect(cfg, paths)
	assert.Equal(t, []Subproject{
		{Path: "apps/cli", Name: "cli"},
		{Path: "packages/api", Name: "api"},
		{Path: "packages/web", Name: "web"},
	}, subs)
}

func TestDetect_StarMatchesOneSegment(t *testing.T) {
	cfg := config.DefaultRepoConfig()
	paths := []string{"packages/group/nested/file.ts"}

	subs := Detect(cfg, paths)
	// packages/group matches packages/*; packages/group/nested does not.
	assert.Equal(t, []Subproject{{Path: "packages/group", Name: "group"}}, subs)
}

func TestDetect_ExplicitWins(t *testing.T) {
	cfg := config.DefaultRepoConfig()
	cfg.Subprojects.Explicit = []config.ExplicitSubproject{
		{Path: "backend/", Name: "backend", Language: "go"},
		{Path: "frontend", Name: "frontend"},
	}
	paths := []string{"packages/api/index.ts"}

	subs := Detect(cfg, paths)
	assert.Equal(t, []Subproject{
		{Path: "backend", Name: "backend", Language: "go"},
		{Path: "frontend", Name: "frontend"},
	}, subs)
}

func TestDetect_NoMatchesFallsBackToRoot(t *testing.T) {
	cfg := config.DefaultRepoConfig()
	subs := Detect(cfg, []string{"main.go", "go.mod"})
	assert.Equal(t, []Subproject{{Path: ".", Name: "root"}}, subs)
}

func TestDetect_Disabled(t *testing.T) {
	cfg := config.DefaultRepoConfig()
	disabled := false
	cfg.Subprojects.AutoDetect.Enabled = &disabled

	subs := Detect(cfg, []string{"packages/api/index.ts"})
	assert.Equal(t, []Subproject{{Path: ".", Name: "root"}}, subs)
}

func TestContains(t *testing.T) {
	subs := []Subproject{{Path: "packages/api"}}
	assert.True(t, Contains(subs, "packages/api"))
	assert.True(t, Contains(subs, "."))
	assert.False(t, Contains(subs, "packages/web"))
}
