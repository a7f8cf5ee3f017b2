package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conductor-ci/conductor/pkg/models"
)

func TestDependenciesDone(t *testing.T) {
	statuses := map[string]models.TaskStatus{
		"Part 1": models.TaskStatusDone,
		"Part 2": models.TaskStatusExecuting,
	}

	assert.True(t, dependenciesDone(nil, statuses))
	assert.True(t, dependenciesDone([]string{"Part 1"}, statuses))
	assert.False(t, dependenciesDone([]string{"Part 2"}, statuses))
	assert.False(t, dependenciesDone([]string{"Part 1", "Part 2"}, statuses))
	assert.False(t, dependenciesDone([]string{"Missing"}, statuses),
		"unknown title is not done")
}

func TestUnionFiles(t *testing.T) {
	got := unionFiles(
		[]string{"a.go", "b.go"},
		[]string{"b.go", "c.go"},
	)
	assert.Equal(t, []string{"a.go", "b.go", "c.go"}, got)

	assert.Nil(t, unionFiles(nil, nil))
}

func TestPointerHelpers(t *testing.T) {
	s := "branch"
	n := 7

	assert.Equal(t, "branch", strVal(&s))
	assert.Empty(t, strVal(nil))
	assert.Equal(t, 7, intVal(&n))
	assert.Zero(t, intVal(nil))
}
