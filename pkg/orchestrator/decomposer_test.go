package orchestrator

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-ci/conductor/ent"
	"github.com/conductor-ci/conductor/pkg/agent"
	"github.com/conductor-ci/conductor/pkg/models"
	"github.com/conductor-ci/conductor/pkg/subproject"
)

func TestParseDecomposition_FencedJSON(t *testing.T) {
	response := "Here is my plan.\n\n```json\n" +
		`{"type": "simple", "summary": "one change", "subtasks": [` +
		`{"subprojectPath": ".", "title": "Do it", "description": "Change the thing"}]}` +
		"\n```\n\nLet me know."

	plan, err := parseDecomposition(response)
	require.NoError(t, err)
	assert.Equal(t, models.DecompositionSimple, plan.Type)
	require.Len(t, plan.Subtasks, 1)
	assert.Equal(t, "Do it", plan.Subtasks[0].Title)
}

func TestParseDecomposition_BareJSON(t *testing.T) {
	plan, err := parseDecomposition(`{"type": "epic", "childTasks": [{"title": "Part 1", "description": "d"}]}`)
	require.NoError(t, err)
	assert.Equal(t, models.DecompositionEpic, plan.Type)
}

func TestParseDecomposition_NoJSON(t *testing.T) {
	_, err := parseDecomposition("I could not produce a plan, sorry.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no JSON block")
}

func TestPlanOrFallback_UnparseableResponsePlansSingleSubtask(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	task := &ent.Task{Title: "Fix the bug", Description: "It crashes"}

	for _, response := range []string{
		"I could not produce a plan, sorry.",
		"```json\n{not valid json\n```",
		"",
	} {
		plan := planOrFallback(response, logger)
		require.NotNil(t, plan)
		assert.Equal(t, models.DecompositionSimple, plan.Type)

		require.NoError(t, validatePlan(plan, nil, task))
		require.Len(t, plan.Subtasks, 1)
		assert.Equal(t, "Fix the bug", plan.Subtasks[0].Title)
		assert.Equal(t, "It crashes", plan.Subtasks[0].Description)
	}
}

func TestPlanOrFallback_ValidResponsePassesThrough(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	plan := planOrFallback(`{"type": "epic", "childTasks": [{"title": "Part 1", "description": "d"}]}`, logger)
	assert.Equal(t, models.DecompositionEpic, plan.Type)
	require.Len(t, plan.ChildTasks, 1)
}

func TestValidatePlan_SimpleEmptySynthesisesFallback(t *testing.T) {
	task := &ent.Task{Title: "Fix the bug", Description: "It crashes"}
	plan := &models.TaskDecomposition{Type: models.DecompositionSimple}

	require.NoError(t, validatePlan(plan, nil, task))
	require.Len(t, plan.Subtasks, 1)
	assert.Equal(t, ".", plan.Subtasks[0].SubprojectPath)
	assert.Equal(t, "Fix the bug", plan.Subtasks[0].Title)
}

func TestValidatePlan_SimpleUnknownSubproject(t *testing.T) {
	subs := []subproject.Subproject{{Path: "apps/web"}}
	plan := &models.TaskDecomposition{
		Type: models.DecompositionSimple,
		Subtasks: []models.PlannedSubtask{
			{SubprojectPath: "apps/missing", Title: "t1", Description: "d"},
		},
	}

	err := validatePlan(plan, subs, &ent.Task{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown subproject")
}

func TestValidatePlan_SimpleUnknownDependency(t *testing.T) {
	subs := []subproject.Subproject{{Path: "."}}
	plan := &models.TaskDecomposition{
		Type: models.DecompositionSimple,
		Subtasks: []models.PlannedSubtask{
			{SubprojectPath: ".", Title: "t1", Description: "d", DependsOn: []string{"nope"}},
		},
	}

	err := validatePlan(plan, subs, &ent.Task{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown subtask")
}

func TestValidatePlan_EpicNeedsChildren(t *testing.T) {
	plan := &models.TaskDecomposition{Type: models.DecompositionEpic}
	require.Error(t, validatePlan(plan, nil, &ent.Task{}))
}

func TestValidatePlan_EpicSiblingDependencies(t *testing.T) {
	plan := &models.TaskDecomposition{
		Type: models.DecompositionEpic,
		ChildTasks: []models.ChildTaskDef{
			{Title: "Part 1", Description: "d"},
			{Title: "Part 2", Description: "d", DependsOn: []string{"Part 1"}},
		},
	}
	require.NoError(t, validatePlan(plan, nil, &ent.Task{}))

	plan.ChildTasks[1].DependsOn = []string{"Part 3"}
	err := validatePlan(plan, nil, &ent.Task{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sibling")
}

func TestValidatePlan_UnknownType(t *testing.T) {
	plan := &models.TaskDecomposition{Type: "mystery"}
	require.Error(t, validatePlan(plan, nil, &ent.Task{}))
}

func TestRunStats(t *testing.T) {
	assert.Equal(t, models.RunStats{}, runStats(nil))

	out := &agent.Output{
		InputTokens:  100,
		OutputTokens: 50,
		TotalCost:    0.25,
		Result:       "done",
	}
	stats := runStats(out)
	assert.Equal(t, int64(100), stats.InputTokens)
	assert.Equal(t, int64(50), stats.OutputTokens)
	assert.Equal(t, 0.25, stats.TotalCost)
	assert.Equal(t, "done", stats.Log)
}
