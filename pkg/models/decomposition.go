package models

// DecompositionType classifies a task as directly executable or as an
// epic that spawns child work items.
type DecompositionType string

// Decomposition types.
const (
	DecompositionSimple DecompositionType = "simple"
	DecompositionEpic   DecompositionType = "epic"
)

// TaskDecomposition is the master agent's plan, parsed from the first
// JSON code-fenced block of its response.
type TaskDecomposition struct {
	Type                DecompositionType `json:"type"`
	Summary             string            `json:"summary,omitempty"`
	Subtasks            []PlannedSubtask  `json:"subtasks,omitempty"`
	ChildTasks          []ChildTaskDef    `json:"childTasks,omitempty"`
	NeedsHumanReview    bool              `json:"needsHumanReview,omitempty"`
	HumanReviewQuestion string            `json:"humanReviewQuestion,omitempty"`
}

// PlannedSubtask is one planned unit of agent work for a simple task.
type PlannedSubtask struct {
	SubprojectPath string   `json:"subprojectPath"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	DependsOn      []string `json:"dependsOn,omitempty"`
}

// ChildTaskDef defines one child work item of an epic. DependsOn holds
// titles of prerequisite sibling children.
type ChildTaskDef struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DependsOn   []string `json:"dependsOn,omitempty"`
}

// RunType classifies an agent run.
type RunType string

// Run types.
const (
	RunTypeMaster     RunType = "master"
	RunTypeSubAgent   RunType = "sub_agent"
	RunTypeCodeReview RunType = "code_review"
)

// TaskAction is the action field of a task-queue job payload.
type TaskAction string

// Task actions dispatched by the task processor.
const (
	ActionDecompose TaskAction = "decompose"
	ActionExecute   TaskAction = "execute"
	ActionReview    TaskAction = "review"
	ActionFix       TaskAction = "fix"
	ActionCreatePR  TaskAction = "create_pr"
	ActionSmokeTest TaskAction = "smoke_test"
)
