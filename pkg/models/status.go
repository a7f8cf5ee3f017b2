// Package models defines the domain types shared across services,
// processors, and the HTTP surface: state machines, decomposition plans,
// review results, and request structs.
package models

import "fmt"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

// Task statuses.
const (
	TaskStatusPending     TaskStatus = "pending"
	TaskStatusDecomposing TaskStatus = "decomposing"
	TaskStatusExecuting   TaskStatus = "executing"
	TaskStatusReview      TaskStatus = "review"
	TaskStatusHumanReview TaskStatus = "human_review"
	TaskStatusPRCreated   TaskStatus = "pr_created"
	TaskStatusDone        TaskStatus = "done"
	TaskStatusFailed      TaskStatus = "failed"
)

// SubtaskStatus is the lifecycle state of a subtask.
type SubtaskStatus string

// Subtask statuses.
const (
	SubtaskStatusPending   SubtaskStatus = "pending"
	SubtaskStatusQueued    SubtaskStatus = "queued"
	SubtaskStatusRunning   SubtaskStatus = "running"
	SubtaskStatusCompleted SubtaskStatus = "completed"
	SubtaskStatusFailed    SubtaskStatus = "failed"
)

// taskTransitions is the task state graph. A transition is valid iff the
// target appears in the source's edge set.
var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusPending:     {TaskStatusDecomposing, TaskStatusFailed},
	TaskStatusDecomposing: {TaskStatusExecuting, TaskStatusHumanReview, TaskStatusFailed},
	TaskStatusExecuting:   {TaskStatusReview, TaskStatusHumanReview, TaskStatusFailed},
	TaskStatusReview:      {TaskStatusPRCreated, TaskStatusExecuting, TaskStatusHumanReview, TaskStatusFailed},
	TaskStatusHumanReview: {TaskStatusPending, TaskStatusDecomposing, TaskStatusExecuting, TaskStatusFailed},
	TaskStatusPRCreated:   {TaskStatusPending, TaskStatusDone, TaskStatusHumanReview, TaskStatusFailed},
	TaskStatusFailed:      {TaskStatusPending},
	TaskStatusDone:        {},
}

// subtaskTransitions is the subtask state graph. running -> running is a
// legal edge for idempotent metadata updates.
var subtaskTransitions = map[SubtaskStatus][]SubtaskStatus{
	SubtaskStatusPending:   {SubtaskStatusQueued, SubtaskStatusRunning, SubtaskStatusFailed},
	SubtaskStatusQueued:    {SubtaskStatusRunning, SubtaskStatusFailed},
	SubtaskStatusRunning:   {SubtaskStatusRunning, SubtaskStatusCompleted, SubtaskStatusFailed},
	SubtaskStatusCompleted: {},
	SubtaskStatusFailed:    {SubtaskStatusPending},
}

// InvalidTransitionError reports an attempted edge that is not in the
// state graph. It indicates a programmer error and is never retried.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition: %s -> %s", e.Entity, e.From, e.To)
}

// ValidTaskTransition reports whether from -> to is an edge of the task
// state graph.
func ValidTaskTransition(from, to TaskStatus) bool {
	for _, t := range taskTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// CheckTaskTransition returns an InvalidTransitionError when the edge is
// not in the task state graph.
func CheckTaskTransition(from, to TaskStatus) error {
	if !ValidTaskTransition(from, to) {
		return &InvalidTransitionError{Entity: "task", From: string(from), To: string(to)}
	}
	return nil
}

// ValidSubtaskTransition reports whether from -> to is an edge of the
// subtask state graph.
func ValidSubtaskTransition(from, to SubtaskStatus) bool {
	for _, t := range subtaskTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// CheckSubtaskTransition returns an InvalidTransitionError when the edge
// is not in the subtask state graph.
func CheckSubtaskTransition(from, to SubtaskStatus) error {
	if !ValidSubtaskTransition(from, to) {
		return &InvalidTransitionError{Entity: "subtask", From: string(from), To: string(to)}
	}
	return nil
}

// IsTerminalTaskStatus reports whether the status has no outgoing edges
// other than the failed -> pending retry loop.
func IsTerminalTaskStatus(s TaskStatus) bool {
	return s == TaskStatusDone
}
