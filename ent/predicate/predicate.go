// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentRun is the predicate function for agentrun builders.
type AgentRun func(*sql.Selector)

// CodeReview is the predicate function for codereview builders.
type CodeReview func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// PullRequest is the predicate function for pullrequest builders.
type PullRequest func(*sql.Selector)

// Subtask is the predicate function for subtask builders.
type Subtask func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
