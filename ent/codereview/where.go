// Code generated by ent, DO NOT EDIT.

package codereview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conductor-ci/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldTaskID, v))
}

// AgentRunID applies equality check predicate on the "agent_run_id" field. It's identical to AgentRunIDEQ.
func AgentRunID(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldAgentRunID, v))
}

// Iteration applies equality check predicate on the "iteration" field. It's identical to IterationEQ.
func Iteration(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldIteration, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldTaskID, v))
}

// AgentRunIDEQ applies the EQ predicate on the "agent_run_id" field.
func AgentRunIDEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldAgentRunID, v))
}

// AgentRunIDNEQ applies the NEQ predicate on the "agent_run_id" field.
func AgentRunIDNEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldAgentRunID, v))
}

// AgentRunIDIn applies the In predicate on the "agent_run_id" field.
func AgentRunIDIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldAgentRunID, vs...))
}

// AgentRunIDNotIn applies the NotIn predicate on the "agent_run_id" field.
func AgentRunIDNotIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldAgentRunID, vs...))
}

// AgentRunIDGT applies the GT predicate on the "agent_run_id" field.
func AgentRunIDGT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldAgentRunID, v))
}

// AgentRunIDGTE applies the GTE predicate on the "agent_run_id" field.
func AgentRunIDGTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldAgentRunID, v))
}

// AgentRunIDLT applies the LT predicate on the "agent_run_id" field.
func AgentRunIDLT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldAgentRunID, v))
}

// AgentRunIDLTE applies the LTE predicate on the "agent_run_id" field.
func AgentRunIDLTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldAgentRunID, v))
}

// AgentRunIDContains applies the Contains predicate on the "agent_run_id" field.
func AgentRunIDContains(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContains(FieldAgentRunID, v))
}

// AgentRunIDHasPrefix applies the HasPrefix predicate on the "agent_run_id" field.
func AgentRunIDHasPrefix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasPrefix(FieldAgentRunID, v))
}

// AgentRunIDHasSuffix applies the HasSuffix predicate on the "agent_run_id" field.
func AgentRunIDHasSuffix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasSuffix(FieldAgentRunID, v))
}

// AgentRunIDIsNil applies the IsNil predicate on the "agent_run_id" field.
func AgentRunIDIsNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIsNull(FieldAgentRunID))
}

// AgentRunIDNotNil applies the NotNil predicate on the "agent_run_id" field.
func AgentRunIDNotNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotNull(FieldAgentRunID))
}

// AgentRunIDEqualFold applies the EqualFold predicate on the "agent_run_id" field.
func AgentRunIDEqualFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldAgentRunID, v))
}

// AgentRunIDContainsFold applies the ContainsFold predicate on the "agent_run_id" field.
func AgentRunIDContainsFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldAgentRunID, v))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v Result) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v Result) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...Result) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...Result) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldResult, vs...))
}

// IterationEQ applies the EQ predicate on the "iteration" field.
func IterationEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldIteration, v))
}

// IterationNEQ applies the NEQ predicate on the "iteration" field.
func IterationNEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldIteration, v))
}

// IterationIn applies the In predicate on the "iteration" field.
func IterationIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldIteration, vs...))
}

// IterationNotIn applies the NotIn predicate on the "iteration" field.
func IterationNotIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldIteration, vs...))
}

// IterationGT applies the GT predicate on the "iteration" field.
func IterationGT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldIteration, v))
}

// IterationGTE applies the GTE predicate on the "iteration" field.
func IterationGTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldIteration, v))
}

// IterationLT applies the LT predicate on the "iteration" field.
func IterationLT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldIteration, v))
}

// IterationLTE applies the LTE predicate on the "iteration" field.
func IterationLTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldIteration, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldSummary, v))
}

// IssuesIsNil applies the IsNil predicate on the "issues" field.
func IssuesIsNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIsNull(FieldIssues))
}

// IssuesNotNil applies the NotNil predicate on the "issues" field.
func IssuesNotNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotNull(FieldIssues))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.CodeReview {
	return predicate.CodeReview(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.CodeReview {
	return predicate.CodeReview(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CodeReview) predicate.CodeReview {
	return predicate.CodeReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CodeReview) predicate.CodeReview {
	return predicate.CodeReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CodeReview) predicate.CodeReview {
	return predicate.CodeReview(sql.NotPredicates(p))
}
