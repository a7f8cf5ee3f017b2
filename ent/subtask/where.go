// Code generated by ent, DO NOT EDIT.

package subtask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conductor-ci/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Subtask {
	return predicate.Subtask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Subtask {
	return predicate.Subtask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Subtask {
	return predicate.Subtask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Subtask {
	return predicate.Subtask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Subtask {
	return predicate.Subtask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Subtask {
	return predicate.Subtask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Subtask {
	return predicate.Subtask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Subtask {
	return predicate.Subtask(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldTaskID, v))
}

// SubprojectPath applies equality check predicate on the "subproject_path" field. It's identical to SubprojectPathEQ.
func SubprojectPath(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldSubprojectPath, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldDescription, v))
}

// AgentRunID applies equality check predicate on the "agent_run_id" field. It's identical to AgentRunIDEQ.
func AgentRunID(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldAgentRunID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldCompletedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Subtask {
	return predicate.Subtask(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Subtask {
	return predicate.Subtask(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldContainsFold(FieldTaskID, v))
}

// SubprojectPathEQ applies the EQ predicate on the "subproject_path" field.
func SubprojectPathEQ(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldSubprojectPath, v))
}

// SubprojectPathNEQ applies the NEQ predicate on the "subproject_path" field.
func SubprojectPathNEQ(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldNEQ(FieldSubprojectPath, v))
}

// SubprojectPathIn applies the In predicate on the "subproject_path" field.
func SubprojectPathIn(vs ...string) predicate.Subtask {
	return predicate.Subtask(sql.FieldIn(FieldSubprojectPath, vs...))
}

// SubprojectPathNotIn applies the NotIn predicate on the "subproject_path" field.
func SubprojectPathNotIn(vs ...string) predicate.Subtask {
	return predicate.Subtask(sql.FieldNotIn(FieldSubprojectPath, vs...))
}

// SubprojectPathGT applies the GT predicate on the "subproject_path" field.
func SubprojectPathGT(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldGT(FieldSubprojectPath, v))
}

// SubprojectPathGTE applies the GTE predicate on the "subproject_path" field.
func SubprojectPathGTE(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldGTE(FieldSubprojectPath, v))
}

// SubprojectPathLT applies the LT predicate on the "subproject_path" field.
func SubprojectPathLT(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldLT(FieldSubprojectPath, v))
}

// SubprojectPathLTE applies the LTE predicate on the "subproject_path" field.
func SubprojectPathLTE(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldLTE(FieldSubprojectPath, v))
}

// SubprojectPathContains applies the Contains predicate on the "subproject_path" field.
func SubprojectPathContains(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldContains(FieldSubprojectPath, v))
}

// SubprojectPathHasPrefix applies the HasPrefix predicate on the "subproject_path" field.
func SubprojectPathHasPrefix(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldHasPrefix(FieldSubprojectPath, v))
}

// SubprojectPathHasSuffix applies the HasSuffix predicate on the "subproject_path" field.
func SubprojectPathHasSuffix(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldHasSuffix(FieldSubprojectPath, v))
}

// SubprojectPathEqualFold applies the EqualFold predicate on the "subproject_path" field.
func SubprojectPathEqualFold(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEqualFold(FieldSubprojectPath, v))
}

// SubprojectPathContainsFold applies the ContainsFold predicate on the "subproject_path" field.
func SubprojectPathContainsFold(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldContainsFold(FieldSubprojectPath, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Subtask {
	return predicate.Subtask(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Subtask {
	return predicate.Subtask(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Subtask {
	return predicate.Subtask(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Subtask {
	return predicate.Subtask(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Subtask {
	return predicate.Subtask(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Subtask {
	return predicate.Subtask(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Subtask {
	return predicate.Subtask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Subtask {
	return predicate.Subtask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Subtask {
	return predicate.Subtask(sql.FieldNotIn(FieldStatus, vs...))
}

// DependsOnIsNil applies the IsNil predicate on the "depends_on" field.
func DependsOnIsNil() predicate.Subtask {
	return predicate.Subtask(sql.FieldIsNull(FieldDependsOn))
}

// DependsOnNotNil applies the NotNil predicate on the "depends_on" field.
func DependsOnNotNil() predicate.Subtask {
	return predicate.Subtask(sql.FieldNotNull(FieldDependsOn))
}

// AgentRunIDEQ applies the EQ predicate on the "agent_run_id" field.
func AgentRunIDEQ(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldAgentRunID, v))
}

// AgentRunIDNEQ applies the NEQ predicate on the "agent_run_id" field.
func AgentRunIDNEQ(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldNEQ(FieldAgentRunID, v))
}

// AgentRunIDIn applies the In predicate on the "agent_run_id" field.
func AgentRunIDIn(vs ...string) predicate.Subtask {
	return predicate.Subtask(sql.FieldIn(FieldAgentRunID, vs...))
}

// AgentRunIDNotIn applies the NotIn predicate on the "agent_run_id" field.
func AgentRunIDNotIn(vs ...string) predicate.Subtask {
	return predicate.Subtask(sql.FieldNotIn(FieldAgentRunID, vs...))
}

// AgentRunIDGT applies the GT predicate on the "agent_run_id" field.
func AgentRunIDGT(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldGT(FieldAgentRunID, v))
}

// AgentRunIDGTE applies the GTE predicate on the "agent_run_id" field.
func AgentRunIDGTE(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldGTE(FieldAgentRunID, v))
}

// AgentRunIDLT applies the LT predicate on the "agent_run_id" field.
func AgentRunIDLT(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldLT(FieldAgentRunID, v))
}

// AgentRunIDLTE applies the LTE predicate on the "agent_run_id" field.
func AgentRunIDLTE(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldLTE(FieldAgentRunID, v))
}

// AgentRunIDContains applies the Contains predicate on the "agent_run_id" field.
func AgentRunIDContains(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldContains(FieldAgentRunID, v))
}

// AgentRunIDHasPrefix applies the HasPrefix predicate on the "agent_run_id" field.
func AgentRunIDHasPrefix(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldHasPrefix(FieldAgentRunID, v))
}

// AgentRunIDHasSuffix applies the HasSuffix predicate on the "agent_run_id" field.
func AgentRunIDHasSuffix(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldHasSuffix(FieldAgentRunID, v))
}

// AgentRunIDIsNil applies the IsNil predicate on the "agent_run_id" field.
func AgentRunIDIsNil() predicate.Subtask {
	return predicate.Subtask(sql.FieldIsNull(FieldAgentRunID))
}

// AgentRunIDNotNil applies the NotNil predicate on the "agent_run_id" field.
func AgentRunIDNotNil() predicate.Subtask {
	return predicate.Subtask(sql.FieldNotNull(FieldAgentRunID))
}

// AgentRunIDEqualFold applies the EqualFold predicate on the "agent_run_id" field.
func AgentRunIDEqualFold(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEqualFold(FieldAgentRunID, v))
}

// AgentRunIDContainsFold applies the ContainsFold predicate on the "agent_run_id" field.
func AgentRunIDContainsFold(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldContainsFold(FieldAgentRunID, v))
}

// FilesModifiedIsNil applies the IsNil predicate on the "files_modified" field.
func FilesModifiedIsNil() predicate.Subtask {
	return predicate.Subtask(sql.FieldIsNull(FieldFilesModified))
}

// FilesModifiedNotNil applies the NotNil predicate on the "files_modified" field.
func FilesModifiedNotNil() predicate.Subtask {
	return predicate.Subtask(sql.FieldNotNull(FieldFilesModified))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Subtask {
	return predicate.Subtask(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Subtask {
	return predicate.Subtask(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Subtask {
	return predicate.Subtask(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Subtask {
	return predicate.Subtask(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Subtask {
	return predicate.Subtask(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Subtask {
	return predicate.Subtask(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Subtask {
	return predicate.Subtask(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Subtask {
	return predicate.Subtask(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Subtask {
	return predicate.Subtask(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Subtask {
	return predicate.Subtask(sql.FieldNotNull(FieldCompletedAt))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.Subtask {
	return predicate.Subtask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.Subtask {
	return predicate.Subtask(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subtask) predicate.Subtask {
	return predicate.Subtask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subtask) predicate.Subtask {
	return predicate.Subtask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subtask) predicate.Subtask {
	return predicate.Subtask(sql.NotPredicates(p))
}
