// Code generated by ent, DO NOT EDIT.

package pullrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conductor-ci/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldTaskID, v))
}

// RepositoryFullName applies equality check predicate on the "repository_full_name" field. It's identical to RepositoryFullNameEQ.
func RepositoryFullName(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldRepositoryFullName, v))
}

// Number applies equality check predicate on the "number" field. It's identical to NumberEQ.
func Number(v int) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldTitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldBody, v))
}

// BranchName applies equality check predicate on the "branch_name" field. It's identical to BranchNameEQ.
func BranchName(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldBranchName, v))
}

// HeadSha applies equality check predicate on the "head_sha" field. It's identical to HeadShaEQ.
func HeadSha(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldHeadSha, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldURL, v))
}

// ReviewsPassed applies equality check predicate on the "reviews_passed" field. It's identical to ReviewsPassedEQ.
func ReviewsPassed(v bool) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldReviewsPassed, v))
}

// CheckStatus applies equality check predicate on the "check_status" field. It's identical to CheckStatusEQ.
func CheckStatus(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldCheckStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContainsFold(FieldTaskID, v))
}

// RepositoryFullNameEQ applies the EQ predicate on the "repository_full_name" field.
func RepositoryFullNameEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldRepositoryFullName, v))
}

// RepositoryFullNameNEQ applies the NEQ predicate on the "repository_full_name" field.
func RepositoryFullNameNEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNEQ(FieldRepositoryFullName, v))
}

// RepositoryFullNameIn applies the In predicate on the "repository_full_name" field.
func RepositoryFullNameIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIn(FieldRepositoryFullName, vs...))
}

// RepositoryFullNameNotIn applies the NotIn predicate on the "repository_full_name" field.
func RepositoryFullNameNotIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotIn(FieldRepositoryFullName, vs...))
}

// RepositoryFullNameGT applies the GT predicate on the "repository_full_name" field.
func RepositoryFullNameGT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGT(FieldRepositoryFullName, v))
}

// RepositoryFullNameGTE applies the GTE predicate on the "repository_full_name" field.
func RepositoryFullNameGTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGTE(FieldRepositoryFullName, v))
}

// RepositoryFullNameLT applies the LT predicate on the "repository_full_name" field.
func RepositoryFullNameLT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLT(FieldRepositoryFullName, v))
}

// RepositoryFullNameLTE applies the LTE predicate on the "repository_full_name" field.
func RepositoryFullNameLTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLTE(FieldRepositoryFullName, v))
}

// RepositoryFullNameContains applies the Contains predicate on the "repository_full_name" field.
func RepositoryFullNameContains(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContains(FieldRepositoryFullName, v))
}

// RepositoryFullNameHasPrefix applies the HasPrefix predicate on the "repository_full_name" field.
func RepositoryFullNameHasPrefix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasPrefix(FieldRepositoryFullName, v))
}

// RepositoryFullNameHasSuffix applies the HasSuffix predicate on the "repository_full_name" field.
func RepositoryFullNameHasSuffix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasSuffix(FieldRepositoryFullName, v))
}

// RepositoryFullNameEqualFold applies the EqualFold predicate on the "repository_full_name" field.
func RepositoryFullNameEqualFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEqualFold(FieldRepositoryFullName, v))
}

// RepositoryFullNameContainsFold applies the ContainsFold predicate on the "repository_full_name" field.
func RepositoryFullNameContainsFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContainsFold(FieldRepositoryFullName, v))
}

// NumberEQ applies the EQ predicate on the "number" field.
func NumberEQ(v int) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldNumber, v))
}

// NumberNEQ applies the NEQ predicate on the "number" field.
func NumberNEQ(v int) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNEQ(FieldNumber, v))
}

// NumberIn applies the In predicate on the "number" field.
func NumberIn(vs ...int) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIn(FieldNumber, vs...))
}

// NumberNotIn applies the NotIn predicate on the "number" field.
func NumberNotIn(vs ...int) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotIn(FieldNumber, vs...))
}

// NumberGT applies the GT predicate on the "number" field.
func NumberGT(v int) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGT(FieldNumber, v))
}

// NumberGTE applies the GTE predicate on the "number" field.
func NumberGTE(v int) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGTE(FieldNumber, v))
}

// NumberLT applies the LT predicate on the "number" field.
func NumberLT(v int) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLT(FieldNumber, v))
}

// NumberLTE applies the LTE predicate on the "number" field.
func NumberLTE(v int) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLTE(FieldNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContainsFold(FieldTitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasSuffix(FieldBody, v))
}

// BodyIsNil applies the IsNil predicate on the "body" field.
func BodyIsNil() predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIsNull(FieldBody))
}

// BodyNotNil applies the NotNil predicate on the "body" field.
func BodyNotNil() predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotNull(FieldBody))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContainsFold(FieldBody, v))
}

// BranchNameEQ applies the EQ predicate on the "branch_name" field.
func BranchNameEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldBranchName, v))
}

// BranchNameNEQ applies the NEQ predicate on the "branch_name" field.
func BranchNameNEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNEQ(FieldBranchName, v))
}

// BranchNameIn applies the In predicate on the "branch_name" field.
func BranchNameIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIn(FieldBranchName, vs...))
}

// BranchNameNotIn applies the NotIn predicate on the "branch_name" field.
func BranchNameNotIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotIn(FieldBranchName, vs...))
}

// BranchNameGT applies the GT predicate on the "branch_name" field.
func BranchNameGT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGT(FieldBranchName, v))
}

// BranchNameGTE applies the GTE predicate on the "branch_name" field.
func BranchNameGTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGTE(FieldBranchName, v))
}

// BranchNameLT applies the LT predicate on the "branch_name" field.
func BranchNameLT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLT(FieldBranchName, v))
}

// BranchNameLTE applies the LTE predicate on the "branch_name" field.
func BranchNameLTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLTE(FieldBranchName, v))
}

// BranchNameContains applies the Contains predicate on the "branch_name" field.
func BranchNameContains(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContains(FieldBranchName, v))
}

// BranchNameHasPrefix applies the HasPrefix predicate on the "branch_name" field.
func BranchNameHasPrefix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasPrefix(FieldBranchName, v))
}

// BranchNameHasSuffix applies the HasSuffix predicate on the "branch_name" field.
func BranchNameHasSuffix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasSuffix(FieldBranchName, v))
}

// BranchNameEqualFold applies the EqualFold predicate on the "branch_name" field.
func BranchNameEqualFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEqualFold(FieldBranchName, v))
}

// BranchNameContainsFold applies the ContainsFold predicate on the "branch_name" field.
func BranchNameContainsFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContainsFold(FieldBranchName, v))
}

// HeadShaEQ applies the EQ predicate on the "head_sha" field.
func HeadShaEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldHeadSha, v))
}

// HeadShaNEQ applies the NEQ predicate on the "head_sha" field.
func HeadShaNEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNEQ(FieldHeadSha, v))
}

// HeadShaIn applies the In predicate on the "head_sha" field.
func HeadShaIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIn(FieldHeadSha, vs...))
}

// HeadShaNotIn applies the NotIn predicate on the "head_sha" field.
func HeadShaNotIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotIn(FieldHeadSha, vs...))
}

// HeadShaGT applies the GT predicate on the "head_sha" field.
func HeadShaGT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGT(FieldHeadSha, v))
}

// HeadShaGTE applies the GTE predicate on the "head_sha" field.
func HeadShaGTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGTE(FieldHeadSha, v))
}

// HeadShaLT applies the LT predicate on the "head_sha" field.
func HeadShaLT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLT(FieldHeadSha, v))
}

// HeadShaLTE applies the LTE predicate on the "head_sha" field.
func HeadShaLTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLTE(FieldHeadSha, v))
}

// HeadShaContains applies the Contains predicate on the "head_sha" field.
func HeadShaContains(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContains(FieldHeadSha, v))
}

// HeadShaHasPrefix applies the HasPrefix predicate on the "head_sha" field.
func HeadShaHasPrefix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasPrefix(FieldHeadSha, v))
}

// HeadShaHasSuffix applies the HasSuffix predicate on the "head_sha" field.
func HeadShaHasSuffix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasSuffix(FieldHeadSha, v))
}

// HeadShaIsNil applies the IsNil predicate on the "head_sha" field.
func HeadShaIsNil() predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIsNull(FieldHeadSha))
}

// HeadShaNotNil applies the NotNil predicate on the "head_sha" field.
func HeadShaNotNil() predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotNull(FieldHeadSha))
}

// HeadShaEqualFold applies the EqualFold predicate on the "head_sha" field.
func HeadShaEqualFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEqualFold(FieldHeadSha, v))
}

// HeadShaContainsFold applies the ContainsFold predicate on the "head_sha" field.
func HeadShaContainsFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContainsFold(FieldHeadSha, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContainsFold(FieldURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// ReviewsPassedEQ applies the EQ predicate on the "reviews_passed" field.
func ReviewsPassedEQ(v bool) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldReviewsPassed, v))
}

// ReviewsPassedNEQ applies the NEQ predicate on the "reviews_passed" field.
func ReviewsPassedNEQ(v bool) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNEQ(FieldReviewsPassed, v))
}

// CheckStatusEQ applies the EQ predicate on the "check_status" field.
func CheckStatusEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldCheckStatus, v))
}

// CheckStatusNEQ applies the NEQ predicate on the "check_status" field.
func CheckStatusNEQ(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNEQ(FieldCheckStatus, v))
}

// CheckStatusIn applies the In predicate on the "check_status" field.
func CheckStatusIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIn(FieldCheckStatus, vs...))
}

// CheckStatusNotIn applies the NotIn predicate on the "check_status" field.
func CheckStatusNotIn(vs ...string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotIn(FieldCheckStatus, vs...))
}

// CheckStatusGT applies the GT predicate on the "check_status" field.
func CheckStatusGT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGT(FieldCheckStatus, v))
}

// CheckStatusGTE applies the GTE predicate on the "check_status" field.
func CheckStatusGTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGTE(FieldCheckStatus, v))
}

// CheckStatusLT applies the LT predicate on the "check_status" field.
func CheckStatusLT(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLT(FieldCheckStatus, v))
}

// CheckStatusLTE applies the LTE predicate on the "check_status" field.
func CheckStatusLTE(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLTE(FieldCheckStatus, v))
}

// CheckStatusContains applies the Contains predicate on the "check_status" field.
func CheckStatusContains(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContains(FieldCheckStatus, v))
}

// CheckStatusHasPrefix applies the HasPrefix predicate on the "check_status" field.
func CheckStatusHasPrefix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasPrefix(FieldCheckStatus, v))
}

// CheckStatusHasSuffix applies the HasSuffix predicate on the "check_status" field.
func CheckStatusHasSuffix(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldHasSuffix(FieldCheckStatus, v))
}

// CheckStatusIsNil applies the IsNil predicate on the "check_status" field.
func CheckStatusIsNil() predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIsNull(FieldCheckStatus))
}

// CheckStatusNotNil applies the NotNil predicate on the "check_status" field.
func CheckStatusNotNil() predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotNull(FieldCheckStatus))
}

// CheckStatusEqualFold applies the EqualFold predicate on the "check_status" field.
func CheckStatusEqualFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEqualFold(FieldCheckStatus, v))
}

// CheckStatusContainsFold applies the ContainsFold predicate on the "check_status" field.
func CheckStatusContainsFold(v string) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldContainsFold(FieldCheckStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PullRequest {
	return predicate.PullRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.PullRequest {
	return predicate.PullRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.PullRequest {
	return predicate.PullRequest(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PullRequest) predicate.PullRequest {
	return predicate.PullRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PullRequest) predicate.PullRequest {
	return predicate.PullRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PullRequest) predicate.PullRequest {
	return predicate.PullRequest(sql.NotPredicates(p))
}
