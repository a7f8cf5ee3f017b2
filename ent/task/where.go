// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conductor-ci/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// GithubProjectItemID applies equality check predicate on the "github_project_item_id" field. It's identical to GithubProjectItemIDEQ.
func GithubProjectItemID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldGithubProjectItemID, v))
}

// GithubProjectID applies equality check predicate on the "github_project_id" field. It's identical to GithubProjectIDEQ.
func GithubProjectID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldGithubProjectID, v))
}

// RepositoryFullName applies equality check predicate on the "repository_full_name" field. It's identical to RepositoryFullNameEQ.
func RepositoryFullName(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRepositoryFullName, v))
}

// RepositoryID applies equality check predicate on the "repository_id" field. It's identical to RepositoryIDEQ.
func RepositoryID(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRepositoryID, v))
}

// InstallationID applies equality check predicate on the "installation_id" field. It's identical to InstallationIDEQ.
func InstallationID(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldInstallationID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// BranchName applies equality check predicate on the "branch_name" field. It's identical to BranchNameEQ.
func BranchName(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBranchName, v))
}

// PullRequestNumber applies equality check predicate on the "pull_request_number" field. It's identical to PullRequestNumberEQ.
func PullRequestNumber(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPullRequestNumber, v))
}

// PullRequestURL applies equality check predicate on the "pull_request_url" field. It's identical to PullRequestURLEQ.
func PullRequestURL(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPullRequestURL, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldErrorMessage, v))
}

// HumanReviewQuestion applies equality check predicate on the "human_review_question" field. It's identical to HumanReviewQuestionEQ.
func HumanReviewQuestion(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldHumanReviewQuestion, v))
}

// HumanReviewAnswer applies equality check predicate on the "human_review_answer" field. It's identical to HumanReviewAnswerEQ.
func HumanReviewAnswer(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldHumanReviewAnswer, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRetryCount, v))
}

// IsEpic applies equality check predicate on the "is_epic" field. It's identical to IsEpicEQ.
func IsEpic(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsEpic, v))
}

// ParentTaskID applies equality check predicate on the "parent_task_id" field. It's identical to ParentTaskIDEQ.
func ParentTaskID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldParentTaskID, v))
}

// LinkedGithubIssueNumber applies equality check predicate on the "linked_github_issue_number" field. It's identical to LinkedGithubIssueNumberEQ.
func LinkedGithubIssueNumber(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLinkedGithubIssueNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// GithubProjectItemIDEQ applies the EQ predicate on the "github_project_item_id" field.
func GithubProjectItemIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldGithubProjectItemID, v))
}

// GithubProjectItemIDNEQ applies the NEQ predicate on the "github_project_item_id" field.
func GithubProjectItemIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldGithubProjectItemID, v))
}

// GithubProjectItemIDIn applies the In predicate on the "github_project_item_id" field.
func GithubProjectItemIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldGithubProjectItemID, vs...))
}

// GithubProjectItemIDNotIn applies the NotIn predicate on the "github_project_item_id" field.
func GithubProjectItemIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldGithubProjectItemID, vs...))
}

// GithubProjectItemIDGT applies the GT predicate on the "github_project_item_id" field.
func GithubProjectItemIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldGithubProjectItemID, v))
}

// GithubProjectItemIDGTE applies the GTE predicate on the "github_project_item_id" field.
func GithubProjectItemIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldGithubProjectItemID, v))
}

// GithubProjectItemIDLT applies the LT predicate on the "github_project_item_id" field.
func GithubProjectItemIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldGithubProjectItemID, v))
}

// GithubProjectItemIDLTE applies the LTE predicate on the "github_project_item_id" field.
func GithubProjectItemIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldGithubProjectItemID, v))
}

// GithubProjectItemIDContains applies the Contains predicate on the "github_project_item_id" field.
func GithubProjectItemIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldGithubProjectItemID, v))
}

// GithubProjectItemIDHasPrefix applies the HasPrefix predicate on the "github_project_item_id" field.
func GithubProjectItemIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldGithubProjectItemID, v))
}

// GithubProjectItemIDHasSuffix applies the HasSuffix predicate on the "github_project_item_id" field.
func GithubProjectItemIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldGithubProjectItemID, v))
}

// GithubProjectItemIDIsNil applies the IsNil predicate on the "github_project_item_id" field.
func GithubProjectItemIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldGithubProjectItemID))
}

// GithubProjectItemIDNotNil applies the NotNil predicate on the "github_project_item_id" field.
func GithubProjectItemIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldGithubProjectItemID))
}

// GithubProjectItemIDEqualFold applies the EqualFold predicate on the "github_project_item_id" field.
func GithubProjectItemIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldGithubProjectItemID, v))
}

// GithubProjectItemIDContainsFold applies the ContainsFold predicate on the "github_project_item_id" field.
func GithubProjectItemIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldGithubProjectItemID, v))
}

// GithubProjectIDEQ applies the EQ predicate on the "github_project_id" field.
func GithubProjectIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldGithubProjectID, v))
}

// GithubProjectIDNEQ applies the NEQ predicate on the "github_project_id" field.
func GithubProjectIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldGithubProjectID, v))
}

// GithubProjectIDIn applies the In predicate on the "github_project_id" field.
func GithubProjectIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldGithubProjectID, vs...))
}

// GithubProjectIDNotIn applies the NotIn predicate on the "github_project_id" field.
func GithubProjectIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldGithubProjectID, vs...))
}

// GithubProjectIDGT applies the GT predicate on the "github_project_id" field.
func GithubProjectIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldGithubProjectID, v))
}

// GithubProjectIDGTE applies the GTE predicate on the "github_project_id" field.
func GithubProjectIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldGithubProjectID, v))
}

// GithubProjectIDLT applies the LT predicate on the "github_project_id" field.
func GithubProjectIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldGithubProjectID, v))
}

// GithubProjectIDLTE applies the LTE predicate on the "github_project_id" field.
func GithubProjectIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldGithubProjectID, v))
}

// GithubProjectIDContains applies the Contains predicate on the "github_project_id" field.
func GithubProjectIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldGithubProjectID, v))
}

// GithubProjectIDHasPrefix applies the HasPrefix predicate on the "github_project_id" field.
func GithubProjectIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldGithubProjectID, v))
}

// GithubProjectIDHasSuffix applies the HasSuffix predicate on the "github_project_id" field.
func GithubProjectIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldGithubProjectID, v))
}

// GithubProjectIDIsNil applies the IsNil predicate on the "github_project_id" field.
func GithubProjectIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldGithubProjectID))
}

// GithubProjectIDNotNil applies the NotNil predicate on the "github_project_id" field.
func GithubProjectIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldGithubProjectID))
}

// GithubProjectIDEqualFold applies the EqualFold predicate on the "github_project_id" field.
func GithubProjectIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldGithubProjectID, v))
}

// GithubProjectIDContainsFold applies the ContainsFold predicate on the "github_project_id" field.
func GithubProjectIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldGithubProjectID, v))
}

// RepositoryFullNameEQ applies the EQ predicate on the "repository_full_name" field.
func RepositoryFullNameEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRepositoryFullName, v))
}

// RepositoryFullNameNEQ applies the NEQ predicate on the "repository_full_name" field.
func RepositoryFullNameNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRepositoryFullName, v))
}

// RepositoryFullNameIn applies the In predicate on the "repository_full_name" field.
func RepositoryFullNameIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRepositoryFullName, vs...))
}

// RepositoryFullNameNotIn applies the NotIn predicate on the "repository_full_name" field.
func RepositoryFullNameNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRepositoryFullName, vs...))
}

// RepositoryFullNameGT applies the GT predicate on the "repository_full_name" field.
func RepositoryFullNameGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRepositoryFullName, v))
}

// RepositoryFullNameGTE applies the GTE predicate on the "repository_full_name" field.
func RepositoryFullNameGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRepositoryFullName, v))
}

// RepositoryFullNameLT applies the LT predicate on the "repository_full_name" field.
func RepositoryFullNameLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRepositoryFullName, v))
}

// RepositoryFullNameLTE applies the LTE predicate on the "repository_full_name" field.
func RepositoryFullNameLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRepositoryFullName, v))
}

// RepositoryFullNameContains applies the Contains predicate on the "repository_full_name" field.
func RepositoryFullNameContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldRepositoryFullName, v))
}

// RepositoryFullNameHasPrefix applies the HasPrefix predicate on the "repository_full_name" field.
func RepositoryFullNameHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldRepositoryFullName, v))
}

// RepositoryFullNameHasSuffix applies the HasSuffix predicate on the "repository_full_name" field.
func RepositoryFullNameHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldRepositoryFullName, v))
}

// RepositoryFullNameEqualFold applies the EqualFold predicate on the "repository_full_name" field.
func RepositoryFullNameEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldRepositoryFullName, v))
}

// RepositoryFullNameContainsFold applies the ContainsFold predicate on the "repository_full_name" field.
func RepositoryFullNameContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldRepositoryFullName, v))
}

// RepositoryIDEQ applies the EQ predicate on the "repository_id" field.
func RepositoryIDEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRepositoryID, v))
}

// RepositoryIDNEQ applies the NEQ predicate on the "repository_id" field.
func RepositoryIDNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRepositoryID, v))
}

// RepositoryIDIn applies the In predicate on the "repository_id" field.
func RepositoryIDIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRepositoryID, vs...))
}

// RepositoryIDNotIn applies the NotIn predicate on the "repository_id" field.
func RepositoryIDNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRepositoryID, vs...))
}

// RepositoryIDGT applies the GT predicate on the "repository_id" field.
func RepositoryIDGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRepositoryID, v))
}

// RepositoryIDGTE applies the GTE predicate on the "repository_id" field.
func RepositoryIDGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRepositoryID, v))
}

// RepositoryIDLT applies the LT predicate on the "repository_id" field.
func RepositoryIDLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRepositoryID, v))
}

// RepositoryIDLTE applies the LTE predicate on the "repository_id" field.
func RepositoryIDLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRepositoryID, v))
}

// RepositoryIDIsNil applies the IsNil predicate on the "repository_id" field.
func RepositoryIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldRepositoryID))
}

// RepositoryIDNotNil applies the NotNil predicate on the "repository_id" field.
func RepositoryIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldRepositoryID))
}

// InstallationIDEQ applies the EQ predicate on the "installation_id" field.
func InstallationIDEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldInstallationID, v))
}

// InstallationIDNEQ applies the NEQ predicate on the "installation_id" field.
func InstallationIDNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldInstallationID, v))
}

// InstallationIDIn applies the In predicate on the "installation_id" field.
func InstallationIDIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldInstallationID, vs...))
}

// InstallationIDNotIn applies the NotIn predicate on the "installation_id" field.
func InstallationIDNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldInstallationID, vs...))
}

// InstallationIDGT applies the GT predicate on the "installation_id" field.
func InstallationIDGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldInstallationID, v))
}

// InstallationIDGTE applies the GTE predicate on the "installation_id" field.
func InstallationIDGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldInstallationID, v))
}

// InstallationIDLT applies the LT predicate on the "installation_id" field.
func InstallationIDLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldInstallationID, v))
}

// InstallationIDLTE applies the LTE predicate on the "installation_id" field.
func InstallationIDLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldInstallationID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// BranchNameEQ applies the EQ predicate on the "branch_name" field.
func BranchNameEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBranchName, v))
}

// BranchNameNEQ applies the NEQ predicate on the "branch_name" field.
func BranchNameNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldBranchName, v))
}

// BranchNameIn applies the In predicate on the "branch_name" field.
func BranchNameIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldBranchName, vs...))
}

// BranchNameNotIn applies the NotIn predicate on the "branch_name" field.
func BranchNameNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldBranchName, vs...))
}

// BranchNameGT applies the GT predicate on the "branch_name" field.
func BranchNameGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldBranchName, v))
}

// BranchNameGTE applies the GTE predicate on the "branch_name" field.
func BranchNameGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldBranchName, v))
}

// BranchNameLT applies the LT predicate on the "branch_name" field.
func BranchNameLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldBranchName, v))
}

// BranchNameLTE applies the LTE predicate on the "branch_name" field.
func BranchNameLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldBranchName, v))
}

// BranchNameContains applies the Contains predicate on the "branch_name" field.
func BranchNameContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldBranchName, v))
}

// BranchNameHasPrefix applies the HasPrefix predicate on the "branch_name" field.
func BranchNameHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldBranchName, v))
}

// BranchNameHasSuffix applies the HasSuffix predicate on the "branch_name" field.
func BranchNameHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldBranchName, v))
}

// BranchNameIsNil applies the IsNil predicate on the "branch_name" field.
func BranchNameIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldBranchName))
}

// BranchNameNotNil applies the NotNil predicate on the "branch_name" field.
func BranchNameNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldBranchName))
}

// BranchNameEqualFold applies the EqualFold predicate on the "branch_name" field.
func BranchNameEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldBranchName, v))
}

// BranchNameContainsFold applies the ContainsFold predicate on the "branch_name" field.
func BranchNameContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldBranchName, v))
}

// PullRequestNumberEQ applies the EQ predicate on the "pull_request_number" field.
func PullRequestNumberEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPullRequestNumber, v))
}

// PullRequestNumberNEQ applies the NEQ predicate on the "pull_request_number" field.
func PullRequestNumberNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPullRequestNumber, v))
}

// PullRequestNumberIn applies the In predicate on the "pull_request_number" field.
func PullRequestNumberIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPullRequestNumber, vs...))
}

// PullRequestNumberNotIn applies the NotIn predicate on the "pull_request_number" field.
func PullRequestNumberNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPullRequestNumber, vs...))
}

// PullRequestNumberGT applies the GT predicate on the "pull_request_number" field.
func PullRequestNumberGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPullRequestNumber, v))
}

// PullRequestNumberGTE applies the GTE predicate on the "pull_request_number" field.
func PullRequestNumberGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPullRequestNumber, v))
}

// PullRequestNumberLT applies the LT predicate on the "pull_request_number" field.
func PullRequestNumberLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPullRequestNumber, v))
}

// PullRequestNumberLTE applies the LTE predicate on the "pull_request_number" field.
func PullRequestNumberLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPullRequestNumber, v))
}

// PullRequestNumberIsNil applies the IsNil predicate on the "pull_request_number" field.
func PullRequestNumberIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPullRequestNumber))
}

// PullRequestNumberNotNil applies the NotNil predicate on the "pull_request_number" field.
func PullRequestNumberNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPullRequestNumber))
}

// PullRequestURLEQ applies the EQ predicate on the "pull_request_url" field.
func PullRequestURLEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPullRequestURL, v))
}

// PullRequestURLNEQ applies the NEQ predicate on the "pull_request_url" field.
func PullRequestURLNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPullRequestURL, v))
}

// PullRequestURLIn applies the In predicate on the "pull_request_url" field.
func PullRequestURLIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPullRequestURL, vs...))
}

// PullRequestURLNotIn applies the NotIn predicate on the "pull_request_url" field.
func PullRequestURLNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPullRequestURL, vs...))
}

// PullRequestURLGT applies the GT predicate on the "pull_request_url" field.
func PullRequestURLGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPullRequestURL, v))
}

// PullRequestURLGTE applies the GTE predicate on the "pull_request_url" field.
func PullRequestURLGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPullRequestURL, v))
}

// PullRequestURLLT applies the LT predicate on the "pull_request_url" field.
func PullRequestURLLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPullRequestURL, v))
}

// PullRequestURLLTE applies the LTE predicate on the "pull_request_url" field.
func PullRequestURLLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPullRequestURL, v))
}

// PullRequestURLContains applies the Contains predicate on the "pull_request_url" field.
func PullRequestURLContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldPullRequestURL, v))
}

// PullRequestURLHasPrefix applies the HasPrefix predicate on the "pull_request_url" field.
func PullRequestURLHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldPullRequestURL, v))
}

// PullRequestURLHasSuffix applies the HasSuffix predicate on the "pull_request_url" field.
func PullRequestURLHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldPullRequestURL, v))
}

// PullRequestURLIsNil applies the IsNil predicate on the "pull_request_url" field.
func PullRequestURLIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPullRequestURL))
}

// PullRequestURLNotNil applies the NotNil predicate on the "pull_request_url" field.
func PullRequestURLNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPullRequestURL))
}

// PullRequestURLEqualFold applies the EqualFold predicate on the "pull_request_url" field.
func PullRequestURLEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldPullRequestURL, v))
}

// PullRequestURLContainsFold applies the ContainsFold predicate on the "pull_request_url" field.
func PullRequestURLContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldPullRequestURL, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HumanReviewQuestionEQ applies the EQ predicate on the "human_review_question" field.
func HumanReviewQuestionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldHumanReviewQuestion, v))
}

// HumanReviewQuestionNEQ applies the NEQ predicate on the "human_review_question" field.
func HumanReviewQuestionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldHumanReviewQuestion, v))
}

// HumanReviewQuestionIn applies the In predicate on the "human_review_question" field.
func HumanReviewQuestionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldHumanReviewQuestion, vs...))
}

// HumanReviewQuestionNotIn applies the NotIn predicate on the "human_review_question" field.
func HumanReviewQuestionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldHumanReviewQuestion, vs...))
}

// HumanReviewQuestionGT applies the GT predicate on the "human_review_question" field.
func HumanReviewQuestionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldHumanReviewQuestion, v))
}

// HumanReviewQuestionGTE applies the GTE predicate on the "human_review_question" field.
func HumanReviewQuestionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldHumanReviewQuestion, v))
}

// HumanReviewQuestionLT applies the LT predicate on the "human_review_question" field.
func HumanReviewQuestionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldHumanReviewQuestion, v))
}

// HumanReviewQuestionLTE applies the LTE predicate on the "human_review_question" field.
func HumanReviewQuestionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldHumanReviewQuestion, v))
}

// HumanReviewQuestionContains applies the Contains predicate on the "human_review_question" field.
func HumanReviewQuestionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldHumanReviewQuestion, v))
}

// HumanReviewQuestionHasPrefix applies the HasPrefix predicate on the "human_review_question" field.
func HumanReviewQuestionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldHumanReviewQuestion, v))
}

// HumanReviewQuestionHasSuffix applies the HasSuffix predicate on the "human_review_question" field.
func HumanReviewQuestionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldHumanReviewQuestion, v))
}

// HumanReviewQuestionIsNil applies the IsNil predicate on the "human_review_question" field.
func HumanReviewQuestionIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldHumanReviewQuestion))
}

// HumanReviewQuestionNotNil applies the NotNil predicate on the "human_review_question" field.
func HumanReviewQuestionNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldHumanReviewQuestion))
}

// HumanReviewQuestionEqualFold applies the EqualFold predicate on the "human_review_question" field.
func HumanReviewQuestionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldHumanReviewQuestion, v))
}

// HumanReviewQuestionContainsFold applies the ContainsFold predicate on the "human_review_question" field.
func HumanReviewQuestionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldHumanReviewQuestion, v))
}

// HumanReviewAnswerEQ applies the EQ predicate on the "human_review_answer" field.
func HumanReviewAnswerEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldHumanReviewAnswer, v))
}

// HumanReviewAnswerNEQ applies the NEQ predicate on the "human_review_answer" field.
func HumanReviewAnswerNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldHumanReviewAnswer, v))
}

// HumanReviewAnswerIn applies the In predicate on the "human_review_answer" field.
func HumanReviewAnswerIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldHumanReviewAnswer, vs...))
}

// HumanReviewAnswerNotIn applies the NotIn predicate on the "human_review_answer" field.
func HumanReviewAnswerNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldHumanReviewAnswer, vs...))
}

// HumanReviewAnswerGT applies the GT predicate on the "human_review_answer" field.
func HumanReviewAnswerGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldHumanReviewAnswer, v))
}

// HumanReviewAnswerGTE applies the GTE predicate on the "human_review_answer" field.
func HumanReviewAnswerGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldHumanReviewAnswer, v))
}

// HumanReviewAnswerLT applies the LT predicate on the "human_review_answer" field.
func HumanReviewAnswerLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldHumanReviewAnswer, v))
}

// HumanReviewAnswerLTE applies the LTE predicate on the "human_review_answer" field.
func HumanReviewAnswerLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldHumanReviewAnswer, v))
}

// HumanReviewAnswerContains applies the Contains predicate on the "human_review_answer" field.
func HumanReviewAnswerContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldHumanReviewAnswer, v))
}

// HumanReviewAnswerHasPrefix applies the HasPrefix predicate on the "human_review_answer" field.
func HumanReviewAnswerHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldHumanReviewAnswer, v))
}

// HumanReviewAnswerHasSuffix applies the HasSuffix predicate on the "human_review_answer" field.
func HumanReviewAnswerHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldHumanReviewAnswer, v))
}

// HumanReviewAnswerIsNil applies the IsNil predicate on the "human_review_answer" field.
func HumanReviewAnswerIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldHumanReviewAnswer))
}

// HumanReviewAnswerNotNil applies the NotNil predicate on the "human_review_answer" field.
func HumanReviewAnswerNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldHumanReviewAnswer))
}

// HumanReviewAnswerEqualFold applies the EqualFold predicate on the "human_review_answer" field.
func HumanReviewAnswerEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldHumanReviewAnswer, v))
}

// HumanReviewAnswerContainsFold applies the ContainsFold predicate on the "human_review_answer" field.
func HumanReviewAnswerContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldHumanReviewAnswer, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRetryCount, v))
}

// IsEpicEQ applies the EQ predicate on the "is_epic" field.
func IsEpicEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsEpic, v))
}

// IsEpicNEQ applies the NEQ predicate on the "is_epic" field.
func IsEpicNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIsEpic, v))
}

// ParentTaskIDEQ applies the EQ predicate on the "parent_task_id" field.
func ParentTaskIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldParentTaskID, v))
}

// ParentTaskIDNEQ applies the NEQ predicate on the "parent_task_id" field.
func ParentTaskIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldParentTaskID, v))
}

// ParentTaskIDIn applies the In predicate on the "parent_task_id" field.
func ParentTaskIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldParentTaskID, vs...))
}

// ParentTaskIDNotIn applies the NotIn predicate on the "parent_task_id" field.
func ParentTaskIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldParentTaskID, vs...))
}

// ParentTaskIDGT applies the GT predicate on the "parent_task_id" field.
func ParentTaskIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldParentTaskID, v))
}

// ParentTaskIDGTE applies the GTE predicate on the "parent_task_id" field.
func ParentTaskIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldParentTaskID, v))
}

// ParentTaskIDLT applies the LT predicate on the "parent_task_id" field.
func ParentTaskIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldParentTaskID, v))
}

// ParentTaskIDLTE applies the LTE predicate on the "parent_task_id" field.
func ParentTaskIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldParentTaskID, v))
}

// ParentTaskIDContains applies the Contains predicate on the "parent_task_id" field.
func ParentTaskIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldParentTaskID, v))
}

// ParentTaskIDHasPrefix applies the HasPrefix predicate on the "parent_task_id" field.
func ParentTaskIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldParentTaskID, v))
}

// ParentTaskIDHasSuffix applies the HasSuffix predicate on the "parent_task_id" field.
func ParentTaskIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldParentTaskID, v))
}

// ParentTaskIDIsNil applies the IsNil predicate on the "parent_task_id" field.
func ParentTaskIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldParentTaskID))
}

// ParentTaskIDNotNil applies the NotNil predicate on the "parent_task_id" field.
func ParentTaskIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldParentTaskID))
}

// ParentTaskIDEqualFold applies the EqualFold predicate on the "parent_task_id" field.
func ParentTaskIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldParentTaskID, v))
}

// ParentTaskIDContainsFold applies the ContainsFold predicate on the "parent_task_id" field.
func ParentTaskIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldParentTaskID, v))
}

// LinkedGithubIssueNumberEQ applies the EQ predicate on the "linked_github_issue_number" field.
func LinkedGithubIssueNumberEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLinkedGithubIssueNumber, v))
}

// LinkedGithubIssueNumberNEQ applies the NEQ predicate on the "linked_github_issue_number" field.
func LinkedGithubIssueNumberNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldLinkedGithubIssueNumber, v))
}

// LinkedGithubIssueNumberIn applies the In predicate on the "linked_github_issue_number" field.
func LinkedGithubIssueNumberIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldLinkedGithubIssueNumber, vs...))
}

// LinkedGithubIssueNumberNotIn applies the NotIn predicate on the "linked_github_issue_number" field.
func LinkedGithubIssueNumberNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldLinkedGithubIssueNumber, vs...))
}

// LinkedGithubIssueNumberGT applies the GT predicate on the "linked_github_issue_number" field.
func LinkedGithubIssueNumberGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldLinkedGithubIssueNumber, v))
}

// LinkedGithubIssueNumberGTE applies the GTE predicate on the "linked_github_issue_number" field.
func LinkedGithubIssueNumberGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldLinkedGithubIssueNumber, v))
}

// LinkedGithubIssueNumberLT applies the LT predicate on the "linked_github_issue_number" field.
func LinkedGithubIssueNumberLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldLinkedGithubIssueNumber, v))
}

// LinkedGithubIssueNumberLTE applies the LTE predicate on the "linked_github_issue_number" field.
func LinkedGithubIssueNumberLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldLinkedGithubIssueNumber, v))
}

// LinkedGithubIssueNumberIsNil applies the IsNil predicate on the "linked_github_issue_number" field.
func LinkedGithubIssueNumberIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldLinkedGithubIssueNumber))
}

// LinkedGithubIssueNumberNotNil applies the NotNil predicate on the "linked_github_issue_number" field.
func LinkedGithubIssueNumberNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldLinkedGithubIssueNumber))
}

// ChildDependenciesIsNil applies the IsNil predicate on the "child_dependencies" field.
func ChildDependenciesIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldChildDependencies))
}

// ChildDependenciesNotNil applies the NotNil predicate on the "child_dependencies" field.
func ChildDependenciesNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldChildDependencies))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCompletedAt))
}

// HasSubtasks applies the HasEdge predicate on the "subtasks" edge.
func HasSubtasks() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubtasksTable, SubtasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubtasksWith applies the HasEdge predicate on the "subtasks" edge with a given conditions (other predicates).
func HasSubtasksWith(preds ...predicate.Subtask) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newSubtasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentRuns applies the HasEdge predicate on the "agent_runs" edge.
func HasAgentRuns() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentRunsTable, AgentRunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentRunsWith applies the HasEdge predicate on the "agent_runs" edge with a given conditions (other predicates).
func HasAgentRunsWith(preds ...predicate.AgentRun) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newAgentRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCodeReviews applies the HasEdge predicate on the "code_reviews" edge.
func HasCodeReviews() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CodeReviewsTable, CodeReviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCodeReviewsWith applies the HasEdge predicate on the "code_reviews" edge with a given conditions (other predicates).
func HasCodeReviewsWith(preds ...predicate.CodeReview) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newCodeReviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPullRequests applies the HasEdge predicate on the "pull_requests" edge.
func HasPullRequests() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PullRequestsTable, PullRequestsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPullRequestsWith applies the HasEdge predicate on the "pull_requests" edge with a given conditions (other predicates).
func HasPullRequestsWith(preds ...predicate.PullRequest) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newPullRequestsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasNotifications applies the HasEdge predicate on the "notifications" edge.
func HasNotifications() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NotificationsTable, NotificationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNotificationsWith applies the HasEdge predicate on the "notifications" edge with a given conditions (other predicates).
func HasNotificationsWith(preds ...predicate.Notification) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newNotificationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
