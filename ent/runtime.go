// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/conductor-ci/conductor/ent/agentrun"
	"github.com/conductor-ci/conductor/ent/codereview"
	"github.com/conductor-ci/conductor/ent/job"
	"github.com/conductor-ci/conductor/ent/notification"
	"github.com/conductor-ci/conductor/ent/pullrequest"
	"github.com/conductor-ci/conductor/ent/schema"
	"github.com/conductor-ci/conductor/ent/subtask"
	"github.com/conductor-ci/conductor/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentrunFields := schema.AgentRun{}.Fields()
	_ = agentrunFields
	// agentrunDescInputTokens is the schema descriptor for input_tokens field.
	agentrunDescInputTokens := agentrunFields[6].Descriptor()
	// agentrun.DefaultInputTokens holds the default value on creation for the input_tokens field.
	agentrun.DefaultInputTokens = agentrunDescInputTokens.Default.(int64)
	// agentrun.InputTokensValidator is a validator for the "input_tokens" field. It is called by the builders before save.
	agentrun.InputTokensValidator = agentrunDescInputTokens.Validators[0].(func(int64) error)
	// agentrunDescOutputTokens is the schema descriptor for output_tokens field.
	agentrunDescOutputTokens := agentrunFields[7].Descriptor()
	// agentrun.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	agentrun.DefaultOutputTokens = agentrunDescOutputTokens.Default.(int64)
	// agentrun.OutputTokensValidator is a validator for the "output_tokens" field. It is called by the builders before save.
	agentrun.OutputTokensValidator = agentrunDescOutputTokens.Validators[0].(func(int64) error)
	// agentrunDescTotalCost is the schema descriptor for total_cost field.
	agentrunDescTotalCost := agentrunFields[8].Descriptor()
	// agentrun.DefaultTotalCost holds the default value on creation for the total_cost field.
	agentrun.DefaultTotalCost = agentrunDescTotalCost.Default.(float64)
	// agentrunDescStartedAt is the schema descriptor for started_at field.
	agentrunDescStartedAt := agentrunFields[10].Descriptor()
	// agentrun.DefaultStartedAt holds the default value on creation for the started_at field.
	agentrun.DefaultStartedAt = agentrunDescStartedAt.Default.(func() time.Time)
	codereviewFields := schema.CodeReview{}.Fields()
	_ = codereviewFields
	// codereviewDescIteration is the schema descriptor for iteration field.
	codereviewDescIteration := codereviewFields[4].Descriptor()
	// codereview.IterationValidator is a validator for the "iteration" field. It is called by the builders before save.
	codereview.IterationValidator = codereviewDescIteration.Validators[0].(func(int) error)
	// codereviewDescCreatedAt is the schema descriptor for created_at field.
	codereviewDescCreatedAt := codereviewFields[7].Descriptor()
	// codereview.DefaultCreatedAt holds the default value on creation for the created_at field.
	codereview.DefaultCreatedAt = codereviewDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescAttempts is the schema descriptor for attempts field.
	jobDescAttempts := jobFields[5].Descriptor()
	// job.DefaultAttempts holds the default value on creation for the attempts field.
	job.DefaultAttempts = jobDescAttempts.Default.(int)
	// job.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	job.AttemptsValidator = jobDescAttempts.Validators[0].(func(int) error)
	// jobDescMaxAttempts is the schema descriptor for max_attempts field.
	jobDescMaxAttempts := jobFields[6].Descriptor()
	// job.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	job.DefaultMaxAttempts = jobDescMaxAttempts.Default.(int)
	// jobDescRunAt is the schema descriptor for run_at field.
	jobDescRunAt := jobFields[7].Descriptor()
	// job.DefaultRunAt holds the default value on creation for the run_at field.
	job.DefaultRunAt = jobDescRunAt.Default.(func() time.Time)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[13].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[14].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[7].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	pullrequestFields := schema.PullRequest{}.Fields()
	_ = pullrequestFields
	// pullrequestDescReviewsPassed is the schema descriptor for reviews_passed field.
	pullrequestDescReviewsPassed := pullrequestFields[10].Descriptor()
	// pullrequest.DefaultReviewsPassed holds the default value on creation for the reviews_passed field.
	pullrequest.DefaultReviewsPassed = pullrequestDescReviewsPassed.Default.(bool)
	// pullrequestDescCreatedAt is the schema descriptor for created_at field.
	pullrequestDescCreatedAt := pullrequestFields[12].Descriptor()
	// pullrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	pullrequest.DefaultCreatedAt = pullrequestDescCreatedAt.Default.(func() time.Time)
	// pullrequestDescUpdatedAt is the schema descriptor for updated_at field.
	pullrequestDescUpdatedAt := pullrequestFields[13].Descriptor()
	// pullrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pullrequest.DefaultUpdatedAt = pullrequestDescUpdatedAt.Default.(func() time.Time)
	// pullrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pullrequest.UpdateDefaultUpdatedAt = pullrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	subtaskFields := schema.Subtask{}.Fields()
	_ = subtaskFields
	// subtaskDescSubprojectPath is the schema descriptor for subproject_path field.
	subtaskDescSubprojectPath := subtaskFields[2].Descriptor()
	// subtask.DefaultSubprojectPath holds the default value on creation for the subproject_path field.
	subtask.DefaultSubprojectPath = subtaskDescSubprojectPath.Default.(string)
	// subtaskDescCreatedAt is the schema descriptor for created_at field.
	subtaskDescCreatedAt := subtaskFields[10].Descriptor()
	// subtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	subtask.DefaultCreatedAt = subtaskDescCreatedAt.Default.(func() time.Time)
	// subtaskDescUpdatedAt is the schema descriptor for updated_at field.
	subtaskDescUpdatedAt := subtaskFields[11].Descriptor()
	// subtask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subtask.DefaultUpdatedAt = subtaskDescUpdatedAt.Default.(func() time.Time)
	// subtask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subtask.UpdateDefaultUpdatedAt = subtaskDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescRetryCount is the schema descriptor for retry_count field.
	taskDescRetryCount := taskFields[15].Descriptor()
	// task.DefaultRetryCount holds the default value on creation for the retry_count field.
	task.DefaultRetryCount = taskDescRetryCount.Default.(int)
	// task.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	task.RetryCountValidator = taskDescRetryCount.Validators[0].(func(int) error)
	// taskDescIsEpic is the schema descriptor for is_epic field.
	taskDescIsEpic := taskFields[16].Descriptor()
	// task.DefaultIsEpic holds the default value on creation for the is_epic field.
	task.DefaultIsEpic = taskDescIsEpic.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[20].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[21].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
}
