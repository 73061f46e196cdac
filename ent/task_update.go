// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/forgeproject/forge/ent/predicate"
	"github.com/forgeproject/forge/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (_u *TaskUpdate) SetOwnerKeyHash(v string) *TaskUpdate {
	_u.mutation.SetOwnerKeyHash(v)
	return _u
}

// SetNillableOwnerKeyHash sets the "owner_key_hash" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableOwnerKeyHash(v *string) *TaskUpdate {
	if v != nil {
		_u.SetOwnerKeyHash(*v)
	}
	return _u
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_u *TaskUpdate) SetOwnerUserID(v string) *TaskUpdate {
	_u.mutation.SetOwnerUserID(v)
	return _u
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableOwnerUserID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetOwnerUserID(*v)
	}
	return _u
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (_u *TaskUpdate) ClearOwnerUserID() *TaskUpdate {
	_u.mutation.ClearOwnerUserID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *TaskUpdate) SetProgress(v float64) *TaskUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProgress(v *float64) *TaskUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *TaskUpdate) AddProgress(v float64) *TaskUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *TaskUpdate) SetCurrentStage(v string) *TaskUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCurrentStage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *TaskUpdate) ClearCurrentStage() *TaskUpdate {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetMode sets the "mode" field.
func (_u *TaskUpdate) SetMode(v string) *TaskUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMode(v *string) *TaskUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// ClearMode clears the value of the "mode" field.
func (_u *TaskUpdate) ClearMode() *TaskUpdate {
	_u.mutation.ClearMode()
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *TaskUpdate) SetTemplateID(v string) *TaskUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTemplateID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *TaskUpdate) ClearTemplateID() *TaskUpdate {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TaskUpdate) SetProjectID(v string) *TaskUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProjectID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *TaskUpdate) ClearProjectID() *TaskUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *TaskUpdate) SetRequestID(v string) *TaskUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRequestID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *TaskUpdate) ClearRequestID() *TaskUpdate {
	_u.mutation.ClearRequestID()
	return _u
}

// SetPendingQuestions sets the "pending_questions" field.
func (_u *TaskUpdate) SetPendingQuestions(v json.RawMessage) *TaskUpdate {
	_u.mutation.SetPendingQuestions(v)
	return _u
}

// AppendPendingQuestions appends value to the "pending_questions" field.
func (_u *TaskUpdate) AppendPendingQuestions(v json.RawMessage) *TaskUpdate {
	_u.mutation.AppendPendingQuestions(v)
	return _u
}

// ClearPendingQuestions clears the value of the "pending_questions" field.
func (_u *TaskUpdate) ClearPendingQuestions() *TaskUpdate {
	_u.mutation.ClearPendingQuestions()
	return _u
}

// SetProvidedAnswers sets the "provided_answers" field.
func (_u *TaskUpdate) SetProvidedAnswers(v json.RawMessage) *TaskUpdate {
	_u.mutation.SetProvidedAnswers(v)
	return _u
}

// AppendProvidedAnswers appends value to the "provided_answers" field.
func (_u *TaskUpdate) AppendProvidedAnswers(v json.RawMessage) *TaskUpdate {
	_u.mutation.AppendProvidedAnswers(v)
	return _u
}

// ClearProvidedAnswers clears the value of the "provided_answers" field.
func (_u *TaskUpdate) ClearProvidedAnswers() *TaskUpdate {
	_u.mutation.ClearProvidedAnswers()
	return _u
}

// SetResumeFromStage sets the "resume_from_stage" field.
func (_u *TaskUpdate) SetResumeFromStage(v string) *TaskUpdate {
	_u.mutation.SetResumeFromStage(v)
	return _u
}

// SetNillableResumeFromStage sets the "resume_from_stage" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableResumeFromStage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetResumeFromStage(*v)
	}
	return _u
}

// ClearResumeFromStage clears the value of the "resume_from_stage" field.
func (_u *TaskUpdate) ClearResumeFromStage() *TaskUpdate {
	_u.mutation.ClearResumeFromStage()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *TaskUpdate) SetFailureReason(v string) *TaskUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFailureReason(v *string) *TaskUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *TaskUpdate) ClearFailureReason() *TaskUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *TaskUpdate) SetWorkerID(v string) *TaskUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableWorkerID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *TaskUpdate) ClearWorkerID() *TaskUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *TaskUpdate) SetHeartbeatAt(v time.Time) *TaskUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableHeartbeatAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *TaskUpdate) ClearHeartbeatAt() *TaskUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskUpdate) SetResult(v json.RawMessage) *TaskUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *TaskUpdate) AppendResult(v json.RawMessage) *TaskUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskUpdate) ClearResult() *TaskUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TaskUpdate) SetCreatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCreatedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerKeyHash(); ok {
		_spec.SetField(task.FieldOwnerKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerUserID(); ok {
		_spec.SetField(task.FieldOwnerUserID, field.TypeString, value)
	}
	if _u.mutation.OwnerUserIDCleared() {
		_spec.ClearField(task.FieldOwnerUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(task.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(task.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(task.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(task.FieldMode, field.TypeString, value)
	}
	if _u.mutation.ModeCleared() {
		_spec.ClearField(task.FieldMode, field.TypeString)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(task.FieldTemplateID, field.TypeString, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(task.FieldTemplateID, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(task.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(task.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(task.FieldRequestID, field.TypeString, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(task.FieldRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.PendingQuestions(); ok {
		_spec.SetField(task.FieldPendingQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPendingQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldPendingQuestions, value)
		})
	}
	if _u.mutation.PendingQuestionsCleared() {
		_spec.ClearField(task.FieldPendingQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProvidedAnswers(); ok {
		_spec.SetField(task.FieldProvidedAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProvidedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldProvidedAnswers, value)
		})
	}
	if _u.mutation.ProvidedAnswersCleared() {
		_spec.ClearField(task.FieldProvidedAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResumeFromStage(); ok {
		_spec.SetField(task.FieldResumeFromStage, field.TypeString, value)
	}
	if _u.mutation.ResumeFromStageCleared() {
		_spec.ClearField(task.FieldResumeFromStage, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(task.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(task.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(task.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(task.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(task.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(task.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (_u *TaskUpdateOne) SetOwnerKeyHash(v string) *TaskUpdateOne {
	_u.mutation.SetOwnerKeyHash(v)
	return _u
}

// SetNillableOwnerKeyHash sets the "owner_key_hash" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableOwnerKeyHash(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetOwnerKeyHash(*v)
	}
	return _u
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_u *TaskUpdateOne) SetOwnerUserID(v string) *TaskUpdateOne {
	_u.mutation.SetOwnerUserID(v)
	return _u
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableOwnerUserID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetOwnerUserID(*v)
	}
	return _u
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (_u *TaskUpdateOne) ClearOwnerUserID() *TaskUpdateOne {
	_u.mutation.ClearOwnerUserID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *TaskUpdateOne) SetProgress(v float64) *TaskUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProgress(v *float64) *TaskUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *TaskUpdateOne) AddProgress(v float64) *TaskUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *TaskUpdateOne) SetCurrentStage(v string) *TaskUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCurrentStage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *TaskUpdateOne) ClearCurrentStage() *TaskUpdateOne {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetMode sets the "mode" field.
func (_u *TaskUpdateOne) SetMode(v string) *TaskUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMode(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// ClearMode clears the value of the "mode" field.
func (_u *TaskUpdateOne) ClearMode() *TaskUpdateOne {
	_u.mutation.ClearMode()
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *TaskUpdateOne) SetTemplateID(v string) *TaskUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTemplateID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *TaskUpdateOne) ClearTemplateID() *TaskUpdateOne {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TaskUpdateOne) SetProjectID(v string) *TaskUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProjectID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *TaskUpdateOne) ClearProjectID() *TaskUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *TaskUpdateOne) SetRequestID(v string) *TaskUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRequestID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *TaskUpdateOne) ClearRequestID() *TaskUpdateOne {
	_u.mutation.ClearRequestID()
	return _u
}

// SetPendingQuestions sets the "pending_questions" field.
func (_u *TaskUpdateOne) SetPendingQuestions(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.SetPendingQuestions(v)
	return _u
}

// AppendPendingQuestions appends value to the "pending_questions" field.
func (_u *TaskUpdateOne) AppendPendingQuestions(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.AppendPendingQuestions(v)
	return _u
}

// ClearPendingQuestions clears the value of the "pending_questions" field.
func (_u *TaskUpdateOne) ClearPendingQuestions() *TaskUpdateOne {
	_u.mutation.ClearPendingQuestions()
	return _u
}

// SetProvidedAnswers sets the "provided_answers" field.
func (_u *TaskUpdateOne) SetProvidedAnswers(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.SetProvidedAnswers(v)
	return _u
}

// AppendProvidedAnswers appends value to the "provided_answers" field.
func (_u *TaskUpdateOne) AppendProvidedAnswers(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.AppendProvidedAnswers(v)
	return _u
}

// ClearProvidedAnswers clears the value of the "provided_answers" field.
func (_u *TaskUpdateOne) ClearProvidedAnswers() *TaskUpdateOne {
	_u.mutation.ClearProvidedAnswers()
	return _u
}

// SetResumeFromStage sets the "resume_from_stage" field.
func (_u *TaskUpdateOne) SetResumeFromStage(v string) *TaskUpdateOne {
	_u.mutation.SetResumeFromStage(v)
	return _u
}

// SetNillableResumeFromStage sets the "resume_from_stage" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableResumeFromStage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetResumeFromStage(*v)
	}
	return _u
}

// ClearResumeFromStage clears the value of the "resume_from_stage" field.
func (_u *TaskUpdateOne) ClearResumeFromStage() *TaskUpdateOne {
	_u.mutation.ClearResumeFromStage()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *TaskUpdateOne) SetFailureReason(v string) *TaskUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFailureReason(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *TaskUpdateOne) ClearFailureReason() *TaskUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *TaskUpdateOne) SetWorkerID(v string) *TaskUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableWorkerID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *TaskUpdateOne) ClearWorkerID() *TaskUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *TaskUpdateOne) SetHeartbeatAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableHeartbeatAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *TaskUpdateOne) ClearHeartbeatAt() *TaskUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskUpdateOne) SetResult(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *TaskUpdateOne) AppendResult(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskUpdateOne) ClearResult() *TaskUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TaskUpdateOne) SetCreatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCreatedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerKeyHash(); ok {
		_spec.SetField(task.FieldOwnerKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerUserID(); ok {
		_spec.SetField(task.FieldOwnerUserID, field.TypeString, value)
	}
	if _u.mutation.OwnerUserIDCleared() {
		_spec.ClearField(task.FieldOwnerUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(task.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(task.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(task.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(task.FieldMode, field.TypeString, value)
	}
	if _u.mutation.ModeCleared() {
		_spec.ClearField(task.FieldMode, field.TypeString)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(task.FieldTemplateID, field.TypeString, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(task.FieldTemplateID, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(task.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(task.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(task.FieldRequestID, field.TypeString, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(task.FieldRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.PendingQuestions(); ok {
		_spec.SetField(task.FieldPendingQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPendingQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldPendingQuestions, value)
		})
	}
	if _u.mutation.PendingQuestionsCleared() {
		_spec.ClearField(task.FieldPendingQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProvidedAnswers(); ok {
		_spec.SetField(task.FieldProvidedAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProvidedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldProvidedAnswers, value)
		})
	}
	if _u.mutation.ProvidedAnswersCleared() {
		_spec.ClearField(task.FieldProvidedAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResumeFromStage(); ok {
		_spec.SetField(task.FieldResumeFromStage, field.TypeString, value)
	}
	if _u.mutation.ResumeFromStageCleared() {
		_spec.ClearField(task.FieldResumeFromStage, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(task.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(task.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(task.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(task.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(task.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(task.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
