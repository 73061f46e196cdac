// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeproject/forge/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (_c *TaskCreate) SetOwnerKeyHash(v string) *TaskCreate {
	_c.mutation.SetOwnerKeyHash(v)
	return _c
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_c *TaskCreate) SetOwnerUserID(v string) *TaskCreate {
	_c.mutation.SetOwnerUserID(v)
	return _c
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableOwnerUserID(v *string) *TaskCreate {
	if v != nil {
		_c.SetOwnerUserID(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *TaskCreate) SetProgress(v float64) *TaskCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *TaskCreate) SetNillableProgress(v *float64) *TaskCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetCurrentStage sets the "current_stage" field.
func (_c *TaskCreate) SetCurrentStage(v string) *TaskCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCurrentStage(v *string) *TaskCreate {
	if v != nil {
		_c.SetCurrentStage(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *TaskCreate) SetMode(v string) *TaskCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *TaskCreate) SetNillableMode(v *string) *TaskCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *TaskCreate) SetTemplateID(v string) *TaskCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTemplateID(v *string) *TaskCreate {
	if v != nil {
		_c.SetTemplateID(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *TaskCreate) SetProjectID(v string) *TaskCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableProjectID(v *string) *TaskCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *TaskCreate) SetRequestID(v string) *TaskCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRequestID(v *string) *TaskCreate {
	if v != nil {
		_c.SetRequestID(*v)
	}
	return _c
}

// SetPendingQuestions sets the "pending_questions" field.
func (_c *TaskCreate) SetPendingQuestions(v json.RawMessage) *TaskCreate {
	_c.mutation.SetPendingQuestions(v)
	return _c
}

// SetProvidedAnswers sets the "provided_answers" field.
func (_c *TaskCreate) SetProvidedAnswers(v json.RawMessage) *TaskCreate {
	_c.mutation.SetProvidedAnswers(v)
	return _c
}

// SetResumeFromStage sets the "resume_from_stage" field.
func (_c *TaskCreate) SetResumeFromStage(v string) *TaskCreate {
	_c.mutation.SetResumeFromStage(v)
	return _c
}

// SetNillableResumeFromStage sets the "resume_from_stage" field if the given value is not nil.
func (_c *TaskCreate) SetNillableResumeFromStage(v *string) *TaskCreate {
	if v != nil {
		_c.SetResumeFromStage(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *TaskCreate) SetFailureReason(v string) *TaskCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *TaskCreate) SetNillableFailureReason(v *string) *TaskCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *TaskCreate) SetWorkerID(v string) *TaskCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableWorkerID(v *string) *TaskCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *TaskCreate) SetHeartbeatAt(v time.Time) *TaskCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableHeartbeatAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *TaskCreate) SetResult(v json.RawMessage) *TaskCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := task.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.OwnerKeyHash(); !ok {
		return &ValidationError{Name: "owner_key_hash", err: errors.New(`ent: missing required field "Task.owner_key_hash"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Task.description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Task.progress"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerKeyHash(); ok {
		_spec.SetField(task.FieldOwnerKeyHash, field.TypeString, value)
		_node.OwnerKeyHash = value
	}
	if value, ok := _c.mutation.OwnerUserID(); ok {
		_spec.SetField(task.FieldOwnerUserID, field.TypeString, value)
		_node.OwnerUserID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeFloat64, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(task.FieldCurrentStage, field.TypeString, value)
		_node.CurrentStage = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(task.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(task.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(task.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(task.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.PendingQuestions(); ok {
		_spec.SetField(task.FieldPendingQuestions, field.TypeJSON, value)
		_node.PendingQuestions = value
	}
	if value, ok := _c.mutation.ProvidedAnswers(); ok {
		_spec.SetField(task.FieldProvidedAnswers, field.TypeJSON, value)
		_node.ProvidedAnswers = value
	}
	if value, ok := _c.mutation.ResumeFromStage(); ok {
		_spec.SetField(task.FieldResumeFromStage, field.TypeString, value)
		_node.ResumeFromStage = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(task.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(task.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetOwnerKeyHash(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetOwnerKeyHash(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (u *TaskUpsert) SetOwnerKeyHash(v string) *TaskUpsert {
	u.Set(task.FieldOwnerKeyHash, v)
	return u
}

// UpdateOwnerKeyHash sets the "owner_key_hash" field to the value that was provided on create.
func (u *TaskUpsert) UpdateOwnerKeyHash() *TaskUpsert {
	u.SetExcluded(task.FieldOwnerKeyHash)
	return u
}

// SetOwnerUserID sets the "owner_user_id" field.
func (u *TaskUpsert) SetOwnerUserID(v string) *TaskUpsert {
	u.Set(task.FieldOwnerUserID, v)
	return u
}

// UpdateOwnerUserID sets the "owner_user_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateOwnerUserID() *TaskUpsert {
	u.SetExcluded(task.FieldOwnerUserID)
	return u
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (u *TaskUpsert) ClearOwnerUserID() *TaskUpsert {
	u.SetNull(task.FieldOwnerUserID)
	return u
}

// SetDescription sets the "description" field.
func (u *TaskUpsert) SetDescription(v string) *TaskUpsert {
	u.Set(task.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDescription() *TaskUpsert {
	u.SetExcluded(task.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v task.Status) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetProgress sets the "progress" field.
func (u *TaskUpsert) SetProgress(v float64) *TaskUpsert {
	u.Set(task.FieldProgress, v)
	return u
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *TaskUpsert) UpdateProgress() *TaskUpsert {
	u.SetExcluded(task.FieldProgress)
	return u
}

// AddProgress adds v to the "progress" field.
func (u *TaskUpsert) AddProgress(v float64) *TaskUpsert {
	u.Add(task.FieldProgress, v)
	return u
}

// SetCurrentStage sets the "current_stage" field.
func (u *TaskUpsert) SetCurrentStage(v string) *TaskUpsert {
	u.Set(task.FieldCurrentStage, v)
	return u
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCurrentStage() *TaskUpsert {
	u.SetExcluded(task.FieldCurrentStage)
	return u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (u *TaskUpsert) ClearCurrentStage() *TaskUpsert {
	u.SetNull(task.FieldCurrentStage)
	return u
}

// SetMode sets the "mode" field.
func (u *TaskUpsert) SetMode(v string) *TaskUpsert {
	u.Set(task.FieldMode, v)
	return u
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *TaskUpsert) UpdateMode() *TaskUpsert {
	u.SetExcluded(task.FieldMode)
	return u
}

// ClearMode clears the value of the "mode" field.
func (u *TaskUpsert) ClearMode() *TaskUpsert {
	u.SetNull(task.FieldMode)
	return u
}

// SetTemplateID sets the "template_id" field.
func (u *TaskUpsert) SetTemplateID(v string) *TaskUpsert {
	u.Set(task.FieldTemplateID, v)
	return u
}

// UpdateTemplateID sets the "template_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTemplateID() *TaskUpsert {
	u.SetExcluded(task.FieldTemplateID)
	return u
}

// ClearTemplateID clears the value of the "template_id" field.
func (u *TaskUpsert) ClearTemplateID() *TaskUpsert {
	u.SetNull(task.FieldTemplateID)
	return u
}

// SetProjectID sets the "project_id" field.
func (u *TaskUpsert) SetProjectID(v string) *TaskUpsert {
	u.Set(task.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateProjectID() *TaskUpsert {
	u.SetExcluded(task.FieldProjectID)
	return u
}

// ClearProjectID clears the value of the "project_id" field.
func (u *TaskUpsert) ClearProjectID() *TaskUpsert {
	u.SetNull(task.FieldProjectID)
	return u
}

// SetRequestID sets the "request_id" field.
func (u *TaskUpsert) SetRequestID(v string) *TaskUpsert {
	u.Set(task.FieldRequestID, v)
	return u
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateRequestID() *TaskUpsert {
	u.SetExcluded(task.FieldRequestID)
	return u
}

// ClearRequestID clears the value of the "request_id" field.
func (u *TaskUpsert) ClearRequestID() *TaskUpsert {
	u.SetNull(task.FieldRequestID)
	return u
}

// SetPendingQuestions sets the "pending_questions" field.
func (u *TaskUpsert) SetPendingQuestions(v json.RawMessage) *TaskUpsert {
	u.Set(task.FieldPendingQuestions, v)
	return u
}

// UpdatePendingQuestions sets the "pending_questions" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePendingQuestions() *TaskUpsert {
	u.SetExcluded(task.FieldPendingQuestions)
	return u
}

// ClearPendingQuestions clears the value of the "pending_questions" field.
func (u *TaskUpsert) ClearPendingQuestions() *TaskUpsert {
	u.SetNull(task.FieldPendingQuestions)
	return u
}

// SetProvidedAnswers sets the "provided_answers" field.
func (u *TaskUpsert) SetProvidedAnswers(v json.RawMessage) *TaskUpsert {
	u.Set(task.FieldProvidedAnswers, v)
	return u
}

// UpdateProvidedAnswers sets the "provided_answers" field to the value that was provided on create.
func (u *TaskUpsert) UpdateProvidedAnswers() *TaskUpsert {
	u.SetExcluded(task.FieldProvidedAnswers)
	return u
}

// ClearProvidedAnswers clears the value of the "provided_answers" field.
func (u *TaskUpsert) ClearProvidedAnswers() *TaskUpsert {
	u.SetNull(task.FieldProvidedAnswers)
	return u
}

// SetResumeFromStage sets the "resume_from_stage" field.
func (u *TaskUpsert) SetResumeFromStage(v string) *TaskUpsert {
	u.Set(task.FieldResumeFromStage, v)
	return u
}

// UpdateResumeFromStage sets the "resume_from_stage" field to the value that was provided on create.
func (u *TaskUpsert) UpdateResumeFromStage() *TaskUpsert {
	u.SetExcluded(task.FieldResumeFromStage)
	return u
}

// ClearResumeFromStage clears the value of the "resume_from_stage" field.
func (u *TaskUpsert) ClearResumeFromStage() *TaskUpsert {
	u.SetNull(task.FieldResumeFromStage)
	return u
}

// SetFailureReason sets the "failure_reason" field.
func (u *TaskUpsert) SetFailureReason(v string) *TaskUpsert {
	u.Set(task.FieldFailureReason, v)
	return u
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *TaskUpsert) UpdateFailureReason() *TaskUpsert {
	u.SetExcluded(task.FieldFailureReason)
	return u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *TaskUpsert) ClearFailureReason() *TaskUpsert {
	u.SetNull(task.FieldFailureReason)
	return u
}

// SetWorkerID sets the "worker_id" field.
func (u *TaskUpsert) SetWorkerID(v string) *TaskUpsert {
	u.Set(task.FieldWorkerID, v)
	return u
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateWorkerID() *TaskUpsert {
	u.SetExcluded(task.FieldWorkerID)
	return u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *TaskUpsert) ClearWorkerID() *TaskUpsert {
	u.SetNull(task.FieldWorkerID)
	return u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *TaskUpsert) SetHeartbeatAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldHeartbeatAt, v)
	return u
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateHeartbeatAt() *TaskUpsert {
	u.SetExcluded(task.FieldHeartbeatAt)
	return u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *TaskUpsert) ClearHeartbeatAt() *TaskUpsert {
	u.SetNull(task.FieldHeartbeatAt)
	return u
}

// SetResult sets the "result" field.
func (u *TaskUpsert) SetResult(v json.RawMessage) *TaskUpsert {
	u.Set(task.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsert) UpdateResult() *TaskUpsert {
	u.SetExcluded(task.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsert) ClearResult() *TaskUpsert {
	u.SetNull(task.FieldResult)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *TaskUpsert) SetCreatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCreatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsert) SetUpdatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUpdatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldUpdatedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsert) SetCompletedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCompletedAt() *TaskUpsert {
	u.SetExcluded(task.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsert) ClearCompletedAt() *TaskUpsert {
	u.SetNull(task.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(task.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (u *TaskUpsertOne) SetOwnerKeyHash(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetOwnerKeyHash(v)
	})
}

// UpdateOwnerKeyHash sets the "owner_key_hash" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateOwnerKeyHash() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOwnerKeyHash()
	})
}

// SetOwnerUserID sets the "owner_user_id" field.
func (u *TaskUpsertOne) SetOwnerUserID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetOwnerUserID(v)
	})
}

// UpdateOwnerUserID sets the "owner_user_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateOwnerUserID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOwnerUserID()
	})
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (u *TaskUpsertOne) ClearOwnerUserID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearOwnerUserID()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertOne) SetDescription(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v task.Status) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetProgress sets the "progress" field.
func (u *TaskUpsertOne) SetProgress(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *TaskUpsertOne) AddProgress(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateProgress() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProgress()
	})
}

// SetCurrentStage sets the "current_stage" field.
func (u *TaskUpsertOne) SetCurrentStage(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCurrentStage(v)
	})
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCurrentStage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCurrentStage()
	})
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (u *TaskUpsertOne) ClearCurrentStage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCurrentStage()
	})
}

// SetMode sets the "mode" field.
func (u *TaskUpsertOne) SetMode(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateMode() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateMode()
	})
}

// ClearMode clears the value of the "mode" field.
func (u *TaskUpsertOne) ClearMode() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearMode()
	})
}

// SetTemplateID sets the "template_id" field.
func (u *TaskUpsertOne) SetTemplateID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTemplateID(v)
	})
}

// UpdateTemplateID sets the "template_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTemplateID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTemplateID()
	})
}

// ClearTemplateID clears the value of the "template_id" field.
func (u *TaskUpsertOne) ClearTemplateID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTemplateID()
	})
}

// SetProjectID sets the "project_id" field.
func (u *TaskUpsertOne) SetProjectID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateProjectID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProjectID()
	})
}

// ClearProjectID clears the value of the "project_id" field.
func (u *TaskUpsertOne) ClearProjectID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearProjectID()
	})
}

// SetRequestID sets the "request_id" field.
func (u *TaskUpsertOne) SetRequestID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetRequestID(v)
	})
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateRequestID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRequestID()
	})
}

// ClearRequestID clears the value of the "request_id" field.
func (u *TaskUpsertOne) ClearRequestID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearRequestID()
	})
}

// SetPendingQuestions sets the "pending_questions" field.
func (u *TaskUpsertOne) SetPendingQuestions(v json.RawMessage) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPendingQuestions(v)
	})
}

// UpdatePendingQuestions sets the "pending_questions" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePendingQuestions() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePendingQuestions()
	})
}

// ClearPendingQuestions clears the value of the "pending_questions" field.
func (u *TaskUpsertOne) ClearPendingQuestions() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPendingQuestions()
	})
}

// SetProvidedAnswers sets the "provided_answers" field.
func (u *TaskUpsertOne) SetProvidedAnswers(v json.RawMessage) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetProvidedAnswers(v)
	})
}

// UpdateProvidedAnswers sets the "provided_answers" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateProvidedAnswers() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProvidedAnswers()
	})
}

// ClearProvidedAnswers clears the value of the "provided_answers" field.
func (u *TaskUpsertOne) ClearProvidedAnswers() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearProvidedAnswers()
	})
}

// SetResumeFromStage sets the "resume_from_stage" field.
func (u *TaskUpsertOne) SetResumeFromStage(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetResumeFromStage(v)
	})
}

// UpdateResumeFromStage sets the "resume_from_stage" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateResumeFromStage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateResumeFromStage()
	})
}

// ClearResumeFromStage clears the value of the "resume_from_stage" field.
func (u *TaskUpsertOne) ClearResumeFromStage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearResumeFromStage()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *TaskUpsertOne) SetFailureReason(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateFailureReason() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *TaskUpsertOne) ClearFailureReason() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearFailureReason()
	})
}

// SetWorkerID sets the "worker_id" field.
func (u *TaskUpsertOne) SetWorkerID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetWorkerID(v)
	})
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateWorkerID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateWorkerID()
	})
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *TaskUpsertOne) ClearWorkerID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearWorkerID()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *TaskUpsertOne) SetHeartbeatAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateHeartbeatAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *TaskUpsertOne) ClearHeartbeatAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearHeartbeatAt()
	})
}

// SetResult sets the "result" field.
func (u *TaskUpsertOne) SetResult(v json.RawMessage) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateResult() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsertOne) ClearResult() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearResult()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *TaskUpsertOne) SetCreatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCreatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertOne) SetUpdatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUpdatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertOne) SetCompletedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertOne) ClearCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskUpsertOne.ID is not supported by MySQL driver. Use TaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetOwnerKeyHash(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(task.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (u *TaskUpsertBulk) SetOwnerKeyHash(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetOwnerKeyHash(v)
	})
}

// UpdateOwnerKeyHash sets the "owner_key_hash" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateOwnerKeyHash() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOwnerKeyHash()
	})
}

// SetOwnerUserID sets the "owner_user_id" field.
func (u *TaskUpsertBulk) SetOwnerUserID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetOwnerUserID(v)
	})
}

// UpdateOwnerUserID sets the "owner_user_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateOwnerUserID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOwnerUserID()
	})
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (u *TaskUpsertBulk) ClearOwnerUserID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearOwnerUserID()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertBulk) SetDescription(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v task.Status) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetProgress sets the "progress" field.
func (u *TaskUpsertBulk) SetProgress(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *TaskUpsertBulk) AddProgress(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateProgress() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProgress()
	})
}

// SetCurrentStage sets the "current_stage" field.
func (u *TaskUpsertBulk) SetCurrentStage(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCurrentStage(v)
	})
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCurrentStage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCurrentStage()
	})
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (u *TaskUpsertBulk) ClearCurrentStage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCurrentStage()
	})
}

// SetMode sets the "mode" field.
func (u *TaskUpsertBulk) SetMode(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateMode() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateMode()
	})
}

// ClearMode clears the value of the "mode" field.
func (u *TaskUpsertBulk) ClearMode() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearMode()
	})
}

// SetTemplateID sets the "template_id" field.
func (u *TaskUpsertBulk) SetTemplateID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTemplateID(v)
	})
}

// UpdateTemplateID sets the "template_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTemplateID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTemplateID()
	})
}

// ClearTemplateID clears the value of the "template_id" field.
func (u *TaskUpsertBulk) ClearTemplateID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTemplateID()
	})
}

// SetProjectID sets the "project_id" field.
func (u *TaskUpsertBulk) SetProjectID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateProjectID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProjectID()
	})
}

// ClearProjectID clears the value of the "project_id" field.
func (u *TaskUpsertBulk) ClearProjectID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearProjectID()
	})
}

// SetRequestID sets the "request_id" field.
func (u *TaskUpsertBulk) SetRequestID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetRequestID(v)
	})
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateRequestID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRequestID()
	})
}

// ClearRequestID clears the value of the "request_id" field.
func (u *TaskUpsertBulk) ClearRequestID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearRequestID()
	})
}

// SetPendingQuestions sets the "pending_questions" field.
func (u *TaskUpsertBulk) SetPendingQuestions(v json.RawMessage) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPendingQuestions(v)
	})
}

// UpdatePendingQuestions sets the "pending_questions" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePendingQuestions() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePendingQuestions()
	})
}

// ClearPendingQuestions clears the value of the "pending_questions" field.
func (u *TaskUpsertBulk) ClearPendingQuestions() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPendingQuestions()
	})
}

// SetProvidedAnswers sets the "provided_answers" field.
func (u *TaskUpsertBulk) SetProvidedAnswers(v json.RawMessage) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetProvidedAnswers(v)
	})
}

// UpdateProvidedAnswers sets the "provided_answers" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateProvidedAnswers() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProvidedAnswers()
	})
}

// ClearProvidedAnswers clears the value of the "provided_answers" field.
func (u *TaskUpsertBulk) ClearProvidedAnswers() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearProvidedAnswers()
	})
}

// SetResumeFromStage sets the "resume_from_stage" field.
func (u *TaskUpsertBulk) SetResumeFromStage(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetResumeFromStage(v)
	})
}

// UpdateResumeFromStage sets the "resume_from_stage" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateResumeFromStage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateResumeFromStage()
	})
}

// ClearResumeFromStage clears the value of the "resume_from_stage" field.
func (u *TaskUpsertBulk) ClearResumeFromStage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearResumeFromStage()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *TaskUpsertBulk) SetFailureReason(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateFailureReason() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *TaskUpsertBulk) ClearFailureReason() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearFailureReason()
	})
}

// SetWorkerID sets the "worker_id" field.
func (u *TaskUpsertBulk) SetWorkerID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetWorkerID(v)
	})
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateWorkerID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateWorkerID()
	})
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *TaskUpsertBulk) ClearWorkerID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearWorkerID()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *TaskUpsertBulk) SetHeartbeatAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateHeartbeatAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *TaskUpsertBulk) ClearHeartbeatAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearHeartbeatAt()
	})
}

// SetResult sets the "result" field.
func (u *TaskUpsertBulk) SetResult(v json.RawMessage) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateResult() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsertBulk) ClearResult() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearResult()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *TaskUpsertBulk) SetCreatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCreatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertBulk) SetUpdatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUpdatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertBulk) SetCompletedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertBulk) ClearCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
