// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/forgeproject/forge/ent/artifact"
	"github.com/forgeproject/forge/ent/containersnapshot"
	"github.com/forgeproject/forge/ent/event"
	"github.com/forgeproject/forge/ent/oauthaccount"
	"github.com/forgeproject/forge/ent/project"
	"github.com/forgeproject/forge/ent/ratelimitbucket"
	"github.com/forgeproject/forge/ent/schema"
	"github.com/forgeproject/forge/ent/task"
	"github.com/forgeproject/forge/ent/usagecounter"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[5].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	containersnapshotFields := schema.ContainerSnapshot{}.Fields()
	_ = containersnapshotFields
	// containersnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	containersnapshotDescUpdatedAt := containersnapshotFields[2].Descriptor()
	// containersnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	containersnapshot.DefaultUpdatedAt = containersnapshotDescUpdatedAt.Default.(func() time.Time)
	// containersnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	containersnapshot.UpdateDefaultUpdatedAt = containersnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	oauthaccountFields := schema.OAuthAccount{}.Fields()
	_ = oauthaccountFields
	// oauthaccountDescCreatedAt is the schema descriptor for created_at field.
	oauthaccountDescCreatedAt := oauthaccountFields[5].Descriptor()
	// oauthaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	oauthaccount.DefaultCreatedAt = oauthaccountDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[3].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	ratelimitbucketFields := schema.RateLimitBucket{}.Fields()
	_ = ratelimitbucketFields
	// ratelimitbucketDescCount is the schema descriptor for count field.
	ratelimitbucketDescCount := ratelimitbucketFields[3].Descriptor()
	// ratelimitbucket.DefaultCount holds the default value on creation for the count field.
	ratelimitbucket.DefaultCount = ratelimitbucketDescCount.Default.(int)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescProgress is the schema descriptor for progress field.
	taskDescProgress := taskFields[5].Descriptor()
	// task.DefaultProgress holds the default value on creation for the progress field.
	task.DefaultProgress = taskDescProgress.Default.(float64)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[18].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[19].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	usagecounterFields := schema.UsageCounter{}.Fields()
	_ = usagecounterFields
	// usagecounterDescTokensIn is the schema descriptor for tokens_in field.
	usagecounterDescTokensIn := usagecounterFields[2].Descriptor()
	// usagecounter.DefaultTokensIn holds the default value on creation for the tokens_in field.
	usagecounter.DefaultTokensIn = usagecounterDescTokensIn.Default.(int64)
	// usagecounterDescTokensOut is the schema descriptor for tokens_out field.
	usagecounterDescTokensOut := usagecounterFields[3].Descriptor()
	// usagecounter.DefaultTokensOut holds the default value on creation for the tokens_out field.
	usagecounter.DefaultTokensOut = usagecounterDescTokensOut.Default.(int64)
	// usagecounterDescCommandRuns is the schema descriptor for command_runs field.
	usagecounterDescCommandRuns := usagecounterFields[4].Descriptor()
	// usagecounter.DefaultCommandRuns holds the default value on creation for the command_runs field.
	usagecounter.DefaultCommandRuns = usagecounterDescCommandRuns.Default.(int64)
}
