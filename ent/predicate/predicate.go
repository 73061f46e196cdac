// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// ContainerSnapshot is the predicate function for containersnapshot builders.
type ContainerSnapshot func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// OAuthAccount is the predicate function for oauthaccount builders.
type OAuthAccount func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// RateLimitBucket is the predicate function for ratelimitbucket builders.
type RateLimitBucket func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskFile is the predicate function for taskfile builders.
type TaskFile func(*sql.Selector)

// UsageCounter is the predicate function for usagecounter builders.
type UsageCounter func(*sql.Selector)
