package container

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// FileSnapshot is one file in a serialized Container.
type FileSnapshot struct {
	Path    string `json:"path"`
	Content []byte `json:"content,omitempty"`
	SHA256  string `json:"sha256"`
	Size    int    `json:"size"`
	Binary  bool   `json:"binary,omitempty"`
}

// ArtifactSnapshot is one artifact in wire form: the payload is kept as
// raw JSON so unknown kinds survive a round trip.
type ArtifactSnapshot struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	Payload   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	CreatedBy string          `json:"created_by"`
	Metadata  map[string]any  `json:"metadata,omitempty"`
}

// Snapshot is the full serialized form of a Container. It is what the
// persistence layer stores and what resume reconstructs from.
type Snapshot struct {
	ProjectID          string                  `json:"project_id"`
	State              State                   `json:"state"`
	Progress           float64                 `json:"progress"`
	CurrentTask        string                  `json:"current_task,omitempty"`
	TargetArchitecture *ArchitectureDoc        `json:"target_architecture,omitempty"`
	Metadata           Metadata                `json:"metadata"`
	BaselineFiles      map[string]BaselineFile `json:"baseline_files,omitempty"`
	History            []HistoryEntry          `json:"history,omitempty"`
	Artifacts          []ArtifactSnapshot      `json:"artifacts,omitempty"`
	Files              []FileSnapshot          `json:"files,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

// Snapshot serializes the full Container state.
func (c *Container) Snapshot() (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := &Snapshot{
		ProjectID:          c.ProjectID,
		State:              c.state,
		Progress:           c.progress,
		CurrentTask:        c.currentTask,
		TargetArchitecture: c.targetArchitecture,
		Metadata:           c.meta,
		History:            append([]HistoryEntry(nil), c.history...),
		CreatedAt:          c.createdAt,
		UpdatedAt:          c.updatedAt,
	}

	if c.baseline != nil {
		snap.BaselineFiles = make(map[string]BaselineFile, len(c.baseline))
		for p, bf := range c.baseline {
			snap.BaselineFiles[p] = bf
		}
	}

	for _, a := range c.orderedArtifactsLocked() {
		raw, err := EncodePayload(a.Payload)
		if err != nil {
			return nil, err
		}
		snap.Artifacts = append(snap.Artifacts, ArtifactSnapshot{
			ID:        a.ID,
			Kind:      a.Kind,
			Payload:   raw,
			CreatedAt: a.CreatedAt,
			CreatedBy: a.CreatedBy,
			Metadata:  a.Metadata,
		})
	}

	for _, p := range sortedKeys(c.files) {
		b := c.files[p]
		snap.Files = append(snap.Files, FileSnapshot{
			Path:    p,
			Content: append([]byte(nil), b...),
			SHA256:  HashBytes(b),
			Size:    len(b),
			Binary:  IsBinary(b),
		})
	}

	return snap, nil
}

// FromSnapshot reconstructs a Container. The file sink is not restored;
// the orchestrator re-attaches the workspace after loading.
func FromSnapshot(snap *Snapshot) (*Container, error) {
	if snap == nil {
		return nil, fmt.Errorf("nil snapshot")
	}
	c := New(snap.ProjectID)
	c.state = snap.State
	c.progress = snap.Progress
	c.currentTask = snap.CurrentTask
	c.targetArchitecture = snap.TargetArchitecture
	c.meta = snap.Metadata
	c.history = append([]HistoryEntry(nil), snap.History...)
	if !snap.CreatedAt.IsZero() {
		c.createdAt = snap.CreatedAt
	}
	if !snap.UpdatedAt.IsZero() {
		c.updatedAt = snap.UpdatedAt
	}

	if snap.BaselineFiles != nil {
		c.baseline = make(map[string]BaselineFile, len(snap.BaselineFiles))
		for p, bf := range snap.BaselineFiles {
			c.baseline[p] = bf
		}
	}

	for _, as := range snap.Artifacts {
		payload, err := decodePayload(as.Kind, as.Payload)
		if err != nil {
			return nil, fmt.Errorf("artifact %s: %w", as.ID, err)
		}
		c.artifacts[as.Kind] = append(c.artifacts[as.Kind], Artifact{
			ID:        as.ID,
			Kind:      as.Kind,
			Payload:   payload,
			CreatedAt: as.CreatedAt,
			CreatedBy: as.CreatedBy,
			Metadata:  as.Metadata,
		})
	}

	for _, fs := range snap.Files {
		norm, err := NormalizePath(fs.Path)
		if err != nil {
			return nil, err
		}
		c.files[norm] = append([]byte(nil), fs.Content...)
	}

	return c, nil
}

// orderedArtifactsLocked returns all artifacts sorted by creation time.
// Must be called with the lock held.
func (c *Container) orderedArtifactsLocked() []Artifact {
	var out []Artifact
	for _, bucket := range c.artifacts {
		out = append(out, bucket...)
	}
	// Stable creation order; ties broken by ID for determinism.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func sortedKeys(m map[string][]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
