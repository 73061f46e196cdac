package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/forgeproject/forge/pkg/container"
	"github.com/forgeproject/forge/pkg/queue"
	"github.com/forgeproject/forge/pkg/store"
)

// artifactResponse is the JSON projection of one persisted artifact.
type artifactResponse struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	ProducedBy string          `json:"produced_by"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  string          `json:"created_at"`
}

// listArtifactsHandler handles GET /api/tasks/:id/artifacts?kind=.
func (s *Server) listArtifactsHandler(c *gin.Context) {
	t, ok := s.taskForOwner(c)
	if !ok {
		return
	}
	artifacts, err := s.store.ListArtifacts(c.Request.Context(), t.ID)
	if err != nil {
		internalError(c, err)
		return
	}

	kind := c.Query("kind")
	out := make([]artifactResponse, 0, len(artifacts))
	for _, a := range artifacts {
		if kind != "" && a.Kind != kind {
			continue
		}
		out = append(out, artifactResponse{
			ID:         a.ID,
			Kind:       a.Kind,
			ProducedBy: a.ProducedBy,
			Payload:    a.Payload,
			CreatedAt:  a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	c.JSON(http.StatusOK, gin.H{"task_id": t.ID, "artifacts": out})
}

// taskStateHandler handles GET /api/tasks/:id/state: the last persisted
// container snapshot.
func (s *Server) taskStateHandler(c *gin.Context) {
	t, ok := s.taskForOwner(c)
	if !ok {
		return
	}
	snap, err := s.store.LoadSnapshot(c.Request.Context(), t.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c, "task has no persisted state yet")
			return
		}
		internalError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", snap)
}

// taskFiles loads a task's persisted file bodies, falling back to the
// snapshot when file persistence is disabled.
func (s *Server) taskFiles(c *gin.Context, taskID string) (map[string][]byte, bool) {
	ctx := c.Request.Context()
	files, err := s.store.LoadFiles(ctx, taskID)
	if err == nil && len(files) > 0 {
		return files, true
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		internalError(c, err)
		return nil, false
	}

	raw, err := s.store.LoadSnapshot(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c, "task has no files yet")
			return nil, false
		}
		internalError(c, err)
		return nil, false
	}
	var snap container.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		internalError(c, err)
		return nil, false
	}
	files = make(map[string][]byte, len(snap.Files))
	for _, f := range snap.Files {
		files[f.Path] = f.Content
	}
	return files, true
}

// listFilesHandler handles GET /api/tasks/:id/files.
func (s *Server) listFilesHandler(c *gin.Context) {
	t, ok := s.taskForOwner(c)
	if !ok {
		return
	}
	files, ok := s.taskFiles(c, t.ID)
	if !ok {
		return
	}

	type fileInfo struct {
		Path string `json:"path"`
		Size int    `json:"size"`
	}
	out := make([]fileInfo, 0, len(files))
	for p, content := range files {
		out = append(out, fileInfo{Path: p, Size: len(content)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	c.JSON(http.StatusOK, gin.H{"task_id": t.ID, "files": out})
}

// getFileHandler handles GET /api/tasks/:id/files/*path.
func (s *Server) getFileHandler(c *gin.Context) {
	t, ok := s.taskForOwner(c)
	if !ok {
		return
	}
	rel := strings.TrimPrefix(c.Param("path"), "/")
	path, err := container.NormalizePath(rel)
	if err != nil {
		badRequest(c, "invalid file path: %v", err)
		return
	}

	files, ok := s.taskFiles(c, t.ID)
	if !ok {
		return
	}
	content, found := files[path]
	if !found {
		notFound(c, "file not found")
		return
	}

	contentType := "application/octet-stream"
	if utf8.Valid(content) && !container.IsBinary(content) {
		contentType = "text/plain; charset=utf-8"
	}
	c.Data(http.StatusOK, contentType, content)
}

// downloadZipHandler handles GET /api/tasks/:id/download.zip.
func (s *Server) downloadZipHandler(c *gin.Context) {
	if !s.checkRate(c, queue.ScopeDownload) {
		return
	}
	t, ok := s.taskForOwner(c)
	if !ok {
		return
	}
	files, ok := s.taskFiles(c, t.ID)
	if !ok {
		return
	}

	archive, err := buildZip(files)
	if err != nil {
		internalError(c, err)
		return
	}
	serveZip(c, fmt.Sprintf("task-%s.zip", shortID(t.ID)), archive)
}

// gitExportZipHandler handles GET /api/tasks/:id/git-export.zip: the
// git bundle artifact plus the final file tree, ready to commit.
func (s *Server) gitExportZipHandler(c *gin.Context) {
	if !s.checkRate(c, queue.ScopeDownload) {
		return
	}
	t, ok := s.taskForOwner(c)
	if !ok {
		return
	}

	bundle, found, err := s.latestGitExport(c, t.ID)
	if err != nil {
		internalError(c, err)
		return
	}
	if !found {
		notFound(c, "task has no git export yet")
		return
	}

	files, ok := s.taskFiles(c, t.ID)
	if !ok {
		return
	}
	merged := make(map[string][]byte, len(files)+len(bundle.Files))
	for p, content := range files {
		merged[p] = content
	}
	for name, content := range bundle.Files {
		merged[name] = []byte(content)
	}

	archive, err := buildZip(merged)
	if err != nil {
		internalError(c, err)
		return
	}
	serveZip(c, fmt.Sprintf("task-%s-git-export.zip", shortID(t.ID)), archive)
}

// createPRHandler handles POST /api/tasks/:id/create-pr: returns the
// branch name, title, and patch summary a client needs to open a pull
// request from the export bundle.
func (s *Server) createPRHandler(c *gin.Context) {
	t, ok := s.taskForOwner(c)
	if !ok {
		return
	}
	if t.Status != store.StatusCompleted {
		conflict(c, "task is not completed")
		return
	}

	artifacts, err := s.store.ListArtifacts(c.Request.Context(), t.ID)
	if err != nil {
		internalError(c, err)
		return
	}
	var stats *container.PatchStats
	for i := len(artifacts) - 1; i >= 0; i-- {
		if artifacts[i].Kind != string(container.KindPatchDiff) {
			continue
		}
		var diff container.PatchDiff
		if err := json.Unmarshal(artifacts[i].Payload, &diff); err == nil {
			stats = &diff.Stats
		}
		break
	}

	title := t.Description
	if idx := strings.IndexByte(title, '\n'); idx > 0 {
		title = title[:idx]
	}
	if len(title) > 72 {
		title = title[:72]
	}

	c.JSON(http.StatusOK, gin.H{
		"task_id":     t.ID,
		"branch":      "forge/task-" + shortID(t.ID),
		"title":       title,
		"patch_stats": stats,
		"export_url":  fmt.Sprintf("/api/tasks/%s/git-export.zip", t.ID),
	})
}

func (s *Server) latestGitExport(c *gin.Context, taskID string) (*container.GitExportBundle, bool, error) {
	artifacts, err := s.store.ListArtifacts(c.Request.Context(), taskID)
	if err != nil {
		return nil, false, err
	}
	for i := len(artifacts) - 1; i >= 0; i-- {
		if artifacts[i].Kind != string(container.KindGitExport) {
			continue
		}
		var bundle container.GitExportBundle
		if err := json.Unmarshal(artifacts[i].Payload, &bundle); err != nil {
			return nil, false, err
		}
		return &bundle, true, nil
	}
	return nil, false, nil
}

// buildZip packs the file map into an in-memory zip, entries sorted for
// deterministic output.
func buildZip(files map[string][]byte) ([]byte, error) {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, p := range paths {
		f, err := w.Create(p)
		if err != nil {
			return nil, fmt.Errorf("adding %s to archive: %w", p, err)
		}
		if _, err := f.Write(files[p]); err != nil {
			return nil, fmt.Errorf("writing %s to archive: %w", p, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}

func serveZip(c *gin.Context, name string, archive []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/zip", archive)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
