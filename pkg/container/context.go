package container

// RelevantContext is the role-scoped view handed to an LLM prompt.
// Keeping each role's view narrow keeps prompts compact and deterministic.
type RelevantContext struct {
	Role         Role
	Requirements *RequirementsDoc
	Architecture *ArchitectureDoc
	FilePaths    []string
	FileContents map[string][]byte
	History      []HistoryEntry
	CurrentTask  string
}

// coderHistoryWindow bounds how many trailing history entries the coder
// sees. More than this adds prompt tokens without adding signal.
const coderHistoryWindow = 20

// RelevantContextFor returns the scoped view for a role:
//   - Researcher sees nothing but the task (it produces requirements).
//   - Designer sees requirements plus any existing architecture.
//   - Planner sees the same view as the designer's output consumers.
//   - Coder sees architecture, the file list, and recent history.
//   - Reviewer sees full file contents plus architecture.
func (c *Container) RelevantContextFor(role Role) RelevantContext {
	rc := RelevantContext{Role: role, CurrentTask: c.CurrentTask()}

	switch role {
	case RoleResearcher:
		// Only the user task, which the caller supplies in the prompt.
	case RoleDesigner:
		rc.Requirements = c.latestRequirements()
		rc.Architecture = c.TargetArchitecture()
	case RolePlanner, RoleCoder:
		rc.Architecture = c.TargetArchitecture()
		rc.FilePaths = c.FilePaths()
		rc.History = c.LastHistory(coderHistoryWindow)
	case RoleReviewer:
		rc.Architecture = c.TargetArchitecture()
		rc.FilePaths = c.FilePaths()
		rc.FileContents = c.Files()
	}
	return rc
}

func (c *Container) latestRequirements() *RequirementsDoc {
	a, ok := c.LatestArtifact(KindRequirements)
	if !ok {
		return nil
	}
	switch v := a.Payload.(type) {
	case *RequirementsDoc:
		return v
	case RequirementsDoc:
		return &v
	}
	return nil
}
