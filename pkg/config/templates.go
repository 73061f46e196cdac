package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const manifestName = "template.yaml"

// Template is a named starter file tree. Tasks created with a
// template_id begin from a copy of Files, and the reviewer enforces
// Checks against the final output. Templates are read-only after load.
type Template struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Checks      TemplateChecks `yaml:"checks"`

	// Files maps container paths to starter content. The manifest
	// itself is not part of the tree.
	Files map[string][]byte `yaml:"-"`

	// Hash is the hex SHA-256 over the manifest and the file tree.
	Hash string `yaml:"-"`
}

// TemplateChecks are the review-time guarantees a template demands of
// the finished task.
type TemplateChecks struct {
	RequireFiles            []string `yaml:"require_files,omitempty"`
	RequirementsMustContain []string `yaml:"requirements_must_contain,omitempty"`
	RequireHealthEndpoint   bool     `yaml:"require_health_endpoint,omitempty"`
}

// TemplateCatalog is the set of templates discovered at startup.
type TemplateCatalog struct {
	templates map[string]*Template
	order     []string
}

// LoadTemplates scans dir for subdirectories carrying a template.yaml
// manifest and builds the catalog. A missing directory yields an empty
// catalog, which only disables template-based tasks.
func LoadTemplates(dir string) (*TemplateCatalog, error) {
	catalog := &TemplateCatalog{templates: make(map[string]*Template)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("No templates directory, catalog is empty", "dir", dir)
			return catalog, nil
		}
		return nil, fmt.Errorf("reading templates dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		tmpl, err := loadTemplate(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", entry.Name(), err)
		}
		if tmpl == nil {
			continue
		}
		if _, dup := catalog.templates[tmpl.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", tmpl.ID)
		}
		catalog.templates[tmpl.ID] = tmpl
		catalog.order = append(catalog.order, tmpl.ID)
	}

	sort.Strings(catalog.order)
	slog.Info("Template catalog loaded", "dir", dir, "templates", len(catalog.order))
	return catalog, nil
}

// loadTemplate reads one template directory. Directories without a
// manifest are skipped, not errors.
func loadTemplate(dir string) (*Template, error) {
	manifest, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var tmpl Template
	if err := yaml.Unmarshal(manifest, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", manifestName, err)
	}
	if tmpl.ID == "" {
		tmpl.ID = filepath.Base(dir)
	}
	if tmpl.Name == "" {
		tmpl.Name = tmpl.ID
	}

	tmpl.Files = make(map[string][]byte)
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == manifestName {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tmpl.Files[rel] = content
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading file tree: %w", err)
	}

	tmpl.Hash = hashTemplate(manifest, tmpl.Files)
	return &tmpl, nil
}

// hashTemplate digests the manifest plus every file in path order, so
// any content or layout change yields a new template hash.
func hashTemplate(manifest []byte, files map[string][]byte) string {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	h := sha256.New()
	h.Write(manifest)
	for _, p := range paths {
		h.Write([]byte{0})
		h.Write([]byte(p))
		h.Write([]byte{0})
		h.Write(files[p])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns a template by ID.
func (tc *TemplateCatalog) Get(id string) (*Template, bool) {
	tmpl, ok := tc.templates[id]
	return tmpl, ok
}

// List returns all templates sorted by ID.
func (tc *TemplateCatalog) List() []*Template {
	out := make([]*Template, 0, len(tc.order))
	for _, id := range tc.order {
		out = append(out, tc.templates[id])
	}
	return out
}

// Len returns the number of templates in the catalog.
func (tc *TemplateCatalog) Len() int {
	return len(tc.order)
}

// RequirementsSatisfied reports whether content (a requirements.txt
// body) names every dependency the checks demand, and returns the
// missing ones.
func (tc TemplateChecks) RequirementsSatisfied(content string) []string {
	var missing []string
	lower := strings.ToLower(content)
	for _, dep := range tc.RequirementsMustContain {
		if !strings.Contains(lower, strings.ToLower(dep)) {
			missing = append(missing, dep)
		}
	}
	return missing
}
