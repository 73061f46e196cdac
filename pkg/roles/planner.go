package roles

import (
	"fmt"
	"path"
	"strings"

	"github.com/forgeproject/forge/pkg/container"
)

// NextTask is the deterministic scheduler: it picks the first file the
// architecture declares that does not exist yet, then the first Python
// module lacking a test file. It returns nil when nothing is left,
// which ends the implementation loop.
func NextTask(c *container.Container) *SubTask {
	arch := c.TargetArchitecture()

	if arch != nil {
		for _, comp := range arch.Components {
			for _, declared := range comp.Files {
				if _, ok := c.File(declared); !ok {
					return &SubTask{
						Type:        TaskCreateFile,
						Component:   comp.Name,
						File:        declared,
						Description: fmt.Sprintf("Create %s for component %s.", declared, comp.Name),
					}
				}
			}
		}
	}

	for _, p := range c.FilePaths() {
		if !isTestableModule(p) {
			continue
		}
		if hasTestFor(c, p) {
			continue
		}
		testPath := testPathFor(p)
		return &SubTask{
			Type:         TaskWriteTests,
			File:         testPath,
			Description:  fmt.Sprintf("Write pytest tests for %s in %s.", p, testPath),
			AllowedPaths: []string{testPath},
		}
	}

	return nil
}

// isTestableModule reports whether a path is a Python module that
// deserves tests: not itself a test, not an __init__, not scaffolding.
func isTestableModule(p string) bool {
	if !strings.HasSuffix(p, ".py") {
		return false
	}
	base := path.Base(p)
	if strings.HasPrefix(base, "test_") || strings.HasSuffix(base, "_test.py") {
		return false
	}
	if base == "__init__.py" || base == "conftest.py" || base == "setup.py" {
		return false
	}
	return !strings.HasPrefix(p, "tests/")
}

func hasTestFor(c *container.Container, module string) bool {
	want := "test_" + path.Base(module)
	for _, p := range c.FilePaths() {
		if path.Base(p) == want {
			return true
		}
	}
	return false
}

func testPathFor(module string) string {
	return "tests/test_" + path.Base(module)
}
