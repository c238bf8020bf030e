package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	coreworkspace "github.com/mattsolo1/grove-core/pkg/workspace"
)

// projectByPath looks up the grove project containing a path.
var projectByPath = coreworkspace.GetProjectByPath

// Ref identifies the workspace a document was opened in.
type Ref struct {
	Name string `yaml:"name" json:"name"`
	Root string `yaml:"root" json:"root"`
}

// Detect finds the workspace containing path: the nearest directory above it holding
// a .git entry, or the directory itself when there is none.
func Detect(path string) (Ref, error) {
	absPath, err := filepath.Abs(expandHome(path))
	if err != nil {
		return Ref{}, fmt.Errorf("resolve path: %w", err)
	}

	dir := absPath
	if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
		dir = filepath.Dir(absPath)
	}

	root := findGitRoot(dir)
	if root == "" {
		root = dir
	}
	return Ref{Name: filepath.Base(root), Root: root}, nil
}

// Resolve names the workspace of path: the grove project containing it when grove
// knows one, else whatever Detect finds.
func Resolve(path string) (Ref, error) {
	absPath, err := filepath.Abs(expandHome(path))
	if err != nil {
		return Ref{}, fmt.Errorf("resolve path: %w", err)
	}

	project, err := projectByPath(absPath)
	if err != nil || project == nil || project.Path == "" {
		// Not in a known project
		return Detect(absPath)
	}
	name := project.Name
	if name == "" {
		name = filepath.Base(project.Path)
	}
	return Ref{Name: name, Root: project.Path}, nil
}

// Contains reports whether path lies inside the workspace root.
func (r Ref) Contains(path string) bool {
	if r.Root == "" {
		return false
	}
	rel, err := filepath.Rel(r.Root, path)
	if err != nil {
		return false
	}
	return rel == "." || !strings.HasPrefix(rel, "..")
}

// Validate checks if the reference is usable as a store scope
func (r Ref) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("workspace name cannot be empty")
	}
	if r.Root == "" {
		return fmt.Errorf("workspace root cannot be empty")
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// findGitRoot finds the root of a git repository
func findGitRoot(path string) string {
	current := path
	for {
		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			return current
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return ""
}
