//go:build integration
// +build integration

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
	"github.com/mattsolo1/grove-tabgroups/pkg/store"
	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
	"github.com/mattsolo1/grove-tabgroups/pkg/workspace"
)

func TestIntegration(t *testing.T) {
	// Skip if not running integration tests
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=1 to run.")
	}

	tmpDir := t.TempDir()
	dataDir := filepath.Join(tmpDir, "data")
	repo := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	source := filepath.Join(repo, "main.go")
	if err := os.WriteFile(source, []byte("package main\n\nfunc main() {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ws, err := workspace.Detect(source)
	if err != nil {
		t.Fatalf("Failed to detect workspace: %v", err)
	}
	if ws.Root != repo {
		t.Errorf("Expected workspace root %s, got %s", repo, ws.Root)
	}

	// Test 1: Build a tree against the sqlite store
	t.Run("PersistTree", func(t *testing.T) {
		st, err := store.Open(dataDir, ws.Root)
		if err != nil {
			t.Fatalf("Failed to open store: %v", err)
		}
		defer st.Close()

		svc := service.New(nil, st, nil, nil)
		if err := svc.Load(); err != nil {
			t.Fatalf("Failed to load: %v", err)
		}
		if _, err := svc.CreateGroup("", "Work", tree.ColorGreen); err != nil {
			t.Fatalf("Failed to create group: %v", err)
		}
		if _, err := svc.CreateLine(context.Background(), "Work", source, 2); err != nil {
			t.Fatalf("Failed to create line: %v", err)
		}
	})

	// Test 2: Reload in a fresh session
	t.Run("ReloadTree", func(t *testing.T) {
		st, err := store.Open(dataDir, ws.Root)
		if err != nil {
			t.Fatalf("Failed to open store: %v", err)
		}
		defer st.Close()

		svc := service.New(nil, st, nil, nil)
		if err := svc.Load(); err != nil {
			t.Fatalf("Failed to load: %v", err)
		}
		line, err := svc.Lookup("Work/main.go/L3")
		if err != nil {
			t.Fatalf("Failed to find line: %v", err)
		}
		data, _ := line.Line()
		if data.LineText != "func main() {}" {
			t.Errorf("Expected excerpt 'func main() {}', got %q", data.LineText)
		}
		tab, _ := line.Parent().Tab()
		if tab.WorkspaceRef != repo {
			t.Errorf("Expected workspace ref %s, got %s", repo, tab.WorkspaceRef)
		}
	})

	// Test 3: Other workspaces do not see the tree
	t.Run("WorkspaceScope", func(t *testing.T) {
		st, err := store.Open(dataDir, filepath.Join(tmpDir, "other"))
		if err != nil {
			t.Fatalf("Failed to open store: %v", err)
		}
		defer st.Close()

		svc := service.New(nil, st, nil, nil)
		if err := svc.Load(); err != nil {
			t.Fatalf("Failed to load: %v", err)
		}
		if svc.Tree.Size() != 0 {
			t.Errorf("Expected empty tree, got %d nodes", svc.Tree.Size())
		}

		infos, err := st.Workspaces()
		if err != nil {
			t.Fatalf("Failed to list workspaces: %v", err)
		}
		if len(infos) != 1 || infos[0].Name != ws.Root {
			t.Errorf("Expected only %s to have state, got %+v", ws.Root, infos)
		}
	})
}
