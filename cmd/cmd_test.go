package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
	"github.com/mattsolo1/grove-tabgroups/pkg/snapshot"
	"github.com/mattsolo1/grove-tabgroups/pkg/store"
	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

func newTestSession(t *testing.T, display *Display) *service.Session {
	t.Helper()
	s := service.New(nil, store.NewMemory(), display, nil)
	require.NoError(t, s.Load())
	return s
}

func run(t *testing.T, c *cobra.Command, args ...string) error {
	t.Helper()
	c.SetArgs(args)
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	return c.ExecuteContext(context.Background())
}

func TestParseFileLine(t *testing.T) {
	tests := []struct {
		arg     string
		path    string
		line    int
		wantErr bool
	}{
		{"main.go:12", "main.go", 12, false},
		{"C:/src/main.go:3", "C:/src/main.go", 3, false},
		{"main.go", "", 0, true},
		{"main.go:", "", 0, true},
		{":4", "", 0, true},
		{"main.go:0", "", 0, true},
		{"main.go:x", "", 0, true},
	}

	for _, tt := range tests {
		path, line, err := parseFileLine(tt.arg)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseFileLine(%q) expected error", tt.arg)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseFileLine(%q) unexpected error: %v", tt.arg, err)
			continue
		}
		if path != tt.path || line != tt.line {
			t.Errorf("parseFileLine(%q) = %q, %d; want %q, %d", tt.arg, path, line, tt.path, tt.line)
		}
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		flag, path string
		want       snapshot.Format
	}{
		{"", "", snapshot.FormatJSON},
		{"", "out.yaml", snapshot.FormatYAML},
		{"", "out.yml", snapshot.FormatYAML},
		{"", "out.txt", snapshot.FormatJSON},
		{"json", "out.yaml", snapshot.FormatJSON},
		{"yaml", "", snapshot.FormatYAML},
		{"", "out.toml", snapshot.FormatTOML},
	}
	for _, tt := range tests {
		got, err := resolveFormat(tt.flag, tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "flag=%q path=%q", tt.flag, tt.path)
	}

	_, err := resolveFormat("xml", "")
	assert.Error(t, err)
}

func TestNeedsSession(t *testing.T) {
	root := &cobra.Command{Use: "tg"}
	version := NewVersionCmd()
	workspaces := NewWorkspacesCmd()
	schema := NewSchemaCmd()
	var s *service.Session
	group := NewGroupCmd(&s)
	root.AddCommand(version, workspaces, schema, group)

	assert.False(t, NeedsSession(version))
	assert.False(t, NeedsSession(workspaces))
	assert.False(t, NeedsSession(schema))
	assert.True(t, NeedsSession(group))
	assert.True(t, NeedsSession(group.Commands()[0]))
}

func TestDisplayPrintsAfterMutation(t *testing.T) {
	var out bytes.Buffer
	display := &Display{Out: &out, NoColor: true}
	s := newTestSession(t, display)

	require.NoError(t, display.Flush())
	assert.Empty(t, out.String(), "load refresh is not printed")

	display.Arm()
	require.NoError(t, run(t, NewGroupCmd(&s), "add", "Work", "--color", "red"))
	require.NoError(t, display.Flush())
	assert.Contains(t, out.String(), "Work")

	out.Reset()
	require.NoError(t, display.Flush())
	assert.Empty(t, out.String(), "flush prints once per mutation")

	display.Quiet = true
	require.NoError(t, run(t, NewGroupCmd(&s), "add", "Play"))
	require.NoError(t, display.Flush())
	assert.Empty(t, out.String())
}

func TestCommandsDriveSession(t *testing.T) {
	display := &Display{Out: &bytes.Buffer{}, NoColor: true}
	s := newTestSession(t, display)

	dir := t.TempDir()
	file := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(file, []byte("package main\n\nfunc main() {}\n"), 0644))

	require.NoError(t, run(t, NewGroupCmd(&s), "add", "Work", "--color", "blue"))
	require.NoError(t, run(t, NewTabCmd(&s), "add", file))
	require.NoError(t, run(t, NewLineCmd(&s), "add", file+":3", "--in", "main.go"))
	require.NoError(t, run(t, NewMoveCmd(&s), "main.go", "Work"))

	work, err := s.Lookup("Work")
	require.NoError(t, err)
	data, ok := work.Group()
	require.True(t, ok)
	assert.Equal(t, tree.ColorBlue, data.Color)
	require.Equal(t, 1, work.Len())

	line, err := s.Lookup("Work/main.go/L3")
	require.NoError(t, err)
	lineData, ok := line.Line()
	require.True(t, ok)
	assert.Equal(t, 2, lineData.LineNumber)
	assert.Equal(t, "func main() {}", lineData.LineText)

	require.NoError(t, run(t, NewRenameCmd(&s), "Work/main.go", "entry"))
	_, err = s.Lookup("Work/entry")
	require.NoError(t, err)

	require.NoError(t, run(t, NewFoldCmd(&s), "Work"))
	assert.True(t, work.Collapsed())
	require.NoError(t, run(t, NewUnfoldCmd(&s), "--recursive"))
	assert.False(t, work.Collapsed())

	require.NoError(t, run(t, NewRemoveCmd(&s), "Work"))
	assert.Equal(t, 0, s.Tree.Size())
	require.NoError(t, run(t, NewRestoreCmd(&s)))
	assert.Equal(t, 3, s.Tree.Size())

	require.NoError(t, run(t, NewViewCmd(&s), "--alias=false"))
	assert.False(t, s.Settings.ShowAlias)
	assert.True(t, s.Settings.ShowDescription)

	assert.Error(t, run(t, NewResetCmd(&s)))
	require.NoError(t, run(t, NewResetCmd(&s), "--force"))
	assert.Equal(t, 0, s.Tree.Size())
}

func TestExportImportRoundTrip(t *testing.T) {
	display := &Display{Out: &bytes.Buffer{}, NoColor: true}
	s := newTestSession(t, display)
	require.NoError(t, run(t, NewGroupCmd(&s), "add", "Work"))
	require.NoError(t, run(t, NewGroupCmd(&s), "add", "Sub", "--in", "Work"))

	out := filepath.Join(t.TempDir(), "groups.yaml")
	require.NoError(t, run(t, NewExportCmd(&s), "-o", out))
	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "kind: tree")

	other := newTestSession(t, display)
	require.NoError(t, run(t, NewImportCmd(&other), out))
	_, err = other.Lookup("Work/Sub")
	assert.NoError(t, err)
}

func TestMoveReportsRejectedItems(t *testing.T) {
	display := &Display{Out: &bytes.Buffer{}, NoColor: true}
	s := newTestSession(t, display)

	file := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(file, []byte("package main\n\nfunc main() {}\n"), 0644))

	require.NoError(t, run(t, NewGroupCmd(&s), "add", "Work"))
	require.NoError(t, run(t, NewLineCmd(&s), "add", file+":3"))

	err := run(t, NewMoveCmd(&s), "main.go/L3", "Work")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")

	line, err := s.Lookup("main.go/L3")
	require.NoError(t, err)
	assert.Equal(t, tree.KindTab, line.Parent().Kind(), "line stays under its tab")
}
