package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

func buildTree(t *testing.T) *tree.Tree {
	t.Helper()
	tr := tree.New()
	work := tree.NewGroup("Work", tree.ColorRed)
	work.SetDescription("Sprint items")
	ref := tree.FileRef{Path: "/repo/server/handler.go"}
	tab := tree.NewTab(ref)
	line := tree.NewLine(ref, 41, "func ServeHTTP(w, r)")
	play := tree.NewGroup("Play", tree.ColorDefault)

	require.True(t, tr.Root().AddChild(work))
	require.True(t, work.AddChild(tab))
	require.True(t, tab.AddChild(line))
	require.True(t, tr.Root().AddChild(play))
	return tr
}

func TestSearch(t *testing.T) {
	tr := buildTree(t)

	tests := []struct {
		name   string
		query  string
		opts   *Options
		labels []string
		field  string
	}{
		{"label ignores case", "work", nil, []string{"Work"}, "label"},
		{"description", "sprint", nil, []string{"Work"}, "description"},
		{"file path matches tab and line", "server/", nil, []string{"handler.go", "42: func ServeHTTP(w, r)"}, "file"},
		{"line text", "servehttp", nil, []string{"42: func ServeHTTP(w, r)"}, "label"},
		{"all terms required", "handler sprint", nil, nil, ""},
		{"terms across fields", "servehttp handler.go", nil, []string{"42: func ServeHTTP(w, r)"}, "label"},
		{"kind filter", "handler", &Options{Kind: tree.KindTab}, []string{"handler.go"}, "label"},
		{"limit", "a", &Options{Limit: 1}, []string{"handler.go"}, "label"},
		{"empty query", "   ", nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Search(tr, tt.query, tt.opts)
			var labels []string
			for _, r := range results {
				labels = append(labels, r.Node.DisplayLabel(true))
			}
			assert.Equal(t, tt.labels, labels)
			if len(results) > 0 {
				assert.Equal(t, tt.field, results[0].Field)
			}
		})
	}
}

func TestSearchResultPath(t *testing.T) {
	tr := buildTree(t)
	results := Search(tr, "ServeHTTP", nil)
	require.Len(t, results, 1)
	assert.Equal(t, "Work / handler.go / 42: func ServeHTTP(w, r)", results[0].Path)
}
