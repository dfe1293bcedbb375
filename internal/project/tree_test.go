package project

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffold_ai_server/internal/types"
)

func TestBuildTree_FoldersBeforeFiles(t *testing.T) {
	files := types.FileMap{
		"b.txt":   types.TextEntry("b"),
		"a/x.txt": types.TextEntry("x"),
	}

	tree := BuildTree(files)

	require.Len(t, tree, 2)
	assert.Equal(t, "a", tree[0].Name)
	assert.Equal(t, "folder", tree[0].Type)
	assert.Equal(t, "b.txt", tree[1].Name)
	assert.Equal(t, "file", tree[1].Type)

	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "x.txt", tree[0].Children[0].Name)
	assert.Equal(t, "x", tree[0].Children[0].Content)
}

func TestBuildTree_Deterministic(t *testing.T) {
	files := types.FileMap{
		"src/app/page.tsx":   types.TextEntry("page"),
		"src/app/layout.tsx": types.TextEntry("layout"),
		"src/lib/posts.ts":   types.TextEntry("posts"),
		"package.json":       types.TextEntry("{}"),
		"README.md":          types.TextEntry("readme"),
	}

	first := BuildTree(files)
	for i := 0; i < 10; i++ {
		// Map iteration order varies between runs; the projection must not.
		if !reflect.DeepEqual(first, BuildTree(files)) {
			t.Fatal("BuildTree is not deterministic")
		}
	}
}

func TestBuildTree_SortedWithinEachGroup(t *testing.T) {
	files := types.FileMap{
		"zeta.txt":    types.TextEntry(""),
		"alpha.txt":   types.TextEntry(""),
		"mid/one.txt": types.TextEntry(""),
		"abc/two.txt": types.TextEntry(""),
	}

	tree := BuildTree(files)

	names := make([]string, 0, len(tree))
	for _, n := range tree {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"abc", "mid", "alpha.txt", "zeta.txt"}, names)
}

func TestBuildTree_ExcludesPlaceholders(t *testing.T) {
	files := types.FileMap{
		"public/.placeholder": types.TextEntry(""),
		"README.md":           types.TextEntry("readme"),
	}

	tree := BuildTree(files)

	require.Len(t, tree, 1)
	assert.Equal(t, "README.md", tree[0].Name)
	// The placeholder's parent directory must not appear either.
	for _, n := range tree {
		assert.NotEqual(t, "public", n.Name)
	}
}

func TestBuildTree_BinaryEntries(t *testing.T) {
	files := types.FileMap{
		"src/app/favicon.ico": types.BinaryEntry("AAAB"),
	}

	tree := BuildTree(files)

	require.Len(t, tree, 1)
	icon := tree[0].Children[0].Children[0]
	assert.Equal(t, "favicon.ico", icon.Name)
	assert.Equal(t, "AAAB", icon.Base64Content)
	assert.Empty(t, icon.Content)
	assert.Equal(t, "image", icon.Language)
}

func TestBuildTree_LanguageTags(t *testing.T) {
	files := types.FileMap{
		"src/app/page.tsx": types.TextEntry(""),
		"styles.css":       types.TextEntry(""),
		".gitignore":       types.TextEntry(""),
	}

	tree := BuildTree(files)

	byName := map[string]string{}
	var collect func(nodes []*types.FileNode)
	collect = func(nodes []*types.FileNode) {
		for _, n := range nodes {
			if n.Type == "file" {
				byName[n.Name] = n.Language
			}
			collect(n.Children)
		}
	}
	collect(tree)

	assert.Equal(t, "typescript", byName["page.tsx"])
	assert.Equal(t, "css", byName["styles.css"])
	assert.Equal(t, "bash", byName[".gitignore"])
}
