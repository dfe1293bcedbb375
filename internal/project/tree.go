package project

import (
	"sort"
	"strings"

	"scaffold_ai_server/internal/types"
	"scaffold_ai_server/internal/utils"
)

// BuildTree projects a flat file map into the ordered node forest the file
// explorer renders. Placeholder entries are excluded. The projection is pure
// and deterministic: the same map always yields a structurally identical
// tree regardless of iteration order.
func BuildTree(files types.FileMap) []*types.FileNode {
	root := newFolder("")

	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if strings.HasSuffix(path, types.PlaceholderSuffix) {
			continue
		}

		parts := strings.Split(path, "/")
		current := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := current.folders[part]
			if !ok {
				child = newFolder(part)
				current.folders[part] = child
			}
			current = child
		}

		name := parts[len(parts)-1]
		entry := files[path]
		fileNode := &types.FileNode{
			Name:     name,
			Type:     "file",
			Language: utils.DetermineFileType(name),
		}
		if entry.Binary {
			fileNode.Base64Content = entry.Base64
		} else {
			fileNode.Content = entry.Content
		}
		current.files = append(current.files, fileNode)
	}

	return root.materialize()
}

// builderNode accumulates children during the walk; the display ordering is
// applied once at materialization.
type builderNode struct {
	name    string
	folders map[string]*builderNode
	files   []*types.FileNode
}

func newFolder(name string) *builderNode {
	return &builderNode{name: name, folders: map[string]*builderNode{}}
}

// materialize converts the accumulated children into the final ordered
// sequence: folders before files, case-sensitive alphabetical within each
// group.
func (b *builderNode) materialize() []*types.FileNode {
	folderNames := make([]string, 0, len(b.folders))
	for name := range b.folders {
		folderNames = append(folderNames, name)
	}
	sort.Strings(folderNames)

	sort.Slice(b.files, func(i, j int) bool {
		return b.files[i].Name < b.files[j].Name
	})

	children := make([]*types.FileNode, 0, len(folderNames)+len(b.files))
	for _, name := range folderNames {
		sub := b.folders[name]
		children = append(children, &types.FileNode{
			Name:     name,
			Type:     "folder",
			Children: sub.materialize(),
		})
	}
	children = append(children, b.files...)
	return children
}
