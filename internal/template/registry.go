// Package template is the static, read-only catalog of project archetypes.
// Each archetype maps relative file paths to their content (text or binary
// base64) and carries the cosmetic lifecycle labels shown while the project
// is assembled.
package template

import (
	"scaffold_ai_server/internal/types"
)

// Project describes one generatable archetype.
type Project struct {
	Name      string
	Slug      string
	Lifecycle []string
	Files     types.FileMap
}

var registry = map[types.ProjectType]Project{
	types.ProjectStore: storeProject,
	types.ProjectBlog:  blogProject,
}

// Get returns the archetype for the given project type.
func Get(pt types.ProjectType) (Project, bool) {
	p, ok := registry[pt]
	return p, ok
}

// CloneFiles returns a mutable copy of the archetype's file map. The registry
// itself is never handed out for mutation; every generation works on a copy.
func CloneFiles(pt types.ProjectType) (types.FileMap, bool) {
	p, ok := registry[pt]
	if !ok {
		return nil, false
	}
	return p.Files.Clone(), true
}
