package types

// ProjectType identifies one of the fixed project archetypes a user can generate.
type ProjectType string

const (
	ProjectStore ProjectType = "store"
	ProjectBlog  ProjectType = "blog"
)

// Valid reports whether pt is one of the known archetypes.
func (pt ProjectType) Valid() bool {
	return pt == ProjectStore || pt == ProjectBlog
}

// CarsTheme is the reserved theme value that routes product generation to the
// vehicle pricing source instead of the LLM.
const CarsTheme = "__CARS__"

// PlaceholderSuffix marks FileMap entries that exist only to keep otherwise
// empty directories representable. They carry no displayable content and are
// excluded from both the file tree and generated archives.
const PlaceholderSuffix = ".placeholder"

// FileEntry is the content associated with one virtual file path.
// Exactly one of Content/Base64 is meaningful; Binary selects which.
type FileEntry struct {
	Content string
	Base64  string
	Binary  bool
}

// TextEntry builds a text file entry.
func TextEntry(content string) FileEntry {
	return FileEntry{Content: content}
}

// BinaryEntry builds a binary file entry from base64-encoded bytes.
func BinaryEntry(base64 string) FileEntry {
	return FileEntry{Base64: base64, Binary: true}
}

// FileMap is a flat mapping from '/'-delimited virtual paths to file entries.
// Paths have no leading slash and are case-sensitive. Any deterministic output
// derived from a FileMap (tree, archive) iterates it in sorted path order.
type FileMap map[string]FileEntry

// Clone returns a shallow copy of the map. Entries are value types, so the
// copy is safe to mutate without touching the original.
func (m FileMap) Clone() FileMap {
	out := make(FileMap, len(m))
	for path, entry := range m {
		out[path] = entry
	}
	return out
}

// FileNode is one node of the tree view derived from a FileMap.
// Folders carry Children; files carry Content or Base64Content.
type FileNode struct {
	Name          string      `json:"name"`
	Type          string      `json:"type"` // "file" or "folder"
	Language      string      `json:"language,omitempty"`
	Content       string      `json:"content,omitempty"`
	Base64Content string      `json:"base64Content,omitempty"`
	Children      []*FileNode `json:"children,omitempty"`
}

// Product is the fixed 5-field record describing one generated or looked-up
// catalog item. Records from the LLM are validated against exactly this shape
// before use.
type Product struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}
