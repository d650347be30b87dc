package generate

import "sort"

// FileMap maps a repository-relative file path to its text content.
type FileMap map[string]string

// Merge copies all entries of other into m, overwriting duplicates.
func (m FileMap) Merge(other FileMap) {
	for path, content := range other {
		m[path] = content
	}
}

// Paths returns the sorted file paths.
func (m FileMap) Paths() []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
