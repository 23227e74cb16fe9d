package templates

import (
	"fmt"
	"sort"
	"strings"
)

// ImportManager collects the imports a generated file needs and renders them
// deterministically: standard library first, then third-party, both sorted.
type ImportManager struct {
	imports map[string]bool
}

// NewImportManager creates an empty import manager.
func NewImportManager() *ImportManager {
	return &ImportManager{imports: make(map[string]bool)}
}

// Add records an import path. Duplicates are collapsed.
func (m *ImportManager) Add(path string) {
	if path != "" {
		m.imports[path] = true
	}
}

// Render produces the import declaration, or "" when nothing was added.
func (m *ImportManager) Render() string {
	if len(m.imports) == 0 {
		return ""
	}

	var stdlib, thirdParty []string
	for path := range m.imports {
		if strings.Contains(strings.SplitN(path, "/", 2)[0], ".") {
			thirdParty = append(thirdParty, path)
		} else {
			stdlib = append(stdlib, path)
		}
	}
	sort.Strings(stdlib)
	sort.Strings(thirdParty)

	var b strings.Builder
	b.WriteString("import (\n")
	for _, path := range stdlib {
		fmt.Fprintf(&b, "\t%q\n", path)
	}
	if len(stdlib) > 0 && len(thirdParty) > 0 {
		b.WriteString("\n")
	}
	for _, path := range thirdParty {
		fmt.Fprintf(&b, "\t%q\n", path)
	}
	b.WriteString(")")
	return b.String()
}
