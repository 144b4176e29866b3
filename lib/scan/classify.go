package scan

import "strings"

type Category int

const (
	Unclassified Category = iota
	KeyFile
	TestFile
	DocFile
)

// ExcludedDirs are pruned wherever they appear below the root.
var ExcludedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"__pycache__":  true,
	"venv":         true,
	".env":         true,
}

// KeyFiles are matched on the exact basename.
var KeyFiles = map[string]bool{
	"README.md":        true,
	"setup.py":         true,
	"requirements.txt": true,
	"package.json":     true,
	"Dockerfile":       true,
}

const TestExtension = ".py"

var DocExtensions = []string{".md", ".rst", ".txt"}

// Classify applies the rules in order and returns the first that matches.
// A key file is never a test or doc file, and a "test" name only counts as a
// test file with the .py extension.
func Classify(name string) Category {
	switch {
	case KeyFiles[name]:
		return KeyFile
	case strings.Contains(strings.ToLower(name), "test") && strings.HasSuffix(name, TestExtension):
		return TestFile
	case hasDocExtension(name):
		return DocFile
	}
	return Unclassified
}

func hasDocExtension(name string) bool {
	for _, ext := range DocExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
