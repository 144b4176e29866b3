package manifest

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/readmekit/projectinfo/entity"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const root = "/repo"

func writeFiles(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(root, 0755))
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(root, name), []byte(content), 0644))
	}
	return fs
}

func TestCollectWithoutManifests(t *testing.T) {
	deps, warnings, err := Collect(writeFiles(t, nil), root)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, entity.Dependencies{Python: []string{}, Node: []string{}, Other: []string{}}, deps)
}

func TestCollectRequirementsKeepsBlankLines(t *testing.T) {
	fs := writeFiles(t, map[string]string{
		"requirements.txt": "requests==2.31\n\nflask\n",
	})

	deps, warnings, err := Collect(fs, root)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, []string{"requests==2.31", "", "flask"}, deps.Python)
	require.Equal(t, []string{}, deps.Node)
	require.Equal(t, []string{}, deps.Other)
}

func TestCollectPackageJSONKeepsOrder(t *testing.T) {
	fs := writeFiles(t, map[string]string{
		"package.json": `{"dependencies": {"react": "^18.0.0", "lodash": "4.17.21"}}`,
	})

	deps, warnings, err := Collect(fs, root)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, []string{"react", "lodash"}, deps.Node)
	require.Equal(t, []string{}, deps.Python)
}

func TestCollectInvalidPackageJSON(t *testing.T) {
	fs := writeFiles(t, map[string]string{
		"requirements.txt": "flask\n",
		"package.json":     `{"dependencies": {"react": }`,
	})

	deps, warnings, err := Collect(fs, root)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.True(t, strings.HasPrefix(warnings[0], "Could not parse package.json"))
	require.Equal(t, []string{}, deps.Node)
	require.Equal(t, []string{"flask"}, deps.Python)
}

func TestCollectRequirementsIsDirectory(t *testing.T) {
	dir := t.TempDir()
	fs := afero.NewOsFs()
	require.NoError(t, fs.MkdirAll(filepath.Join(dir, "requirements.txt"), 0755))

	_, _, err := Collect(fs, dir)
	require.Error(t, err)
}

var requirementLinesTest = []struct {
	name string
	in   string
	out  []string
}{
	{
		name: "Empty file has no entries",
		in:   "",
		out:  []string{},
	},
	{
		name: "Missing final newline keeps last line",
		in:   "flask\nrequests",
		out:  []string{"flask", "requests"},
	},
	{
		name: "Comments and whitespace are untouched",
		in:   "# web\n  flask >= 2.0  \n",
		out:  []string{"# web", "  flask >= 2.0  "},
	},
	{
		name: "CRLF terminators are dropped",
		in:   "flask\r\nrequests\r\n",
		out:  []string{"flask", "requests"},
	},
	{
		name: "Lone carriage returns end lines",
		in:   "a\rb\nc\r\r\nd",
		out:  []string{"a", "b", "c", "", "d"},
	},
	{
		name: "Trailing carriage return is a terminator",
		in:   "flask\r",
		out:  []string{"flask"},
	},
	{
		name: "Only a newline is one blank entry",
		in:   "\n",
		out:  []string{""},
	},
}

func TestRequirementLines(t *testing.T) {
	for _, tt := range requirementLinesTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, RequirementLines([]byte(tt.in)))
		})
	}
}

var dependencyNamesTest = []struct {
	name    string
	in      string
	out     []string
	wantErr bool
}{
	{
		name: "No dependencies key",
		in:   `{"name": "widget", "devDependencies": {"jest": "29"}}`,
		out:  []string{},
	},
	{
		name: "Nested values are skipped",
		in:   `{"scripts": {"test": "jest"}, "dependencies": {"b": {"version": "1"}, "a": "2"}, "files": ["dist"]}`,
		out:  []string{"b", "a"},
	},
	{
		name: "Empty dependencies",
		in:   `{"dependencies": {}}`,
		out:  []string{},
	},
	{
		name: "Repeated key keeps first position",
		in:   `{"dependencies": {"a": "1", "b": "1", "a": "2"}}`,
		out:  []string{"a", "b"},
	},
	{
		name:    "Empty document",
		in:      "",
		wantErr: true,
	},
	{
		name:    "Top-level array",
		in:      `["react"]`,
		wantErr: true,
	},
	{
		name:    "Dependencies is not an object",
		in:      `{"dependencies": ["react"]}`,
		wantErr: true,
	},
	{
		name:    "Dependencies is null",
		in:      `{"dependencies": null}`,
		wantErr: true,
	},
	{
		name:    "Trailing data",
		in:      `{"dependencies": {}} {}`,
		wantErr: true,
	},
	{
		name:    "Truncated",
		in:      `{"dependencies": {"react": "18"`,
		wantErr: true,
	},
}

func TestDependencyNames(t *testing.T) {
	for _, tt := range dependencyNamesTest {
		t.Run(tt.name, func(t *testing.T) {
			names, err := DependencyNames(strings.NewReader(tt.in))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.out, names)
		})
	}
}
