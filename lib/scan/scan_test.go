package scan

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const root = "/repo"

func tree(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(root, 0755))
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fs, path, []byte("content"), 0644))
	}
	return fs
}

var classifyTest = []struct {
	name string
	in   string
	out  Category
}{
	{"README is a key file", "README.md", KeyFile},
	{"requirements.txt is a key file not a doc", "requirements.txt", KeyFile},
	{"Dockerfile is a key file", "Dockerfile", KeyFile},
	{"Key file match is case sensitive", "readme.md", DocFile},
	{"Python test file", "test_app.py", TestFile},
	{"Test match ignores case", "AppTests.py", TestFile},
	{"Test name with doc extension is a doc", "test_readme.md", DocFile},
	{"Test name with other extension is nothing", "app_test.go", Unclassified},
	{"Restructured text", "index.rst", DocFile},
	{"Plain text", "NOTES.txt", DocFile},
	{"Doc extension is case sensitive", "GUIDE.MD", Unclassified},
	{"Source file", "main.py", Unclassified},
}

func TestClassify(t *testing.T) {
	for _, tt := range classifyTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, Classify(tt.in))
		})
	}
}

func TestExcludedDirs(t *testing.T) {
	for _, dir := range []string{".git", "node_modules", "__pycache__", "venv", ".env"} {
		require.True(t, ExcludedDirs[dir], dir)
	}
}

func TestDirectoryClassifiesFiles(t *testing.T) {
	fs := tree(t,
		"README.md",
		"setup.py",
		"main.py",
		"docs/guide.md",
		"docs/api/index.rst",
		"tests/test_app.py",
		"tests/test_readme.md",
	)

	st, err := Directory(fs, root, Options{})
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"docs", "docs/api", "tests"}, st.Directories)
	require.ElementsMatch(t, []string{"README.md", "setup.py"}, st.KeyFiles)
	require.Equal(t, []string{"tests/test_app.py"}, st.TestFiles)
	require.ElementsMatch(t, []string{"docs/guide.md", "docs/api/index.rst", "tests/test_readme.md"}, st.DocFiles)
}

func TestDirectoryPrunesExcludedDirs(t *testing.T) {
	fs := tree(t,
		"README.md",
		".git/HEAD",
		".git/hooks/README.md",
		"node_modules/lodash/package.json",
		"src/node_modules/left-pad/README.md",
		"src/__pycache__/test_x.py",
		"venv/lib/site.py",
		".env/notes.txt",
		"src/app.py",
	)

	st, err := Directory(fs, root, Options{})
	require.NoError(t, err)

	require.Equal(t, []string{"src"}, st.Directories)
	require.Equal(t, []string{"README.md"}, st.KeyFiles)
	require.Empty(t, st.TestFiles)
	require.Empty(t, st.DocFiles)
}

func TestDirectoryEmptyTreeHasEmptyLists(t *testing.T) {
	st, err := Directory(tree(t), root, Options{})
	require.NoError(t, err)
	require.NotNil(t, st.Directories)
	require.NotNil(t, st.KeyFiles)
	require.NotNil(t, st.TestFiles)
	require.NotNil(t, st.DocFiles)
	require.Empty(t, st.Directories)
}

func TestDirectoryExtraExclude(t *testing.T) {
	fs := tree(t, "build/out.txt", "dist/notes.md", "src/notes.md")

	st, err := Directory(fs, root, Options{Exclude: []string{"build", "dist"}})
	require.NoError(t, err)
	require.Equal(t, []string{"src"}, st.Directories)
	require.Equal(t, []string{"src/notes.md"}, st.DocFiles)
}

func TestDirectorySort(t *testing.T) {
	fs := tree(t, "b/z.md", "a/y.md", "C/x.md", "README.md", "b/a/README.md")

	st, err := Directory(fs, root, Options{Sort: true})
	require.NoError(t, err)
	require.True(t, sort.StringsAreSorted(st.Directories))
	require.Equal(t, []string{"C", "a", "b", "b/a"}, st.Directories)
	require.Equal(t, []string{"C/x.md", "a/y.md", "b/z.md"}, st.DocFiles)
	require.Equal(t, []string{"README.md", "b/a/README.md"}, st.KeyFiles)
}

func TestDirectoryGitignore(t *testing.T) {
	fs := tree(t, "build/report.md", "secret.md", "notes.md")
	require.NoError(t, afero.WriteFile(fs, filepath.Join(root, ".gitignore"), []byte("build/\nsecret.md\n"), 0644))

	st, err := Directory(fs, root, Options{})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"build"}, st.Directories)
	require.ElementsMatch(t, []string{"build/report.md", "secret.md", "notes.md"}, st.DocFiles)

	st, err = Directory(fs, root, Options{RespectGitignore: true})
	require.NoError(t, err)
	require.Empty(t, st.Directories)
	require.Equal(t, []string{"notes.md"}, st.DocFiles)
}

func TestLoadGitignoreMissing(t *testing.T) {
	ignore, err := LoadGitignore(tree(t), root)
	require.NoError(t, err)
	require.Nil(t, ignore)
}

func TestDirectoryMissingRoot(t *testing.T) {
	_, err := Directory(afero.NewMemMapFs(), "/nonexistent", Options{})
	require.Error(t, err)
}

func TestDirectorySkipsLinkedDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "real"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real", "guide.md"), []byte("x"), 0644))
	if err := os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	st, err := Directory(afero.NewOsFs(), dir, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"real"}, st.Directories)
	require.Equal(t, []string{"real/guide.md"}, st.DocFiles)
}
