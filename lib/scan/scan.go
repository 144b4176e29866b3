// Package scan walks a project tree and sorts what it finds into directories,
// key files, test files and documentation.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	gitignore "github.com/monochromegane/go-gitignore"
	"github.com/readmekit/projectinfo/constants"
	"github.com/readmekit/projectinfo/entity"
	"github.com/readmekit/projectinfo/errors"
	"github.com/spf13/afero"
)

type Options struct {
	// Exclude adds directory names to ExcludedDirs for this scan.
	Exclude []string
	// Sort orders every list lexically. Off by default so the report keeps
	// walk order.
	Sort bool
	// RespectGitignore skips whatever the root .gitignore matches.
	RespectGitignore bool
}

// LoadGitignore compiles root/.gitignore. It returns nil when there is none.
func LoadGitignore(fs afero.Fs, root string) (gitignore.IgnoreMatcher, error) {
	f, err := fs.Open(filepath.Join(root, constants.GitignoreFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return gitignore.NewGitIgnoreFromReader(root, f), nil
}

// Directory walks root top-down. Excluded directories are neither listed nor
// entered; every other directory below root is listed, and files are
// recorded under the first Category they match. Walk errors abort the scan.
func Directory(fs afero.Fs, root string, opts Options) (entity.Structure, error) {
	st := entity.NewStructure()

	excluded := make(map[string]bool, len(ExcludedDirs)+len(opts.Exclude))
	for name := range ExcludedDirs {
		excluded[name] = true
	}
	for _, name := range opts.Exclude {
		excluded[name] = true
	}

	var ignore gitignore.IgnoreMatcher
	if opts.RespectGitignore {
		var err error
		if ignore, err = LoadGitignore(fs, root); err != nil {
			return st, fmt.Errorf("%w %v", errors.ScanFailed, err)
		}
	}

	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if excluded[info.Name()] {
				return filepath.SkipDir
			}
			if ignore != nil && ignore.Match(path, true) {
				return filepath.SkipDir
			}
			st.Directories = append(st.Directories, rel)
			return nil
		}

		// Links to directories are not followed and are not files either.
		if info.Mode()&os.ModeSymlink != 0 {
			if target, err := fs.Stat(path); err == nil && target.IsDir() {
				return nil
			}
		}

		if ignore != nil && ignore.Match(path, false) {
			return nil
		}

		switch Classify(info.Name()) {
		case KeyFile:
			st.KeyFiles = append(st.KeyFiles, rel)
		case TestFile:
			st.TestFiles = append(st.TestFiles, rel)
		case DocFile:
			st.DocFiles = append(st.DocFiles, rel)
		}
		return nil
	})
	if err != nil {
		return st, fmt.Errorf("%w %v", errors.ScanFailed, err)
	}

	if opts.Sort {
		sort.Strings(st.Directories)
		sort.Strings(st.KeyFiles)
		sort.Strings(st.TestFiles)
		sort.Strings(st.DocFiles)
	}
	return st, nil
}
