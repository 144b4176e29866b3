// Package manifest lists the dependencies declared in requirements.txt and
// package.json. Nothing is resolved; entries are reported as written.
package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/readmekit/projectinfo/constants"
	"github.com/readmekit/projectinfo/entity"
	"github.com/readmekit/projectinfo/errors"
	"github.com/spf13/afero"
)

// Collect reads the manifests found directly under root. Unparseable
// package.json content yields a warning and an empty node list; any other
// read failure is returned.
func Collect(fs afero.Fs, root string) (entity.Dependencies, []string, error) {
	deps := entity.NewDependencies()
	var warnings []string

	data, ok, err := readIfExists(fs, filepath.Join(root, constants.RequirementsFile))
	if err != nil {
		return deps, warnings, err
	}
	if ok {
		deps.Python = RequirementLines(data)
	}

	data, ok, err = readIfExists(fs, filepath.Join(root, constants.PackageJSONFile))
	if err != nil {
		return deps, warnings, err
	}
	if ok {
		names, err := DependencyNames(bytes.NewReader(data))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Could not parse %s: %v", constants.PackageJSONFile, err))
		} else {
			deps.Node = names
		}
	}

	return deps, warnings, nil
}

// RequirementLines splits content into lines without trimming or filtering.
// Blank lines and comments are kept; a final line terminator does not add an
// empty entry.
func RequirementLines(data []byte) []string {
	lines := []string{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	sc.Split(scanLines)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}

// scanLines is bufio.ScanLines that also ends a line at a lone \r.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		// a trailing \r may be the first half of \r\n
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func readIfExists(fs afero.Fs, path string) ([]byte, bool, error) {
	data, err := afero.ReadFile(fs, path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w %s: %v", errors.ManifestReadFailed, filepath.Base(path), err)
	}
	return data, true, nil
}
