// Package fsutil expands input arguments into an ordered list of files.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/specialistvlad/routecycle/internal/input"
)

// ExpandInputs resolves every argument into files, in argument order:
//
//   - "-" is kept as is and means standard input;
//   - a pattern containing glob metacharacters is matched with doublestar
//     semantics ("data/**/*.psv") and its matches are sorted;
//   - a directory is walked recursively in lexical order, skipping hidden
//     files and directories;
//   - anything else must be an existing file.
//
// A file reached through more than one argument is listed once.
func ExpandInputs(args []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, arg := range args {
		if arg == input.Stdin {
			add(arg)
			continue
		}

		if isPattern(arg) {
			matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("invalid input pattern %q: %w", arg, err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("input pattern %q matched no files", arg)
			}
			slices.Sort(matches)
			for _, m := range matches {
				add(m)
			}
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("error accessing input %s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		found, err := FindFiles(arg)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("input directory %s contains no files", arg)
		}
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}

// FindFiles recursively lists the regular, non-hidden files under rootPath.
func FindFiles(rootPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != rootPath && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func isPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}
