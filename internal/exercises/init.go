package exercises

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/abhisek/gopherlings/internal/info"
)

// ErrAlreadyInitialized is returned by Init when the target already holds
// exercises.
var ErrAlreadyInitialized = errors.New("gopherlings is already initialized")

const (
	initModulePath = "gopherlings/exercises"
	initGoVersion  = "1.25"
)

const gitignore = `*.exe
*.test
.gopherlings-state.txt
.vscode/
.idea/
`

const rootReadme = "# Gopherlings\n\nRun `gopherlings` in this directory to get started with the exercises.\n"

const solutionPlaceholder = `// DON'T EDIT THIS SOLUTION FILE!
// It will be automatically filled after you finish the exercise.

package %s
`

// Init creates dir and writes the official exercises into it, together
// with placeholder solutions and a go.mod so the go tool can build every
// exercise.
func Init(dir string, f *info.InfoFile) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("%w: a directory with the name %q already exists", ErrAlreadyInitialized, dir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if isDir("exercises") && isDir("solutions") {
		return fmt.Errorf("%w: the current directory already contains exercises/ and solutions/", ErrAlreadyInitialized)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	for _, e := range f.Exercises {
		src, err := exerciseFile(relDir(e.Dir), e.FileName())
		if err != nil {
			return fmt.Errorf("read embedded exercise %s: %w", e.Name, err)
		}
		if err := writeFile(filepath.Join(dir, e.Path("exercises")), src); err != nil {
			return err
		}

		placeholder := fmt.Sprintf(solutionPlaceholder, placeholderPackage(e))
		if err := writeFile(filepath.Join(dir, e.SolutionPath("solutions")), []byte(placeholder)); err != nil {
			return err
		}
	}

	for _, name := range []string{"exercises/README.md", "solutions/README.md"} {
		data, err := fs.ReadFile(Pack(), name)
		if err != nil {
			return fmt.Errorf("read embedded %s: %w", name, err)
		}
		if err := writeFile(filepath.Join(dir, filepath.FromSlash(name)), data); err != nil {
			return err
		}
	}

	gomod, err := goMod()
	if err != nil {
		return err
	}
	files := map[string][]byte{
		"go.mod":     gomod,
		".gitignore": []byte(gitignore),
		"README.md":  []byte(rootReadme),
	}
	for name, data := range files {
		if err := writeFile(filepath.Join(dir, name), data); err != nil {
			return err
		}
	}
	return nil
}

// goMod renders the go.mod of an initialised exercise directory.
func goMod() ([]byte, error) {
	var f modfile.File
	if err := f.AddModuleStmt(initModulePath); err != nil {
		return nil, fmt.Errorf("go.mod module: %w", err)
	}
	if err := f.AddGoStmt(initGoVersion); err != nil {
		return nil, fmt.Errorf("go.mod go version: %w", err)
	}
	data, err := f.Format()
	if err != nil {
		return nil, fmt.Errorf("format go.mod: %w", err)
	}
	return data, nil
}

func placeholderPackage(e info.ExerciseInfo) string {
	if !e.Test {
		return "main"
	}
	if pkg := strings.TrimLeft(e.Dir, "0123456789_"); pkg != "" {
		return pkg
	}
	return "exercise"
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
