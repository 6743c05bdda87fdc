// Package info reads the info file describing the exercise curriculum.
//
// The info file lists every exercise in curriculum order together with its
// hint and run flags. Community exercise packs ship an info.yaml in the
// working directory; otherwise the official embedded file is used.
package info

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CurrentFormatVersion is the newest info file format this build understands.
const CurrentFormatVersion = 1

var (
	// ErrNoExercises is returned for an info file without exercises.
	ErrNoExercises = errors.New("there are no exercises yet; add at least one exercise before testing")

	// ErrFormatVersion is returned when the info file is newer than this build.
	ErrFormatVersion = errors.New("the format version in the info file is higher than the last one supported; try installing the latest gopherlings first")
)

// ExerciseInfo is the static definition of a single exercise.
type ExerciseInfo struct {
	Name string `yaml:"name"`
	// Dir groups exercises of the same topic. Optional.
	Dir string `yaml:"dir"`
	// Test runs the exercise with `go test` instead of `go run`.
	Test bool `yaml:"test"`
	// StrictVet fails the exercise on any `go vet` diagnostic.
	StrictVet bool   `yaml:"strict_vet"`
	Hint      string `yaml:"hint"`
	// SkipCheckUnsolved excludes the exercise from the dev check that
	// unsolved exercises fail.
	SkipCheckUnsolved bool `yaml:"skip_check_unsolved"`
}

// FileName returns the base file name of the exercise.
func (e ExerciseInfo) FileName() string {
	if e.Test {
		return e.Name + "_test.go"
	}
	return e.Name + ".go"
}

// Path returns the exercise file path below exercisesDir.
func (e ExerciseInfo) Path(exercisesDir string) string {
	return filepath.Join(exercisesDir, e.Dir, e.FileName())
}

// SolutionPath returns the solution file path below solutionsDir.
func (e ExerciseInfo) SolutionPath(solutionsDir string) string {
	return filepath.Join(solutionsDir, e.Dir, e.FileName())
}

// InfoFile is the parsed info file.
type InfoFile struct {
	FormatVersion  int            `yaml:"format_version"`
	WelcomeMessage string         `yaml:"welcome_message"`
	FinalMessage   string         `yaml:"final_message"`
	Exercises      []ExerciseInfo `yaml:"exercises"`

	// Official is true when the embedded exercises are in use.
	Official bool `yaml:"-"`
}

// Parse validates and decodes an info file.
func Parse(data []byte) (*InfoFile, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var f InfoFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode info file: %w", err)
	}

	if len(f.Exercises) == 0 {
		return nil, ErrNoExercises
	}
	if f.FormatVersion > CurrentFormatVersion {
		return nil, ErrFormatVersion
	}

	seen := make(map[string]bool, len(f.Exercises))
	for _, e := range f.Exercises {
		if seen[e.Name] {
			return nil, fmt.Errorf("exercise name %q is used more than once", e.Name)
		}
		seen[e.Name] = true
	}

	return &f, nil
}

// Load reads the info file at path. When the file does not exist the
// embedded official file is parsed instead and Official is set.
func Load(path string, official []byte) (*InfoFile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		f, err := Parse(official)
		if err != nil {
			return nil, fmt.Errorf("parse embedded info file: %w", err)
		}
		f.Official = true
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read info file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}
