package exercises

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abhisek/gopherlings/internal/curriculum"
)

// ErrNoSolution is returned when an exercise has no solution to show.
var ErrNoSolution = errors.New("no solution available")

// Solutions locates solution files for done exercises.
type Solutions struct {
	Dir      string
	Official bool
}

// Path returns the solution path of ex. Official solutions are written from
// the embedded pack first; community solutions must already exist on disk.
func (s Solutions) Path(ex curriculum.Exercise) (string, error) {
	name := filepath.Base(ex.Path)
	dst := filepath.Join(s.Dir, ex.Dir, name)

	if !s.Official {
		if _, err := os.Stat(dst); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", ErrNoSolution
			}
			return "", fmt.Errorf("stat %s: %w", dst, err)
		}
		return dst, nil
	}

	src, err := solutionFile(relDir(ex.Dir), name)
	if err != nil {
		return "", ErrNoSolution
	}
	if err := writeFile(dst, src); err != nil {
		return "", err
	}
	return dst, nil
}
