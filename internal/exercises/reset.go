package exercises

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/abhisek/gopherlings/internal/curriculum"
)

// EmbeddedResetter restores official exercises from the embedded pack.
type EmbeddedResetter struct{}

// Reset overwrites the exercise file with its pristine content.
func (EmbeddedResetter) Reset(_ context.Context, ex curriculum.Exercise) error {
	src, err := exerciseFile(relDir(ex.Dir), filepath.Base(ex.Path))
	if err != nil {
		return fmt.Errorf("read embedded exercise %s: %w", ex.Name, err)
	}
	if err := os.WriteFile(ex.Path, src, 0o644); err != nil {
		return fmt.Errorf("reset %s: %w", ex.Path, err)
	}
	return nil
}

// GitResetter restores community exercises by stashing local changes.
type GitResetter struct {
	// Dir is the working directory git runs in. Empty means the current one.
	Dir string
}

// Reset runs `git stash push -- <path>`.
func (g GitResetter) Reset(ctx context.Context, ex curriculum.Exercise) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", "stash", "push", "--", ex.Path)
	cmd.Dir = g.Dir
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git stash push -- %s: %w: %s", ex.Path, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
