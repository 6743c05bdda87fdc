// Package runner compiles and runs exercises with the go tool.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/abhisek/gopherlings/internal/curriculum"
)

// Result is the outcome of one exercise run.
type Result struct {
	Success bool
	// Output is everything the toolchain and the program wrote to stdout
	// and stderr, in order.
	Output string
}

// Runner runs a single exercise. An error is returned only when the run
// could not be attempted or was cancelled; a failing exercise is a
// Result with Success false.
type Runner interface {
	Run(ctx context.Context, ex curriculum.Exercise) (Result, error)
}

// GoRunner runs exercises with `go run`, `go test` and `go vet`.
type GoRunner struct {
	goBin string
	dir   string
}

// NewGoRunner returns a runner using the go binary from PATH, running in
// the working directory.
func NewGoRunner() *GoRunner {
	return &GoRunner{goBin: "go"}
}

// WithDir returns a copy of the runner executing in dir.
func (r *GoRunner) WithDir(dir string) *GoRunner {
	cp := *r
	cp.dir = dir
	return &cp
}

func (r *GoRunner) Run(ctx context.Context, ex curriculum.Exercise) (Result, error) {
	var out bytes.Buffer

	if ex.StrictVet {
		ok, err := r.goCmd(ctx, &out, "vet", ex.Path)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			return Result{Success: false, Output: out.String()}, nil
		}
	}

	args := []string{"run", ex.Path}
	if ex.Test {
		args = []string{"test", "-count=1", ex.Path}
	}

	ok, err := r.goCmd(ctx, &out, args...)
	if err != nil {
		return Result{}, err
	}
	return Result{Success: ok, Output: out.String()}, nil
}

// goCmd runs the go tool and reports whether it exited cleanly.
func (r *GoRunner) goCmd(ctx context.Context, out *bytes.Buffer, args ...string) (bool, error) {
	cmd := exec.CommandContext(ctx, r.goBin, args...)
	cmd.Dir = r.dir
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, fmt.Errorf("go %s: %w", args[0], err)
}
