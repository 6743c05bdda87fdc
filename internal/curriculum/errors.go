package curriculum

import "fmt"

// LockError indicates the progress file is held by another instance.
type LockError struct {
	Path string
	Err  error
}

func (e *LockError) Error() string {
	return fmt.Sprintf("failed to lock %s, another instance of gopherlings is probably running in this directory: %v", e.Path, e.Err)
}

func (e *LockError) Unwrap() error { return e.Err }

// RangeError indicates an exercise index outside the curriculum.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("exercise index %d out of range [0, %d)", e.Index, e.Len)
}
