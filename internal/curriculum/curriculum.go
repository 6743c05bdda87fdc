// Package curriculum holds the ordered exercise list, its completion state,
// and the progress file it is persisted to.
package curriculum

import (
	"fmt"
	"io"
	"os"

	"github.com/abhisek/gopherlings/internal/info"
)

// Exercise is a single exercise of the curriculum. Everything except Done
// is fixed once the curriculum is loaded.
type Exercise struct {
	Name      string
	Dir       string
	Path      string
	Hint      string
	Test      bool
	StrictVet bool
	Done      bool
}

// Curriculum is the ordered exercise list plus the current exercise.
// It is not safe for concurrent use; the watch controller is its only
// writer.
type Curriculum struct {
	exercises []Exercise
	current   int
	doneCount int

	path string
	file *os.File
}

// Load builds the curriculum from its definitions and applies the progress
// record stored at progressPath. The file is created if needed and stays
// exclusively locked until Close. The returned bool reports whether a
// well-formed record was found.
func Load(defs []info.ExerciseInfo, exercisesDir, progressPath string) (*Curriculum, bool, error) {
	exercises := make([]Exercise, len(defs))
	for i, d := range defs {
		exercises[i] = Exercise{
			Name:      d.Name,
			Dir:       d.Dir,
			Path:      d.Path(exercisesDir),
			Hint:      d.Hint,
			Test:      d.Test,
			StrictVet: d.StrictVet,
		}
	}

	f, err := os.OpenFile(progressPath, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, false, fmt.Errorf("open progress file: %w", err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, false, &LockError{Path: progressPath, Err: err}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		unlockFile(f)
		f.Close()
		return nil, false, fmt.Errorf("read progress file: %w", err)
	}

	c := &Curriculum{exercises: exercises, path: progressPath, file: f}

	rec, ok := DecodeRecord(data)
	if ok {
		c.apply(rec)
	}
	return c, ok, nil
}

// New builds a curriculum that is not backed by a progress file. Persist
// is a no-op. Intended for tests and dry runs.
func New(exercises []Exercise, current int) *Curriculum {
	c := &Curriculum{exercises: exercises, current: current}
	for _, e := range exercises {
		if e.Done {
			c.doneCount++
		}
	}
	return c
}

func (c *Curriculum) apply(rec Record) {
	done := make(map[string]bool, len(rec.Done))
	for _, name := range rec.Done {
		done[name] = true
	}

	for i := range c.exercises {
		if done[c.exercises[i].Name] {
			c.exercises[i].Done = true
			c.doneCount++
		}
		if c.exercises[i].Name == rec.Current {
			c.current = i
		}
	}
}

// Close releases the progress file lock.
func (c *Curriculum) Close() error {
	if c.file == nil {
		return nil
	}
	unlockFile(c.file)
	err := c.file.Close()
	c.file = nil
	return err
}

// Len returns the number of exercises.
func (c *Curriculum) Len() int { return len(c.exercises) }

// Exercises returns the exercise list. Callers must not modify it.
func (c *Curriculum) Exercises() []Exercise { return c.exercises }

// Exercise returns the exercise at index i.
func (c *Curriculum) Exercise(i int) Exercise { return c.exercises[i] }

// CurrentIndex returns the index of the current exercise.
func (c *Curriculum) CurrentIndex() int { return c.current }

// Current returns the current exercise.
func (c *Curriculum) Current() Exercise { return c.exercises[c.current] }

// DoneCount returns the number of done exercises.
func (c *Curriculum) DoneCount() int { return c.doneCount }

// IndexOf returns the index of the exercise with the given name.
func (c *Curriculum) IndexOf(name string) (int, bool) {
	for i, e := range c.exercises {
		if e.Name == name {
			return i, true
		}
	}
	return 0, false
}

// SetDone sets the done flag of exercise i and reports whether it changed.
// A false result means there is nothing to persist.
func (c *Curriculum) SetDone(i int, done bool) bool {
	e := &c.exercises[i]
	if e.Done == done {
		return false
	}

	e.Done = done
	if done {
		c.doneCount++
	} else {
		c.doneCount--
	}
	return true
}

// SetPending marks exercise i as pending and persists if that changed it.
func (c *Curriculum) SetPending(i int) error {
	if !c.SetDone(i, false) {
		return nil
	}
	return c.Persist()
}

// SetCurrent makes exercise i the current one and persists the change.
func (c *Curriculum) SetCurrent(i int) error {
	if i < 0 || i >= len(c.exercises) {
		return &RangeError{Index: i, Len: len(c.exercises)}
	}
	if i == c.current {
		return nil
	}

	c.current = i
	return c.Persist()
}

// NextPendingIndex searches forward from the current exercise, wrapping
// around once, and returns the first pending exercise. The current
// exercise itself is never returned.
func (c *Curriculum) NextPendingIndex() (int, bool) {
	for i := c.current + 1; i < len(c.exercises); i++ {
		if !c.exercises[i].Done {
			return i, true
		}
	}
	for i := 0; i < c.current; i++ {
		if !c.exercises[i].Done {
			return i, true
		}
	}
	return 0, false
}

// Record returns the progress record of the curriculum.
func (c *Curriculum) Record() Record {
	rec := Record{Current: c.exercises[c.current].Name}
	for _, e := range c.exercises {
		if e.Done {
			rec.Done = append(rec.Done, e.Name)
		}
	}
	return rec
}

// Persist overwrites the progress file with the current record.
func (c *Curriculum) Persist() error {
	if c.file == nil {
		return nil
	}

	data := EncodeRecord(c.Record())
	if err := c.file.Truncate(0); err != nil {
		return fmt.Errorf("truncate progress file: %w", err)
	}
	if _, err := c.file.WriteAt(data, 0); err != nil {
		return fmt.Errorf("write progress file: %w", err)
	}
	return nil
}
