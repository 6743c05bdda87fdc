package watch

import (
	"context"
	"fmt"
	"sync"

	"github.com/abhisek/gopherlings/internal/curriculum"
	"github.com/abhisek/gopherlings/internal/exercises"
	"github.com/abhisek/gopherlings/internal/queue"
	"github.com/abhisek/gopherlings/internal/runner"
)

type fakeRunner struct {
	mu   sync.Mutex
	fail map[string]bool
	runs map[string]int
	err  error
}

func newFakeRunner(failing ...string) *fakeRunner {
	r := &fakeRunner{fail: map[string]bool{}, runs: map[string]int{}}
	for _, name := range failing {
		r.fail[name] = true
	}
	return r
}

func (r *fakeRunner) Run(_ context.Context, ex curriculum.Exercise) (runner.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs[ex.Name]++
	if r.err != nil {
		return runner.Result{}, r.err
	}
	ok := !r.fail[ex.Name]
	return runner.Result{Success: ok, Output: fmt.Sprintf("%s success=%t", ex.Name, ok)}, nil
}

func (r *fakeRunner) setFail(name string, fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail[name] = fail
}

func (r *fakeRunner) setErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *fakeRunner) count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs[name]
}

type fakeRenderer struct {
	mu       sync.Mutex
	snaps    []Snapshot
	statuses []string
	confirms []string
	finals   []string
	progress [][2]int

	statusErrs  map[string]error
	progressErr error
	finalErr    error
}

func (f *fakeRenderer) Render(s Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snaps = append(f.snaps, s)
	return nil
}

func (f *fakeRenderer) Status(msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, msg)
	return f.statusErrs[msg]
}

func (f *fakeRenderer) CheckProgress(done, total int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress = append(f.progress, [2]int{done, total})
	return f.progressErr
}

func (f *fakeRenderer) ConfirmReset(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirms = append(f.confirms, path)
	return nil
}

func (f *fakeRenderer) Final(msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finals = append(f.finals, msg)
	return f.finalErr
}

func (f *fakeRenderer) renders() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.snaps)
}

func (f *fakeRenderer) last() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snaps[len(f.snaps)-1]
}

type fakeResetter struct {
	reset []string
	err   error
}

func (f *fakeResetter) Reset(_ context.Context, ex curriculum.Exercise) error {
	f.reset = append(f.reset, ex.Name)
	return f.err
}

type noSolutions struct{}

func (noSolutions) Path(curriculum.Exercise) (string, error) {
	return "", exercises.ErrNoSolution
}

type fixedSolutions struct{}

func (fixedSolutions) Path(ex curriculum.Exercise) (string, error) {
	return "solutions/" + ex.Name + ".go", nil
}

func newCurriculum(n, current int, done ...int) *curriculum.Curriculum {
	exs := make([]curriculum.Exercise, n)
	for i := range exs {
		exs[i] = curriculum.Exercise{
			Name: fmt.Sprintf("ex%d", i),
			Path: fmt.Sprintf("exercises/ex%d.go", i),
			Hint: fmt.Sprintf("hint %d", i),
		}
	}
	for _, i := range done {
		exs[i].Done = true
	}
	return curriculum.New(exs, current)
}

type harness struct {
	state    *WatchState
	render   *fakeRenderer
	resetter *fakeResetter
	guard    *PauseGuard
	raw      *queue.Queue[RawInput]
}

func newHarness(cur *curriculum.Curriculum, r runner.Runner, opts Options) *harness {
	h := &harness{
		render:   &fakeRenderer{},
		resetter: &fakeResetter{},
		guard:    &PauseGuard{},
		raw:      queue.New[RawInput](),
	}
	if opts.CheckJobs == 0 {
		opts.CheckJobs = 2
	}
	h.state = NewWatchState(cur, Deps{
		Runner:    r,
		Resetter:  h.resetter,
		Solutions: noSolutions{},
		Renderer:  h.render,
		Guard:     h.guard,
		Raw:       h.raw,
	}, opts)
	return h
}

func key(r rune) RawInput {
	return RawInput{Kind: RawKey, Key: r}
}

func drain(q *queue.Queue[Event]) []Event {
	var out []Event
	for {
		ev, ok := q.TryPop()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}
