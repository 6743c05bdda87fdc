package watch

import (
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"github.com/muesli/cancelreader"

	"github.com/abhisek/gopherlings/internal/queue"
)

// DefaultResizePoll is how often the terminal width is sampled.
const DefaultResizePoll = 200 * time.Millisecond

// RawKind tells what a RawInput carries.
type RawKind int

const (
	RawKey RawKind = iota
	RawResize
	RawError
)

// RawInput is a low level terminal signal: a key press, a new width, or
// the error that stopped the reader.
type RawInput struct {
	Kind  RawKind
	Key   rune
	Width int
	Err   error
}

// InputSource reads key presses and polls the terminal width.
type InputSource struct {
	r     io.Reader
	width func() (int, error)
	poll  time.Duration
	out   *queue.Queue[RawInput]
}

// NewInputSource creates an input source reading r. width may be nil when
// the size is unknown.
func NewInputSource(r io.Reader, width func() (int, error), poll time.Duration, out *queue.Queue[RawInput]) *InputSource {
	return &InputSource{r: r, width: width, poll: poll, out: out}
}

// ReadKeys pushes one RawKey per rune read. A read error other than
// cancellation is pushed as RawError and ends the loop.
func (s *InputSource) ReadKeys(ctx context.Context) error {
	br := bufio.NewReader(s.r)
	for {
		r, _, err := br.ReadRune()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, cancelreader.ErrCanceled) {
				return nil
			}
			s.out.Push(RawInput{Kind: RawError, Err: err})
			return nil
		}
		s.out.Push(RawInput{Kind: RawKey, Key: r})
	}
}

// PollSize pushes a RawResize whenever the sampled width changes.
func (s *InputSource) PollSize(ctx context.Context) error {
	if s.width == nil {
		return nil
	}
	last, _ := s.width()

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w, err := s.width()
			if err != nil || w == last {
				continue
			}
			last = w
			s.out.Push(RawInput{Kind: RawResize, Width: w})
		}
	}
}
