package watch

import "fmt"

const watcherHelp = `The automatic detection of exercise file changes failed :(
Please try running gopherlings again.

If you keep getting this error, run "gopherlings --manual-run" to deactivate the file watcher.
You need to manually trigger running the current exercise using "r" then.`

// WatcherError wraps a failure of the file watcher or the debouncer.
type WatcherError struct {
	Err error
}

func (e *WatcherError) Error() string {
	return fmt.Sprintf("%s\n\n%v", watcherHelp, e.Err)
}

func (e *WatcherError) Unwrap() error { return e.Err }

// InputError wraps a failure of the terminal input reader.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("terminal event listener failed: %v", e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
