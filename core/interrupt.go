package core

import (
	"fmt"
	"os"
	"syscall"
)

// InterruptError reports that the loop stopped because of a signal
type InterruptError struct {
	Signal os.Signal
}

func (e *InterruptError) Error() string {
	return fmt.Sprintf("interrupted by %v", e.Signal)
}

// ExitCode is the raw signal number, or 1 for non-numeric signals
func (e *InterruptError) ExitCode() int {
	if s, ok := e.Signal.(syscall.Signal); ok {
		return int(s)
	}
	return 1
}
