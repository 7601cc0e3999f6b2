package callstack

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nickwells/timer.mod/timer"
	"github.com/nickwells/verbose.mod/verbose"
)

const maxStackWidth = 30

// Stack used in conjunction with the timer and verbose packages this
// will report how long each stage took to run
type Stack struct {
	ShowTimings bool
	W           io.Writer
	stack       []string
}

// Writer returns the writer to which reports are sent, this is standard
// error unless W has been set
func (s *Stack) Writer() io.Writer {
	if s.W == nil {
		return os.Stderr
	}

	return s.W
}

// Start reports the start of the stage, starts a timer and returns the
// function to be called when the stage ends.
func (s *Stack) Start(tag, msg string) func() {
	s.stack = append(s.stack, tag)

	switch {
	case verbose.IsOn():
		fmt.Fprintln(s.Writer(), s.Tag(), msg)
	case s.ShowTimings:
		fmt.Fprintln(s.Writer(), s.Tag(), "Start")
	default:
		return func() { s.popStack() }
	}

	return timer.Start(tag, s)
}

// Tag returns a stacked tag reflecting the current stack depth and
// right-filled.
func (s *Stack) Tag() string {
	if len(s.stack) == 0 {
		return strings.Repeat(".", maxStackWidth) + ":"
	}

	t := strings.Repeat("|    ", len(s.stack)-1) +
		s.stack[len(s.stack)-1]
	if len(t) < maxStackWidth {
		t += strings.Repeat(".", maxStackWidth-len(t))
	}

	return t + ":"
}

// popStack removes the last stack entry
func (s *Stack) popStack() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// Act satisfies the action function interface for a timer. It reports the
// tag and the duration in milliseconds
func (s *Stack) Act(_ string, d time.Duration) {
	tag := s.Tag()
	s.popStack()

	if verbose.IsOn() || s.ShowTimings {
		fmt.Fprintf(s.Writer(), "%s%12.3f msecs\n",
			tag, float64(d/time.Microsecond)/1000.0)
	}
}
