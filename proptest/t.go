package proptest

import (
	"fmt"
	"strings"
)

// TestingT is the part of *testing.T the runner reports to.
type TestingT interface {
	Helper()
	Name() string
	Logf(format string, args ...any)
	Errorf(format string, args ...any)
	FailNow()
}

// T is handed to a property body for one trial. It satisfies the TestingT
// interfaces of testify's assert, require and mock packages, so assertions
// can be used inside bodies. Failing a T fails the trial, not the test; the
// runner reports the failure with the seed afterwards.
type T struct {
	name     string
	trial    int
	failed   bool
	messages []string
	logs     []string
}

// trialFailNow unwinds a trial after FailNow.
type trialFailNow struct{}

func newT(name string, trial int) *T {
	return &T{name: name, trial: trial}
}

// Name returns the property name.
func (t *T) Name() string { return t.name }

// Trial returns the 1-based index of the trial within its seed's run.
func (t *T) Trial() int { return t.trial }

func (t *T) Helper() {}

func (t *T) Fail() { t.failed = true }

func (t *T) Failed() bool { return t.failed }

// FailNow marks the trial failed and stops the body.
func (t *T) FailNow() {
	t.failed = true
	panic(trialFailNow{})
}

func (t *T) Error(args ...any) {
	t.failed = true
	t.messages = append(t.messages, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (t *T) Errorf(format string, args ...any) {
	t.failed = true
	t.messages = append(t.messages, fmt.Sprintf(format, args...))
}

func (t *T) Fatal(args ...any) {
	t.Error(args...)
	t.FailNow()
}

func (t *T) Fatalf(format string, args ...any) {
	t.Errorf(format, args...)
	t.FailNow()
}

// Logf records a line that is shown only if the trial fails.
func (t *T) Logf(format string, args ...any) {
	t.logs = append(t.logs, fmt.Sprintf(format, args...))
}
