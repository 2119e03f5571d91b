package execx

import (
	"context"
	"strings"
	"sync"
)

// Call records a single command invocation seen by a FakeRunner.
type Call struct {
	Name string
	Args []string
	Env  []string
}

// String renders the call the way it would appear in a shell.
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// FakeRunner is a scriptable Runner for tests. Responses are keyed by the
// rendered command line; unmatched commands succeed with empty output.
type FakeRunner struct {
	outputs map[string][]byte
	errs    map[string]error
	calls   []Call
	mu      sync.Mutex
}

// NewFakeRunner creates an empty fake runner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		outputs: make(map[string][]byte),
		errs:    make(map[string]error),
	}
}

// Respond registers stdout for an exact command line.
func (f *FakeRunner) Respond(commandLine string, output []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[commandLine] = output
}

// Fail registers an error for an exact command line.
func (f *FakeRunner) Fail(commandLine string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[commandLine] = err
}

// Calls returns a copy of every invocation recorded so far.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallLines returns the recorded invocations rendered as command lines.
func (f *FakeRunner) CallLines() []string {
	calls := f.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.String()
	}
	return lines
}

func (f *FakeRunner) record(call Call) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	line := call.String()
	return f.outputs[line], f.errs[line]
}

func (f *FakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	return f.record(Call{Name: name, Args: args})
}

func (f *FakeRunner) Run(_ context.Context, name string, args ...string) error {
	_, err := f.record(Call{Name: name, Args: args})
	return err
}

func (f *FakeRunner) RunWithEnv(_ context.Context, env []string, name string, args ...string) error {
	_, err := f.record(Call{Name: name, Args: args, Env: env})
	return err
}
