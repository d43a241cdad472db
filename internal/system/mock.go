package system

import (
	"context"
	"sync"
)

// MockRunner implements Runner for testing.
type MockRunner struct {
	mu sync.Mutex

	// Invocations records all run invocations for verification.
	Invocations []Invocation

	// Responses maps command patterns to responses.
	// Key format: "program" or "program arg0".
	Responses map[string]MockResponse

	// DefaultResponse is used when no matching response is found.
	DefaultResponse MockResponse

	// OnRun is called with each invocation before the response is returned.
	// Tests use it to read generated scripts while they still exist.
	OnRun func(inv Invocation)

	// queue holds responses consumed in call order before any pattern lookup.
	queue []MockResponse
}

// MockResponse defines the response for an invocation.
type MockResponse struct {
	ExitCode int
	Output   string
	Err      error
}

// NewMockRunner creates a new MockRunner that succeeds by default.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Invocations: make([]Invocation, 0),
		Responses:   make(map[string]MockResponse),
	}
}

// AddResponse adds a response for a specific command pattern.
func (m *MockRunner) AddResponse(pattern string, exitCode int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[pattern] = MockResponse{ExitCode: exitCode, Err: err}
}

// Enqueue appends responses returned in call order, ahead of pattern matches.
func (m *MockRunner) Enqueue(responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, responses...)
}

func (m *MockRunner) Run(ctx context.Context, inv Invocation) (*Result, error) {
	m.mu.Lock()
	m.Invocations = append(m.Invocations, inv)
	hook := m.OnRun
	resp := m.lookup(inv)
	m.mu.Unlock()

	if hook != nil {
		hook(inv)
	}

	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Result{ExitCode: resp.ExitCode, Output: resp.Output}, nil
}

func (m *MockRunner) lookup(inv Invocation) MockResponse {
	if len(m.queue) > 0 {
		resp := m.queue[0]
		m.queue = m.queue[1:]
		return resp
	}

	name := inv.Program()
	key := name
	if len(inv.Args) > 1 {
		key = name + " " + inv.Args[1]
	}

	if resp, ok := m.Responses[key]; ok {
		return resp
	}
	if resp, ok := m.Responses[name]; ok {
		return resp
	}
	return m.DefaultResponse
}

// Calls returns the number of recorded invocations.
func (m *MockRunner) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Invocations)
}

// LastInvocation returns the most recent invocation.
func (m *MockRunner) LastInvocation() (Invocation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Invocations) == 0 {
		return Invocation{}, false
	}
	return m.Invocations[len(m.Invocations)-1], true
}

// Reset clears all recorded invocations and queued responses.
func (m *MockRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Invocations = make([]Invocation, 0)
	m.queue = nil
}

// StaticLocator is a SelfLocator returning a fixed path.
type StaticLocator string

func (s StaticLocator) Executable() (string, error) {
	return string(s), nil
}
