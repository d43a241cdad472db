package system

import (
	"context"
	"fmt"
	"testing"
)

func TestMockRunner_DefaultSucceeds(t *testing.T) {
	m := NewMockRunner()

	result, err := m.Run(context.Background(), Invocation{Args: []string{"bash", "/tmp/x.sh"}})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !result.Success() {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}

	inv, ok := m.LastInvocation()
	if !ok {
		t.Fatal("No invocation recorded")
	}
	if inv.Program() != "bash" {
		t.Errorf("Program() = %q, want %q", inv.Program(), "bash")
	}
}

func TestMockRunner_PatternResponses(t *testing.T) {
	m := NewMockRunner()
	m.AddResponse("python3 -m", 2, nil)
	m.AddResponse("bash", 5, nil)

	result, _ := m.Run(context.Background(), Invocation{Args: []string{"python3", "-m", "venv"}})
	if result.ExitCode != 2 {
		t.Errorf("python3 -m ExitCode = %d, want 2", result.ExitCode)
	}

	result, _ = m.Run(context.Background(), Invocation{Args: []string{"bash", "script.sh"}})
	if result.ExitCode != 5 {
		t.Errorf("bash ExitCode = %d, want 5", result.ExitCode)
	}
}

func TestMockRunner_ErrorResponse(t *testing.T) {
	m := NewMockRunner()
	m.AddResponse("missing", 0, fmt.Errorf("not found"))

	result, err := m.Run(context.Background(), Invocation{Args: []string{"missing"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
}

func TestMockRunner_QueueTakesPrecedence(t *testing.T) {
	m := NewMockRunner()
	m.AddResponse("bash", 0, nil)
	m.Enqueue(MockResponse{ExitCode: 0}, MockResponse{ExitCode: 7})

	codes := []int{}
	for i := 0; i < 3; i++ {
		result, _ := m.Run(context.Background(), Invocation{Args: []string{"bash", "s.sh"}})
		codes = append(codes, result.ExitCode)
	}

	want := []int{0, 7, 0}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("call %d ExitCode = %d, want %d", i, codes[i], want[i])
		}
	}
}

func TestMockRunner_OnRunAndReset(t *testing.T) {
	m := NewMockRunner()
	seen := 0
	m.OnRun = func(inv Invocation) { seen++ }

	m.Run(context.Background(), Invocation{Args: []string{"a"}})
	m.Run(context.Background(), Invocation{Args: []string{"b"}})

	if seen != 2 {
		t.Errorf("OnRun called %d times, want 2", seen)
	}
	if m.Calls() != 2 {
		t.Errorf("Calls() = %d, want 2", m.Calls())
	}

	m.Reset()
	if m.Calls() != 0 {
		t.Errorf("Calls() after reset = %d, want 0", m.Calls())
	}
}

func TestStaticLocator(t *testing.T) {
	var loc SelfLocator = StaticLocator("/opt/bin/xvenv")
	path, err := loc.Executable()
	if err != nil {
		t.Fatalf("Executable error: %v", err)
	}
	if path != "/opt/bin/xvenv" {
		t.Errorf("Executable() = %q", path)
	}
}
