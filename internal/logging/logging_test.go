package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantDebug bool
		wantJSON  bool
	}{
		{"text", Options{}, false, false},
		{"text debug", Options{Debug: true}, true, false},
		{"json", Options{JSON: true}, false, true},
		{"json debug", Options{Debug: true, JSON: true}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := tt.opts
			opts.Writer = &buf
			Setup(opts)
			t.Cleanup(func() { Setup(Options{}) })

			Debug("trace", "args", "python3 -m venv .venv")
			Info("keeping temporary script", "path", "/tmp/xvenv-1.sh")

			output := buf.String()
			if got := strings.Contains(output, "trace"); got != tt.wantDebug {
				t.Errorf("debug record written = %v, want %v: %s", got, tt.wantDebug, output)
			}
			if !strings.Contains(output, "keeping temporary script") {
				t.Errorf("info record missing: %s", output)
			}
			if got := strings.HasPrefix(output, "{"); got != tt.wantJSON {
				t.Errorf("JSON output = %v, want %v: %s", got, tt.wantJSON, output)
			}
			if got := strings.Contains(output, "time="); got {
				t.Errorf("text output should not carry a timestamp: %s", output)
			}
		})
	}
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{Writer: &buf})
	t.Cleanup(func() { Setup(Options{}) })

	Warn("failed to write audit event", "error", "disk full")

	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("output = %q, want a warning record", buf.String())
	}
}

func TestForStep(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{Debug: true, Writer: &buf})
	t.Cleanup(func() { Setup(Options{}) })

	ForStep("demo-1a2b3c4d", "pip").Debug("step finished")

	output := buf.String()
	for _, want := range []string{"step finished", "project=demo-1a2b3c4d", "step=pip"} {
		if !strings.Contains(output, want) {
			t.Errorf("output = %q, want %q", output, want)
		}
	}
}

func TestSetup_NilWriter(t *testing.T) {
	Setup(Options{Writer: nil})

	if Logger == nil {
		t.Error("Logger should not be nil after Setup with nil writer")
	}
}

func TestUserMessages(t *testing.T) {
	var out, errOut bytes.Buffer
	SetUserOutput(&out, &errOut)
	defer SetUserOutput(nil, nil)

	UserInfo("building %s", "dist")
	UserSuccess("done")
	UserWarning("careful")
	UserError("%s failed", "build")

	stdout := out.String()
	if !strings.Contains(stdout, "ℹ building dist") {
		t.Errorf("stdout missing info line: %q", stdout)
	}
	if !strings.Contains(stdout, "✓ done") {
		t.Errorf("stdout missing success line: %q", stdout)
	}

	stderr := errOut.String()
	if !strings.Contains(stderr, "⚠ careful") {
		t.Errorf("stderr missing warning line: %q", stderr)
	}
	if !strings.Contains(stderr, "✗ build failed") {
		t.Errorf("stderr missing error line: %q", stderr)
	}
}

func TestUserStep(t *testing.T) {
	var out bytes.Buffer
	SetUserOutput(&out, nil)
	defer SetUserOutput(nil, nil)

	UserStep(2, 6, "pip")

	if !strings.Contains(out.String(), "[2/6] pip") {
		t.Errorf("step banner = %q, want it to contain %q", out.String(), "[2/6] pip")
	}
}

func TestUserOutput(t *testing.T) {
	var errOut bytes.Buffer
	SetUserOutput(nil, &errOut)
	defer SetUserOutput(nil, nil)

	UserOutput("line one\nline two\n")
	UserOutput("")

	got := errOut.String()
	if !strings.Contains(got, "line one") || !strings.Contains(got, "line two") {
		t.Errorf("output = %q, want both lines", got)
	}
	if n := strings.Count(got, "\n"); n != 2 {
		t.Errorf("got %d lines, want 2", n)
	}
}
