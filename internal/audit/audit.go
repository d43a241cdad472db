// Package audit provides structured event logging for xvenv runs.
// Events are stored as JSON Lines (JSONL) files, one per project.
package audit

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// EventType classifies an event.
type EventType string

const (
	EventCreate  EventType = "create"
	EventStep    EventType = "step"
	EventRun     EventType = "run"
	EventDestroy EventType = "destroy"
	EventClone   EventType = "clone"
	EventError   EventType = "error"
)

// Event represents a single audit log entry.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id,omitempty"`
	Type      EventType `json:"type"`
	Project   string    `json:"project"`
	Step      string    `json:"step,omitempty"`
	ExitCode  int       `json:"exit_code"`
	Details   string    `json:"details,omitempty"`
}

// Logger writes and reads audit events for projects.
// Events are stored in {stateDir}/projects/{key}.events.jsonl.
type Logger struct {
	stateDir string
	runID    string
}

// NewLogger creates a new audit logger rooted at stateDir. Every event it
// writes carries the same freshly generated run id.
func NewLogger(stateDir string) *Logger {
	return &Logger{stateDir: stateDir, runID: uuid.NewString()}
}

// RunID returns the id stamped on events written by this logger.
func (l *Logger) RunID() string {
	return l.runID
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ProjectKey derives a file-safe key from a working directory: the
// sanitized base name followed by a short hash of the full path.
func ProjectKey(workDir string) string {
	abs, err := filepath.Abs(workDir)
	if err != nil {
		abs = workDir
	}
	sum := sha256.Sum256([]byte(abs))

	base := unsafeChars.ReplaceAllString(filepath.Base(abs), "_")
	if base == "" || base == "." || base == string(filepath.Separator) || base == "_" {
		base = "root"
	}
	return base + "-" + hex.EncodeToString(sum[:])[:8]
}

// eventPath returns the path to the JSONL event log for a project.
func (l *Logger) eventPath(project string) string {
	return filepath.Join(l.stateDir, "projects", project+".events.jsonl")
}

// Log appends an event to the project's audit log.
func (l *Logger) Log(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.RunID == "" {
		event.RunID = l.runID
	}

	path := l.eventPath(event.Project)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create audit log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogStep records the outcome of one workflow step.
func (l *Logger) LogStep(project, step string, exitCode int, details string) error {
	return l.Log(Event{
		Type:     EventStep,
		Project:  project,
		Step:     step,
		ExitCode: exitCode,
		Details:  details,
	})
}

// LogEvent is a convenience method that creates and logs an event.
func (l *Logger) LogEvent(eventType EventType, project, details string) error {
	return l.Log(Event{
		Timestamp: time.Now(),
		Type:      eventType,
		Project:   project,
		Details:   details,
	})
}

// Events reads all events for a project in chronological order.
func (l *Logger) Events(project string) ([]Event, error) {
	path := l.eventPath(project)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			continue // Skip malformed lines
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("error reading audit log: %w", err)
	}

	return events, nil
}

// Remove deletes the audit log for a project.
func (l *Logger) Remove(project string) error {
	path := l.eventPath(project)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
