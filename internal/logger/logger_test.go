package logger

import (
	"bytes"
	"os"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("published %s to %d handlers", "Marker.SelectionSet", 2)

	if got := buf.String(); got != "[DEBUG] published Marker.SelectionSet to 2 handlers\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Dataset Load")

	if got := buf.String(); got != "\n=== Dataset Load ===\n" {
		t.Errorf("unexpected section output: %q", got)
	}
}

func TestInfoAndWarn(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("loaded %d initiatives", 42)
	Warn("skipping row %d", 7)

	want := "[INFO] loaded 42 initiatives\n[WARN] skipping row 7\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestError_PrintsWithoutVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Error("opening dataset: %v", "permission denied")

	if got := buf.String(); got != "[ERROR] opening dataset: permission denied\n" {
		t.Errorf("unexpected error output: %q", got)
	}
}

func TestDiagnostic_PrintsWithoutVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Diagnostic("sidebar", "dropping %s: missing initiative", "Marker.SelectionSet")

	want := "[DIAG] sidebar: dropping Marker.SelectionSet: missing initiative\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected diagnostic output: %q", got)
	}
}

func TestOutput(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	if Output() != &buf {
		t.Error("expected Output to return the writer set by SetOutput")
	}
}
