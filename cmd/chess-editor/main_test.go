package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chess-editor-go/internal/config"
)

// testConfig returns a plain-text config writing into buf.
func testConfig(buf *bytes.Buffer) *config.Config {
	cfg := config.NewConfig()
	cfg.Output = buf
	cfg.UseColor = false
	return cfg
}

func TestRun_AllExamples(t *testing.T) {
	resetFlags(t)

	var buf bytes.Buffer
	if err := run(testConfig(&buf)); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Example 1: Standard board",
		"Example 2: Irregular cross",
		"Example 3: Custom diagonal",
		"♜", "♔", "·",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("run() output missing %q", want)
		}
	}
}

func TestRun_SingleExample(t *testing.T) {
	resetFlags(t)
	*exampleNum = 2

	var buf bytes.Buffer
	if err := run(testConfig(&buf)); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Example 2: Irregular cross") {
		t.Error("run() output missing the selected example")
	}
	if strings.Contains(out, "Example 1") || strings.Contains(out, "Example 3") {
		t.Error("run() output contains unselected examples")
	}
}

func TestRun_Quiet(t *testing.T) {
	resetFlags(t)

	var buf bytes.Buffer
	cfg := testConfig(&buf)
	cfg.Verbosity = 0
	if err := run(cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if strings.Contains(buf.String(), "Example") {
		t.Error("quiet output contains example titles")
	}
	if !strings.Contains(buf.String(), "♔") {
		t.Error("quiet output missing the board grids")
	}
}

func TestRun_Verbose(t *testing.T) {
	resetFlags(t)

	var buf bytes.Buffer
	cfg := testConfig(&buf)
	cfg.Verbosity = 2
	if err := run(cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"64 cells, rows 0-7, cols 0-7",
		"45 cells, rows 0-8, cols 0-8",
		"21 cells, rows 0-7, cols 0-7",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q", want)
		}
	}
}

func TestRun_UnknownThemeFails(t *testing.T) {
	resetFlags(t)

	var buf bytes.Buffer
	cfg := testConfig(&buf)
	cfg.ThemeName = "neon"
	if err := run(cfg); err == nil {
		t.Error("run() error = nil; want theme lookup failure")
	}
}
