package main

import (
	"errors"
	"strings"
	"testing"
)

func TestSendRequiresMessage(t *testing.T) {
	cmd, err := parseSendCmd(nil, &root{program: "screenbell"})
	if err != nil {
		t.Fatalf("parseSendCmd failed: %v", err)
	}
	err = cmd.Run()
	if err == nil {
		t.Fatal("expected error for missing message")
	}
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
}

func TestSendUnknownSeverity(t *testing.T) {
	cmd, err := parseSendCmd([]string{"-m", "hello", "-severity", "fatal"}, &root{program: "screenbell"})
	if err != nil {
		t.Fatalf("parseSendCmd failed: %v", err)
	}
	err = cmd.Run()
	if err == nil {
		t.Fatal("expected error for unknown severity")
	}
	if !strings.Contains(err.Error(), "unknown severity") {
		t.Errorf("expected severity error, got %v", err)
	}
}

func TestSeverityFuncAliases(t *testing.T) {
	for _, name := range []string{"info", "warning", "warn", "error", "Info", "ERROR"} {
		if _, err := severityFunc(name); err != nil {
			t.Errorf("severityFunc(%q) failed: %v", name, err)
		}
	}
}

func TestRootUsageRenders(t *testing.T) {
	r := newRoot()
	msg := (&UsageError{of: r}).Error()
	if !strings.Contains(msg, "send") || !strings.Contains(msg, "version") {
		t.Errorf("usage text missing commands: %s", msg)
	}
}
