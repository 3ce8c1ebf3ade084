package core_test

import (
	"errors"
	"testing"

	"cultivation/internal/core"
	"cultivation/internal/core/logtest"
)

func TestLifecycleTransitions(t *testing.T) {
	var created, exited int
	rec := &logtest.Recorder{}
	l := core.NewLifecycle("test", rec, func() { created++ }, func() { exited++ })

	if l.Active() || l.State() != core.StateInactive {
		t.Fatalf("new lifecycle should be inactive, got %s", l.State())
	}
	if err := l.Exit(); !errors.Is(err, core.ErrNotActive) {
		t.Fatalf("exit before create: got %v", err)
	}
	if err := l.Create(); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !l.Active() || created != 1 {
		t.Fatalf("after create active=%v created=%d", l.Active(), created)
	}
	if err := l.Create(); !errors.Is(err, core.ErrAlreadyActive) {
		t.Fatalf("second create: got %v", err)
	}
	if created != 1 {
		t.Fatalf("setup ran %d times, want 1", created)
	}
	if err := l.Exit(); err != nil {
		t.Fatalf("exit: %v", err)
	}
	if l.Active() || exited != 1 {
		t.Fatalf("after exit active=%v exited=%d", l.Active(), exited)
	}
	if err := l.Create(); err != nil {
		t.Fatalf("re-activation: %v", err)
	}
	if created != 2 {
		t.Fatalf("setup ran %d times after re-activation, want 2", created)
	}
	if !rec.Contains("test: created") || !rec.Contains("test: exited") {
		t.Fatalf("missing lifecycle log lines: %v", rec.Lines)
	}
}

func TestLifecycleNilHooksAndLogger(t *testing.T) {
	l := core.NewLifecycle("bare", nil, nil, nil)
	if err := l.Create(); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := l.Exit(); err != nil {
		t.Fatalf("exit: %v", err)
	}
	if l.Name() != "bare" {
		t.Fatalf("name %q", l.Name())
	}
}
