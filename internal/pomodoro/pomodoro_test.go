// ABOUTME: Tests for the tick-driven pomodoro state machine.
// ABOUTME: Drives full cycles with synthetic ticks and asserts callbacks.
package pomodoro

import "testing"

func tick(m *Machine, n int) {
	for i := 0; i < n; i++ {
		m.Tick()
	}
}

func TestFullWorkPhaseEntersBreak(t *testing.T) {
	m := New()
	var credited []int
	m.OnWorkComplete = func(seconds int) { credited = append(credited, seconds) }

	m.Start()
	if m.Phase != Work || !m.Running {
		t.Fatalf("after Start: phase=%v running=%v", m.Phase, m.Running)
	}

	tick(m, WorkDuration)

	if m.Phase != Break {
		t.Errorf("phase = %v, want Break", m.Phase)
	}
	if m.TimeLeft != BreakDuration {
		t.Errorf("TimeLeft = %d, want %d", m.TimeLeft, BreakDuration)
	}
	if !m.Running {
		t.Error("auto-switch should keep the countdown running")
	}
	if len(credited) != 1 || credited[0] != WorkDuration {
		t.Errorf("OnWorkComplete calls = %v, want one call with %d", credited, WorkDuration)
	}
	if m.SessionsCompleted != 0 {
		t.Errorf("SessionsCompleted = %d, want 0 until break ends", m.SessionsCompleted)
	}
}

func TestFullCycleCountsSession(t *testing.T) {
	m := New()
	m.Start()
	tick(m, WorkDuration+BreakDuration)

	if m.Phase != Work {
		t.Errorf("phase = %v, want Work", m.Phase)
	}
	if m.TimeLeft != WorkDuration {
		t.Errorf("TimeLeft = %d, want %d", m.TimeLeft, WorkDuration)
	}
	if m.SessionsCompleted != 1 {
		t.Errorf("SessionsCompleted = %d, want 1", m.SessionsCompleted)
	}
}

func TestManualBreakWaitsForResume(t *testing.T) {
	m := New()
	m.AutoSwitchBreak = false
	m.Start()
	tick(m, WorkDuration)

	if m.Phase != Break {
		t.Fatalf("phase = %v, want Break", m.Phase)
	}
	if m.Running {
		t.Error("break should wait for Resume")
	}

	// Ticks do nothing while paused
	tick(m, 10)
	if m.TimeLeft != BreakDuration {
		t.Errorf("TimeLeft = %d, want %d", m.TimeLeft, BreakDuration)
	}

	m.Resume()
	tick(m, BreakDuration)
	if m.Phase != Work || m.SessionsCompleted != 1 {
		t.Errorf("after resumed break: phase=%v sessions=%d", m.Phase, m.SessionsCompleted)
	}
}

func TestStopMidWorkCreditsElapsed(t *testing.T) {
	m := New()
	var stopped []int
	m.OnStopWork = func(seconds int) { stopped = append(stopped, seconds) }

	m.Start()
	tick(m, 90)
	m.Stop()

	if len(stopped) != 1 || stopped[0] != 90 {
		t.Errorf("OnStopWork calls = %v, want one call with 90", stopped)
	}
	if m.Phase != Idle || m.Running {
		t.Errorf("after Stop: phase=%v running=%v", m.Phase, m.Running)
	}
	if m.TimeLeft != WorkDuration {
		t.Errorf("TimeLeft = %d, want %d", m.TimeLeft, WorkDuration)
	}
}

func TestStopWithoutElapsedIsSilent(t *testing.T) {
	m := New()
	called := false
	m.OnStopWork = func(int) { called = true }

	m.Start()
	m.Stop()
	if called {
		t.Error("OnStopWork fired with zero elapsed work")
	}

	// Stopping from Idle is a no-op for the callback too
	m.Stop()
	if called {
		t.Error("OnStopWork fired from Idle")
	}
}

func TestPause(t *testing.T) {
	m := New()
	m.Start()
	tick(m, 30)
	m.Pause()
	tick(m, 100)

	if m.TimeLeft != WorkDuration-30 {
		t.Errorf("TimeLeft = %d, want %d", m.TimeLeft, WorkDuration-30)
	}

	m.Resume()
	tick(m, 1)
	if m.TimeLeft != WorkDuration-31 {
		t.Errorf("TimeLeft = %d, want %d", m.TimeLeft, WorkDuration-31)
	}
}

func TestResumeFromIdleIsNoOp(t *testing.T) {
	m := New()
	m.Resume()
	if m.Running {
		t.Error("Resume from Idle must not start the countdown")
	}
}

func TestSkip(t *testing.T) {
	m := New()
	var credited []int
	m.OnWorkComplete = func(seconds int) { credited = append(credited, seconds) }

	m.Start()
	tick(m, 60)
	m.Skip()

	if m.Phase != Break {
		t.Errorf("phase = %v, want Break", m.Phase)
	}
	if len(credited) != 0 {
		t.Error("skipping work must not credit time")
	}

	m.Skip()
	if m.Phase != Work || m.SessionsCompleted != 1 {
		t.Errorf("after break skip: phase=%v sessions=%d", m.Phase, m.SessionsCompleted)
	}

	// Skip from Idle does nothing
	m.Stop()
	m.Skip()
	if m.Phase != Idle {
		t.Errorf("phase = %v, want Idle", m.Phase)
	}
}

func TestProgressAndClock(t *testing.T) {
	m := New()
	if m.Progress() != 1.0 {
		t.Errorf("idle Progress = %f, want 1", m.Progress())
	}
	if m.Clock() != "25:00" {
		t.Errorf("Clock = %q, want 25:00", m.Clock())
	}

	m.Start()
	tick(m, WorkDuration/2)
	if m.Progress() != 0.5 {
		t.Errorf("Progress = %f, want 0.5", m.Progress())
	}
	if m.Clock() != "12:30" {
		t.Errorf("Clock = %q, want 12:30", m.Clock())
	}

	tick(m, WorkDuration/2)
	if m.Clock() != "05:00" {
		t.Errorf("break Clock = %q, want 05:00", m.Clock())
	}
}
