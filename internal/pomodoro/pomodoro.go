// ABOUTME: Pomodoro work/break cycle as a pure, tick-driven state machine.
// ABOUTME: Timing APIs stay outside; callers feed Tick once per elapsed second.
package pomodoro

import "fmt"

// Phase is the current cycle phase.
type Phase int

const (
	Idle Phase = iota
	Work
	Break
)

func (p Phase) String() string {
	switch p {
	case Work:
		return "work"
	case Break:
		return "break"
	default:
		return "idle"
	}
}

// Fixed phase durations in seconds.
const (
	WorkDuration  = 25 * 60
	BreakDuration = 5 * 60
)

// Machine is the pomodoro cycle. Drive it with Tick from any
// one-second scheduler; side effects fire through the injected
// callbacks so the machine itself stays clock-free.
type Machine struct {
	Phase             Phase
	TimeLeft          int
	TotalTime         int
	Running           bool
	SessionsCompleted int

	// AutoSwitchBreak keeps the countdown running into the break once
	// a work phase completes; when false the break waits for Resume.
	AutoSwitchBreak bool

	// OnWorkComplete fires when a full work phase elapses, with the
	// seconds to credit (the full work duration).
	OnWorkComplete func(seconds int)

	// OnStopWork fires when the machine is stopped mid-work with the
	// elapsed seconds, so partial work is not lost.
	OnStopWork func(seconds int)
}

// New returns an idle machine.
func New() *Machine {
	return &Machine{
		Phase:           Idle,
		TimeLeft:        WorkDuration,
		TotalTime:       WorkDuration,
		AutoSwitchBreak: true,
	}
}

// Start begins a fresh cycle from Idle.
func (m *Machine) Start() {
	m.Phase = Work
	m.TimeLeft = WorkDuration
	m.TotalTime = WorkDuration
	m.Running = true
	m.SessionsCompleted = 0
}

// Pause suspends the countdown without changing phase or remaining time.
func (m *Machine) Pause() {
	m.Running = false
}

// Resume continues the countdown.
func (m *Machine) Resume() {
	if m.Phase != Idle {
		m.Running = true
	}
}

// Stop resets to Idle. Stopping mid-work fires OnStopWork with the
// elapsed seconds when any work has accumulated.
func (m *Machine) Stop() {
	if m.Phase == Work {
		elapsed := m.TotalTime - m.TimeLeft
		if elapsed > 0 && m.OnStopWork != nil {
			m.OnStopWork(elapsed)
		}
	}
	m.Phase = Idle
	m.TimeLeft = WorkDuration
	m.TotalTime = WorkDuration
	m.Running = false
	m.SessionsCompleted = 0
}

// Skip jumps to the next phase without waiting out the countdown.
// Skipping work credits nothing; skipping a break counts the session.
func (m *Machine) Skip() {
	switch m.Phase {
	case Work:
		m.enterBreak()
	case Break:
		m.SessionsCompleted++
		m.enterWork()
	}
}

// Tick advances the countdown by one logical second. It is a no-op
// unless the machine is running in a timed phase.
func (m *Machine) Tick() {
	if !m.Running || m.Phase == Idle {
		return
	}
	m.TimeLeft--
	if m.TimeLeft > 0 {
		return
	}
	switch m.Phase {
	case Work:
		if m.OnWorkComplete != nil {
			m.OnWorkComplete(WorkDuration)
		}
		m.enterBreak()
		if !m.AutoSwitchBreak {
			m.Running = false
		}
	case Break:
		m.SessionsCompleted++
		m.enterWork()
	}
}

func (m *Machine) enterWork() {
	m.Phase = Work
	m.TimeLeft = WorkDuration
	m.TotalTime = WorkDuration
}

func (m *Machine) enterBreak() {
	m.Phase = Break
	m.TimeLeft = BreakDuration
	m.TotalTime = BreakDuration
}

// Progress is the remaining fraction of the current phase, in [0, 1].
func (m *Machine) Progress() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.TimeLeft) / float64(m.TotalTime)
}

// Clock renders the remaining time as MM:SS.
func (m *Machine) Clock() string {
	secs := m.TimeLeft
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
