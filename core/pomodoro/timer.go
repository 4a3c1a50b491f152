// Package pomodoro implements the study timer: work sessions alternating with short breaks,
// and a long break every few completed sessions.
package pomodoro

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "shortBreak"
	ModeLongBreak  Mode = "longBreak"
)

var ErrInvalidMode = errors.New("invalid timer mode")

// Settings holds the session lengths, in minutes.
type Settings struct {
	WorkTime          int `json:"workTime" validate:"min=1,max=120"`
	ShortBreakTime    int `json:"shortBreakTime" validate:"min=1,max=60"`
	LongBreakTime     int `json:"longBreakTime" validate:"min=1,max=120"`
	LongBreakInterval int `json:"longBreakInterval" validate:"min=1,max=12"`
}

func DefaultSettings() Settings {
	return Settings{WorkTime: 25, ShortBreakTime: 5, LongBreakTime: 15, LongBreakInterval: 4}
}

func (s *Settings) Validate(validate *validator.Validate) error {
	return validate.Struct(s)
}

// Duration returns the length of a session in `mode`.
func (s Settings) Duration(mode Mode) time.Duration {
	switch mode {
	case ModeShortBreak:
		return time.Duration(s.ShortBreakTime) * time.Minute
	case ModeLongBreak:
		return time.Duration(s.LongBreakTime) * time.Minute
	default:
		return time.Duration(s.WorkTime) * time.Minute
	}
}

// Event is emitted when a session runs out.
type Event struct {
	Finished  Mode `json:"finished"`
	Next      Mode `json:"next"`
	Completed int  `json:"completed"` // completed work sessions so far
}

func (e Event) Message() string {
	switch {
	case e.Finished != ModeWork:
		return "Break is over, back to work!"
	case e.Next == ModeLongBreak:
		return "Pomodoro completed! Time for a long break"
	default:
		return "Pomodoro completed! Time for a short break"
	}
}

// State is a snapshot of the Timer.
type State struct {
	Mode      Mode     `json:"mode"`
	Running   bool     `json:"running"`
	Remaining int      `json:"remaining"` // seconds
	Display   string   `json:"display"`   // MM:SS
	Progress  float64  `json:"progress"`  // percent of the session elapsed
	Completed int      `json:"completed"`
	Settings  Settings `json:"settings"`
}

// Timer is safe for concurrent use.
type Timer struct {
	mu        sync.Mutex
	settings  Settings
	mode      Mode
	remaining int // seconds
	running   bool
	completed int
}

func NewTimer(settings Settings) *Timer {
	return &Timer{
		settings:  settings,
		mode:      ModeWork,
		remaining: seconds(settings.Duration(ModeWork)),
	}
}

// Tick advances a running timer by one second.
// When the session runs out, the timer stops in the next mode and the returned Event is valid.
func (t *Timer) Tick() (Event, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running || t.remaining <= 0 {
		return Event{}, false
	}
	t.remaining--
	if t.remaining > 0 {
		return Event{}, false
	}
	return t.switchMode(), true
}

func (t *Timer) switchMode() Event {
	ev := Event{Finished: t.mode}
	if t.mode == ModeWork {
		t.completed++
		if n := t.settings.LongBreakInterval; n > 0 && t.completed%n == 0 {
			t.mode = ModeLongBreak
		} else {
			t.mode = ModeShortBreak
		}
	} else {
		t.mode = ModeWork
	}
	t.remaining = seconds(t.settings.Duration(t.mode))
	t.running = false

	ev.Next = t.mode
	ev.Completed = t.completed
	return ev
}

// Toggle starts or pauses the timer.
func (t *Timer) Toggle() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = !t.running
	return t.state()
}

// Reset stops the timer and rewinds the current session.
func (t *Timer) Reset() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.remaining = seconds(t.settings.Duration(t.mode))
	return t.state()
}

// SetMode stops the timer and starts over in `mode`.
func (t *Timer) SetMode(mode Mode) (State, error) {
	switch mode {
	case ModeWork, ModeShortBreak, ModeLongBreak:
	default:
		return State{}, errors.Wrapf(ErrInvalidMode, "%q", mode)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.mode = mode
	t.remaining = seconds(t.settings.Duration(mode))
	return t.state(), nil
}

// UpdateSettings replaces the settings. A paused timer is rewound to the new session length.
func (t *Timer) UpdateSettings(s Settings) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.settings = s
	if !t.running {
		t.remaining = seconds(s.Duration(t.mode))
	}
	return t.state()
}

func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state()
}

func (t *Timer) state() State {
	st := State{
		Mode:      t.mode,
		Running:   t.running,
		Remaining: t.remaining,
		Display:   Format(t.remaining),
		Completed: t.completed,
		Settings:  t.settings,
	}
	if total := seconds(t.settings.Duration(t.mode)); total > 0 {
		st.Progress = float64(total-t.remaining) / float64(total) * 100
	}
	return st
}

// Run ticks the timer on every value received from `ticks` until `ctx` is done.
// `onEvent` is called, if not nil, each time a session runs out.
func (t *Timer) Run(ctx context.Context, ticks <-chan time.Time, onEvent func(Event)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			if ev, ok := t.Tick(); ok && onEvent != nil {
				onEvent(ev)
			}
		}
	}
}

// Format renders `secs` as MM:SS.
func Format(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func seconds(d time.Duration) int {
	return int(d / time.Second)
}
