package pomodoro

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/agenda/core"
)

// tiny returns settings of one-minute sessions.
func tiny() Settings {
	return Settings{WorkTime: 1, ShortBreakTime: 1, LongBreakTime: 1, LongBreakInterval: 4}
}

// finish ticks a running session until it runs out.
func finish(t *testing.T, tm *Timer) Event {
	t.Helper()
	if !tm.State().Running {
		tm.Toggle()
	}
	for i := 0; i < 60*120; i++ {
		if ev, ok := tm.Tick(); ok {
			return ev
		}
	}
	t.Fatal("session never finished")
	return Event{}
}

func TestNewTimer(t *testing.T) {
	st := NewTimer(DefaultSettings()).State()
	assert.Equal(t, ModeWork, st.Mode)
	assert.False(t, st.Running)
	assert.Equal(t, 25*60, st.Remaining)
	assert.Equal(t, "25:00", st.Display)
	assert.Equal(t, 0.0, st.Progress)
}

func TestTimer_Tick(t *testing.T) {
	tm := NewTimer(tiny())

	_, ok := tm.Tick()
	assert.False(t, ok)
	assert.Equal(t, 60, tm.State().Remaining, "paused timer must not move")

	tm.Toggle()
	for i := 0; i < 15; i++ {
		tm.Tick()
	}
	st := tm.State()
	assert.Equal(t, 45, st.Remaining)
	assert.Equal(t, "00:45", st.Display)
	assert.InDelta(t, 25, st.Progress, 1e-9)
}

func TestTimer_cycle(t *testing.T) {
	tm := NewTimer(tiny())

	var modes []Mode
	for i := 0; i < 8; i++ {
		ev := finish(t, tm)
		modes = append(modes, ev.Next)
		assert.False(t, tm.State().Running, "timer stops when a session runs out")
	}
	assert.Equal(t, []Mode{
		ModeShortBreak, ModeWork,
		ModeShortBreak, ModeWork,
		ModeShortBreak, ModeWork,
		ModeLongBreak, ModeWork, // fourth completed pomodoro
	}, modes)
	assert.Equal(t, 4, tm.State().Completed)
}

func TestEvent_Message(t *testing.T) {
	assert.Equal(t, "Pomodoro completed! Time for a long break", Event{Finished: ModeWork, Next: ModeLongBreak}.Message())
	assert.Equal(t, "Pomodoro completed! Time for a short break", Event{Finished: ModeWork, Next: ModeShortBreak}.Message())
	assert.Equal(t, "Break is over, back to work!", Event{Finished: ModeShortBreak, Next: ModeWork}.Message())
}

func TestTimer_controls(t *testing.T) {
	tm := NewTimer(DefaultSettings())

	tm.Toggle()
	tm.Tick()
	st := tm.Reset()
	assert.False(t, st.Running)
	assert.Equal(t, 25*60, st.Remaining)

	st, err := tm.SetMode(ModeLongBreak)
	require.NoError(t, err)
	assert.Equal(t, 15*60, st.Remaining)

	_, err = tm.SetMode("nap")
	assert.ErrorIs(t, err, ErrInvalidMode)

	st = tm.UpdateSettings(Settings{WorkTime: 50, ShortBreakTime: 10, LongBreakTime: 30, LongBreakInterval: 2})
	assert.Equal(t, 30*60, st.Remaining, "paused timer is rewound to the new length")

	tm.Toggle()
	tm.Tick()
	st = tm.UpdateSettings(DefaultSettings())
	assert.Equal(t, 30*60-1, st.Remaining, "running timer keeps its countdown")
}

func TestSettings_Validate(t *testing.T) {
	validate, _ := core.NewValidator()
	s := DefaultSettings()
	assert.NoError(t, s.Validate(validate))
	s.LongBreakInterval = 0
	assert.Error(t, s.Validate(validate))
}

func TestTimer_Run(t *testing.T) {
	tm := NewTimer(tiny())
	tm.Toggle()

	ticks := make(chan time.Time)
	ctx, cancel := context.WithCancel(context.Background())

	var (
		mu     sync.Mutex
		events []Event
	)
	done := make(chan struct{})
	go func() {
		tm.Run(ctx, ticks, func(ev Event) {
			mu.Lock()
			events = append(events, ev)
			mu.Unlock()
		})
		close(done)
	}()

	for i := 0; i < 60; i++ {
		ticks <- time.Now()
	}
	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 1)
	assert.Equal(t, Event{Finished: ModeWork, Next: ModeShortBreak, Completed: 1}, events[0])
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "00:00", Format(0))
	assert.Equal(t, "00:00", Format(-3))
	assert.Equal(t, "01:05", Format(65))
	assert.Equal(t, "25:00", Format(1500))
}
