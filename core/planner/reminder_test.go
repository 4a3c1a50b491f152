package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/agenda/core/profile"
	"github.com/trezcool/agenda/core/task"
	"github.com/trezcool/agenda/tests"
)

func setupReminder(t *testing.T) (*Reminder, *Store, *testutil.Clock, *testutil.Mailer, *testutil.Logger) {
	t.Helper()
	store, _, clock := setup(t)
	mailer := &testutil.Mailer{}
	logger := testutil.NewLogger()
	r := NewReminder(store, mailer, logger)
	r.nowFunc = clock.Now
	return r, store, clock, mailer, logger
}

func keys(notifs []task.Notification) []string {
	res := make([]string, 0, len(notifs))
	for _, n := range notifs {
		res = append(res, n.Key())
	}
	return res
}

func TestReminder_Scan(t *testing.T) {
	r, store, clock, mailer, logger := setupReminder(t)

	p := profile.Default()
	p.Name = "Ada"
	p.Email = "ada@test.test"
	store.UpdateProfile(p)

	late := store.AddTask(task.Task{Title: "Lab report", DueDate: now.Add(-time.Hour)})
	soon := store.AddTask(task.Task{Title: "Essay", DueDate: now.Add(20 * time.Hour)})

	assert.Equal(t, []string{late.ID + "/overdue", soon.ID + "/due-tomorrow"}, keys(r.Scan()))
	assert.Empty(t, r.Scan(), "each notification is sent once")

	sent := mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "ada@test.test", sent[0].To[0].Address)
	assert.Equal(t, "Tasks need your attention", sent[0].Subject)
	assert.Contains(t, sent[0].TextContent, "Hi Ada,")
	assert.Contains(t, sent[0].TextContent, "- Task overdue: Lab report was due on 2025-01-01")
	assert.Contains(t, sent[0].TextContent, "- Due tomorrow: Essay is due tomorrow")
	assert.Len(t, logger.Entries("info"), 2)

	// the essay becomes overdue: new bucket, new notification
	clock.Advance(21 * time.Hour)
	assert.Equal(t, []string{soon.ID + "/overdue"}, keys(r.Scan()))
	require.Len(t, mailer.Sent(), 2)
	assert.Equal(t, "1 task needs your attention", mailer.Sent()[1].Subject)

	// completed, then reopened: reported again
	_, _ = store.ToggleTask(late.ID)
	assert.Empty(t, r.Scan())
	_, _ = store.ToggleTask(late.ID)
	assert.Equal(t, []string{late.ID + "/overdue"}, keys(r.Scan()))
}

func TestReminder_Scan_noEmail(t *testing.T) {
	tests := []struct {
		name    string
		profile func() profile.UserProfile
	}{
		{name: "no email", profile: profile.Default},
		{name: "notifications off", profile: func() profile.UserProfile {
			p := profile.Default()
			p.Email = "ada@test.test"
			p.Notifications = false
			return p
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, store, _, mailer, _ := setupReminder(t)
			store.UpdateProfile(tt.profile())
			store.AddTask(task.Task{Title: "late", DueDate: now.Add(-time.Hour)})

			assert.Len(t, r.Scan(), 1)
			assert.Empty(t, mailer.Sent())
		})
	}
}

func TestReminder_StartStop(t *testing.T) {
	r, _, _, _, _ := setupReminder(t)

	assert.Error(t, r.Start("every now and then"))

	require.NoError(t, r.Start("@every 1h"))
	r.Stop()
	r.Stop() // no-op
}
