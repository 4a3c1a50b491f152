package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/agenda/core/profile"
	"github.com/trezcool/agenda/core/task"
)

func completedTasks(n int) []task.Task {
	tasks := make([]task.Task, 0, n+1)
	for i := 0; i < n; i++ {
		tasks = append(tasks, task.Task{Completed: true})
	}
	return append(tasks, task.Task{}) // pending tasks never count
}

func unlockedIDs(all []Achievement) []string {
	ids := make([]string, 0)
	for _, a := range Unlocked(all) {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestEvaluate(t *testing.T) {
	complete := profile.Default()
	complete.Name = "Ada"
	complete.Goals = []string{"graduate"}
	complete.FavoriteSubjects = []string{"Math"}

	tests := []struct {
		name    string
		tasks   []task.Task
		profile profile.UserProfile
		want    []string
	}{
		{name: "nothing done", tasks: completedTasks(0), profile: profile.Default(), want: []string{}},
		{name: "first task", tasks: completedTasks(1), profile: profile.Default(), want: []string{FirstTask}},
		{name: "productive", tasks: completedTasks(5), profile: profile.Default(), want: []string{FirstTask, Productive}},
		{name: "everything", tasks: completedTasks(12), profile: complete, want: []string{FirstTask, TaskMaster, Organized, GoalSetter, Productive, Scholar}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, unlockedIDs(Evaluate(tt.tasks, tt.profile)))
		})
	}
}

func TestEvaluate_progress(t *testing.T) {
	all := Evaluate(completedTasks(7), profile.Default())
	assert.Len(t, all, 6)

	master := all[1]
	assert.Equal(t, TaskMaster, master.ID)
	assert.Equal(t, 7, master.Progress)
	assert.Equal(t, 10, master.MaxProgress)
	assert.InDelta(t, 70, master.Percent(), 1e-9)

	productive := all[4]
	assert.Equal(t, 5, productive.Progress, "progress is capped")
}

func TestSummarize(t *testing.T) {
	s := Summarize(completedTasks(1), profile.Default())
	assert.Equal(t, 6, s.Total)
	assert.Len(t, s.Unlocked, 1)
	if assert.Len(t, s.Next, 3) {
		assert.Equal(t, []string{TaskMaster, Organized, GoalSetter}, []string{s.Next[0].ID, s.Next[1].ID, s.Next[2].ID})
	}
}
