package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/agenda/core/grade"
	"github.com/trezcool/agenda/core/planner"
	"github.com/trezcool/agenda/core/profile"
	"github.com/trezcool/agenda/core/task"
)

var now = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	t.Helper()
	out := new(bytes.Buffer)
	store := planner.NewStore(planner.EmptySnapshot(), nil, planner.WithNowFunc(func() time.Time { return now }))
	return &commandLine{store: store, out: out, now: func() time.Time { return now }}, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    []string
}

func runCLITests(t *testing.T, cli *commandLine, out *bytes.Buffer, tests []cliTest) {
	t.Helper()
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.wantErrStr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrStr)
			default:
				assert.NoError(t, err)
			}
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func Test_commandLine_usage(t *testing.T) {
	cli, out := setup(t)
	runCLITests(t, cli, out, []cliTest{
		{name: "no command", wantErr: errHelp, wantOut: []string{"Usage:", "export [-out FILE]"}},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "export help", args: []string{"export", "-h"}, wantErr: errHelp, wantOut: []string{"-out"}},
		{name: "export bad flag", args: []string{"export", "-lol"}, wantErrStr: "flag provided but not defined"},
	})
}

func Test_commandLine_gpa(t *testing.T) {
	cli, out := setup(t)
	runCLITests(t, cli, out, []cliTest{
		{name: "no grades", args: []string{"gpa"}, wantOut: []string{"no grades yet"}},
	})

	cli.store.AddGrade(grade.Grade{Subject: "Math", Assignment: "Quiz", Grade: 85, MaxGrade: 100, Weight: 1})
	cli.store.AddGrade(grade.Grade{Subject: "Math", Assignment: "Final", Grade: 95, MaxGrade: 100, Weight: 2})
	cli.store.AddGrade(grade.Grade{Subject: "History", Assignment: "Essay", Grade: 18, MaxGrade: 20, Weight: 1})
	p := profile.Default()
	p.TargetGPA = null.Float64From(4)
	cli.store.UpdateProfile(p)

	runCLITests(t, cli, out, []cliTest{
		{
			name: "report", args: []string{"gpa"},
			wantOut: []string{"SUBJECT", "Math", "91.7%", "History", "90.0%", "OVERALL", "3.30", "TARGET", "4.00 (82%)"},
		},
	})
}

func Test_commandLine_due(t *testing.T) {
	cli, out := setup(t)
	runCLITests(t, cli, out, []cliTest{
		{name: "nothing due", args: []string{"due"}, wantOut: []string{"nothing due this week"}},
	})

	cli.store.AddTask(task.Task{Title: "Lab", DueDate: now.Add(-time.Hour)})
	cli.store.AddTask(task.Task{Title: "Essay", DueDate: now.Add(3 * task.Day)})
	cli.store.AddTask(task.Task{Title: "Later", DueDate: now.Add(30 * task.Day)})

	runCLITests(t, cli, out, []cliTest{
		{name: "due", args: []string{"due"}, wantOut: []string{"overdue", "Lab was due on 2025-01-01", "due-week", "Essay is due on 2025-01-04"}},
	})
	assert.NotContains(t, out.String(), "Later")
}

func Test_commandLine_export(t *testing.T) {
	cli, out := setup(t)
	cli.store.AddTask(task.Task{Title: "Essay", DueDate: now})
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	tests := []struct {
		name     string
		args     []string
		terminal bool
		wantFile string // empty when the document goes to stdout
	}{
		{name: "piped", args: []string{"export"}},
		{name: "stdout on a terminal", args: []string{"export", "-out", "-"}, terminal: true},
		{name: "file", args: []string{"export", "-out", path}, wantFile: path},
		{name: "dated file on a terminal", args: []string{"export"}, terminal: true, wantFile: "agenda-export-2025-01-01.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			isTerminalFunc = func() bool { return tt.terminal }
			if tt.wantFile != "" && !filepath.IsAbs(tt.wantFile) {
				wd, err := os.Getwd()
				require.NoError(t, err)
				require.NoError(t, os.Chdir(dir))
				defer func() { _ = os.Chdir(wd) }()
			}

			require.NoError(t, cli.run(append([]string{"admin"}, tt.args...)))

			data := out.Bytes()
			if tt.wantFile != "" {
				assert.Contains(t, out.String(), "exported to "+tt.wantFile)
				var err error
				data, err = os.ReadFile(tt.wantFile)
				require.NoError(t, err)
			}
			var doc map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &doc))
			assert.Equal(t, "2025-01-01T12:00:00Z", doc["exportDate"])
			assert.Len(t, doc["tasks"], 1)
		})
	}
}
