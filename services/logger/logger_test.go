package logsvc

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/agenda/core"
	"github.com/trezcool/agenda/core/profile"
	"github.com/trezcool/agenda/tests"
)

func TestFields(t *testing.T) {
	p := profile.Default()
	p.Email = "ada@test.test"
	errA, errB := errors.New("a"), errors.New("b")

	tests := []struct {
		name string
		args []interface{}
		want []interface{}
	}{
		{name: "empty", args: nil, want: []interface{}{}},
		{name: "key/value", args: []interface{}{"key", "tasks", "n", 3}, want: []interface{}{"key", "tasks", "n", 3}},
		{name: "errors", args: []interface{}{errA, errB}, want: []interface{}{"error", "a", "error1", "b"}},
		{name: "mixed", args: []interface{}{"key", "tasks", errA}, want: []interface{}{"key", "tasks", "error", "a"}},
		{name: "extras", args: []interface{}{map[string]interface{}{"id": "t1"}}, want: []interface{}{"id", "t1"}},
		{name: "profile", args: []interface{}{p}, want: []interface{}{"user", "ada@test.test"}},
		{name: "dangling", args: []interface{}{42, "alone"}, want: []interface{}{"arg0", 42, "arg1", "alone"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fields(tt.args))
		})
	}
}

func TestZapLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZapLogger(WithConsole(&buf), WithLevel("info"))

	logger.Debug("hidden")
	logger.Info("task added", "id", "t1")
	logger.Error("saving collection", "key", "tasks", errors.New("quota exceeded"))
	require.NoError(t, logger.Close())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "task added")
	assert.Contains(t, out, `"id": "t1"`)
	assert.Contains(t, out, `"error": "quota exceeded"`)
}

func TestZapLogger_file(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "agenda.log")
	logger := NewZapLogger(WithConsole(&buf), WithFile(path), WithLevel("debug"))

	logger.Debug("collection not stored yet", "key", "notes")
	require.NoError(t, logger.Close())

	assert.FileExists(t, path)
	assert.Contains(t, buf.String(), "collection not stored yet")
}

func TestRollbarLogger_forwards(t *testing.T) {
	conf := &core.Config{Env: "TEST", TestMode: true}
	next := testutil.NewLogger()
	logger := NewRollbarLogger(next, conf)

	p := profile.Default()
	p.Email = "ada@test.test"
	logger.Info("profile updated", p)
	logger.Warn("reading collection", "key", "tasks", errors.New("timeout"))
	logger.Error("saving collection", errors.New("quota exceeded"))

	assert.Len(t, next.Entries(""), 3)
	warn := next.Entries("warn")
	require.Len(t, warn, 1)
	assert.Equal(t, "reading collection", warn[0].Msg)
	assert.Len(t, warn[0].Args, 3)
}

func TestRollbarLogger_prepare(t *testing.T) {
	logger := RollbarLogger{next: testutil.NewLogger()}
	err := errors.New("boom")

	args := logger.prepare("failed", []interface{}{"key", "tasks", err, map[string]interface{}{"n": 1}})
	require.Len(t, args, 3)
	assert.Equal(t, "failed", args[0])
	assert.Equal(t, err, args[1])
	assert.Equal(t, map[string]interface{}{"key": "tasks", "n": 1}, args[2])
}
