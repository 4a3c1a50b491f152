package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/agenda/core"
	"github.com/trezcool/agenda/core/planner"
	"github.com/trezcool/agenda/core/pomodoro"
	"github.com/trezcool/agenda/core/schedule"
	"github.com/trezcool/agenda/tests"
)

// 2025-01-01 is a Wednesday
var now = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

type testEnv struct {
	server *Server
	store  *planner.Store
	timer  *pomodoro.Timer
	logger *testutil.Logger
}

func setup(t *testing.T) testEnv {
	t.Helper()

	validate, translator := core.NewValidator()
	schedule.InitValidators(validate, translator)

	conf := &core.Config{AppName: "Agenda", TestMode: true}
	logger := testutil.NewLogger()
	store := planner.NewStore(planner.EmptySnapshot(), nil,
		planner.WithNowFunc(func() time.Time { return now }),
		planner.WithIDFunc(testutil.SequentialIDs("id")),
	)
	timer := pomodoro.NewTimer(pomodoro.DefaultSettings())

	server := NewServer(ServerDeps{
		Conf:           conf,
		Logger:         logger,
		Store:          store,
		Timer:          timer,
		Validate:       validate,
		Translator:     translator,
		NowFunc:        func() time.Time { return now },
		DisableReqLogs: true,
	})
	t.Cleanup(func() { _ = server.Close() })
	return testEnv{server: server, store: store, timer: timer, logger: logger}
}

func (env testEnv) do(method, path string, data ...[]byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)
	return rec
}

func (env testEnv) run(t *testing.T, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			rec := env.do(method, tt.path, tt.body)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode() failed: %v; body %s", err, rec.Body.String())
	}
}
