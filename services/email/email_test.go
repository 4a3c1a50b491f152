package emailsvc

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/mail"
	"testing"
	"text/template"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/agenda/core"
	"github.com/trezcool/agenda/tests"
)

func testConfig() *core.Config {
	return &core.Config{AppName: "Agenda", SendgridApiKey: "key"}
}

var ada = mail.Address{Name: "Ada", Address: "ada@test.test"}

func TestConsoleService(t *testing.T) {
	var out bytes.Buffer
	logger := testutil.NewLogger()
	svc := NewConsoleServiceMock(testConfig(), logger, &out)

	tmpl := template.Must(template.New("reminder").Parse("Hi {{.}},"))
	svc.SendMessages(
		&core.EmailMessage{To: []mail.Address{ada}, Subject: "Plain", BodyStr: "hello"},
		&core.EmailMessage{To: []mail.Address{ada}, Cc: []mail.Address{ada}, Subject: "Templated", Template: tmpl, TemplateData: "Ada"},
		&core.EmailMessage{Subject: "No recipient", BodyStr: "dropped"},
		&core.EmailMessage{To: []mail.Address{ada}, Subject: "Empty"},
	)

	sent := svc.SentMessages()
	require.Len(t, sent, 2)
	assert.Equal(t, "hello", sent[0].TextContent)
	assert.Equal(t, "Hi Ada,", sent[1].TextContent)

	printed := out.String()
	assert.Contains(t, printed, "From: \"Agenda\" <noreply@localhost>")
	assert.Contains(t, printed, "Subject: [Agenda] Plain")
	assert.Contains(t, printed, "To: \"Ada\" <ada@test.test>")
	assert.Contains(t, printed, "CC: \"Ada\" <ada@test.test>")
	assert.NotContains(t, printed, "dropped")
	assert.Empty(t, logger.Entries("error"))
}

func TestConsoleService_renderError(t *testing.T) {
	logger := testutil.NewLogger()
	svc := NewConsoleServiceMock(testConfig(), logger, &bytes.Buffer{})

	tmpl := template.Must(template.New("bad").Parse("{{.Missing.Field}}"))
	svc.SendMessages(&core.EmailMessage{To: []mail.Address{ada}, Template: tmpl, TemplateData: 42})

	assert.Empty(t, svc.SentMessages())
	assert.Len(t, logger.Entries("error"), 1)
}

func TestSendgridService_send(t *testing.T) {
	tests := []struct {
		name    string
		res     *rest.Response
		err     error
		wantErr bool
	}{
		{name: "accepted", res: &rest.Response{StatusCode: http.StatusAccepted}},
		{name: "rejected", res: &rest.Response{StatusCode: http.StatusBadRequest, Body: "bad"}, wantErr: true},
		{name: "unreachable", err: errors.New("dial tcp"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSendgridService(testConfig(), testutil.NewLogger())
			var got rest.Request
			svc.api = func(req rest.Request) (*rest.Response, error) {
				got = req
				return tt.res, tt.err
			}

			err := svc.sendMessage(&core.EmailMessage{To: []mail.Address{ada}, Subject: "Reminder", BodyStr: "hello"})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, http.MethodPost, string(got.Method))
			assert.Equal(t, "Bearer key", got.Headers["Authorization"])

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(got.Body, &body))
			pers := body["personalizations"].([]interface{})[0].(map[string]interface{})
			assert.Equal(t, "[Agenda] Reminder", pers["subject"])
			content := body["content"].([]interface{})[0].(map[string]interface{})
			assert.Equal(t, "hello", content["value"])
		})
	}
}

func TestSendgridService_skipsEmpty(t *testing.T) {
	svc := NewSendgridService(testConfig(), testutil.NewLogger())
	svc.api = func(rest.Request) (*rest.Response, error) {
		t.Fatal("no request expected")
		return nil, nil
	}
	assert.NoError(t, svc.sendMessage(&core.EmailMessage{Subject: "nobody", BodyStr: "hi"}))
}
