package planner

import (
	"net/mail"
	"sync"
	texttmpl "text/template"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"

	"github.com/trezcool/agenda/core"
	"github.com/trezcool/agenda/core/task"
)

var reminderTmpl = texttmpl.Must(texttmpl.New("reminder").Parse(`Hi{{ with .Name }} {{ . }}{{ end }},
{{ range .Notifications }}
- {{ .Title }}: {{ .Message }}{{ end }}

Good luck!
`))

// Reminder periodically looks for overdue and due-soon tasks, and reports each of them once
// per bucket: in the logs and, when the profile allows it, by email.
type Reminder struct {
	store   *Store
	mailer  core.EmailService
	log     core.Logger
	nowFunc func() time.Time

	mu   sync.Mutex
	sent map[string]struct{}
	cron *cron.Cron
}

func NewReminder(store *Store, mailer core.EmailService, logger core.Logger) *Reminder {
	return &Reminder{
		store:   store,
		mailer:  mailer,
		log:     logger,
		nowFunc: core.NowFunc,
		sent:    make(map[string]struct{}),
	}
}

// Start runs Scan on `spec` (eg. "@every 1m") until Stop is called.
// A scan still running when the next one is due makes the latter skip.
func (r *Reminder) Start(spec string) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(spec, func() { r.Scan() }); err != nil {
		return errors.Wrapf(err, "scheduling reminders %q", spec)
	}

	r.mu.Lock()
	r.cron = c
	r.mu.Unlock()

	c.Start()
	r.log.Info("reminders started", "schedule", spec)
	return nil
}

// Stop cancels the schedule and waits for a running scan to complete.
func (r *Reminder) Stop() {
	r.mu.Lock()
	c := r.cron
	r.cron = nil
	r.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}

// Scan returns the notifications not reported yet, and reports them.
func (r *Reminder) Scan() []task.Notification {
	notifs := r.store.Notifications(r.nowFunc())

	r.mu.Lock()
	current := make(map[string]struct{}, len(notifs))
	fresh := make([]task.Notification, 0)
	for _, n := range notifs {
		current[n.Key()] = struct{}{}
		if _, ok := r.sent[n.Key()]; !ok {
			fresh = append(fresh, n)
		}
	}
	// forget what no longer applies, so a task reopened later is reported again
	r.sent = current
	r.mu.Unlock()

	if len(fresh) == 0 {
		return fresh
	}
	for _, n := range fresh {
		r.log.Info(n.Message, "task", n.TaskID, "type", n.Type)
	}
	r.mail(fresh)
	return fresh
}

func (r *Reminder) mail(notifs []task.Notification) {
	p := r.store.Profile()
	if !p.Notifications || p.Email == "" || r.mailer == nil {
		return
	}

	subject := "1 task needs your attention"
	if len(notifs) > 1 {
		subject = "Tasks need your attention"
	}
	r.mailer.SendMessages(&core.EmailMessage{
		To:       []mail.Address{{Name: p.Name, Address: p.Email}},
		Subject:  subject,
		Template: reminderTmpl,
		TemplateData: map[string]interface{}{
			"Name":          p.Name,
			"Notifications": notifs,
		},
	})
}
