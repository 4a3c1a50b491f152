package task

import (
	"fmt"
	"time"
)

type Bucket string

const (
	BucketNone     Bucket = ""
	BucketOverdue  Bucket = "overdue"
	BucketTomorrow Bucket = "due-tomorrow"
	BucketWeek     Bucket = "due-week"
)

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

// Classify returns the notification bucket of `t` relative to `now`:
//	overdue:      due < now
//	due-tomorrow: now < due < now+24h
//	due-week:     now+24h <= due <= now+7d
// Completed tasks, and tasks due exactly `now` or after a week, are not classified.
func Classify(t Task, now time.Time) Bucket {
	if t.Completed {
		return BucketNone
	}
	due := t.DueDate
	switch {
	case due.Before(now):
		return BucketOverdue
	case due.After(now) && due.Before(now.Add(Day)):
		return BucketTomorrow
	case !due.Before(now.Add(Day)) && !due.After(now.Add(Week)):
		return BucketWeek
	default:
		return BucketNone
	}
}

type Notification struct {
	TaskID   string    `json:"taskId"`
	Type     Bucket    `json:"type"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Priority string    `json:"priority"`
	DueDate  time.Time `json:"dueDate"`
}

// Key identifies the notification of a task in a bucket.
func (n Notification) Key() string {
	return n.TaskID + "/" + string(n.Type)
}

var notificationInfo = map[Bucket]struct {
	title    string
	priority string
}{
	BucketOverdue:  {title: "Task overdue", priority: PriorityHigh},
	BucketTomorrow: {title: "Due tomorrow", priority: PriorityMedium},
	BucketWeek:     {title: "Due this week", priority: PriorityLow},
}

// Notifications returns the notifications of `tasks`: the overdue ones first, then those
// due within a day, then those due within the week. Each group keeps the input order.
func Notifications(tasks []Task, now time.Time) []Notification {
	groups := map[Bucket][]Notification{}
	for _, t := range tasks {
		b := Classify(t, now)
		if b == BucketNone {
			continue
		}
		info := notificationInfo[b]
		groups[b] = append(groups[b], Notification{
			TaskID:   t.ID,
			Type:     b,
			Title:    info.title,
			Message:  notificationMessage(t, b),
			Priority: info.priority,
			DueDate:  t.DueDate,
		})
	}

	notifs := make([]Notification, 0)
	for _, b := range []Bucket{BucketOverdue, BucketTomorrow, BucketWeek} {
		notifs = append(notifs, groups[b]...)
	}
	return notifs
}

func notificationMessage(t Task, b Bucket) string {
	switch b {
	case BucketOverdue:
		return fmt.Sprintf("%s was due on %s", t.Title, DateKey(t.DueDate))
	case BucketTomorrow:
		return fmt.Sprintf("%s is due tomorrow", t.Title)
	default:
		return fmt.Sprintf("%s is due on %s", t.Title, DateKey(t.DueDate))
	}
}
