package mailer

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

var assignmentTmpl = template.Must(template.New("assignment").Parse(`<div style="max-width:600px; margin:40px auto; background:#ffffff; padding:24px; border-radius:6px;">
  <p style="margin:0 0 12px; font-size:16px; color:#333;">
    Hi <strong>{{.AssigneeName}}</strong>,
  </p>
  <p style="margin:0 0 12px; font-size:14px; color:#444;">
    You have been assigned a new task:
  </p>
  <h2 style="margin:0 0 8px; font-size:18px; color:#111;">
    {{.Title}}
  </h2>
  <p style="margin:0 0 20px; font-size:14px; color:#666;">
    Due Date: {{.DueDate}}
  </p>
  <a href="{{.Origin}}" style="display:inline-block; padding:10px 16px; background:#2563eb; color:#ffffff; text-decoration:none; border-radius:4px; font-size:14px;">
    View Task
  </a>
</div>`))

var reminderTmpl = template.Must(template.New("reminder").Parse(`<div style="max-width:600px; margin:40px auto; background:#ffffff; padding:24px; border-radius:6px;">
  <p style="margin:0 0 12px; font-size:16px; color:#333;">
    Hi <strong>{{.AssigneeName}}</strong>,
  </p>
  <p style="margin:0 0 12px; font-size:14px; color:#444;">
    Your task is due today and is not completed yet:
  </p>
  <h2 style="margin:0 0 8px; font-size:18px; color:#111;">
    {{.Title}}
  </h2>
  <a href="{{.Origin}}" style="display:inline-block; padding:10px 16px; background:#2563eb; color:#ffffff; text-decoration:none; border-radius:4px; font-size:14px;">
    View Task
  </a>
</div>`))

type taskEmailData struct {
	AssigneeName string
	Title        string
	DueDate      string
	Origin       string
}

// AssignmentEmail builds the immediate notification sent when a task is assigned.
func AssignmentEmail(to, assigneeName, projectName, title string, dueDate time.Time, origin string) (Message, error) {
	var body strings.Builder
	err := assignmentTmpl.Execute(&body, taskEmailData{
		AssigneeName: assigneeName,
		Title:        title,
		DueDate:      dueDate.Format("1/2/2006"),
		Origin:       origin,
	})
	if err != nil {
		return Message{}, fmt.Errorf("failed to render assignment email: %w", err)
	}

	return Message{
		To:      to,
		Subject: fmt.Sprintf("New Task Assignment in %s", projectName),
		Body:    body.String(),
	}, nil
}

// ReminderEmail builds the due-date reminder sent when a task is still open.
func ReminderEmail(to, assigneeName, projectName, title, origin string) (Message, error) {
	var body strings.Builder
	err := reminderTmpl.Execute(&body, taskEmailData{
		AssigneeName: assigneeName,
		Title:        title,
		Origin:       origin,
	})
	if err != nil {
		return Message{}, fmt.Errorf("failed to render reminder email: %w", err)
	}

	return Message{
		To:      to,
		Subject: fmt.Sprintf("Reminder: Task %q is Due Today", projectName),
		Body:    body.String(),
	}, nil
}
