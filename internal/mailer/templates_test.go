package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentEmail(t *testing.T) {
	due := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	msg, err := AssignmentEmail("ada@example.com", "Ada", "Launch", "Write release notes", due, "http://localhost:5173")
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", msg.To)
	assert.Contains(t, msg.Subject, "Launch")
	assert.Contains(t, msg.Body, "Ada")
	assert.Contains(t, msg.Body, "Write release notes")
	assert.Contains(t, msg.Body, "3/12/2026")
}

func TestReminderEmail(t *testing.T) {
	msg, err := ReminderEmail("ada@example.com", "Ada", "Launch", "Write release notes", "http://localhost:5173")
	require.NoError(t, err)

	assert.Contains(t, msg.Subject, `"Launch"`)
	assert.Contains(t, msg.Subject, "Due Today")
	assert.Contains(t, msg.Body, "Write release notes")
}

func TestAssignmentEmail_EscapesHTML(t *testing.T) {
	msg, err := AssignmentEmail("ada@example.com", "<script>", "Launch", "Title", time.Now(), "http://localhost:5173")
	require.NoError(t, err)
	assert.NotContains(t, msg.Body, "<script>")
}
