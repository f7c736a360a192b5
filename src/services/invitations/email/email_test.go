package email

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSender struct {
	delay time.Duration
	err   error
	sent  []string
}

func (f *fakeSender) Send(to, subject, html string) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.sent = append(f.sent, to)
	return f.err
}

func TestBuildSurveyURL(t *testing.T) {
	assert.Equal(t, "http://localhost:4200/survey/tok-123",
		BuildSurveyURL("http://localhost:4200", "tok-123"))

	// base URL ลงท้ายด้วย slash ต้องไม่ได้ // ซ้อน
	assert.Equal(t, "https://app.example.com/survey/abc",
		BuildSurveyURL("https://app.example.com/", "abc"))
}

func TestRenderInvitationHTML(t *testing.T) {
	html, err := RenderInvitationHTML(InvitationEmailData{
		SurveyTitle:       "Color Survey",
		SurveyDescription: "Tell us your favorite color",
		SurveyURL:         "http://localhost:4200/survey/tok-1",
	})
	assert.NoError(t, err)
	assert.Contains(t, html, "Color Survey")
	assert.Contains(t, html, "Tell us your favorite color")
	assert.Contains(t, html, "http://localhost:4200/survey/tok-1")
	assert.Contains(t, html, "Survey Invitation")
	assert.NotContains(t, html, "Survey Reminder")
}

func TestRenderReminderHTML(t *testing.T) {
	html, err := RenderInvitationHTML(InvitationEmailData{
		SurveyTitle: "Color Survey",
		SurveyURL:   "http://localhost:4200/survey/tok-1",
		IsReminder:  true,
	})
	assert.NoError(t, err)
	assert.Contains(t, html, "Survey Reminder")
}

func TestSubjects(t *testing.T) {
	assert.Equal(t, "Survey Invitation: Color Survey", InvitationSubject("Color Survey"))
	assert.Equal(t, "Reminder: Color Survey", ReminderSubject("Color Survey"))
}

func TestSendWithTimeout(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		sender := &fakeSender{}
		err := SendWithTimeout(sender, "a@x.com", "subject", "<p>hi</p>", time.Second)
		assert.NoError(t, err)
		assert.Equal(t, []string{"a@x.com"}, sender.sent)
	})

	t.Run("SenderErrorPropagates", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("smtp down")}
		err := SendWithTimeout(sender, "a@x.com", "subject", "<p>hi</p>", time.Second)
		assert.ErrorContains(t, err, "smtp down")
	})

	t.Run("SlowSenderTimesOut", func(t *testing.T) {
		sender := &fakeSender{delay: 200 * time.Millisecond}
		err := SendWithTimeout(sender, "a@x.com", "subject", "<p>hi</p>", 20*time.Millisecond)
		assert.ErrorContains(t, err, "timed out")
	})
}
