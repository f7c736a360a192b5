package email

import (
	"bytes"
	_ "embed"
	"html/template"
	"os"
	"strings"
)

// InvitationEmailData คือข้อมูลที่ template คำเชิญต้องใช้
type InvitationEmailData struct {
	SurveyTitle       string
	SurveyDescription string
	SurveyURL         string
	IsReminder        bool
}

//go:embed invite_email.html
var inviteEmailHTML string

var inviteEmailTmpl = template.Must(template.New("invite").Parse(inviteEmailHTML))

// RenderInvitationHTML render เนื้อเมลคำเชิญ (และเมลเตือนซึ่งใช้ template เดียวกัน)
func RenderInvitationHTML(data InvitationEmailData) (string, error) {
	var buf bytes.Buffer
	if err := inviteEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// InvitationSubject หัวเมลคำเชิญ
func InvitationSubject(surveyTitle string) string {
	return "Survey Invitation: " + surveyTitle
}

// ReminderSubject หัวเมลเตือนสำหรับคนที่ยังไม่ตอบ
func ReminderSubject(surveyTitle string) string {
	return "Reminder: " + surveyTitle
}

// BuildSurveyURL ประกอบลิงก์ตอบ survey จาก base URL ของ frontend
func BuildSurveyURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/survey/" + token
}

// BaseURLFromEnv อ่าน base URL ของ frontend จาก ENV
func BaseURLFromEnv() string {
	base := os.Getenv("APP_BASE_URL")
	if base == "" {
		base = "http://localhost:4200"
	}
	return strings.TrimRight(base, "/")
}
