package survey

import (
	"testing"
	"time"

	"survey-api/src/models"
	"survey-api/src/services/invitations"
	"survey-api/src/services/reports"
	"survey-api/src/services/responses"
	"survey-api/src/services/surveys"
	"survey-api/test"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// จำลอง flow เต็ม: สร้าง survey → เชิญ → ตอบ → ดู report
// โดยไล่ผ่าน validation/aggregation pipeline เดียวกับที่ service ใช้
func TestColorSurveyFlow(t *testing.T) {
	timer := test.NewTestTimer("Color Survey Flow")
	defer func() {
		test.PerformanceAssertion(t, "Color Survey Flow", timer.Stop(), 100*time.Millisecond)
	}()

	// 1) สร้าง survey "Color" หนึ่งคำถาม Red/Blue
	questions, err := surveys.ValidateQuestions([]models.CreateQuestionRequest{
		{Text: "Favorite?", Options: []models.CreateOptionRequest{{Text: "Red"}, {Text: "Blue"}}},
	})
	assert.NoError(t, err)

	survey := &models.Survey{
		ID:          primitive.NewObjectID(),
		Title:       "Color",
		Description: "Favorite color survey",
		Questions:   questions,
	}

	// 2) เชิญ a@x.com คนเดียว
	distinct := invitations.DedupeEmails([]string{"a@x.com"})
	assert.Len(t, distinct, 1)
	assert.True(t, invitations.IsValidEmail(distinct[0]))

	inv := models.Invitation{
		ID:          primitive.NewObjectID(),
		SurveyID:    survey.ID,
		Email:       distinct[0],
		UniqueLink:  uuid.NewString(),
		IsSubmitted: false,
		CreatedAt:   time.Now(),
	}

	// 3) ตอบ Red ผ่าน unique link
	q := survey.Questions[0]
	red := q.Options[0]

	answers, err := responses.ParseAnswers(map[string]string{q.ID.Hex(): red.ID.Hex()})
	assert.NoError(t, err)
	assert.NoError(t, responses.ValidateAnswers(survey, answers))

	inv.IsSubmitted = true
	resp := models.Response{
		ID:           primitive.NewObjectID(),
		InvitationID: inv.ID,
		SurveyID:     survey.ID,
		QuestionID:   q.ID,
		OptionID:     red.ID,
		SubmittedAt:  time.Now(),
	}

	// 4) summary report: Red 1 (100%) Blue 0 (0%) rate 100.00
	report := reports.BuildSummaryReport(survey, []models.Invitation{inv}, []models.Response{resp})

	assert.Equal(t, 1, report.TotalInvitations)
	assert.Equal(t, 1, report.TotalResponses)
	assert.Equal(t, 100.0, report.ResponseRate)

	opts := report.QuestionReports[0].Options
	assert.Equal(t, "Red", opts[0].OptionText)
	assert.Equal(t, 1, opts[0].Count)
	assert.Equal(t, 100.0, opts[0].Percentage)
	assert.Equal(t, "Blue", opts[1].OptionText)
	assert.Equal(t, 0, opts[1].Count)
	assert.Equal(t, 0.0, opts[1].Percentage)

	// 5) detailed report: a@x.com ตอบ Red
	detail := reports.BuildDetailedReport(survey, []models.Invitation{inv}, []models.Response{resp})
	assert.Len(t, detail, 1)
	assert.Equal(t, "a@x.com", detail[0].Email)
	assert.Equal(t, "Favorite?", detail[0].Answers[0].Question)
	assert.Equal(t, "Red", detail[0].Answers[0].SelectedOption)
}

// รายชื่อมีซ้ำและมีอีเมลผิด format: ซ้ำถูกตัด อีเมลผิดเข้า failed list
func TestInviteListWithDuplicatesAndBadEmail(t *testing.T) {
	distinct := invitations.DedupeEmails([]string{"a@x.com", "a@x.com", "bad-email"})
	assert.Equal(t, []string{"a@x.com", "bad-email"}, distinct)

	var pending, failed []string
	for _, addr := range distinct {
		if invitations.IsValidEmail(addr) {
			pending = append(pending, addr)
		} else {
			failed = append(failed, addr)
		}
	}

	assert.Equal(t, []string{"a@x.com"}, pending)
	assert.Equal(t, []string{"bad-email"}, failed)
}

// token ที่ตอบแล้วต้องตอบซ้ำไม่ได้ และคำตอบข้าม question ต้องโดนปัดทั้ง batch
func TestSubmissionGuards(t *testing.T) {
	questions, err := surveys.ValidateQuestions([]models.CreateQuestionRequest{
		{Text: "Q1", Options: []models.CreateOptionRequest{{Text: "A"}, {Text: "B"}}},
		{Text: "Q2", Options: []models.CreateOptionRequest{{Text: "C"}, {Text: "D"}}},
	})
	assert.NoError(t, err)

	survey := &models.Survey{ID: primitive.NewObjectID(), Title: "Guards", Questions: questions}
	q1, q2 := survey.Questions[0], survey.Questions[1]

	// option ของ Q2 ถูกส่งมาเป็นคำตอบของ Q1
	err = responses.ValidateAnswers(survey, map[primitive.ObjectID]primitive.ObjectID{
		q1.ID: q2.Options[0].ID,
	})
	assert.ErrorIs(t, err, responses.ErrInvalidAnswer)

	// คู่ดีกับคู่เสียปนกัน ต้อง reject ทั้งหมด
	err = responses.ValidateAnswers(survey, map[primitive.ObjectID]primitive.ObjectID{
		q1.ID: q1.Options[0].ID,
		q2.ID: primitive.NewObjectID(),
	})
	assert.ErrorIs(t, err, responses.ErrInvalidAnswer)
}
