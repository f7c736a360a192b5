package reports

import (
	"testing"

	"survey-api/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func colorSurvey() *models.Survey {
	return &models.Survey{
		ID:    primitive.NewObjectID(),
		Title: "Color",
		Questions: []models.Question{
			{
				ID:   primitive.NewObjectID(),
				Text: "Favorite?",
				Options: []models.Option{
					{ID: primitive.NewObjectID(), Text: "Red"},
					{ID: primitive.NewObjectID(), Text: "Blue"},
				},
			},
		},
	}
}

func invitation(surveyID primitive.ObjectID, email string, submitted bool) models.Invitation {
	return models.Invitation{
		ID:          primitive.NewObjectID(),
		SurveyID:    surveyID,
		Email:       email,
		UniqueLink:  primitive.NewObjectID().Hex(),
		IsSubmitted: submitted,
	}
}

func TestBuildSummaryReport(t *testing.T) {
	t.Run("NoInvitationsGivesZeroes", func(t *testing.T) {
		survey := colorSurvey()
		report := BuildSummaryReport(survey, nil, nil)

		assert.Equal(t, 0, report.TotalInvitations)
		assert.Equal(t, 0, report.TotalResponses)
		assert.Equal(t, 0.0, report.ResponseRate)
		assert.Len(t, report.QuestionReports, 1)
		for _, opt := range report.QuestionReports[0].Options {
			assert.Equal(t, 0, opt.Count)
			assert.Equal(t, 0.0, opt.Percentage)
		}
	})

	t.Run("NoSubmissionsGivesZeroPercentages", func(t *testing.T) {
		survey := colorSurvey()
		invs := []models.Invitation{
			invitation(survey.ID, "a@x.com", false),
			invitation(survey.ID, "b@x.com", false),
		}
		report := BuildSummaryReport(survey, invs, nil)

		assert.Equal(t, 2, report.TotalInvitations)
		assert.Equal(t, 0, report.TotalResponses)
		assert.Equal(t, 0.0, report.ResponseRate)
	})

	t.Run("SingleRespondentScenario", func(t *testing.T) {
		// เชิญ a@x.com คนเดียว ตอบ Red → Red 100% Blue 0% rate 100.00
		survey := colorSurvey()
		q := survey.Questions[0]
		inv := invitation(survey.ID, "a@x.com", true)

		resps := []models.Response{{
			ID:           primitive.NewObjectID(),
			InvitationID: inv.ID,
			SurveyID:     survey.ID,
			QuestionID:   q.ID,
			OptionID:     q.Options[0].ID,
		}}

		report := BuildSummaryReport(survey, []models.Invitation{inv}, resps)

		assert.Equal(t, "Color", report.SurveyTitle)
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
	})

	t.Run("PercentagesSumToOneHundred", func(t *testing.T) {
		survey := colorSurvey()
		q := survey.Questions[0]

		invs := make([]models.Invitation, 3)
		resps := make([]models.Response, 3)
		picks := []int{0, 0, 1} // Red, Red, Blue
		for i := range invs {
			invs[i] = invitation(survey.ID, primitive.NewObjectID().Hex()+"@x.com", true)
			resps[i] = models.Response{
				ID:           primitive.NewObjectID(),
				InvitationID: invs[i].ID,
				SurveyID:     survey.ID,
				QuestionID:   q.ID,
				OptionID:     q.Options[picks[i]].ID,
			}
		}

		report := BuildSummaryReport(survey, invs, resps)
		assert.Equal(t, 3, report.TotalResponses)

		sum := 0.0
		for _, opt := range report.QuestionReports[0].Options {
			sum += opt.Percentage
		}
		assert.InDelta(t, 100.0, sum, 0.01)
		assert.Equal(t, 66.67, report.QuestionReports[0].Options[0].Percentage)
		assert.Equal(t, 33.33, report.QuestionReports[0].Options[1].Percentage)
	})

	t.Run("ResponseRateRounding", func(t *testing.T) {
		survey := colorSurvey()
		invs := []models.Invitation{
			invitation(survey.ID, "a@x.com", true),
			invitation(survey.ID, "b@x.com", false),
			invitation(survey.ID, "c@x.com", false),
		}
		report := BuildSummaryReport(survey, invs, nil)
		assert.Equal(t, 33.33, report.ResponseRate)
	})
}

func TestBuildDetailedReport(t *testing.T) {
	survey := colorSurvey()
	q := survey.Questions[0]

	invA := invitation(survey.ID, "a@x.com", true)
	invB := invitation(survey.ID, "b@x.com", true)
	invs := []models.Invitation{invA, invB}

	resps := []models.Response{
		{ID: primitive.NewObjectID(), InvitationID: invA.ID, SurveyID: survey.ID, QuestionID: q.ID, OptionID: q.Options[0].ID},
		{ID: primitive.NewObjectID(), InvitationID: invB.ID, SurveyID: survey.ID, QuestionID: q.ID, OptionID: q.Options[1].ID},
	}

	report := BuildDetailedReport(survey, invs, resps)

	assert.Len(t, report, 2)
	assert.Equal(t, "a@x.com", report[0].Email)
	assert.Equal(t, []models.RespondentAnswer{{Question: "Favorite?", SelectedOption: "Red"}}, report[0].Answers)
	assert.Equal(t, "b@x.com", report[1].Email)
	assert.Equal(t, []models.RespondentAnswer{{Question: "Favorite?", SelectedOption: "Blue"}}, report[1].Answers)
}

func TestBuildDetailedReportSkipsUnknownInvitation(t *testing.T) {
	survey := colorSurvey()
	q := survey.Questions[0]

	resps := []models.Response{
		{ID: primitive.NewObjectID(), InvitationID: primitive.NewObjectID(), SurveyID: survey.ID, QuestionID: q.ID, OptionID: q.Options[0].ID},
	}

	report := BuildDetailedReport(survey, nil, resps)
	assert.Empty(t, report)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, round2(100.0/3.0))
	assert.Equal(t, 66.67, round2(200.0/3.0))
	assert.Equal(t, 100.0, round2(100.0))
}
