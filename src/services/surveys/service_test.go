package surveys

import (
	"testing"

	"survey-api/src/models"

	"github.com/stretchr/testify/assert"
)

func question(text string, options ...string) models.CreateQuestionRequest {
	opts := make([]models.CreateOptionRequest, 0, len(options))
	for _, o := range options {
		opts = append(opts, models.CreateOptionRequest{Text: o})
	}
	return models.CreateQuestionRequest{Text: text, Options: opts}
}

func TestValidateQuestions(t *testing.T) {
	t.Run("RejectsSurveyWithoutQuestions", func(t *testing.T) {
		_, err := ValidateQuestions(nil)
		assert.ErrorIs(t, err, ErrInvalidSurvey)

		_, err = ValidateQuestions([]models.CreateQuestionRequest{})
		assert.ErrorIs(t, err, ErrInvalidSurvey)
	})

	t.Run("RejectsTooFewOptions", func(t *testing.T) {
		_, err := ValidateQuestions([]models.CreateQuestionRequest{
			question("Favorite color?", "Red"),
		})
		assert.ErrorIs(t, err, ErrInvalidSurvey)
		assert.Contains(t, err.Error(), "Favorite color?")
	})

	t.Run("RejectsTooManyOptions", func(t *testing.T) {
		_, err := ValidateQuestions([]models.CreateQuestionRequest{
			question("Pick one", "A", "B", "C", "D", "E", "F"),
		})
		assert.ErrorIs(t, err, ErrInvalidSurvey)
	})

	t.Run("StripsBlankOptions", func(t *testing.T) {
		questions, err := ValidateQuestions([]models.CreateQuestionRequest{
			question("Pick one", "A", "   ", "B"),
		})
		assert.NoError(t, err)
		assert.Len(t, questions, 1)
		assert.Len(t, questions[0].Options, 2)
		assert.Equal(t, "A", questions[0].Options[0].Text)
		assert.Equal(t, "B", questions[0].Options[1].Text)
	})

	t.Run("RejectsWhenStrippingLeavesTooFew", func(t *testing.T) {
		_, err := ValidateQuestions([]models.CreateQuestionRequest{
			question("Pick one", "A", "   ", ""),
		})
		assert.ErrorIs(t, err, ErrInvalidSurvey)
		assert.Contains(t, err.Error(), "at least 2 options with text")
	})

	t.Run("AssignsIDsToQuestionsAndOptions", func(t *testing.T) {
		questions, err := ValidateQuestions([]models.CreateQuestionRequest{
			question("Q1", "A", "B"),
			question("Q2", "C", "D", "E"),
		})
		assert.NoError(t, err)
		assert.Len(t, questions, 2)
		for _, q := range questions {
			assert.False(t, q.ID.IsZero())
			for _, o := range q.Options {
				assert.False(t, o.ID.IsZero())
			}
		}
	})

	t.Run("OneBadQuestionFailsWholeSurvey", func(t *testing.T) {
		_, err := ValidateQuestions([]models.CreateQuestionRequest{
			question("Good", "A", "B"),
			question("Bad", "only one"),
		})
		assert.ErrorIs(t, err, ErrInvalidSurvey)
		assert.Contains(t, err.Error(), "Bad")
	})
}
