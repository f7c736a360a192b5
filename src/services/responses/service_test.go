package responses

import (
	"testing"

	"survey-api/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleSurvey() *models.Survey {
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
			{
				ID:   primitive.NewObjectID(),
				Text: "Second favorite?",
				Options: []models.Option{
					{ID: primitive.NewObjectID(), Text: "Green"},
					{ID: primitive.NewObjectID(), Text: "Yellow"},
				},
			},
		},
	}
}

func TestParseAnswers(t *testing.T) {
	q := primitive.NewObjectID()
	o := primitive.NewObjectID()

	t.Run("ValidHexPair", func(t *testing.T) {
		parsed, err := ParseAnswers(map[string]string{q.Hex(): o.Hex()})
		assert.NoError(t, err)
		assert.Equal(t, o, parsed[q])
	})

	t.Run("BadQuestionID", func(t *testing.T) {
		_, err := ParseAnswers(map[string]string{"not-hex": o.Hex()})
		assert.ErrorIs(t, err, ErrInvalidAnswer)
	})

	t.Run("BadOptionID", func(t *testing.T) {
		_, err := ParseAnswers(map[string]string{q.Hex(): "not-hex"})
		assert.ErrorIs(t, err, ErrInvalidAnswer)
	})
}

func TestValidateAnswers(t *testing.T) {
	survey := sampleSurvey()
	q1, q2 := survey.Questions[0], survey.Questions[1]

	t.Run("AllPairsValid", func(t *testing.T) {
		err := ValidateAnswers(survey, map[primitive.ObjectID]primitive.ObjectID{
			q1.ID: q1.Options[0].ID,
			q2.ID: q2.Options[1].ID,
		})
		assert.NoError(t, err)
	})

	t.Run("PartialAnswersAllowed", func(t *testing.T) {
		err := ValidateAnswers(survey, map[primitive.ObjectID]primitive.ObjectID{
			q2.ID: q2.Options[0].ID,
		})
		assert.NoError(t, err)
	})

	t.Run("OptionFromAnotherQuestionRejected", func(t *testing.T) {
		err := ValidateAnswers(survey, map[primitive.ObjectID]primitive.ObjectID{
			q1.ID: q2.Options[0].ID,
		})
		assert.ErrorIs(t, err, ErrInvalidAnswer)
	})

	t.Run("UnknownQuestionRejected", func(t *testing.T) {
		err := ValidateAnswers(survey, map[primitive.ObjectID]primitive.ObjectID{
			primitive.NewObjectID(): q1.Options[0].ID,
		})
		assert.ErrorIs(t, err, ErrInvalidAnswer)
	})

	t.Run("OneBadPairRejectsWholeBatch", func(t *testing.T) {
		err := ValidateAnswers(survey, map[primitive.ObjectID]primitive.ObjectID{
			q1.ID: q1.Options[0].ID,
			q2.ID: primitive.NewObjectID(),
		})
		assert.ErrorIs(t, err, ErrInvalidAnswer)
	})
}
