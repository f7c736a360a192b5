package responses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"survey-api/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrInvitationNotFound = errors.New("invalid survey link")
	ErrAlreadySubmitted   = errors.New("survey link already used")
	ErrNoAnswers          = errors.New("no answers provided")
	ErrInvalidAnswer      = errors.New("invalid answer")
)

type Service struct {
	client      *mongo.Client
	surveys     *mongo.Collection
	invitations *mongo.Collection
	responses   *mongo.Collection
}

func NewResponseService(db *mongo.Database) *Service {
	return &Service{
		client:      db.Client(),
		surveys:     db.Collection("surveys"),
		invitations: db.Collection("invitations"),
		responses:   db.Collection("responses"),
	}
}

// GetSurveyForResponse ดึง survey สำหรับหน้า respond จาก token ที่ยังไม่ถูกใช้
func (s *Service) GetSurveyForResponse(ctx context.Context, token string) (*models.SurveyForResponse, error) {
	var inv models.Invitation
	err := s.invitations.FindOne(ctx, bson.M{"uniqueLink": token, "isSubmitted": false}).Decode(&inv)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}

	var survey models.Survey
	if err := s.surveys.FindOne(ctx, bson.M{"_id": inv.SurveyID}).Decode(&survey); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}

	return &models.SurveyForResponse{Survey: survey, InvitationID: inv.ID}, nil
}

// Submit ตรวจคำตอบทุกคู่ก่อน แล้วค่อย commit ใน transaction เดียว:
// flip isSubmitted false→true แบบมีเงื่อนไข + insert Response ทุกแถว
// ถ้ามี request ขนานยิง token เดียวกัน ตัวที่ flip ไม่สำเร็จจะไม่เขียนอะไรเลย
func (s *Service) Submit(ctx context.Context, token string, answers map[string]string) error {
	if len(answers) == 0 {
		return ErrNoAnswers
	}

	parsed, err := ParseAnswers(answers)
	if err != nil {
		return err
	}

	var inv models.Invitation
	if err := s.invitations.FindOne(ctx, bson.M{"uniqueLink": token}).Decode(&inv); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrInvitationNotFound
		}
		return err
	}
	if inv.IsSubmitted {
		return ErrAlreadySubmitted
	}

	var survey models.Survey
	if err := s.surveys.FindOne(ctx, bson.M{"_id": inv.SurveyID}).Decode(&survey); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrInvitationNotFound
		}
		return err
	}

	// validate ทั้ง batch ก่อนเขียนอะไรทั้งนั้น
	if err := ValidateAnswers(&survey, parsed); err != nil {
		return err
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(parsed))
	for questionID, optionID := range parsed {
		docs = append(docs, models.Response{
			ID:           primitive.NewObjectID(),
			InvitationID: inv.ID,
			SurveyID:     inv.SurveyID,
			QuestionID:   questionID,
			OptionID:     optionID,
			SubmittedAt:  now,
		})
	}

	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := s.invitations.UpdateOne(sc,
			bson.M{"_id": inv.ID, "isSubmitted": false},
			bson.M{"$set": bson.M{"isSubmitted": true}},
		)
		if err != nil {
			return nil, err
		}
		if res.ModifiedCount == 0 {
			// มีคนใช้ token นี้ตัดหน้าไปแล้ว
			return nil, ErrAlreadySubmitted
		}

		if _, err := s.responses.InsertMany(sc, docs); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

// ParseAnswers แปลง questionId→optionId จาก hex เป็น ObjectID
func ParseAnswers(answers map[string]string) (map[primitive.ObjectID]primitive.ObjectID, error) {
	parsed := make(map[primitive.ObjectID]primitive.ObjectID, len(answers))
	for q, o := range answers {
		questionID, err := primitive.ObjectIDFromHex(q)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid question id %q", ErrInvalidAnswer, q)
		}
		optionID, err := primitive.ObjectIDFromHex(o)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid option id %q", ErrInvalidAnswer, o)
		}
		parsed[questionID] = optionID
	}
	return parsed, nil
}

// ValidateAnswers ตรวจว่า option ที่เลือกเป็นของ question นั้นจริงทุกคู่
func ValidateAnswers(survey *models.Survey, answers map[primitive.ObjectID]primitive.ObjectID) error {
	optionsByQuestion := make(map[primitive.ObjectID]map[primitive.ObjectID]bool, len(survey.Questions))
	for _, q := range survey.Questions {
		opts := make(map[primitive.ObjectID]bool, len(q.Options))
		for _, o := range q.Options {
			opts[o.ID] = true
		}
		optionsByQuestion[q.ID] = opts
	}

	for questionID, optionID := range answers {
		opts, ok := optionsByQuestion[questionID]
		if !ok {
			return fmt.Errorf("%w: question %s not found in survey", ErrInvalidAnswer, questionID.Hex())
		}
		if !opts[optionID] {
			return fmt.Errorf("%w: option %s does not belong to question %s",
				ErrInvalidAnswer, optionID.Hex(), questionID.Hex())
		}
	}
	return nil
}
